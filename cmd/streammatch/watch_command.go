package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/streammapparr/streammatch/internal/chandb"
	"github.com/streammapparr/streammatch/internal/log"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the database directory and reload on changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cfg.DatabaseDir == "" {
				return fmt.Errorf("no database directory configured")
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger := log.WithComponent("chandb")
			store := chandb.NewStore()
			if err := store.Reload(runCtx, cfg.DatabaseDir, logger); err != nil {
				return err
			}
			if err := chandb.Watch(runCtx, cfg.DatabaseDir, store, logger); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}
}
