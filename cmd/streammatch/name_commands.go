package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streammapparr/streammatch/internal/match"
)

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	var showTags bool

	cmd := &cobra.Command{
		Use:   "normalize <name>",
		Short: "Print the canonical matching form of a channel name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			normalized := match.Normalize(args[0], cfg.Options())
			fmt.Fprintln(cmd.OutOrStdout(), normalized)
			if showTags {
				tags := match.ExtractTags(args[0], cfg.IgnoreTags)
				fmt.Fprintf(cmd.OutOrStdout(), "display: %s\n", match.BuildDisplayName(normalized, tags))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTags, "display", false, "Also print the rebuilt display name")
	return cmd
}

func newCallsignCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "callsign <name>",
		Short: "Extract a US broadcast callsign from a channel name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			callsign, ok := match.ExtractCallsign(args[0])
			if !ok {
				return fmt.Errorf("no callsign found in %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), callsign)
			return nil
		},
	}
}
