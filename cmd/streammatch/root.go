package main

import (
	"github.com/spf13/cobra"

	"github.com/streammapparr/streammatch/internal/config"
	"github.com/streammapparr/streammatch/internal/log"
)

// commandContext carries the lazily loaded configuration shared by all
// subcommands.
type commandContext struct {
	configFlag *string
	cfg        *config.Config
}

func (c *commandContext) ensureConfig() (config.Config, error) {
	if c.cfg != nil {
		return *c.cfg, nil
	}
	cfg, err := config.Load(*c.configFlag)
	if err != nil {
		return config.Config{}, err
	}
	c.cfg = &cfg
	return cfg, nil
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var thresholdFlag int
	var ignoreTagsFlag []string
	var dbDirFlag string

	ctx := &commandContext{configFlag: &configFlag}

	rootCmd := &cobra.Command{
		Use:           "streammatch",
		Short:         "Match stream names against channel catalog entries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("threshold") {
				cfg.MatchThreshold = thresholdFlag
			}
			if cmd.Flags().Changed("ignore-tags") {
				cfg.IgnoreTags = ignoreTagsFlag
			}
			if cmd.Flags().Changed("database-dir") {
				cfg.DatabaseDir = dbDirFlag
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			ctx.cfg = &cfg
			log.Configure(log.Config{Level: cfg.LogLevel})
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().IntVar(&thresholdFlag, "threshold", 0, "Minimum accepted match score (0-100)")
	rootCmd.PersistentFlags().StringSliceVar(&ignoreTagsFlag, "ignore-tags", nil, "Tags to ignore when matching")
	rootCmd.PersistentFlags().StringVar(&dbDirFlag, "database-dir", "", "Directory holding *_channels.json databases")

	rootCmd.AddCommand(newNormalizeCommand(ctx))
	rootCmd.AddCommand(newCallsignCommand(ctx))
	rootCmd.AddCommand(newMatchCommand(ctx))
	rootCmd.AddCommand(newCategoryCommand(ctx))
	rootCmd.AddCommand(newWatchCommand(ctx))

	return rootCmd
}
