package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/streammapparr/streammatch/internal/chandb"
	"github.com/streammapparr/streammatch/internal/engine"
	"github.com/streammapparr/streammatch/internal/log"
	"github.com/streammapparr/streammatch/internal/match"
)

// newEngine wires a resolver and a freshly loaded database store.
func newEngine(ctx *commandContext, cmd *cobra.Command, needsDB bool) (*engine.Engine, *chandb.Store, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	resolver, err := match.NewResolver(cfg.ResolverConfig())
	if err != nil {
		return nil, nil, err
	}
	store := chandb.NewStore()
	if needsDB {
		if cfg.DatabaseDir == "" {
			return nil, nil, fmt.Errorf("no database directory configured (--database-dir, config file or %s)", "STREAMMATCH_DATABASE_DIR")
		}
		if err := store.Reload(cmd.Context(), cfg.DatabaseDir, log.WithComponent("chandb")); err != nil {
			return nil, nil, err
		}
	}
	eng := engine.New(store, resolver, cfg.Options(), log.WithComponent("engine"))
	return eng, store, nil
}

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var candidatesFile string
	var sortQuality bool

	cmd := &cobra.Command{
		Use:   "match <query> [candidate]...",
		Short: "Find the best matching candidate for a channel name",
		Long: `Find the best matching candidate for a channel name.

Candidates come from the arguments, from --candidates (one name per
line), or from the premium channels of the configured database when
neither is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]
			candidates := args[1:]

			if candidatesFile != "" {
				fromFile, err := readLines(candidatesFile)
				if err != nil {
					return err
				}
				candidates = append(candidates, fromFile...)
			}

			needsDB := len(candidates) == 0
			eng, store, err := newEngine(ctx, cmd, needsDB)
			if err != nil {
				return err
			}
			if needsDB {
				candidates = store.Snapshot().PremiumNames()
			}
			if sortQuality {
				candidates = match.SortByQuality(candidates)
			}

			res := eng.Resolve(query, candidates)
			if res.Type == match.MatchNone {
				return fmt.Errorf("no match for %q", query)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", res.Name, res.Score, res.Type)
			return nil
		},
	}

	cmd.Flags().StringVar(&candidatesFile, "candidates", "", "File with candidate names, one per line")
	cmd.Flags().BoolVar(&sortQuality, "sort-quality", false, "Order candidates by quality precedence first")
	return cmd
}

func newCategoryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "category <name>",
		Short: "Resolve the database category for a channel name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := newEngine(ctx, cmd, true)
			if err != nil {
				return err
			}
			category, ok := eng.CategoryFor(args[0])
			if !ok {
				return fmt.Errorf("no category found for %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), category)
			return nil
		},
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
