package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/listboard/internal/config"
	"github.com/jask/listboard/internal/database/repository"
	"github.com/jask/listboard/internal/printer"
	"github.com/jask/listboard/internal/replay"
	"github.com/jask/listboard/internal/session"
)

func newReplayCmd() *cobra.Command {
	var (
		showIDs bool
		history int
	)
	cmd := &cobra.Command{
		Use:   "replay SCRIPT",
		Short: "Run a YAML script of list additions and drops, then print the board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger, closer, err := config.NewLogger(cfg.Log, os.Stderr)
			if err != nil {
				return err
			}
			defer closer.Close()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			script, err := replay.Parse(f)
			if err != nil {
				return err
			}

			s, err := session.Open(cfg, logger)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			rep, runErr := replay.Run(ctx, s.Board, s.Board.Catalog, script)

			pp := &printer.Pretty{Out: cmd.OutOrStdout(), ShowID: showIDs}
			pp.Board(s.Board.State())
			if history > 0 {
				recs, err := s.Board.History(ctx, repository.JournalFilters{Limit: history})
				if err != nil {
					return err
				}
				pp.Journal(recs)
			}
			if runErr != nil {
				return fmt.Errorf("replay stopped after %d of %d steps: %w", rep.Steps, len(script.Steps), runErr)
			}
			logger.Info("replay finished", "steps", rep.Steps, "lists_added", len(rep.AddedLists))
			return nil
		},
	}
	cmd.Flags().BoolVar(&showIDs, "ids", false, "show list and entry ids")
	cmd.Flags().IntVar(&history, "history", 0, "print the last N journal records")
	return cmd
}
