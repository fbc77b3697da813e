package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/listboard/internal/config"
	"github.com/jask/listboard/internal/session"
	"github.com/jask/listboard/internal/tui"
)

func newUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			// the terminal belongs to the board; logs go to log.file or nowhere
			logger, closer, err := config.NewLogger(cfg.Log, io.Discard)
			if err != nil {
				return err
			}
			defer closer.Close()

			s, err := session.Open(cfg, logger)
			if err != nil {
				return err
			}
			defer s.Close()

			p := tea.NewProgram(tui.New(context.Background(), cfg, tui.Services{
				Board:       s.Board,
				Maintenance: s.Maintenance,
			}), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("ui: %w", err)
			}
			return nil
		},
	}
}
