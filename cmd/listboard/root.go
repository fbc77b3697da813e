package main

import (
	"github.com/spf13/cobra"

	"github.com/jask/listboard/internal/config"
)

var configPath string

func newRootCmd() *cobra.Command {
	ui := newUICmd()
	root := &cobra.Command{
		Use:   "listboard",
		Short: "Build named lists by dragging templates from a catalog",
		Long: `listboard keeps any number of ordered lists. Items are copied out of a
fixed template catalog, reordered within a list and moved between lists.`,
		SilenceUsage: true,
		RunE:         ui.RunE,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $LISTBOARD_CONFIG or ~/.config/listboard/config.toml)")
	root.AddCommand(ui, newReplayCmd(), newCatalogCmd())
	return root
}

func loadConfig() (config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}
