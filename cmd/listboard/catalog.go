package main

import (
	"github.com/spf13/cobra"

	"github.com/jask/listboard/internal/catalog"
	"github.com/jask/listboard/internal/identity"
	"github.com/jask/listboard/internal/printer"
)

func newCatalogCmd() *cobra.Command {
	var showIDs bool
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the configured template catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			cat, err := catalog.FromLabels(cfg.Catalog.Templates, identity.New())
			if err != nil {
				return err
			}
			(&printer.Pretty{Out: cmd.OutOrStdout(), ShowID: showIDs}).Catalog(cat)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showIDs, "ids", false, "show template ids")
	return cmd
}
