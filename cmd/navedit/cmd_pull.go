package main

import (
	"context"
	"fmt"

	"github.com/auditworks/navedit/internal/store"
	"github.com/spf13/cobra"
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Fetch the navigation tree from the audit backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client := store.NewClient(cfg.Endpoint, cfg.Token, cfg.Timeout())
		doc, err := client.Fetch(context.Background())
		if err != nil {
			return err
		}

		if err := saveSnapshot(doc); err != nil {
			return err
		}

		fmt.Printf("Pulled %d items for %s\n", doc.Tree.Count(), doc.BaseURL)
		return nil
	},
}
