package main

import (
	"context"
	"fmt"

	"github.com/auditworks/navedit/internal/nav"
	"github.com/auditworks/navedit/internal/store"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var pushForce bool

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Replace the stored navigation tree with the local snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		doc, err := loadSnapshot()
		if err != nil {
			return err
		}

		findings := nav.Validate(doc.Tree)
		if len(findings) > 0 {
			fmt.Printf("Navigation has %d validation finding(s):\n", len(findings))
			for _, f := range findings {
				fmt.Printf("  ✗ %s\n", f)
			}
			if !pushForce {
				var proceed bool
				err := huh.NewForm(
					huh.NewGroup(
						huh.NewConfirm().
							Title(fmt.Sprintf("Push anyway with %d finding(s)?", len(findings))).
							Value(&proceed),
					),
				).Run()
				if err != nil {
					return err
				}
				if !proceed {
					fmt.Println("Push cancelled. Local snapshot is untouched.")
					return nil
				}
			}
		}

		client := store.NewClient(cfg.Endpoint, cfg.Token, cfg.Timeout())
		if err := client.Replace(context.Background(), doc.Tree); err != nil {
			// The snapshot stays on disk; the user can fix the problem and
			// retry the save.
			return err
		}

		fmt.Printf("Pushed %d items to %s\n", doc.Tree.Count(), cfg.Endpoint)
		return nil
	},
}

func init() {
	pushCmd.Flags().BoolVar(&pushForce, "force", false, "push even when validation findings exist, without prompting")
}
