package main

import (
	"fmt"

	"github.com/auditworks/navedit/internal/nav"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the local snapshot for structural defects",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadSnapshot()
		if err != nil {
			return err
		}

		findings := nav.Validate(doc.Tree)
		if len(findings) == 0 {
			fmt.Println("Navigation is well-formed.")
			return nil
		}

		for _, f := range findings {
			fmt.Printf("  ✗ %s\n", f)
		}
		return fmt.Errorf("%d validation finding(s)", len(findings))
	},
}
