package main

import (
	"fmt"

	"github.com/auditworks/navedit/cmd/navedit/tui"
	"github.com/auditworks/navedit/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the navigation tree interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadSnapshot()
		if err != nil {
			return err
		}

		m := tui.NewModel(session.New(doc.Tree), doc.BaseURL)
		p := tea.NewProgram(m, tea.WithAltScreen())
		final, err := p.Run()
		if err != nil {
			return fmt.Errorf("running editor: %w", err)
		}

		result, ok := final.(tui.Model)
		if !ok || !result.Saved {
			fmt.Println("No changes written.")
			return nil
		}

		doc.Tree = result.Tree()
		if err := saveSnapshot(doc); err != nil {
			return err
		}
		fmt.Printf("Wrote %d items to the local snapshot. Run 'navedit push' to publish.\n", doc.Tree.Count())
		return nil
	},
}
