package main

import (
	"fmt"
	"strings"

	"github.com/auditworks/navedit/internal/nav"
	"github.com/spf13/cobra"
)

var showSort string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the local navigation snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadSnapshot()
		if err != nil {
			return err
		}

		mode := nav.SortMode(showSort)
		if mode != nav.SortOriginal && mode != nav.SortAZ {
			return fmt.Errorf("unknown sort mode %q (use %q or %q)", showSort, nav.SortOriginal, nav.SortAZ)
		}

		if doc.BaseURL != "" {
			fmt.Printf("%s (%d items)\n\n", doc.BaseURL, doc.Tree.Count())
		}
		printTree(nav.ApplySort(doc.Tree, mode), 0)
		return nil
	},
}

func printTree(nodes nav.Tree, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		fmt.Printf("%s• %s  %s\n", indent, n.Label, n.Href)
		printTree(n.Children, depth+1)
	}
}

func init() {
	showCmd.Flags().StringVar(&showSort, "sort", string(nav.SortOriginal), "sort mode: original or az")
}
