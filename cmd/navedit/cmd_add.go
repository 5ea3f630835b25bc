package main

import (
	"fmt"

	"github.com/auditworks/navedit/internal/nav"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [<path>]",
	Short: "Add a placeholder item, as a child of <path> or at the top level",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadSnapshot()
		if err != nil {
			return err
		}

		var node nav.Node
		if len(args) == 1 {
			path, err := nav.ParsePath(args[0])
			if err != nil {
				return err
			}
			doc.Tree, node, err = nav.AddChild(doc.Tree, path)
			if err != nil {
				return err
			}
		} else {
			doc.Tree, node = nav.AddTopLevel(doc.Tree)
		}

		if err := saveSnapshot(doc); err != nil {
			return err
		}

		fmt.Printf("Added %q (id %s); set its label and href with 'navedit set'\n", node.Label, node.ID)
		return nil
	},
}
