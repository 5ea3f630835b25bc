package main

import (
	"fmt"

	"github.com/auditworks/navedit/internal/nav"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <path> <label|href> <value>",
	Short: "Set a field on the node at a dotted index path",
	Long:  "Set the label or href of one node. Paths are dotted zero-based indices, e.g. '1.0' is the second top-level item's first child. The node's id is recomputed from the updated label/href pair.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := nav.ParsePath(args[0])
		if err != nil {
			return err
		}
		field := nav.Field(args[1])

		doc, err := loadSnapshot()
		if err != nil {
			return err
		}

		updated, err := nav.UpdateField(doc.Tree, path, field, args[2])
		if err != nil {
			return err
		}
		doc.Tree = updated

		if err := saveSnapshot(doc); err != nil {
			return err
		}

		node, _ := nav.NodeAt(updated, path)
		fmt.Printf("Updated %s at %s (id %s)\n", field, path, node.ID)
		return nil
	},
}
