package main

import (
	"fmt"

	"github.com/auditworks/navedit/internal/nav"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var rmForce bool

var rmCmd = &cobra.Command{
	Use:   "rm <path>",
	Short: "Remove the item at a dotted index path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := nav.ParsePath(args[0])
		if err != nil {
			return err
		}

		doc, err := loadSnapshot()
		if err != nil {
			return err
		}

		node, err := nav.NodeAt(doc.Tree, path)
		if err != nil {
			return err
		}

		if len(node.Children) > 0 && !rmForce {
			var proceed bool
			err := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Remove %q and its %d descendant(s)?", node.Label, node.Children.Count())).
						Value(&proceed),
				),
			).Run()
			if err != nil {
				return err
			}
			if !proceed {
				fmt.Println("Nothing removed.")
				return nil
			}
		}

		doc.Tree, err = nav.RemoveNode(doc.Tree, path)
		if err != nil {
			return err
		}

		if err := saveSnapshot(doc); err != nil {
			return err
		}

		fmt.Printf("Removed %q\n", node.Label)
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolVarP(&rmForce, "force", "f", false, "remove subtrees without prompting")
}
