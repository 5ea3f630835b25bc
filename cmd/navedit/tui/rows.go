package tui

import "github.com/auditworks/navedit/internal/nav"

// Row is one visible line of the tree pane.
type Row struct {
	Path        nav.Path
	Node        nav.Node
	Depth       int
	HasChildren bool
	Expanded    bool
}

// VisibleRows flattens a tree into display rows, descending only into
// expanded subtrees. Row paths index into the tree the rows were built from,
// so rebuild rows from the current tree after every mutation.
func VisibleRows(t nav.Tree, expanded func(id string) bool) []Row {
	var rows []Row
	appendRows(&rows, t, nil, 0, expanded)
	return rows
}

func appendRows(rows *[]Row, nodes nav.Tree, prefix nav.Path, depth int, expanded func(id string) bool) {
	for i, n := range nodes {
		p := prefix.Child(i)
		isOpen := expanded(n.ID)
		*rows = append(*rows, Row{
			Path:        p,
			Node:        n,
			Depth:       depth,
			HasChildren: len(n.Children) > 0,
			Expanded:    isOpen,
		})
		if isOpen {
			appendRows(rows, n.Children, p, depth+1, expanded)
		}
	}
}
