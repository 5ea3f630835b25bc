package nav

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortMode selects how ApplySort orders nodes.
type SortMode string

const (
	// SortOriginal orders by each node's capture-time order value. Ties keep
	// their input order, which makes repeated application a fixed point.
	SortOriginal SortMode = "original"
	// SortAZ orders alphabetically by label, locale-aware and case-insensitive.
	SortAZ SortMode = "az"
)

// ApplySort returns a sorted view of the tree: every level of the result is a
// structurally distinct copy ordered by mode, recursively. The input tree and
// its nodes are left untouched, so the canonical tree can keep its capture
// order while a display layer renders the view.
func ApplySort(t Tree, mode SortMode) Tree {
	out := t.Clone()
	// Collators carry internal buffers, so build one per call rather than
	// sharing package state.
	var c *collate.Collator
	if mode == SortAZ {
		c = collate.New(language.Und, collate.IgnoreCase)
	}
	sortLevel(out, mode, c)
	return out
}

func sortLevel(nodes Tree, mode SortMode, c *collate.Collator) {
	if mode == SortAZ {
		sort.SliceStable(nodes, func(i, j int) bool {
			return c.CompareString(nodes[i].Label, nodes[j].Label) < 0
		})
	} else {
		sort.SliceStable(nodes, func(i, j int) bool {
			return nodes[i].Order < nodes[j].Order
		})
	}
	for i := range nodes {
		sortLevel(nodes[i].Children, mode, c)
	}
}
