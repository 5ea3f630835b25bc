package nav

// Node is a single navigation entry captured during a site audit.
type Node struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Href     string `json:"href"`
	Children Tree   `json:"children,omitempty"`
	Order    int    `json:"order,omitempty"`
	Path     string `json:"path,omitempty"`
}

// Tree is an ordered forest of navigation nodes. Each node exclusively owns
// its children; subtrees are never shared between nodes.
type Tree []Node

// Clone returns a deep copy of the tree. Mutating the copy never affects the
// original at any depth.
func (t Tree) Clone() Tree {
	if t == nil {
		return nil
	}
	out := make(Tree, len(t))
	for i, n := range t {
		n.Children = n.Children.Clone()
		out[i] = n
	}
	return out
}

// Count returns the total number of nodes in the tree, at all depths.
func (t Tree) Count() int {
	count := 0
	for _, n := range t {
		count += 1 + n.Children.Count()
	}
	return count
}

// Walk visits every node in depth-first order, passing the node's path from
// the top level. The path slice is reused between calls; callers that retain
// it must copy it.
func (t Tree) Walk(visit func(p Path, n Node)) {
	t.walk(nil, visit)
}

func (t Tree) walk(prefix Path, visit func(p Path, n Node)) {
	for i, n := range t {
		p := append(prefix, i)
		visit(p, n)
		n.Children.walk(p, visit)
	}
}
