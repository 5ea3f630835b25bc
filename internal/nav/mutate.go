package nav

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrPathNotFound is returned when any index along a path is out of range for
// the sequence at that depth. The operation that failed produced no change.
var ErrPathNotFound = errors.New("path not found")

// Path addresses a node as zero-based indices descending from the top-level
// sequence. Paths are positional: any insert or remove above the target
// invalidates paths held by the caller, so re-derive them from the returned
// tree after every mutation.
type Path []int

// ParsePath parses a dotted index path like "1.0" into a Path.
func ParsePath(s string) (Path, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty path")
	}
	parts := strings.Split(s, ".")
	p := make(Path, len(parts))
	for i, part := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("invalid path segment %q", part)
		}
		p[i] = idx
	}
	return p, nil
}

// String renders the path in the dotted form accepted by ParsePath.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, idx := range p {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ".")
}

// Child returns a new path extended by one index.
func (p Path) Child(idx int) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = idx
	return child
}

// Field names a mutable text field of a node.
type Field string

const (
	FieldLabel Field = "label"
	FieldHref  Field = "href"
)

// NewItemLabel and NewItemHref are the placeholder values for freshly created
// nodes.
const (
	NewItemLabel = "New Item"
	NewItemHref  = "#"
)

// NodeAt resolves the node at the given path.
func NodeAt(t Tree, p Path) (Node, error) {
	nodes := t
	var node Node
	if len(p) == 0 {
		return Node{}, fmt.Errorf("resolving empty path: %w", ErrPathNotFound)
	}
	for depth, idx := range p {
		if idx < 0 || idx >= len(nodes) {
			return Node{}, fmt.Errorf("index %d at depth %d: %w", idx, depth, ErrPathNotFound)
		}
		node = nodes[idx]
		nodes = node.Children
	}
	return node, nil
}

// nodeRef resolves a mutable pointer to the node at p inside a tree the
// caller already owns (i.e. a fresh clone).
func nodeRef(t Tree, p Path) (*Node, error) {
	nodes := t
	var node *Node
	if len(p) == 0 {
		return nil, fmt.Errorf("resolving empty path: %w", ErrPathNotFound)
	}
	for depth, idx := range p {
		if idx < 0 || idx >= len(nodes) {
			return nil, fmt.Errorf("index %d at depth %d: %w", idx, depth, ErrPathNotFound)
		}
		node = &nodes[idx]
		nodes = node.Children
	}
	return node, nil
}

// UpdateField returns a tree where the node at p has the given field set to
// value and its id recomputed from the resulting label/href pair. Every other
// node is value-equal to its counterpart in the input; the input tree is
// never modified.
func UpdateField(t Tree, p Path, field Field, value string) (Tree, error) {
	if field != FieldLabel && field != FieldHref {
		return nil, fmt.Errorf("unknown field %q", field)
	}
	out := t.Clone()
	node, err := nodeRef(out, p)
	if err != nil {
		return nil, err
	}
	switch field {
	case FieldLabel:
		node.Label = value
	case FieldHref:
		node.Href = value
	}
	node.ID = NodeID(node.Label, node.Href)
	return out, nil
}

// AddChild returns a tree where the node at p has gained one placeholder
// child, appended after its existing children. The new node's order records
// its position among its siblings at creation time.
func AddChild(t Tree, p Path) (Tree, Node, error) {
	out := t.Clone()
	parent, err := nodeRef(out, p)
	if err != nil {
		return nil, Node{}, err
	}
	child := Node{
		ID:    NodeID(NewItemLabel, NewItemHref),
		Label: NewItemLabel,
		Href:  NewItemHref,
		Order: len(parent.Children),
	}
	parent.Children = append(parent.Children, child)
	return out, child, nil
}

// AddTopLevel returns a tree with one placeholder node appended to the
// top-level sequence.
func AddTopLevel(t Tree) (Tree, Node) {
	out := t.Clone()
	node := Node{
		ID:    NodeID(NewItemLabel, NewItemHref),
		Label: NewItemLabel,
		Href:  NewItemHref,
		Order: len(out),
	}
	return append(out, node), node
}

// RemoveNode returns a tree with the node at p (and its whole subtree)
// removed. A parent whose last child is removed drops its children field
// entirely rather than keeping an empty sequence.
func RemoveNode(t Tree, p Path) (Tree, error) {
	out := t.Clone()
	if len(p) == 0 {
		return nil, fmt.Errorf("removing empty path: %w", ErrPathNotFound)
	}
	last := p[len(p)-1]
	if len(p) == 1 {
		if last < 0 || last >= len(out) {
			return nil, fmt.Errorf("index %d at depth 0: %w", last, ErrPathNotFound)
		}
		return append(out[:last], out[last+1:]...), nil
	}
	parent, err := nodeRef(out, p[:len(p)-1])
	if err != nil {
		return nil, err
	}
	if last < 0 || last >= len(parent.Children) {
		return nil, fmt.Errorf("index %d at depth %d: %w", last, len(p)-1, ErrPathNotFound)
	}
	parent.Children = append(parent.Children[:last], parent.Children[last+1:]...)
	if len(parent.Children) == 0 {
		parent.Children = nil
	}
	return out, nil
}
