// Package session coordinates structural edits over one navigation tree.
// A session owns a canonical tree snapshot, mediates every mutation through
// the nav package, and tracks which single node (if any) is under active
// text editing. Expansion state and the sort mode are carried alongside as
// display-only concerns; they never affect tree shape.
package session

import (
	"errors"

	"github.com/auditworks/navedit/internal/nav"
)

// Mode is the structural editing mode.
type Mode int

const (
	// ModeView renders the tree read-only.
	ModeView Mode = iota
	// ModeEdit allows structural mutations. At most one node may be under
	// active text editing at a time (the focused node).
	ModeEdit
)

// ErrNotEditing is returned when a focus operation is attempted outside edit
// mode.
var ErrNotEditing = errors.New("not in edit mode")

// Session is the edit-session state machine. All mutations are atomic: on
// failure the prior snapshot is kept unchanged.
type Session struct {
	tree    nav.Tree
	mode    Mode
	focused string   // id of the node under active text editing, "" when none
	undo    nav.Tree // snapshot taken when focus began, restored on cancel
	hasUndo bool

	dirty    bool
	expanded map[string]bool
	sortMode nav.SortMode
}

// New creates a session owning the given tree snapshot. The session starts
// in view mode with nothing focused and nothing expanded.
func New(tree nav.Tree) *Session {
	return &Session{
		tree:     tree,
		expanded: make(map[string]bool),
		sortMode: nav.SortOriginal,
	}
}

// Tree returns the canonical tree snapshot. Callers must not hold node paths
// across mutations; re-derive them from the tree after each call that edits.
func (s *Session) Tree() nav.Tree { return s.tree }

// Mode returns the current structural mode.
func (s *Session) Mode() Mode { return s.mode }

// Editing reports whether the session is in edit mode.
func (s *Session) Editing() bool { return s.mode == ModeEdit }

// FocusedID returns the id of the node under active text editing, or "".
func (s *Session) FocusedID() string { return s.focused }

// Dirty reports whether any mutation has been applied since New.
func (s *Session) Dirty() bool { return s.dirty }

// ToggleEditMode switches between view and edit mode. Entering or leaving
// edit mode always drops any focused node and its pending revert snapshot.
func (s *Session) ToggleEditMode() {
	if s.mode == ModeView {
		s.mode = ModeEdit
	} else {
		s.mode = ModeView
	}
	s.focused = ""
	s.undo = nil
	s.hasUndo = false
}

// StartEditing focuses one node for text editing. Only valid in edit mode.
// When another node is already focused the focus simply moves; its pending
// edits stay committed, and the revert point resets to the current tree.
func (s *Session) StartEditing(id string) error {
	if s.mode != ModeEdit {
		return ErrNotEditing
	}
	s.focused = id
	s.undo = s.tree
	s.hasUndo = true
	return nil
}

// CancelEditing drops focus and restores the tree to the snapshot taken when
// focus began, discarding uncommitted field edits. Copy-on-write mutation
// makes the restore a plain value swap.
func (s *Session) CancelEditing() {
	if s.hasUndo {
		s.tree = s.undo
	}
	s.focused = ""
	s.undo = nil
	s.hasUndo = false
}

// SaveChanges commits the focused node's edits and leaves edit mode
// entirely, returning the session to the plain display state.
func (s *Session) SaveChanges() {
	s.focused = ""
	s.undo = nil
	s.hasUndo = false
	s.mode = ModeView
}

// UpdateField edits one field of the node at p. When the edit changes the
// focused node's id (identity is content-derived), focus follows the node to
// its new id.
func (s *Session) UpdateField(p nav.Path, field nav.Field, value string) error {
	before, err := nav.NodeAt(s.tree, p)
	if err != nil {
		return err
	}
	updated, err := nav.UpdateField(s.tree, p, field, value)
	if err != nil {
		return err
	}
	s.tree = updated
	s.dirty = true
	if s.focused != "" && s.focused == before.ID {
		after, err := nav.NodeAt(updated, p)
		if err == nil {
			s.focused = after.ID
		}
	}
	return nil
}

// AddChild appends a placeholder child under the node at p, enters edit mode
// if needed, and focuses the new node so it opens for editing without an
// extra action. Returns the new node and its path in the updated tree.
func (s *Session) AddChild(p nav.Path) (nav.Node, nav.Path, error) {
	updated, child, err := nav.AddChild(s.tree, p)
	if err != nil {
		return nav.Node{}, nil, err
	}
	parent, _ := nav.NodeAt(updated, p)
	childPath := p.Child(len(parent.Children) - 1)
	s.commitNew(updated, child, parent.ID)
	return child, childPath, nil
}

// AddTopLevel appends a placeholder node to the top-level sequence and
// focuses it, entering edit mode if needed.
func (s *Session) AddTopLevel() (nav.Node, nav.Path) {
	updated, node := nav.AddTopLevel(s.tree)
	s.commitNew(updated, node, "")
	return node, nav.Path{len(updated) - 1}
}

// commitNew installs a tree containing a freshly created node and moves the
// session to edit mode focused on it. The revert point is the tree with the
// node already present: cancel discards field edits, not the insertion.
func (s *Session) commitNew(updated nav.Tree, node nav.Node, parentID string) {
	s.tree = updated
	s.dirty = true
	s.mode = ModeEdit
	s.focused = node.ID
	s.undo = updated
	s.hasUndo = true
	if parentID != "" {
		s.expanded[parentID] = true
	}
}

// RemoveNode removes the node at p and its whole subtree. Removing the
// focused node drops focus. Removing any other node while one is focused
// also removes it from the revert snapshot, so a later cancel discards the
// focused node's field edits without resurrecting the removed subtree.
func (s *Session) RemoveNode(p nav.Path) error {
	removed, err := nav.NodeAt(s.tree, p)
	if err != nil {
		return err
	}
	updated, err := nav.RemoveNode(s.tree, p)
	if err != nil {
		return err
	}
	s.tree = updated
	s.dirty = true
	if s.focused == removed.ID {
		s.focused = ""
		s.undo = nil
		s.hasUndo = false
	} else if s.hasUndo {
		// The snapshot has the same shape as the tree had (field edits never
		// reshape it and adds reset it), so the same path applies.
		if reverted, err := nav.RemoveNode(s.undo, p); err == nil {
			s.undo = reverted
		}
	}
	return nil
}

// ToggleExpanded flips a node's subtree between expanded and collapsed.
func (s *Session) ToggleExpanded(id string) {
	s.expanded[id] = !s.expanded[id]
}

// Expanded reports whether a node's subtree is expanded.
func (s *Session) Expanded(id string) bool { return s.expanded[id] }

// SortMode returns the current display sort mode.
func (s *Session) SortMode() nav.SortMode { return s.sortMode }

// SetSortMode selects the display sort mode.
func (s *Session) SetSortMode(mode nav.SortMode) { s.sortMode = mode }

// ToggleSortMode switches between original and A-Z ordering.
func (s *Session) ToggleSortMode() {
	if s.sortMode == nav.SortOriginal {
		s.sortMode = nav.SortAZ
	} else {
		s.sortMode = nav.SortOriginal
	}
}

// View returns the tree ordered by the current sort mode. The view is a
// distinct copy; the canonical tree keeps capture order.
func (s *Session) View() nav.Tree {
	return nav.ApplySort(s.tree, s.sortMode)
}

// Validate runs the structural validator over the canonical tree.
func (s *Session) Validate() []string {
	return nav.Validate(s.tree)
}
