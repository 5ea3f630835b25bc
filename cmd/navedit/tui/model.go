package tui

import (
	"fmt"
	"strings"

	"github.com/auditworks/navedit/internal/nav"
	"github.com/auditworks/navedit/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// overlayContext tracks what the currently-active overlay was opened for.
type overlayContext int

const (
	overlayNone          overlayContext = iota
	overlayEditLabel                    // text input for the focused node's label
	overlayEditHref                     // text input for the focused node's href
	overlayRemoveConfirm                // subtree removal confirmation
	overlayQuitConfirm                  // quit with unsaved changes confirmation
	overlayFindings                     // validation findings summary
)

// Model is the bubbletea model for the interactive navigation editor. It
// wraps one edit session; every structural change goes through the session
// and the visible rows are rebuilt from the session's tree afterwards.
type Model struct {
	sess    *session.Session
	baseURL string

	rows   []Row
	cursor int

	overlay    Overlay
	overlayCtx overlayContext
	editPath   nav.Path // path of the node whose fields are being edited
	removePath nav.Path // path pending removal confirmation

	width, height int
	ready         bool
	quitting      bool

	// Saved is set when the user wrote their changes; cmd_edit reads it
	// after the program exits.
	Saved bool
}

// NewModel creates the editor model over an edit session.
func NewModel(sess *session.Session, baseURL string) Model {
	m := Model{
		sess:    sess,
		baseURL: baseURL,
	}
	m.rebuildRows()
	return m
}

// Tree returns the session's canonical tree, for the caller to persist after
// the program exits.
func (m Model) Tree() nav.Tree {
	return m.sess.Tree()
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.overlay.SetWidth(OverlayMaxWidth(m.width))
		return m, nil
	}

	// When an overlay is active, route all messages to it.
	if m.overlay.Active() {
		return m.updateOverlay(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if m.sess.Dirty() && !m.Saved {
			m.overlay = NewConfirmOverlay("Quit", "Discard unsaved changes and exit?")
			m.overlayCtx = overlayQuitConfirm
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case "ctrl+s":
		m.Saved = true
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case " ", "right", "l", "left", "h":
		if row, ok := m.currentRow(); ok && row.HasChildren {
			m.sess.ToggleExpanded(row.Node.ID)
			m.rebuildRows()
		}

	case "e":
		m.sess.ToggleEditMode()
		// View mode renders the sorted view, edit mode the canonical order,
		// so the rows change shape on toggle.
		m.rebuildRows()

	case "s":
		if !m.sess.Editing() {
			m.sess.ToggleSortMode()
			m.rebuildRows()
		}

	case "enter":
		row, ok := m.currentRow()
		if !ok {
			return m, nil
		}
		if err := m.sess.StartEditing(row.Node.ID); err != nil {
			return m, nil // not in edit mode
		}
		m.editPath = row.Path
		m.openLabelOverlay(row.Node.Label)

	case "a":
		if row, ok := m.currentRow(); ok {
			parent, ok := m.canonicalRowPath(row)
			if !ok {
				return m, nil
			}
			_, path, err := m.sess.AddChild(parent)
			if err != nil {
				return m, nil
			}
			m.beginEditingNew(path)
		} else {
			_, path := m.sess.AddTopLevel()
			m.beginEditingNew(path)
		}

	case "A":
		_, path := m.sess.AddTopLevel()
		m.beginEditingNew(path)

	case "d":
		row, ok := m.currentRow()
		if !ok || !m.sess.Editing() {
			return m, nil
		}
		if row.HasChildren {
			m.removePath = row.Path
			m.overlay = NewConfirmOverlay("Remove subtree",
				fmt.Sprintf("Remove %q and its %d descendant(s)?", row.Node.Label, row.Node.Children.Count()))
			m.overlayCtx = overlayRemoveConfirm
			return m, nil
		}
		if err := m.sess.RemoveNode(row.Path); err == nil {
			m.rebuildRows()
		}

	case "!":
		findings := m.sess.Validate()
		body := "No findings. The tree is well-formed."
		if len(findings) > 0 {
			body = strings.Join(findings, "\n")
		}
		m.overlay = NewSummaryOverlay("Validation", body)
		m.overlayCtx = overlayFindings
	}

	return m, nil
}

// beginEditingNew opens the label overlay for a freshly created node. The
// session has already focused it and entered edit mode.
func (m *Model) beginEditingNew(path nav.Path) {
	m.rebuildRows()
	m.editPath = path
	m.moveCursorTo(path)
	m.openLabelOverlay(nav.NewItemLabel)
}

func (m *Model) openLabelOverlay(current string) {
	m.overlay = NewTextInputOverlay("Label", "display text", current)
	m.overlay.SetWidth(OverlayMaxWidth(m.width))
	m.overlayCtx = overlayEditLabel
}

func (m *Model) openHrefOverlay(current string) {
	m.overlay = NewTextInputOverlay("Link target", "/path or https://...", current)
	m.overlay.SetWidth(OverlayMaxWidth(m.width))
	m.overlayCtx = overlayEditHref
}

func (m Model) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	wasActive := m.overlay.Active()
	var cmd tea.Cmd
	m.overlay, cmd = m.overlay.Update(msg)

	// When the overlay just closed, the cmd is an OverlayCloseMsg producer.
	// Handle it directly instead of sending it through the event loop.
	if wasActive && !m.overlay.Active() && cmd != nil {
		if closeMsg, ok := cmd().(OverlayCloseMsg); ok {
			return m.handleOverlayClose(closeMsg)
		}
	}

	return m, cmd
}

func (m Model) handleOverlayClose(msg OverlayCloseMsg) (tea.Model, tea.Cmd) {
	ctx := m.overlayCtx
	m.overlayCtx = overlayNone

	switch ctx {
	case overlayEditLabel:
		if !msg.Confirmed {
			m.sess.CancelEditing()
			m.rebuildRows()
			return m, nil
		}
		if err := m.sess.UpdateField(m.editPath, nav.FieldLabel, msg.Result); err != nil {
			m.sess.CancelEditing()
			m.rebuildRows()
			return m, nil
		}
		node, _ := nav.NodeAt(m.sess.Tree(), m.editPath)
		m.rebuildRows()
		m.openHrefOverlay(node.Href)

	case overlayEditHref:
		if !msg.Confirmed {
			m.sess.CancelEditing()
			m.rebuildRows()
			return m, nil
		}
		if err := m.sess.UpdateField(m.editPath, nav.FieldHref, msg.Result); err == nil {
			m.sess.SaveChanges()
		} else {
			m.sess.CancelEditing()
		}
		m.rebuildRows()

	case overlayRemoveConfirm:
		if msg.Confirmed {
			if err := m.sess.RemoveNode(m.removePath); err == nil {
				m.rebuildRows()
			}
		}
		m.removePath = nil

	case overlayQuitConfirm:
		if msg.Confirmed {
			m.quitting = true
			return m, tea.Quit
		}

	case overlayFindings:
		// Just dismiss.
	}

	return m, nil
}

// rebuildRows refreshes the visible rows from the session's current tree.
// Edit mode shows canonical capture order so that row paths stay valid for
// mutations; view mode shows the active sort view.
func (m *Model) rebuildRows() {
	tree := m.sess.Tree()
	if !m.sess.Editing() {
		tree = m.sess.View()
	}
	m.rows = VisibleRows(tree, m.sess.Expanded)
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// canonicalRowPath resolves a row to the selected node's path in the
// canonical tree. In edit mode rows are built from the canonical tree, so
// the row path is already correct; in view mode rows come from the sort
// view, whose positions can differ, so the node is looked up by id.
func (m Model) canonicalRowPath(row Row) (nav.Path, bool) {
	if m.sess.Editing() {
		return row.Path, true
	}
	var found nav.Path
	m.sess.Tree().Walk(func(p nav.Path, n nav.Node) {
		if found == nil && n.ID == row.Node.ID {
			found = append(nav.Path{}, p...)
		}
	})
	return found, found != nil
}

func (m Model) currentRow() (Row, bool) {
	if len(m.rows) == 0 || m.cursor < 0 || m.cursor >= len(m.rows) {
		return Row{}, false
	}
	return m.rows[m.cursor], true
}

// moveCursorTo places the cursor on the row with the given path, if visible.
func (m *Model) moveCursorTo(path nav.Path) {
	want := path.String()
	for i, row := range m.rows {
		if row.Path.String() == want {
			m.cursor = i
			return
		}
	}
}

// View satisfies tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	frame := m.renderFrame()
	if m.overlay.Active() {
		return Composite(frame, m.overlay.View(), m.width, m.height)
	}
	return frame
}

func (m Model) renderFrame() string {
	var b strings.Builder

	// Header: site + mode badge + sort mode.
	badge := ViewBadgeStyle.Render("VIEW")
	if m.sess.Editing() {
		badge = EditBadgeStyle.Render("EDIT")
	}
	title := m.baseURL
	if title == "" {
		title = "navigation"
	}
	b.WriteString(badge + " " + TitleStyle.Render(title) +
		HrefStyle.Render(fmt.Sprintf("  sort:%s", m.sess.SortMode())))
	b.WriteString("\n\n")

	// Tree pane.
	paneHeight := m.height - 4 // header (2) + status bar (2)
	if paneHeight < 1 {
		paneHeight = 1
	}
	start := 0
	if m.cursor >= paneHeight {
		start = m.cursor - paneHeight + 1
	}
	end := start + paneHeight
	if end > len(m.rows) {
		end = len(m.rows)
	}
	if len(m.rows) == 0 {
		b.WriteString(HrefStyle.Render("  (empty tree; press A to add a top-level item)"))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	// Status bar.
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	return b.String()
}

func (m Model) renderRow(i int) string {
	row := m.rows[i]

	marker := "•"
	if row.HasChildren {
		marker = "▸"
		if row.Expanded {
			marker = "▾"
		}
	}

	line := fmt.Sprintf("%s%s %s  %s",
		strings.Repeat("  ", row.Depth), marker, row.Node.Label, HrefStyle.Render(row.Node.Href))

	if m.sess.FocusedID() != "" && row.Node.ID == m.sess.FocusedID() {
		line = FocusedRowStyle.Render("✎ ") + line
	} else {
		line = "  " + line
	}

	if i == m.cursor {
		return CursorRowStyle.Render("▌") + line
	}
	return " " + line
}

func (m Model) renderStatusBar() string {
	findings := m.sess.Validate()
	health := CleanCountStyle.Render("✓ valid")
	if len(findings) > 0 {
		health = FindingCountStyle.Render(fmt.Sprintf("✗ %d finding(s)", len(findings)))
	}

	dirty := ""
	if m.sess.Dirty() && !m.Saved {
		dirty = DirtyMarkerStyle.Render(" [modified]")
	}

	hints := "e:edit-mode  s:sort  !:validate  ctrl+s:save  q:quit"
	if m.sess.Editing() {
		hints = "enter:edit item  a:add child  A:add top-level  d:delete  e:done  ctrl+s:save  q:quit"
	}

	left := fmt.Sprintf("%d items  %s%s", m.sess.Tree().Count(), health, dirty)
	return StatusBarStyle.Render(left + "   " + hints)
}

// Ensure Model satisfies tea.Model at compile time.
var _ tea.Model = Model{}
