package tui

import (
	"testing"

	"github.com/auditworks/navedit/internal/nav"
	"github.com/auditworks/navedit/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sendKey(m tea.Model, key string) tea.Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return updated
}

func sendSpecialKey(m tea.Model, key tea.KeyType) tea.Model {
	updated, _ := m.Update(tea.KeyMsg{Type: key})
	return updated
}

func testModel() Model {
	tree := nav.Tree{
		{
			ID: nav.NodeID("Home", "/"), Label: "Home", Href: "/", Order: 0,
			Children: nav.Tree{
				{ID: nav.NodeID("Team", "/team"), Label: "Team", Href: "/team", Order: 0},
			},
		},
		{ID: nav.NodeID("About", "/about"), Label: "About", Href: "/about", Order: 1},
	}
	m := NewModel(session.New(tree), "https://example.com")
	var model tea.Model = m
	model, _ = model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return model.(Model)
}

func TestModel_InitialRows(t *testing.T) {
	m := testModel()

	require.Len(t, m.rows, 2, "children start collapsed")
	assert.Equal(t, 0, m.cursor)
	assert.False(t, m.Saved)
}

func TestModel_Navigation(t *testing.T) {
	var model tea.Model = testModel()

	model = sendKey(model, "j")
	assert.Equal(t, 1, model.(Model).cursor)

	model = sendKey(model, "j") // stays at last row
	assert.Equal(t, 1, model.(Model).cursor)

	model = sendKey(model, "k")
	assert.Equal(t, 0, model.(Model).cursor)
}

func TestModel_ExpandCollapse(t *testing.T) {
	var model tea.Model = testModel()

	model = sendKey(model, "l")
	require.Len(t, model.(Model).rows, 3)

	model = sendKey(model, "h")
	require.Len(t, model.(Model).rows, 2)
}

func TestModel_EnterIgnoredOutsideEditMode(t *testing.T) {
	var model tea.Model = testModel()

	model = sendSpecialKey(model, tea.KeyEnter)
	m := model.(Model)
	assert.False(t, m.overlay.Active())
	assert.Empty(t, m.sess.FocusedID())
}

func TestModel_EditFlow_SaveCommitsAndExitsToView(t *testing.T) {
	var model tea.Model = testModel()

	model = sendKey(model, "e") // enter edit mode
	assert.True(t, model.(Model).sess.Editing())

	model = sendSpecialKey(model, tea.KeyEnter) // focus Home, open label overlay
	m := model.(Model)
	require.True(t, m.overlay.Active())
	assert.NotEmpty(t, m.sess.FocusedID())

	// Replace the label text and submit.
	m.overlay.input.SetValue("Start")
	model = m
	model = sendSpecialKey(model, tea.KeyEnter) // confirm label, opens href overlay
	m = model.(Model)
	require.True(t, m.overlay.Active())
	assert.Equal(t, "/", m.overlay.input.Value(), "href overlay pre-fills the current value")

	model = sendSpecialKey(model, tea.KeyEnter) // confirm href unchanged
	m = model.(Model)
	assert.False(t, m.overlay.Active())
	assert.False(t, m.sess.Editing(), "save exits to view mode")
	assert.Equal(t, "Start", m.sess.Tree()[0].Label)
	assert.Equal(t, nav.NodeID("Start", "/"), m.sess.Tree()[0].ID)
}

func TestModel_EditFlow_EscReverts(t *testing.T) {
	var model tea.Model = testModel()

	model = sendKey(model, "e")
	model = sendSpecialKey(model, tea.KeyEnter)
	m := model.(Model)
	m.overlay.input.SetValue("Scratch")
	model = m

	model = sendSpecialKey(model, tea.KeyEscape)
	m = model.(Model)
	assert.False(t, m.overlay.Active())
	assert.Equal(t, "Home", m.sess.Tree()[0].Label, "cancel keeps the prior snapshot")
	assert.Empty(t, m.sess.FocusedID())
}

func TestModel_AddChild_OpensEditorOnNewNode(t *testing.T) {
	var model tea.Model = testModel()

	model = sendKey(model, "a")
	m := model.(Model)
	require.True(t, m.overlay.Active())
	assert.True(t, m.sess.Editing())
	assert.Equal(t, nav.NodeID(nav.NewItemLabel, nav.NewItemHref), m.sess.FocusedID())
	require.Len(t, m.sess.Tree()[0].Children, 2)
	// The parent was expanded so the new row is visible and under the cursor.
	row, ok := m.currentRow()
	require.True(t, ok)
	assert.Equal(t, nav.Path{0, 1}, row.Path)
}

func TestModel_AddChildFromSortedView_TargetsSelectedNode(t *testing.T) {
	var model tea.Model = testModel()

	model = sendKey(model, "s") // A-Z view puts About before Home
	require.Equal(t, "About", model.(Model).rows[0].Node.Label)

	model = sendKey(model, "a")
	m := model.(Model)
	tree := m.sess.Tree()
	require.Len(t, tree[1].Children, 1, "child lands under the node the cursor was on")
	assert.Equal(t, nav.NewItemLabel, tree[1].Children[0].Label)
	assert.Len(t, tree[0].Children, 1, "other subtrees keep their shape")

	// Edit mode renders canonical order, so the new row sits under About.
	row, ok := m.currentRow()
	require.True(t, ok)
	assert.Equal(t, nav.Path{1, 0}, row.Path)
}

func TestModel_AddTopLevel(t *testing.T) {
	var model tea.Model = testModel()

	model = sendKey(model, "A")
	m := model.(Model)
	assert.Len(t, m.sess.Tree(), 3)
	assert.True(t, m.overlay.Active())
}

func TestModel_DeleteRequiresEditMode(t *testing.T) {
	var model tea.Model = testModel()

	model = sendKey(model, "d")
	assert.Len(t, model.(Model).sess.Tree(), 2)

	model = sendKey(model, "e")
	model = sendKey(model, "j") // About, a leaf
	model = sendKey(model, "d")
	m := model.(Model)
	require.Len(t, m.sess.Tree(), 1)
	assert.Equal(t, "Home", m.sess.Tree()[0].Label)
}

func TestModel_DeleteSubtreeAsksForConfirmation(t *testing.T) {
	var model tea.Model = testModel()

	model = sendKey(model, "e")
	model = sendKey(model, "d") // Home has a child
	m := model.(Model)
	require.True(t, m.overlay.Active())
	assert.Len(t, m.sess.Tree(), 2, "nothing removed before confirmation")

	model = sendSpecialKey(model, tea.KeyEnter) // default button is OK
	m = model.(Model)
	assert.Len(t, m.sess.Tree(), 1)
}

func TestModel_SortToggleIsViewOnly(t *testing.T) {
	var model tea.Model = testModel()

	model = sendKey(model, "s")
	m := model.(Model)
	assert.Equal(t, nav.SortAZ, m.sess.SortMode())
	assert.Equal(t, "About", m.rows[0].Node.Label, "rows follow the sort view")
	assert.Equal(t, "Home", m.sess.Tree()[0].Label, "canonical tree keeps capture order")

	// Edit mode pins the pane to canonical order so row paths stay valid.
	model = sendKey(model, "e")
	assert.Equal(t, "Home", model.(Model).rows[0].Node.Label)
}

func TestModel_QuitCleanExitsImmediately(t *testing.T) {
	var model tea.Model = testModel()

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, updated.(Model).quitting)
	require.NotNil(t, cmd)
}

func TestModel_QuitDirtyAsksForConfirmation(t *testing.T) {
	var model tea.Model = testModel()

	model = sendKey(model, "A") // dirty now
	model = sendSpecialKey(model, tea.KeyEscape) // close the label overlay

	model = sendKey(model, "q")
	m := model.(Model)
	require.True(t, m.overlay.Active())
	assert.False(t, m.quitting)
}

func TestModel_CtrlSMarksSaved(t *testing.T) {
	var model tea.Model = testModel()

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.True(t, updated.(Model).Saved)
	require.NotNil(t, cmd)
}
