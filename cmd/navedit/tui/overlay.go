package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// OverlayType identifies the kind of modal overlay.
type OverlayType int

const (
	OverlayConfirm   OverlayType = iota // Yes/No confirmation
	OverlayTextInput                    // Single-line text input
	OverlaySummary                      // Multi-line read-only text, dismiss with any of esc/enter
)

// OverlayCloseMsg is produced when an overlay closes.
type OverlayCloseMsg struct {
	Confirmed bool
	Result    string // text input value, when Confirmed
}

// Overlay renders a centered modal box on top of existing content.
type Overlay struct {
	overlayType OverlayType
	title       string
	message     string // body text (for Confirm, Summary)
	cursor      int    // button index (Confirm: 0=Cancel, 1=OK)
	input       textinput.Model
	width       int
	active      bool
}

// NewConfirmOverlay creates a confirmation dialog with Cancel/OK buttons.
func NewConfirmOverlay(title, message string) Overlay {
	return Overlay{
		overlayType: OverlayConfirm,
		title:       title,
		message:     message,
		cursor:      1, // default to OK
		active:      true,
	}
}

// NewTextInputOverlay creates a text input dialog pre-filled with the current
// value.
func NewTextInputOverlay(title, placeholder, value string) Overlay {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 40
	return Overlay{
		overlayType: OverlayTextInput,
		title:       title,
		input:       ti,
		active:      true,
	}
}

// NewSummaryOverlay creates a read-only text overlay.
func NewSummaryOverlay(title, body string) Overlay {
	return Overlay{
		overlayType: OverlaySummary,
		title:       title,
		message:     body,
		active:      true,
	}
}

// Active returns whether the overlay is currently shown.
func (o Overlay) Active() bool {
	return o.active
}

// Update handles key messages for the overlay.
func (o Overlay) Update(msg tea.Msg) (Overlay, tea.Cmd) {
	if !o.active {
		return o, nil
	}

	switch o.overlayType {
	case OverlayConfirm:
		return o.updateConfirm(msg)
	case OverlayTextInput:
		return o.updateTextInput(msg)
	case OverlaySummary:
		return o.updateSummary(msg)
	}
	return o, nil
}

func (o Overlay) updateConfirm(msg tea.Msg) (Overlay, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			o.active = false
			return o, func() tea.Msg {
				return OverlayCloseMsg{Confirmed: false}
			}
		case "tab", "left", "right", "h", "l":
			o.cursor = 1 - o.cursor // toggle between 0 and 1
		case "enter":
			o.active = false
			return o, func() tea.Msg {
				return OverlayCloseMsg{Confirmed: o.cursor == 1}
			}
		}
	}
	return o, nil
}

func (o Overlay) updateTextInput(msg tea.Msg) (Overlay, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			o.active = false
			return o, func() tea.Msg {
				return OverlayCloseMsg{Confirmed: false}
			}
		case "enter":
			value := o.input.Value()
			o.active = false
			return o, func() tea.Msg {
				return OverlayCloseMsg{Result: value, Confirmed: true}
			}
		}
	}

	// Delegate other keys to the text input.
	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd
}

func (o Overlay) updateSummary(msg tea.Msg) (Overlay, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "enter", "q":
			o.active = false
			return o, func() tea.Msg {
				return OverlayCloseMsg{Confirmed: true}
			}
		}
	}
	return o, nil
}

// View renders the overlay box. It does not composite over a background;
// that is the caller's responsibility using Composite().
func (o Overlay) View() string {
	if !o.active {
		return ""
	}

	var content string
	switch o.overlayType {
	case OverlayConfirm:
		content = o.viewConfirm()
	case OverlayTextInput:
		content = o.viewTextInput()
	case OverlaySummary:
		content = o.viewSummary()
	}

	return OverlayStyle.Render(content)
}

func (o Overlay) viewConfirm() string {
	var b strings.Builder
	b.WriteString(OverlayTitleStyle.Render(o.title))
	b.WriteString("\n\n")
	b.WriteString(o.message)
	b.WriteString("\n\n")
	b.WriteString(o.renderButtons("Cancel", "OK"))
	return b.String()
}

func (o Overlay) viewTextInput() string {
	var b strings.Builder
	b.WriteString(OverlayTitleStyle.Render(o.title))
	b.WriteString("\n\n")
	b.WriteString(o.input.View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(colorOverlay0).Render("Enter: save  Esc: cancel"))
	return b.String()
}

func (o Overlay) viewSummary() string {
	var b strings.Builder
	b.WriteString(OverlayTitleStyle.Render(o.title))
	b.WriteString("\n\n")
	b.WriteString(o.message)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(colorOverlay0).Render("Esc: close"))
	return b.String()
}

// renderButtons draws two side-by-side buttons with the cursor on one.
func (o Overlay) renderButtons(cancel, ok string) string {
	var cancelBtn, okBtn string
	if o.cursor == 0 {
		cancelBtn = OverlayButtonActiveStyle.Render(cancel)
		okBtn = OverlayButtonInactiveStyle.Render(ok)
	} else {
		cancelBtn = OverlayButtonInactiveStyle.Render(cancel)
		okBtn = OverlayButtonActiveStyle.Render(ok)
	}
	return cancelBtn + "  " + okBtn
}

// Composite places the overlay box centered on top of the background string.
// The background is expected to be a fully rendered terminal frame.
func Composite(background string, overlay string, totalWidth, totalHeight int) string {
	if overlay == "" {
		return background
	}

	bgLines := strings.Split(background, "\n")
	for len(bgLines) < totalHeight {
		bgLines = append(bgLines, "")
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayHeight := len(overlayLines)
	overlayWidth := 0
	for _, line := range overlayLines {
		w := ansi.StringWidth(line)
		if w > overlayWidth {
			overlayWidth = w
		}
	}

	startRow := (totalHeight - overlayHeight) / 2
	if startRow < 0 {
		startRow = 0
	}
	startCol := (totalWidth - overlayWidth) / 2
	if startCol < 0 {
		startCol = 0
	}

	for i, overlayLine := range overlayLines {
		row := startRow + i
		if row >= len(bgLines) {
			break
		}

		bgLine := bgLines[row]
		bgRunes := []rune(bgLine)

		leftPad := ""
		if startCol > 0 {
			if startCol <= len(bgRunes) {
				leftPad = string(bgRunes[:startCol])
			} else {
				leftPad = string(bgRunes) + strings.Repeat(" ", startCol-len(bgRunes))
			}
		}

		overlayEnd := startCol + ansi.StringWidth(overlayLine)
		rightPad := ""
		if overlayEnd < len(bgRunes) {
			rightPad = string(bgRunes[overlayEnd:])
		}

		bgLines[row] = leftPad + overlayLine + rightPad
	}

	return strings.Join(bgLines[:totalHeight], "\n")
}

// SetWidth sets the overlay box width hint.
func (o *Overlay) SetWidth(w int) {
	o.width = w
	if o.overlayType == OverlayTextInput {
		inputWidth := w - 6 // account for overlay padding and border
		if inputWidth < 20 {
			inputWidth = 20
		}
		o.input.Width = inputWidth
	}
}

// OverlayMaxWidth returns a reasonable maximum width for the overlay content.
func OverlayMaxWidth(termWidth int) int {
	w := termWidth * 2 / 3
	if w < 40 {
		w = 40
	}
	if w > 64 {
		w = 64
	}
	return w
}
