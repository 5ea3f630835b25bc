package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

// Color constants extracted from the Mocha palette for convenience.
var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Header styles.
var (
	// TitleStyle renders the audited site's base URL at the top of the frame.
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	// ViewBadgeStyle marks the read-only display mode.
	ViewBadgeStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorBlue).
			Padding(0, 1)

	// EditBadgeStyle marks structural edit mode.
	EditBadgeStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorYellow).
			Padding(0, 1)
)

// Tree pane styles.
var (
	// CursorRowStyle highlights the row under the cursor.
	CursorRowStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Background(colorSurface1).
			Bold(true)

	// FocusedRowStyle marks the node under active text editing.
	FocusedRowStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	// HrefStyle dims link targets next to labels.
	HrefStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// RowStyle is the default row rendering.
	RowStyle = lipgloss.NewStyle().
			Foreground(colorText)
)

// Status bar styles.
var (
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	DirtyMarkerStyle = lipgloss.NewStyle().
				Foreground(colorYellow)

	FindingCountStyle = lipgloss.NewStyle().
				Foreground(colorRed)

	CleanCountStyle = lipgloss.NewStyle().
			Foreground(colorGreen)
)

// Overlay styles.
var (
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMauve).
			Padding(1, 2)

	OverlayTitleStyle = lipgloss.NewStyle().
				Foreground(colorMauve).
				Bold(true)

	OverlayButtonActiveStyle = lipgloss.NewStyle().
					Foreground(colorBase).
					Background(colorBlue).
					Padding(0, 2)

	OverlayButtonInactiveStyle = lipgloss.NewStyle().
					Foreground(colorText).
					Background(colorSurface1).
					Padding(0, 2)
)
