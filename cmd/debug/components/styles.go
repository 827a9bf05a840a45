package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/VoidMesh/caves/services/cave"
)

// Color definitions
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7D56F4")
	SecondaryColor = lipgloss.Color("#04B575")
	AccentColor    = lipgloss.Color("#FFD700")
	DangerColor    = lipgloss.Color("#F25D94")

	// Grayscale
	LightGray = lipgloss.Color("#D9D9D9")
	Gray      = lipgloss.Color("#8B8B8B")
	DarkGray  = lipgloss.Color("#383838")

	// Cave colors
	RockColor = lipgloss.Color("#6B5B4B")
	AirColor  = lipgloss.Color("#1C1C1C")
)

// Base styles
var (
	// Title styles
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Align(lipgloss.Center).
			Padding(1, 2)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true).
			Padding(0, 1)

	// Border styles
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gray).
			Padding(0, 1)

	// Menu styles
	MenuItemStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 2)

	SelectedMenuItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 2)

	// Info panel styles
	InfoPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SecondaryColor).
			Padding(1).
			Width(34)

	// Status bar style
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(DarkGray).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(DangerColor).
			Bold(true)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	// Help styles
	HelpStyle = lipgloss.NewStyle().
			Foreground(Gray).
			Italic(true).
			Padding(1)

	// Grid styles
	RockStyle = lipgloss.NewStyle().Foreground(RockColor)
	AirStyle  = lipgloss.NewStyle().Foreground(AirColor)
)

const (
	RockSymbol = "█"
	AirSymbol  = " "
)

// Viewport is the window of a grid shown on screen, in cells.
type Viewport struct {
	OffsetX int
	OffsetY int
	Width   int
	Height  int
}

// Clamp keeps the viewport inside a grid of the given size.
func (v Viewport) Clamp(gridWidth, gridHeight int) Viewport {
	v.Width = min(max(v.Width, 1), gridWidth)
	v.Height = min(max(v.Height, 1), gridHeight)
	v.OffsetX = min(max(v.OffsetX, 0), gridWidth-v.Width)
	v.OffsetY = min(max(v.OffsetY, 0), gridHeight-v.Height)
	return v
}

// GridLines returns the visible part of g as plain lines of glyphs, with runs
// of equal cells grouped so they can be styled in one call.
func GridLines(g *cave.Grid, v Viewport) [][]string {
	v = v.Clamp(g.Width, g.Height)

	lines := make([][]string, 0, v.Height)
	for y := v.OffsetY; y < v.OffsetY+v.Height; y++ {
		var runs []string
		var run strings.Builder
		for x := v.OffsetX; x < v.OffsetX+v.Width; x++ {
			if x > v.OffsetX && g.Solid(x, y) != g.Solid(x-1, y) {
				runs = append(runs, run.String())
				run.Reset()
			}
			if g.Solid(x, y) {
				run.WriteString(RockSymbol)
			} else {
				run.WriteString(AirSymbol)
			}
		}
		runs = append(runs, run.String())
		lines = append(lines, runs)
	}
	return lines
}

// RenderGrid draws the visible part of g with rock and air colors.
func RenderGrid(g *cave.Grid, v Viewport) string {
	var rows []string
	for _, runs := range GridLines(g, v) {
		var row strings.Builder
		for _, run := range runs {
			if strings.HasPrefix(run, RockSymbol) {
				row.WriteString(RockStyle.Render(run))
			} else {
				row.WriteString(AirStyle.Render(run))
			}
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

// Layout helpers
func CenterText(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(text)
}
