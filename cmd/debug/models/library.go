package models

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/VoidMesh/caves/cmd/debug/components"
	"github.com/VoidMesh/caves/internal/caves"
)

// LibraryModel lists the caves stored in the database.
type LibraryModel struct {
	manager *caves.Manager

	caves  []caves.CaveSummary
	cursor int
	width  int
	height int

	isLoading   bool
	lastUpdated time.Time
	notice      string
	errorMsg    string
}

// NewLibraryModel creates a new library model
func NewLibraryModel(manager *caves.Manager) LibraryModel {
	return LibraryModel{manager: manager}
}

// Init loads the cave list
func (m LibraryModel) Init() tea.Cmd {
	return m.loadCmd()
}

// Update handles library messages
func (m LibraryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.caves)-1 {
				m.cursor++
			}
		case "r":
			m.isLoading = true
			return m, m.loadCmd()
		case "enter":
			if selected, ok := m.selected(); ok {
				return m, m.openCmd(selected.ID)
			}
		case "x":
			if selected, ok := m.selected(); ok {
				return m, m.verifyCmd(selected.ID)
			}
		case "d":
			if selected, ok := m.selected(); ok {
				return m, m.deleteCmd(selected.ID)
			}
		}

	case libraryLoadedMsg:
		m.caves = msg.caves
		m.isLoading = false
		m.lastUpdated = time.Now()
		m.errorMsg = ""
		if m.cursor >= len(m.caves) {
			m.cursor = max(len(m.caves)-1, 0)
		}

	case libraryNoticeMsg:
		m.notice = msg.text
		if msg.reload {
			return m, m.loadCmd()
		}

	case libraryErrorMsg:
		m.isLoading = false
		m.errorMsg = string(msg)
	}

	return m, nil
}

// View renders the library
func (m LibraryModel) View() string {
	var s strings.Builder

	s.WriteString(components.TitleStyle.Render("Cave Library") + "\n\n")

	switch {
	case m.isLoading && len(m.caves) == 0:
		s.WriteString(components.BorderStyle.Render("Loading caves...") + "\n\n")
	case len(m.caves) == 0:
		s.WriteString(components.BorderStyle.Render("No stored caves. Press 'w' in the explorer to save one.") + "\n\n")
	default:
		s.WriteString(components.BorderStyle.Render(m.renderTable()) + "\n\n")
	}

	var status []string
	status = append(status, fmt.Sprintf("Caves: %d", len(m.caves)))
	if !m.lastUpdated.IsZero() {
		status = append(status, fmt.Sprintf("Updated: %s", m.lastUpdated.Format("15:04:05")))
	}
	if m.notice != "" {
		status = append(status, components.NoticeStyle.Render(m.notice))
	}
	if m.errorMsg != "" {
		status = append(status, components.ErrorStyle.Render("Error: "+m.errorMsg))
	}
	status = append(status, "Enter: open • x: verify • d: delete • r: refresh • q: back")

	s.WriteString(components.StatusBarStyle.Width(m.width).Render(strings.Join(status, " • ")))
	return s.String()
}

func (m LibraryModel) renderTable() string {
	header := fmt.Sprintf("%-36s  %-20s  %7s  %7s  %9s  %s", "ID", "Seed", "Size", "Regions", "Corridors", "Created")
	rows := []string{components.SubtitleStyle.Render(header)}

	for i, c := range m.caves {
		seedLabel := c.Seed
		if len(seedLabel) > 20 {
			seedLabel = seedLabel[:17] + "..."
		}
		line := fmt.Sprintf("%-36s  %-20q  %7s  %7d  %9d  %s",
			c.ID,
			seedLabel,
			fmt.Sprintf("%dx%d", c.Width, c.Height),
			c.RegionsFound-c.RegionsPruned,
			c.CorridorsCarved,
			c.CreatedAt.Local().Format("2006-01-02 15:04"),
		)

		style := components.MenuItemStyle
		if i == m.cursor {
			style = components.SelectedMenuItemStyle
		}
		rows = append(rows, style.Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// SetSize updates the library size
func (m *LibraryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m LibraryModel) selected() (caves.CaveSummary, bool) {
	if m.cursor < 0 || m.cursor >= len(m.caves) {
		return caves.CaveSummary{}, false
	}
	return m.caves[m.cursor], true
}

func (m LibraryModel) loadCmd() tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		summaries, err := manager.ListCaves(ctx, caves.MaxListLimit)
		if err != nil {
			return libraryErrorMsg(err.Error())
		}
		return libraryLoadedMsg{caves: summaries}
	}
}

func (m LibraryModel) openCmd(id string) tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		result, err := manager.Regenerate(ctx, id)
		if err != nil {
			return libraryErrorMsg(err.Error())
		}
		return OpenInExplorerMsg{Result: result}
	}
}

func (m LibraryModel) verifyCmd(id string) tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		ok, err := manager.VerifyCave(ctx, id)
		if err != nil {
			return libraryErrorMsg(err.Error())
		}
		if !ok {
			return libraryNoticeMsg{text: fmt.Sprintf("%s does NOT regenerate identically", id)}
		}
		return libraryNoticeMsg{text: fmt.Sprintf("%s regenerates identically", id)}
	}
}

func (m LibraryModel) deleteCmd(id string) tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := manager.DeleteCave(ctx, id); err != nil {
			return libraryErrorMsg(err.Error())
		}
		return libraryNoticeMsg{text: fmt.Sprintf("Deleted %s", id), reload: true}
	}
}

// Messages
type libraryLoadedMsg struct {
	caves []caves.CaveSummary
}

type libraryNoticeMsg struct {
	text   string
	reload bool
}

type libraryErrorMsg string
