package models

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/VoidMesh/caves/cmd/debug/components"
	"github.com/VoidMesh/caves/internal/caves"
	"github.com/VoidMesh/caves/services/cave"
	"github.com/VoidMesh/caves/services/noise"
	"github.com/VoidMesh/caves/services/seed"
)

const (
	thresholdStep = 0.02
	scaleFactor   = 1.25
	panStep       = 4
)

// CaveExplorerModel generates caves on demand and lets the pipeline be tuned
// while watching the result.
type CaveExplorerModel struct {
	generator *cave.Service
	manager   *caves.Manager

	seed   string
	config cave.Config

	result   *cave.Result
	viewport components.Viewport
	width    int
	height   int

	notice   string
	errorMsg string
}

// NewCaveExplorerModel creates an explorer starting at seed. An empty seed
// draws a random one.
func NewCaveExplorerModel(generator *cave.Service, manager *caves.Manager, startSeed string) CaveExplorerModel {
	if startSeed == "" {
		startSeed = seed.RandomSeed()
	}

	cfg := cave.DefaultConfig()
	if manager != nil {
		cfg = manager.Defaults()
	}

	return CaveExplorerModel{
		generator: generator,
		manager:   manager,
		seed:      startSeed,
		config:    cfg,
	}
}

// Init generates the first cave
func (m CaveExplorerModel) Init() tea.Cmd {
	if m.result != nil {
		return nil
	}
	return m.generateCmd()
}

// Show replaces the current cave with an already generated one.
func (m *CaveExplorerModel) Show(result *cave.Result) {
	m.result = result
	m.seed = result.Seed
	m.config = result.Config
	m.viewport.OffsetX, m.viewport.OffsetY = 0, 0
	m.notice = "Opened from library"
	m.errorMsg = ""
}

// Update handles explorer messages
func (m CaveExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.seed = seed.RandomSeed()
			return m, m.generateCmd()

		case "+", "=":
			m.config.Threshold += thresholdStep
			return m, m.generateCmd()

		case "-":
			m.config.Threshold -= thresholdStep
			return m, m.generateCmd()

		case "]":
			m.config.Scale *= scaleFactor
			return m, m.generateCmd()

		case "[":
			m.config.Scale /= scaleFactor
			return m, m.generateCmd()

		case "s":
			m.config.Smooth = !m.config.Smooth
			return m, m.generateCmd()

		case "c":
			m.config.ConnectAllRegions = !m.config.ConnectAllRegions
			return m, m.generateCmd()

		case "v":
			m.config.CarveCaves = !m.config.CarveCaves
			return m, m.generateCmd()

		case "b":
			if m.config.NoiseBackend == noise.BackendSimplex {
				m.config.NoiseBackend = noise.BackendPerlin
			} else {
				m.config.NoiseBackend = noise.BackendSimplex
			}
			return m, m.generateCmd()

		case "w":
			return m, m.saveCmd()

		case "up", "k":
			m.viewport.OffsetY -= panStep
		case "down", "j":
			m.viewport.OffsetY += panStep
		case "left", "h":
			m.viewport.OffsetX -= panStep
		case "right", "l":
			m.viewport.OffsetX += panStep
		}
		m.clampViewport()

	case caveGeneratedMsg:
		m.result = msg.result
		m.config = msg.result.Config
		m.errorMsg = ""
		m.notice = ""
		m.clampViewport()

	case caveSavedMsg:
		m.notice = fmt.Sprintf("Saved as %s", msg.id)
		m.errorMsg = ""

	case caveErrorMsg:
		m.errorMsg = string(msg)
	}

	return m, nil
}

// View renders the explorer
func (m CaveExplorerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	s.WriteString(components.TitleStyle.Render(fmt.Sprintf("Cave Explorer - %q", m.seed)) + "\n")

	s.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderGrid(),
		m.renderInfoPanel(),
	) + "\n")

	s.WriteString(m.renderStatusBar())
	return s.String()
}

func (m CaveExplorerModel) renderGrid() string {
	if m.result == nil {
		return components.BorderStyle.Render("Generating...")
	}
	return components.BorderStyle.Render(components.RenderGrid(m.result.Grid, m.viewport))
}

func (m CaveExplorerModel) renderInfoPanel() string {
	var info strings.Builder

	cfg := m.config
	info.WriteString(components.SubtitleStyle.Render("Config") + "\n")
	info.WriteString(fmt.Sprintf("Size: %dx%d\n", cfg.Width, cfg.Height))
	info.WriteString(fmt.Sprintf("Backend: %s\n", cfg.NoiseBackend))
	info.WriteString(fmt.Sprintf("Octaves: %d\n", cfg.Octaves))
	info.WriteString(fmt.Sprintf("Scale: %.2f\n", cfg.Scale))
	info.WriteString(fmt.Sprintf("Threshold: %.2f\n", cfg.Threshold))
	info.WriteString(fmt.Sprintf("Smooth: %v  Connect: %v\n", cfg.Smooth, cfg.ConnectAllRegions))
	info.WriteString(fmt.Sprintf("Carve caves: %v\n", cfg.CarveCaves))

	if m.result != nil {
		stats := m.result.Stats
		info.WriteString("\n" + components.SubtitleStyle.Render("Result") + "\n")
		info.WriteString(fmt.Sprintf("Int seed: %d\n", m.result.IntSeed))
		info.WriteString(fmt.Sprintf("Regions: %d (pruned %d)\n", stats.RegionsFound, stats.RegionsPruned))
		info.WriteString(fmt.Sprintf("Corridors: %d\n", stats.CorridorsCarved))
		info.WriteString(fmt.Sprintf("Air: %d  Solid: %d\n", stats.AirCells, stats.SolidCells))
		info.WriteString(fmt.Sprintf("Took: %s\n", stats.Duration.Round(time.Microsecond)))
	}

	info.WriteString("\n" + components.SubtitleStyle.Render("Controls") + "\n")
	info.WriteString("r: New seed  w: Save\n")
	info.WriteString("+/-: Threshold  [/]: Scale\n")
	info.WriteString("s: Smooth  c: Connect\n")
	info.WriteString("b: Backend  v: Carve\n")
	info.WriteString("Arrows: Pan  q: Back\n")

	return components.InfoPanelStyle.Render(info.String())
}

func (m CaveExplorerModel) renderStatusBar() string {
	var status []string

	if m.result != nil {
		status = append(status, fmt.Sprintf("View: (%d, %d)", m.viewport.OffsetX, m.viewport.OffsetY))
	}
	if m.notice != "" {
		status = append(status, components.NoticeStyle.Render(m.notice))
	}
	if m.errorMsg != "" {
		status = append(status, components.ErrorStyle.Render("Error: "+m.errorMsg))
	}

	return components.StatusBarStyle.Width(m.width).Render(strings.Join(status, " • "))
}

// SetSize updates the explorer size
func (m *CaveExplorerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - components.InfoPanelStyle.GetWidth() - 8
	m.viewport.Height = height - 10
	m.clampViewport()
}

func (m *CaveExplorerModel) clampViewport() {
	if m.result == nil {
		return
	}
	m.viewport = m.viewport.Clamp(m.result.Grid.Width, m.result.Grid.Height)
}

func (m CaveExplorerModel) generateCmd() tea.Cmd {
	generator, seedStr, cfg := m.generator, m.seed, m.config
	return func() tea.Msg {
		return caveGeneratedMsg{result: generator.Generate(seedStr, cfg)}
	}
}

func (m CaveExplorerModel) saveCmd() tea.Cmd {
	if m.manager == nil {
		return func() tea.Msg { return caveErrorMsg("no library attached") }
	}

	manager, seedStr, cfg := m.manager, m.seed, m.config
	return func() tea.Msg {
		raw, err := json.Marshal(cfg)
		if err != nil {
			return caveErrorMsg(err.Error())
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		created, err := manager.CreateCave(ctx, caves.CreateCaveRequest{Seed: &seedStr, Config: raw})
		if err != nil {
			return caveErrorMsg(err.Error())
		}
		return caveSavedMsg{id: created.ID}
	}
}

// Messages
type caveGeneratedMsg struct {
	result *cave.Result
}

type caveSavedMsg struct {
	id string
}

type caveErrorMsg string
