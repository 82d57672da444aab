package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/registry"
)

// FramePacer is implemented by demos that carry their own frame delay.
type FramePacer interface {
	FrameInterval() time.Duration
}

// Exit reasons reported by Run.
const (
	ExitQuit = iota
	ExitBack
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// Model is the Bubble Tea model for running a demo.
// It is the renderer/timer pair around a demo: every tick it steps the demo,
// then View draws the resulting frame.
type Model struct {
	demo       registry.Demo
	screen     *core.Screen
	config     core.RuntimeConfig
	interval   time.Duration
	inputFrame core.InputFrame
	demoState  core.DemoState
	keys       DemoKeyMap
	help       help.Model
	logger     *log.Logger
	exit       int
	quitting   bool
	err        error
	now        func() time.Time
}

// NewModel creates a model for a demo that has already been Reset.
func NewModel(demo registry.Demo, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var pause time.Duration
	if p, ok := demo.(FramePacer); ok {
		pause = p.FrameInterval()
	}

	return Model{
		demo:       demo,
		screen:     core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-1)), // last row is the help line
		config:     cfg,
		interval:   frameInterval(cfg.TickRate, pause),
		inputFrame: core.NewInputFrame(),
		demoState:  demo.State(),
		keys:       DefaultDemoKeys(),
		help:       help.New(),
		logger:     logger,
		now:        time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next tick. Quit and back end the
// program immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.exit = ExitQuit
		return m, tea.Quit
	case core.ActionBack:
		m.quitting = true
		m.exit = ExitBack
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize only changes the drawing surface; the simulation domain is
// independent of the terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.config.Seed = m.now().UnixNano()
		if err := m.demo.Reset(m.config); err != nil {
			m.logger.Error("restart failed", "demo", m.demo.ID(), "error", err)
			m.err = err
		} else {
			m.logger.Info("restarted", "demo", m.demo.ID(), "seed", m.config.Seed)
			m.err = nil
		}
		m.demoState = m.demo.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.interval)
	}

	result := m.demo.Step(m.inputFrame)
	m.demoState = result.State
	m.inputFrame.Clear()

	return m, tickCmd(m.interval)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.demo.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.err != nil {
		footer = errorStyle.Render(fmt.Sprintf("error: %v", m.err))
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// State returns the demo state seen at the last tick.
func (m Model) State() core.DemoState {
	return m.demoState
}

// Run resets the demo and plays it full screen until the user quits.
// Returns ExitBack when the user asked to return to the menu.
func Run(demo registry.Demo, cfg core.RuntimeConfig, logger *log.Logger) (int, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := demo.Reset(cfg); err != nil {
		return ExitQuit, err
	}
	if logger != nil {
		logger.Info("demo started", "demo", demo.ID(), "seed", cfg.Seed, "balls", demo.State().Balls)
	}

	p := tea.NewProgram(
		NewModel(demo, cfg, logger),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return ExitQuit, err
	}
	if m, ok := final.(Model); ok {
		return m.exit, nil
	}
	return ExitQuit, nil
}
