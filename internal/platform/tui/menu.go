package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bounce/internal/registry"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// MenuModel is the Bubble Tea model for the demo picker.
type MenuModel struct {
	items    []registry.DemoInfo
	cursor   int
	keys     MenuKeyMap
	help     help.Model
	selected string
	quitting bool
}

// NewMenuModel creates a picker over all registered demos.
func NewMenuModel() MenuModel {
	return MenuModel{
		items: registry.List(),
		keys:  DefaultMenuKeys(),
		help:  help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.items) > 0 {
				m.selected = m.items[m.cursor].ID
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != "" {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Bounce"))
	sb.WriteString("\n\n")

	if len(m.items) == 0 {
		sb.WriteString("No demos available.\n")
	}
	for i, item := range m.items {
		line := fmt.Sprintf("%-8s %s", item.ID, item.Title)
		if i == m.cursor {
			sb.WriteString(selectedStyle.Render("> " + line))
		} else {
			sb.WriteString(itemStyle.Render("  " + line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Selected returns the chosen demo ID, or "" if the user quit.
func (m MenuModel) Selected() string {
	return m.selected
}

// RunMenu shows the picker and returns the chosen demo ID ("" on quit).
func RunMenu() (string, error) {
	p := tea.NewProgram(NewMenuModel(), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(MenuModel); ok {
		return m.Selected(), nil
	}
	return "", nil
}
