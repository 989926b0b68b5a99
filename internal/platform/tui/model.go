package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/candy-maze/internal/core"
	"github.com/vovakirdan/candy-maze/internal/game"
)

// snapshotMsg carries a state published by the engine.
type snapshotMsg game.Session

// engineStoppedMsg is sent once the engine loop has exited.
type engineStoppedMsg struct{}

// waitForSnapshot blocks until the engine publishes a new state.
func waitForSnapshot(e *game.Engine) tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-e.Snapshots():
			return snapshotMsg(s)
		case <-e.Done():
			return engineStoppedMsg{}
		}
	}
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a game session. It never changes the
// game state itself: keys go to the engine and the view follows the
// snapshots the engine publishes.
type Model struct {
	engine   *game.Engine
	rules    game.Rules
	state    game.Session
	screen   *core.Screen
	keys     GameKeyMap
	help     help.Model
	blinkOn  bool
	quitting bool
}

// NewModel creates a model driving eng on a width×height terminal.
func NewModel(eng *game.Engine, rules game.Rules, width, height int) Model {
	h := help.New()
	h.Width = width
	return Model{
		engine:  eng,
		rules:   rules,
		state:   eng.State(),
		screen:  core.NewScreen(width, max(height-1, 0)),
		keys:    DefaultGameKeyMap(),
		help:    h,
		blinkOn: true,
	}
}

// Init starts listening for snapshots and starts the blink ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForSnapshot(m.engine), blinkCmd())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// One line is reserved for the help bar.
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case snapshotMsg:
		m.state = game.Session(msg)
		return m, waitForSnapshot(m.engine)

	case engineStoppedMsg:
		m.quitting = true
		return m, tea.Quit

	case BlinkMsg:
		m.blinkOn = !m.blinkOn
		return m, blinkCmd()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if k := m.keys.GameKey(msg); k != game.KeyNone {
		m.engine.Press(k)
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSession(m.screen, m.state, View{Rules: m.rules, BlinkOn: m.blinkOn})

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run plays a game in the terminal until the user quits or ctx ends. It
// owns the engine loop: the engine is started here and stopped on return.
func Run(ctx context.Context, eng *game.Engine, rules game.Rules, width, height int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go eng.Run(ctx) //nolint:errcheck // Run only returns nil on cancellation

	p := tea.NewProgram(
		NewModel(eng, rules, width, height),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	cancel()
	<-eng.Done()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
