// Package terminal is the Bubble Tea view of a quiz session. It renders the
// screens a session publishes and turns key presses into start, answer and
// restart intents; it never decides correctness itself.
package terminal

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quiz-screen/internal/domain"
)

// Controller is the part of a quiz session the view drives.
type Controller interface {
	Start() domain.Screen
	Restart() domain.Screen
	SelectAnswer(index int) (domain.Screen, error)
}

// Options configures the terminal view.
type Options struct {
	NoColor bool
}

// Model renders a quiz session using Bubble Tea.
type Model struct {
	controller Controller
	screens    <-chan domain.Screen
	screen     domain.Screen
	cursor     int
	progress   progress.Model
	keys       keyMap
	lastErr    string
	noColor    bool
}

// NewModel constructs a view over controller; screens is the session's
// subscription and initial is what to show until the first update arrives.
func NewModel(controller Controller, screens <-chan domain.Screen, initial domain.Screen, opts Options) Model {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(40), progress.WithoutPercentage())
	if opts.NoColor {
		bar = progress.New(progress.WithSolidFill("7"), progress.WithWidth(40), progress.WithoutPercentage())
	}
	return Model{
		controller: controller,
		screens:    screens,
		screen:     initial,
		progress:   bar,
		keys:       defaultKeys(),
		noColor:    opts.NoColor,
	}
}

// Init waits for the first screen.
func (m Model) Init() tea.Cmd {
	return waitForScreen(m.screens)
}

// Update consumes key presses and screen updates.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.progress.Width = min(max(typed.Width-8, 10), 60)
		return m, nil
	case ScreenMsg:
		m = m.show(typed.Screen)
		return m, waitForScreen(m.screens)
	case tea.KeyMsg:
		if key.Matches(typed, m.keys.Quit) {
			return m, tea.Quit
		}
		return m.handleKey(typed), nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) Model {
	switch m.screen.Kind {
	case domain.ScreenStart:
		if key.Matches(msg, m.keys.Start) {
			return m.show(m.controller.Start())
		}
	case domain.ScreenResults:
		if key.Matches(msg, m.keys.Restart) {
			return m.show(m.controller.Restart())
		}
	case domain.ScreenQuestion:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.screen.Answers)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			return m.answer(m.cursor)
		default:
			if index, ok := answerIndex(msg.String()); ok && index < len(m.screen.Answers) {
				m.cursor = index
				return m.answer(index)
			}
		}
	}
	// Answered screens ignore input until the session advances.
	return m
}

func (m Model) answer(index int) Model {
	screen, err := m.controller.SelectAnswer(index)
	if err != nil {
		m.lastErr = err.Error()
		return m
	}
	return m.show(screen)
}

// show swaps in a new screen, resetting the cursor when the question changes.
func (m Model) show(screen domain.Screen) Model {
	if screen.Number != m.screen.Number ||
		(screen.Kind == domain.ScreenQuestion && screen.Kind != m.screen.Kind) {
		m.cursor = 0
	}
	m.screen = screen
	m.lastErr = ""
	return m
}

// View renders the current screen.
func (m Model) View() string {
	var body string
	switch m.screen.Kind {
	case domain.ScreenStart:
		body = renderStart(m.screen, m.noColor)
	case domain.ScreenResults:
		body = renderResults(m.screen, m.noColor)
	default:
		body = lipgloss.JoinVertical(lipgloss.Left,
			renderHeader(m.screen, m.noColor),
			m.progress.ViewAs(m.screen.Progress/100),
			"",
			renderQuestion(m.screen, m.cursor, m.noColor),
		)
	}
	footer := renderHelp(m.screen.Kind, m.keys, m.noColor)
	if m.lastErr != "" {
		footer = stylize(m.lastErr, m.noColor, lipgloss.Color("203")) + "\n" + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, "", footer) + "\n"
}

// ScreenMsg wraps a session screen for Bubble Tea.
type ScreenMsg struct {
	Screen domain.Screen
}

// waitForScreen blocks until the session publishes a screen.
func waitForScreen(screens <-chan domain.Screen) tea.Cmd {
	return func() tea.Msg {
		if screens == nil {
			return nil
		}
		screen, ok := <-screens
		if !ok {
			return tea.Quit()
		}
		return ScreenMsg{Screen: screen}
	}
}
