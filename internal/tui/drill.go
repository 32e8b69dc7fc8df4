// Package tui implements the interactive recognition drill.
package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cubetools/plltrainer/internal/pll"
	"github.com/cubetools/plltrainer/internal/render"
	"github.com/cubetools/plltrainer/internal/storage"
	"github.com/cubetools/plltrainer/internal/trainer"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	correctStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	wrongStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type phase int

const (
	phaseQuestion phase = iota
	phaseFeedback
	phaseDone
)

type questionMsg struct {
	q   trainer.Question
	err error
}

// Model drives one drill session.
type Model struct {
	gen      *trainer.Generator
	selected []string

	sessions  *storage.SessionRepository
	attempts  *storage.AttemptRepository
	sessionID string

	question trainer.Question
	shownAt  time.Time
	phase    phase
	lastOK   bool
	lastCase string

	input textinput.Model

	total   int
	correct int

	err      error
	quitting bool
}

// NewModel prepares a drill over the selected cases. The database may
// be nil for a throwaway session that records nothing.
func NewModel(db *storage.DB, cases *pll.Database, policy trainer.Policy, selected []string) (*Model, error) {
	names, err := trainer.ValidateSelection(cases, selected)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	input := textinput.New()
	input.Placeholder = "case name"
	input.CharLimit = 8
	input.Width = 16
	input.Focus()

	m := &Model{
		gen:      trainer.NewGenerator(cases, rng, policy),
		selected: names,
		input:    input,
	}

	if db != nil {
		m.sessions = storage.NewSessionRepository(db)
		m.attempts = storage.NewAttemptRepository(db)
		id, err := m.sessions.Create(names)
		if err != nil {
			return nil, err
		}
		m.sessionID = id
	}

	return m, nil
}

// Run starts the drill and blocks until the user quits.
func Run(db *storage.DB, cases *pll.Database, policy trainer.Policy, selected []string) error {
	m, err := NewModel(db, cases, policy, selected)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("drill failed: %w", err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return m.nextQuestion()
}

func (m *Model) nextQuestion() tea.Cmd {
	return func() tea.Msg {
		q, err := m.gen.Next(m.selected)
		return questionMsg{q: q, err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case questionMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.question = msg.q
		m.shownAt = time.Now()
		m.phase = phaseQuestion
		m.input.SetValue("")
		return m, textinput.Blink

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, m.quit()

		case "enter":
			switch m.phase {
			case phaseQuestion:
				return m, m.submit()
			case phaseFeedback:
				return m, m.nextQuestion()
			}
		}
	}

	if m.phase == phaseQuestion {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) submit() tea.Cmd {
	answer := strings.TrimSpace(m.input.Value())
	if answer == "" {
		return nil
	}

	reaction := time.Since(m.shownAt)
	m.lastOK = trainer.Check(m.question.Case, answer)
	m.lastCase = m.question.Case
	m.total++
	if m.lastOK {
		m.correct++
	}
	m.phase = phaseFeedback

	if m.attempts != nil {
		if err := m.attempts.Record(m.sessionID, m.question.Case, answer, m.lastOK, reaction.Milliseconds()); err != nil {
			m.err = err
			return tea.Quit
		}
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.phase = phaseDone
	if m.sessions != nil && m.sessionID != "" {
		if err := m.sessions.End(m.sessionID); err != nil && m.err == nil {
			m.err = err
		}
	}
	return tea.Quit
}

func (m *Model) View() string {
	if m.quitting {
		return m.summary()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("PLL Recognition Drill"))
	b.WriteString("\n\n")

	b.WriteString(render.Top(m.question.Grid))
	b.WriteString("\n")

	switch m.phase {
	case phaseQuestion:
		b.WriteString("Which case is this? ")
		b.WriteString(m.input.View())
		b.WriteString("\n")

	case phaseFeedback:
		if m.lastOK {
			b.WriteString(correctStyle.Render("Correct!"))
		} else {
			b.WriteString(wrongStyle.Render(fmt.Sprintf("Wrong - it was %s", m.lastCase)))
		}
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("Press ENTER for the next question"))
		b.WriteString("\n")
	}

	if m.total > 0 {
		b.WriteString(statusStyle.Render(fmt.Sprintf("\nScore: %d/%d", m.correct, m.total)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: submit • esc: quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) summary() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}
	if m.total == 0 {
		return "No questions answered.\n"
	}
	accuracy := float64(m.correct) / float64(m.total) * 100
	return fmt.Sprintf("Session over: %d/%d correct (%.0f%%)\n", m.correct, m.total, accuracy)
}
