// Package wizard implements the interactive questionnaire TUI. It collects
// yes/no answers for the core and refinement questions and then asks only the
// follow-up questions relevant to the methodologies the core answers selected.
package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gmartijn/Threatmodelselector/internal/engine"
)

// wizardState represents the current state of the questionnaire's state machine.
type wizardState int

const (
	stateAsking    wizardState = iota // Walking the question queue
	stateDone                         // All questions answered
	stateCancelled                    // User cancelled (Esc / Ctrl+C)
)

// Model is the Bubble Tea model for the questionnaire TUI.
// It must be exported so that cmd/tmsel can run it.
type Model struct {
	state wizardState
	keys  keyMap
	help  help.Model

	// queue holds the fixed core and refinement questions up front; the
	// follow-up pages are appended once the fixed part is answered.
	queue           []engine.Question
	fixedLen        int
	followupsQueued bool

	index   int
	answers engine.AnswerSet

	width  int // Terminal width
	height int // Terminal height
}

// NewModel creates a questionnaire Model seeded with any answers already
// supplied on the command line; seeded questions are still shown so the user
// can revise them.
func NewModel(seed engine.AnswerSet) Model {
	queue := make([]engine.Question, 0, len(engine.CoreQuestions)+len(engine.RefinementQuestions))
	queue = append(queue, engine.CoreQuestions...)
	queue = append(queue, engine.RefinementQuestions...)

	answers := engine.AnswerSet{}
	if seed != nil {
		answers = seed.Clone()
	}

	return Model{
		state:    stateAsking,
		keys:     defaultKeyMap,
		help:     help.New(),
		queue:    queue,
		fixedLen: len(queue),
		answers:  answers,
	}
}

// Answers returns the collected answer set. Unanswered questions are simply
// absent, which the engine treats as no.
func (m Model) Answers() engine.AnswerSet {
	return m.answers.Clone()
}

// Cancelled reports whether the user aborted the questionnaire.
func (m Model) Cancelled() bool {
	return m.state == stateCancelled
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state != stateAsking {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = stateCancelled
		return m, tea.Quit

	case key.Matches(msg, m.keys.Yes):
		return m.record(engine.Yes)

	case key.Matches(msg, m.keys.No):
		return m.record(engine.No)

	case key.Matches(msg, m.keys.Skip):
		return m.record(engine.No)

	case key.Matches(msg, m.keys.Back):
		return m.back(), nil
	}

	return m, nil
}

// record stores the answer for the current question and advances.
func (m Model) record(answer engine.Answer) (tea.Model, tea.Cmd) {
	m.answers[m.queue[m.index].ID] = answer
	return m.advance()
}

// advance moves to the next question, queueing the follow-up pages once the
// fixed part has been answered. When the queue is exhausted the wizard quits.
func (m Model) advance() (tea.Model, tea.Cmd) {
	m.index++

	if m.index >= m.fixedLen && !m.followupsQueued {
		m.queueFollowups()
	}

	if m.index >= len(m.queue) {
		m.state = stateDone
		return m, tea.Quit
	}
	return m, nil
}

// back steps to the previous question. Stepping back into the fixed part
// drops the queued follow-up pages, since revised core answers may select a
// different set of methodologies.
func (m Model) back() Model {
	if m.index == 0 {
		return m
	}
	m.index--
	if m.index < m.fixedLen && m.followupsQueued {
		m.queue = m.queue[:m.fixedLen]
		m.followupsQueued = false
	}
	return m
}

// queueFollowups appends the follow-up questions for every selected
// methodology that has any, in candidate order.
func (m *Model) queueFollowups() {
	m.followupsQueued = true
	for _, label := range engine.Candidates(m.answers) {
		m.queue = append(m.queue, engine.FollowupQuestions[label]...)
	}
}

// --- View rendering ---

var (
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	promptStyle   = lipgloss.NewStyle().Bold(true)
	whyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// View implements tea.Model.
func (m Model) View() string {
	if m.state != stateAsking || m.index >= len(m.queue) {
		return ""
	}

	q := m.queue[m.index]

	var b strings.Builder
	b.WriteString(sectionStyle.Render(m.sectionTitle()))
	b.WriteString("  ")
	b.WriteString(progressStyle.Render(fmt.Sprintf("question %d of %d", m.index+1, len(m.queue))))
	b.WriteString("\n\n")

	b.WriteString(promptStyle.Render(q.Prompt))
	b.WriteString("\n")
	if q.Rationale != "" {
		b.WriteString(whyStyle.Render(q.Rationale))
		b.WriteString("\n")
	}

	if answer, ok := m.answers[q.ID]; ok {
		b.WriteString("\n")
		b.WriteString(answerStyle.Render(fmt.Sprintf("current answer: %s", answer)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// sectionTitle names the part of the questionnaire the current page belongs to.
func (m Model) sectionTitle() string {
	switch {
	case m.index < len(engine.CoreQuestions):
		return "Core questions"
	case m.index < m.fixedLen:
		return "Refinements"
	default:
		return "Follow-ups"
	}
}
