package wizard

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmartijn/Threatmodelselector/internal/engine"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// press feeds one key to the model and returns the updated Model.
func press(t *testing.T, m Model, s string) Model {
	t.Helper()
	updated, _ := m.Update(keyPress(s))
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func TestModel_AnswerAndAdvance(t *testing.T) {
	t.Parallel()

	m := NewModel(nil)
	require.Equal(t, 0, m.index)

	m = press(t, m, "y")
	assert.Equal(t, 1, m.index)
	assert.Equal(t, engine.Yes, m.answers["q1"])

	m = press(t, m, "n")
	assert.Equal(t, engine.No, m.answers["q2"])
}

func TestModel_SkipRecordsNo(t *testing.T) {
	t.Parallel()

	m := NewModel(nil)
	m = press(t, m, "enter")
	assert.Equal(t, engine.No, m.answers["q1"])
	assert.Equal(t, 1, m.index)
}

func TestModel_BackRevises(t *testing.T) {
	t.Parallel()

	m := NewModel(nil)
	m = press(t, m, "y")
	m = press(t, m, "left")
	require.Equal(t, 0, m.index)

	m = press(t, m, "n")
	assert.Equal(t, engine.No, m.answers["q1"])
}

func TestModel_BackAtStartIsNoop(t *testing.T) {
	t.Parallel()

	m := NewModel(nil)
	m = press(t, m, "left")
	assert.Equal(t, 0, m.index)
}

func TestModel_Cancel(t *testing.T) {
	t.Parallel()

	m := NewModel(nil)
	m = press(t, m, "y")
	m = press(t, m, "esc")
	assert.True(t, m.Cancelled())
}

func TestModel_FollowupsGatedOnCandidates(t *testing.T) {
	t.Parallel()

	// Yes to q1 only: PASTA is the sole candidate, so only its follow-up
	// pages appear after the fixed questions.
	m := NewModel(nil)
	m = press(t, m, "y")
	for i := 0; i < 11; i++ {
		m = press(t, m, "n")
	}

	require.True(t, m.followupsQueued)
	require.Len(t, m.queue, m.fixedLen+len(engine.FollowupQuestions[engine.LabelPASTA]))
	assert.Equal(t, "l3_pasta_full", m.queue[m.fixedLen].ID)

	m = press(t, m, "y")
	assert.Equal(t, engine.Yes, m.answers["l3_pasta_full"])
}

func TestModel_AllNoFinishesWithoutFollowups(t *testing.T) {
	t.Parallel()

	// The fallback has no follow-up questions, so an all-no run ends right
	// after the fixed part.
	m := NewModel(nil)
	for i := 0; i < 12; i++ {
		m = press(t, m, "n")
	}

	assert.Equal(t, stateDone, m.state)
	assert.False(t, m.Cancelled())
	assert.Len(t, m.Answers(), 12)
}

func TestModel_BackIntoFixedDropsFollowups(t *testing.T) {
	t.Parallel()

	m := NewModel(nil)
	m = press(t, m, "y")
	for i := 0; i < 11; i++ {
		m = press(t, m, "n")
	}
	require.True(t, m.followupsQueued)

	m = press(t, m, "left")
	assert.False(t, m.followupsQueued)
	assert.Len(t, m.queue, m.fixedLen)
}

func TestModel_SeedShownButRevisable(t *testing.T) {
	t.Parallel()

	seed := engine.AnswerSet{"q1": engine.Yes}
	m := NewModel(seed)
	require.Equal(t, engine.Yes, m.answers["q1"])

	m = press(t, m, "n")
	assert.Equal(t, engine.No, m.answers["q1"])
	// Seed map is not mutated.
	assert.Equal(t, engine.Yes, seed["q1"])
}

func TestModel_AnswersReturnsClone(t *testing.T) {
	t.Parallel()

	m := NewModel(nil)
	m = press(t, m, "y")

	got := m.Answers()
	got["q1"] = engine.No
	assert.Equal(t, engine.Yes, m.answers["q1"])
}

func TestModel_ViewShowsPromptAndProgress(t *testing.T) {
	t.Parallel()

	m := NewModel(nil)
	view := m.View()
	assert.Contains(t, view, engine.CoreQuestions[0].Prompt)
	assert.Contains(t, view, "question 1 of 12")
	assert.Contains(t, view, "Core questions")
}

func TestModel_ViewEmptyWhenDone(t *testing.T) {
	t.Parallel()

	m := NewModel(nil)
	for i := 0; i < 12; i++ {
		m = press(t, m, "n")
	}
	assert.Empty(t, m.View())
}
