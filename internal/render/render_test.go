package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmartijn/Threatmodelselector/internal/engine"
)

func init() {
	// Tests assert on plain text.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func sampleResult(t *testing.T) *engine.Result {
	t.Helper()
	result := engine.Decide(engine.AnswerSet{
		"q1":            engine.Yes,
		"q10":           engine.Yes,
		"l3_pasta_full": engine.Yes,
	})
	require.NotNil(t, result)
	return result
}

func TestJSON_StableSchema(t *testing.T) {
	t.Parallel()

	out, err := JSON(sampleResult(t))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "1.0", decoded["schema_version"])
	assert.Contains(t, decoded, "recommendations")
	assert.Contains(t, decoded, "scores")
	assert.Contains(t, decoded, "top_pick")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestText_ContainsSections(t *testing.T) {
	t.Parallel()

	out := Text(sampleResult(t))

	assert.Contains(t, out, "Recommended Threat Modeling Approach")
	assert.Contains(t, out, "Top pick: PASTA(full)")
	assert.Contains(t, out, "Rationale:")
	assert.Contains(t, out, "Scores:")
	assert.Contains(t, out, "Q1: yes")
}

func TestText_ScoresKeyedByMethodology(t *testing.T) {
	t.Parallel()

	// Scores stay keyed by the methodology that earned them even when the
	// recommendation shows a resolved variant.
	out := Text(sampleResult(t))
	assert.Contains(t, out, "PASTA: 4")
}

func TestMarkdown_ScoreTable(t *testing.T) {
	t.Parallel()

	out := Markdown(sampleResult(t))

	assert.Contains(t, out, "# Recommended Threat Modeling Approach")
	assert.Contains(t, out, "| Methodology | Score |")
	assert.Contains(t, out, "| PASTA | 4 |")
	assert.Contains(t, out, "**Top pick:** PASTA(full)")
}

func TestRender_Formats(t *testing.T) {
	t.Parallel()

	result := sampleResult(t)

	for _, format := range []string{"text", "markdown", "json"} {
		out, err := Render(result, format)
		require.NoError(t, err, format)
		assert.NotEmpty(t, out, format)
	}

	_, err := Render(result, "xml")
	assert.Error(t, err)
}

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"short stays intact", "one two", 80, "one two"},
		{"breaks at width", "aaaa bbbb cccc", 9, "aaaa bbbb\n  cccc"},
		{"single long word kept whole", "abcdefghij", 4, "abcdefghij"},
		{"empty passthrough", "", 10, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, wrap(tt.text, tt.width, "  "))
		})
	}
}

func TestSortedScores_Deterministic(t *testing.T) {
	t.Parallel()

	scores := map[engine.Label]int{
		engine.LabelSTRIDE:  3,
		engine.LabelPASTA:   5,
		engine.LabelLINDDUN: 3,
	}
	entries := sortedScores(scores)
	require.Len(t, entries, 3)
	assert.Equal(t, engine.LabelPASTA, entries[0].label)
	// Equal scores fall back to label order.
	assert.Equal(t, engine.LabelLINDDUN, entries[1].label)
	assert.Equal(t, engine.LabelSTRIDE, entries[2].label)
}
