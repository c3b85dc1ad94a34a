package answers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmartijn/Threatmodelselector/internal/engine"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile_JSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "answers.json", `{"q1": "yes", "q2": "n", "q9": "TRUE"}`)

	set, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, engine.AnswerSet{
		"q1": engine.Yes,
		"q2": engine.No,
		"q9": engine.Yes,
	}, set)
}

func TestLoadFile_YAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "answers.yaml", "q1: yes\nq4: \"no\"\nl3_octavefair_quant: y\n")

	set, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, engine.AnswerSet{
		"q1":                  engine.Yes,
		"q4":                  engine.No,
		"l3_octavefair_quant": engine.Yes,
	}, set)
}

func TestLoadFile_InvalidToken(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "answers.json", `{"q1": "maybe"}`)

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLoadFile_UnknownQuestion(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "answers.json", `{"q99": "yes"}`)

	_, err := LoadFile(path)
	assert.ErrorIs(t, err, ErrUnknownQuestion)
}

func TestLoadFile_NotAnObject(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "answers.json", `["q1", "yes"]`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidToken)
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestFromTokens_EmptyIsValid(t *testing.T) {
	t.Parallel()

	set, err := FromTokens(nil)
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestMerge_OverrideWins(t *testing.T) {
	t.Parallel()

	base := engine.AnswerSet{"q1": engine.Yes, "q2": engine.Yes}
	override := engine.AnswerSet{"q2": engine.No, "q3": engine.Yes}

	merged := Merge(base, override)

	assert.Equal(t, engine.AnswerSet{
		"q1": engine.Yes,
		"q2": engine.No,
		"q3": engine.Yes,
	}, merged)

	// Inputs untouched.
	assert.Equal(t, engine.Yes, base["q2"])
}
