package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmartijn/Threatmodelselector/internal/answers"
	"github.com/gmartijn/Threatmodelselector/internal/engine"
)

func writeAnswersFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// resetRecommendFlags restores the package state the recommend command
// mutates, so tests stay independent.
func resetRecommendFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		answersFile = ""
		flags := recommendCmd.Flags()
		for _, id := range engine.AllQuestionIDs() {
			f := flags.Lookup(flagName(id))
			if f == nil {
				continue
			}
			f.Changed = false
			_ = f.Value.Set("")
		}
	})
}

func TestFlagName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "q7", flagName("q7"))
	assert.Equal(t, "l3-stride-dfd", flagName("l3_stride_dfd"))
}

func TestRecommendCmd_HasFlagPerQuestion(t *testing.T) {
	t.Parallel()

	for _, id := range engine.AllQuestionIDs() {
		assert.NotNil(t, recommendCmd.Flags().Lookup(flagName(id)), id)
	}
}

func TestCollectAnswers_FlagsOverrideFile(t *testing.T) {
	resetRecommendFlags(t)
	answersFile = writeAnswersFile(t, "q1: yes\nq2: yes\n")

	require.NoError(t, recommendCmd.Flags().Set("q1", "no"))

	got, err := collectAnswers(recommendCmd)
	require.NoError(t, err)
	assert.Equal(t, engine.No, got["q1"])
	assert.Equal(t, engine.Yes, got["q2"])
}

func TestCollectAnswers_InvalidFlagToken(t *testing.T) {
	resetRecommendFlags(t)

	require.NoError(t, recommendCmd.Flags().Set("q1", "maybe"))

	_, err := collectAnswers(recommendCmd)
	require.Error(t, err)
	assert.True(t, errors.Is(err, answers.ErrInvalidToken))
	assert.Equal(t, ExitBadInput, ExitCode(err))
}

func TestCollectAnswers_MissingFile(t *testing.T) {
	resetRecommendFlags(t)
	answersFile = filepath.Join(t.TempDir(), "nope.yaml")

	_, err := collectAnswers(recommendCmd)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errBadAnswersFile))
	assert.Equal(t, ExitBadInput, ExitCode(err))
}

func TestCollectAnswers_UnparseableFile(t *testing.T) {
	resetRecommendFlags(t)
	answersFile = writeAnswersFile(t, "- just\n- a\n- list\n")

	_, err := collectAnswers(recommendCmd)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errBadAnswersFile))
}

func TestCollectAnswers_InvalidTokenInFile(t *testing.T) {
	resetRecommendFlags(t)
	answersFile = writeAnswersFile(t, "q1: maybe\n")

	_, err := collectAnswers(recommendCmd)
	require.Error(t, err)
	assert.True(t, errors.Is(err, answers.ErrInvalidToken))
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitError, ExitCode(errCancelled))
	assert.Equal(t, ExitBadInput, ExitCode(answers.ErrInvalidToken))
	assert.Equal(t, ExitBadInput, ExitCode(answers.ErrUnknownQuestion))
	assert.Equal(t, ExitBadInput, ExitCode(errBadAnswersFile))
}
