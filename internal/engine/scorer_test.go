package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCandidates_BaseOnly(t *testing.T) {
	t.Parallel()

	scores := scoreCandidates([]Label{LabelSTRIDE}, AnswerSet{"q1": Yes})

	assert.Equal(t, map[Label]int{LabelSTRIDE: 3}, scores)
}

func TestScoreCandidates_BonusTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		label    Label
		answers  AnswerSet
		expected int
	}{
		{"stride cicd bonus", LabelSTRIDE, AnswerSet{"q9": Yes}, 4},
		{"linddun compliance bonus", LabelLINDDUN, AnswerSet{"q7": Yes}, 4},
		{"pasta ttp bonus", LabelPASTA, AnswerSet{"q11": Yes}, 4},
		{"pasta quant bonus", LabelPASTA, AnswerSet{"q10": Yes}, 4},
		{"pasta both bonuses", LabelPASTA, AnswerSet{"q10": Yes, "q11": Yes}, 5},
		{"octave-fair quant bonus", LabelOCTAVEFAIR, AnswerSet{"q10": Yes}, 4},
		{"octave-fair compliance bonus", LabelOCTAVEFAIR, AnswerSet{"q7": Yes}, 4},
		{"octave-fair both bonuses", LabelOCTAVEFAIR, AnswerSet{"q7": Yes, "q10": Yes}, 5},
		{"trees ttp bonus", LabelAttackTrees, AnswerSet{"q11": Yes}, 4},
		{"vast-cards cicd bonus", LabelVASTCards, AnswerSet{"q9": Yes}, 4},
		{"unrelated refinement no bonus", LabelSTRIDE, AnswerSet{"q7": Yes, "q10": Yes}, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			scores := scoreCandidates([]Label{tc.label}, tc.answers)
			assert.Equal(t, tc.expected, scores[tc.label])
		})
	}
}

func TestScoreCandidates_FallbackNeverScored(t *testing.T) {
	t.Parallel()

	scores := scoreCandidates([]Label{LabelFallback}, AnswerSet{"q7": Yes, "q9": Yes})

	assert.Empty(t, scores)
}

func TestScoreCandidates_MinimumIsBase(t *testing.T) {
	t.Parallel()

	all := []Label{LabelSTRIDE, LabelLINDDUN, LabelPASTA, LabelOCTAVEFAIR, LabelAttackTrees, LabelVASTCards}
	scores := scoreCandidates(all, AnswerSet{
		"q7": Yes, "q8": Yes, "q9": Yes, "q10": Yes, "q11": Yes, "q12": Yes,
	})

	for label, score := range scores {
		assert.GreaterOrEqual(t, score, baseScore, "label %s", label)
	}
}

func TestRank_TieBreakCanonicalOrder(t *testing.T) {
	t.Parallel()

	// Equal scores must rank by the fixed priority list, regardless of map
	// iteration order.
	scores := map[Label]int{
		LabelVASTCards: 3,
		LabelSTRIDE:    3,
		LabelPASTA:     3,
	}

	for i := 0; i < 50; i++ {
		top, also := rank(scores, nil)
		require.Equal(t, LabelSTRIDE, top)
		require.Equal(t, []Label{LabelPASTA, LabelVASTCards}, also)
	}
}

func TestRank_ScoreBeatsPriority(t *testing.T) {
	t.Parallel()

	top, also := rank(map[Label]int{LabelSTRIDE: 3, LabelPASTA: 5}, nil)

	assert.Equal(t, LabelPASTA, top)
	assert.Equal(t, []Label{LabelSTRIDE}, also)
}

func TestRank_EmptyScores_Defensive(t *testing.T) {
	t.Parallel()

	top, also := rank(nil, []Label{LabelFallback})
	assert.Equal(t, LabelFallback, top)
	assert.Empty(t, also)

	top, also = rank(nil, []Label{LabelSTRIDE})
	assert.Equal(t, LabelSTRIDE, top)
	assert.Empty(t, also)

	top, also = rank(nil, nil)
	assert.Equal(t, Label(""), top)
	assert.Empty(t, also)
}
