package engine

import "sort"

// Scoring constants: every selected core label starts at baseScore, and
// each matching refinement answer adds bonusScore.
const (
	baseScore  = 3
	bonusScore = 1
)

// bonuses is the fixed heuristic boost table: a core label gains bonusScore
// for each listed refinement question answered yes. A label may collect
// multiple independent bonuses. The fallback label is never bonused.
var bonuses = map[Label][]string{
	LabelSTRIDE:      {"q9"},
	LabelLINDDUN:     {"q7"},
	LabelPASTA:       {"q11", "q10"},
	LabelOCTAVEFAIR:  {"q10", "q7"},
	LabelAttackTrees: {"q11"},
	LabelVASTCards:   {"q9"},
}

// scoreCandidates computes the preference score for each selected core
// label. Only concrete core labels carry entries; a fallback-only selection
// yields an empty map.
func scoreCandidates(candidates []Label, answers AnswerSet) map[Label]int {
	scores := make(map[Label]int)
	for _, label := range candidates {
		if label == LabelFallback {
			continue
		}
		score := baseScore
		for _, qid := range bonuses[label] {
			if answers.IsYes(qid) {
				score += bonusScore
			}
		}
		scores[label] = score
	}
	return scores
}

// rank derives the total order over scored labels: score descending, then
// canonical priority index ascending. The first entry is the top pick, the
// rest are the also-consider list.
//
// An empty score map should not occur (core selection guarantees at least
// one candidate), but it is handled defensively: prefer the fallback label
// if present among the candidates, else the first candidate, else "".
func rank(scores map[Label]int, candidates []Label) (topPick Label, alsoConsider []Label) {
	if len(scores) == 0 {
		for _, c := range candidates {
			if c == LabelFallback {
				return LabelFallback, nil
			}
		}
		if len(candidates) > 0 {
			return candidates[0], nil
		}
		return "", nil
	}

	ordered := make([]Label, 0, len(scores))
	for label := range scores {
		ordered = append(ordered, label)
	}
	sort.Slice(ordered, func(i, j int) bool {
		si, sj := scores[ordered[i]], scores[ordered[j]]
		if si != sj {
			return si > sj
		}
		return priorityIndex(ordered[i]) < priorityIndex(ordered[j])
	})

	return ordered[0], ordered[1:]
}
