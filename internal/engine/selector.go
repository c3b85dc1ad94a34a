package engine

import (
	"fmt"
	"strings"
)

// fallbackRationale is recorded when no core question matched.
const fallbackRationale = "No strong fit identified in Q1-Q6; suggest reassessing scope or combining methods."

// selectCore walks the core questions in declaration order and collects the
// primary label for each yes answer, deduplicated on first occurrence. When
// nothing matched it appends the fallback label, so the returned candidate
// list is never empty.
func selectCore(answers AnswerSet) (candidates []Label, rationale []string) {
	seen := make(map[Label]bool)

	for _, q := range CoreQuestions {
		if !answers.IsYes(q.ID) {
			continue
		}
		label := coreLabels[q.ID]
		if seen[label] {
			continue
		}
		seen[label] = true
		candidates = append(candidates, label)
		rationale = append(rationale, rationaleLine(q))
	}

	if len(candidates) == 0 {
		candidates = append(candidates, LabelFallback)
		rationale = append(rationale, fallbackRationale)
	}
	return candidates, rationale
}

// augment walks the refinement questions in declaration order and collects
// the refinement labels for each yes answer, deduplicated on first
// occurrence. Refinements are additive annotations only.
func augment(answers AnswerSet) (refinements []Label, rationale []string) {
	seen := make(map[Label]bool)

	for _, q := range RefinementQuestions {
		if !answers.IsYes(q.ID) {
			continue
		}
		added := false
		for _, label := range refinementLabels[q.ID] {
			if seen[label] {
				continue
			}
			seen[label] = true
			refinements = append(refinements, label)
			added = true
		}
		if added {
			rationale = append(rationale, rationaleLine(q))
		}
	}
	return refinements, rationale
}

// Candidates returns the primary labels the core answers select, in
// evaluation order. Interactive callers use this to decide which follow-up
// questions are worth asking.
func Candidates(answers AnswerSet) []Label {
	candidates, _ := selectCore(answers)
	return candidates
}

// rationaleLine formats a single justification line for a yes answer.
func rationaleLine(q Question) string {
	return fmt.Sprintf("%s: %s", strings.ToUpper(q.ID), q.Rationale)
}
