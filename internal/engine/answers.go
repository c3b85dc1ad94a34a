// Package engine implements the methodology recommendation engine: a pure,
// deterministic mapping from a set of yes/no answers to a ranked list of
// threat modeling methodologies.
package engine

import "strings"

// Answer is a normalized yes/no answer value.
type Answer string

const (
	// Yes is an affirmative answer.
	Yes Answer = "yes"
	// No is a negative answer. Questions absent from an AnswerSet are
	// treated as No.
	No Answer = "no"
)

// Normalize maps an arbitrary user-supplied token to Yes or No.
// Accepted affirmative tokens: y, yes, true, t, 1. Accepted negative
// tokens: n, no, false, f, 0. Matching is case-insensitive and ignores
// surrounding whitespace. ok is false for anything else; invalid tokens
// are rejected here and must never be silently coerced to No.
func Normalize(token string) (answer Answer, ok bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "y", "yes", "true", "t", "1":
		return Yes, true
	case "n", "no", "false", "f", "0":
		return No, true
	}
	return "", false
}

// AnswerSet maps question ids to normalized answers. The engine treats any
// id absent from the set as No, so a partial set is always well-formed.
type AnswerSet map[string]Answer

// Get returns the answer for id, defaulting to No when absent.
func (a AnswerSet) Get(id string) Answer {
	if v, ok := a[id]; ok && v == Yes {
		return Yes
	}
	return No
}

// IsYes reports whether the answer for id is Yes.
func (a AnswerSet) IsYes(id string) bool {
	return a.Get(id) == Yes
}

// Clone returns a copy of the answer set. The engine never mutates its
// input, but callers that build sets incrementally use this to snapshot.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
