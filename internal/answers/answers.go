// Package answers builds the finalized answer set the engine consumes. It
// is the boundary layer: every raw token from a file or flag passes through
// the shared normalizer here, and invalid tokens are rejected rather than
// coerced. Missing answers are not an error; the engine treats absence as
// "no".
package answers

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/gmartijn/Threatmodelselector/internal/engine"
)

// Sentinel errors for boundary validation. Callers use errors.Is to map
// these to a distinct exit status.
var (
	ErrInvalidToken    = errors.New("invalid answer token")
	ErrUnknownQuestion = errors.New("unknown question id")
)

// LoadFile reads an answers file (JSON or YAML object of question id to
// yes/no token) and returns the normalized answer set. Unknown ids and
// invalid tokens are rejected; a file that does not parse as an object is a
// parse error.
func LoadFile(path string) (engine.AnswerSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}

	// YAML is a superset of JSON, so one decoder covers both formats.
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse answers file %s: %w", path, err)
	}

	return FromTokens(raw)
}

// FromTokens normalizes a map of raw id→token pairs into an answer set.
// Every token must normalize to yes or no and every id must be a defined
// question.
func FromTokens(raw map[string]string) (engine.AnswerSet, error) {
	set := make(engine.AnswerSet, len(raw))

	// Deterministic validation order for stable error messages.
	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if _, ok := engine.QuestionByID(id); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
		}
		answer, ok := engine.Normalize(raw[id])
		if !ok {
			return nil, fmt.Errorf("%w: %q=%q (expected yes/no)", ErrInvalidToken, id, raw[id])
		}
		set[id] = answer
	}

	return set, nil
}

// Merge overlays higher-precedence answers onto base and returns a new set.
// Neither input is mutated. Used to let flag answers override file answers.
func Merge(base, override engine.AnswerSet) engine.AnswerSet {
	out := base.Clone()
	for id, v := range override {
		out[id] = v
	}
	return out
}
