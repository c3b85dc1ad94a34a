package engine

// SchemaVersion identifies the serialized Result schema.
const SchemaVersion = "1.0"

// Result is the engine's sole output: the answers echoed back, the ordered
// recommendation list with parallel details, the justification lines, the
// score map, and the ranked top pick / also-consider split.
//
// Recommendations, TopPick, and AlsoConsider carry resolved labels; Scores
// stays keyed by the ambiguous core label so the score schema is stable
// regardless of which follow-up answers were supplied.
type Result struct {
	SchemaVersion   string            `json:"schema_version" yaml:"schema_version"`
	Answers         map[string]Answer `json:"answers" yaml:"answers"`
	Recommendations []Label           `json:"recommendations" yaml:"recommendations"`
	Details         []string          `json:"details" yaml:"details"`
	Rationale       []string          `json:"rationale" yaml:"rationale"`
	Scores          map[Label]int     `json:"scores" yaml:"scores"`
	TopPick         Label             `json:"top_pick" yaml:"top_pick"`
	AlsoConsider    []Label           `json:"also_consider" yaml:"also_consider"`
}

// Decide runs one full decision pass over an immutable answer set: core
// selection, refinement augmentation, scoring, and follow-up resolution.
// It is a total function: any id absent from answers counts as no, so there
// is no failure path.
func Decide(answers AnswerSet) *Result {
	candidates, rationale := selectCore(answers)
	refinements, refRationale := augment(answers)
	rationale = append(rationale, refRationale...)

	scores := scoreCandidates(candidates, answers)
	topPick, alsoConsider := rank(scores, candidates)

	// Final list: core candidates in selection order, then refinements not
	// already present.
	recommendations := make([]Label, 0, len(candidates)+len(refinements))
	present := make(map[Label]bool, len(candidates))
	for _, c := range candidates {
		recommendations = append(recommendations, c)
		present[c] = true
	}
	for _, r := range refinements {
		if !present[r] {
			recommendations = append(recommendations, r)
			present[r] = true
		}
	}

	// Resolve composites everywhere the result is displayed; the score map
	// keeps ambiguous keys.
	for i, label := range recommendations {
		recommendations[i] = Resolve(label, answers)
	}
	topPick = Resolve(topPick, answers)
	for i, label := range alsoConsider {
		alsoConsider[i] = Resolve(label, answers)
	}

	detailList := make([]string, len(recommendations))
	for i, label := range recommendations {
		detailList[i] = Detail(label)
	}

	echoed := make(map[string]Answer, len(answers))
	for id, v := range answers {
		echoed[id] = v
	}

	return &Result{
		SchemaVersion:   SchemaVersion,
		Answers:         echoed,
		Recommendations: recommendations,
		Details:         detailList,
		Rationale:       rationale,
		Scores:          scores,
		TopPick:         topPick,
		AlsoConsider:    alsoConsider,
	}
}
