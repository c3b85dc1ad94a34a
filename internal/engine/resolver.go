package engine

// variantRule binds a follow-up question to the concrete label it resolves
// an ambiguous composite into.
type variantRule struct {
	questionID string
	resolved   Label
}

// resolutions holds the fixed resolution policy per ambiguous label. Rules
// are listed in preference order: the first rule whose question is answered
// yes wins, which also encodes the documented both-yes tie rules (e.g. quant
// beats org-wide, so "OCTAVE or FAIR" with both yes resolves to FAIR).
// When no rule matches the label stays unresolved.
var resolutions = map[Label][]variantRule{
	LabelSTRIDE: {
		{"l3_stride_dfd", LabelSTRIDEPerDFD},
		{"l3_stride_element", LabelSTRIDEPerElement},
	},
	LabelLINDDUN: {
		{"l3_linddun_dpia", LabelLINDDUNDPIA},
		{"l3_linddun_eng", LabelLINDDUNEng},
	},
	LabelPASTA: {
		{"l3_pasta_full", LabelPASTAFull},
		{"l3_pasta_light", LabelPASTALight},
	},
	LabelOCTAVEFAIR: {
		{"l3_octavefair_quant", LabelFAIR},
		{"l3_octavefair_orgwide", LabelOCTAVE},
	},
	LabelAttackTrees: {
		{"l3_trees_detection", LabelTreesDetection},
		{"l3_trees_design", LabelTreesDesign},
		{"l3_trees_catalog", LabelTreesCatalog},
	},
	LabelVASTCards: {
		{"l3_vast_scale", LabelVAST},
		{"l3_vast_ideation", LabelSecurityCards},
	},
}

// Resolve rewrites an ambiguous composite label to its concrete variant
// based on the follow-up answers. Labels without a resolution policy
// (refinements, the fallback, and already-concrete variants) are returned
// unchanged, so Resolve is idempotent.
func Resolve(label Label, answers AnswerSet) Label {
	rules, ok := resolutions[label]
	if !ok {
		return label
	}
	for _, rule := range rules {
		if answers.IsYes(rule.questionID) {
			return rule.resolved
		}
	}
	return label
}
