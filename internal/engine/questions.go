package engine

// Question is an immutable prompt definition. ID is the stable token used
// in flags, answer files, and the persisted answer map; Rationale explains
// why a yes answer points at the associated methodology.
type Question struct {
	ID        string
	Prompt    string
	Rationale string
}

// CoreQuestions are the six primary selection questions, in the fixed order
// the selector iterates them. Each maps to exactly one primary label.
var CoreQuestions = []Question{
	{
		ID:        "q1",
		Prompt:    "Are you focusing mainly on system design & technical threats (DFDs/components)?",
		Rationale: "If yes, STRIDE maps cleanly to data-flow diagrams and design reviews.",
	},
	{
		ID:        "q2",
		Prompt:    "Is privacy and personal data compliance a main concern (e.g., GDPR)?",
		Rationale: "If yes, LINDDUN is tailored to privacy-by-design and regulatory alignment.",
	},
	{
		ID:        "q3",
		Prompt:    "Do you need to connect threats to business risk and attacker simulations?",
		Rationale: "If yes, PASTA emphasizes business impact and realistic attack scenarios.",
	},
	{
		ID:        "q4",
		Prompt:    "Is the scope organization-wide (people, processes, critical assets)?",
		Rationale: "If yes, OCTAVE supports org-wide risk posture; FAIR adds financial quantification.",
	},
	{
		ID:        "q5",
		Prompt:    "Do you want to focus on attacker behavior, TTPs, or attack paths?",
		Rationale: "If yes, combine Attack Trees + MITRE ATT&CK + CAPEC for behavior/path coverage.",
	},
	{
		ID:        "q6",
		Prompt:    "Do you need to scale across Agile/DevOps teams or run creative workshops?",
		Rationale: "If yes, VAST supports scalable modeling; Security Cards boost ideation.",
	},
}

// coreLabels maps each core question id to its primary label.
var coreLabels = map[string]Label{
	"q1": LabelSTRIDE,
	"q2": LabelLINDDUN,
	"q3": LabelPASTA,
	"q4": LabelOCTAVEFAIR,
	"q5": LabelAttackTrees,
	"q6": LabelVASTCards,
}

// RefinementQuestions are the six additive refinement questions, in fixed
// order. They annotate the result and feed scoring bonuses; they never
// compete with core selections.
var RefinementQuestions = []Question{
	{
		ID:        "q7",
		Prompt:    "Must you demonstrate compliance with privacy or security regulations (GDPR, HIPAA, PCI DSS)?",
		Rationale: "If yes, map findings to control frameworks so modeling output doubles as audit evidence.",
	},
	{
		ID:        "q8",
		Prompt:    "Do third parties or supply-chain components handle your data or code?",
		Rationale: "If yes, extend the model beyond your own perimeter to vendors and dependencies.",
	},
	{
		ID:        "q9",
		Prompt:    "Do you want threat modeling integrated into CI/CD or developer workflows?",
		Rationale: "If yes, keep the model as code so it re-runs on every change.",
	},
	{
		ID:        "q10",
		Prompt:    "Do you need quantitative or financial risk estimates for leadership?",
		Rationale: "If yes, add quantitative scoring so results are comparable across the portfolio.",
	},
	{
		ID:        "q11",
		Prompt:    "Do you want findings mapped to known attacker TTPs (MITRE ATT&CK)?",
		Rationale: "If yes, TTP tags connect modeling output to detection and hunting.",
	},
	{
		ID:        "q12",
		Prompt:    "Will non-security stakeholders participate in modeling sessions?",
		Rationale: "If yes, facilitated ideation formats keep mixed audiences productive.",
	},
}

// refinementLabels maps each refinement question id to its labels.
var refinementLabels = map[string][]Label{
	"q7":  {RefCompliance},
	"q8":  {RefSupplyChain},
	"q9":  {RefPipeline},
	"q10": {RefQuant},
	"q11": {RefATTACK},
	"q12": {RefWorkshops},
}

// FollowupQuestions holds the disambiguation questions per ambiguous
// primary label. They are asked only when that label is among the core
// candidates; the fallback label has no follow-ups.
var FollowupQuestions = map[Label][]Question{
	LabelSTRIDE: {
		{
			ID:        "l3_stride_dfd",
			Prompt:    "Will you model threats against data flows on a DFD?",
			Rationale: "STRIDE-per-DFD walks each flow, store, and process on the diagram.",
		},
		{
			ID:        "l3_stride_element",
			Prompt:    "Will you enumerate threats per architectural element instead?",
			Rationale: "STRIDE-per-Element walks the component inventory element by element.",
		},
	},
	LabelLINDDUN: {
		{
			ID:        "l3_linddun_dpia",
			Prompt:    "Must the output feed a formal DPIA?",
			Rationale: "DPIA alignment keeps privacy findings usable as assessment evidence.",
		},
		{
			ID:        "l3_linddun_eng",
			Prompt:    "Is this an engineering-driven privacy review during design?",
			Rationale: "LINDDUN's threat trees fit iterative engineering reviews.",
		},
	},
	LabelPASTA: {
		{
			ID:        "l3_pasta_full",
			Prompt:    "Can you invest in all seven PASTA stages, including attacker simulation?",
			Rationale: "The full process yields residual risk aligned with business impact.",
		},
		{
			ID:        "l3_pasta_light",
			Prompt:    "Do you need a compressed, scenario-focused pass instead?",
			Rationale: "A light pass keeps the risk-centric framing without the full stage cost.",
		},
	},
	LabelOCTAVEFAIR: {
		{
			ID:        "l3_octavefair_quant",
			Prompt:    "Do you need risk expressed in financial terms?",
			Rationale: "FAIR quantifies loss-event frequency and magnitude.",
		},
		{
			ID:        "l3_octavefair_orgwide",
			Prompt:    "Is the assessment about organizational posture rather than dollar figures?",
			Rationale: "OCTAVE targets people, processes, and critical assets org-wide.",
		},
	},
	LabelAttackTrees: {
		{
			ID:        "l3_trees_detection",
			Prompt:    "Is the goal better detection coverage of real-world TTPs?",
			Rationale: "An ATT&CK-led pass works back from techniques to detectable paths.",
		},
		{
			ID:        "l3_trees_design",
			Prompt:    "Are you analyzing attack paths against a system design?",
			Rationale: "Attack trees decompose attacker goals during design analysis.",
		},
		{
			ID:        "l3_trees_catalog",
			Prompt:    "Do you mainly need a catalog of applicable attack patterns?",
			Rationale: "CAPEC enumerates known patterns to check the design against.",
		},
	},
	LabelVASTCards: {
		{
			ID:        "l3_vast_scale",
			Prompt:    "Do you need to scale modeling across many Agile teams?",
			Rationale: "VAST's process-flow diagrams are built for repeatable team-level modeling.",
		},
		{
			ID:        "l3_vast_ideation",
			Prompt:    "Is creative threat ideation in workshops the main goal?",
			Rationale: "Security Cards structure adversary brainstorming for mixed groups.",
		},
	},
}

// AmbiguousLabels returns the primary labels that have follow-up questions,
// in canonical priority order.
func AmbiguousLabels() []Label {
	labels := make([]Label, 0, len(FollowupQuestions))
	for _, label := range priorityOrder {
		if len(FollowupQuestions[label]) > 0 {
			labels = append(labels, label)
		}
	}
	return labels
}

// AllQuestionIDs returns every defined question id: core, refinement, then
// follow-ups in canonical priority order. The slice is freshly allocated.
func AllQuestionIDs() []string {
	ids := make([]string, 0, len(CoreQuestions)+len(RefinementQuestions)+13)
	for _, q := range CoreQuestions {
		ids = append(ids, q.ID)
	}
	for _, q := range RefinementQuestions {
		ids = append(ids, q.ID)
	}
	for _, label := range priorityOrder {
		for _, q := range FollowupQuestions[label] {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// QuestionByID looks up any defined question by id.
func QuestionByID(id string) (Question, bool) {
	for _, q := range CoreQuestions {
		if q.ID == id {
			return q, true
		}
	}
	for _, q := range RefinementQuestions {
		if q.ID == id {
			return q, true
		}
	}
	for _, qs := range FollowupQuestions {
		for _, q := range qs {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}
