package engine

// Label identifies a recommended methodology. Labels come in three disjoint
// families: primary (core selection outcomes plus the fallback), refinement
// (additive annotations, never scored or resolved), and resolved (specific
// variants that the resolver rewrites ambiguous primary labels into).
type Label string

// Primary labels: the seven core selection outcomes.
const (
	LabelSTRIDE      Label = "STRIDE"
	LabelLINDDUN     Label = "LINDDUN"
	LabelPASTA       Label = "PASTA"
	LabelOCTAVEFAIR  Label = "OCTAVE or FAIR"
	LabelAttackTrees Label = "Attack Trees + MITRE ATT&CK + CAPEC"
	LabelVASTCards   Label = "VAST or Security Cards"
	// LabelFallback is appended when no core question matched.
	LabelFallback Label = "Reconsider scope / combine methods"
)

// Refinement labels: additive annotations from the refinement questions.
const (
	RefCompliance  Label = "Compliance & regulatory mapping"
	RefSupplyChain Label = "Supply-chain & third-party review"
	RefPipeline    Label = "Threat modeling in CI/CD"
	RefQuant       Label = "Quantitative risk analysis"
	RefATTACK      Label = "MITRE ATT&CK TTP mapping"
	RefWorkshops   Label = "Stakeholder workshops & ideation"
)

// Resolved labels: specific variants produced by the resolver.
const (
	LabelSTRIDEPerDFD     Label = "STRIDE-per-DFD"
	LabelSTRIDEPerElement Label = "STRIDE-per-Element"
	LabelLINDDUNDPIA      Label = "LINDDUN(DPIA)"
	LabelLINDDUNEng       Label = "LINDDUN(engineering)"
	LabelPASTAFull        Label = "PASTA(full)"
	LabelPASTALight       Label = "PASTA(light)"
	LabelFAIR             Label = "FAIR"
	LabelOCTAVE           Label = "OCTAVE"
	LabelTreesDetection   Label = "ATT&CK-led detection modeling"
	LabelTreesDesign      Label = "Attack Trees (design analysis)"
	LabelTreesCatalog     Label = "CAPEC pattern catalog"
	LabelVAST             Label = "VAST"
	LabelSecurityCards    Label = "Security Cards"
)

// priorityOrder is the canonical tie-break order for ranking. When two
// labels carry equal scores, the one earlier in this list ranks first.
// This is a fixed order, not insertion order.
var priorityOrder = []Label{
	LabelSTRIDE,
	LabelLINDDUN,
	LabelPASTA,
	LabelOCTAVEFAIR,
	LabelAttackTrees,
	LabelVASTCards,
	LabelFallback,
}

// priorityIndex returns the canonical rank of a primary label. Unknown
// labels sort last.
func priorityIndex(label Label) int {
	for i, l := range priorityOrder {
		if l == label {
			return i
		}
	}
	return len(priorityOrder)
}

// details maps every label the engine can ever emit to a one-sentence
// description. The table must stay exhaustive over all three families; a
// miss at render time indicates a table bug, not a user error.
var details = map[Label]string{
	// Primary
	LabelSTRIDE:      "Use for system/DFD-centric design reviews to enumerate Spoofing, Tampering, Repudiation, Info Disclosure, DoS, EoP.",
	LabelLINDDUN:     "Privacy threat modeling focused on Linkability, Identifiability, Non-repudiation, Detectability, Disclosure, Unawareness, Non-compliance.",
	LabelPASTA:       "Seven-stage, risk-driven method aligning attacker scenarios with business impact.",
	LabelOCTAVEFAIR:  "OCTAVE for org-wide risk posture; FAIR for financial quantification of risk magnitude.",
	LabelAttackTrees: "Attack Trees map paths to goals; ATT&CK provides real-world TTPs; CAPEC catalogs attack patterns.",
	LabelVASTCards:   "VAST scales across Agile/DevOps; Security Cards facilitate creative brainstorming with adversary/motive prompts.",
	LabelFallback:    "If none matched strongly, reassess objectives or explicitly combine methods (e.g., STRIDE + LINDDUN; PASTA + ATT&CK).",

	// Refinement
	RefCompliance:  "Map every finding to the regulatory controls it affects so audits and threat models stay in sync.",
	RefSupplyChain: "Extend the model to vendors, dependencies, and build artifacts that handle your data or code.",
	RefPipeline:    "Express the model as reviewable artifacts and re-run it automatically on every pipeline change.",
	RefQuant:       "Attach loss-magnitude and frequency estimates so leadership can compare risks in financial terms.",
	RefATTACK:      "Tag identified threats with ATT&CK technique ids to link modeling output to detection engineering.",
	RefWorkshops:   "Run facilitated sessions so product, legal, and operations stakeholders contribute threat scenarios.",

	// Resolved
	LabelSTRIDEPerDFD:     "Apply STRIDE threat categories to each data flow and store in a data-flow diagram.",
	LabelSTRIDEPerElement: "Apply STRIDE threat categories element by element across the component inventory.",
	LabelLINDDUNDPIA:      "Run LINDDUN with DPIA alignment so outputs feed directly into the data protection impact assessment.",
	LabelLINDDUNEng:       "Run LINDDUN as an engineering activity with privacy threat trees during design iterations.",
	LabelPASTAFull:        "Execute all seven PASTA stages including attacker simulation and residual risk analysis.",
	LabelPASTALight:       "Run a compressed PASTA pass focusing on business impact and the most likely attack scenarios.",
	LabelFAIR:             "Quantify risk as loss-event frequency and magnitude to express exposure in financial terms.",
	LabelOCTAVE:           "Assess organization-wide risk posture across people, processes, and critical assets.",
	LabelTreesDetection:   "Start from ATT&CK techniques relevant to your environment and work back to detectable attack paths.",
	LabelTreesDesign:      "Build attack trees from attacker goals down to leaf conditions during design analysis.",
	LabelTreesCatalog:     "Enumerate applicable CAPEC attack patterns and map each to mitigations in the design.",
	LabelVAST:             "Model application and operational threats with process-flow diagrams that scale across Agile teams.",
	LabelSecurityCards:    "Use the Security Cards deck to brainstorm adversaries, motivations, and impacts in workshops.",
}

// Detail returns the one-sentence description for a label, or "" when the
// label is unknown. An empty return for a label the engine produced means
// the details table is incomplete.
func Detail(label Label) string {
	return details[label]
}
