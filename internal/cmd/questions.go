package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gmartijn/Threatmodelselector/internal/engine"
)

var questionsCmd = &cobra.Command{
	Use:     "questions",
	Short:   "List the questionnaire",
	GroupID: groupCore,
	Long: `List every question the questionnaire can ask, with its id and the
reason it matters. Question ids double as flag names for tmsel recommend
(q7 becomes --q7, l3_stride_dfd becomes --l3-stride-dfd).`,
	Args: cobra.NoArgs,
	RunE: runQuestions,
}

var questionsJSON bool

func init() {
	questionsCmd.Flags().BoolVar(&questionsJSON, "json", false, "Output the catalog as JSON")
}

// questionEntry is the JSON shape of one catalog entry.
type questionEntry struct {
	ID        string `json:"id"`
	Prompt    string `json:"prompt"`
	Rationale string `json:"rationale,omitempty"`
	Section   string `json:"section"`
	For       string `json:"for,omitempty"` // Methodology a follow-up disambiguates
}

func runQuestions(cmd *cobra.Command, args []string) error {
	if questionsJSON {
		return printQuestionsJSON()
	}

	printSection("Core questions", engine.CoreQuestions)
	printSection("Refinements", engine.RefinementQuestions)

	fmt.Printf("%sFollow-ups%s\n", colorBold, colorReset)
	for _, label := range engine.AmbiguousLabels() {
		fmt.Printf("  %s:\n", label)
		for _, q := range engine.FollowupQuestions[label] {
			printQuestion("  ", q)
		}
	}
	return nil
}

// questionCatalog flattens the full question set in ask order.
func questionCatalog() []questionEntry {
	var entries []questionEntry
	for _, q := range engine.CoreQuestions {
		entries = append(entries, questionEntry{q.ID, q.Prompt, q.Rationale, "core", ""})
	}
	for _, q := range engine.RefinementQuestions {
		entries = append(entries, questionEntry{q.ID, q.Prompt, q.Rationale, "refinement", ""})
	}
	for _, label := range engine.AmbiguousLabels() {
		for _, q := range engine.FollowupQuestions[label] {
			entries = append(entries, questionEntry{q.ID, q.Prompt, q.Rationale, "followup", string(label)})
		}
	}
	return entries
}

func printQuestionsJSON() error {
	data, err := json.MarshalIndent(questionCatalog(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printSection(title string, questions []engine.Question) {
	fmt.Printf("%s%s%s\n", colorBold, title, colorReset)
	for _, q := range questions {
		printQuestion("", q)
	}
	fmt.Println()
}

func printQuestion(indent string, q engine.Question) {
	fmt.Printf("%s  %s%-18s%s %s\n", indent, colorCyan, q.ID, colorReset, q.Prompt)
	if q.Rationale != "" {
		fmt.Printf("%s  %s%-18s %s%s\n", indent, colorDim, "", q.Rationale, colorReset)
	}
}
