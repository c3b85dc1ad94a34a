package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gmartijn/Threatmodelselector/internal/answers"
	"github.com/gmartijn/Threatmodelselector/internal/config"
	"github.com/gmartijn/Threatmodelselector/internal/engine"
	"github.com/gmartijn/Threatmodelselector/internal/render"
	"github.com/gmartijn/Threatmodelselector/internal/wizard"
)

// errBadAnswersFile marks an answers file that could not be read or parsed.
var errBadAnswersFile = errors.New("invalid answers file")

var recommendCmd = &cobra.Command{
	Use:     "recommend",
	Short:   "Recommend a threat modeling methodology",
	GroupID: groupCore,
	Long: `Recommend a threat modeling methodology from yes/no answers.

Without --no-input an interactive questionnaire collects the answers;
answers given via flags or --answers-file pre-fill it. With --no-input the
given answers are used as-is and missing ones count as no.

Examples:
  tmsel recommend
  tmsel recommend --no-input --q1 yes --q10 yes --l3-pasta-full y
  tmsel recommend --no-input --answers-file answers.yaml --format json`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

var (
	answersFile  string
	outputFormat string
	noInput      bool
	noSave       bool
)

func init() {
	f := recommendCmd.Flags()
	f.StringVar(&answersFile, "answers-file", "", "YAML or JSON file mapping question ids to yes/no answers")
	f.StringVar(&outputFormat, "format", "", "Output format: text, markdown, or json (default from config)")
	f.BoolVar(&noInput, "no-input", false, "Never prompt; missing answers count as no")
	f.BoolVar(&noSave, "no-save", false, "Do not record this run in history")

	for _, id := range engine.AllQuestionIDs() {
		q, _ := engine.QuestionByID(id)
		f.String(flagName(id), "", q.Prompt)
	}
}

// flagName maps a question id to its flag name (q7 → --q7,
// l3_stride_dfd → --l3-stride-dfd).
func flagName(id string) string {
	return strings.ReplaceAll(id, "_", "-")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	collected, err := collectAnswers(cmd)
	if err != nil {
		return err
	}

	if !noInput {
		collected, err = runWizard(collected)
		if err != nil {
			return err
		}
	}

	result := engine.Decide(collected)

	format := outputFormat
	if format == "" {
		format = cfg.Output.Format
	}
	if !config.IsValidFormat(format) {
		return fmt.Errorf("unknown output format: %q", format)
	}

	render.Configure(cfg.Output.Color)
	out, err := render.Render(result, format)
	if err != nil {
		return err
	}
	fmt.Print(out)

	if !noSave && cfg.History.Enabled {
		saveRun(cfg, collected, result)
	}
	return nil
}

// collectAnswers merges the answers file (if any) with the per-question
// flags; flags win.
func collectAnswers(cmd *cobra.Command) (engine.AnswerSet, error) {
	base := engine.AnswerSet{}
	if answersFile != "" {
		loaded, err := answers.LoadFile(answersFile)
		if err != nil {
			if errors.Is(err, answers.ErrInvalidToken) || errors.Is(err, answers.ErrUnknownQuestion) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %s", errBadAnswersFile, err)
		}
		base = loaded
	}

	raw := map[string]string{}
	for _, id := range engine.AllQuestionIDs() {
		name := flagName(id)
		if !cmd.Flags().Changed(name) {
			continue
		}
		value, err := cmd.Flags().GetString(name)
		if err != nil {
			return nil, err
		}
		raw[id] = value
	}

	overrides, err := answers.FromTokens(raw)
	if err != nil {
		return nil, err
	}
	return answers.Merge(base, overrides), nil
}

// runWizard runs the interactive questionnaire seeded with the answers
// collected so far.
func runWizard(seed engine.AnswerSet) (engine.AnswerSet, error) {
	p := tea.NewProgram(wizard.NewModel(seed))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("questionnaire failed: %w", err)
	}

	m, ok := final.(wizard.Model)
	if !ok {
		return nil, fmt.Errorf("unexpected questionnaire model %T", final)
	}
	if m.Cancelled() {
		fmt.Printf("%sCancelled%s\n", colorDim, colorReset)
		return nil, errCancelled
	}
	return m.Answers(), nil
}

// saveRun records the run in history. Failures are warnings; the
// recommendation already printed.
func saveRun(cfg *config.Config, collected engine.AnswerSet, result *engine.Result) {
	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history: %v\n", err)
		return
	}
	defer store.Close()

	runID, err := store.SaveRun(context.Background(), collected, result)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save run: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "%sSaved run %s%s\n", colorDim, runID, colorReset)
}
