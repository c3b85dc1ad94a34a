// Package cmd implements the CLI commands for tmsel.
package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/gmartijn/Threatmodelselector/internal/answers"
)

// Command groups shown in help output.
const (
	groupCore  = "core"
	groupSetup = "setup"
)

// Exit codes. Bad input (an answers file that does not validate, or an
// invalid yes/no token) is distinguished from other failures.
const (
	ExitOK       = 0
	ExitError    = 1
	ExitBadInput = 2
)

// errCancelled is returned when the user aborts the questionnaire.
var errCancelled = errors.New("cancelled")

var rootCmd = &cobra.Command{
	Use:   "tmsel",
	Short: "pick a threat modeling methodology that fits your project",
	Long: `tmsel - pick a threat modeling methodology that fits your project
  - answer a short yes/no questionnaire
  - get a ranked, explained recommendation`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, answers.ErrInvalidToken),
		errors.Is(err, answers.ErrUnknownQuestion),
		errors.Is(err, errBadAnswersFile):
		return ExitBadInput
	default:
		return ExitError
	}
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: groupCore, Title: "Core Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}
