package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gmartijn/Threatmodelselector/internal/config"
	"github.com/gmartijn/Threatmodelselector/internal/render"
	"github.com/gmartijn/Threatmodelselector/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Short:   "Inspect saved recommendation runs",
	GroupID: groupCore,
	Long: `Inspect saved recommendation runs.

Runs are recorded by tmsel recommend unless --no-save is given or history
is disabled in the config.`,
}

var historyLimit int

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyFormat string

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one saved run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var pruneDays int

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete runs older than the retention window",
	Args:  cobra.NoArgs,
	RunE:  runHistoryPrune,
}

func init() {
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to list")
	historyShowCmd.Flags().StringVar(&historyFormat, "format", "text", "Output format: text, markdown, or json")
	historyPruneCmd.Flags().IntVar(&pruneDays, "days", 0, "Override the configured retention window in days")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyPruneCmd)
}

// openStore opens the history database at the configured path, creating
// the data directory on first use.
func openStore(cfg *config.Config) (*storage.SQLiteStore, error) {
	dbPath := cfg.History.DBPath
	if dbPath == "" {
		paths := config.DefaultPaths()
		if err := paths.EnsureDirectories(); err != nil {
			return nil, fmt.Errorf("failed to create directories: %w", err)
		}
		dbPath = paths.DatabaseFile()
	}
	return storage.NewSQLiteStore(dbPath)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Printf("%sNo saved runs%s\n", colorDim, colorReset)
		return nil
	}

	for _, run := range runs {
		created := time.UnixMilli(run.CreatedAtUnixMs).Format("2006-01-02 15:04")
		fmt.Printf("%s%s%s  %s  %s\n", colorCyan, run.RunID, colorReset, created, run.TopPick)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !config.IsValidFormat(historyFormat) {
		return fmt.Errorf("unknown output format: %q", historyFormat)
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.GetRun(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	render.Configure(cfg.Output.Color)
	out, err := render.Render(run.Result, historyFormat)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	days := pruneDays
	if days <= 0 {
		days = cfg.History.RetentionDays
	}
	if days <= 0 {
		return fmt.Errorf("retention window must be positive, got %d days", days)
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	cutoff := time.Now().AddDate(0, 0, -days)
	deleted, err := store.PruneOlderThan(cmd.Context(), cutoff)
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d run(s) older than %d days\n", deleted, days)
	return nil
}
