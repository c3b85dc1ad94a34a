package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gmartijn/Threatmodelselector/internal/engine"
)

// ErrRunNotFound is returned when a run id does not exist.
var ErrRunNotFound = errors.New("run not found")

// Run is one persisted recommendation run.
type Run struct {
	RunID           string
	CreatedAtUnixMs int64
	SchemaVersion   string
	TopPick         string
	Answers         engine.AnswerSet
	Result          *engine.Result
}

// Store is the persistence interface for recommendation runs.
type Store interface {
	SaveRun(ctx context.Context, answers engine.AnswerSet, result *engine.Result) (string, error)
	GetRun(ctx context.Context, runID string) (*Run, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	Close() error
}

// SaveRun persists a completed run and returns its generated id.
func (s *SQLiteStore) SaveRun(ctx context.Context, answers engine.AnswerSet, result *engine.Result) (string, error) {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return "", fmt.Errorf("marshal answers: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}

	runID := uuid.New().String()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (run_id, created_at_unix_ms, schema_version, top_pick, answers_json, result_json)
		VALUES (?, ?, ?, ?, ?, ?)
	`, runID, time.Now().UnixMilli(), result.SchemaVersion, string(result.TopPick), string(answersJSON), string(resultJSON))
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	return runID, nil
}

// GetRun loads a single run by id.
func (s *SQLiteStore) GetRun(ctx context.Context, runID string) (*Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT run_id, created_at_unix_ms, schema_version, top_pick, answers_json, result_json
		FROM runs WHERE run_id = ?
	`, runID)

	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRunNotFound
		}
		return nil, err
	}
	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, created_at_unix_ms, schema_version, top_pick, answers_json, result_json
		FROM runs
		ORDER BY created_at_unix_ms DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// PruneOlderThan deletes runs created before cutoff and returns the number
// of deleted rows.
func (s *SQLiteStore) PruneOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM runs WHERE created_at_unix_ms < ?
	`, cutoff.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}
	return res.RowsAffected()
}

// scanner abstracts *sql.Row and *sql.Rows for scanRun.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (*Run, error) {
	var run Run
	var answersJSON, resultJSON string

	if err := sc.Scan(&run.RunID, &run.CreatedAtUnixMs, &run.SchemaVersion, &run.TopPick, &answersJSON, &resultJSON); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(answersJSON), &run.Answers); err != nil {
		return nil, fmt.Errorf("unmarshal answers for run %s: %w", run.RunID, err)
	}
	if err := json.Unmarshal([]byte(resultJSON), &run.Result); err != nil {
		return nil, fmt.Errorf("unmarshal result for run %s: %w", run.RunID, err)
	}

	return &run, nil
}
