package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aarelaponin/archi-reports/internal/model"
)

// Run summarizes one persisted analysis run.
type Run struct {
	ID            int64     `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	ModelPath     string    `json:"model_path"`
	ServedCount   int       `json:"served_count"`
	UnservedCount int       `json:"unserved_count"`
}

// ErrNoRuns is returned when the history database contains no runs.
var ErrNoRuns = errors.New("no analysis runs recorded")

// ListRuns returns up to limit runs, newest first. A limit of 0 or less
// returns all runs.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	query := `SELECT id, created_at, model_path, served_count, unserved_count
		FROM runs ORDER BY id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.ModelPath, &r.ServedCount, &r.UnservedCount); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// LatestRun returns the most recent run, or ErrNoRuns.
func (s *Store) LatestRun() (Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	var r Run
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, model_path, served_count, unserved_count
		 FROM runs ORDER BY id DESC LIMIT 1`,
	).Scan(&r.ID, &r.CreatedAt, &r.ModelPath, &r.ServedCount, &r.UnservedCount)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNoRuns
	}
	if err != nil {
		return Run{}, fmt.Errorf("reading latest run: %w", err)
	}
	return r, nil
}

// RunResult reloads the full analysis result recorded for a run.
func (s *Store) RunResult(runID int64) (model.AnalysisResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	result := model.AnalysisResult{ComponentServices: make(map[string][]string)}

	rows, err := s.db.QueryContext(ctx,
		`SELECT name, serving_component, served FROM processes
		 WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return result, fmt.Errorf("reading run processes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p model.ProcessInfo
		var component sql.NullString
		var served bool
		if err := rows.Scan(&p.Name, &component, &served); err != nil {
			return result, fmt.Errorf("scanning process: %w", err)
		}
		if served {
			p.ServingComponent = component.String
			result.ServedProcesses = append(result.ServedProcesses, p)
		} else {
			result.UnservedProcesses = append(result.UnservedProcesses, p)
		}
	}
	if err := rows.Err(); err != nil {
		return result, err
	}

	svcRows, err := s.db.QueryContext(ctx,
		`SELECT component, process FROM component_services
		 WHERE run_id = ? ORDER BY component, position`, runID)
	if err != nil {
		return result, fmt.Errorf("reading component services: %w", err)
	}
	defer svcRows.Close()

	for svcRows.Next() {
		var component, process string
		if err := svcRows.Scan(&component, &process); err != nil {
			return result, fmt.Errorf("scanning component service: %w", err)
		}
		result.ComponentServices[component] = append(result.ComponentServices[component], process)
	}
	return result, svcRows.Err()
}

// TotalRunCount returns the number of recorded runs.
func (s *Store) TotalRunCount() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting runs: %w", err)
	}
	return count, nil
}
