package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/aarelaponin/archi-reports/internal/model"
)

// SaveRun records one analysis result as a run with its process and
// component detail rows. It returns the new run identifier.
func (s *Store) SaveRun(modelPath string, result model.AnalysisResult) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := s.queryCtx()
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin run tx: %w", err)
	}
	defer tx.Rollback()

	var runID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO runs (created_at, model_path, served_count, unserved_count)
		 VALUES (?, ?, ?, ?) RETURNING id`,
		time.Now().UTC(), modelPath, len(result.ServedProcesses), len(result.UnservedProcesses),
	).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}

	position := 0
	insertProcess := func(p model.ProcessInfo, served bool) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO processes (run_id, position, name, serving_component, served)
			 VALUES (?, ?, ?, ?, ?)`,
			runID, position, p.Name, p.ServingComponent, served)
		position++
		return err
	}

	for _, p := range result.ServedProcesses {
		if err := insertProcess(p, true); err != nil {
			return 0, fmt.Errorf("inserting served process %q: %w", p.Name, err)
		}
	}
	for _, p := range result.UnservedProcesses {
		if err := insertProcess(p, false); err != nil {
			return 0, fmt.Errorf("inserting unserved process %q: %w", p.Name, err)
		}
	}

	components := make([]string, 0, len(result.ComponentServices))
	for component := range result.ComponentServices {
		components = append(components, component)
	}
	sort.Strings(components)
	for _, component := range components {
		for i, process := range result.ComponentServices[component] {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO component_services (run_id, component, position, process)
				 VALUES (?, ?, ?, ?)`,
				runID, component, i, process)
			if err != nil {
				return 0, fmt.Errorf("inserting component service %q: %w", component, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit run: %w", err)
	}
	return runID, nil
}
