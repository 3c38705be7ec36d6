package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/aarelaponin/archi-reports/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore("")
	if err != nil {
		t.Fatalf("NewStore(\"\") failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleResult() model.AnalysisResult {
	return model.AnalysisResult{
		ServedProcesses: []model.ProcessInfo{
			{Name: "Order Processing", ServingComponent: "Order System"},
			{Name: "Invoice Generation", ServingComponent: "Billing System"},
		},
		UnservedProcesses: []model.ProcessInfo{{Name: "Manual Review"}},
		ComponentServices: map[string][]string{
			"Order System":   {"Order Processing"},
			"Billing System": {"Invoice Generation"},
		},
	}
}

func TestSaveRunAndReload(t *testing.T) {
	s := newTestStore(t)

	runID, err := s.SaveRun("data/model.xml", sampleResult())
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if runID <= 0 {
		t.Fatalf("SaveRun returned id %d, want positive", runID)
	}

	got, err := s.RunResult(runID)
	if err != nil {
		t.Fatalf("RunResult failed: %v", err)
	}
	if !reflect.DeepEqual(got, sampleResult()) {
		t.Errorf("reloaded result = %+v\nwant %+v", got, sampleResult())
	}
}

func TestLatestRun(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.LatestRun(); !errors.Is(err, ErrNoRuns) {
		t.Errorf("LatestRun on empty store = %v, want ErrNoRuns", err)
	}

	first, err := s.SaveRun("a.xml", sampleResult())
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	second, err := s.SaveRun("b.xml", sampleResult())
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if second <= first {
		t.Errorf("run ids not increasing: %d then %d", first, second)
	}

	latest, err := s.LatestRun()
	if err != nil {
		t.Fatalf("LatestRun failed: %v", err)
	}
	if latest.ID != second || latest.ModelPath != "b.xml" {
		t.Errorf("LatestRun = %+v, want id %d path b.xml", latest, second)
	}
	if latest.ServedCount != 2 || latest.UnservedCount != 1 {
		t.Errorf("counts = %d/%d, want 2/1", latest.ServedCount, latest.UnservedCount)
	}
}

func TestListRuns(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := s.SaveRun("model.xml", sampleResult()); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	runs, err := s.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns(2) = %d runs, want 2", len(runs))
	}
	if runs[0].ID < runs[1].ID {
		t.Errorf("runs not newest-first: %d before %d", runs[0].ID, runs[1].ID)
	}

	all, err := s.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns(0) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("ListRuns(0) = %d runs, want 3", len(all))
	}

	count, err := s.TotalRunCount()
	if err != nil {
		t.Fatalf("TotalRunCount failed: %v", err)
	}
	if count != 3 {
		t.Errorf("TotalRunCount = %d, want 3", count)
	}
}

func TestSaveRunEmptyResult(t *testing.T) {
	s := newTestStore(t)

	runID, err := s.SaveRun("empty.xml", model.AnalysisResult{
		ComponentServices: map[string][]string{},
	})
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	got, err := s.RunResult(runID)
	if err != nil {
		t.Fatalf("RunResult failed: %v", err)
	}
	if got.ProcessCount() != 0 || len(got.ComponentServices) != 0 {
		t.Errorf("reloaded empty run = %+v, want empty", got)
	}
}
