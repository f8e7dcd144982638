package main

import (
	"context"
	"errors"
	"testing"

	"parlife/internal/core"
)

func TestSweepAgreesAcrossWorkerCounts(t *testing.T) {
	plan := Plan{Size: 12, Steps: 20, Seeds: 2, MaxWorkers: 36, Parallel: 3}
	results, err := Sweep(context.Background(), plan)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if want := 2 * len(plan.WorkerCounts()); len(results) != want {
		t.Fatalf("got %d results, want %d", len(results), want)
	}
	if results[0].Seed != 1 || results[0].Workers != 1 {
		t.Fatalf("results not sorted: first = %+v", results[0])
	}
}

func TestSweepReportsInvalidPlan(t *testing.T) {
	_, err := Sweep(context.Background(), Plan{Size: 0, Steps: 1, Seeds: 1, MaxWorkers: 4})
	if err != nil {
		t.Fatalf("empty plan should succeed, got %v", err)
	}

	_, err = runOnce(context.Background(), Plan{Size: 12, Steps: 1, MaxWorkers: 4}, 1, 9)
	if !errors.Is(err, core.ErrConfiguration) {
		t.Fatalf("runOnce err = %v, want configuration error", err)
	}
}
