// internal/core/usecases/orchestrator_test.go
package usecases

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"docsweep/internal/core/domain"
	"docsweep/internal/testutil"
)

func newOrchestrator(prober *testutil.FakeProber, batch BatchOptions) *BatchOrchestrator {
	return NewBatchOrchestrator(OrchestratorOptions{
		Prober: prober,
		Logger: testutil.NewTestLogger(),
		Batch:  batch,
	})
}

func TestRunBatchEndToEnd(t *testing.T) {
	// ABC9 con last_digit y 3 incrementos genera ABC0, ABC1, ABC2 (el
	// acarreo no cruza a la B). Solo ABC1 existe.
	prober := testutil.NewFakeProber()
	prober.Verdicts["ABC1"] = testutil.AccessibleDoc("ABC1", "Quarterly notes")

	o := newOrchestrator(prober, BatchOptions{
		MaxIncrements: 3,
		Delay:         time.Millisecond,
	})

	report, err := o.RunBatch(context.Background(), "ABC9", []domain.Strategy{domain.StrategyLastDigit})
	if err != nil {
		t.Fatalf("RunBatch() error = %v", err)
	}

	if report.State != domain.RunStateCompleted {
		t.Errorf("State = %s, want completed", report.State)
	}
	if report.TotalTested != 3 {
		t.Errorf("TotalTested = %d, want 3", report.TotalTested)
	}
	if report.SuccessfulCount != 1 {
		t.Errorf("SuccessfulCount = %d, want 1", report.SuccessfulCount)
	}
	if report.FailedCount != 2 {
		t.Errorf("FailedCount = %d, want 2", report.FailedCount)
	}
	if math.Abs(report.SuccessRate-1.0/3.0) > 1e-9 {
		t.Errorf("SuccessRate = %f, want ~0.333", report.SuccessRate)
	}
	if report.SuccessfulDocuments[0].ID != "ABC1" {
		t.Errorf("accessible doc = %s, want ABC1", report.SuccessfulDocuments[0].ID)
	}
}

func TestRunBatchOrderingUnderConcurrency(t *testing.T) {
	prober := testutil.NewFakeProber()
	prober.Latency = 5 * time.Millisecond

	o := newOrchestrator(prober, BatchOptions{
		MaxIncrements: 8,
		Delay:         0,
		Concurrency:   4,
	})

	report, err := o.RunBatch(context.Background(), "doc-a1", []domain.Strategy{domain.StrategyLastChar})
	if err != nil {
		t.Fatalf("RunBatch() error = %v", err)
	}

	// El informe preserva el orden de generación aunque los workers terminen
	// fuera de orden: doc-a2, doc-a3, ...
	all := append(append([]domain.DocumentInfo{}, report.SuccessfulDocuments...), report.FailedDocuments...)
	if len(all) != 8 {
		t.Fatalf("tested %d, want 8", len(all))
	}
	for i, doc := range report.FailedDocuments {
		want := domain.Identifier("doc-a" + string(rune('2'+i)))
		if doc.ID != want {
			t.Errorf("failed[%d].ID = %s, want %s", i, doc.ID, want)
		}
	}
}

func TestRunBatchValidationFailures(t *testing.T) {
	prober := testutil.NewFakeProber()

	tests := []struct {
		name       string
		base       domain.Identifier
		strategies []domain.Strategy
		batch      BatchOptions
		wantErr    error
	}{
		{
			"empty base",
			"", []domain.Strategy{domain.StrategyLastChar},
			BatchOptions{MaxIncrements: 5},
			domain.ErrEmptyBaseID,
		},
		{
			"invalid base",
			"has space", []domain.Strategy{domain.StrategyLastChar},
			BatchOptions{MaxIncrements: 5},
			domain.ErrInvalidIdentifier,
		},
		{
			"no strategies",
			"abc", nil,
			BatchOptions{MaxIncrements: 5},
			domain.ErrNoStrategies,
		},
		{
			"invalid strategy",
			"abc", []domain.Strategy{"bogus"},
			BatchOptions{MaxIncrements: 5},
			domain.ErrInvalidStrategy,
		},
		{
			"non-positive count",
			"abc", []domain.Strategy{domain.StrategyLastChar},
			BatchOptions{MaxIncrements: 0},
			domain.ErrNonPositiveCount,
		},
		{
			"count above ceiling",
			"abc", []domain.Strategy{domain.StrategyLastChar},
			BatchOptions{MaxIncrements: 50, MaxIncrementsCeiling: 10},
			domain.ErrCountAboveCeiling,
		},
		{
			"negative delay",
			"abc", []domain.Strategy{domain.StrategyLastChar},
			BatchOptions{MaxIncrements: 5, Delay: -time.Second},
			domain.ErrNegativeDelay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newOrchestrator(prober, tt.batch)
			report, err := o.RunBatch(context.Background(), tt.base, tt.strategies)

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("RunBatch() error = %v, want %v", err, tt.wantErr)
			}
			if report.State != domain.RunStateFailed {
				t.Errorf("State = %s, want failed", report.State)
			}
			if report.TotalTested != 0 {
				t.Errorf("TotalTested = %d, want 0 (nothing probed)", report.TotalTested)
			}
		})
	}

	// Nada debió llegar al prober
	if prober.CallCount() != 0 {
		t.Errorf("prober called %d times during failed validations", prober.CallCount())
	}
}

func TestRunBatchNoProber(t *testing.T) {
	o := NewBatchOrchestrator(OrchestratorOptions{
		Logger: testutil.NewTestLogger(),
		Batch:  BatchOptions{MaxIncrements: 5},
	})
	_, err := o.RunBatch(context.Background(), "abc", []domain.Strategy{domain.StrategyLastChar})
	if !errors.Is(err, domain.ErrNoProber) {
		t.Errorf("RunBatch() error = %v, want ErrNoProber", err)
	}
}

func TestRunBatchCancellation(t *testing.T) {
	prober := testutil.NewFakeProber()
	delay := 25 * time.Millisecond

	o := newOrchestrator(prober, BatchOptions{
		MaxIncrements: 10,
		Delay:         delay,
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(delay*2 + delay/2)
		cancel()
	}()

	report, err := o.RunBatch(ctx, "abc1", []domain.Strategy{domain.StrategyLastChar})
	if err != nil {
		t.Fatalf("RunBatch() error = %v, want nil (cancellation is a state, not an error)", err)
	}

	if report.State != domain.RunStateCancelled {
		t.Errorf("State = %s, want cancelled", report.State)
	}
	if report.TotalTested == 0 || report.TotalTested >= 10 {
		t.Errorf("TotalTested = %d, want partial results", report.TotalTested)
	}
	if report.SuccessfulCount+report.FailedCount != report.TotalTested {
		t.Errorf("invariant broken on cancelled run")
	}
}

func TestRunBatchUniqueness(t *testing.T) {
	prober := testutil.NewFakeProber()
	dup := testutil.AccessibleDoc("ABC0", "Same doc")
	dup.ContentHash = "deadbeef"
	dup2 := testutil.AccessibleDoc("ABC1", "Same doc")
	dup2.ContentHash = "deadbeef"
	other := testutil.AccessibleDoc("ABC2", "Other doc")
	other.ContentHash = "cafebabe"
	prober.Verdicts["ABC0"] = dup
	prober.Verdicts["ABC1"] = dup2
	prober.Verdicts["ABC2"] = other

	o := newOrchestrator(prober, BatchOptions{MaxIncrements: 3})
	report, err := o.RunBatch(context.Background(), "ABC9", []domain.Strategy{domain.StrategyLastDigit})
	if err != nil {
		t.Fatalf("RunBatch() error = %v", err)
	}

	if report.UniqueDocumentsCount != 2 {
		t.Errorf("UniqueDocumentsCount = %d, want 2", report.UniqueDocumentsCount)
	}
	if report.DuplicateDocumentsCount != 1 {
		t.Errorf("DuplicateDocumentsCount = %d, want 1", report.DuplicateDocumentsCount)
	}
	if math.Abs(report.UniquenessRate-2.0/3.0) > 1e-9 {
		t.Errorf("UniquenessRate = %f, want ~0.667", report.UniquenessRate)
	}
}

func TestProbeOne(t *testing.T) {
	prober := testutil.NewFakeProber()
	prober.Verdicts["abc123"] = testutil.AccessibleDoc("abc123", "Solo")

	o := newOrchestrator(prober, BatchOptions{MaxIncrements: 5})

	doc, err := o.ProbeOne(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("ProbeOne() error = %v", err)
	}
	if !doc.Accessible || doc.Title != "Solo" {
		t.Errorf("doc = %+v", doc)
	}

	if _, err := o.ProbeOne(context.Background(), "not valid!"); err == nil {
		t.Error("ProbeOne() with invalid id should error")
	}
}
