// internal/core/usecases/aggregator_test.go
package usecases

import (
	"testing"

	"docsweep/internal/core/domain"
)

func outcomeAt(index int, id domain.Identifier, accessible bool) domain.ProbeOutcome {
	return domain.ProbeOutcome{
		Candidate: domain.Candidate{ID: id, Step: index + 1},
		Index:     index,
		Document:  domain.DocumentInfo{ID: id, Accessible: accessible},
	}
}

func TestAggregatorRestoresGenerationOrder(t *testing.T) {
	run := domain.NewBatchRun("base", []domain.Strategy{domain.StrategyLastChar}, 3, 0)
	agg := NewAggregator(run)

	// Entrega fuera de orden, como haría un pool de workers
	agg.Add(outcomeAt(2, "c", false))
	agg.Add(outcomeAt(0, "a", true))
	agg.Add(outcomeAt(1, "b", false))

	agg.Finalize()

	want := []domain.Identifier{"a", "b", "c"}
	for i, o := range run.Outcomes {
		if o.Document.ID != want[i] {
			t.Errorf("outcome[%d].ID = %s, want %s", i, o.Document.ID, want[i])
		}
	}
}

func TestAggregatorDropsDuplicateDeliveries(t *testing.T) {
	run := domain.NewBatchRun("base", []domain.Strategy{domain.StrategyLastChar}, 3, 0)
	agg := NewAggregator(run)

	agg.Add(outcomeAt(0, "a", true))
	agg.Add(outcomeAt(0, "a", false))

	if agg.Count() != 1 {
		t.Errorf("Count() = %d, want 1", agg.Count())
	}
	if !run.Outcomes[0].Document.Accessible {
		t.Error("duplicate delivery overwrote the first verdict")
	}
}

func TestAggregatorCountInvariant(t *testing.T) {
	run := domain.NewBatchRun("base", []domain.Strategy{domain.StrategyLastChar}, 3, 0)
	_ = run.Start()
	agg := NewAggregator(run)

	agg.Add(outcomeAt(0, "a", true))
	agg.Add(outcomeAt(1, "b", false))
	agg.Add(outcomeAt(2, "c", false))
	agg.Finalize()
	_ = run.Finish(domain.RunStateCompleted)

	report, err := run.Report()
	if err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	if report.SuccessfulCount+report.FailedCount != report.TotalTested {
		t.Errorf("invariant broken: %d + %d != %d",
			report.SuccessfulCount, report.FailedCount, report.TotalTested)
	}
}
