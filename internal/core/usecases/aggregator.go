// internal/core/usecases/aggregator.go
package usecases

import (
	"sort"
	"sync"

	"docsweep/internal/core/domain"
)

// Aggregator acumula veredictos a medida que los workers los entregan y los
// reordena al orden de generación original. Es el único escritor sobre la
// ejecución: los workers solo llaman a Add.
type Aggregator struct {
	mu       sync.Mutex
	run      *domain.BatchRun
	resolved map[int]bool // índices ya entregados, cada candidato resuelve una sola vez
}

// NewAggregator crea un agregador sobre la ejecución dada.
func NewAggregator(run *domain.BatchRun) *Aggregator {
	return &Aggregator{
		run:      run,
		resolved: make(map[int]bool),
	}
}

// Add registra un veredicto. Entregas duplicadas para el mismo índice se
// descartan.
func (a *Aggregator) Add(outcome domain.ProbeOutcome) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.resolved[outcome.Index] {
		return
	}
	a.resolved[outcome.Index] = true
	a.run.Outcomes = append(a.run.Outcomes, outcome)
}

// Count retorna el número de veredictos acumulados.
func (a *Aggregator) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.run.Outcomes)
}

// Finalize reordena los veredictos al orden de generación. Debe llamarse una
// vez terminado el scheduling, antes de construir el informe.
func (a *Aggregator) Finalize() {
	a.mu.Lock()
	defer a.mu.Unlock()

	sort.Slice(a.run.Outcomes, func(i, j int) bool {
		return a.run.Outcomes[i].Index < a.run.Outcomes[j].Index
	})
}
