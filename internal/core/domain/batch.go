// internal/core/domain/batch.go
package domain

import (
	"fmt"
	"time"
)

// RunState define el estado de una ejecución por lotes.
type RunState string

const (
	// RunStateIdle ejecución creada, aún sin candidatos despachados
	RunStateIdle RunState = "idle"

	// RunStateRunning candidatos en curso
	RunStateRunning RunState = "running"

	// RunStateCompleted todos los candidatos resueltos
	RunStateCompleted RunState = "completed"

	// RunStateCancelled cancelación cooperativa con resultados parciales
	RunStateCancelled RunState = "cancelled"

	// RunStateFailed error de configuración detectado antes de probar nada
	RunStateFailed RunState = "failed"
)

// IsTerminal indica si el estado es terminal.
func (s RunState) IsTerminal() bool {
	switch s {
	case RunStateCompleted, RunStateCancelled, RunStateFailed:
		return true
	default:
		return false
	}
}

// String retorna la representación string del estado.
func (s RunState) String() string {
	return string(s)
}

// BatchRun representa una ejecución completa: base, estrategias solicitadas,
// límites, y los veredictos en orden de generación. Solo el agregador muta
// la ejecución (añadiendo veredictos en orden de entrega); una vez alcanzado
// un estado terminal se vuelve inmutable.
type BatchRun struct {
	// BaseID identificador semilla
	BaseID Identifier

	// Strategies estrategias solicitadas, en orden
	Strategies []Strategy

	// MaxIncrements máximo de candidatos generados por estrategia
	MaxIncrements int

	// Delay espaciado mínimo entre inicios de probes consecutivos
	Delay time.Duration

	// State estado actual del ciclo de vida
	State RunState

	// Outcomes veredictos en orden de generación de candidatos
	Outcomes []ProbeOutcome

	// Metadata información sobre la ejecución
	Metadata RunMetadata
}

// RunMetadata contiene información sobre la ejecución del lote.
type RunMetadata struct {
	// StartTime momento de inicio
	StartTime time.Time

	// EndTime momento de finalización
	EndTime time.Time

	// Duration duración total
	Duration time.Duration

	// Generated candidatos únicos generados (tras deduplicación)
	Generated int

	// Retries reintentos consumidos por fallos transitorios
	Retries int

	// Prober nombre del prober utilizado
	Prober string
}

// NewBatchRun crea una ejecución en estado Idle.
func NewBatchRun(base Identifier, strategies []Strategy, maxIncrements int, delay time.Duration) *BatchRun {
	return &BatchRun{
		BaseID:        base,
		Strategies:    strategies,
		MaxIncrements: maxIncrements,
		Delay:         delay,
		State:         RunStateIdle,
		Outcomes:      []ProbeOutcome{},
		Metadata: RunMetadata{
			StartTime: time.Now(),
		},
	}
}

// Start transiciona Idle -> Running.
func (r *BatchRun) Start() error {
	if r.State != RunStateIdle {
		return fmt.Errorf("%w: %s -> running", ErrInvalidTransition, r.State)
	}
	r.State = RunStateRunning
	return nil
}

// Finish transiciona Running al estado terminal indicado.
func (r *BatchRun) Finish(terminal RunState) error {
	if !terminal.IsTerminal() {
		return fmt.Errorf("%w: %s no es terminal", ErrInvalidTransition, terminal)
	}
	if r.State.IsTerminal() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.State, terminal)
	}
	r.State = terminal
	r.Metadata.EndTime = time.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Sub(r.Metadata.StartTime)
	return nil
}

// SuccessfulCount retorna el número de documentos accesibles.
func (r *BatchRun) SuccessfulCount() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Document.Accessible {
			n++
		}
	}
	return n
}

// TotalTested retorna el número total de candidatos resueltos.
func (r *BatchRun) TotalTested() int {
	return len(r.Outcomes)
}

// BatchRunReport es la forma serializable del resultado de una ejecución.
// Invariante: SuccessfulCount + FailedCount == TotalTested, y SuccessRate
// es 0 cuando no se probó nada (nunca división por cero).
type BatchRunReport struct {
	BaseID          Identifier `json:"base_id"`
	Strategies      []Strategy `json:"strategies"`
	State           RunState   `json:"state"`
	TotalTested     int        `json:"total_tested"`
	SuccessfulCount int        `json:"successful_count"`
	FailedCount     int        `json:"failed_count"`
	SuccessRate     float64    `json:"success_rate"`

	// Análisis de unicidad por hash de contenido
	UniqueDocumentsCount    int     `json:"unique_documents_count"`
	DuplicateDocumentsCount int     `json:"duplicate_documents_count"`
	UniquenessRate          float64 `json:"uniqueness_rate"`

	SuccessfulDocuments []DocumentInfo `json:"successful_documents"`
	FailedDocuments     []DocumentInfo `json:"failed_documents"`

	DurationMS int64 `json:"duration_ms"`
	Retries    int   `json:"retries,omitempty"`
}

// Report construye el informe final desde una ejecución terminal, con los
// documentos en orden de generación original. Una ejecución que no ha
// alcanzado un estado terminal todavía no tiene informe.
func (r *BatchRun) Report() (BatchRunReport, error) {
	if !r.State.IsTerminal() {
		return BatchRunReport{}, ErrRunNotTerminal
	}

	report := BatchRunReport{
		BaseID:              r.BaseID,
		Strategies:          r.Strategies,
		State:               r.State,
		TotalTested:         len(r.Outcomes),
		SuccessfulDocuments: []DocumentInfo{},
		FailedDocuments:     []DocumentInfo{},
		DurationMS:          r.Metadata.Duration.Milliseconds(),
		Retries:             r.Metadata.Retries,
	}

	for _, o := range r.Outcomes {
		if o.Document.Accessible {
			report.SuccessfulDocuments = append(report.SuccessfulDocuments, o.Document)
		} else {
			report.FailedDocuments = append(report.FailedDocuments, o.Document)
		}
	}

	report.SuccessfulCount = len(report.SuccessfulDocuments)
	report.FailedCount = len(report.FailedDocuments)
	if report.TotalTested > 0 {
		report.SuccessRate = float64(report.SuccessfulCount) / float64(report.TotalTested)
	}

	return report, nil
}

// Summary retorna un resumen legible de la ejecución.
func (r *BatchRun) Summary() string {
	return fmt.Sprintf(
		"BatchRun{base=%s, state=%s, tested=%d, ok=%d, duration=%s}",
		r.BaseID,
		r.State,
		len(r.Outcomes),
		r.SuccessfulCount(),
		r.Metadata.Duration,
	)
}
