// internal/core/ports/notifier.go
package ports

import (
	"time"

	"docsweep/internal/core/domain"
)

// Notifier es el port para observar el progreso de una ejecución. Desacopla
// el orquestador de la capa de presentación: la UI de terminal lo implementa
// para pintar progreso, los tests para capturar eventos.
type Notifier interface {
	// Notify recibe un evento del ciclo de vida de la ejecución
	Notify(event Event)
}

// Event representa un evento del ciclo de vida de una ejecución.
type Event struct {
	// Type tipo de evento
	Type EventType

	// Timestamp momento del evento
	Timestamp time.Time

	// Candidate candidato relacionado (eventos de probe)
	Candidate domain.Candidate

	// Outcome veredicto (solo en EventTypeProbeResolved)
	Outcome domain.ProbeOutcome

	// Err error asociado (eventos de fallo)
	Err error
}

// EventType define los tipos de eventos de una ejecución.
type EventType string

const (
	EventTypeRunStarted   EventType = "run.started"
	EventTypeRunCompleted EventType = "run.completed"
	EventTypeRunCancelled EventType = "run.cancelled"

	EventTypeProbeStarted  EventType = "probe.started"
	EventTypeProbeRetried  EventType = "probe.retried"
	EventTypeProbeResolved EventType = "probe.resolved"
)

// NewEvent crea un nuevo evento con timestamp actual.
func NewEvent(eventType EventType) Event {
	return Event{
		Type:      eventType,
		Timestamp: time.Now(),
	}
}

// NoopNotifier descarta todos los eventos.
type NoopNotifier struct{}

func (NoopNotifier) Notify(Event) {}
