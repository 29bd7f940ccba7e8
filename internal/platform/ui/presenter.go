// internal/platform/ui/presenter.go
package ui

import (
	"time"

	"docsweep/internal/core/domain"
	"docsweep/internal/core/ports"
)

// Presenter define la interfaz para presentar el progreso de una ejecución
// en terminal. Implementa ports.Notifier: el orquestador le entrega los
// eventos de la ejecución y el presenter decide cómo pintarlos.
type Presenter interface {
	ports.Notifier

	// Start inicia la presentación con la información de la ejecución
	Start(info RunInfo)

	// Info muestra un mensaje informativo
	Info(msg string)

	// Warning muestra una advertencia
	Warning(msg string)

	// Error muestra un error
	Error(msg string)

	// Finish finaliza la presentación con el informe de la ejecución
	Finish(report domain.BatchRunReport)

	// Close limpia recursos del presenter
	Close() error
}

// RunInfo contiene la información inicial de una ejecución.
type RunInfo struct {
	BaseID      string
	Strategies  []string
	Candidates  int
	Delay       time.Duration
	Concurrency int
	Prober      string
}
