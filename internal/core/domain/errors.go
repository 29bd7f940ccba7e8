// internal/core/domain/errors.go
package domain

import "errors"

// Errores de dominio comunes.
var (
	// Identifier errors
	ErrEmptyBaseID       = errors.New("base identifier cannot be empty")
	ErrInvalidIdentifier = errors.New("identifier contains characters outside the naming scheme")

	// Strategy errors
	ErrInvalidStrategy = errors.New("invalid strategy")
	ErrNoStrategies    = errors.New("at least one strategy is required")

	// Configuration errors (fallan la ejecución completa antes de probar nada)
	ErrNonPositiveCount  = errors.New("max increments must be positive")
	ErrCountAboveCeiling = errors.New("max increments exceeds configured ceiling")
	ErrNegativeDelay     = errors.New("test delay cannot be negative")
	ErrNoProber          = errors.New("no prober configured")

	// Run errors
	ErrInvalidTransition = errors.New("invalid run state transition")
	ErrRunNotTerminal    = errors.New("run has not reached a terminal state")

	// Prober errors
	ErrProberNotFound = errors.New("prober not found")
)
