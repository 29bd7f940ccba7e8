// internal/core/domain/candidate.go
package domain

import "fmt"

// Candidate representa un identificador generado a partir del base mediante
// una estrategia. Es inmutable tras su creación: la generación es una
// función pura de (base, estrategia, paso).
type Candidate struct {
	// Base identificador origen de la mutación
	Base Identifier

	// Strategy regla de mutación que produjo el candidato
	Strategy Strategy

	// Step índice del paso de mutación (1-indexado)
	Step int

	// ID identificador resultante
	ID Identifier
}

// String retorna una representación legible del candidato.
func (c Candidate) String() string {
	return fmt.Sprintf("Candidate{id=%s, strategy=%s, step=%d}", c.ID, c.Strategy, c.Step)
}
