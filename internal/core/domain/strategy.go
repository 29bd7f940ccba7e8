// internal/core/domain/strategy.go
package domain

import (
	"fmt"
	"strings"
)

// Strategy define una regla de mutación nombrada para derivar candidatos a
// partir de un identificador base. Es una enumeración cerrada.
type Strategy string

const (
	// StrategyLastChar incrementa el último carácter estilo odómetro; el
	// acarreo se propaga hacia la izquierda a través de todas las posiciones
	StrategyLastChar Strategy = "last_char"

	// StrategyLastDigit incrementa solo el dígito más a la derecha; el
	// acarreo queda confinado a los dígitos situados más a la izquierda
	StrategyLastDigit Strategy = "last_digit"

	// StrategyLastLetter incrementa solo la letra más a la derecha,
	// preservando la caja; sin cruce dígito/letra en el acarreo
	StrategyLastLetter Strategy = "last_letter"

	// StrategyAllPositions avanza cada posición mutable de forma
	// independiente, una pasada de izquierda a derecha
	StrategyAllPositions Strategy = "all_positions"
)

// AllStrategies retorna todas las estrategias conocidas en orden estable.
func AllStrategies() []Strategy {
	return []Strategy{
		StrategyLastChar,
		StrategyLastDigit,
		StrategyLastLetter,
		StrategyAllPositions,
	}
}

// IsValid verifica si la estrategia es válida.
func (s Strategy) IsValid() bool {
	switch s {
	case StrategyLastChar, StrategyLastDigit, StrategyLastLetter, StrategyAllPositions:
		return true
	default:
		return false
	}
}

// String retorna la representación string de la estrategia.
func (s Strategy) String() string {
	return string(s)
}

// ParseStrategy convierte un string en Strategy, normalizando el formato.
func ParseStrategy(v string) (Strategy, error) {
	s := Strategy(strings.ToLower(strings.TrimSpace(v)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidStrategy, v)
	}
	return s, nil
}

// ParseStrategies convierte una lista separada por comas en estrategias,
// descartando duplicados y preservando el orden de aparición.
func ParseStrategies(v string) ([]Strategy, error) {
	parts := strings.Split(v, ",")
	seen := make(map[Strategy]bool, len(parts))
	out := make([]Strategy, 0, len(parts))

	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		s, err := ParseStrategy(p)
		if err != nil {
			return nil, err
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}

	if len(out) == 0 {
		return nil, ErrNoStrategies
	}
	return out, nil
}
