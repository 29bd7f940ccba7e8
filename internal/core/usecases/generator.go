// internal/core/usecases/generator.go
package usecases

import (
	"docsweep/internal/core/domain"
	"docsweep/internal/platform/logx"
)

// Generator materializa el espacio de candidatos de una ejecución: para cada
// estrategia produce hasta maxIncrements candidatos y fusiona las secuencias
// en una lista única, deduplicada por identificador resultante.
type Generator struct {
	logger logx.Logger
}

// NewGenerator crea un generador de candidatos.
func NewGenerator(logger logx.Logger) *Generator {
	if logger == nil {
		logger = logx.New()
	}
	return &Generator{logger: logger.With("component", "generator")}
}

// Generate produce la lista ordenada de candidatos para (base, estrategias).
// Las estrategias se recorren en el orden solicitado; dentro de cada una los
// pasos van de 1 a maxIncrements. Un paso agotado corta la estrategia en
// silencio. Los duplicados entre estrategias se descartan conservando la
// primera aparición, y un candidato idéntico al base nunca se emite.
func (g *Generator) Generate(base domain.Identifier, strategies []domain.Strategy, maxIncrements int) []domain.Candidate {
	seen := make(map[domain.Identifier]bool, maxIncrements*len(strategies))
	out := make([]domain.Candidate, 0, maxIncrements*len(strategies))

	for _, strategy := range strategies {
		generated := 0
		for step := 1; step <= maxIncrements; step++ {
			id, ok := domain.Mutate(base, strategy, step)
			if !ok {
				// Espacio agotado para esta estrategia
				break
			}
			generated++
			if id == base || seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, domain.Candidate{
				Base:     base,
				Strategy: strategy,
				Step:     step,
				ID:       id,
			})
		}
		g.logger.Debug("strategy expanded",
			"strategy", strategy,
			"generated", generated,
			"requested", maxIncrements,
		)
	}

	g.logger.Debug("candidates generated",
		"base", base,
		"strategies", len(strategies),
		"unique", len(out),
	)
	return out
}
