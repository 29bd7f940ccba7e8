// internal/core/domain/analysis.go
package domain

// IDAnalysis describe la estructura de un identificador: longitud,
// distribución de caracteres y patrones de segmentos. Útil para comparar
// un identificador candidato con los identificadores conocidos del esquema.
type IDAnalysis struct {
	ID               Identifier     `json:"id"`
	Length           int            `json:"length"`
	CharacterCounts  map[string]int `json:"character_counts"`
	HasHyphens       bool           `json:"has_hyphens"`
	HasUnderscores   bool           `json:"has_underscores"`
	AlphanumericOnly bool           `json:"alphanumeric_only"`
	StartsWithDigit  bool           `json:"starts_with_digit"`

	// Runs de caracteres consecutivos de la misma clase
	DigitRuns  []string `json:"digit_runs"`
	LetterRuns []string `json:"letter_runs"`
}

// AnalyzeIdentifier analiza la estructura de un identificador.
func AnalyzeIdentifier(id Identifier) IDAnalysis {
	s := string(id)
	a := IDAnalysis{
		ID:               id,
		Length:           len(s),
		CharacterCounts:  make(map[string]int),
		AlphanumericOnly: true,
		DigitRuns:        []string{},
		LetterRuns:       []string{},
	}

	if len(s) > 0 {
		a.StartsWithDigit = classOf(s[0]) == classDigit
	}

	for i := 0; i < len(s); i++ {
		a.CharacterCounts[string(s[i])]++
		switch s[i] {
		case '-':
			a.HasHyphens = true
			a.AlphanumericOnly = false
		case '_':
			a.HasUnderscores = true
			a.AlphanumericOnly = false
		}
	}

	a.DigitRuns = runsOf(s, func(c byte) bool { return classOf(c) == classDigit })
	a.LetterRuns = runsOf(s, func(c byte) bool {
		cl := classOf(c)
		return cl == classUpper || cl == classLower
	})

	return a
}

// runsOf extrae las subcadenas maximales cuyos caracteres cumplen match.
func runsOf(s string, match func(byte) bool) []string {
	runs := []string{}
	start := -1
	for i := 0; i <= len(s); i++ {
		if i < len(s) && match(s[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, s[start:i])
			start = -1
		}
	}
	return runs
}
