// internal/core/usecases/uniqueness.go
package usecases

import "docsweep/internal/core/domain"

// ApplyUniqueness calcula el análisis de unicidad sobre los documentos
// accesibles del informe: dos documentos con el mismo hash de contenido se
// consideran el mismo documento servido bajo identificadores distintos. Los
// documentos sin hash cuentan como únicos.
func ApplyUniqueness(report *domain.BatchRunReport) {
	seen := make(map[string]bool, len(report.SuccessfulDocuments))
	unique := 0
	duplicates := 0

	for _, doc := range report.SuccessfulDocuments {
		if doc.ContentHash == "" {
			unique++
			continue
		}
		if seen[doc.ContentHash] {
			duplicates++
			continue
		}
		seen[doc.ContentHash] = true
		unique++
	}

	report.UniqueDocumentsCount = unique
	report.DuplicateDocumentsCount = duplicates
	if total := len(report.SuccessfulDocuments); total > 0 {
		report.UniquenessRate = float64(unique) / float64(total)
	}
}
