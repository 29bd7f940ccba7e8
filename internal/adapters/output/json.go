// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"docsweep/internal/core/domain"
)

// sanitizeBaseID convierte un identificador en un nombre de fichero seguro y
// acotado en longitud.
func sanitizeBaseID(id string) string {
	sanitized := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, id)
	if len(sanitized) > 24 {
		sanitized = sanitized[:24]
	}
	return sanitized
}

// WriteJSON exporta el informe a un fichero JSON bajo dir y retorna la ruta.
func WriteJSON(dir string, report domain.BatchRunReport) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("docsweep_%s_%s.json", sanitizeBaseID(string(report.BaseID)), timestamp)
	path := filepath.Join(dir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}
	return path, nil
}

// WriteJSONTo exporta el informe a un writer arbitrario.
func WriteJSONTo(w io.Writer, report domain.BatchRunReport, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(report)
}
