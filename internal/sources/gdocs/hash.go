// internal/sources/gdocs/hash.go
package gdocs

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

// noisePatterns son fragmentos que el endpoint inyecta en el documento y
// varían entre peticiones al mismo documento. Hay que eliminarlos antes de
// hashear o dos descargas idénticas producirían hashes distintos.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`Loading\.\.\.`),
	regexp.MustCompile(`Sign in.*?Google`),
	regexp.MustCompile(`Last edit was.*?ago`),
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}[ ,]*\d{0,2}:?\d{0,2}\s*(?:AM|PM)?`),
	regexp.MustCompile(`Page \d+ of \d+`),
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// NormalizeContent limpia el texto de un documento para que el hash sea
// estable: elimina los fragmentos inyectados por el endpoint y colapsa el
// espacio en blanco.
func NormalizeContent(text string) string {
	for _, re := range noisePatterns {
		text = re.ReplaceAllString(text, "")
	}
	text = whitespaceRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// ContentHash calcula el hash SHA-256 del contenido normalizado, en hex.
// Un texto vacío produce hash vacío: sin contenido no hay identidad que
// comparar.
func ContentHash(normalized string) string {
	if normalized == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
