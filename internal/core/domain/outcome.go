// internal/core/domain/outcome.go
package domain

// DocumentInfo es el veredicto de alcanzabilidad de un identificador,
// producido exactamente una vez por candidato y por ejecución. Los campos
// opcionales solo se rellenan cuando el documento es accesible (o, en el
// caso de Error, cuando no lo es).
type DocumentInfo struct {
	// ID identificador probado
	ID Identifier `json:"id"`

	// URL por la que el documento resultó accesible (o la última intentada)
	URL string `json:"url"`

	// Accessible indica si el documento existe y es públicamente legible
	Accessible bool `json:"accessible"`

	// Title título extraído del documento (opcional)
	Title string `json:"title,omitempty"`

	// ContentPreview extracto de texto del contenido (opcional, <=200 chars)
	ContentPreview string `json:"content_preview,omitempty"`

	// ContentHash hash SHA-256 del contenido normalizado, para detección de
	// duplicados (opcional)
	ContentHash string `json:"content_hash,omitempty"`

	// Error clasificación del fallo cuando el documento no es accesible
	Error string `json:"error,omitempty"`
}

// ProbeOutcome asocia el veredicto con el candidato que lo originó y su
// posición en el orden de generación, para poder reconstruir un informe
// estable independientemente del orden de finalización.
type ProbeOutcome struct {
	// Candidate candidato probado
	Candidate Candidate

	// Index posición del candidato en el orden de generación (0-indexado)
	Index int

	// Document veredicto del prober
	Document DocumentInfo
}
