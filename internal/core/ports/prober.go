// internal/core/ports/prober.go
package ports

import (
	"context"
	"time"

	"docsweep/internal/core/domain"
)

// Prober es el port primario para comprobar la alcanzabilidad de un
// identificador. Cualquier backend (HTTP, mock de tests) debe implementar
// esta interfaz.
//
// El contrato de retorno separa veredicto de fallo: un DocumentInfo con
// error nil es un veredicto definitivo (accesible o no accesible), mientras
// que un error no nil es un fallo transitorio sin información sobre el
// documento, candidato a reintento por el scheduler.
type Prober interface {
	// Name retorna el nombre único del prober (ej: "gdocs")
	Name() string

	// Probe comprueba un identificador y retorna su veredicto
	Probe(ctx context.Context, id domain.Identifier) (domain.DocumentInfo, error)

	// Close libera recursos utilizados por el prober
	Close() error
}

// ProberConfig contiene la configuración específica de un prober.
type ProberConfig struct {
	// Timeout tiempo máximo por petición
	Timeout time.Duration

	// UserAgent cabecera User-Agent de las peticiones salientes
	UserAgent string

	// Custom configuración específica del prober (URLs base, etc.)
	Custom map[string]interface{}
}

// DefaultProberConfig retorna una configuración por defecto.
func DefaultProberConfig() ProberConfig {
	return ProberConfig{
		Timeout:   30 * time.Second,
		UserAgent: "docsweep/1.0",
		Custom:    make(map[string]interface{}),
	}
}

// ProberMetadata contiene metadatos sobre un prober registrado.
type ProberMetadata struct {
	// Name nombre único del prober
	Name string

	// Description descripción corta de qué endpoint comprueba
	Description string

	// Endpoints plantillas de URL que el prober intenta, en orden
	Endpoints []string
}
