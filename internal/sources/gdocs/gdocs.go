// internal/sources/gdocs/gdocs.go
package gdocs

import (
	"context"
	"fmt"

	"docsweep/internal/core/domain"
	"docsweep/internal/core/ports"
	"docsweep/internal/platform/errors"
	"docsweep/internal/platform/httpclient"
	"docsweep/internal/platform/logx"
	"docsweep/internal/platform/registry"
)

const defaultBaseURL = "https://docs.google.com"

// endpointPaths plantillas de URL probadas en orden. La vista de edición es
// la más informativa; el export en texto plano y la vista publicada cubren
// documentos que no sirven la primera.
var endpointPaths = []string{
	"/document/d/%s/edit",
	"/document/d/%s/export?format=txt",
	"/document/d/%s/pub",
}

// Auto-registro del prober al importar el package
func init() {
	if err := registry.Global().Register(
		"gdocs",
		func(cfg ports.ProberConfig, logger logx.Logger) (ports.Prober, error) {
			return New(cfg, logger), nil
		},
		ports.ProberMetadata{
			Name:        "gdocs",
			Description: "Google Docs public readability prober",
			Endpoints:   endpointPaths,
		},
	); err != nil {
		logx.New().Warn("failed to register gdocs prober", "error", err.Error())
	}
}

// GDocs comprueba si un documento es públicamente legible intentando sus
// endpoints conocidos en orden.
type GDocs struct {
	client  *httpclient.Client
	logger  logx.Logger
	baseURL string
}

// New crea una nueva instancia del prober gdocs.
func New(cfg ports.ProberConfig, logger logx.Logger) *GDocs {
	baseURL := defaultBaseURL
	if v, ok := cfg.Custom["base_url"].(string); ok && v != "" {
		baseURL = v
	}

	httpConfig := httpclient.Config{
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
	}

	return &GDocs{
		client:  httpclient.New(httpConfig, logger),
		logger:  logger.With("prober", "gdocs"),
		baseURL: baseURL,
	}
}

// Name retorna el nombre del prober.
func (g *GDocs) Name() string {
	return "gdocs"
}

// Probe comprueba un identificador contra los endpoints conocidos.
//
// Un 200 en cualquier endpoint es un veredicto accesible con título, extracto
// y hash de contenido. Un 403 es un veredicto terminal: el documento existe
// pero es privado. Un 404 pasa al siguiente endpoint; agotados todos, el
// veredicto es "no existe". Los fallos de red, 429 y 5xx vuelven como error
// para que el scheduler reintente.
func (g *GDocs) Probe(ctx context.Context, id domain.Identifier) (domain.DocumentInfo, error) {
	info := domain.DocumentInfo{ID: id}

	for _, path := range endpointPaths {
		url := g.baseURL + fmt.Sprintf(path, id)
		info.URL = url

		resp, err := g.client.Get(ctx, url, nil)
		if err != nil {
			return domain.DocumentInfo{}, err
		}

		statusErr := httpclient.CheckStatus(resp)
		if statusErr == nil {
			body, err := httpclient.ReadBody(resp)
			if err != nil {
				return domain.DocumentInfo{}, err
			}
			g.fill(&info, path, body)
			info.Accessible = true
			g.logger.Debug("document accessible", "id", id, "url", url)
			return info, nil
		}
		resp.Body.Close()

		switch {
		case errors.IsNotFound(statusErr):
			// Este endpoint no lo sirve; puede que el siguiente sí
			continue
		case errors.IsAccessDenied(statusErr):
			info.Accessible = false
			info.Error = "Access forbidden - document may be private"
			g.logger.Debug("document private", "id", id, "url", url)
			return info, nil
		default:
			return domain.DocumentInfo{}, statusErr
		}
	}

	info.Accessible = false
	info.Error = "Document not found"
	return info, nil
}

// fill extrae título, extracto y hash del cuerpo según el endpoint.
func (g *GDocs) fill(info *domain.DocumentInfo, path string, body []byte) {
	var text string
	if path == "/document/d/%s/export?format=txt" {
		// El export ya es texto plano, sin título
		text = string(body)
	} else {
		info.Title = ExtractTitle(body)
		text = ExtractText(body)
	}

	normalized := NormalizeContent(text)
	info.ContentPreview = Preview(normalized, 200)
	info.ContentHash = ContentHash(normalized)
}

// Close libera recursos del prober.
func (g *GDocs) Close() error {
	return nil
}
