// internal/sources/common/cached.go
package common

import (
	"context"
	"time"

	"docsweep/internal/core/domain"
	"docsweep/internal/core/ports"
	"docsweep/internal/platform/cache"
	"docsweep/internal/platform/logx"
)

// CachedProber decora un prober con una caché de veredictos por
// identificador. Solo los veredictos definitivos se cachean: un fallo
// transitorio no dice nada del documento y debe volver a intentarse.
type CachedProber struct {
	inner  ports.Prober
	cache  cache.Cache
	ttl    time.Duration
	logger logx.Logger
}

// NewCachedProber envuelve inner con una caché de tamaño size y TTL ttl.
func NewCachedProber(inner ports.Prober, size int, ttl time.Duration, logger logx.Logger) *CachedProber {
	if logger == nil {
		logger = logx.New()
	}
	return &CachedProber{
		inner:  inner,
		cache:  cache.NewMemoryCache(size),
		ttl:    ttl,
		logger: logger.With("component", "prober-cache"),
	}
}

// Name retorna el nombre del prober decorado.
func (c *CachedProber) Name() string {
	return c.inner.Name()
}

// Probe consulta la caché antes de delegar en el prober interno.
func (c *CachedProber) Probe(ctx context.Context, id domain.Identifier) (domain.DocumentInfo, error) {
	if v, ok := c.cache.Get(string(id)); ok {
		c.logger.Debug("cache hit", "id", id)
		return v.(domain.DocumentInfo), nil
	}

	doc, err := c.inner.Probe(ctx, id)
	if err != nil {
		return doc, err
	}

	c.cache.Set(string(id), doc, c.ttl)
	return doc, nil
}

// Close libera el prober decorado.
func (c *CachedProber) Close() error {
	c.cache.Clear()
	return c.inner.Close()
}
