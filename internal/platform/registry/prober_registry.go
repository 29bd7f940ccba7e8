// internal/platform/registry/prober_registry.go
package registry

import (
	"fmt"
	"sort"
	"sync"

	"docsweep/internal/core/domain"
	"docsweep/internal/core/ports"
	"docsweep/internal/platform/logx"
)

// ProberRegistry gestiona el registro y construcción de probers.
// Implementa el patrón Registry + Factory para desacoplar la creación
// de probers del código de aplicación.
type ProberRegistry struct {
	mu        sync.RWMutex
	factories map[string]ProberFactory
	metadata  map[string]ports.ProberMetadata
	logger    logx.Logger
}

// ProberFactory es una función que crea una instancia de Prober.
type ProberFactory func(cfg ports.ProberConfig, logger logx.Logger) (ports.Prober, error)

// globalRegistry es la instancia global del registry.
var globalRegistry *ProberRegistry
var once sync.Once

// Global retorna la instancia global del registry.
func Global() *ProberRegistry {
	once.Do(func() {
		globalRegistry = NewProberRegistry(logx.New())
	})
	return globalRegistry
}

// NewProberRegistry crea un nuevo registry de probers.
func NewProberRegistry(logger logx.Logger) *ProberRegistry {
	return &ProberRegistry{
		factories: make(map[string]ProberFactory),
		metadata:  make(map[string]ports.ProberMetadata),
		logger:    logger.With("component", "prober-registry"),
	}
}

// Register registra una prober factory con su metadata.
// Típicamente llamado desde init() de cada prober package.
func (r *ProberRegistry) Register(name string, factory ProberFactory, meta ports.ProberMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return fmt.Errorf("prober name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil for prober %s", name)
	}
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("prober %s is already registered", name)
	}

	r.factories[name] = factory
	r.metadata[name] = meta
	r.logger.Debug("prober registered", "name", name)
	return nil
}

// Build construye el prober indicado con la configuración dada.
func (r *ProberRegistry) Build(name string, cfg ports.ProberConfig, logger logx.Logger) (ports.Prober, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrProberNotFound, name)
	}

	prober, err := factory(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build prober %s: %w", name, err)
	}

	r.logger.Debug("prober built", "name", name)
	return prober, nil
}

// List retorna los nombres de todos los probers registrados.
func (r *ProberRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetMetadata retorna el metadata de un prober.
func (r *ProberRegistry) GetMetadata(name string) (ports.ProberMetadata, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, exists := r.metadata[name]
	return meta, exists
}

// IsRegistered verifica si un prober está registrado.
func (r *ProberRegistry) IsRegistered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

// Clear elimina todos los probers registrados (útil para testing).
func (r *ProberRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories = make(map[string]ProberFactory)
	r.metadata = make(map[string]ports.ProberMetadata)
}
