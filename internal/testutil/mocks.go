// internal/testutil/mocks.go
package testutil

import (
	"context"
	"sync"
	"time"

	"docsweep/internal/core/domain"
	"docsweep/internal/platform/logx"
)

// TestLogger es un logger silencioso para tests.
type TestLogger struct{}

func (l *TestLogger) Debug(msg string, kv ...any)     {}
func (l *TestLogger) Info(msg string, kv ...any)      {}
func (l *TestLogger) Warn(msg string, kv ...any)      {}
func (l *TestLogger) Err(err error, kv ...any)        {}
func (l *TestLogger) With(kv ...any) logx.Logger      { return l }
func (l *TestLogger) SetLevel(lvl logx.Level)         {}

// NewTestLogger retorna un logger silencioso para tests.
func NewTestLogger() *TestLogger {
	return &TestLogger{}
}

// FakeProber es un prober guionizado para tests: responde según el mapa de
// veredictos y errores, y registra el instante de cada llamada para poder
// verificar el espaciado del scheduler.
type FakeProber struct {
	mu sync.Mutex

	// Verdicts veredictos por identificador. Los identificadores ausentes
	// reciben un veredicto no-accesible genérico.
	Verdicts map[domain.Identifier]domain.DocumentInfo

	// Errors errores transitorios por identificador. Cada llamada consume el
	// primer error de la lista; agotada la lista se responde con el veredicto.
	Errors map[domain.Identifier][]error

	// Latency latencia simulada por llamada (0 = instantáneo)
	Latency time.Duration

	calls      []domain.Identifier
	callTimes  []time.Time
	closeCalls int
}

// NewFakeProber crea un prober guionizado vacío.
func NewFakeProber() *FakeProber {
	return &FakeProber{
		Verdicts: make(map[domain.Identifier]domain.DocumentInfo),
		Errors:   make(map[domain.Identifier][]error),
	}
}

func (f *FakeProber) Name() string { return "fake" }

func (f *FakeProber) Probe(ctx context.Context, id domain.Identifier) (domain.DocumentInfo, error) {
	f.mu.Lock()
	f.calls = append(f.calls, id)
	f.callTimes = append(f.callTimes, time.Now())

	if errs := f.Errors[id]; len(errs) > 0 {
		err := errs[0]
		f.Errors[id] = errs[1:]
		f.mu.Unlock()
		return domain.DocumentInfo{}, err
	}

	verdict, ok := f.Verdicts[id]
	f.mu.Unlock()

	if f.Latency > 0 {
		select {
		case <-ctx.Done():
			return domain.DocumentInfo{}, ctx.Err()
		case <-time.After(f.Latency):
		}
	}

	if !ok {
		verdict = domain.DocumentInfo{ID: id, Accessible: false, Error: "Document not found"}
	}
	return verdict, nil
}

func (f *FakeProber) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeCalls++
	return nil
}

// Calls retorna los identificadores probados, en orden de llamada.
func (f *FakeProber) Calls() []domain.Identifier {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Identifier{}, f.calls...)
}

// CallTimes retorna el instante de cada llamada, en orden.
func (f *FakeProber) CallTimes() []time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Time{}, f.callTimes...)
}

// CallCount retorna el número total de llamadas a Probe.
func (f *FakeProber) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// Closed indica si Close fue llamado al menos una vez.
func (f *FakeProber) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closeCalls > 0
}

// AccessibleDoc construye un veredicto accesible con título.
func AccessibleDoc(id domain.Identifier, title string) domain.DocumentInfo {
	return domain.DocumentInfo{
		ID:         id,
		URL:        "https://docs.google.com/document/d/" + string(id) + "/edit",
		Accessible: true,
		Title:      title,
	}
}

// NotFoundDoc construye un veredicto no-accesible por inexistencia.
func NotFoundDoc(id domain.Identifier) domain.DocumentInfo {
	return domain.DocumentInfo{ID: id, Accessible: false, Error: "Document not found"}
}

// ForbiddenDoc construye un veredicto no-accesible por documento privado.
func ForbiddenDoc(id domain.Identifier) domain.DocumentInfo {
	return domain.DocumentInfo{
		ID:         id,
		Accessible: false,
		Error:      "Access forbidden - document may be private",
	}
}

// CollectingNotifier acumula eventos para inspección en tests.
type CollectingNotifier struct {
	mu     sync.Mutex
	events []string
}

// Record añade un evento por nombre.
func (c *CollectingNotifier) Record(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, name)
}

// Events retorna los nombres de eventos acumulados.
func (c *CollectingNotifier) Events() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string{}, c.events...)
}
