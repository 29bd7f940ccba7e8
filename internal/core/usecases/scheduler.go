// internal/core/usecases/scheduler.go
package usecases

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"docsweep/internal/core/domain"
	"docsweep/internal/core/ports"
	"docsweep/internal/platform/errors"
	"docsweep/internal/platform/logx"
	"docsweep/internal/platform/rate"
)

// SchedulerOptions configura el scheduler de probes.
type SchedulerOptions struct {
	// Delay espaciado mínimo entre inicios de probes consecutivos
	Delay time.Duration

	// Concurrency probes en vuelo simultáneos
	Concurrency int

	// MaxRetries reintentos por candidato ante fallos transitorios
	MaxRetries int

	// BackoffCeiling backoff máximo tras fallos transitorios consecutivos
	BackoffCeiling time.Duration
}

// Scheduler despacha probes respetando el espaciado configurado. Un único
// bucle despachador es dueño del ritmo: ningún probe arranca antes de que el
// pacer libere el siguiente slot, con independencia de cuántos workers haya.
// Los fallos transitorios se reintentan hasta MaxRetries con backoff
// exponencial sobre el delay base; agotados los reintentos el candidato
// resuelve como fallo terminal.
type Scheduler struct {
	prober   ports.Prober
	pacer    *rate.Pacer
	logger   logx.Logger
	notifier ports.Notifier
	opts     SchedulerOptions
}

// NewScheduler crea un scheduler sobre el prober dado.
func NewScheduler(prober ports.Prober, opts SchedulerOptions, logger logx.Logger, notifier ports.Notifier) *Scheduler {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.BackoffCeiling <= 0 {
		opts.BackoffCeiling = 30 * time.Second
	}
	if logger == nil {
		logger = logx.New()
	}
	if notifier == nil {
		notifier = ports.NoopNotifier{}
	}
	return &Scheduler{
		prober:   prober,
		pacer:    rate.New(opts.Delay),
		logger:   logger.With("component", "scheduler"),
		notifier: notifier,
		opts:     opts,
	}
}

// attempt es un intento de probe pendiente de despachar.
type attempt struct {
	candidate domain.Candidate
	index     int
	tries     int // intentos ya consumidos
}

// Run despacha todos los candidatos y entrega cada veredicto a deliver.
// deliver puede ser llamado desde varios workers a la vez; el agregador es
// responsable de su propia sincronización.
//
// Retorna el número de reintentos consumidos. Un error no nil solo puede ser
// la cancelación del contexto: los candidatos ya resueltos fueron entregados
// y los restantes quedan sin resolver.
func (s *Scheduler) Run(ctx context.Context, candidates []domain.Candidate, deliver func(domain.ProbeOutcome)) (int, error) {
	if len(candidates) == 0 {
		return 0, nil
	}

	// Capacidad suficiente para todos los re-encolados posibles
	pending := make(chan attempt, len(candidates)*(s.opts.MaxRetries+1))
	for i, c := range candidates {
		pending <- attempt{candidate: c, index: i}
	}

	var (
		outstanding  = int64(len(candidates))
		retries      int64
		consecutives int64 // fallos transitorios consecutivos, para backoff
		allDone      = make(chan struct{})
		closeOnce    sync.Once
		wg           sync.WaitGroup
	)

	resolveOne := func() {
		if atomic.AddInt64(&outstanding, -1) == 0 {
			closeOnce.Do(func() { close(allDone) })
		}
	}

	sem := make(chan struct{}, s.opts.Concurrency)

	for {
		select {
		case <-allDone:
			wg.Wait()
			return int(atomic.LoadInt64(&retries)), nil

		case <-ctx.Done():
			wg.Wait()
			s.logger.Warn("run cancelled",
				"unresolved", atomic.LoadInt64(&outstanding),
			)
			return int(atomic.LoadInt64(&retries)), ctx.Err()

		case a := <-pending:
			// El pacer garantiza el espaciado mínimo entre inicios
			if err := s.pacer.Wait(ctx); err != nil {
				wg.Wait()
				return int(atomic.LoadInt64(&retries)), err
			}
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				wg.Wait()
				return int(atomic.LoadInt64(&retries)), ctx.Err()
			}

			wg.Add(1)
			go func(a attempt) {
				defer wg.Done()
				defer func() { <-sem }()
				s.dispatch(ctx, a, pending, deliver, resolveOne, &retries, &consecutives)
			}(a)
		}
	}
}

// dispatch ejecuta un intento y decide entre veredicto, reintento o fallo
// terminal.
func (s *Scheduler) dispatch(
	ctx context.Context,
	a attempt,
	pending chan<- attempt,
	deliver func(domain.ProbeOutcome),
	resolveOne func(),
	retries *int64,
	consecutives *int64,
) {
	ev := ports.NewEvent(ports.EventTypeProbeStarted)
	ev.Candidate = a.candidate
	s.notifier.Notify(ev)

	doc, err := s.prober.Probe(ctx, a.candidate.ID)
	if err == nil {
		// Veredicto definitivo: el endpoint vuelve a responder con normalidad
		atomic.StoreInt64(consecutives, 0)

		outcome := domain.ProbeOutcome{
			Candidate: a.candidate,
			Index:     a.index,
			Document:  doc,
		}
		deliver(outcome)

		rev := ports.NewEvent(ports.EventTypeProbeResolved)
		rev.Candidate = a.candidate
		rev.Outcome = outcome
		s.notifier.Notify(rev)

		resolveOne()
		return
	}

	if ctx.Err() != nil {
		// La cancelación la gestiona el bucle despachador
		return
	}

	// Fallo transitorio: ensanchar el hueco hasta el próximo inicio
	n := atomic.AddInt64(consecutives, 1)
	s.pacer.Postpone(s.backoff(n))

	if a.tries < s.opts.MaxRetries {
		atomic.AddInt64(retries, 1)
		s.logger.Debug("transient failure, retrying",
			"id", a.candidate.ID,
			"attempt", a.tries+1,
			"error", err.Error(),
		)
		rev := ports.NewEvent(ports.EventTypeProbeRetried)
		rev.Candidate = a.candidate
		rev.Err = err
		s.notifier.Notify(rev)

		pending <- attempt{candidate: a.candidate, index: a.index, tries: a.tries + 1}
		return
	}

	// Reintentos agotados: el candidato resuelve como fallo terminal
	s.logger.Warn("retries exhausted",
		"id", a.candidate.ID,
		"tries", a.tries+1,
		"error", err.Error(),
	)
	outcome := domain.ProbeOutcome{
		Candidate: a.candidate,
		Index:     a.index,
		Document: domain.DocumentInfo{
			ID:         a.candidate.ID,
			Accessible: false,
			Error:      failureMessage(err),
		},
	}
	deliver(outcome)

	rev := ports.NewEvent(ports.EventTypeProbeResolved)
	rev.Candidate = a.candidate
	rev.Outcome = outcome
	rev.Err = err
	s.notifier.Notify(rev)

	resolveOne()
}

// backoff calcula el hueco extra tras n fallos transitorios consecutivos:
// delay * 2^n acotado por el techo configurado.
func (s *Scheduler) backoff(n int64) time.Duration {
	base := s.opts.Delay
	if base <= 0 {
		base = 100 * time.Millisecond
	}
	d := base
	for i := int64(0); i < n; i++ {
		d *= 2
		if d >= s.opts.BackoffCeiling {
			return s.opts.BackoffCeiling
		}
	}
	return d
}

// failureMessage reduce un error transitorio agotado a un mensaje estable.
func failureMessage(err error) string {
	switch {
	case errors.IsTimeout(err):
		return "Request timed out"
	case errors.IsRateLimit(err):
		return "Rate limited by endpoint"
	case errors.IsConnectionFailed(err):
		return "Connection failed"
	default:
		return err.Error()
	}
}
