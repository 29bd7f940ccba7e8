// internal/core/usecases/orchestrator.go
package usecases

import (
	"context"
	"fmt"
	"time"

	"docsweep/internal/core/domain"
	"docsweep/internal/core/ports"
	"docsweep/internal/platform/logx"
)

// BatchOptions configura una ejecución por lotes.
type BatchOptions struct {
	// MaxIncrements candidatos generados por estrategia
	MaxIncrements int

	// MaxIncrementsCeiling techo duro para MaxIncrements
	MaxIncrementsCeiling int

	// Delay espaciado mínimo entre inicios de probes
	Delay time.Duration

	// Concurrency probes en vuelo simultáneos
	Concurrency int

	// MaxRetries reintentos por candidato ante fallos transitorios
	MaxRetries int

	// BackoffCeiling backoff máximo tras fallos transitorios consecutivos
	BackoffCeiling time.Duration
}

// BatchOrchestrator coordina una ejecución completa: valida la entrada,
// genera los candidatos, los despacha por el scheduler y construye el
// informe final desde la agregación.
type BatchOrchestrator struct {
	prober    ports.Prober
	generator *Generator
	logger    logx.Logger
	notifier  ports.Notifier
	opts      BatchOptions
}

// OrchestratorOptions configura el orchestrator.
type OrchestratorOptions struct {
	Prober   ports.Prober
	Logger   logx.Logger
	Notifier ports.Notifier
	Batch    BatchOptions
}

// NewBatchOrchestrator crea una nueva instancia del orchestrator.
func NewBatchOrchestrator(opts OrchestratorOptions) *BatchOrchestrator {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.Notifier == nil {
		opts.Notifier = ports.NoopNotifier{}
	}
	if opts.Batch.MaxIncrementsCeiling <= 0 {
		opts.Batch.MaxIncrementsCeiling = 1000
	}
	if opts.Batch.Concurrency < 1 {
		opts.Batch.Concurrency = 1
	}

	return &BatchOrchestrator{
		prober:    opts.Prober,
		generator: NewGenerator(opts.Logger),
		logger:    opts.Logger.With("component", "orchestrator"),
		notifier:  opts.Notifier,
		opts:      opts.Batch,
	}
}

// RunBatch ejecuta un lote completo contra el identificador base.
//
// Los errores de configuración fallan la ejecución antes de probar nada:
// el informe vuelve en estado failed junto al error. Una cancelación del
// contexto termina la ejecución en estado cancelled con los veredictos
// parciales ya resueltos y error nil. Una ejecución que agota todos los
// candidatos termina en completed.
func (o *BatchOrchestrator) RunBatch(ctx context.Context, base domain.Identifier, strategies []domain.Strategy) (domain.BatchRunReport, error) {
	run := domain.NewBatchRun(base, strategies, o.opts.MaxIncrements, o.opts.Delay)
	run.Metadata.Prober = o.proberName()

	if err := o.validate(base, strategies); err != nil {
		_ = run.Finish(domain.RunStateFailed)
		o.logger.Err(err, "base", base)
		report, _ := run.Report()
		return report, err
	}

	if err := run.Start(); err != nil {
		return domain.BatchRunReport{}, err
	}

	candidates := o.generator.Generate(base, strategies, o.opts.MaxIncrements)
	run.Metadata.Generated = len(candidates)

	o.logger.Info("starting batch",
		"base", base,
		"strategies", len(strategies),
		"candidates", len(candidates),
		"delay", o.opts.Delay,
		"concurrency", o.opts.Concurrency,
	)
	o.notifier.Notify(ports.NewEvent(ports.EventTypeRunStarted))

	aggregator := NewAggregator(run)
	scheduler := NewScheduler(o.prober, SchedulerOptions{
		Delay:          o.opts.Delay,
		Concurrency:    o.opts.Concurrency,
		MaxRetries:     o.opts.MaxRetries,
		BackoffCeiling: o.opts.BackoffCeiling,
	}, o.logger, o.notifier)

	retries, schedErr := scheduler.Run(ctx, candidates, aggregator.Add)
	run.Metadata.Retries = retries
	aggregator.Finalize()

	terminal := domain.RunStateCompleted
	eventType := ports.EventTypeRunCompleted
	if schedErr != nil {
		terminal = domain.RunStateCancelled
		eventType = ports.EventTypeRunCancelled
	}
	if err := run.Finish(terminal); err != nil {
		return domain.BatchRunReport{}, err
	}
	o.notifier.Notify(ports.NewEvent(eventType))

	report, err := run.Report()
	if err != nil {
		return report, err
	}
	ApplyUniqueness(&report)

	o.logger.Info("batch finished",
		"state", run.State,
		"tested", report.TotalTested,
		"accessible", report.SuccessfulCount,
		"retries", retries,
		"duration_ms", report.DurationMS,
	)
	return report, nil
}

// ProbeOne comprueba un único identificador sin generar mutaciones, con la
// misma política de reintentos que un lote.
func (o *BatchOrchestrator) ProbeOne(ctx context.Context, id domain.Identifier) (domain.DocumentInfo, error) {
	if o.prober == nil {
		return domain.DocumentInfo{}, domain.ErrNoProber
	}
	if err := id.Validate(); err != nil {
		return domain.DocumentInfo{}, err
	}

	candidate := domain.Candidate{Base: id, Strategy: "", Step: 0, ID: id}
	scheduler := NewScheduler(o.prober, SchedulerOptions{
		Delay:          0,
		Concurrency:    1,
		MaxRetries:     o.opts.MaxRetries,
		BackoffCeiling: o.opts.BackoffCeiling,
	}, o.logger, o.notifier)

	var doc domain.DocumentInfo
	_, err := scheduler.Run(ctx, []domain.Candidate{candidate}, func(out domain.ProbeOutcome) {
		doc = out.Document
	})
	if err != nil {
		return domain.DocumentInfo{}, err
	}
	return doc, nil
}

// validate comprueba la configuración de la ejecución (fail-fast).
func (o *BatchOrchestrator) validate(base domain.Identifier, strategies []domain.Strategy) error {
	if o.prober == nil {
		return domain.ErrNoProber
	}
	if err := base.Validate(); err != nil {
		return err
	}
	if len(strategies) == 0 {
		return domain.ErrNoStrategies
	}
	for _, s := range strategies {
		if !s.IsValid() {
			return fmt.Errorf("%w: %s", domain.ErrInvalidStrategy, s)
		}
	}
	if o.opts.MaxIncrements <= 0 {
		return domain.ErrNonPositiveCount
	}
	if o.opts.MaxIncrements > o.opts.MaxIncrementsCeiling {
		return fmt.Errorf("%w: %d > %d", domain.ErrCountAboveCeiling, o.opts.MaxIncrements, o.opts.MaxIncrementsCeiling)
	}
	if o.opts.Delay < 0 {
		return domain.ErrNegativeDelay
	}
	return nil
}

func (o *BatchOrchestrator) proberName() string {
	if o.prober == nil {
		return ""
	}
	return o.prober.Name()
}
