// cmd/docsweep/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"docsweep/internal/adapters/output"
	"docsweep/internal/core/domain"
	"docsweep/internal/core/ports"
	"docsweep/internal/core/usecases"
	"docsweep/internal/platform/config"
	"docsweep/internal/platform/logx"
	"docsweep/internal/platform/registry"
	"docsweep/internal/platform/ui"
	"docsweep/internal/sources/common"

	// Import probers for auto-registration via init()
	_ "docsweep/internal/sources/gdocs"
)

var (
	// Rellenables con -ldflags en build
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// 1. Load centralized config (defaults -> file -> env -> flags)
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		os.Exit(2)
	}

	if cfg.PrintVersion {
		fmt.Printf("docsweep %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	// 2. Shared logger
	logger := logx.New()

	// 3. Context and signals for clean shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Known mode: probe the well-known public identifiers and exit
	if cfg.ShowKnown {
		if err := probeKnown(ctx, cfg, logger); err != nil {
			logger.Err(err, "phase", "known")
			os.Exit(1)
		}
		return
	}

	// Validate base identifier
	if cfg.BaseID == "" {
		fmt.Fprintln(os.Stderr, "Error: base identifier is required")
		fmt.Fprintln(os.Stderr, "Usage: docsweep --base <id>")
		fmt.Fprintln(os.Stderr, "Try: docsweep -h for help")
		os.Exit(2)
	}

	base := domain.Identifier(cfg.BaseID)
	if err := base.Validate(); err != nil {
		logger.Err(err, "phase", "validation")
		os.Exit(2)
	}

	// Analyze mode: inspect the identifier structure and exit
	if cfg.Analyze {
		if err := output.WriteAnalysis(os.Stdout, domain.AnalyzeIdentifier(base)); err != nil {
			logger.Err(err, "phase", "analyze")
			os.Exit(1)
		}
		return
	}

	strategies, err := domain.ParseStrategies(cfg.Strategies)
	if err != nil {
		logger.Err(err, "phase", "validation", "strategies", cfg.Strategies)
		os.Exit(2)
	}

	logger.Info("docsweep starting",
		"version", version,
		"base", cfg.BaseID,
		"strategies", cfg.Strategies,
		"prober", cfg.Prober,
		"max_increments", cfg.Batch.MaxIncrements,
	)

	// 4. Build prober from registry, optionally wrapped with caching
	prober, err := buildProber(cfg, logger)
	if err != nil {
		logger.Err(err, "phase", "prober-build", "prober", cfg.Prober)
		os.Exit(2)
	}
	defer func() {
		if err := prober.Close(); err != nil {
			logger.Warn("failed to close prober", "error", err.Error())
		}
	}()

	// 5. Presenter: pterm for interactive runs, raw for json-only output
	var presenter ui.Presenter
	if cfg.JSONOnly {
		presenter = ui.NewRawPresenterTo(os.Stderr)
	} else {
		presenter = ui.NewPTermPresenter()
	}
	defer presenter.Close()

	// 6. Orchestrator
	orch := usecases.NewBatchOrchestrator(usecases.OrchestratorOptions{
		Prober:   prober,
		Logger:   logger,
		Notifier: presenter,
		Batch: usecases.BatchOptions{
			MaxIncrements:        cfg.Batch.MaxIncrements,
			MaxIncrementsCeiling: cfg.Batch.MaxIncrementsCeiling,
			Delay:                cfg.Batch.Delay,
			Concurrency:          cfg.Batch.Concurrency,
			MaxRetries:           cfg.Batch.MaxRetries,
			BackoffCeiling:       cfg.Batch.BackoffCeiling,
		},
	})

	// Probe-only mode: single verdict for the base identifier, JSON to stdout
	if cfg.ProbeOnly {
		doc, err := orch.ProbeOne(ctx, base)
		if err != nil {
			logger.Err(err, "phase", "probe", "id", cfg.BaseID)
			os.Exit(1)
		}
		if err := writeDocJSON(os.Stdout, doc); err != nil {
			logger.Err(err, "phase", "output")
			os.Exit(1)
		}
		return
	}

	// 7. Run the batch
	presenter.Start(ui.RunInfo{
		BaseID:      cfg.BaseID,
		Strategies:  strategyNames(strategies),
		Candidates:  cfg.Batch.MaxIncrements * len(strategies),
		Delay:       cfg.Batch.Delay,
		Concurrency: cfg.Batch.Concurrency,
		Prober:      cfg.Prober,
	})

	report, err := orch.RunBatch(ctx, base, strategies)
	if err != nil {
		presenter.Error(fmt.Sprintf("run failed: %v", err))
		os.Exit(2)
	}

	presenter.Finish(report)

	// 8. Persist and render results
	path, err := output.WriteJSON(cfg.OutputDir, report)
	if err != nil {
		logger.Err(err, "phase", "output", "dir", cfg.OutputDir)
		os.Exit(1)
	}
	presenter.Info("report written to " + path)

	if cfg.JSONOnly {
		if err := output.WriteJSONTo(os.Stdout, report, true); err != nil {
			logger.Err(err, "phase", "output")
			os.Exit(1)
		}
	} else {
		if err := output.WriteTable(os.Stdout, report); err != nil {
			logger.Err(err, "phase", "output")
			os.Exit(1)
		}
	}
}

// probeKnown prueba los identificadores públicos conocidos uno a uno y
// escribe el veredicto de cada uno en stdout.
func probeKnown(ctx context.Context, cfg config.Config, logger logx.Logger) error {
	prober, err := buildProber(cfg, logger)
	if err != nil {
		return err
	}
	defer prober.Close()

	for _, id := range cfg.KnownIDs {
		doc, err := prober.Probe(ctx, domain.Identifier(id))
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Printf("%s\terror: %v\n", id, err)
			continue
		}
		status := "not accessible"
		if doc.Accessible {
			status = "accessible"
		}
		fmt.Printf("%s\t%s\t%s\n", id, status, doc.Title)
	}
	return nil
}

// buildProber resuelve el prober configurado desde el registry y lo
// envuelve con la caché de veredictos si está habilitada.
func buildProber(cfg config.Config, logger logx.Logger) (ports.Prober, error) {
	pcfg := ports.DefaultProberConfig()
	pcfg.Timeout = cfg.ProbeTimeout()

	prober, err := registry.Global().Build(cfg.Prober, pcfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.Cache.Enabled {
		prober = common.NewCachedProber(prober, cfg.Cache.Size, cfg.Cache.TTL, logger)
	}

	return prober, nil
}

func writeDocJSON(w io.Writer, doc domain.DocumentInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func strategyNames(strategies []domain.Strategy) []string {
	names := make([]string, len(strategies))
	for i, s := range strategies {
		names[i] = string(s)
	}
	return names
}
