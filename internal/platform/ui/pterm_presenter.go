// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pterm/pterm"

	"docsweep/internal/core/domain"
	"docsweep/internal/core/ports"
)

// PTermPresenter implementa Presenter usando la biblioteca pterm para
// renderizar progreso, colores y símbolos en la terminal.
type PTermPresenter struct {
	mu sync.Mutex

	info     RunInfo
	resolved int
	bar      *pterm.ProgressbarPrinter
}

// NewPTermPresenter crea una nueva instancia del presenter con pterm.
func NewPTermPresenter() *PTermPresenter {
	return &PTermPresenter{}
}

// Start inicia la presentación mostrando el header de la ejecución.
func (p *PTermPresenter) Start(info RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.info = info

	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Println("docsweep - document reachability probe")

	pterm.Println()
	pterm.Printf("  Base:        %s\n", pterm.Cyan(info.BaseID))
	pterm.Printf("  Strategies:  %s\n", pterm.Yellow(strings.Join(info.Strategies, ", ")))
	pterm.Printf("  Candidates:  %d\n", info.Candidates)
	pterm.Printf("  Delay:       %s\n", info.Delay)
	pterm.Printf("  Concurrency: %d\n", info.Concurrency)
	pterm.Printf("  Prober:      %s\n", info.Prober)
	pterm.Println()

	if info.Candidates > 0 {
		bar, err := pterm.DefaultProgressbar.
			WithTotal(info.Candidates).
			WithTitle("probing").
			Start()
		if err == nil {
			p.bar = bar
		}
	}
}

// Notify implementa ports.Notifier pintando el progreso de los probes.
func (p *PTermPresenter) Notify(event ports.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch event.Type {
	case ports.EventTypeProbeResolved:
		p.resolved++
		if p.bar != nil {
			p.bar.Increment()
		}
		doc := event.Outcome.Document
		if doc.Accessible {
			pterm.Success.Printfln("%s  %s", doc.ID, doc.Title)
		}
	case ports.EventTypeProbeRetried:
		if event.Err != nil {
			pterm.Debug.Printfln("retrying %s: %v", event.Candidate.ID, event.Err)
		}
	case ports.EventTypeRunCancelled:
		pterm.Warning.Println("run cancelled, partial results follow")
	}
}

// Info muestra un mensaje informativo.
func (p *PTermPresenter) Info(msg string) {
	pterm.Info.Println(msg)
}

// Warning muestra una advertencia.
func (p *PTermPresenter) Warning(msg string) {
	pterm.Warning.Println(msg)
}

// Error muestra un error.
func (p *PTermPresenter) Error(msg string) {
	pterm.Error.Println(msg)
}

// Finish finaliza la presentación con el resumen de la ejecución.
func (p *PTermPresenter) Finish(report domain.BatchRunReport) {
	p.mu.Lock()
	if p.bar != nil {
		_, _ = p.bar.Stop()
		p.bar = nil
	}
	p.mu.Unlock()

	pterm.Println()
	pterm.DefaultSection.Println("Summary")

	data := pterm.TableData{
		{"State", string(report.State)},
		{"Tested", fmt.Sprintf("%d", report.TotalTested)},
		{"Accessible", fmt.Sprintf("%d (%.1f%%)", report.SuccessfulCount, report.SuccessRate*100)},
		{"Unique", fmt.Sprintf("%d", report.UniqueDocumentsCount)},
		{"Duplicates", fmt.Sprintf("%d", report.DuplicateDocumentsCount)},
		{"Duration", fmt.Sprintf("%dms", report.DurationMS)},
	}
	if report.Retries > 0 {
		data = append(data, []string{"Retries", fmt.Sprintf("%d", report.Retries)})
	}

	_ = pterm.DefaultTable.WithData(data).Render()
}

// Close limpia recursos del presenter.
func (p *PTermPresenter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bar != nil {
		_, _ = p.bar.Stop()
		p.bar = nil
	}
	return nil
}
