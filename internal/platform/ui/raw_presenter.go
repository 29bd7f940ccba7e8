// internal/platform/ui/raw_presenter.go
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"docsweep/internal/core/domain"
	"docsweep/internal/core/ports"
)

// RawPresenter es un presenter sin adornos para terminales no interactivas
// o salida json-only: una línea por evento relevante, sin colores ni barras.
type RawPresenter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewRawPresenter crea un presenter plano que escribe en stderr.
func NewRawPresenter() *RawPresenter {
	return &RawPresenter{w: os.Stderr}
}

// NewRawPresenterTo crea un presenter plano sobre un writer arbitrario.
func NewRawPresenterTo(w io.Writer) *RawPresenter {
	return &RawPresenter{w: w}
}

func (p *RawPresenter) Start(info RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, "docsweep: base=%s strategies=%s candidates=%d delay=%s\n",
		info.BaseID, strings.Join(info.Strategies, ","), info.Candidates, info.Delay)
}

func (p *RawPresenter) Notify(event ports.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch event.Type {
	case ports.EventTypeProbeResolved:
		doc := event.Outcome.Document
		if doc.Accessible {
			fmt.Fprintf(p.w, "found: %s %q\n", doc.ID, doc.Title)
		}
	case ports.EventTypeRunCancelled:
		fmt.Fprintln(p.w, "cancelled: partial results follow")
	}
}

func (p *RawPresenter) Info(msg string)    { p.line("info: " + msg) }
func (p *RawPresenter) Warning(msg string) { p.line("warning: " + msg) }
func (p *RawPresenter) Error(msg string)   { p.line("error: " + msg) }

func (p *RawPresenter) Finish(report domain.BatchRunReport) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, "done: state=%s tested=%d accessible=%d unique=%d duration_ms=%d\n",
		report.State, report.TotalTested, report.SuccessfulCount,
		report.UniqueDocumentsCount, report.DurationMS)
}

func (p *RawPresenter) Close() error { return nil }

func (p *RawPresenter) line(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, s)
}
