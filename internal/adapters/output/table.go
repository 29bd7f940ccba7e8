// internal/adapters/output/table.go
package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"docsweep/internal/core/domain"
)

// WriteTable imprime el informe como tabla legible en terminal.
func WriteTable(w io.Writer, report domain.BatchRunReport) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== docsweep results ===\n")
	fmt.Fprintf(tw, "Base:\t%s\n", report.BaseID)
	fmt.Fprintf(tw, "Strategies:\t%s\n", joinStrategies(report.Strategies))
	fmt.Fprintf(tw, "State:\t%s\n", report.State)
	fmt.Fprintf(tw, "Tested:\t%d\n", report.TotalTested)
	fmt.Fprintf(tw, "Accessible:\t%d (%.1f%%)\n", report.SuccessfulCount, report.SuccessRate*100)
	fmt.Fprintf(tw, "Unique:\t%d (%d duplicates)\n", report.UniqueDocumentsCount, report.DuplicateDocumentsCount)
	fmt.Fprintf(tw, "Duration:\t%dms\n", report.DurationMS)
	if report.Retries > 0 {
		fmt.Fprintf(tw, "Retries:\t%d\n", report.Retries)
	}
	fmt.Fprintln(tw)

	if len(report.SuccessfulDocuments) > 0 {
		fmt.Fprintln(tw, "ID\tTITLE\tURL")
		fmt.Fprintln(tw, "--\t-----\t---")
		for _, doc := range report.SuccessfulDocuments {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", doc.ID, truncate(doc.Title, 40), doc.URL)
		}
	} else {
		fmt.Fprintln(tw, "No accessible documents found.")
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	if len(report.FailedDocuments) > 0 {
		byError := make(map[string]int)
		for _, doc := range report.FailedDocuments {
			byError[doc.Error]++
		}
		fmt.Fprintf(w, "\nFailures (%d):\n", len(report.FailedDocuments))
		for msg, n := range byError {
			fmt.Fprintf(w, "  %d x %s\n", n, msg)
		}
	}

	return nil
}

// WriteAnalysis imprime el análisis estructural de un identificador.
func WriteAnalysis(w io.Writer, a domain.IDAnalysis) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== identifier analysis ===\n")
	fmt.Fprintf(tw, "ID:\t%s\n", a.ID)
	fmt.Fprintf(tw, "Length:\t%d\n", a.Length)
	fmt.Fprintf(tw, "Hyphens:\t%t\n", a.HasHyphens)
	fmt.Fprintf(tw, "Underscores:\t%t\n", a.HasUnderscores)
	fmt.Fprintf(tw, "Starts with digit:\t%t\n", a.StartsWithDigit)
	fmt.Fprintf(tw, "Digit runs:\t%s\n", strings.Join(a.DigitRuns, ", "))
	fmt.Fprintf(tw, "Letter runs:\t%s\n", strings.Join(a.LetterRuns, ", "))

	return tw.Flush()
}

func joinStrategies(strategies []domain.Strategy) string {
	parts := make([]string, len(strategies))
	for i, s := range strategies {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
