// Package display renders game results as aligned text tables.
package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"mlb-inning-times/internal/domain"
	"mlb-inning-times/internal/export"
)

// Render writes one table for a single result, or one titled section per
// result when there are several.
func Render(w io.Writer, results []domain.GameResult) error {
	if len(results) == 1 {
		return renderTable(w, results[0])
	}
	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		title := fmt.Sprintf("== %s ==", r.GamePk)
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
		if err := renderTable(w, r); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, r domain.GameResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(export.Columns, "\t"))
	for _, inning := range r.Innings {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", inning.Label(), inning.Start, inning.End)
	}
	return tw.Flush()
}

// RenderFailures lists per-identifier failures, one per line.
func RenderFailures(w io.Writer, failures []domain.FetchFailure) error {
	for _, f := range failures {
		if _, err := fmt.Fprintln(w, f.Error()); err != nil {
			return err
		}
	}
	return nil
}
