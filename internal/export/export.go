// Package export turns game results into downloadable CSV or XLSX artifacts.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"mlb-inning-times/internal/domain"

	"github.com/xuri/excelize/v2"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const (
	ContentTypeCSV  = "text/csv"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	WorkbookFilename = "innings_times_by_game.xlsx"

	maxSheetNameLength = 31
	defaultSheet       = "Sheet1"
)

var ErrNoResults = errors.New("no results to export")

var Columns = []string{"InningHalf", "startTime", "endTime"}

type Artifact struct {
	Format      Format
	Filename    string
	ContentType string
	Data        []byte
}

// Build picks the export format from the number of results: a CSV for a
// single game, a workbook with one sheet per game otherwise.
func Build(results []domain.GameResult) (*Artifact, error) {
	switch len(results) {
	case 0:
		return nil, ErrNoResults
	case 1:
		var buf bytes.Buffer
		if err := WriteCSV(&buf, results[0]); err != nil {
			return nil, err
		}
		return &Artifact{
			Format:      FormatCSV,
			Filename:    CSVFilename(results[0].GamePk),
			ContentType: ContentTypeCSV,
			Data:        buf.Bytes(),
		}, nil
	default:
		var buf bytes.Buffer
		if err := WriteWorkbook(&buf, results); err != nil {
			return nil, err
		}
		return &Artifact{
			Format:      FormatXLSX,
			Filename:    WorkbookFilename,
			ContentType: ContentTypeXLSX,
			Data:        buf.Bytes(),
		}, nil
	}
}

func CSVFilename(gamePk string) string {
	return fmt.Sprintf("%s_innings_times.csv", sanitizeFilename(gamePk))
}

func rows(result domain.GameResult) [][]string {
	out := make([][]string, 0, len(result.Innings))
	for _, w := range result.Innings {
		out = append(out, []string{w.Label(), w.Start, w.End})
	}
	return out
}

func WriteCSV(w io.Writer, result domain.GameResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := cw.WriteAll(rows(result)); err != nil {
		return fmt.Errorf("failed to write csv rows for %s: %w", result.GamePk, err)
	}
	return nil
}

// WriteWorkbook writes one sheet per result, named after its GamePk.
func WriteWorkbook(w io.Writer, results []domain.GameResult) error {
	if len(results) == 0 {
		return ErrNoResults
	}

	f := excelize.NewFile()
	defer f.Close()

	names := SheetNames(results)
	for i, result := range results {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, names[i]); err != nil {
				return fmt.Errorf("failed to name sheet %q: %w", names[i], err)
			}
		} else if _, err := f.NewSheet(names[i]); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", names[i], err)
		}
		if err := writeSheet(f, names[i], result); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, result domain.GameResult) error {
	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header on %q: %w", sheet, err)
	}

	for i, r := range rows(result) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{r[0], r[1], r[2]}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d on %q: %w", i+2, sheet, err)
		}
	}
	return nil
}

// SheetNames derives a unique, Excel-legal sheet name per result. Repeated
// GamePks get a " (n)" suffix so every result keeps its own sheet.
func SheetNames(results []domain.GameResult) []string {
	names := make([]string, len(results))
	used := make(map[string]bool)
	for i, r := range results {
		base := sanitizeSheetName(r.GamePk)
		name := base
		for n := 2; used[strings.ToLower(name)]; n++ {
			suffix := fmt.Sprintf(" (%d)", n)
			name = truncateRunes(base, maxSheetNameLength-len(suffix)) + suffix
		}
		used[strings.ToLower(name)] = true
		names[i] = name
	}
	return names
}

var sheetNameReplacer = strings.NewReplacer(
	"[", "_", "]", "_", ":", "_", "*", "_", "?", "_", "/", "_", "\\", "_",
)

func sanitizeSheetName(name string) string {
	name = sheetNameReplacer.Replace(name)
	name = strings.Trim(name, "'")
	if name == "" {
		name = "game"
	}
	return truncateRunes(name, maxSheetNameLength)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

var filenameReplacer = strings.NewReplacer("/", "_", "\\", "_", "\"", "_", "\n", "_", "\r", "_")

func sanitizeFilename(s string) string {
	return filenameReplacer.Replace(s)
}
