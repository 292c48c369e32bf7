package workbook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrSourceNotFound is returned when the workbook or a sheet is missing
	ErrSourceNotFound = errors.New("source not found")
	// ErrSchemaMismatch is returned when a sheet cannot satisfy its RegionSpec
	ErrSchemaMismatch = errors.New("schema mismatch")

	errInvalidAmount = errors.New("invalid amount")
)

// Text layouts accepted in the date column when the cell is not a serial date
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
	"2006-1-2",
	"2006.01.02",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"2006年1月2日",
}

// Row is one parsed data row of a region
type Row struct {
	Line   int // 1-based sheet row number
	Date   time.Time
	Values map[string]float64 // keyed by canonical name, excluding the date column
}

// Stats counts what happened while parsing a region
type Stats struct {
	Rows    int // rows returned
	Skipped int // rows excluded because a cell could not be parsed
}

// Workbook is an open spreadsheet file
type Workbook struct {
	path       string
	file       *excelize.File
	date1904   bool
	dateStyles map[int]bool // style id -> carries a date number format
	logger     *slog.Logger
}

// Open opens the workbook at path. The caller must Close it.
func Open(path string, logger *slog.Logger) (*Workbook, error) {
	if logger == nil {
		logger = slog.Default()
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening workbook %s: %v", ErrSourceNotFound, path, err)
	}

	wb := &Workbook{path: path, file: f, dateStyles: make(map[int]bool), logger: logger}
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		wb.date1904 = *props.Date1904
	}
	return wb, nil
}

// Close releases the underlying file
func (wb *Workbook) Close() error {
	return wb.file.Close()
}

// Parse opens the workbook at path, parses one region and closes it again
func Parse(path string, spec RegionSpec, logger *slog.Logger) ([]Row, Stats, error) {
	wb, err := Open(path, logger)
	if err != nil {
		return nil, Stats{}, err
	}
	defer wb.Close()

	return wb.Parse(spec)
}

// Parse reads the region described by spec. Rows whose date or numeric
// cells cannot be parsed are left out and counted in Stats.Skipped.
func (wb *Workbook) Parse(spec RegionSpec) ([]Row, Stats, error) {
	if err := spec.Validate(); err != nil {
		return nil, Stats{}, err
	}

	idx, err := wb.file.GetSheetIndex(spec.Sheet)
	if err != nil || idx < 0 {
		return nil, Stats{}, fmt.Errorf("%w: sheet %q in %s", ErrSourceNotFound, spec.Sheet, wb.path)
	}

	rows, err := wb.file.GetRows(spec.Sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, Stats{}, fmt.Errorf("reading sheet %q: %w", spec.Sheet, err)
	}

	// Region width is the widest row from the header row on
	width := 0
	for i := spec.HeaderRow; i < len(rows); i++ {
		if len(rows[i]) > width {
			width = len(rows[i])
		}
	}
	if need := spec.maxColumn() + 1; width < need {
		return nil, Stats{}, fmt.Errorf("%w: sheet %q has %d columns, need %d",
			ErrSchemaMismatch, spec.Sheet, width, need)
	}

	results := []Row{}
	var stats Stats
	for i := spec.HeaderRow + 1; i < len(rows); i++ {
		row, err := wb.parseRow(rows[i], i+1, spec)
		if err != nil {
			stats.Skipped++
			// A bad amount on a dated row drops real usage from the totals
			level := slog.LevelDebug
			if errors.Is(err, errInvalidAmount) {
				level = slog.LevelWarn
			}
			wb.logger.Log(context.Background(), level, "skipping row",
				slog.String("sheet", spec.Sheet),
				slog.Int("row", i+1),
				slog.String("reason", err.Error()))
			continue
		}
		row.Line = i + 1
		results = append(results, row)
	}
	stats.Rows = len(results)

	wb.logger.Debug("parsed region",
		slog.String("sheet", spec.Sheet),
		slog.Int("rows", stats.Rows),
		slog.Int("skipped", stats.Skipped))

	return results, stats, nil
}

// parseRow maps sheet row line (1-based) to a Row using the column positions in spec
func (wb *Workbook) parseRow(cells []string, line int, spec RegionSpec) (Row, error) {
	cell := func(col int) string {
		if col < len(cells) {
			return strings.TrimSpace(cells[col])
		}
		return ""
	}

	dateCol := spec.Columns[0]
	date, err := wb.parseDate(cell(dateCol), wb.isDateCell(spec.Sheet, dateCol, line))
	if err != nil {
		return Row{}, err
	}

	values := make(map[string]float64, len(spec.Columns)-1)
	for i := 1; i < len(spec.Columns); i++ {
		v, err := parseAmount(cell(spec.Columns[i]))
		if err != nil {
			return Row{}, fmt.Errorf("column %s: %w: %v", spec.Names[i], errInvalidAmount, err)
		}
		values[spec.Names[i]] = v
	}

	return Row{Date: date, Values: values}, nil
}

// parseDate accepts one of dateLayouts, or a serial number when the cell
// carries a date number format. Plain numbers are not dates.
func (wb *Workbook) parseDate(s string, dateFormatted bool) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if !dateFormatted {
			return time.Time{}, fmt.Errorf("number %q is not formatted as a date", s)
		}
		if serial < 1 || math.IsNaN(serial) || math.IsInf(serial, 0) {
			return time.Time{}, fmt.Errorf("invalid serial date %q", s)
		}
		t, err := excelize.ExcelDateToTime(serial, wb.date1904)
		if err != nil {
			return time.Time{}, fmt.Errorf("converting serial date %q: %w", s, err)
		}
		return truncateDay(t), nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// parseAmount parses a non-negative numeric cell; blank cells read as zero
func parseAmount(s string) (float64, error) {
	s = strings.NewReplacer(",", "", "¥", "", "￥", "", "$", "", " ", "").Replace(s)
	if s == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative amount %q", s)
	}
	return v, nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
