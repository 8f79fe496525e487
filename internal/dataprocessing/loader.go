package dataprocessing

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"salescli/internal/config"
	"salescli/internal/errors"
	"salescli/internal/infrastructure"
	"salescli/pkg/contracts/domain"
)

// candidateDelimiters are tried when no delimiter is configured, in tie-break order
var candidateDelimiters = []rune{',', ';', '\t', '|'}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// rawRow is one data row with its position in the source file
type rawRow struct {
	line  int
	cells []string
}

// Loader reads a sales file into a SalesTable
type Loader struct {
	logger *slog.Logger
	cfg    config.InputConfig
}

// NewLoader creates a loader. A nil logger falls back to the global logger and
// empty date layouts fall back to config.DefaultDateLayouts.
func NewLoader(logger *slog.Logger, cfg config.InputConfig) *Loader {
	if len(cfg.DateLayouts) == 0 {
		cfg.DateLayouts = config.DefaultDateLayouts
	}
	return &Loader{
		logger: infrastructure.WithComponent(logger, "loader"),
		cfg:    cfg,
	}
}

// Load reads path and returns the parsed table. A missing or unreadable file
// is a FILE error; a missing required column, an unparseable date or a
// non-numeric Weekly_Sales value is a PARSING error.
func (l *Loader) Load(ctx context.Context, path string) (*domain.SalesTable, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.NewFileError(path, err)
	}

	var (
		header []string
		rows   []rawRow
		err    error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		header, rows, err = l.readWorkbook(path)
	default:
		header, rows, err = l.readDelimited(path)
	}
	if err != nil {
		return nil, err
	}

	table, layout, err := buildTable(path, header, rows, l.cfg.DateLayouts)
	if err != nil {
		return nil, err
	}

	l.logger.InfoContext(ctx, "Sales file loaded",
		slog.String("path", path),
		slog.Int("rows", table.Len()),
		slog.Int("columns", len(table.Columns)),
		slog.Int("stores", len(table.Stores())),
		slog.String("date_layout", layout))

	return table, nil
}

// readDelimited reads a delimiter-separated text file
func (l *Loader) readDelimited(path string) ([]string, []rawRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.NewFileError(path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	delim, err := l.delimiter(data)
	if err != nil {
		return nil, nil, err
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delim
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil, errors.NewParsingError("empty file: no header row", nil).
			WithContext("path", path)
	}
	if err != nil {
		return nil, nil, errors.NewParsingError("failed to read header", err).
			WithContext("path", path)
	}

	var rows []rawRow
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, errors.NewParsingError("malformed row", err).
				WithContext("path", path)
		}
		line, _ := r.FieldPos(0)
		rows = append(rows, rawRow{line: line, cells: record})
	}

	l.logger.Debug("Delimited file read",
		slog.String("path", path),
		slog.String("delimiter", strconv.QuoteRune(delim)),
		slog.Int("rows", len(rows)))

	return header, rows, nil
}

// delimiter returns the configured delimiter or sniffs one from the header line
func (l *Loader) delimiter(data []byte) (rune, error) {
	switch l.cfg.Delimiter {
	case "":
		return SniffDelimiter(firstLine(data)), nil
	case "tab", `\t`:
		return '\t', nil
	}

	runes := []rune(l.cfg.Delimiter)
	if len(runes) != 1 {
		return 0, errors.NewAppValidationError(fmt.Sprintf("invalid delimiter %q", l.cfg.Delimiter))
	}
	return runes[0], nil
}

// SniffDelimiter picks the candidate delimiter occurring most often in the
// header line. Ties go to the earlier candidate; no candidate means comma.
func SniffDelimiter(headerLine string) rune {
	best, bestCount := ',', 0
	for _, d := range candidateDelimiters {
		if n := strings.Count(headerLine, string(d)); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

func firstLine(data []byte) string {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		data = data[:i]
	}
	return strings.TrimSuffix(string(data), "\r")
}

// buildTable validates the schema and converts raw rows into records.
// It returns the date layout used for the Date column.
func buildTable(source string, header []string, rows []rawRow, layouts []string) (*domain.SalesTable, string, error) {
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}

	table := &domain.SalesTable{Source: source, Columns: columns}

	storeIdx, err := requireColumn(table, domain.ColumnStore)
	if err != nil {
		return nil, "", err
	}
	dateIdx, err := requireColumn(table, domain.ColumnDate)
	if err != nil {
		return nil, "", err
	}
	salesIdx, err := requireColumn(table, domain.ColumnWeeklySales)
	if err != nil {
		return nil, "", err
	}

	dateCells := make([]string, len(rows))
	for i, row := range rows {
		dateCells[i] = strings.TrimSpace(cell(row.cells, dateIdx))
	}

	layout, err := chooseDateLayout(dateCells, rows, layouts)
	if err != nil {
		return nil, "", err
	}

	table.Records = make([]domain.SalesRecord, 0, len(rows))
	for i, row := range rows {
		date, _ := time.Parse(layout, dateCells[i])

		raw := strings.TrimSpace(cell(row.cells, salesIdx))
		sales, err := strconv.ParseFloat(raw, 64)
		if err == nil && (math.IsNaN(sales) || math.IsInf(sales, 0)) {
			err = fmt.Errorf("%s is not a finite number", raw)
		}
		if err != nil {
			return nil, "", errors.NewParsingError(
				fmt.Sprintf("non-numeric %s value %q on line %d", domain.ColumnWeeklySales, raw, row.line), err).
				WithContext("line", row.line)
		}

		table.Records = append(table.Records, domain.SalesRecord{
			Store:       domain.CanonicalStore(cell(row.cells, storeIdx)),
			Date:        midnightUTC(date),
			WeeklySales: sales,
			Cells:       row.cells,
		})
	}

	return table, layout, nil
}

func requireColumn(table *domain.SalesTable, name string) (int, error) {
	idx, ok := table.ColumnIndex(name)
	if !ok {
		return -1, errors.NewParsingError(fmt.Sprintf("missing required column %q", name), nil).
			WithContext("available", table.Columns)
	}
	return idx, nil
}

// chooseDateLayout returns the first layout that parses every date cell, so a
// file is never read with day-first and month-first dates mixed.
func chooseDateLayout(cells []string, rows []rawRow, layouts []string) (string, error) {
	for _, layout := range layouts {
		if parsesAll(layout, cells) {
			return layout, nil
		}
	}

	for i, c := range cells {
		if !parsesAny(layouts, c) {
			return "", errors.NewParsingError(
				fmt.Sprintf("unparseable %s value %q on line %d", domain.ColumnDate, c, rows[i].line), nil).
				WithContext("line", rows[i].line)
		}
	}
	return "", errors.NewParsingError(
		fmt.Sprintf("%s column mixes several date formats", domain.ColumnDate), nil)
}

func parsesAll(layout string, cells []string) bool {
	for _, c := range cells {
		if _, err := time.Parse(layout, c); err != nil {
			return false
		}
	}
	return true
}

func parsesAny(layouts []string, c string) bool {
	for _, layout := range layouts {
		if _, err := time.Parse(layout, c); err == nil {
			return true
		}
	}
	return false
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func cell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}
