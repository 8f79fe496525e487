package dataprocessing

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

// readWorkbook reads the configured (or first) worksheet of an Excel file.
// Cells are read raw so that dates stored as serial numbers can be converted
// exactly; they are rewritten in the first configured date layout.
func (l *Loader) readWorkbook(path string) ([]string, []rawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, errors.NewFileError(path, err)
	}
	defer f.Close()

	sheet := l.cfg.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil, errors.NewParsingError("workbook has no sheets", nil).
				WithContext("path", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, errors.NewParsingError(fmt.Sprintf("failed to read sheet %q", sheet), err).
			WithContext("path", path)
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	var (
		header []string
		data   []rawRow
	)
	for i, row := range rows {
		if isBlank(row) {
			continue
		}
		if header == nil {
			header = row
			continue
		}
		data = append(data, rawRow{line: i + 1, cells: row})
	}
	if header == nil {
		return nil, nil, errors.NewParsingError("empty sheet: no header row", nil).
			WithContext("path", path).WithContext("sheet", sheet)
	}

	dateIdx := -1
	for i, h := range header {
		if strings.TrimSpace(h) == domain.ColumnDate {
			dateIdx = i
			break
		}
	}
	if dateIdx >= 0 {
		converted := 0
		for _, row := range data {
			if dateIdx >= len(row.cells) {
				continue
			}
			serial, err := strconv.ParseFloat(strings.TrimSpace(row.cells[dateIdx]), 64)
			if err != nil {
				continue
			}
			t, err := excelize.ExcelDateToTime(serial, date1904)
			if err != nil {
				continue
			}
			row.cells[dateIdx] = t.Format(l.cfg.DateLayouts[0])
			converted++
		}
		if converted > 0 {
			l.logger.Debug("Converted Excel serial dates",
				slog.String("sheet", sheet),
				slog.Int("cells", converted))
		}
	}

	l.logger.Debug("Workbook read",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("rows", len(data)))

	return header, data, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
