package ingest

import (
	"fmt"
	"io"

	"go-inventory-report/internal/engine"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX parses one sheet of a workbook. The first row is the header.
func ReadXLSX(r io.Reader, sheet string) (*engine.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty: no header row", sheet)
	}

	b := newTableBuilder(rows[0])
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		// Spreadsheet rows are 1-based and the header is row 1.
		if err := b.add(i+2, row); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}
	}
	return b.dataset()
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
