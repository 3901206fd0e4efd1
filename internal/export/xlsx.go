package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/carson-networks/finance-notebook/internal/service"
)

// SheetName is the worksheet holding the exported rows.
const SheetName = "Entries"

var columnWidths = []struct {
	start, end string
	width      float64
}{
	{"A", "A", 38},
	{"B", "C", 12},
	{"D", "D", 14},
	{"E", "E", 40},
}

// ToXLSX builds a workbook with the same header and rows as ToCSV. Amounts are
// written as numeric cells.
func ToXLSX(entries []service.Entry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			e.ID,
			e.Date,
			string(e.Type),
			e.Amount.InexactFloat64(),
			e.Description,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	for _, w := range columnWidths {
		if err := f.SetColWidth(SheetName, w.start, w.end, w.width); err != nil {
			return nil, fmt.Errorf("set column width %s: %w", w.start, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
