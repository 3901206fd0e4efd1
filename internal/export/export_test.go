package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/carson-networks/finance-notebook/internal/service"
)

func exampleEntries() []service.Entry {
	return []service.Entry{
		{
			ID:          "id-2",
			Type:        service.EntryTypeExpense,
			Amount:      decimal.RequireFromString("300"),
			Description: "groceries",
			Date:        "2024-01-02",
		},
		{
			ID:          "id-1",
			Type:        service.EntryTypeIncome,
			Amount:      decimal.RequireFromString("1234.5"),
			Description: "salary",
			Date:        "2024-01-01",
		},
	}
}

// -- ToCSV tests --

func TestToCSV_ExampleScenario(t *testing.T) {
	csv := ToCSV(exampleEntries())

	assert.Equal(t,
		"id,date,type,amount,description\n"+
			"id-2,2024-01-02,expense,300,\"groceries\"\n"+
			"id-1,2024-01-01,income,1234.5,\"salary\"",
		csv)
}

func TestToCSV_Empty(t *testing.T) {
	assert.Equal(t, "id,date,type,amount,description", ToCSV(nil))
}

func TestToCSV_EscapesDescription(t *testing.T) {
	entries := []service.Entry{{
		ID:          "x",
		Type:        service.EntryTypeIncome,
		Amount:      decimal.RequireFromString("1"),
		Description: `the "big" one, finally`,
		Date:        "2024-05-05",
	}}

	csv := ToCSV(entries)

	assert.Equal(t,
		"id,date,type,amount,description\nx,2024-05-05,income,1,\"the \"\"big\"\" one, finally\"",
		csv)
}

func TestToCSV_EmptyDescriptionStillQuoted(t *testing.T) {
	entries := []service.Entry{{ID: "x", Type: service.EntryTypeExpense, Amount: decimal.NewFromInt(2), Date: "2024-05-05"}}

	assert.Equal(t, "id,date,type,amount,description\nx,2024-05-05,expense,2,\"\"", ToCSV(entries))
}

// -- Filename tests --

func TestFilename(t *testing.T) {
	now := time.Date(2024, 1, 2, 23, 0, 0, 0, time.FixedZone("UTC-3", -3*60*60))

	assert.Equal(t, "finance-notebook-2024-01-03.csv", Filename(now, "csv"))
	assert.Equal(t, "finance-notebook-2024-01-03.xlsx", Filename(now, "xlsx"))
}

// -- ToXLSX tests --

func TestToXLSX_RowsMatchCSV(t *testing.T) {
	data, err := ToXLSX(exampleEntries())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"id", "date", "type", "amount", "description"},
		{"id-2", "2024-01-02", "expense", "300", "groceries"},
		{"id-1", "2024-01-01", "income", "1234.5", "salary"},
	}, rows)

	cellType, err := f.GetCellType(SheetName, "D3")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType)
	assert.NotEqual(t, excelize.CellTypeInlineString, cellType)
}

func TestToXLSX_ColumnWidths(t *testing.T) {
	data, err := ToXLSX(exampleEntries())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	for col, expected := range map[string]float64{"A": 38, "B": 12, "C": 12, "D": 14, "E": 40} {
		width, err := f.GetColWidth(SheetName, col)
		require.NoError(t, err)
		assert.Equal(t, expected, width, "column %s", col)
	}
}

func TestToXLSX_Empty(t *testing.T) {
	data, err := ToXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"id", "date", "type", "amount", "description"}}, rows)
}
