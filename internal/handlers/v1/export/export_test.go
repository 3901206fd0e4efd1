package export

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/carson-networks/finance-notebook/internal/service"
)

type staticEntries []service.Entry

func (s staticEntries) List() []service.Entry {
	return s
}

func newTestAPI(t *testing.T, entries []service.Entry) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	h := NewHandler(staticEntries(entries))
	h.Now = func() time.Time { return time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC) }
	h.Register(api)
	return api
}

func exampleEntries() []service.Entry {
	return []service.Entry{
		{ID: "id-2", Type: service.EntryTypeExpense, Amount: decimal.RequireFromString("300"), Description: "groceries", Date: "2024-01-02"},
		{ID: "id-1", Type: service.EntryTypeIncome, Amount: decimal.RequireFromString("1234.5"), Description: "salary", Date: "2024-01-01"},
	}
}

// -- export-csv tests --

func TestHTTP_ExportCSV(t *testing.T) {
	resp := newTestAPI(t, exampleEntries()).Get("/v1/export/csv")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "text/csv;charset=utf-8", resp.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="finance-notebook-2024-01-02.csv"`, resp.Header().Get("Content-Disposition"))
	assert.Equal(t,
		"id,date,type,amount,description\n"+
			"id-2,2024-01-02,expense,300,\"groceries\"\n"+
			"id-1,2024-01-01,income,1234.5,\"salary\"",
		resp.Body.String())
}

func TestHTTP_ExportCSV_Empty(t *testing.T) {
	resp := newTestAPI(t, nil).Get("/v1/export/csv")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "id,date,type,amount,description", resp.Body.String())
}

// -- export-xlsx tests --

func TestHTTP_ExportXLSX(t *testing.T) {
	resp := newTestAPI(t, exampleEntries()).Get("/v1/export/xlsx")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="finance-notebook-2024-01-02.xlsx"`, resp.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(resp.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Entries")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id-1", "2024-01-01", "income", "1234.5", "salary"}, rows[2])
}
