package handler_test

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/servicelog/internal/domain"
)

func exportHandler() http.Handler {
	drafts := &mockDraftServicer{list: func() []domain.Record { return []domain.Record{recordFixture()} }}
	forms := &mockFormServicer{list: func() []domain.Record { return nil }}
	return newHTTPHandler(drafts, forms)
}

func TestGetExport_DefaultsToDraftsJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/export", nil)
	w := httptest.NewRecorder()
	exportHandler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	got := decode[[]domain.Record](t, w.Body)
	assert.Equal(t, []domain.Record{recordFixture()}, got)
}

func TestGetExport_ServiceLogsEmptyIsArray(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/export?store=serviceLogs", nil)
	w := httptest.NewRecorder()
	exportHandler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetExport_CSV(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/export?format=csv", nil)
	w := httptest.NewRecorder()
	exportHandler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="drafts.csv"`)

	rows, err := csv.NewReader(w.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.CSVHeaders, rows[0])
	assert.Equal(t, []string{
		"0190a1b2-0000-7000-8000-000000000001", "PRV-1", "SO-100", "TRK-7",
		"120500", "3400.5", "2024-05-01", "2024-05-02", "emergency", "Brake repair",
	}, rows[1])
}

func TestGetExport_UnknownStoreOrFormat_Returns422(t *testing.T) {
	for _, q := range []string{"?store=trips", "?format=xml"} {
		req := httptest.NewRequest(http.MethodGet, "/export"+q, nil)
		w := httptest.NewRecorder()
		exportHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, q)
	}
}
