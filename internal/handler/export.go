package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/pkordes/servicelog/internal/domain"
)

// GetExport implements GET /export.
// ?store= selects drafts (default) or serviceLogs; ?format=csv selects CSV,
// default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var records []domain.Record
	switch q.Get("store") {
	case "", domain.DraftsSlot:
		records = s.drafts.List()
	case domain.ServiceLogsSlot:
		records = s.forms.List()
	default:
		s.writeJSON(w, http.StatusUnprocessableEntity, requestBody("store must be drafts or serviceLogs"))
		return
	}

	switch q.Get("format") {
	case "", "json":
		s.writeJSON(w, http.StatusOK, nonNil(records))
	case "csv":
		body := encodeCSV(records)
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="`+exportName(q.Get("store"))+`.csv"`)
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	default:
		s.writeJSON(w, http.StatusUnprocessableEntity, requestBody("format must be json or csv"))
	}
}

// encodeCSV encodes records as CSV with a domain.CSVHeaders header row.
func encodeCSV(records []domain.Record) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(domain.CSVHeaders)
	for _, r := range records {
		//nolint:errcheck
		w.Write(r.CSVRow())
	}
	w.Flush()
	return buf.Bytes()
}

func exportName(store string) string {
	if store == "" {
		return domain.DraftsSlot
	}
	return store
}
