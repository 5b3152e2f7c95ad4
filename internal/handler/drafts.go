package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/servicelog/internal/domain"
	"github.com/pkordes/servicelog/internal/service"
)

// DraftRow is a draft as shown in the table, with its type badge colour.
type DraftRow struct {
	domain.Record
	StatusColor string `json:"statusColor"`
}

// Pagination describes the page a list response holds.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// DraftListResponse is the body of GET /drafts.
type DraftListResponse struct {
	Data       []DraftRow          `json:"data"`
	Pagination Pagination          `json:"pagination"`
	Search     service.SearchState `json:"search"`
}

// RecordListResponse wraps a plain record list.
type RecordListResponse struct {
	Data []domain.Record `json:"data"`
}

// RemovedResponse reports how many records a delete removed.
type RemovedResponse struct {
	Removed int `json:"removed"`
}

// SearchRequest is the body of PUT /drafts/search.
type SearchRequest struct {
	Query string `json:"query"`
}

// ListDrafts handles GET /drafts.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
// Only drafts matching the committed search query are listed.
func (s *Server) ListDrafts(w http.ResponseWriter, r *http.Request) {
	params := domain.NewPaginationParams(queryInt(r, "page"), queryInt(r, "limit"))
	drafts, total := s.drafts.ListFiltered(params)

	data := make([]DraftRow, len(drafts))
	for i, d := range drafts {
		data[i] = toDraftRow(d)
	}
	s.writeJSON(w, http.StatusOK, DraftListResponse{
		Data: data,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
		Search: s.drafts.Search(),
	})
}

// CreateDraft handles POST /drafts.
func (s *Server) CreateDraft(w http.ResponseWriter, r *http.Request) {
	var rec domain.Record
	if !s.decodeBody(w, r, &rec) {
		return
	}
	created, err := s.drafts.Create(r.Context(), rec)
	if err != nil {
		s.writeServiceError(w, err, "draft")
		return
	}
	s.writeJSON(w, http.StatusCreated, toDraftRow(created))
}

// GetCurrentDraft handles GET /drafts/current.
func (s *Server) GetCurrentDraft(w http.ResponseWriter, _ *http.Request) {
	current, err := s.drafts.Current()
	if err != nil {
		s.writeServiceError(w, err, "current draft")
		return
	}
	s.writeJSON(w, http.StatusOK, toDraftRow(current))
}

// SelectDraft handles PUT /drafts/current/{id}.
func (s *Server) SelectDraft(w http.ResponseWriter, r *http.Request) {
	current, err := s.drafts.Select(chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, err, "draft")
		return
	}
	s.writeJSON(w, http.StatusOK, toDraftRow(current))
}

// UpdateDraft handles PATCH /drafts/{id}.
// The path id wins over any id in the body.
func (s *Server) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var patch domain.RecordPatch
	if !s.decodeBody(w, r, &patch) {
		return
	}
	patch.ID = chi.URLParam(r, "id")

	updated, err := s.drafts.Update(r.Context(), patch)
	if err != nil {
		s.writeServiceError(w, err, "draft")
		return
	}
	s.writeJSON(w, http.StatusOK, toDraftRow(updated))
}

// DeleteDrafts handles DELETE /drafts/providers/{providerId}.
// Every draft carrying that providerId is removed.
func (s *Server) DeleteDrafts(w http.ResponseWriter, r *http.Request) {
	n, err := s.drafts.Delete(r.Context(), chi.URLParam(r, "providerId"))
	if err != nil {
		s.writeServiceError(w, err, "draft")
		return
	}
	s.writeJSON(w, http.StatusOK, RemovedResponse{Removed: n})
}

// ClearDrafts handles DELETE /drafts.
func (s *Server) ClearDrafts(w http.ResponseWriter, r *http.Request) {
	if err := s.drafts.ClearAll(r.Context()); err != nil {
		s.writeServiceError(w, err, "draft")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SortDraftsByDate handles POST /drafts/sort/date.
func (s *Server) SortDraftsByDate(w http.ResponseWriter, r *http.Request) {
	sorted, err := s.drafts.SortByDate(r.Context())
	if err != nil {
		s.writeServiceError(w, err, "draft")
		return
	}
	s.writeJSON(w, http.StatusOK, RecordListResponse{Data: nonNil(sorted)})
}

// SortDraftsByType handles POST /drafts/sort/type.
func (s *Server) SortDraftsByType(w http.ResponseWriter, r *http.Request) {
	sorted, err := s.drafts.SortByType(r.Context())
	if err != nil {
		s.writeServiceError(w, err, "draft")
		return
	}
	s.writeJSON(w, http.StatusOK, RecordListResponse{Data: nonNil(sorted)})
}

// SearchDrafts handles PUT /drafts/search.
// The query is accepted at once and committed after the debounce window,
// hence 202.
func (s *Server) SearchDrafts(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !s.decodeBody(w, r, &req) {
		return
	}
	s.writeJSON(w, http.StatusAccepted, s.drafts.SearchInput(req.Query))
}

// --- mapping helpers --------------------------------------------------------

func toDraftRow(r domain.Record) DraftRow {
	return DraftRow{Record: r, StatusColor: r.Type.StatusColor()}
}

// queryInt returns the named query parameter as an int, or nil when it is
// absent or not a number.
func queryInt(r *http.Request, name string) *int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return nil
	}
	return &v
}

// nonNil always returns a non-nil slice so empty lists encode as [].
func nonNil(records []domain.Record) []domain.Record {
	if records == nil {
		return []domain.Record{}
	}
	return records
}
