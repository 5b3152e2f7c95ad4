package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/servicelog/internal/domain"
)

// ServiceLogListResponse is the body of GET /service-logs.
type ServiceLogListResponse struct {
	Count int             `json:"count"`
	Label string          `json:"label"`
	Data  []domain.Record `json:"data"`
}

// StatusResponse carries the status line the compose form shows.
// Data is set when the action produced a record.
type StatusResponse struct {
	Status string         `json:"status"`
	Data   *domain.Record `json:"data,omitempty"`
	Error  *ErrorDetail   `json:"error,omitempty"`
}

// ListServiceLogs handles GET /service-logs.
func (s *Server) ListServiceLogs(w http.ResponseWriter, _ *http.Request) {
	logs := nonNil(s.forms.List())
	s.writeJSON(w, http.StatusOK, ServiceLogListResponse{
		Count: len(logs),
		Label: s.forms.Label(),
		Data:  logs,
	})
}

// SubmitServiceLog handles POST /service-logs.
// The body is the raw compose form; numbers arrive as strings.
func (s *Server) SubmitServiceLog(w http.ResponseWriter, r *http.Request) {
	var form domain.ServiceLogForm
	if !s.decodeBody(w, r, &form) {
		return
	}
	created, status, err := s.forms.Submit(r.Context(), form)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			detail := validationBody(err).Error
			s.writeJSON(w, http.StatusUnprocessableEntity, StatusResponse{Status: status, Error: &detail})
			return
		}
		s.writeServiceError(w, err, "service log")
		return
	}
	s.writeJSON(w, http.StatusCreated, StatusResponse{Status: status, Data: &created})
}

// UpdateServiceLog handles PATCH /service-logs/{id}.
func (s *Server) UpdateServiceLog(w http.ResponseWriter, r *http.Request) {
	var patch domain.RecordPatch
	if !s.decodeBody(w, r, &patch) {
		return
	}
	patch.ID = chi.URLParam(r, "id")

	updated, err := s.forms.Update(r.Context(), patch)
	if err != nil {
		s.writeServiceError(w, err, "service log")
		return
	}
	s.writeJSON(w, http.StatusOK, updated)
}

// DeleteServiceLogs handles DELETE /service-logs/providers/{providerId}.
func (s *Server) DeleteServiceLogs(w http.ResponseWriter, r *http.Request) {
	n, err := s.forms.Delete(r.Context(), chi.URLParam(r, "providerId"))
	if err != nil {
		s.writeServiceError(w, err, "service log")
		return
	}
	s.writeJSON(w, http.StatusOK, RemovedResponse{Removed: n})
}

// DeleteCurrentServiceLog handles DELETE /service-logs/current.
func (s *Server) DeleteCurrentServiceLog(w http.ResponseWriter, r *http.Request) {
	status, err := s.forms.DeleteCurrent(r.Context())
	if err != nil {
		s.writeServiceError(w, err, "service log")
		return
	}
	s.writeJSON(w, http.StatusOK, StatusResponse{Status: status})
}

// ClearServiceLogs handles DELETE /service-logs.
func (s *Server) ClearServiceLogs(w http.ResponseWriter, r *http.Request) {
	status, err := s.forms.ClearAll(r.Context())
	if err != nil {
		s.writeServiceError(w, err, "service log")
		return
	}
	s.writeJSON(w, http.StatusOK, StatusResponse{Status: status})
}
