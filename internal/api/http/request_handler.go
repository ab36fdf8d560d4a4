package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"odms-backend/internal/domain"
	"odms-backend/internal/service"
)

// RequestHandler exposes the OD request workflow over HTTP
type RequestHandler struct {
	requests service.RequestService
}

func NewRequestHandler(requests service.RequestService) *RequestHandler {
	return &RequestHandler{requests: requests}
}

type participantPayload struct {
	RegNo        string `json:"reg_no"`
	Name         string `json:"name"`
	AcademicYear int    `json:"academic_year"`
	Branch       string `json:"branch"`
	Section      string `json:"section"`
	Department   string `json:"department"`
}

type createRequestPayload struct {
	EventName      string               `json:"event_name"`
	OrganizerEmail string               `json:"organizer_email"`
	StartDate      string               `json:"start_date"`
	EndDate        string               `json:"end_date"`
	FromTime       string               `json:"from_time"`
	ToTime         string               `json:"to_time"`
	Participants   []participantPayload `json:"participants"`
}

type rejectPayload struct {
	Reason string `json:"reason"`
}

func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload createRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.EventName == "" {
		writeError(w, http.StatusBadRequest, "event_name is required")
		return
	}
	if len(payload.Participants) == 0 {
		writeError(w, http.StatusBadRequest, "at least one participant is required")
		return
	}

	start, err := time.Parse("2006-01-02", payload.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", payload.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}
	if end.Before(start) {
		writeError(w, http.StatusBadRequest, "end_date must not be before start_date")
		return
	}

	req := &domain.EventRequest{
		EventName:      payload.EventName,
		OrganizerEmail: payload.OrganizerEmail,
		StartDate:      start,
		EndDate:        end,
		FromTime:       payload.FromTime,
		ToTime:         payload.ToTime,
	}
	for _, p := range payload.Participants {
		req.Participants = append(req.Participants, domain.Participant{
			RegNo:        p.RegNo,
			Name:         p.Name,
			AcademicYear: p.AcademicYear,
			Branch:       p.Branch,
			Section:      p.Section,
			Department:   p.Department,
		})
	}

	created, err := h.requests.CreateRequest(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	req, err := h.requests.GetRequest(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"request":            req,
		"status_description": req.Status.Description(),
		"next_approver":      req.Status.NextApprover(),
	})
}

func (h *RequestHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	status := domain.RequestStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.StatusSubmitted
	}

	requests, err := h.requests.ListByStatus(r.Context(), status)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"requests": requests})
}

func (h *RequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request id")
		return
	}
	actor, ok := actorFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	req, err := h.requests.Approve(r.Context(), id, actor.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func (h *RequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request id")
		return
	}
	actor, ok := actorFrom(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	var payload rejectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.requests.Reject(r.Context(), id, actor.Email, payload.Reason)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

func requestID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
