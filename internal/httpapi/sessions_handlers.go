package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"skillbridge-engine/internal/domain"
	"skillbridge-engine/internal/events"
	"skillbridge-engine/internal/store"
)

type SessionsHandler struct {
	Users    store.Users
	Sessions store.Sessions
	Hub      *events.Hub
}

// Book serves POST /sessions/book.
func (h SessionsHandler) Book(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	if claims == nil {
		WriteError(w, r, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	var req SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	if req.MentorID == claims.UserID {
		WriteError(w, r, http.StatusBadRequest, "invalid_request", "you cannot book a session with yourself")
		return
	}

	scheduled, err := time.Parse(time.RFC3339, req.ScheduledTime)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "scheduled_time must be RFC 3339")
		return
	}

	mentor, err := h.Users.FindUserByID(r.Context(), req.MentorID)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	if mentor == nil || !mentor.IsMentor {
		WriteError(w, r, http.StatusNotFound, "not_found", "mentor not found")
		return
	}

	sess := domain.Session{
		MentorID:      req.MentorID,
		LearnerID:     claims.UserID,
		ScheduledTime: scheduled,
		Status:        domain.SessionPending,
	}
	if err := h.Sessions.Create(r.Context(), &sess); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeSessionBooked, 1,
		map[string]any{"id": sess.ID, "mentor_id": sess.MentorID}))

	WriteJSON(w, http.StatusCreated, sess)
}

// Mine serves GET /sessions/me.
func (h SessionsHandler) Mine(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	if claims == nil {
		WriteError(w, r, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	sessions, err := h.Sessions.ListForUser(r.Context(), claims.UserID)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	if sessions == nil {
		sessions = []domain.Session{}
	}
	writeJSON(w, sessions)
}
