package httpapi

import (
	"net/http"

	"skillbridge-engine/internal/domain"
	"skillbridge-engine/internal/store"
)

type UsersHandler struct {
	Users store.Users
}

// Me serves GET /users/me for the authenticated user.
func (h UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	if claims == nil {
		WriteError(w, r, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	user, err := h.Users.FindUserByID(r.Context(), claims.UserID)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	if user == nil {
		WriteError(w, r, http.StatusNotFound, "not_found", "user not found")
		return
	}
	writeJSON(w, user)
}

// Mentors serves GET /mentors: the raw mentor directory, unscored.
func (h UsersHandler) Mentors(w http.ResponseWriter, r *http.Request) {
	mentors, err := h.Users.ListMentors(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	if mentors == nil {
		mentors = []domain.UserRecord{}
	}
	writeJSON(w, mentors)
}
