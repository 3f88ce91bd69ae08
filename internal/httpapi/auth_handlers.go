package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"skillbridge-engine/internal/auth"
	"skillbridge-engine/internal/domain"
	"skillbridge-engine/internal/events"
	"skillbridge-engine/internal/store"
)

type AuthHandler struct {
	Users  store.Users
	Tokens *auth.Tokens
	Hub    *events.Hub
	Log    zerolog.Logger
}

func (h AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	existing, err := h.Users.FindUserByEmail(r.Context(), req.Email)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	if existing != nil {
		WriteError(w, r, http.StatusConflict, "email_taken", "an account with this email already exists")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "weak_password", err.Error())
		return
	}

	user := domain.UserRecord{
		Email:             strings.ToLower(strings.TrimSpace(req.Email)),
		HashedPassword:    hashed,
		FullName:          req.FullName,
		PhoneNumber:       req.PhoneNumber,
		ProfilePictureURL: req.ProfilePictureURL,
		Bio:               req.Bio,
		Location:          req.Location,
		IsMentor:          req.IsMentor,

		LearningGoal:      req.LearningGoal,
		PreferredLanguage: req.PreferredLanguage,
		TimeZone:          req.TimeZone,
		LearningStyle:     req.LearningStyle,
		ExperienceLevel:   req.ExperienceLevel,
		Availability:      req.Availability,
		SkillsInterested:  req.SkillsInterested,
		CurrentSkills:     req.CurrentSkills,

		Skills:             req.Skills,
		Expertise:          req.Expertise,
		ExperienceYears:    req.ExperienceYears,
		LanguagesSpoken:    req.LanguagesSpoken,
		MentorAvailability: req.MentorAvailability,
		HourlyRate:         req.HourlyRate,
		LinkedinURL:        req.LinkedinURL,
		Company:            req.Company,
		JobTitle:           req.JobTitle,
	}

	if err := h.Users.Create(r.Context(), &user); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	h.Log.Info().Int64("user_id", user.ID).Bool("is_mentor", user.IsMentor).Msg("user registered")
	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeUserRegistered, 1,
		map[string]any{"id": user.ID, "is_mentor": user.IsMentor}))

	WriteJSON(w, http.StatusCreated, user)
}

func (h AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	user, err := h.Users.FindUserByEmail(r.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	if user == nil || !auth.CheckPassword(user.HashedPassword, req.Password) {
		WriteError(w, r, http.StatusUnauthorized, "bad_credentials", "incorrect email or password")
		return
	}

	token, err := h.Tokens.Issue(user.ID, user.Email, user.IsMentor)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	writeJSON(w, TokenResponse{AccessToken: token, TokenType: "bearer"})
}
