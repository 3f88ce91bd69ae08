package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"skillbridge-engine/internal/domain"
	"skillbridge-engine/internal/events"
	"skillbridge-engine/internal/recommend"
)

type RecommendHandler struct {
	Engine       *recommend.Engine
	Hub          *events.Hub
	Log          zerolog.Logger
	DefaultLimit int
}

// List serves GET /recommendations/mentors for the authenticated learner.
// Query params: limit, skills, max_rate, min_experience, location, languages,
// min_score, include_paid, include_free.
func (h RecommendHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	if claims == nil {
		WriteError(w, r, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	q := r.URL.Query()
	limit := queryInt(r, "limit", h.DefaultLimit)

	var filters *domain.RecommendationFilters
	f := domain.RecommendationFilters{
		Skills:    splitCSV(q.Get("skills")),
		Location:  strings.TrimSpace(q.Get("location")),
		Languages: splitCSV(q.Get("languages")),
	}
	if v, ok := queryFloat(r, "max_rate"); ok && v >= 0 {
		f.MaxHourlyRate = &v
	}
	if raw := q.Get("min_experience"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			f.MinExperienceYears = &v
		}
	}
	if v, ok := queryFloat(r, "min_score"); ok && v > 0 && v <= 100 {
		f.MinScore = v
	}
	if len(f.Skills) > 0 || f.MaxHourlyRate != nil || f.MinExperienceYears != nil ||
		f.Location != "" || len(f.Languages) > 0 || f.MinScore > 0 {
		filters = &f
	}

	result, err := h.Engine.MentorRecommendations(r.Context(), claims.UserID, limit, filters)
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}

	// Pricing tier preference is an API-level concern, applied after
	// ranking.
	includePaid := queryBool(r, "include_paid", true)
	includeFree := queryBool(r, "include_free", true)
	if !includePaid || !includeFree {
		kept := result.Recommendations[:0]
		for _, rec := range result.Recommendations {
			free := rec.MentorHourlyRate == nil || *rec.MentorHourlyRate == 0
			if free && !includeFree {
				continue
			}
			if !free && !includePaid {
				continue
			}
			kept = append(kept, rec)
		}
		result.Recommendations = kept
		result.FilteredMentors = len(kept)
	}

	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeRecommendsServed, 1,
		map[string]any{"user_id": claims.UserID, "count": len(result.Recommendations)}))

	writeJSON(w, result)
}

// Detail serves GET /recommendations/mentors/{id}: the full compatibility
// breakdown against one mentor.
func (h RecommendHandler) Detail(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	if claims == nil {
		WriteError(w, r, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/recommendations/mentors/")
	mentorID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || mentorID <= 0 {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid mentor id")
		return
	}

	rec, err := h.Engine.MentorDetail(r.Context(), claims.UserID, mentorID)
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	writeJSON(w, rec)
}

// PopularSkills serves GET /recommendations/skills/popular.
func (h RecommendHandler) PopularSkills(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 20)
	if limit < 5 {
		limit = 5
	}
	if limit > 50 {
		limit = 50
	}

	skills, err := h.Engine.PopularSkills(r.Context(), limit)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, skills)
}

// Stats serves GET /recommendations/stats.
func (h RecommendHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Engine.Stats(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	writeJSON(w, stats)
}

func (h RecommendHandler) writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, recommend.ErrLearnerNotFound), errors.Is(err, recommend.ErrMentorNotFound):
		WriteError(w, r, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, recommend.ErrRequesterIsMentor):
		WriteError(w, r, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		h.Log.Error().Err(err).Msg("recommendation request failed")
		WriteError(w, r, http.StatusInternalServerError, "internal_error", "failed to generate recommendations")
	}
}
