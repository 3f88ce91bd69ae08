package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"skillbridge-engine/internal/domain"
)

// Request-level errors. Everything below them (sparse mentor rows, a panic
// while scoring one candidate) is recovered per mentor and never aborts the
// request.
var (
	ErrLearnerNotFound   = errors.New("learner not found")
	ErrMentorNotFound    = errors.New("mentor not found")
	ErrRequesterIsMentor = errors.New("mentor accounts cannot receive mentor recommendations")
)

// Limit bounds for one request.
const (
	MinLimit = 1
	MaxLimit = 50
)

// UserSource is the read-only view of the user store the engine consumes.
// Find methods return (nil, nil) when no row exists.
type UserSource interface {
	FindUserByID(ctx context.Context, id int64) (*domain.UserRecord, error)
	ListMentors(ctx context.Context) ([]domain.UserRecord, error)
	ListLearners(ctx context.Context) ([]domain.UserRecord, error)
}

// Engine ranks mentor candidates for a learner. It holds no mutable state:
// every request derives a fresh profile, scores a freshly fetched pool and
// discards everything afterwards, so concurrent calls are independent.
type Engine struct {
	users       UserSource
	log         zerolog.Logger
	parallelism int
}

func New(users UserSource, logger zerolog.Logger, parallelism int) *Engine {
	if parallelism < 1 {
		parallelism = 1
	}
	return &Engine{
		users:       users,
		log:         logger.With().Str("component", "recommend").Logger(),
		parallelism: parallelism,
	}
}

// MentorRecommendations produces the ranked mentor list for one learner.
// Fails with ErrLearnerNotFound for an unknown id and ErrRequesterIsMentor
// when a mentor account asks; an empty mentor pool is an empty result, not an
// error.
func (e *Engine) MentorRecommendations(ctx context.Context, userID int64, limit int, filters *domain.RecommendationFilters) (*domain.RecommendationResult, error) {
	if limit < MinLimit {
		limit = MinLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	learner, err := e.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load learner %d: %w", userID, err)
	}
	if learner == nil {
		return nil, fmt.Errorf("user %d: %w", userID, ErrLearnerNotFound)
	}
	if learner.IsMentor {
		return nil, ErrRequesterIsMentor
	}

	profile := DeriveLearnerProfile(*learner)

	pool, err := e.users.ListMentors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mentors: %w", err)
	}
	totalMentors := len(pool)
	if totalMentors == 0 {
		e.log.Warn().Msg("no mentors available in the system")
		return &domain.RecommendationResult{
			UserID:          userID,
			Recommendations: []domain.MentorRecommendation{},
			RequestFilters:  filters,
		}, nil
	}

	candidates := ApplyFilters(pool, filters)

	scored := e.scorePool(ctx, profile, candidates)

	minScore := 0.0
	if filters != nil {
		minScore = filters.MinScore
	}

	recs := make([]domain.MentorRecommendation, 0, len(scored))
	for _, r := range scored {
		if r == nil {
			continue // candidate skipped after a scoring failure
		}
		if minScore > 0 && r.RecommendationScore.TotalScore < minScore {
			continue
		}
		recs = append(recs, *r)
	}

	// Highest total first; equal totals order by mentor id so the ranking
	// is deterministic regardless of fetch order.
	sort.SliceStable(recs, func(i, j int) bool {
		si, sj := recs[i].RecommendationScore.TotalScore, recs[j].RecommendationScore.TotalScore
		if si != sj {
			return si > sj
		}
		return recs[i].MentorID < recs[j].MentorID
	})

	if len(recs) > limit {
		recs = recs[:limit]
	}

	e.log.Info().
		Int64("user_id", userID).
		Int("total_mentors", totalMentors).
		Int("returned", len(recs)).
		Bool("filtered", filters != nil).
		Msg("generated mentor recommendations")

	return &domain.RecommendationResult{
		UserID:          userID,
		TotalMentors:    totalMentors,
		FilteredMentors: len(recs),
		Recommendations: recs,
		RequestFilters:  filters,
	}, nil
}

// scorePool scores every candidate. The work is pure CPU and independent per
// mentor, so it fans out on a bounded errgroup; results land in an
// index-addressed slice to keep the outcome deterministic. A panic while
// scoring one candidate skips that candidate only.
func (e *Engine) scorePool(ctx context.Context, profile domain.LearnerProfile, candidates []domain.UserRecord) []*domain.MentorRecommendation {
	out := make([]*domain.MentorRecommendation, len(candidates))

	var g errgroup.Group
	g.SetLimit(e.parallelism)

	for i, mentor := range candidates {
		if ctx.Err() != nil {
			break
		}
		i, mentor := i, mentor
		g.Go(func() error {
			defer func() {
				if rec := recover(); rec != nil {
					e.log.Warn().
						Int64("mentor_id", mentor.ID).
						Interface("panic", rec).
						Msg("skipping mentor after scoring failure")
				}
			}()
			score := ScoreMentor(profile, mentor)
			r := AssembleRecommendation(mentor, score, profile)
			out[i] = &r
			return nil
		})
	}
	_ = g.Wait()

	return out
}

// MentorDetail computes the full compatibility breakdown between the
// requesting user and one specific mentor.
func (e *Engine) MentorDetail(ctx context.Context, userID, mentorID int64) (*domain.MentorRecommendation, error) {
	user, err := e.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user %d: %w", userID, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", userID, ErrLearnerNotFound)
	}

	mentor, err := e.users.FindUserByID(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("load mentor %d: %w", mentorID, err)
	}
	if mentor == nil || !mentor.IsMentor {
		return nil, fmt.Errorf("mentor %d: %w", mentorID, ErrMentorNotFound)
	}

	profile := DeriveLearnerProfile(*user)
	score := ScoreMentor(profile, *mentor)
	rec := AssembleRecommendation(*mentor, score, profile)
	return &rec, nil
}
