package recommend

import (
	"context"
	"fmt"
	"sort"

	"skillbridge-engine/internal/domain"
)

// PopularSkills returns the most frequent skill+expertise tokens across all
// mentors, descending by count with ties kept in first-seen order.
func (e *Engine) PopularSkills(ctx context.Context, limit int) ([]string, error) {
	mentors, err := e.users.ListMentors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mentors: %w", err)
	}

	counts := map[string]int{}
	var order []string
	for _, m := range mentors {
		tokens := append(ParseSkillList(m.Skills), ParseSkillList(m.Expertise)...)
		for _, t := range tokens {
			if counts[t] == 0 {
				order = append(order, t)
			}
			counts[t]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if limit > 0 && len(order) > limit {
		order = order[:limit]
	}
	if order == nil {
		order = []string{}
	}
	return order, nil
}

// Stats summarizes the mentor/learner population for the overview endpoint.
func (e *Engine) Stats(ctx context.Context) (*domain.RecommendationStats, error) {
	mentors, err := e.users.ListMentors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list mentors: %w", err)
	}
	learners, err := e.users.ListLearners(ctx)
	if err != nil {
		return nil, fmt.Errorf("list learners: %w", err)
	}

	stats := &domain.RecommendationStats{
		TotalMentors:           len(mentors),
		TotalLearners:          len(learners),
		ExperienceDistribution: map[string]int{},
		SystemHealth:           "healthy",
	}
	if len(mentors) == 0 {
		stats.SystemHealth = "no_mentors"
	}

	unique := map[string]bool{}
	for _, m := range mentors {
		if m.FreeMentor() {
			stats.FreeMentors++
		} else {
			stats.PaidMentors++
		}

		if m.ExperienceYears != nil && *m.ExperienceYears > 0 {
			switch years := *m.ExperienceYears; {
			case years < 3:
				stats.ExperienceDistribution["junior"]++
			case years < 7:
				stats.ExperienceDistribution["mid-level"]++
			default:
				stats.ExperienceDistribution["senior"]++
			}
		}

		for _, t := range append(ParseSkillList(m.Skills), ParseSkillList(m.Expertise)...) {
			unique[t] = true
		}
	}
	stats.UniqueSkills = len(unique)

	return stats, nil
}
