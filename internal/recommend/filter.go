package recommend

import (
	"strings"

	"skillbridge-engine/internal/domain"
)

// ApplyFilters narrows the mentor pool with the hard predicates that are
// present, AND-combined. Mentors missing an optional field simply fail the
// predicate that needs it; filtering never errors. MinScore is not handled
// here, it gates per candidate after scoring.
func ApplyFilters(pool []domain.UserRecord, f *domain.RecommendationFilters) []domain.UserRecord {
	if f == nil {
		return pool
	}

	kept := pool

	if f.MaxHourlyRate != nil {
		kept = keep(kept, func(m domain.UserRecord) bool {
			return m.FreeMentor() || *m.HourlyRate <= *f.MaxHourlyRate
		})
	}

	if f.MinExperienceYears != nil {
		kept = keep(kept, func(m domain.UserRecord) bool {
			return m.ExperienceYears != nil && *m.ExperienceYears >= *f.MinExperienceYears
		})
	}

	if f.Location != "" {
		want := strings.ToLower(f.Location)
		kept = keep(kept, func(m domain.UserRecord) bool {
			return m.Location != "" && strings.Contains(strings.ToLower(m.Location), want)
		})
	}

	if len(f.Skills) > 0 {
		wants := make([]string, 0, len(f.Skills))
		for _, s := range f.Skills {
			s = strings.ToLower(strings.TrimSpace(s))
			if s != "" {
				wants = append(wants, s)
			}
		}
		kept = keep(kept, func(m domain.UserRecord) bool {
			if m.Skills == "" {
				return false
			}
			have := strings.ToLower(m.Skills)
			for _, want := range wants {
				if strings.Contains(have, want) {
					return true
				}
			}
			return false
		})
	}

	return kept
}

func keep(in []domain.UserRecord, pred func(domain.UserRecord) bool) []domain.UserRecord {
	out := make([]domain.UserRecord, 0, len(in))
	for _, m := range in {
		if pred(m) {
			out = append(out, m)
		}
	}
	return out
}
