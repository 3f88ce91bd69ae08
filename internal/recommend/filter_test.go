package recommend

import (
	"testing"

	"skillbridge-engine/internal/domain"
)

func testPool() []domain.UserRecord {
	return []domain.UserRecord{
		{ID: 1, Skills: "Python, Machine Learning", Location: "Austin, TX", ExperienceYears: years(9), HourlyRate: rate(75)},
		{ID: 2, Skills: "React, TypeScript", Location: "Remote", ExperienceYears: years(4)}, // free, no rate set
		{ID: 3, Skills: "Go, Kubernetes", Location: "Berlin", ExperienceYears: years(12), HourlyRate: rate(120)},
		{ID: 4, Skills: "", Location: ""}, // sparse row
	}
}

func ids(pool []domain.UserRecord) []int64 {
	out := make([]int64, 0, len(pool))
	for _, m := range pool {
		out = append(out, m.ID)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyFiltersNilPassesThrough(t *testing.T) {
	pool := testPool()
	got := ApplyFilters(pool, nil)
	if len(got) != len(pool) {
		t.Fatalf("nil filters kept %d of %d", len(got), len(pool))
	}
}

func TestApplyFiltersMaxRate(t *testing.T) {
	got := ApplyFilters(testPool(), &domain.RecommendationFilters{MaxHourlyRate: rate(80)})
	// Mentor 3 ($120) drops; mentors 2 and 4 have no rate and count as free.
	if !equalIDs(ids(got), []int64{1, 2, 4}) {
		t.Fatalf("max rate kept %v, want [1 2 4]", ids(got))
	}
}

func TestApplyFiltersMinExperience(t *testing.T) {
	min := 5
	got := ApplyFilters(testPool(), &domain.RecommendationFilters{MinExperienceYears: &min})
	// Mentors without recorded years fail the predicate that needs them.
	if !equalIDs(ids(got), []int64{1, 3}) {
		t.Fatalf("min experience kept %v, want [1 3]", ids(got))
	}
}

func TestApplyFiltersLocationSubstring(t *testing.T) {
	got := ApplyFilters(testPool(), &domain.RecommendationFilters{Location: "austin"})
	if !equalIDs(ids(got), []int64{1}) {
		t.Fatalf("location kept %v, want [1]", ids(got))
	}
}

func TestApplyFiltersSkillsAnyOf(t *testing.T) {
	got := ApplyFilters(testPool(), &domain.RecommendationFilters{Skills: []string{"react", "kubernetes"}})
	if !equalIDs(ids(got), []int64{2, 3}) {
		t.Fatalf("skills kept %v, want [2 3]", ids(got))
	}
}

func TestApplyFiltersCombined(t *testing.T) {
	min := 5
	got := ApplyFilters(testPool(), &domain.RecommendationFilters{
		MaxHourlyRate:      rate(100),
		MinExperienceYears: &min,
	})
	if !equalIDs(ids(got), []int64{1}) {
		t.Fatalf("combined filters kept %v, want [1]", ids(got))
	}
}

func TestApplyFiltersCanEmptyThePool(t *testing.T) {
	got := ApplyFilters(testPool(), &domain.RecommendationFilters{Location: "tokyo"})
	if len(got) != 0 {
		t.Fatalf("expected empty pool, got %v", ids(got))
	}
}
