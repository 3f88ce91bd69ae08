package recommend

import (
	"math"
	"testing"

	"skillbridge-engine/internal/domain"
)

func years(n int) *int        { return &n }
func rate(v float64) *float64 { return &v }

func TestScoringWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, w := range scoringWeights {
		sum += w
	}
	if !almost(sum, 1.0) {
		t.Fatalf("weights sum to %v, want 1.0", sum)
	}
	if len(scoringWeights) != len(factorScorers) {
		t.Fatalf("weight table and scorer registry disagree: %d vs %d", len(scoringWeights), len(factorScorers))
	}
}

func TestScoreSkills(t *testing.T) {
	cases := []struct {
		name string
		p    domain.LearnerProfile
		m    domain.UserRecord
		want float64
	}{
		{
			"no declared interests is neutral",
			domain.LearnerProfile{},
			domain.UserRecord{Skills: "Python"},
			50,
		},
		{
			"mentor with no skills",
			domain.LearnerProfile{SkillsInterested: []string{"Python"}},
			domain.UserRecord{},
			20,
		},
		{
			"exact match",
			domain.LearnerProfile{SkillsInterested: []string{"Python"}},
			domain.UserRecord{Skills: "Python"},
			100,
		},
		{
			"half of interests covered",
			domain.LearnerProfile{SkillsInterested: []string{"Python", "Rust"}},
			domain.UserRecord{Skills: "Python"},
			50,
		},
		{
			"expertise counts too",
			domain.LearnerProfile{SkillsInterested: []string{"Machine Learning"}},
			domain.UserRecord{Expertise: "Machine Learning"},
			100,
		},
		{
			"below threshold contributes nothing",
			domain.LearnerProfile{SkillsInterested: []string{"Rust"}},
			domain.UserRecord{Skills: "Figma"},
			0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := scoreSkills(tc.p, tc.m); !almost(got, tc.want) {
				t.Fatalf("scoreSkills = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScoreSkillsFuzzyVariant(t *testing.T) {
	// "javascript" vs "java script" clears the 0.7 threshold without being
	// an exact token, so the contribution is the similarity, not 1.0.
	p := domain.LearnerProfile{SkillsInterested: []string{"javascript"}}
	m := domain.UserRecord{Skills: "java script"}

	got := scoreSkills(p, m)
	if got <= 70 || got >= 100 {
		t.Fatalf("fuzzy variant score = %v, want within (70, 100)", got)
	}
}

func TestScoreLanguage(t *testing.T) {
	cases := []struct {
		name string
		p    domain.LearnerProfile
		m    domain.UserRecord
		want float64
	}{
		{"no preference assumes english works", domain.LearnerProfile{}, domain.UserRecord{LanguagesSpoken: "German"}, 90},
		{"match", domain.LearnerProfile{PreferredLanguages: []string{"English"}}, domain.UserRecord{LanguagesSpoken: "English, Spanish"}, 100},
		{"mentor silent defaults to english", domain.LearnerProfile{PreferredLanguages: []string{"English"}}, domain.UserRecord{}, 100},
		{"containment either way", domain.LearnerProfile{PreferredLanguages: []string{"Portuguese (Brazil)"}}, domain.UserRecord{LanguagesSpoken: "Portuguese"}, 100},
		{"mismatch", domain.LearnerProfile{PreferredLanguages: []string{"Japanese"}}, domain.UserRecord{LanguagesSpoken: "German"}, 60},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := scoreLanguage(tc.p, tc.m); !almost(got, tc.want) {
				t.Fatalf("scoreLanguage = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScoreExperience(t *testing.T) {
	cases := []struct {
		name  string
		level string
		years *int
		want  float64
	}{
		{"nil years is neutral", "beginner", nil, 50},
		{"zero years is neutral", "advanced", years(0), 50},
		{"beginner saturates at three years", "beginner", years(3), 100},
		{"beginner one year", "Beginner", years(1), 100.0 / 3},
		{"entry alias", "entry-level", years(6), 100},
		{"intermediate sweet spot", "intermediate", years(5), 100},
		{"intermediate overshoot", "intermediate", years(10), 85},
		{"intermediate undershoot", "mid", years(2), 60},
		{"advanced needs a decade", "advanced", years(5), 50},
		{"senior with twelve years", "senior", years(12), 100},
		{"unset level five plus", "", years(5), 90},
		{"unset level two plus", "", years(2), 75},
		{"unset level under two", "", years(1), 60},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := domain.LearnerProfile{ExperienceLevel: tc.level}
			m := domain.UserRecord{ExperienceYears: tc.years}
			if got := scoreExperience(p, m); !almost(got, tc.want) {
				t.Fatalf("scoreExperience = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScoreLocation(t *testing.T) {
	cases := []struct {
		name    string
		learner string
		mentor  string
		want    float64
	}{
		{"either side empty", "", "Austin", 70},
		{"exact ignoring case", "Austin, TX", "austin, tx", 100},
		{"shared token", "Remote TX", "Dallas TX", 85},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := domain.LearnerProfile{Location: tc.learner}
			m := domain.UserRecord{Location: tc.mentor}
			if got := scoreLocation(p, m); !almost(got, tc.want) {
				t.Fatalf("scoreLocation = %v, want %v", got, tc.want)
			}
		})
	}

	// Dissimilar locations floor at 50.
	p := domain.LearnerProfile{Location: "Berlin"}
	m := domain.UserRecord{Location: "Quito"}
	if got := scoreLocation(p, m); got < 50 || got > 70 {
		t.Fatalf("dissimilar locations = %v, want floor of 50", got)
	}
}

func TestScoreAvailability(t *testing.T) {
	cases := []struct {
		name    string
		learner string
		mentor  string
		want    float64
	}{
		{"either side empty", "", "weekends", 70},
		{"no overlap", "weekday mornings", "weekend evenings", 50},
		{"one shared slot", "weekday evenings", "evening weekends", 50 + 1.0/6*50},
		{"all slots shared", "morning afternoon evening weekday weekend flexible", "morning afternoon evening weekday weekend flexible", 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := domain.LearnerProfile{Availability: tc.learner}
			m := domain.UserRecord{MentorAvailability: tc.mentor}
			if got := scoreAvailability(p, m); !almost(got, tc.want) {
				t.Fatalf("scoreAvailability = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScoreMentorWeightedTotal(t *testing.T) {
	p := domain.LearnerProfile{
		SkillsInterested:   []string{"Python"},
		PreferredLanguages: []string{"English"},
	}
	m := domain.UserRecord{
		Skills:          "Python",
		LanguagesSpoken: "English",
		ExperienceYears: years(9),
	}

	got := ScoreMentor(p, m)

	// skills 100*0.40 + language 100*0.20 + experience 90*0.15 +
	// location 70*0.10 + availability 70*0.10 + style 70*0.05 = 91.0
	if !almost(got.TotalScore, 91.0) {
		t.Fatalf("TotalScore = %v, want 91.0", got.TotalScore)
	}
	if got.SkillsMatch != 100 || got.LanguageMatch != 100 {
		t.Fatalf("unexpected factor scores: %+v", got)
	}
	if got.LearningStyleMatch != 70 {
		t.Fatalf("LearningStyleMatch = %v, want 70", got.LearningStyleMatch)
	}
}

func TestScoreMentorBounds(t *testing.T) {
	mentors := []domain.UserRecord{
		{},
		{Skills: "Python, Go, Rust", ExperienceYears: years(40), HourlyRate: rate(500)},
		{Skills: "x", Location: "nowhere", MentorAvailability: "weekend"},
	}
	p := domain.LearnerProfile{
		SkillsInterested: []string{"Python", "Go"},
		Location:         "Austin",
		Availability:     "weekend",
		ExperienceLevel:  "beginner",
	}

	for i, m := range mentors {
		s := ScoreMentor(p, m)
		for name, v := range map[string]float64{
			"total":        s.TotalScore,
			"skills":       s.SkillsMatch,
			"language":     s.LanguageMatch,
			"experience":   s.ExperienceMatch,
			"location":     s.LocationMatch,
			"availability": s.AvailabilityMatch,
			"style":        s.LearningStyleMatch,
		} {
			if v < 0 || v > 100 {
				t.Errorf("mentor %d: %s score %v out of [0,100]", i, name, v)
			}
		}
	}
}

func TestRound2(t *testing.T) {
	if got := round2(91.005); math.Abs(got-91.0) > 0.011 {
		t.Fatalf("round2(91.005) = %v", got)
	}
	if got := round2(1.0 / 3); !almost(got, 0.33) {
		t.Fatalf("round2(1/3) = %v, want 0.33", got)
	}
}
