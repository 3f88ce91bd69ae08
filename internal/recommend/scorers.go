package recommend

import (
	"math"
	"strings"

	"skillbridge-engine/internal/domain"
)

// Factor names one compatibility dimension. The weight table and the scorer
// registry are keyed by the same names so adding or removing a factor is a
// one-place change.
type Factor string

const (
	FactorSkills        Factor = "skills"
	FactorLanguage      Factor = "language"
	FactorExperience    Factor = "experience"
	FactorLocation      Factor = "location"
	FactorAvailability  Factor = "availability"
	FactorLearningStyle Factor = "learning_style"
)

// scoringWeights is the single source of truth for relative factor
// importance. The weights sum to exactly 1.0 and are not overridable per
// request.
var scoringWeights = map[Factor]float64{
	FactorSkills:        0.40,
	FactorLanguage:      0.20,
	FactorExperience:    0.15,
	FactorLocation:      0.10,
	FactorAvailability:  0.10,
	FactorLearningStyle: 0.05,
}

type scorerFunc func(p domain.LearnerProfile, m domain.UserRecord) float64

var factorScorers = map[Factor]scorerFunc{
	FactorSkills:        scoreSkills,
	FactorLanguage:      scoreLanguage,
	FactorExperience:    scoreExperience,
	FactorLocation:      scoreLocation,
	FactorAvailability:  scoreAvailability,
	FactorLearningStyle: scoreLearningStyle,
}

// ScoreMentor runs every factor scorer and folds the results into the fixed
// weighted total. Every scorer is a total function with a documented neutral
// fallback, so sparse mentor rows never error and every value stays in
// [0, 100].
func ScoreMentor(p domain.LearnerProfile, m domain.UserRecord) domain.RecommendationScore {
	parts := make(map[Factor]float64, len(factorScorers))
	total := 0.0
	for f, score := range factorScorers {
		s := score(p, m)
		parts[f] = s
		total += s * scoringWeights[f]
	}

	return domain.RecommendationScore{
		TotalScore:         round2(total),
		SkillsMatch:        round2(parts[FactorSkills]),
		LanguageMatch:      round2(parts[FactorLanguage]),
		ExperienceMatch:    round2(parts[FactorExperience]),
		LocationMatch:      round2(parts[FactorLocation]),
		AvailabilityMatch:  round2(parts[FactorAvailability]),
		LearningStyleMatch: round2(parts[FactorLearningStyle]),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// skillMatchThreshold is the similarity a learner skill must reach against
// some mentor token before it counts toward the skills score.
const skillMatchThreshold = 0.7

func scoreSkills(p domain.LearnerProfile, m domain.UserRecord) float64 {
	if len(p.SkillsInterested) == 0 {
		return 50 // nothing declared, neutral
	}

	mentorTokens := append(ParseSkillList(m.Skills), ParseSkillList(m.Expertise)...)
	if len(mentorTokens) == 0 {
		return 20 // mentor listed no skills at all
	}

	contributions := 0.0
	for _, want := range p.SkillsInterested {
		best := 0.0
		for _, have := range mentorTokens {
			sim := Similarity(strings.ToLower(want), strings.ToLower(have))
			if sim > best {
				best = sim
			}
		}
		if best > skillMatchThreshold {
			contributions += best
		}
	}

	score := contributions / float64(len(p.SkillsInterested)) * 100
	return math.Min(100, score)
}

func scoreLanguage(p domain.LearnerProfile, m domain.UserRecord) float64 {
	if len(p.PreferredLanguages) == 0 {
		return 90 // assume English works
	}

	spoken := m.LanguagesSpoken
	if strings.TrimSpace(spoken) == "" {
		spoken = "English"
	}

	for _, want := range p.PreferredLanguages {
		wl := strings.ToLower(want)
		for _, have := range ParseSkillList(spoken) {
			hl := strings.ToLower(have)
			if strings.Contains(hl, wl) || strings.Contains(wl, hl) {
				return 100
			}
		}
	}
	return 60
}

func scoreExperience(p domain.LearnerProfile, m domain.UserRecord) float64 {
	if m.ExperienceYears == nil || *m.ExperienceYears == 0 {
		return 50 // no experience recorded, neutral
	}
	years := float64(*m.ExperienceYears)

	level := strings.ToLower(p.ExperienceLevel)
	switch {
	case strings.Contains(level, "beginner") || strings.Contains(level, "entry"):
		// Any seasoned mentor works for a beginner.
		return math.Min(100, years/3*100)
	case strings.Contains(level, "intermediate") || strings.Contains(level, "mid"):
		switch {
		case years >= 3 && years <= 8:
			return 100
		case years > 8:
			return 85
		default:
			return 60
		}
	case strings.Contains(level, "advanced") || strings.Contains(level, "senior"):
		return math.Min(100, years/10*100)
	}

	// Level unset or unrecognized: score on raw years.
	switch {
	case years >= 5:
		return 90
	case years >= 2:
		return 75
	default:
		return 60
	}
}

func scoreLocation(p domain.LearnerProfile, m domain.UserRecord) float64 {
	if p.Location == "" || m.Location == "" {
		return 70 // remote mentoring is workable
	}

	learnerLoc := strings.ToLower(p.Location)
	mentorLoc := strings.ToLower(m.Location)

	if learnerLoc == mentorLoc {
		return 100
	}

	mentorParts := map[string]bool{}
	for _, part := range strings.Fields(mentorLoc) {
		mentorParts[part] = true
	}
	for _, part := range strings.Fields(learnerLoc) {
		if mentorParts[part] {
			return 85 // shared city/state token
		}
	}

	return math.Max(50, Similarity(learnerLoc, mentorLoc)*100)
}

// availabilityKeywords is the fixed vocabulary matched against free-text
// availability on both sides.
var availabilityKeywords = []string{
	"morning", "afternoon", "evening", "weekday", "weekend", "flexible",
}

func scoreAvailability(p domain.LearnerProfile, m domain.UserRecord) float64 {
	if p.Availability == "" || m.MentorAvailability == "" {
		return 70
	}

	learnerAvail := strings.ToLower(p.Availability)
	mentorAvail := strings.ToLower(m.MentorAvailability)

	matches := 0
	for _, slot := range availabilityKeywords {
		if strings.Contains(learnerAvail, slot) && strings.Contains(mentorAvail, slot) {
			matches++
		}
	}

	bonus := float64(matches) / float64(len(availabilityKeywords)) * 50
	return math.Min(100, 50+bonus)
}

// scoreLearningStyle is a flat placeholder: no profile field differentiates
// styles yet, so every pair gets the same decent compatibility.
func scoreLearningStyle(domain.LearnerProfile, domain.UserRecord) float64 {
	return 70
}
