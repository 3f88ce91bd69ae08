package recommend

import (
	"fmt"
	"strings"

	"skillbridge-engine/internal/domain"
)

const (
	maxMatchReasons = 5
	maxCommonSkills = 5

	// commonSkillThreshold is the similarity above which a mentor token
	// counts as a shared skill even without substring containment.
	commonSkillThreshold = 0.8
)

// AssembleRecommendation joins a mentor row with its score into the response
// object, including the fixed-priority match reasons and the shared skill
// list.
func AssembleRecommendation(m domain.UserRecord, score domain.RecommendationScore, p domain.LearnerProfile) domain.MentorRecommendation {
	return domain.MentorRecommendation{
		MentorID:              m.ID,
		MentorName:            m.FullName,
		MentorEmail:           m.Email,
		MentorBio:             m.Bio,
		MentorLocation:        m.Location,
		MentorSkills:          m.Skills,
		MentorExpertise:       m.Expertise,
		MentorExperienceYears: m.ExperienceYears,
		MentorLanguages:       m.LanguagesSpoken,
		MentorHourlyRate:      m.HourlyRate,
		MentorAvailability:    m.MentorAvailability,
		MentorCompany:         m.Company,
		MentorJobTitle:        m.JobTitle,
		MentorLinkedinURL:     m.LinkedinURL,
		ProfilePictureURL:     m.ProfilePictureURL,
		RecommendationScore:   score,
		MatchReasons:          matchReasons(m, score),
		CommonSkills:          commonSkills(m, p),
	}
}

// matchReasons tests thresholds in a fixed priority order and keeps the first
// five that fire; it is not sorted by strength.
func matchReasons(m domain.UserRecord, score domain.RecommendationScore) []string {
	reasons := []string{}

	if score.SkillsMatch > 80 {
		reasons = append(reasons, "Strong skills alignment with your learning goals")
	}
	if score.ExperienceMatch > 85 && m.ExperienceYears != nil {
		reasons = append(reasons, fmt.Sprintf("Excellent experience level (%d+ years)", *m.ExperienceYears))
	}
	if score.LocationMatch > 80 {
		reasons = append(reasons, "Located in your preferred area or timezone")
	}
	if score.LanguageMatch > 90 {
		reasons = append(reasons, "Speaks your preferred language fluently")
	}
	if m.HourlyRate != nil {
		if *m.HourlyRate == 0 {
			reasons = append(reasons, "Offers free mentoring sessions")
		} else if *m.HourlyRate < 100 {
			reasons = append(reasons, "Competitive and affordable hourly rate")
		}
	}
	if m.Company != "" {
		reasons = append(reasons, fmt.Sprintf("Works at %s", m.Company))
	}

	if len(reasons) > maxMatchReasons {
		reasons = reasons[:maxMatchReasons]
	}
	return reasons
}

// commonSkills collects mentor-side tokens (original casing) that contain a
// learner skill or sit above the similarity threshold, de-duplicated, first
// five.
func commonSkills(m domain.UserRecord, p domain.LearnerProfile) []string {
	common := []string{}
	if len(p.SkillsInterested) == 0 || m.Skills == "" {
		return common
	}

	mentorTokens := append(ParseSkillList(m.Skills), ParseSkillList(m.Expertise)...)

	for _, want := range p.SkillsInterested {
		wl := strings.ToLower(strings.TrimSpace(want))
		for _, have := range mentorTokens {
			hl := strings.ToLower(have)
			if strings.Contains(hl, wl) || Similarity(wl, hl) > commonSkillThreshold {
				if !containsString(common, have) {
					common = append(common, have)
				}
			}
		}
	}

	if len(common) > maxCommonSkills {
		common = common[:maxCommonSkills]
	}
	return common
}

func containsString(xs []string, want string) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}
