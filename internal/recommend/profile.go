package recommend

import "skillbridge-engine/internal/domain"

// DeriveLearnerProfile normalizes a raw user row into the immutable profile
// the scorers consume. Preferred languages fall back to English when the user
// never set any.
func DeriveLearnerProfile(u domain.UserRecord) domain.LearnerProfile {
	preferred := u.PreferredLanguage
	if preferred == "" {
		preferred = "English"
	}

	return domain.LearnerProfile{
		SkillsInterested:   ParseSkillList(u.SkillsInterested),
		CurrentSkills:      ParseSkillList(u.CurrentSkills),
		LearningGoal:       u.LearningGoal,
		ExperienceLevel:    u.ExperienceLevel,
		LearningStyle:      u.LearningStyle,
		PreferredLanguages: ParseSkillList(preferred),
		Location:           u.Location,
		Availability:       u.Availability,
	}
}
