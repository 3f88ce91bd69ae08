package domain

import "time"

// UserRecord is the persistent user row. One table serves both sides of the
// platform; the mentor-only and learner-only fields are empty on the other
// side and the engine treats them as optional.
type UserRecord struct {
	ID                int64     `json:"id"`
	Email             string    `json:"email"`
	HashedPassword    string    `json:"-"`
	FullName          string    `json:"full_name"`
	PhoneNumber       string    `json:"phone_number,omitempty"`
	ProfilePictureURL string    `json:"profile_picture_url,omitempty"`
	Bio               string    `json:"bio,omitempty"`
	Location          string    `json:"location,omitempty"`
	IsMentor          bool      `json:"is_mentor"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Learner side
	LearningGoal      string `json:"learning_goal,omitempty"`
	PreferredLanguage string `json:"preferred_language,omitempty"`
	TimeZone          string `json:"time_zone,omitempty"`
	LearningStyle     string `json:"learning_style,omitempty"`
	ExperienceLevel   string `json:"experience_level,omitempty"`
	Availability      string `json:"availability,omitempty"`
	SkillsInterested  string `json:"skills_interested,omitempty"`
	CurrentSkills     string `json:"current_skills,omitempty"`

	// Mentor side
	Skills             string   `json:"skills,omitempty"`
	Expertise          string   `json:"expertise,omitempty"`
	ExperienceYears    *int     `json:"experience_years,omitempty"`
	LanguagesSpoken    string   `json:"languages_spoken,omitempty"`
	MentorAvailability string   `json:"mentor_availability,omitempty"`
	HourlyRate         *float64 `json:"hourly_rate,omitempty"`
	LinkedinURL        string   `json:"linkedin_url,omitempty"`
	Company            string   `json:"company,omitempty"`
	JobTitle           string   `json:"job_title,omitempty"`
}

// FreeMentor reports whether the mentor charges nothing. A missing rate and
// an explicit zero both mean free.
func (u UserRecord) FreeMentor() bool {
	return u.HourlyRate == nil || *u.HourlyRate == 0
}
