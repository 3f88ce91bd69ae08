package httpapi

import "github.com/go-playground/validator/v10"

// validate checks request payloads at the boundary so nothing malformed
// reaches the engine.
var validate = validator.New(validator.WithRequiredStructEnabled())

// RegisterRequest covers both account kinds; mentor-only fields are ignored
// for learners and vice versa.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=1"`
	IsMentor bool   `json:"is_mentor"`

	PhoneNumber       string `json:"phone_number"`
	ProfilePictureURL string `json:"profile_picture_url" validate:"omitempty,url"`
	Bio               string `json:"bio"`
	Location          string `json:"location"`

	// Learner fields
	LearningGoal      string `json:"learning_goal"`
	PreferredLanguage string `json:"preferred_language"`
	TimeZone          string `json:"time_zone"`
	LearningStyle     string `json:"learning_style"`
	ExperienceLevel   string `json:"experience_level"`
	Availability      string `json:"availability"`
	SkillsInterested  string `json:"skills_interested"`
	CurrentSkills     string `json:"current_skills"`

	// Mentor fields
	Skills             string   `json:"skills"`
	Expertise          string   `json:"expertise"`
	ExperienceYears    *int     `json:"experience_years" validate:"omitempty,gte=0"`
	LanguagesSpoken    string   `json:"languages_spoken"`
	MentorAvailability string   `json:"mentor_availability"`
	HourlyRate         *float64 `json:"hourly_rate" validate:"omitempty,gte=0"`
	LinkedinURL        string   `json:"linkedin_url" validate:"omitempty,url"`
	Company            string   `json:"company"`
	JobTitle           string   `json:"job_title"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type SessionRequest struct {
	MentorID      int64  `json:"mentor_id" validate:"required,gt=0"`
	ScheduledTime string `json:"scheduled_time" validate:"required"`
}

type SeedResponse struct {
	Added int `json:"added"`
}
