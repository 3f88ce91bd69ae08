package domain

// LearnerProfile is the normalized view of a learner used by the matching
// algorithm. Derived once per request from a UserRecord, immutable after.
type LearnerProfile struct {
	SkillsInterested   []string `json:"skills_interested"`
	CurrentSkills      []string `json:"current_skills"`
	LearningGoal       string   `json:"learning_goal,omitempty"`
	ExperienceLevel    string   `json:"experience_level,omitempty"`
	LearningStyle      string   `json:"learning_style,omitempty"`
	PreferredLanguages []string `json:"preferred_languages"`
	Location           string   `json:"location,omitempty"`
	Availability       string   `json:"availability,omitempty"`
}

// RecommendationScore is the factor breakdown for one mentor. All values are
// on a 0-100 scale, rounded to two decimals; the total is the fixed weighted
// sum of the six factors.
type RecommendationScore struct {
	TotalScore         float64 `json:"total_score"`
	SkillsMatch        float64 `json:"skills_match"`
	LocationMatch      float64 `json:"location_match"`
	LanguageMatch      float64 `json:"language_match"`
	ExperienceMatch    float64 `json:"experience_match"`
	AvailabilityMatch  float64 `json:"availability_match"`
	LearningStyleMatch float64 `json:"learning_style_match"`
}

// MentorRecommendation joins a mentor's profile with its score and the
// human-readable match explanation. Built per request, never persisted.
type MentorRecommendation struct {
	MentorID              int64    `json:"mentor_id"`
	MentorName            string   `json:"mentor_name"`
	MentorEmail           string   `json:"mentor_email"`
	MentorBio             string   `json:"mentor_bio,omitempty"`
	MentorLocation        string   `json:"mentor_location,omitempty"`
	MentorSkills          string   `json:"mentor_skills,omitempty"`
	MentorExpertise       string   `json:"mentor_expertise,omitempty"`
	MentorExperienceYears *int     `json:"mentor_experience_years,omitempty"`
	MentorLanguages       string   `json:"mentor_languages,omitempty"`
	MentorHourlyRate      *float64 `json:"mentor_hourly_rate,omitempty"`
	MentorAvailability    string   `json:"mentor_availability,omitempty"`
	MentorCompany         string   `json:"mentor_company,omitempty"`
	MentorJobTitle        string   `json:"mentor_job_title,omitempty"`
	MentorLinkedinURL     string   `json:"mentor_linkedin_url,omitempty"`
	ProfilePictureURL     string   `json:"profile_picture_url,omitempty"`

	RecommendationScore RecommendationScore `json:"recommendation_score"`
	MatchReasons        []string            `json:"match_reasons"`
	CommonSkills        []string            `json:"common_skills"`
}

// RecommendationFilters narrows the candidate pool. Every field is optional;
// absent fields constrain nothing. MinScore is a per-candidate post-score
// gate; zero disables it. Languages and Availability are accepted for API
// parity but are soft preferences the scorers already cover, so the pool
// filter ignores them.
type RecommendationFilters struct {
	Skills             []string `json:"skills,omitempty"`
	MaxHourlyRate      *float64 `json:"max_hourly_rate,omitempty"`
	MinExperienceYears *int     `json:"min_experience_years,omitempty"`
	Location           string   `json:"location,omitempty"`
	Languages          []string `json:"languages,omitempty"`
	Availability       string   `json:"availability,omitempty"`
	MinScore           float64  `json:"min_score,omitempty"`
}

// RecommendationResult is what the engine hands back to the transport layer.
type RecommendationResult struct {
	UserID          int64                  `json:"user_id"`
	TotalMentors    int                    `json:"total_mentors"`
	FilteredMentors int                    `json:"filtered_mentors"`
	Recommendations []MentorRecommendation `json:"recommendations"`
	RequestFilters  *RecommendationFilters `json:"request_filters,omitempty"`
}

// RecommendationStats is the system-wide overview served by the stats
// endpoint.
type RecommendationStats struct {
	TotalMentors           int            `json:"total_mentors"`
	TotalLearners          int            `json:"total_learners"`
	PaidMentors            int            `json:"paid_mentors"`
	FreeMentors            int            `json:"free_mentors"`
	UniqueSkills           int            `json:"unique_skills"`
	ExperienceDistribution map[string]int `json:"experience_distribution"`
	SystemHealth           string         `json:"system_health"`
}
