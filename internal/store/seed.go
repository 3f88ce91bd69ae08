package store

import (
	"context"
	"fmt"

	"skillbridge-engine/internal/domain"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// SeedUsers inserts a small demo population (one learner, a few mentors) for
// local development. Safe to call once on an empty database; existing rows
// make it a no-op.
func SeedUsers(ctx context.Context, users Users, hashPassword func(string) (string, error)) (int, error) {
	var count int
	if err := users.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	hashed, err := hashPassword("changeme123")
	if err != nil {
		return 0, fmt.Errorf("hash seed password: %w", err)
	}

	seeds := []domain.UserRecord{
		{
			Email:             "alice@example.com",
			FullName:          "Alice Chen",
			Location:          "Austin, TX",
			PreferredLanguage: "English",
			ExperienceLevel:   "beginner",
			Availability:      "weekday evening",
			SkillsInterested:  "Python, Machine Learning",
			CurrentSkills:     "Excel, SQL",
			LearningGoal:      "Break into data science",
		},
		{
			Email:              "marcus@example.com",
			FullName:           "Marcus Webb",
			IsMentor:           true,
			Location:           "Austin, TX",
			Skills:             "Python, Machine Learning, Pandas",
			Expertise:          "Data Science, MLOps",
			ExperienceYears:    intPtr(9),
			LanguagesSpoken:    "English, Spanish",
			MentorAvailability: "weekday evening, weekend",
			HourlyRate:         floatPtr(75),
			Company:            "DataForge",
			JobTitle:           "Staff ML Engineer",
		},
		{
			Email:              "priya@example.com",
			FullName:           "Priya Raman",
			IsMentor:           true,
			Location:           "Remote",
			Skills:             "React, TypeScript, Node.js",
			Expertise:          "Frontend Architecture",
			ExperienceYears:    intPtr(6),
			LanguagesSpoken:    "English, Hindi",
			MentorAvailability: "flexible",
			HourlyRate:         floatPtr(0),
			Company:            "Freelance",
			JobTitle:           "Principal Engineer",
		},
		{
			Email:              "jonas@example.com",
			FullName:           "Jonas Keller",
			IsMentor:           true,
			Location:           "Berlin, Germany",
			Skills:             "Go, Kubernetes, PostgreSQL",
			Expertise:          "Platform Engineering, SRE",
			ExperienceYears:    intPtr(12),
			LanguagesSpoken:    "German, English",
			MentorAvailability: "weekday morning",
			HourlyRate:         floatPtr(120),
			Company:            "CloudSmith",
			JobTitle:           "Engineering Manager",
		},
	}

	added := 0
	for i := range seeds {
		seeds[i].HashedPassword = hashed
		if err := users.Create(ctx, &seeds[i]); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
