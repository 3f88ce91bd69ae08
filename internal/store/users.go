package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"skillbridge-engine/internal/domain"
)

const userColumns = `
id, email, hashed_password, full_name, phone_number, profile_picture_url,
bio, location, is_mentor, is_active, created_at, updated_at,
learning_goal, preferred_language, time_zone, learning_style,
experience_level, availability, skills_interested, current_skills,
skills, expertise, experience_years, languages_spoken, mentor_availability,
hourly_rate, linkedin_url, company, job_title`

// Users wraps all user-table access. Methods that look a row up return
// (nil, nil) when it does not exist; the engine decides what "missing" means.
type Users struct {
	DB *sql.DB
}

func (s Users) Create(ctx context.Context, u *domain.UserRecord) error {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	u.IsActive = true

	res, err := s.DB.ExecContext(ctx, `
INSERT INTO users (
  email, hashed_password, full_name, phone_number, profile_picture_url,
  bio, location, is_mentor, is_active, created_at, updated_at,
  learning_goal, preferred_language, time_zone, learning_style,
  experience_level, availability, skills_interested, current_skills,
  skills, expertise, experience_years, languages_spoken, mentor_availability,
  hourly_rate, linkedin_url, company, job_title
) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?);`,
		u.Email, u.HashedPassword, u.FullName, u.PhoneNumber, u.ProfilePictureURL,
		u.Bio, u.Location, u.IsMentor, u.IsActive,
		now.Format(time.RFC3339), now.Format(time.RFC3339),
		u.LearningGoal, u.PreferredLanguage, u.TimeZone, u.LearningStyle,
		u.ExperienceLevel, u.Availability, u.SkillsInterested, u.CurrentSkills,
		u.Skills, u.Expertise, nullableInt(u.ExperienceYears), u.LanguagesSpoken,
		u.MentorAvailability, nullableFloat(u.HourlyRate), u.LinkedinURL,
		u.Company, u.JobTitle,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	u.ID, _ = res.LastInsertId()
	return nil
}

func (s Users) FindUserByID(ctx context.Context, id int64) (*domain.UserRecord, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?;`, id)
	return scanUser(row)
}

func (s Users) FindUserByEmail(ctx context.Context, email string) (*domain.UserRecord, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?;`, email)
	return scanUser(row)
}

func (s Users) ListMentors(ctx context.Context) ([]domain.UserRecord, error) {
	return s.listByMentorFlag(ctx, true)
}

func (s Users) ListLearners(ctx context.Context) ([]domain.UserRecord, error) {
	return s.listByMentorFlag(ctx, false)
}

func (s Users) listByMentorFlag(ctx context.Context, isMentor bool) ([]domain.UserRecord, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE is_mentor = ? AND is_active = 1 ORDER BY id;`,
		isMentor)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.UserRecord
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row *sql.Row) (*domain.UserRecord, error) {
	u, err := scanUserRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

func scanUserRow(r rowScanner) (*domain.UserRecord, error) {
	var u domain.UserRecord
	var createdAt, updatedAt string
	var years sql.NullInt64
	var rate sql.NullFloat64

	err := r.Scan(
		&u.ID, &u.Email, &u.HashedPassword, &u.FullName, &u.PhoneNumber,
		&u.ProfilePictureURL, &u.Bio, &u.Location, &u.IsMentor, &u.IsActive,
		&createdAt, &updatedAt,
		&u.LearningGoal, &u.PreferredLanguage, &u.TimeZone, &u.LearningStyle,
		&u.ExperienceLevel, &u.Availability, &u.SkillsInterested, &u.CurrentSkills,
		&u.Skills, &u.Expertise, &years, &u.LanguagesSpoken, &u.MentorAvailability,
		&rate, &u.LinkedinURL, &u.Company, &u.JobTitle,
	)
	if err != nil {
		return nil, err
	}

	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	u.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	if years.Valid {
		y := int(years.Int64)
		u.ExperienceYears = &y
	}
	if rate.Valid {
		v := rate.Float64
		u.HourlyRate = &v
	}
	return &u, nil
}

func nullableInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullableFloat(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
