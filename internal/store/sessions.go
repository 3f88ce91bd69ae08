package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"skillbridge-engine/internal/domain"
)

type Sessions struct {
	DB *sql.DB
}

func (s Sessions) Create(ctx context.Context, sess *domain.Session) error {
	now := time.Now().UTC()
	sess.CreatedAt = now
	if sess.Status == "" {
		sess.Status = domain.SessionPending
	}

	res, err := s.DB.ExecContext(ctx, `
INSERT INTO sessions (mentor_id, learner_id, scheduled_time, status, created_at)
VALUES (?,?,?,?,?);`,
		sess.MentorID, sess.LearnerID,
		sess.ScheduledTime.UTC().Format(time.RFC3339),
		sess.Status, now.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	sess.ID, _ = res.LastInsertId()
	return nil
}

// ListForUser returns every session the user participates in, as learner or
// mentor, ordered by scheduled time.
func (s Sessions) ListForUser(ctx context.Context, userID int64) ([]domain.Session, error) {
	rows, err := s.DB.QueryContext(ctx, `
SELECT id, mentor_id, learner_id, scheduled_time, status, created_at
FROM sessions
WHERE learner_id = ? OR mentor_id = ?
ORDER BY scheduled_time;`, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Session
	for rows.Next() {
		var sess domain.Session
		var scheduled, created string
		if err := rows.Scan(&sess.ID, &sess.MentorID, &sess.LearnerID, &scheduled, &sess.Status, &created); err != nil {
			return nil, err
		}
		sess.ScheduledTime, _ = time.Parse(time.RFC3339, scheduled)
		sess.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, sess)
	}
	return out, rows.Err()
}

// ExpirePending marks pending sessions whose scheduled time has passed as
// expired and reports how many rows changed.
func (s Sessions) ExpirePending(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.DB.ExecContext(ctx, `
UPDATE sessions SET status = ?
WHERE status = ? AND scheduled_time < ?;`,
		domain.SessionExpired, domain.SessionPending,
		now.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("expire sessions: %w", err)
	}
	return res.RowsAffected()
}
