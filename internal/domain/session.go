package domain

import "time"

// Session statuses move pending -> confirmed/completed, or expire when the
// scheduled time passes while still pending.
const (
	SessionPending   = "pending"
	SessionConfirmed = "confirmed"
	SessionCompleted = "completed"
	SessionExpired   = "expired"
)

// Session is a booked mentoring slot between a learner and a mentor.
type Session struct {
	ID            int64     `json:"id"`
	MentorID      int64     `json:"mentor_id"`
	LearnerID     int64     `json:"learner_id"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
