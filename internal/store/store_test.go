package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"skillbridge-engine/internal/domain"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(db.Pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := testDB(t)
	if err := Migrate(db.Pool); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestUsersCreateAndFind(t *testing.T) {
	db := testDB(t)
	users := Users{DB: db.Pool}
	ctx := context.Background()

	u := domain.UserRecord{
		Email:           "marcus@example.com",
		HashedPassword:  "hash",
		FullName:        "Marcus Webb",
		IsMentor:        true,
		Skills:          "Python, Machine Learning",
		ExperienceYears: intPtr(9),
		HourlyRate:      floatPtr(75),
	}
	if err := users.Create(ctx, &u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("create did not assign an id")
	}

	got, err := users.FindUserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if got == nil || got.Email != "marcus@example.com" || !got.IsMentor {
		t.Fatalf("found %+v", got)
	}
	if got.ExperienceYears == nil || *got.ExperienceYears != 9 {
		t.Fatalf("experience years lost: %+v", got.ExperienceYears)
	}
	if got.HourlyRate == nil || *got.HourlyRate != 75 {
		t.Fatalf("hourly rate lost: %+v", got.HourlyRate)
	}
	if !got.IsActive {
		t.Fatal("new user not active")
	}

	byEmail, err := users.FindUserByEmail(ctx, "marcus@example.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if byEmail == nil || byEmail.ID != u.ID {
		t.Fatalf("find by email = %+v", byEmail)
	}
}

func TestUsersFindMissingReturnsNilNil(t *testing.T) {
	db := testDB(t)
	users := Users{DB: db.Pool}

	got, err := users.FindUserByID(context.Background(), 999)
	if err != nil || got != nil {
		t.Fatalf("missing row = (%+v, %v), want (nil, nil)", got, err)
	}
}

func TestUsersNullableFieldsSurviveRoundTrip(t *testing.T) {
	db := testDB(t)
	users := Users{DB: db.Pool}
	ctx := context.Background()

	u := domain.UserRecord{Email: "sparse@example.com", HashedPassword: "hash", FullName: "Sparse"}
	if err := users.Create(ctx, &u); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := users.FindUserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.ExperienceYears != nil || got.HourlyRate != nil {
		t.Fatalf("nil fields came back non-nil: %+v", got)
	}
	if !got.FreeMentor() {
		t.Fatal("mentor with no rate should read as free")
	}
}

func TestUsersDuplicateEmailRejected(t *testing.T) {
	db := testDB(t)
	users := Users{DB: db.Pool}
	ctx := context.Background()

	a := domain.UserRecord{Email: "dup@example.com", HashedPassword: "h", FullName: "A"}
	if err := users.Create(ctx, &a); err != nil {
		t.Fatalf("first create: %v", err)
	}
	b := domain.UserRecord{Email: "dup@example.com", HashedPassword: "h", FullName: "B"}
	if err := users.Create(ctx, &b); err == nil {
		t.Fatal("duplicate email accepted")
	}
}

func TestListMentorsAndLearners(t *testing.T) {
	db := testDB(t)
	users := Users{DB: db.Pool}
	ctx := context.Background()

	for _, u := range []domain.UserRecord{
		{Email: "l1@example.com", HashedPassword: "h", FullName: "L1"},
		{Email: "m1@example.com", HashedPassword: "h", FullName: "M1", IsMentor: true},
		{Email: "m2@example.com", HashedPassword: "h", FullName: "M2", IsMentor: true},
	} {
		u := u
		if err := users.Create(ctx, &u); err != nil {
			t.Fatalf("create %s: %v", u.Email, err)
		}
	}

	mentors, err := users.ListMentors(ctx)
	if err != nil {
		t.Fatalf("list mentors: %v", err)
	}
	if len(mentors) != 2 {
		t.Fatalf("got %d mentors, want 2", len(mentors))
	}
	// ORDER BY id keeps insertion order stable.
	if mentors[0].FullName != "M1" || mentors[1].FullName != "M2" {
		t.Fatalf("mentor order %v, %v", mentors[0].FullName, mentors[1].FullName)
	}

	learners, err := users.ListLearners(ctx)
	if err != nil {
		t.Fatalf("list learners: %v", err)
	}
	if len(learners) != 1 || learners[0].FullName != "L1" {
		t.Fatalf("learners = %+v", learners)
	}
}

func TestSessionsLifecycle(t *testing.T) {
	db := testDB(t)
	users := Users{DB: db.Pool}
	sessions := Sessions{DB: db.Pool}
	ctx := context.Background()

	learner := domain.UserRecord{Email: "l@example.com", HashedPassword: "h", FullName: "L"}
	mentor := domain.UserRecord{Email: "m@example.com", HashedPassword: "h", FullName: "M", IsMentor: true}
	if err := users.Create(ctx, &learner); err != nil {
		t.Fatal(err)
	}
	if err := users.Create(ctx, &mentor); err != nil {
		t.Fatal(err)
	}

	past := domain.Session{
		MentorID: mentor.ID, LearnerID: learner.ID,
		ScheduledTime: time.Now().UTC().Add(-2 * time.Hour),
	}
	future := domain.Session{
		MentorID: mentor.ID, LearnerID: learner.ID,
		ScheduledTime: time.Now().UTC().Add(48 * time.Hour),
	}
	if err := sessions.Create(ctx, &past); err != nil {
		t.Fatalf("create past: %v", err)
	}
	if err := sessions.Create(ctx, &future); err != nil {
		t.Fatalf("create future: %v", err)
	}
	if past.Status != domain.SessionPending {
		t.Fatalf("new session status = %q", past.Status)
	}

	// Both participants see the sessions.
	for _, id := range []int64{learner.ID, mentor.ID} {
		got, err := sessions.ListForUser(ctx, id)
		if err != nil {
			t.Fatalf("list for %d: %v", id, err)
		}
		if len(got) != 2 {
			t.Fatalf("user %d sees %d sessions, want 2", id, len(got))
		}
	}

	n, err := sessions.ExpirePending(ctx, time.Now().UTC())
	if err != nil {
		t.Fatalf("expire: %v", err)
	}
	if n != 1 {
		t.Fatalf("expired %d sessions, want 1", n)
	}

	got, err := sessions.ListForUser(ctx, learner.ID)
	if err != nil {
		t.Fatal(err)
	}
	// Ordered by scheduled time: the past (now expired) one first.
	if got[0].Status != domain.SessionExpired || got[1].Status != domain.SessionPending {
		t.Fatalf("statuses after sweep: %q, %q", got[0].Status, got[1].Status)
	}
}

func TestSeedUsersOnceOnly(t *testing.T) {
	db := testDB(t)
	users := Users{DB: db.Pool}
	ctx := context.Background()

	fakeHash := func(string) (string, error) { return "hashed", nil }

	added, err := SeedUsers(ctx, users, fakeHash)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if added != 4 {
		t.Fatalf("seeded %d users, want 4", added)
	}

	again, err := SeedUsers(ctx, users, fakeHash)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if again != 0 {
		t.Fatalf("reseeded %d users into a populated table", again)
	}

	mentors, err := users.ListMentors(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(mentors) != 3 {
		t.Fatalf("seed created %d mentors, want 3", len(mentors))
	}
}
