package store

import (
	"context"
	"testing"

	"workoutlog/internal/domain"
)

// newTestStore opens a fresh in-memory database. Each test gets its own
// store so nothing leaks between tests.
func newTestStore(t *testing.T, foreignKeys bool) *Store {
	t.Helper()
	s, err := Open(":memory:", foreignKeys)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func createTestUser(t *testing.T, s *Store, email, username string) *domain.User {
	t.Helper()
	user, err := s.InsertUser(context.Background(), email, "not-a-real-hash", username)
	if err != nil {
		t.Fatalf("InsertUser failed: %v", err)
	}
	return user
}

func createTestWorkout(t *testing.T, s *Store, userID, name, date string) *domain.Workout {
	t.Helper()
	w, err := s.InsertWorkout(context.Background(), WorkoutData{Name: name, Date: date}, userID)
	if err != nil {
		t.Fatalf("InsertWorkout failed: %v", err)
	}
	return w
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func metricPtr(m domain.Metric) *domain.Metric { return &m }
