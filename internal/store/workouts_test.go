package store

import (
	"context"
	"errors"
	"testing"
)

func TestInsertWorkoutReturnsStoredRow(t *testing.T) {
	s := newTestStore(t, true)
	user := createTestUser(t, s, "u@example.com", "u")

	w, err := s.InsertWorkout(context.Background(), WorkoutData{
		Name:  "gym session",
		Date:  "2025-01-15",
		Notes: strPtr("x"),
	}, user.ID)
	if err != nil {
		t.Fatalf("InsertWorkout failed: %v", err)
	}

	if w.ID == "" {
		t.Error("expected generated id")
	}
	if w.Name != "gym session" || w.Date != "2025-01-15" {
		t.Errorf("unexpected row: %+v", w)
	}
	if w.Notes == nil || *w.Notes != "x" {
		t.Errorf("Notes mismatch: got %v", w.Notes)
	}
	if w.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	got, err := s.GetWorkoutByID(context.Background(), user.ID, w.ID)
	if err != nil {
		t.Fatalf("GetWorkoutByID failed: %v", err)
	}
	if got.ID != w.ID || got.Name != w.Name {
		t.Errorf("stored row mismatch: got %+v, want %+v", got, w)
	}
}

func TestGetWorkoutsByUserIDDateRange(t *testing.T) {
	s := newTestStore(t, true)
	user := createTestUser(t, s, "u@example.com", "u")

	for _, date := range []string{"2025-01-10", "2025-01-15", "2025-01-20", "2025-01-25"} {
		createTestWorkout(t, s, user.ID, "w "+date, date)
	}

	got, err := s.GetWorkoutsByUserID(context.Background(), user.ID, WorkoutFilter{
		StartDate: "2025-01-12",
		EndDate:   "2025-01-22",
	})
	if err != nil {
		t.Fatalf("GetWorkoutsByUserID failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 workouts, got %d", len(got))
	}
	// Ordered by date descending.
	if got[0].Date != "2025-01-20" || got[1].Date != "2025-01-15" {
		t.Errorf("unexpected dates: %s, %s", got[0].Date, got[1].Date)
	}
}

func TestGetWorkoutsByUserIDPaging(t *testing.T) {
	s := newTestStore(t, true)
	user := createTestUser(t, s, "u@example.com", "u")

	for _, date := range []string{"2025-02-01", "2025-02-02", "2025-02-03"} {
		createTestWorkout(t, s, user.ID, "w", date)
	}

	got, err := s.GetWorkoutsByUserID(context.Background(), user.ID, WorkoutFilter{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("GetWorkoutsByUserID failed: %v", err)
	}
	if len(got) != 1 || got[0].Date != "2025-02-02" {
		t.Errorf("expected the middle workout, got %+v", got)
	}
}

func TestGetWorkoutsByUserIDEmpty(t *testing.T) {
	s := newTestStore(t, true)
	user := createTestUser(t, s, "u@example.com", "u")

	got, err := s.GetWorkoutsByUserID(context.Background(), user.ID, WorkoutFilter{})
	if err != nil {
		t.Fatalf("GetWorkoutsByUserID failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no workouts, got %d", len(got))
	}
}

func TestUpdateWorkoutPartial(t *testing.T) {
	s := newTestStore(t, true)
	user := createTestUser(t, s, "u@example.com", "u")
	w := createTestWorkout(t, s, user.ID, "leg day", "2025-03-01")

	updated, err := s.UpdateWorkoutByID(context.Background(), w.ID, user.ID, WorkoutPatch{
		Name: strPtr("legs + core"),
	})
	if err != nil {
		t.Fatalf("UpdateWorkoutByID failed: %v", err)
	}
	if updated.Name != "legs + core" {
		t.Errorf("Name not updated: %s", updated.Name)
	}
	// Untouched fields stay identical.
	if updated.Date != w.Date {
		t.Errorf("Date changed: got %s, want %s", updated.Date, w.Date)
	}
	if updated.Notes != nil {
		t.Errorf("Notes changed: got %v", updated.Notes)
	}
	if !updated.CreatedAt.Equal(w.CreatedAt) {
		t.Errorf("CreatedAt changed: got %v, want %v", updated.CreatedAt, w.CreatedAt)
	}
}

func TestUpdateWorkoutEmptyPatchRejected(t *testing.T) {
	s := newTestStore(t, true)
	user := createTestUser(t, s, "u@example.com", "u")
	w := createTestWorkout(t, s, user.ID, "w", "2025-03-01")

	_, err := s.UpdateWorkoutByID(context.Background(), w.ID, user.ID, WorkoutPatch{})
	if !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Fatalf("expected ErrNoFieldsToUpdate, got %v", err)
	}
}

func TestWorkoutOwnershipIsolation(t *testing.T) {
	s := newTestStore(t, true)
	alice := createTestUser(t, s, "alice@example.com", "alice")
	bob := createTestUser(t, s, "bob@example.com", "bob")
	w := createTestWorkout(t, s, alice.ID, "alice workout", "2025-04-01")

	if _, err := s.GetWorkoutByID(context.Background(), bob.ID, w.ID); !errors.Is(err, ErrWorkoutNotFound) {
		t.Errorf("cross-user get: expected ErrWorkoutNotFound, got %v", err)
	}
	if _, err := s.UpdateWorkoutByID(context.Background(), w.ID, bob.ID, WorkoutPatch{Name: strPtr("stolen")}); !errors.Is(err, ErrWorkoutNotFound) {
		t.Errorf("cross-user update: expected ErrWorkoutNotFound, got %v", err)
	}
	if _, err := s.DeleteWorkoutByID(context.Background(), w.ID, bob.ID); !errors.Is(err, ErrWorkoutNotFound) {
		t.Errorf("cross-user delete: expected ErrWorkoutNotFound, got %v", err)
	}

	// The row is unchanged for its owner.
	got, err := s.GetWorkoutByID(context.Background(), alice.ID, w.ID)
	if err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
	if got.Name != "alice workout" {
		t.Errorf("workout was modified: %s", got.Name)
	}
}

// Deleting a workout must leave zero dependent rows under both foreign-key
// settings; the explicit cascade path is the safety net when enforcement is
// off.
func TestDeleteWorkoutCascade(t *testing.T) {
	for _, fk := range []bool{true, false} {
		name := "foreign_keys_off"
		if fk {
			name = "foreign_keys_on"
		}
		t.Run(name, func(t *testing.T) {
			s := newTestStore(t, fk)
			ctx := context.Background()
			user := createTestUser(t, s, "u@example.com", "u")
			w := createTestWorkout(t, s, user.ID, "full body", "2025-01-15")

			ex, _, err := s.InsertExerciseToWorkout(ctx, ExerciseData{Name: "Push Up", Category: strPtr("Strength")}, user.ID, w.ID)
			if err != nil {
				t.Fatalf("InsertExerciseToWorkout failed: %v", err)
			}
			for i := 0; i < 2; i++ {
				if _, err := s.InsertSet(ctx, SetData{Reps: 10}, user.ID, w.ID, ex.ID); err != nil {
					t.Fatalf("InsertSet failed: %v", err)
				}
			}

			deleted, err := s.DeleteWorkoutByID(ctx, w.ID, user.ID)
			if err != nil {
				t.Fatalf("DeleteWorkoutByID failed: %v", err)
			}
			if deleted.ID != w.ID || deleted.Name != "full body" {
				t.Errorf("unexpected deleted row: %+v", deleted)
			}

			counts, err := s.GetDataCounts(ctx, user.ID)
			if err != nil {
				t.Fatalf("GetDataCounts failed: %v", err)
			}
			if counts.Workouts != 0 || counts.Exercises != 0 || counts.WorkoutExercises != 0 || counts.Sets != 0 {
				t.Errorf("dependent rows survived the delete: %+v", counts)
			}

			orphans, err := s.GetOrphanedData(ctx)
			if err != nil {
				t.Fatalf("GetOrphanedData failed: %v", err)
			}
			if orphans.WorkoutExercises != 0 || orphans.Sets != 0 {
				t.Errorf("orphaned rows left behind: %+v", orphans)
			}
		})
	}
}

func TestDeleteUserCascade(t *testing.T) {
	s := newTestStore(t, false)
	ctx := context.Background()
	user := createTestUser(t, s, "u@example.com", "u")
	w := createTestWorkout(t, s, user.ID, "w", "2025-01-15")
	ex, _, err := s.InsertExerciseToWorkout(ctx, ExerciseData{Name: "Squat"}, user.ID, w.ID)
	if err != nil {
		t.Fatalf("InsertExerciseToWorkout failed: %v", err)
	}
	if _, err := s.InsertSet(ctx, SetData{Reps: 5}, user.ID, w.ID, ex.ID); err != nil {
		t.Fatalf("InsertSet failed: %v", err)
	}
	if _, err := s.CreateUserBiometrics(ctx, user.ID, BiometricsData{Weight: 80, Sex: "male", Height: 180, Build: "average"}); err != nil {
		t.Fatalf("CreateUserBiometrics failed: %v", err)
	}

	if err := s.DeleteUserByID(ctx, user.ID); err != nil {
		t.Fatalf("DeleteUserByID failed: %v", err)
	}

	if _, err := s.GetUserByID(ctx, user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	counts, err := s.GetDataCounts(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetDataCounts failed: %v", err)
	}
	if counts.Workouts != 0 || counts.Exercises != 0 || counts.WorkoutExercises != 0 || counts.Sets != 0 {
		t.Errorf("owned rows survived the delete: %+v", counts)
	}
	orphans, err := s.GetOrphanedData(ctx)
	if err != nil {
		t.Fatalf("GetOrphanedData failed: %v", err)
	}
	if orphans.WorkoutExercises != 0 || orphans.Sets != 0 {
		t.Errorf("orphaned rows left behind: %+v", orphans)
	}
}
