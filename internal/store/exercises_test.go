package store

import (
	"context"
	"errors"
	"testing"

	"workoutlog/internal/domain"
)

func TestInsertExerciseToWorkout(t *testing.T) {
	s := newTestStore(t, true)
	ctx := context.Background()
	user := createTestUser(t, s, "u@example.com", "u")
	w := createTestWorkout(t, s, user.ID, "push day", "2025-01-15")

	ex, link, err := s.InsertExerciseToWorkout(ctx, ExerciseData{
		Name:     "Push Up",
		Category: strPtr("Strength"),
		Metric:   metricPtr(domain.MetricWeight),
	}, user.ID, w.ID)
	if err != nil {
		t.Fatalf("InsertExerciseToWorkout failed: %v", err)
	}

	if ex.Name != "Push Up" {
		t.Errorf("Name mismatch: %s", ex.Name)
	}
	if ex.Category == nil || *ex.Category != "Strength" {
		t.Errorf("Category mismatch: %v", ex.Category)
	}
	if link.WorkoutID != w.ID || link.ExerciseID != ex.ID {
		t.Errorf("link references mismatch: %+v", link)
	}
	if link.OrderIndex != 1 {
		t.Errorf("first exercise should get order_index 1, got %d", link.OrderIndex)
	}

	second, secondLink, err := s.InsertExerciseToWorkout(ctx, ExerciseData{Name: "Dips"}, user.ID, w.ID)
	if err != nil {
		t.Fatalf("second InsertExerciseToWorkout failed: %v", err)
	}
	if secondLink.OrderIndex != 2 {
		t.Errorf("second exercise should get order_index 2, got %d", secondLink.OrderIndex)
	}

	listed, err := s.GetExercisesByWorkoutID(ctx, user.ID, w.ID)
	if err != nil {
		t.Fatalf("GetExercisesByWorkoutID failed: %v", err)
	}
	if len(listed) != 2 || listed[0].ID != ex.ID || listed[1].ID != second.ID {
		t.Errorf("unexpected listing order: %+v", listed)
	}
}

func TestInsertExerciseToMissingWorkout(t *testing.T) {
	s := newTestStore(t, true)
	user := createTestUser(t, s, "u@example.com", "u")

	_, _, err := s.InsertExerciseToWorkout(context.Background(), ExerciseData{Name: "Row"}, user.ID, "no-such-workout")
	if !errors.Is(err, ErrWorkoutNotFound) {
		t.Fatalf("expected ErrWorkoutNotFound, got %v", err)
	}

	// The failed two-step insert must not leave the exercise behind.
	exercises, err := s.GetExercisesByUserID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetExercisesByUserID failed: %v", err)
	}
	if len(exercises) != 0 {
		t.Errorf("orphan exercise created: %+v", exercises)
	}
}

func TestDeleteExerciseFromWorkoutKeepsExercise(t *testing.T) {
	s := newTestStore(t, true)
	ctx := context.Background()
	user := createTestUser(t, s, "u@example.com", "u")
	w := createTestWorkout(t, s, user.ID, "w", "2025-01-15")
	ex, link, err := s.InsertExerciseToWorkout(ctx, ExerciseData{Name: "Plank"}, user.ID, w.ID)
	if err != nil {
		t.Fatalf("InsertExerciseToWorkout failed: %v", err)
	}
	if _, err := s.InsertSet(ctx, SetData{Reps: 1, Duration: floatPtr(60)}, user.ID, w.ID, ex.ID); err != nil {
		t.Fatalf("InsertSet failed: %v", err)
	}

	deleted, err := s.DeleteExerciseFromWorkout(ctx, w.ID, ex.ID, user.ID)
	if err != nil {
		t.Fatalf("DeleteExerciseFromWorkout failed: %v", err)
	}
	if deleted.ID != link.ID || deleted.WorkoutID != w.ID || deleted.ExerciseID != ex.ID {
		t.Errorf("unexpected deleted link: %+v", deleted)
	}

	// The exercise survives in the library, the link and its sets are gone.
	if _, err := s.GetExerciseByID(ctx, user.ID, ex.ID); err != nil {
		t.Errorf("exercise should survive: %v", err)
	}
	counts, err := s.GetDataCounts(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetDataCounts failed: %v", err)
	}
	if counts.WorkoutExercises != 0 || counts.Sets != 0 {
		t.Errorf("link or sets survived: %+v", counts)
	}

	// Deleting again reports the link as gone.
	if _, err := s.DeleteExerciseFromWorkout(ctx, w.ID, ex.ID, user.ID); !errors.Is(err, ErrWorkoutExerciseNotFound) {
		t.Errorf("expected ErrWorkoutExerciseNotFound, got %v", err)
	}
}

func TestDeleteExerciseCascadesButKeepsWorkout(t *testing.T) {
	for _, fk := range []bool{true, false} {
		name := "foreign_keys_off"
		if fk {
			name = "foreign_keys_on"
		}
		t.Run(name, func(t *testing.T) {
			s := newTestStore(t, fk)
			ctx := context.Background()
			user := createTestUser(t, s, "u@example.com", "u")
			w := createTestWorkout(t, s, user.ID, "w", "2025-01-15")
			ex, _, err := s.InsertExerciseToWorkout(ctx, ExerciseData{Name: "Deadlift"}, user.ID, w.ID)
			if err != nil {
				t.Fatalf("InsertExerciseToWorkout failed: %v", err)
			}
			if _, err := s.InsertSet(ctx, SetData{Reps: 5, Weight: floatPtr(100)}, user.ID, w.ID, ex.ID); err != nil {
				t.Fatalf("InsertSet failed: %v", err)
			}

			if err := s.DeleteExerciseByID(ctx, ex.ID, user.ID); err != nil {
				t.Fatalf("DeleteExerciseByID failed: %v", err)
			}

			if _, err := s.GetWorkoutByID(ctx, user.ID, w.ID); err != nil {
				t.Errorf("workout should survive exercise delete: %v", err)
			}
			counts, err := s.GetDataCounts(ctx, user.ID)
			if err != nil {
				t.Fatalf("GetDataCounts failed: %v", err)
			}
			if counts.Exercises != 0 || counts.WorkoutExercises != 0 || counts.Sets != 0 {
				t.Errorf("exercise cascade incomplete: %+v", counts)
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

func TestUpdateExercisePartial(t *testing.T) {
	s := newTestStore(t, true)
	ctx := context.Background()
	user := createTestUser(t, s, "u@example.com", "u")
	w := createTestWorkout(t, s, user.ID, "w", "2025-01-15")
	ex, _, err := s.InsertExerciseToWorkout(ctx, ExerciseData{Name: "Run", Category: strPtr("Cardio")}, user.ID, w.ID)
	if err != nil {
		t.Fatalf("InsertExerciseToWorkout failed: %v", err)
	}

	updated, err := s.UpdateExerciseByID(ctx, ex.ID, user.ID, ExercisePatch{Metric: metricPtr(domain.MetricDistance)})
	if err != nil {
		t.Fatalf("UpdateExerciseByID failed: %v", err)
	}
	if updated.Metric == nil || *updated.Metric != domain.MetricDistance {
		t.Errorf("Metric not updated: %v", updated.Metric)
	}
	if updated.Name != "Run" || updated.Category == nil || *updated.Category != "Cardio" {
		t.Errorf("untouched fields changed: %+v", updated)
	}

	if _, err := s.UpdateExerciseByID(ctx, ex.ID, user.ID, ExercisePatch{}); !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Errorf("expected ErrNoFieldsToUpdate, got %v", err)
	}
}

func TestExerciseOwnershipIsolation(t *testing.T) {
	s := newTestStore(t, true)
	ctx := context.Background()
	alice := createTestUser(t, s, "alice@example.com", "alice")
	bob := createTestUser(t, s, "bob@example.com", "bob")
	w := createTestWorkout(t, s, alice.ID, "w", "2025-01-15")
	ex, _, err := s.InsertExerciseToWorkout(ctx, ExerciseData{Name: "Curl"}, alice.ID, w.ID)
	if err != nil {
		t.Fatalf("InsertExerciseToWorkout failed: %v", err)
	}

	if _, err := s.GetExerciseByID(ctx, bob.ID, ex.ID); !errors.Is(err, ErrExerciseNotFound) {
		t.Errorf("cross-user get: expected ErrExerciseNotFound, got %v", err)
	}
	if err := s.DeleteExerciseByID(ctx, ex.ID, bob.ID); !errors.Is(err, ErrExerciseNotFound) {
		t.Errorf("cross-user delete: expected ErrExerciseNotFound, got %v", err)
	}
	// Attaching an exercise to someone else's workout fails the same way as
	// a missing workout.
	if _, _, err := s.InsertExerciseToWorkout(ctx, ExerciseData{Name: "Sneak"}, bob.ID, w.ID); !errors.Is(err, ErrWorkoutNotFound) {
		t.Errorf("cross-user attach: expected ErrWorkoutNotFound, got %v", err)
	}
}
