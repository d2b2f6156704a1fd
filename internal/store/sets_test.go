package store

import (
	"context"
	"errors"
	"testing"
)

func TestInsertSetOrderMonotonic(t *testing.T) {
	s := newTestStore(t, true)
	ctx := context.Background()
	user := createTestUser(t, s, "u@example.com", "u")
	w := createTestWorkout(t, s, user.ID, "w", "2025-01-15")
	ex, _, err := s.InsertExerciseToWorkout(ctx, ExerciseData{Name: "Bench"}, user.ID, w.ID)
	if err != nil {
		t.Fatalf("InsertExerciseToWorkout failed: %v", err)
	}

	const k = 5
	for i := 1; i <= k; i++ {
		set, err := s.InsertSet(ctx, SetData{Reps: 8, Weight: floatPtr(60)}, user.ID, w.ID, ex.ID)
		if err != nil {
			t.Fatalf("InsertSet %d failed: %v", i, err)
		}
		if set.OrderIndex != i {
			t.Errorf("set %d: order_index = %d", i, set.OrderIndex)
		}
	}

	sets, err := s.GetAllSetsByExerciseID(ctx, user.ID, w.ID, ex.ID)
	if err != nil {
		t.Fatalf("GetAllSetsByExerciseID failed: %v", err)
	}
	if len(sets) != k {
		t.Fatalf("expected %d sets, got %d", k, len(sets))
	}
	for i, set := range sets {
		if set.OrderIndex != i+1 {
			t.Errorf("position %d has order_index %d", i, set.OrderIndex)
		}
	}
}

// Deleting a set leaves a gap; later inserts continue past the old maximum
// rather than filling it.
func TestOrderIndexGapAfterDelete(t *testing.T) {
	s := newTestStore(t, true)
	ctx := context.Background()
	user := createTestUser(t, s, "u@example.com", "u")
	w := createTestWorkout(t, s, user.ID, "w", "2025-01-15")
	ex, _, err := s.InsertExerciseToWorkout(ctx, ExerciseData{Name: "Bench"}, user.ID, w.ID)
	if err != nil {
		t.Fatalf("InsertExerciseToWorkout failed: %v", err)
	}

	var ids []string
	for i := 0; i < 3; i++ {
		set, err := s.InsertSet(ctx, SetData{Reps: 8}, user.ID, w.ID, ex.ID)
		if err != nil {
			t.Fatalf("InsertSet failed: %v", err)
		}
		ids = append(ids, set.ID)
	}
	if err := s.DeleteSetBySetID(ctx, ids[1], user.ID); err != nil {
		t.Fatalf("DeleteSetBySetID failed: %v", err)
	}

	next, err := s.InsertSet(ctx, SetData{Reps: 8}, user.ID, w.ID, ex.ID)
	if err != nil {
		t.Fatalf("InsertSet after delete failed: %v", err)
	}
	if next.OrderIndex != 4 {
		t.Errorf("expected order_index 4 after gap, got %d", next.OrderIndex)
	}
}

func TestInsertSetMissingLink(t *testing.T) {
	s := newTestStore(t, true)
	ctx := context.Background()
	user := createTestUser(t, s, "u@example.com", "u")
	w := createTestWorkout(t, s, user.ID, "w", "2025-01-15")

	// Exercise exists but is attached to a different workout.
	other := createTestWorkout(t, s, user.ID, "other", "2025-01-16")
	ex, _, err := s.InsertExerciseToWorkout(ctx, ExerciseData{Name: "Bench"}, user.ID, other.ID)
	if err != nil {
		t.Fatalf("InsertExerciseToWorkout failed: %v", err)
	}

	if _, err := s.InsertSet(ctx, SetData{Reps: 8}, user.ID, w.ID, ex.ID); !errors.Is(err, ErrWorkoutExerciseNotFound) {
		t.Fatalf("expected ErrWorkoutExerciseNotFound, got %v", err)
	}
}

func TestUpdateSetPartial(t *testing.T) {
	s := newTestStore(t, true)
	ctx := context.Background()
	user := createTestUser(t, s, "u@example.com", "u")
	w := createTestWorkout(t, s, user.ID, "w", "2025-01-15")
	ex, _, err := s.InsertExerciseToWorkout(ctx, ExerciseData{Name: "Bench"}, user.ID, w.ID)
	if err != nil {
		t.Fatalf("InsertExerciseToWorkout failed: %v", err)
	}
	set, err := s.InsertSet(ctx, SetData{Reps: 8, Weight: floatPtr(60), Notes: strPtr("warmup")}, user.ID, w.ID, ex.ID)
	if err != nil {
		t.Fatalf("InsertSet failed: %v", err)
	}

	updated, err := s.UpdateSetByID(ctx, set.ID, user.ID, SetPatch{Reps: intPtr(10)})
	if err != nil {
		t.Fatalf("UpdateSetByID failed: %v", err)
	}
	if updated.Reps != 10 {
		t.Errorf("Reps not updated: %d", updated.Reps)
	}
	if updated.Weight == nil || *updated.Weight != 60 {
		t.Errorf("Weight changed: %v", updated.Weight)
	}
	if updated.Notes == nil || *updated.Notes != "warmup" {
		t.Errorf("Notes changed: %v", updated.Notes)
	}
	if updated.OrderIndex != set.OrderIndex {
		t.Errorf("OrderIndex changed: %d", updated.OrderIndex)
	}

	if _, err := s.UpdateSetByID(ctx, set.ID, user.ID, SetPatch{}); !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Errorf("expected ErrNoFieldsToUpdate, got %v", err)
	}
}

func TestSetOwnershipIsolation(t *testing.T) {
	s := newTestStore(t, true)
	ctx := context.Background()
	alice := createTestUser(t, s, "alice@example.com", "alice")
	bob := createTestUser(t, s, "bob@example.com", "bob")
	w := createTestWorkout(t, s, alice.ID, "w", "2025-01-15")
	ex, _, err := s.InsertExerciseToWorkout(ctx, ExerciseData{Name: "Bench"}, alice.ID, w.ID)
	if err != nil {
		t.Fatalf("InsertExerciseToWorkout failed: %v", err)
	}
	set, err := s.InsertSet(ctx, SetData{Reps: 8}, alice.ID, w.ID, ex.ID)
	if err != nil {
		t.Fatalf("InsertSet failed: %v", err)
	}

	if _, err := s.UpdateSetByID(ctx, set.ID, bob.ID, SetPatch{Reps: intPtr(1)}); !errors.Is(err, ErrSetNotFound) {
		t.Errorf("cross-user update: expected ErrSetNotFound, got %v", err)
	}
	if err := s.DeleteSetBySetID(ctx, set.ID, bob.ID); !errors.Is(err, ErrSetNotFound) {
		t.Errorf("cross-user delete: expected ErrSetNotFound, got %v", err)
	}
	if _, err := s.GetAllSetsByExerciseID(ctx, bob.ID, w.ID, ex.ID); !errors.Is(err, ErrWorkoutNotFound) {
		t.Errorf("cross-user list: expected ErrWorkoutNotFound, got %v", err)
	}

	sets, err := s.GetAllSetsByExerciseID(ctx, alice.ID, w.ID, ex.ID)
	if err != nil {
		t.Fatalf("owner list failed: %v", err)
	}
	if len(sets) != 1 || sets[0].Reps != 8 {
		t.Errorf("set was modified: %+v", sets)
	}
}
