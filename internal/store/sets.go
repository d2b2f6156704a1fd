package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"workoutlog/internal/domain"
)

// SetData is the validated input for recording a set.
type SetData struct {
	Reps     int
	Weight   *float64
	Duration *float64
	Distance *float64
	Notes    *string
}

// SetPatch carries the fields of a partial set update.
type SetPatch struct {
	Reps     *int
	Weight   *float64
	Duration *float64
	Distance *float64
	Notes    *string
}

// InsertSet records a set against the link between workoutID and exerciseID,
// at the next position for that link. Fails with WORKOUT_EXERCISE_NOT_FOUND
// when the exercise is not part of a workout owned by userID.
func (s *Store) InsertSet(ctx context.Context, data SetData, userID, workoutID, exerciseID string) (*domain.Set, error) {
	var set *domain.Set
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		linkID, err := resolveWorkoutExerciseID(ctx, tx, workoutID, exerciseID, userID)
		if err != nil {
			return err
		}
		idx, err := nextOrderIndex(ctx, tx, "sets", "workout_exercise_id", linkID)
		if err != nil {
			return err
		}

		st := &domain.Set{
			ID:                uuid.NewString(),
			WorkoutExerciseID: linkID,
			Reps:              data.Reps,
			Weight:            data.Weight,
			Duration:          data.Duration,
			Distance:          data.Distance,
			Notes:             data.Notes,
			OrderIndex:        idx,
			CreatedAt:         time.Now().UTC(),
		}
		const query = `
			INSERT INTO sets (id, workout_exercise_id, reps, weight, duration, distance, notes, order_index, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`
		if _, err := tx.ExecContext(ctx, query,
			st.ID, st.WorkoutExerciseID, st.Reps, st.Weight, st.Duration, st.Distance, st.Notes, st.OrderIndex, st.CreatedAt,
		); err != nil {
			if mapped := mapConstraintError(err); mapped != err {
				return mapped
			}
			return fmt.Errorf("insert set: %w", err)
		}
		set = st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// GetAllSetsByExerciseID lists the sets recorded for an exercise within a
// workout, in order. Workout, exercise and link are each ownership-checked
// so the caller can tell which part of the chain is missing.
func (s *Store) GetAllSetsByExerciseID(ctx context.Context, userID, workoutID, exerciseID string) ([]domain.Set, error) {
	if err := assertOwned(ctx, s.db, "workouts", ErrWorkoutNotFound,
		match{"id", workoutID}, match{"user_id", userID}); err != nil {
		return nil, err
	}
	if err := assertOwned(ctx, s.db, "exercises", ErrExerciseNotFound,
		match{"id", exerciseID}, match{"user_id", userID}); err != nil {
		return nil, err
	}
	linkID, err := resolveWorkoutExerciseID(ctx, s.db, workoutID, exerciseID, userID)
	if err != nil {
		return nil, err
	}

	const query = `
		SELECT id, workout_exercise_id, reps, weight, duration, distance, notes, order_index, created_at
		FROM sets
		WHERE workout_exercise_id = ?
		ORDER BY order_index ASC
	`
	rows, err := s.db.QueryContext(ctx, query, linkID)
	if err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	defer rows.Close()

	sets := []domain.Set{}
	for rows.Next() {
		var st domain.Set
		if err := rows.Scan(
			&st.ID, &st.WorkoutExerciseID, &st.Reps, &st.Weight, &st.Duration, &st.Distance,
			&st.Notes, &st.OrderIndex, &st.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan set: %w", err)
		}
		sets = append(sets, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sets: %w", err)
	}
	return sets, nil
}

// UpdateSetByID applies a partial update to a set. Ownership is resolved by
// walking Set -> WorkoutExercise -> Workout back to the user.
func (s *Store) UpdateSetByID(ctx context.Context, setID, userID string, patch SetPatch) (*domain.Set, error) {
	fs := &fieldSet{}
	if patch.Reps != nil {
		fs.set("reps", *patch.Reps)
	}
	if patch.Weight != nil {
		fs.set("weight", *patch.Weight)
	}
	if patch.Duration != nil {
		fs.set("duration", *patch.Duration)
	}
	if patch.Distance != nil {
		fs.set("distance", *patch.Distance)
	}
	if patch.Notes != nil {
		fs.set("notes", *patch.Notes)
	}
	if fs.empty() {
		return nil, ErrNoFieldsToUpdate
	}

	query := "UPDATE sets SET " + fs.assignments() + " WHERE id = ? AND " + setOwnershipClause
	args := append(fs.args, setID, userID)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("update set: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update set: %w", err)
	}
	if affected == 0 {
		return nil, ErrSetNotFound
	}

	const selectQuery = `
		SELECT id, workout_exercise_id, reps, weight, duration, distance, notes, order_index, created_at
		FROM sets
		WHERE id = ?
	`
	st := &domain.Set{}
	if err := s.db.QueryRowContext(ctx, selectQuery, setID).Scan(
		&st.ID, &st.WorkoutExerciseID, &st.Reps, &st.Weight, &st.Duration, &st.Distance,
		&st.Notes, &st.OrderIndex, &st.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("get updated set: %w", err)
	}
	return st, nil
}

// DeleteSetBySetID removes one set, scoped to the owning user via the same
// multi-hop chain as UpdateSetByID.
func (s *Store) DeleteSetBySetID(ctx context.Context, setID, userID string) error {
	query := "DELETE FROM sets WHERE id = ? AND " + setOwnershipClause
	res, err := s.db.ExecContext(ctx, query, setID, userID)
	if err != nil {
		return fmt.Errorf("delete set: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete set: %w", err)
	}
	if affected == 0 {
		return ErrSetNotFound
	}
	return nil
}
