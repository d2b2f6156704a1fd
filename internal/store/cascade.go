package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Explicit cascade deletion, always run child-first inside the caller's
// transaction. The schema declares ON DELETE CASCADE as well, but SQLite only
// honors it when foreign-key enforcement is on; deleting explicitly keeps the
// no-orphans guarantee identical under both settings (the child deletes are
// no-ops when the declared cascade already fired).

func deleteWorkoutCascade(ctx context.Context, tx *sql.Tx, workoutID string) error {
	statements := []struct {
		desc  string
		query string
	}{
		{"delete workout sets", `
			DELETE FROM sets WHERE workout_exercise_id IN (
				SELECT id FROM workout_exercises WHERE workout_id = ?
			)`},
		{"delete workout exercise links", `DELETE FROM workout_exercises WHERE workout_id = ?`},
		{"delete workout", `DELETE FROM workouts WHERE id = ?`},
	}
	for _, st := range statements {
		if _, err := tx.ExecContext(ctx, st.query, workoutID); err != nil {
			return fmt.Errorf("%s: %w", st.desc, err)
		}
	}
	return nil
}

func deleteExerciseCascade(ctx context.Context, tx *sql.Tx, exerciseID string) error {
	statements := []struct {
		desc  string
		query string
	}{
		{"delete exercise sets", `
			DELETE FROM sets WHERE workout_exercise_id IN (
				SELECT id FROM workout_exercises WHERE exercise_id = ?
			)`},
		{"delete exercise links", `DELETE FROM workout_exercises WHERE exercise_id = ?`},
		{"delete exercise", `DELETE FROM exercises WHERE id = ?`},
	}
	for _, st := range statements {
		if _, err := tx.ExecContext(ctx, st.query, exerciseID); err != nil {
			return fmt.Errorf("%s: %w", st.desc, err)
		}
	}
	return nil
}

func deleteUserCascade(ctx context.Context, tx *sql.Tx, userID string) error {
	statements := []struct {
		desc  string
		query string
	}{
		{"delete user sets", `
			DELETE FROM sets WHERE workout_exercise_id IN (
				SELECT we.id FROM workout_exercises we
				JOIN workouts w ON w.id = we.workout_id
				WHERE w.user_id = ?
			)`},
		{"delete user links", `
			DELETE FROM workout_exercises WHERE workout_id IN (
				SELECT id FROM workouts WHERE user_id = ?
			)`},
		{"delete user workouts", `DELETE FROM workouts WHERE user_id = ?`},
		{"delete user exercises", `DELETE FROM exercises WHERE user_id = ?`},
		{"delete user biometrics", `DELETE FROM user_biometrics WHERE user_id = ?`},
		{"delete user", `DELETE FROM users WHERE id = ?`},
	}
	for _, st := range statements {
		if _, err := tx.ExecContext(ctx, st.query, userID); err != nil {
			return fmt.Errorf("%s: %w", st.desc, err)
		}
	}
	return nil
}
