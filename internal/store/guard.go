package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// match is one column/value pair of an ownership criteria.
type match struct {
	column string
	value  any
}

// assertOwned verifies that a row matching every criterion exists in table,
// failing with notFound otherwise. Criteria are typically {id, user_id}, so
// a row owned by a different user is indistinguishable from a missing one.
func assertOwned(ctx context.Context, q querier, table string, notFound *Error, criteria ...match) error {
	clauses := make([]string, len(criteria))
	args := make([]any, len(criteria))
	for i, c := range criteria {
		clauses[i] = c.column + " = ?"
		args[i] = c.value
	}
	query := fmt.Sprintf("SELECT 1 FROM %s WHERE %s LIMIT 1", table, strings.Join(clauses, " AND "))

	var one int
	err := q.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	if err != nil {
		return fmt.Errorf("ownership check on %s: %w", table, err)
	}
	return nil
}

// resolveWorkoutExerciseID resolves the link row joining workoutID and
// exerciseID, reaching back to the workout's owner for scoping. This is the
// multi-hop ownership resolver used by every set operation.
func resolveWorkoutExerciseID(ctx context.Context, q querier, workoutID, exerciseID, userID string) (string, error) {
	const query = `
		SELECT we.id
		FROM workout_exercises we
		JOIN workouts w ON w.id = we.workout_id
		WHERE we.workout_id = ? AND we.exercise_id = ? AND w.user_id = ?
	`
	var linkID string
	err := q.QueryRowContext(ctx, query, workoutID, exerciseID, userID).Scan(&linkID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrWorkoutExerciseNotFound
	}
	if err != nil {
		return "", fmt.Errorf("resolve workout exercise: %w", err)
	}
	return linkID, nil
}

// setOwnershipClause scopes a sets statement to the given user by walking
// Set -> WorkoutExercise -> Workout. Append its argument (the user id) after
// the statement's own arguments.
const setOwnershipClause = `workout_exercise_id IN (
	SELECT we.id FROM workout_exercises we
	JOIN workouts w ON w.id = we.workout_id
	WHERE w.user_id = ?
)`
