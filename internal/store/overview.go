package store

import (
	"context"
	"database/sql"
	"fmt"

	"workoutlog/internal/domain"
)

// GetWorkoutOverviewByWorkoutID composes the full aggregate view of one
// workout: the workout row plus its exercises in performance order, each
// carrying its sets in order. Exercises with no sets yet appear with an
// empty sets list (LEFT JOIN).
func (s *Store) GetWorkoutOverviewByWorkoutID(ctx context.Context, workoutID, userID string) (*domain.WorkoutOverview, error) {
	workout, err := getWorkout(ctx, s.db, userID, workoutID)
	if err != nil {
		return nil, err
	}

	const query = `
		SELECT
			we.id, we.order_index, we.notes,
			e.id, e.name, e.category, e.metric,
			s.id, s.reps, s.weight, s.duration, s.distance, s.notes, s.order_index, s.created_at
		FROM workout_exercises we
		JOIN exercises e ON e.id = we.exercise_id
		LEFT JOIN sets s ON s.workout_exercise_id = we.id
		WHERE we.workout_id = ?
		ORDER BY we.order_index ASC, s.order_index ASC
	`
	rows, err := s.db.QueryContext(ctx, query, workoutID)
	if err != nil {
		return nil, fmt.Errorf("workout overview: %w", err)
	}
	defer rows.Close()

	overview := &domain.WorkoutOverview{
		Workout:   *workout,
		Exercises: []domain.OverviewExercise{},
	}
	// Rows arrive grouped by link because of the ORDER BY; index by link id
	// to fold the set rows under their exercise.
	byLink := map[string]int{}

	for rows.Next() {
		var (
			ex  domain.OverviewExercise
			set domain.Set

			// LEFT JOIN: every set column may be NULL.
			setID      sql.NullString
			setReps    sql.NullInt64
			setOrder   sql.NullInt64
			setCreated sql.NullTime
		)
		if err := rows.Scan(
			&ex.LinkID, &ex.OrderIndex, &ex.Notes,
			&ex.ExerciseID, &ex.Name, &ex.Category, &ex.Metric,
			&setID, &setReps, &set.Weight, &set.Duration, &set.Distance, &set.Notes, &setOrder, &setCreated,
		); err != nil {
			return nil, fmt.Errorf("scan overview row: %w", err)
		}

		idx, seen := byLink[ex.LinkID]
		if !seen {
			ex.Sets = []domain.Set{}
			overview.Exercises = append(overview.Exercises, ex)
			idx = len(overview.Exercises) - 1
			byLink[ex.LinkID] = idx
		}

		if setID.Valid {
			set.ID = setID.String
			set.WorkoutExerciseID = ex.LinkID
			set.Reps = int(setReps.Int64)
			set.OrderIndex = int(setOrder.Int64)
			set.CreatedAt = setCreated.Time
			overview.Exercises[idx].Sets = append(overview.Exercises[idx].Sets, set)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workout overview: %w", err)
	}
	return overview, nil
}
