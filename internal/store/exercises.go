package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"workoutlog/internal/domain"
)

// ExerciseData is the validated input for creating an exercise. Notes, when
// present, land on the workout link rather than the exercise itself.
type ExerciseData struct {
	Name     string
	Category *string
	Metric   *domain.Metric
	Notes    *string
}

// ExercisePatch carries the fields of a partial exercise update.
type ExercisePatch struct {
	Name     *string
	Category *string
	Metric   *domain.Metric
}

// DeletedWorkoutExercise identifies a link removed by DeleteExerciseFromWorkout.
type DeletedWorkoutExercise struct {
	ID         string `json:"id"`
	WorkoutID  string `json:"workoutId"`
	ExerciseID string `json:"exerciseId"`
}

// InsertExerciseToWorkout creates a new exercise and links it to the workout
// at the next position, atomically. Fails with WORKOUT_NOT_FOUND when the
// workout is missing or owned by someone else.
func (s *Store) InsertExerciseToWorkout(ctx context.Context, data ExerciseData, userID, workoutID string) (*domain.Exercise, *domain.WorkoutExercise, error) {
	var (
		exercise *domain.Exercise
		link     *domain.WorkoutExercise
	)
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := assertOwned(ctx, tx, "workouts", ErrWorkoutNotFound,
			match{"id", workoutID}, match{"user_id", userID}); err != nil {
			return err
		}

		now := time.Now().UTC()
		ex := &domain.Exercise{
			ID:        uuid.NewString(),
			UserID:    userID,
			Name:      data.Name,
			Category:  data.Category,
			Metric:    data.Metric,
			CreatedAt: now,
		}
		const insertExercise = `
			INSERT INTO exercises (id, user_id, name, category, metric, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`
		if _, err := tx.ExecContext(ctx, insertExercise,
			ex.ID, ex.UserID, ex.Name, ex.Category, ex.Metric, ex.CreatedAt,
		); err != nil {
			if mapped := mapConstraintError(err); mapped != err {
				return mapped
			}
			return fmt.Errorf("insert exercise: %w", err)
		}

		idx, err := nextOrderIndex(ctx, tx, "workout_exercises", "workout_id", workoutID)
		if err != nil {
			return err
		}
		l := &domain.WorkoutExercise{
			ID:         uuid.NewString(),
			WorkoutID:  workoutID,
			ExerciseID: ex.ID,
			OrderIndex: idx,
			Notes:      data.Notes,
			CreatedAt:  now,
		}
		const insertLink = `
			INSERT INTO workout_exercises (id, workout_id, exercise_id, order_index, notes, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`
		if _, err := tx.ExecContext(ctx, insertLink,
			l.ID, l.WorkoutID, l.ExerciseID, l.OrderIndex, l.Notes, l.CreatedAt,
		); err != nil {
			if mapped := mapConstraintError(err); mapped != err {
				return mapped
			}
			return fmt.Errorf("insert workout exercise: %w", err)
		}

		exercise, link = ex, l
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return exercise, link, nil
}

// GetExercisesByWorkoutID lists the exercises attached to a workout in
// performance order, scoped to the owner.
func (s *Store) GetExercisesByWorkoutID(ctx context.Context, userID, workoutID string) ([]domain.Exercise, error) {
	if err := assertOwned(ctx, s.db, "workouts", ErrWorkoutNotFound,
		match{"id", workoutID}, match{"user_id", userID}); err != nil {
		return nil, err
	}

	const query = `
		SELECT e.id, e.user_id, e.name, e.category, e.metric, e.created_at
		FROM workout_exercises we
		JOIN exercises e ON e.id = we.exercise_id
		WHERE we.workout_id = ? AND e.user_id = ?
		ORDER BY we.order_index ASC
	`
	rows, err := s.db.QueryContext(ctx, query, workoutID, userID)
	if err != nil {
		return nil, fmt.Errorf("list workout exercises: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

// GetExercisesByUserID lists the user's whole exercise library,
// newest first.
func (s *Store) GetExercisesByUserID(ctx context.Context, userID string) ([]domain.Exercise, error) {
	const query = `
		SELECT id, user_id, name, category, metric, created_at
		FROM exercises
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

func scanExercises(rows *sql.Rows) ([]domain.Exercise, error) {
	exercises := []domain.Exercise{}
	for rows.Next() {
		var e domain.Exercise
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.Category, &e.Metric, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan exercises: %w", err)
	}
	return exercises, nil
}

// GetExerciseByID retrieves one exercise scoped to its owner.
func (s *Store) GetExerciseByID(ctx context.Context, userID, exerciseID string) (*domain.Exercise, error) {
	const query = `
		SELECT id, user_id, name, category, metric, created_at
		FROM exercises
		WHERE id = ? AND user_id = ?
	`
	e := &domain.Exercise{}
	err := s.db.QueryRowContext(ctx, query, exerciseID, userID).Scan(
		&e.ID, &e.UserID, &e.Name, &e.Category, &e.Metric, &e.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return e, nil
}

// UpdateExerciseByID applies a partial update scoped by id and owner.
func (s *Store) UpdateExerciseByID(ctx context.Context, exerciseID, userID string, patch ExercisePatch) (*domain.Exercise, error) {
	fs := &fieldSet{}
	if patch.Name != nil {
		fs.set("name", *patch.Name)
	}
	if patch.Category != nil {
		fs.set("category", *patch.Category)
	}
	if patch.Metric != nil {
		fs.set("metric", *patch.Metric)
	}
	if fs.empty() {
		return nil, ErrNoFieldsToUpdate
	}

	query := "UPDATE exercises SET " + fs.assignments() + " WHERE id = ? AND user_id = ?"
	args := append(fs.args, exerciseID, userID)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("update exercise: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update exercise: %w", err)
	}
	if affected == 0 {
		return nil, ErrExerciseNotFound
	}
	return s.GetExerciseByID(ctx, userID, exerciseID)
}

// DeleteExerciseByID removes an exercise and every link and set referencing
// it. Workouts the exercise was attached to are left intact.
func (s *Store) DeleteExerciseByID(ctx context.Context, exerciseID, userID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := assertOwned(ctx, tx, "exercises", ErrExerciseNotFound,
			match{"id", exerciseID}, match{"user_id", userID}); err != nil {
			return err
		}
		return deleteExerciseCascade(ctx, tx, exerciseID)
	})
}

// DeleteExerciseFromWorkout removes only the link between a workout and an
// exercise (and the link's sets); the exercise stays in the user's library.
func (s *Store) DeleteExerciseFromWorkout(ctx context.Context, workoutID, exerciseID, userID string) (*DeletedWorkoutExercise, error) {
	var deleted *DeletedWorkoutExercise
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		linkID, err := resolveWorkoutExerciseID(ctx, tx, workoutID, exerciseID, userID)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM sets WHERE workout_exercise_id = ?`, linkID); err != nil {
			return fmt.Errorf("delete link sets: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM workout_exercises WHERE id = ?`, linkID); err != nil {
			return fmt.Errorf("delete workout exercise: %w", err)
		}
		deleted = &DeletedWorkoutExercise{ID: linkID, WorkoutID: workoutID, ExerciseID: exerciseID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
