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

// WorkoutData is the validated input for creating a workout.
type WorkoutData struct {
	Name  string
	Date  string
	Notes *string
}

// WorkoutPatch carries the fields of a partial workout update; nil fields
// are left untouched.
type WorkoutPatch struct {
	Name  *string
	Date  *string
	Notes *string
}

// WorkoutFilter narrows and pages a workout listing. StartDate and EndDate
// are inclusive bounds on the date column; empty means unbounded.
type WorkoutFilter struct {
	Limit     int
	Offset    int
	StartDate string
	EndDate   string
}

// DeletedWorkout identifies a workout removed by DeleteWorkoutByID.
type DeletedWorkout struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// InsertWorkout creates a workout owned by userID and returns the stored row.
func (s *Store) InsertWorkout(ctx context.Context, data WorkoutData, userID string) (*domain.Workout, error) {
	workout := &domain.Workout{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      data.Name,
		Notes:     data.Notes,
		Date:      data.Date,
		CreatedAt: time.Now().UTC(),
	}

	const query = `
		INSERT INTO workouts (id, user_id, name, notes, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		workout.ID, workout.UserID, workout.Name, workout.Notes, workout.Date, workout.CreatedAt,
	)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("insert workout: %w", err)
	}
	return workout, nil
}

// GetWorkoutsByUserID lists the user's workouts ordered by date descending.
// Returns an empty slice, never nil, when nothing matches.
func (s *Store) GetWorkoutsByUserID(ctx context.Context, userID string, filter WorkoutFilter) ([]domain.Workout, error) {
	query := `
		SELECT id, user_id, name, notes, date, created_at
		FROM workouts
		WHERE user_id = ?
	`
	args := []any{userID}

	if filter.StartDate != "" {
		query += " AND date >= ?"
		args = append(args, filter.StartDate)
	}
	if filter.EndDate != "" {
		query += " AND date <= ?"
		args = append(args, filter.EndDate)
	}
	query += " ORDER BY date DESC"
	if filter.Limit > 0 || filter.Offset > 0 {
		limit := filter.Limit
		if limit <= 0 {
			limit = -1 // SQLite: no limit, OFFSET still applies
		}
		query += " LIMIT ?"
		args = append(args, limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	workouts := []domain.Workout{}
	for rows.Next() {
		var w domain.Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, &w.Notes, &w.Date, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

// GetWorkoutByID retrieves one workout scoped to its owner.
func (s *Store) GetWorkoutByID(ctx context.Context, userID, workoutID string) (*domain.Workout, error) {
	return getWorkout(ctx, s.db, userID, workoutID)
}

func getWorkout(ctx context.Context, q querier, userID, workoutID string) (*domain.Workout, error) {
	const query = `
		SELECT id, user_id, name, notes, date, created_at
		FROM workouts
		WHERE id = ? AND user_id = ?
	`
	w := &domain.Workout{}
	err := q.QueryRowContext(ctx, query, workoutID, userID).Scan(
		&w.ID, &w.UserID, &w.Name, &w.Notes, &w.Date, &w.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get workout: %w", err)
	}
	return w, nil
}

// UpdateWorkoutByID applies a partial update scoped by id and owner, and
// returns the updated row. An empty patch fails with NO_FIELDS_TO_UPDATE.
func (s *Store) UpdateWorkoutByID(ctx context.Context, workoutID, userID string, patch WorkoutPatch) (*domain.Workout, error) {
	fs := &fieldSet{}
	if patch.Name != nil {
		fs.set("name", *patch.Name)
	}
	if patch.Date != nil {
		fs.set("date", *patch.Date)
	}
	if patch.Notes != nil {
		fs.set("notes", *patch.Notes)
	}
	if fs.empty() {
		return nil, ErrNoFieldsToUpdate
	}

	query := "UPDATE workouts SET " + fs.assignments() + " WHERE id = ? AND user_id = ?"
	args := append(fs.args, workoutID, userID)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("update workout: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update workout: %w", err)
	}
	if affected == 0 {
		return nil, ErrWorkoutNotFound
	}
	return s.GetWorkoutByID(ctx, userID, workoutID)
}

// DeleteWorkoutByID removes a workout and every dependent link and set in a
// single transaction, returning the deleted row's id and name.
func (s *Store) DeleteWorkoutByID(ctx context.Context, workoutID, userID string) (*DeletedWorkout, error) {
	var deleted *DeletedWorkout
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		w, err := getWorkout(ctx, tx, userID, workoutID)
		if err != nil {
			return err
		}
		if err := deleteWorkoutCascade(ctx, tx, workoutID); err != nil {
			return err
		}
		deleted = &DeletedWorkout{ID: w.ID, Name: w.Name}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
