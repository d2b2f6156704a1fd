package store

import (
	"context"
	"fmt"
)

// DataCounts is a per-user tally across the four related tables, used to
// verify cascade completeness. Exercises counts the distinct exercises
// appearing in the user's workouts, not the whole library, so a fully
// cascaded workout delete brings every number to zero.
type DataCounts struct {
	Workouts         int `json:"workouts"`
	Exercises        int `json:"exercises"`
	WorkoutExercises int `json:"workoutExercises"`
	Sets             int `json:"sets"`
}

// OrphanCounts tallies child rows whose parent no longer exists. Any
// non-zero value means a delete left referential integrity broken.
type OrphanCounts struct {
	WorkoutExercises int `json:"workoutExercises"`
	Sets             int `json:"sets"`
}

// GetDataCounts counts everything the user owns, links and sets included.
func (s *Store) GetDataCounts(ctx context.Context, userID string) (*DataCounts, error) {
	counts := &DataCounts{}
	queries := []struct {
		dst   *int
		query string
	}{
		{&counts.Workouts, `SELECT COUNT(*) FROM workouts WHERE user_id = ?`},
		{&counts.Exercises, `
			SELECT COUNT(DISTINCT we.exercise_id) FROM workout_exercises we
			JOIN workouts w ON w.id = we.workout_id WHERE w.user_id = ?`},
		{&counts.WorkoutExercises, `
			SELECT COUNT(*) FROM workout_exercises we
			JOIN workouts w ON w.id = we.workout_id
			WHERE w.user_id = ?`},
		{&counts.Sets, `
			SELECT COUNT(*) FROM sets st
			JOIN workout_exercises we ON we.id = st.workout_exercise_id
			JOIN workouts w ON w.id = we.workout_id
			WHERE w.user_id = ?`},
	}
	for _, q := range queries {
		if err := s.db.QueryRowContext(ctx, q.query, userID).Scan(q.dst); err != nil {
			return nil, fmt.Errorf("data counts: %w", err)
		}
	}
	return counts, nil
}

// GetOrphanedData scans for links pointing at missing workouts or exercises
// and sets pointing at missing links.
func (s *Store) GetOrphanedData(ctx context.Context) (*OrphanCounts, error) {
	orphans := &OrphanCounts{}

	const orphanLinks = `
		SELECT COUNT(*) FROM workout_exercises we
		WHERE NOT EXISTS (SELECT 1 FROM workouts w WHERE w.id = we.workout_id)
		   OR NOT EXISTS (SELECT 1 FROM exercises e WHERE e.id = we.exercise_id)
	`
	if err := s.db.QueryRowContext(ctx, orphanLinks).Scan(&orphans.WorkoutExercises); err != nil {
		return nil, fmt.Errorf("orphan scan: %w", err)
	}

	const orphanSets = `
		SELECT COUNT(*) FROM sets st
		WHERE NOT EXISTS (SELECT 1 FROM workout_exercises we WHERE we.id = st.workout_exercise_id)
	`
	if err := s.db.QueryRowContext(ctx, orphanSets).Scan(&orphans.Sets); err != nil {
		return nil, fmt.Errorf("orphan scan: %w", err)
	}
	return orphans, nil
}
