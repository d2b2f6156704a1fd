package domain

import "time"

// Workout represents a single logged training session on a calendar date.
type Workout struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"` // Ownership scoping only, not part of the API shape
	Name      string    `json:"name"`
	Notes     *string   `json:"notes,omitempty"`
	Date      string    `json:"date"` // Calendar date, "2006-01-02"
	CreatedAt time.Time `json:"createdAt"`
}

// WorkoutExercise links an exercise to a workout at a given position.
// OrderIndex is 1-based within the workout; gaps after deletion are fine.
type WorkoutExercise struct {
	ID         string    `json:"id"`
	WorkoutID  string    `json:"workoutId"`
	ExerciseID string    `json:"exerciseId"`
	OrderIndex int       `json:"orderIndex"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// WorkoutOverview is the full aggregate view of one workout: its exercises
// in performance order, each carrying its sets in order.
type WorkoutOverview struct {
	Workout   Workout            `json:"workout"`
	Exercises []OverviewExercise `json:"exercises"`
}

// OverviewExercise is one exercise instance inside a WorkoutOverview.
// Sets is never nil; an exercise with no sets yet carries an empty list.
type OverviewExercise struct {
	LinkID     string  `json:"workoutExerciseId"`
	ExerciseID string  `json:"exerciseId"`
	Name       string  `json:"name"`
	Category   *string `json:"category,omitempty"`
	Metric     *Metric `json:"metric,omitempty"`
	OrderIndex int     `json:"orderIndex"`
	Notes      *string `json:"notes,omitempty"`
	Sets       []Set   `json:"sets"`
}
