package domain

import "time"

// Metric identifies which measurement an exercise records per set.
type Metric string

const (
	MetricWeight   Metric = "weight"
	MetricDuration Metric = "duration"
	MetricDistance Metric = "distance"
)

// Exercise is a named movement owned by a user. It lives in the user's
// library and can be attached to any number of workouts via WorkoutExercise.
type Exercise struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	Category  *string   `json:"category,omitempty"`
	Metric    *Metric   `json:"metric,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Set is one recorded performance instance of an exercise within a workout.
// Exactly which metric field is populated depends on the exercise's metric.
type Set struct {
	ID                string    `json:"id"`
	WorkoutExerciseID string    `json:"workoutExerciseId"`
	Reps              int       `json:"reps"`
	Weight            *float64  `json:"weight,omitempty"`
	Duration          *float64  `json:"duration,omitempty"`
	Distance          *float64  `json:"distance,omitempty"`
	Notes             *string   `json:"notes,omitempty"`
	OrderIndex        int       `json:"orderIndex"`
	CreatedAt         time.Time `json:"createdAt"`
}
