package service

import (
	"context"

	"workoutlog/internal/domain"
	"workoutlog/internal/store"
)

// ExerciseService manages the user's exercise library. Creation happens
// through WorkoutService (an exercise is always born attached to a workout);
// this service covers the library views and standalone mutations.
type ExerciseService interface {
	ListExercises(ctx context.Context, userID string) ([]domain.Exercise, error)
	GetExercise(ctx context.Context, userID, exerciseID string) (*domain.Exercise, error)
	UpdateExercise(ctx context.Context, userID, exerciseID string, patch store.ExercisePatch) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, userID, exerciseID string) error
}

type exerciseService struct {
	store *store.Store
}

// NewExerciseService creates a new ExerciseService.
func NewExerciseService(st *store.Store) ExerciseService {
	return &exerciseService{store: st}
}

func (s *exerciseService) ListExercises(ctx context.Context, userID string) ([]domain.Exercise, error) {
	return s.store.GetExercisesByUserID(ctx, userID)
}

func (s *exerciseService) GetExercise(ctx context.Context, userID, exerciseID string) (*domain.Exercise, error) {
	return s.store.GetExerciseByID(ctx, userID, exerciseID)
}

func (s *exerciseService) UpdateExercise(ctx context.Context, userID, exerciseID string, patch store.ExercisePatch) (*domain.Exercise, error) {
	return s.store.UpdateExerciseByID(ctx, exerciseID, userID, patch)
}

// DeleteExercise removes the exercise from the library together with every
// workout link and set referencing it. The workouts themselves survive.
func (s *exerciseService) DeleteExercise(ctx context.Context, userID, exerciseID string) error {
	return s.store.DeleteExerciseByID(ctx, exerciseID, userID)
}
