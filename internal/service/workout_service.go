package service

import (
	"context"

	"workoutlog/internal/domain"
	"workoutlog/internal/store"
)

// WorkoutService covers workouts and everything nested beneath them: the
// exercises attached to a workout and the sets recorded against them. The
// store enforces ownership and ordering; this layer validates required input
// and threads the authenticated user id through.
type WorkoutService interface {
	CreateWorkout(ctx context.Context, userID string, data store.WorkoutData) (*domain.Workout, error)
	ListWorkouts(ctx context.Context, userID string, filter store.WorkoutFilter) ([]domain.Workout, error)
	GetWorkout(ctx context.Context, userID, workoutID string) (*domain.Workout, error)
	UpdateWorkout(ctx context.Context, userID, workoutID string, patch store.WorkoutPatch) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, userID, workoutID string) (*store.DeletedWorkout, error)
	GetWorkoutOverview(ctx context.Context, userID, workoutID string) (*domain.WorkoutOverview, error)

	AddExerciseToWorkout(ctx context.Context, userID, workoutID string, data store.ExerciseData) (*domain.Exercise, *domain.WorkoutExercise, error)
	ListWorkoutExercises(ctx context.Context, userID, workoutID string) ([]domain.Exercise, error)
	RemoveExerciseFromWorkout(ctx context.Context, userID, workoutID, exerciseID string) (*store.DeletedWorkoutExercise, error)

	AddSet(ctx context.Context, userID, workoutID, exerciseID string, data store.SetData) (*domain.Set, error)
	ListSets(ctx context.Context, userID, workoutID, exerciseID string) ([]domain.Set, error)
	UpdateSet(ctx context.Context, userID, setID string, patch store.SetPatch) (*domain.Set, error)
	DeleteSet(ctx context.Context, userID, setID string) error
}

type workoutService struct {
	store *store.Store
}

// NewWorkoutService creates a new WorkoutService.
func NewWorkoutService(st *store.Store) WorkoutService {
	return &workoutService{store: st}
}

func (s *workoutService) CreateWorkout(ctx context.Context, userID string, data store.WorkoutData) (*domain.Workout, error) {
	if data.Name == "" || data.Date == "" {
		return nil, ErrValidationFailed
	}
	return s.store.InsertWorkout(ctx, data, userID)
}

func (s *workoutService) ListWorkouts(ctx context.Context, userID string, filter store.WorkoutFilter) ([]domain.Workout, error) {
	return s.store.GetWorkoutsByUserID(ctx, userID, filter)
}

func (s *workoutService) GetWorkout(ctx context.Context, userID, workoutID string) (*domain.Workout, error) {
	return s.store.GetWorkoutByID(ctx, userID, workoutID)
}

func (s *workoutService) UpdateWorkout(ctx context.Context, userID, workoutID string, patch store.WorkoutPatch) (*domain.Workout, error) {
	return s.store.UpdateWorkoutByID(ctx, workoutID, userID, patch)
}

func (s *workoutService) DeleteWorkout(ctx context.Context, userID, workoutID string) (*store.DeletedWorkout, error) {
	return s.store.DeleteWorkoutByID(ctx, workoutID, userID)
}

func (s *workoutService) GetWorkoutOverview(ctx context.Context, userID, workoutID string) (*domain.WorkoutOverview, error) {
	return s.store.GetWorkoutOverviewByWorkoutID(ctx, workoutID, userID)
}

func (s *workoutService) AddExerciseToWorkout(ctx context.Context, userID, workoutID string, data store.ExerciseData) (*domain.Exercise, *domain.WorkoutExercise, error) {
	if data.Name == "" {
		return nil, nil, ErrValidationFailed
	}
	return s.store.InsertExerciseToWorkout(ctx, data, userID, workoutID)
}

func (s *workoutService) ListWorkoutExercises(ctx context.Context, userID, workoutID string) ([]domain.Exercise, error) {
	return s.store.GetExercisesByWorkoutID(ctx, userID, workoutID)
}

func (s *workoutService) RemoveExerciseFromWorkout(ctx context.Context, userID, workoutID, exerciseID string) (*store.DeletedWorkoutExercise, error) {
	return s.store.DeleteExerciseFromWorkout(ctx, workoutID, exerciseID, userID)
}

func (s *workoutService) AddSet(ctx context.Context, userID, workoutID, exerciseID string, data store.SetData) (*domain.Set, error) {
	if data.Reps <= 0 {
		return nil, ErrValidationFailed
	}
	return s.store.InsertSet(ctx, data, userID, workoutID, exerciseID)
}

func (s *workoutService) ListSets(ctx context.Context, userID, workoutID, exerciseID string) ([]domain.Set, error) {
	return s.store.GetAllSetsByExerciseID(ctx, userID, workoutID, exerciseID)
}

func (s *workoutService) UpdateSet(ctx context.Context, userID, setID string, patch store.SetPatch) (*domain.Set, error) {
	return s.store.UpdateSetByID(ctx, setID, userID, patch)
}

func (s *workoutService) DeleteSet(ctx context.Context, userID, setID string) error {
	return s.store.DeleteSetBySetID(ctx, setID, userID)
}
