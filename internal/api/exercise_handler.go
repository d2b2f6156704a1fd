package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"workoutlog/internal/domain"
	"workoutlog/internal/service"
	"workoutlog/internal/store"
)

// ExerciseHandler covers both the workout-nested exercise routes and the
// standalone exercise library routes.
type ExerciseHandler struct {
	workoutService  service.WorkoutService
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(workoutService service.WorkoutService, exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{workoutService: workoutService, exerciseService: exerciseService}
}

// --- DTOs ---

type AddExerciseRequest struct {
	Name     string         `json:"name" binding:"required"`
	Category *string        `json:"category"`
	Metric   *domain.Metric `json:"metric" binding:"omitempty,oneof=weight duration distance"`
	Notes    *string        `json:"notes"`
}

type UpdateExerciseRequest struct {
	Name     *string        `json:"name"`
	Category *string        `json:"category"`
	Metric   *domain.Metric `json:"metric" binding:"omitempty,oneof=weight duration distance"`
}

// AddExerciseResponse returns both rows created by the two-step insert.
type AddExerciseResponse struct {
	Exercise        domain.Exercise        `json:"exercise"`
	WorkoutExercise domain.WorkoutExercise `json:"workoutExercise"`
}

// --- Handler Methods ---

// AddExerciseToWorkout creates an exercise and attaches it to the workout at
// the next position.
func (h *ExerciseHandler) AddExerciseToWorkout(c *gin.Context) {
	var req AddExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	exercise, link, err := h.workoutService.AddExerciseToWorkout(c.Request.Context(), userID, c.Param("workoutId"), store.ExerciseData{
		Name:     req.Name,
		Category: req.Category,
		Metric:   req.Metric,
		Notes:    req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, AddExerciseResponse{Exercise: *exercise, WorkoutExercise: *link})
}

// ListWorkoutExercises lists the exercises of one workout in order.
func (h *ExerciseHandler) ListWorkoutExercises(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	exercises, err := h.workoutService.ListWorkoutExercises(c.Request.Context(), userID, c.Param("workoutId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// RemoveExerciseFromWorkout detaches an exercise from a workout. The
// exercise itself stays in the library.
func (h *ExerciseHandler) RemoveExerciseFromWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	deleted, err := h.workoutService.RemoveExerciseFromWorkout(c.Request.Context(), userID, c.Param("workoutId"), c.Param("exerciseId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}

// ListExercises returns the user's exercise library.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	exercises, err := h.exerciseService.ListExercises(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

// UpdateExercise applies a partial update to a library exercise.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	var req UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	exercise, err := h.exerciseService.UpdateExercise(c.Request.Context(), userID, c.Param("exerciseId"), store.ExercisePatch{
		Name:     req.Name,
		Category: req.Category,
		Metric:   req.Metric,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// DeleteExercise removes a library exercise and all its workout appearances.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	if err := h.exerciseService.DeleteExercise(c.Request.Context(), userID, c.Param("exerciseId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
