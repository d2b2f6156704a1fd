package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workoutlog/internal/service"
	"workoutlog/internal/store"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs ---

type CreateWorkoutRequest struct {
	Name  string  `json:"name" binding:"required"`
	Date  string  `json:"date" binding:"required,datetime=2006-01-02"`
	Notes *string `json:"notes"`
}

type UpdateWorkoutRequest struct {
	Name  *string `json:"name"`
	Date  *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Notes *string `json:"notes"`
}

// --- Handler Methods ---

// CreateWorkout logs a new workout for the authenticated user.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), userID, store.WorkoutData{
		Name:  req.Name,
		Date:  req.Date,
		Notes: req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// ListWorkouts lists the user's workouts, newest date first. Supports
// limit/offset paging and inclusive startDate/endDate bounds.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	filter := store.WorkoutFilter{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
	if v := c.Query("limit"); v != "" {
		if filter.Limit, err = strconv.Atoi(v); err != nil {
			abortWithError(c, http.StatusBadRequest, "limit must be an integer")
			return
		}
	}
	if v := c.Query("offset"); v != "" {
		if filter.Offset, err = strconv.Atoi(v); err != nil {
			abortWithError(c, http.StatusBadRequest, "offset must be an integer")
			return
		}
	}

	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// GetWorkout returns one workout owned by the user.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	workout, err := h.workoutService.GetWorkout(c.Request.Context(), userID, c.Param("workoutId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// GetWorkoutOverview returns the workout with its exercises and sets nested
// in performance order.
func (h *WorkoutHandler) GetWorkoutOverview(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	overview, err := h.workoutService.GetWorkoutOverview(c.Request.Context(), userID, c.Param("workoutId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// UpdateWorkout applies a partial update to a workout.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	workout, err := h.workoutService.UpdateWorkout(c.Request.Context(), userID, c.Param("workoutId"), store.WorkoutPatch{
		Name:  req.Name,
		Date:  req.Date,
		Notes: req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout removes a workout and everything recorded under it.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	deleted, err := h.workoutService.DeleteWorkout(c.Request.Context(), userID, c.Param("workoutId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deleted)
}
