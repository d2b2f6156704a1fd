package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"workoutlog/internal/service"
	"workoutlog/internal/store"
)

// SetHandler holds the workout service dependency for set routes.
type SetHandler struct {
	workoutService service.WorkoutService
}

// NewSetHandler creates a new SetHandler.
func NewSetHandler(workoutService service.WorkoutService) *SetHandler {
	return &SetHandler{workoutService: workoutService}
}

// --- DTOs ---

type AddSetRequest struct {
	Reps     int      `json:"reps" binding:"required,gt=0"`
	Weight   *float64 `json:"weight"`
	Duration *float64 `json:"duration"`
	Distance *float64 `json:"distance"`
	Notes    *string  `json:"notes"`
}

type UpdateSetRequest struct {
	Reps     *int     `json:"reps" binding:"omitempty,gt=0"`
	Weight   *float64 `json:"weight"`
	Duration *float64 `json:"duration"`
	Distance *float64 `json:"distance"`
	Notes    *string  `json:"notes"`
}

// --- Handler Methods ---

// AddSet records a set for an exercise within a workout.
func (h *SetHandler) AddSet(c *gin.Context) {
	var req AddSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	set, err := h.workoutService.AddSet(c.Request.Context(), userID, c.Param("workoutId"), c.Param("exerciseId"), store.SetData{
		Reps:     req.Reps,
		Weight:   req.Weight,
		Duration: req.Duration,
		Distance: req.Distance,
		Notes:    req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, set)
}

// ListSets lists the sets recorded for an exercise within a workout.
func (h *SetHandler) ListSets(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	sets, err := h.workoutService.ListSets(c.Request.Context(), userID, c.Param("workoutId"), c.Param("exerciseId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sets)
}

// UpdateSet applies a partial update to a set.
func (h *SetHandler) UpdateSet(c *gin.Context) {
	var req UpdateSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	set, err := h.workoutService.UpdateSet(c.Request.Context(), userID, c.Param("setId"), store.SetPatch{
		Reps:     req.Reps,
		Weight:   req.Weight,
		Duration: req.Duration,
		Distance: req.Distance,
		Notes:    req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, set)
}

// DeleteSet removes a set.
func (h *SetHandler) DeleteSet(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	if err := h.workoutService.DeleteSet(c.Request.Context(), userID, c.Param("setId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
