package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"workoutlog/internal/domain"
	"workoutlog/internal/service"
	"workoutlog/internal/store"
)

// BiometricsHandler holds the biometrics service dependency.
type BiometricsHandler struct {
	biometricsService service.BiometricsService
}

// NewBiometricsHandler creates a new BiometricsHandler.
func NewBiometricsHandler(biometricsService service.BiometricsService) *BiometricsHandler {
	return &BiometricsHandler{biometricsService: biometricsService}
}

// --- DTOs ---

type CreateBiometricsRequest struct {
	Weight float64      `json:"weight" binding:"required,gt=0"`
	Sex    domain.Sex   `json:"sex" binding:"required,oneof=male female"`
	Height float64      `json:"height" binding:"required,gt=0"`
	Build  domain.Build `json:"build" binding:"required,oneof=slim average athletic muscular heavy"`
}

type UpdateBiometricsRequest struct {
	Weight *float64      `json:"weight" binding:"omitempty,gt=0"`
	Sex    *domain.Sex   `json:"sex" binding:"omitempty,oneof=male female"`
	Height *float64      `json:"height" binding:"omitempty,gt=0"`
	Build  *domain.Build `json:"build" binding:"omitempty,oneof=slim average athletic muscular heavy"`
}

// --- Handler Methods ---

// GetBiometrics returns the user's biometrics, or 404 when none exist yet.
func (h *BiometricsHandler) GetBiometrics(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	biometrics, err := h.biometricsService.GetBiometrics(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if biometrics == nil {
		abortWithError(c, http.StatusNotFound, "No biometrics recorded yet")
		return
	}
	c.JSON(http.StatusOK, biometrics)
}

// CreateBiometrics records the user's biometrics once.
func (h *BiometricsHandler) CreateBiometrics(c *gin.Context) {
	var req CreateBiometricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	biometrics, err := h.biometricsService.CreateBiometrics(c.Request.Context(), userID, store.BiometricsData{
		Weight: req.Weight,
		Sex:    req.Sex,
		Height: req.Height,
		Build:  req.Build,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, biometrics)
}

// UpdateBiometrics applies a partial update; an empty body returns the
// current row unchanged.
func (h *BiometricsHandler) UpdateBiometrics(c *gin.Context) {
	var req UpdateBiometricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	biometrics, err := h.biometricsService.UpdateBiometrics(c.Request.Context(), userID, store.BiometricsPatch{
		Weight: req.Weight,
		Sex:    req.Sex,
		Height: req.Height,
		Build:  req.Build,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, biometrics)
}
