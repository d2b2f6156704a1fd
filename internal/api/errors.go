package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"workoutlog/internal/service"
	"workoutlog/internal/store"
)

// respondError maps a service/store failure to an HTTP response. Coded store
// errors carry their code alongside the message so clients can branch on it.
func respondError(c *gin.Context, err error) {
	var coded *store.Error
	if errors.As(err, &coded) {
		c.AbortWithStatusJSON(statusForCode(coded.Code), gin.H{
			"error": coded.Message,
			"code":  coded.Code,
		})
		return
	}

	if errors.Is(err, service.ErrValidationFailed) {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
}

func statusForCode(code string) int {
	switch {
	case strings.HasSuffix(code, "_NOT_FOUND"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "_ALREADY_EXISTS"), code == "UNIQUE_CONSTRAINT_VIOLATION":
		return http.StatusConflict
	case code == "NO_FIELDS_TO_UPDATE", code == "NOT_NULL_CONSTRAINT":
		return http.StatusBadRequest
	case code == "INVALID_CREDENTIALS":
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
