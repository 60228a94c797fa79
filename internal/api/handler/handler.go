package handler

import (
	"errors"
	"net/http"

	"complaintdesk/backend/internal/apperrors"
	"complaintdesk/backend/internal/complaint"
	"complaintdesk/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler holds the dependencies of the HTTP handlers.
type Handler struct {
	Complaints *complaint.Service
	Storage    storage.Storage
	Logger     zerolog.Logger
	JWTSecret  string
}

func NewHandler(complaints *complaint.Service, s storage.Storage, logger zerolog.Logger, jwtSecret string) *Handler {
	return &Handler{
		Complaints: complaints,
		Storage:    s,
		Logger:     logger,
		JWTSecret:  jwtSecret,
	}
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// writeError maps a service failure onto the JSON error envelope.
func writeError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"code": "INTERNAL", "message": "internal error"},
		})
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Kind {
	case apperrors.KindValidation:
		status = http.StatusBadRequest
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindUnauthorized:
		status = http.StatusUnauthorized
	case apperrors.KindRateLimited:
		status = http.StatusTooManyRequests
	}

	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    string(appErr.Kind),
			"message": appErr.Message,
		},
	})
}
