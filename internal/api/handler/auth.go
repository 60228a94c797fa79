package handler

import (
	"net/http"
	"time"

	"complaintdesk/backend/internal/apperrors"
	"complaintdesk/backend/internal/config"
	"complaintdesk/backend/internal/models"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// generateJWT issues the bearer credential for a staff user. The token
// carries the user id and email and expires after the fixed TTL; there
// is no refresh, expiry forces a new login.
func generateJWT(user *models.User, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(config.TokenTTL).Unix(),
		"iss":     "complaintdesk-service",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Login authenticates a staff user and returns the token, also set as
// a cookie for the dashboard frontend.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperrors.Validation("email and password are required"))
		return
	}

	user, err := h.Storage.GetUserByEmail(req.Email)
	if err != nil {
		writeError(c, apperrors.Store(err, "could not look up user"))
		return
	}
	if user == nil {
		writeError(c, apperrors.Unauthorized("invalid email or password"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		writeError(c, apperrors.Unauthorized("invalid email or password"))
		return
	}

	token, err := generateJWT(user, h.JWTSecret)
	if err != nil {
		h.Logger.Error().Err(err).Msg("token signing failed")
		writeError(c, apperrors.Store(err, "could not create token"))
		return
	}

	c.SetCookie(config.AuthCookie, token, int(config.TokenTTL.Seconds()), "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}
