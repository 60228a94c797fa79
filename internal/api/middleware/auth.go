package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"complaintdesk/backend/internal/config"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
)

const principalKey = "principal"

// Principal is the authenticated staff identity extracted from a token.
type Principal struct {
	UserID uint
	Email  string
}

// RequireAuth gates a route group behind a valid bearer credential. The
// token is taken from the auth cookie first, then from the
// Authorization header. Anything invalid or expired gets a 401.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := tokenFromRequest(c)
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}

		principal, err := verifyToken(token, secret)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// PrincipalFrom returns the principal set by RequireAuth.
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

func tokenFromRequest(c *gin.Context) (string, error) {
	if cookie, err := c.Cookie(config.AuthCookie); err == nil && cookie != "" {
		return cookie, nil
	}

	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer "), nil
	}

	return "", fmt.Errorf("no authentication token found")
}

func verifyToken(tokenString, secret string) (Principal, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Principal{}, fmt.Errorf("token verification failed: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, fmt.Errorf("unexpected claims type")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return Principal{}, fmt.Errorf("token has no user id")
	}
	email, _ := claims["email"].(string)

	return Principal{UserID: uint(userID), Email: email}, nil
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
