package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the bearer token and stores userId/role in the
// context. Requests without a valid token get 401.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, role, err := parseBearer(c, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": err.Error()})
			c.Abort()
			return
		}

		c.Set("userId", userID)
		c.Set("role", role)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the identity when a valid token is
// present and lets guests through untouched. Used on checkout and
// reservations, where the owning user column is nullable.
func OptionalAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, role, err := parseBearer(c, secret); err == nil {
			c.Set("userId", userID)
			c.Set("role", role)
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context, secret string) (uint, string, error) {
	h := c.GetHeader("Authorization")
	if h == "" || !strings.HasPrefix(h, "Bearer ") {
		return 0, "", fmt.Errorf("missing or invalid token")
	}
	tokenStr := strings.TrimPrefix(h, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", fmt.Errorf("invalid claims")
	}

	var role string
	if v, ok := claims["role"].(string); ok {
		role = v
	}
	var userID uint
	switch v := claims["userId"].(type) {
	case float64:
		userID = uint(v)
	case int:
		userID = uint(v)
	case int64:
		userID = uint(v)
	case uint:
		userID = v
	}
	if userID == 0 {
		return 0, "", fmt.Errorf("invalid claims")
	}

	return userID, role, nil
}
