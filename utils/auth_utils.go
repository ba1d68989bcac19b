package utils

import (
	"github.com/gin-gonic/gin"
)

type UserClaims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}

type contextKey string

const UserContextKey contextKey = "user"

// GetUser returns the authenticated user's claims, or nil for anonymous
// requests (no auth middleware, or optional auth with no token).
func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}

// ViewerID returns the authenticated user ID, or 0 for anonymous viewers.
func ViewerID(c *gin.Context) uint {
	if user := GetUser(c); user != nil {
		return user.UserID
	}
	return 0
}
