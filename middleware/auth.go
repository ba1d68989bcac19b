package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/eco-connect/api-go/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearerClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing token"})
			c.Abort()
			return
		}
		c.Set(string(utils.UserContextKey), claims)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches claims when a valid token is present but
// lets anonymous requests through. Used on public reads that personalize
// their response for logged-in viewers.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearerClaims(c); ok {
			c.Set(string(utils.UserContextKey), claims)
		}
		c.Next()
	}
}

func parseBearerClaims(c *gin.Context) (*utils.UserClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	bearerToken := strings.Split(authHeader, " ")
	if len(bearerToken) != 2 {
		return nil, false
	}

	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(bearerToken[1], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !parsedToken.Valid {
		return nil, false
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, false
	}
	role, _ := claims["role"].(string)

	return &utils.UserClaims{UserID: uint(userID), Role: role}, true
}
