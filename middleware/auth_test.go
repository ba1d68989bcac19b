package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eco-connect/api-go/middleware"
	"github.com/eco-connect/api-go/utils"
)

const testSecret = "test-secret"

func signToken(t *testing.T, userID uint, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func claimsEcho() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := utils.GetUser(c); user != nil {
			c.JSON(http.StatusOK, gin.H{"user_id": user.UserID, "role": user.Role})
			return
		}
		c.JSON(http.StatusOK, gin.H{"anonymous": true})
	}
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(), claimsEcho())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "missing header is rejected")

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "garbage token is rejected")

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 7, "staff"))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7,"role":"staff"}`, w.Body.String())
}

func TestOptionalAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/browse", middleware.OptionalAuthMiddleware(), claimsEcho())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/browse", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "anonymous requests pass through")
	assert.JSONEq(t, `{"anonymous":true}`, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/browse", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 3, "user"))
	r.ServeHTTP(w, req)
	assert.JSONEq(t, `{"user_id":3,"role":"user"}`, w.Body.String())
}
