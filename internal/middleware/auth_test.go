package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/CharanV17/Medication-remainder/internal/middleware"
	"github.com/CharanV17/Medication-remainder/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newGuardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(secret), func(c *gin.Context) {
		v, _ := c.Get(middleware.ContextUserID)
		c.JSON(http.StatusOK, gin.H{"user_id": v})
	})
	return r
}

func get(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

// signToken builds a token with an arbitrary expiry, bypassing
// GenerateToken's ttl floor so expired tokens can be produced.
func signToken(t *testing.T, signingSecret string, userID uint, expiresAt time.Time) string {
	t.Helper()
	claims := &util.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signingSecret))
	require.NoError(t, err)
	return s
}

func TestAuthMiddlewareAccepts(t *testing.T) {
	r := newGuardedRouter()

	token, err := util.GenerateToken(secret, 42, time.Hour)
	require.NoError(t, err)

	rr := get(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"user_id":42}`, rr.Body.String())
}

// Every rejection reason produces the same 401 response.
func TestAuthMiddlewareRejectsUniformly(t *testing.T) {
	r := newGuardedRouter()

	expired := signToken(t, secret, 42, time.Now().Add(-time.Second))
	wrongKey := signToken(t, "other-secret", 42, time.Now().Add(time.Hour))

	cases := map[string]string{
		"missing header":  "",
		"not bearer":      "Basic abc123",
		"empty token":     "Bearer ",
		"malformed token": "Bearer not.a.jwt",
		"bad signature":   "Bearer " + wrongKey,
		"expired token":   "Bearer " + expired,
	}

	var bodies []string
	for name, header := range cases {
		rr := get(r, header)
		require.Equal(t, http.StatusUnauthorized, rr.Code, name)
		bodies = append(bodies, rr.Body.String())
	}
	for _, b := range bodies[1:] {
		assert.Equal(t, bodies[0], b)
	}
}

// A token stays valid right up to its expiry.
func TestAuthMiddlewareExpiryBoundary(t *testing.T) {
	r := newGuardedRouter()

	soon := signToken(t, secret, 7, time.Now().Add(5*time.Second))
	rr := get(r, "Bearer "+soon)
	assert.Equal(t, http.StatusOK, rr.Code)

	past := signToken(t, secret, 7, time.Now().Add(-5*time.Second))
	rr = get(r, "Bearer "+past)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
