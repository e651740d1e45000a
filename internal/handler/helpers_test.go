package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/CharanV17/Medication-remainder/internal/config"
	"github.com/CharanV17/Medication-remainder/internal/database"
	"github.com/CharanV17/Medication-remainder/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode},
		JWT:    config.JWTConfig{Secret: testSecret, ExpireHours: 1},
		// minimum bcrypt cost keeps the suite fast
		Security: config.SecurityConfig{BcryptCost: 4},
	}

	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	return router.SetupRouter(cfg, db, zerolog.Nop())
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

// registerUser registers an account and returns its token.
func registerUser(t *testing.T, r http.Handler, email string) string {
	t.Helper()

	rr := doJSON(t, r, http.MethodPost, "/auth/register", map[string]string{
		"email":    email,
		"password": "pw1234",
		"name":     "Test User",
	}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// createMedication creates a medication for the token's owner and
// returns the new id.
func createMedication(t *testing.T, r http.Handler, token, name, dose string) uint {
	t.Helper()

	rr := doJSON(t, r, http.MethodPost, "/medications", map[string]string{
		"name": name,
		"dose": dose,
	}, token)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotZero(t, resp.ID)
	return resp.ID
}

func medPath(id uint) string {
	return fmt.Sprintf("/medications/%d", id)
}

func reminderPath(id uint) string {
	return fmt.Sprintf("/reminders/%d", id)
}
