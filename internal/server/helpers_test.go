package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"studio/internal/config"
	"studio/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:           "8375",
		Env:            "test",
		JWTSecret:      "test-secret-not-for-production",
		SiteAuthor:     "Venkatesh S.",
		StorageBackend: config.BackendMemory,
	}
}

// newTestApp builds a Fiber app over a fresh in-memory store with all
// routes mounted.
func newTestApp(t *testing.T) (*fiber.App, *Server) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	s := NewServerWithDeps(testConfig(), storage.NewMemoryStore(), nil)
	app := fiber.New()
	s.SetupRoutes(app)
	return app, s
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out), "body: %s", data)
}

// adminToken signs up a throwaway admin and returns a bearer token.
func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	req := jsonRequest(t, http.MethodPost, "/api/auth/signup", map[string]string{
		"email":    "admin@example.com",
		"password": "correct-horse-battery",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}
