package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"studio/internal/models"
	"studio/internal/storage"
	"studio/internal/wordpress"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRemoteApp mounts the API against a stub WordPress GraphQL endpoint.
func newRemoteApp(t *testing.T, handler http.HandlerFunc) *fiber.App {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := testConfig()
	cfg.WordPressURL = srv.URL

	s := NewServerWithDeps(cfg, storage.NewMemoryStore(), nil)
	app := fiber.New()
	s.SetupRoutes(app)
	return app
}

func TestRemoteRoutes_NotMountedWithoutEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/remote/posts", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestGetRemotePosts(t *testing.T) {
	app := newRemoteApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"posts":{
			"edges":[{"node":{
				"id":"cG9zdDox","title":"Remote Post","slug":"remote-post",
				"date":"2024-06-01T09:00:00","content":"<p>Body</p>","excerpt":"Summary",
				"author":{"node":{"name":"Venkatesh S."}},
				"categories":{"edges":[{"node":{"name":"AI News","slug":"ai-news"}}]},
				"tags":{"edges":[]}
			}}],
			"pageInfo":{"endCursor":"abc","hasNextPage":true}
		}}}`))
	})

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/remote/posts?first=5", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Posts    []models.Post      `json:"posts"`
		PageInfo wordpress.PageInfo `json:"page_info"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.Posts, 1)
	assert.Equal(t, "remote-post", body.Posts[0].Slug)
	assert.Equal(t, "2024-06-01", body.Posts[0].Date)
	assert.True(t, body.PageInfo.HasNextPage)
	assert.Equal(t, "abc", body.PageInfo.EndCursor)
}

func TestGetRemotePost_NotFound(t *testing.T) {
	app := newRemoteApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"post":null}}`))
	})

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/remote/posts/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestRemoteFailureMapsToBadGateway(t *testing.T) {
	app := newRemoteApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/remote/categories", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	var body models.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "GATEWAY_ERROR", body.Code)
}
