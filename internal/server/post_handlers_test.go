package server

import (
	"net/http"
	"testing"

	"studio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPosts_SeededOnFirstRead(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/posts", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var posts []models.Post
	decodeBody(t, resp, &posts)
	require.Len(t, posts, 3, "visitors only see published posts")
	assert.Equal(t, "understanding-llms", posts[0].Slug)

	token := adminToken(t, app)
	req := jsonRequest(t, http.MethodGet, "/api/posts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	decodeBody(t, resp, &posts)
	require.Len(t, posts, 4, "the admin sees drafts too")
	assert.Equal(t, "tfjs-tutorial", posts[1].Slug)
}

func TestGetPosts_PublishedView(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/posts?published=true", nil))
	require.NoError(t, err)

	var posts []models.Post
	decodeBody(t, resp, &posts)
	require.Len(t, posts, 3, "the tfjs tutorial is a draft")
	for i := 1; i < len(posts); i++ {
		assert.LessOrEqual(t, posts[i].Date, posts[i-1].Date, "published view sorts newest first")
	}
}

func TestGetPosts_CategoryAndRecent(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/posts?category=ai-news", nil))
	require.NoError(t, err)
	var posts []models.Post
	decodeBody(t, resp, &posts)
	require.Len(t, posts, 2)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/posts?recent=1", nil))
	require.NoError(t, err)
	decodeBody(t, resp, &posts)
	require.Len(t, posts, 1)

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/posts?recent=no", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestGetPost_NotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/posts/999", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestGetPost_DraftsHiddenFromVisitors(t *testing.T) {
	app, _ := newTestApp(t)

	t.Run("draft by id is 404 without a token", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/posts/2", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("draft by slug is 404 without a token", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/posts/slug/tfjs-tutorial", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("admin reads the draft", func(t *testing.T) {
		token := adminToken(t, app)
		req := jsonRequest(t, http.MethodGet, "/api/posts/2", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var post models.Post
		decodeBody(t, resp, &post)
		assert.False(t, post.Published)
	})
}

func TestGetPost_RenderHTML(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(jsonRequest(t, http.MethodGet,
		"/api/posts/slug/understanding-llms?render=html", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var post models.Post
	decodeBody(t, resp, &post)
	assert.Contains(t, post.Content, "<strong>Transformer Architecture:</strong>")
	assert.Contains(t, post.Content, "<li>")
	assert.NotContains(t, post.Content, "**Transformer Architecture:**")
}

func TestCreatePost(t *testing.T) {
	app, _ := newTestApp(t)
	token := adminToken(t, app)

	t.Run("requires auth", func(t *testing.T) {
		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/posts", map[string]any{}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("rejects short content with the field message", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/posts", map[string]any{
			"title":    "A New Post About Go",
			"slug":     "a-new-post",
			"category": "tutorials",
			"content":  "too short",
		})
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "Content must be at least 50 characters.", body.Fields["content"])
	})

	t.Run("creates with server-assigned identity", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/posts", map[string]any{
			"title":     "A New Post About Go",
			"slug":      "a-new-post",
			"category":  "tutorials",
			"content":   "This body comfortably clears the fifty character floor for post content.",
			"published": true,
			"tags":      []string{"Go"},
		})
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var post models.Post
		decodeBody(t, resp, &post)
		assert.NotEmpty(t, post.ID)
		assert.NotEmpty(t, post.Date)
		assert.Equal(t, "Venkatesh S.", post.Author)
	})

	t.Run("rejects a duplicate slug", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/posts", map[string]any{
			"title":    "Another Post Entirely",
			"slug":     "a-new-post",
			"category": "tutorials",
			"content":  "This body comfortably clears the fifty character floor for post content.",
		})
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestUpdatePost(t *testing.T) {
	app, _ := newTestApp(t)
	token := adminToken(t, app)

	t.Run("partial update keeps unsent fields", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, "/api/posts/1", map[string]any{
			"title": "Understanding LLMs, Revisited",
		})
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var post models.Post
		decodeBody(t, resp, &post)
		assert.Equal(t, "Understanding LLMs, Revisited", post.Title)
		assert.Equal(t, "understanding-llms", post.Slug)
		assert.Equal(t, "2024-07-28", post.Date)
	})

	t.Run("validates only the fields sent", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, "/api/posts/1", map[string]any{
			"slug": "Bad Slug!",
		})
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, "/api/posts/999", map[string]any{
			"title": "Nobody Home Here",
		})
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestDeletePost_Idempotent(t *testing.T) {
	app, _ := newTestApp(t)
	token := adminToken(t, app)

	del := func() map[string]bool {
		req := jsonRequest(t, http.MethodDelete, "/api/posts/1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]bool
		decodeBody(t, resp, &body)
		return body
	}

	assert.True(t, del()["deleted"])
	assert.False(t, del()["deleted"], "second delete reports nothing removed")
}

func TestImportPost(t *testing.T) {
	app, _ := newTestApp(t)
	token := adminToken(t, app)

	source := `---
title: Imported From Markdown
slug: imported-from-markdown
category: tutorials
excerpt: A post that arrived as a document.
tags:
  - Import
published: true
---

# Imported From Markdown

This body comfortably clears the fifty character floor for post content.
`

	req := jsonRequest(t, http.MethodPost, "/api/posts/import", map[string]string{"source": source})
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var post models.Post
	decodeBody(t, resp, &post)
	assert.Equal(t, "imported-from-markdown", post.Slug)
	assert.True(t, post.Published)
	assert.Contains(t, post.Content, "# Imported From Markdown")
	assert.Equal(t, []string{"Import"}, post.Tags)

	t.Run("frontmatter gaps fail validation", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/posts/import", map[string]string{
			"source": "# Just a heading, no frontmatter, body too short",
		})
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("malformed frontmatter is rejected, not imported", func(t *testing.T) {
		source := "---\ntitle: [unclosed\n---\nThis body is long enough but the header above is broken."
		req := jsonRequest(t, http.MethodPost, "/api/posts/import", map[string]string{"source": source})
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		decodeBody(t, resp, &body)
		assert.Equal(t, "The frontmatter block is malformed", body.Error)
	})
}
