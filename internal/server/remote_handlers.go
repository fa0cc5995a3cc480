package server

import (
	"studio/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetRemotePosts handles GET /api/remote/posts. ?category filters by
// category slug; ?first and ?after page through the remote cursor.
func (s *Server) GetRemotePosts(c *fiber.Ctx) error {
	first, after := parsePageArgs(c, 10)

	if category := c.Query("category"); category != "" {
		posts, pageInfo, err := s.remote.PostsByCategory(c.Context(), category, first, after)
		if err != nil {
			return respondGatewayError(c, err)
		}
		return c.JSON(fiber.Map{"posts": posts, "page_info": pageInfo})
	}

	posts, pageInfo, err := s.remote.AllPosts(c.Context(), first, after)
	if err != nil {
		return respondGatewayError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts, "page_info": pageInfo})
}

// GetRemotePost handles GET /api/remote/posts/:slug
func (s *Server) GetRemotePost(c *fiber.Ctx) error {
	slug := c.Params("slug")
	post, err := s.remote.PostBySlug(c.Context(), slug)
	if err != nil {
		return respondGatewayError(c, err)
	}
	if post == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post", slug))
	}
	return c.JSON(post)
}

// GetRemoteProjects handles GET /api/remote/projects
func (s *Server) GetRemoteProjects(c *fiber.Ctx) error {
	first, after := parsePageArgs(c, 10)

	projects, pageInfo, err := s.remote.AllProjects(c.Context(), first, after)
	if err != nil {
		return respondGatewayError(c, err)
	}
	return c.JSON(fiber.Map{"projects": projects, "page_info": pageInfo})
}

// GetRemoteProject handles GET /api/remote/projects/:slug
func (s *Server) GetRemoteProject(c *fiber.Ctx) error {
	slug := c.Params("slug")
	project, err := s.remote.ProjectBySlug(c.Context(), slug)
	if err != nil {
		return respondGatewayError(c, err)
	}
	if project == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Project", slug))
	}
	return c.JSON(project)
}

// GetRemoteCategories handles GET /api/remote/categories
func (s *Server) GetRemoteCategories(c *fiber.Ctx) error {
	categories, err := s.remote.Categories(c.Context())
	if err != nil {
		return respondGatewayError(c, err)
	}
	return c.JSON(categories)
}

// GetRemotePage handles GET /api/remote/pages/:slug
func (s *Server) GetRemotePage(c *fiber.Ctx) error {
	slug := c.Params("slug")
	page, err := s.remote.PageBySlug(c.Context(), slug)
	if err != nil {
		return respondGatewayError(c, err)
	}
	if page == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Page", slug))
	}
	return c.JSON(page)
}
