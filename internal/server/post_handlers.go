package server

import (
	"strconv"
	"strings"

	"studio/internal/markdown"
	"studio/internal/models"
	"studio/internal/repository"
	"studio/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// postBody is the JSON shape the admin post form submits. Pointer fields
// make the same shape serve partial updates.
type postBody struct {
	Title      *string   `json:"title"`
	Slug       *string   `json:"slug"`
	Category   *string   `json:"category"`
	Content    *string   `json:"content"`
	Excerpt    *string   `json:"excerpt"`
	CoverImage *string   `json:"cover_image"`
	ImageHint  *string   `json:"image_hint"`
	Published  *bool     `json:"published"`
	Tags       *[]string `json:"tags"`
}

// formValues flattens the submitted string fields for schema validation.
// Only fields present in the body are included.
func (b postBody) formValues() map[string]string {
	values := make(map[string]string)
	set := func(name string, v *string) {
		if v != nil {
			values[name] = *v
		}
	}
	set("title", b.Title)
	set("slug", b.Slug)
	set("category", b.Category)
	set("content", b.Content)
	set("excerpt", b.Excerpt)
	set("cover_image", b.CoverImage)
	return values
}

func deref(v *string) string {
	if v != nil {
		return *v
	}
	return ""
}

// respondPost writes a single post, rendering its Markdown content to
// HTML when the client asks with ?render=html. Stored content stays
// Markdown; rendering happens on the way out.
func respondPost(c *fiber.Ctx, post *models.Post) error {
	if c.Query("render") == "html" {
		html, err := markdown.ToHTML(post.Content)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		}
		rendered := *post
		rendered.Content = html
		return c.JSON(rendered)
	}
	return c.JSON(post)
}

// GetPosts handles GET /api/posts. Query parameters select a derived
// view: ?published=true, ?category=<slug>, or ?recent=<n>. Without
// parameters the signed-in admin gets every post in insertion order;
// visitors get the published view.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	ctx := c.Context()

	if raw := c.Query("recent"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("recent must be a non-negative integer"))
		}
		posts, err := s.postRepo.ListRecent(ctx, n)
		if err != nil {
			return respondRepoError(c, err)
		}
		return c.JSON(posts)
	}

	if category := c.Query("category"); category != "" {
		posts, err := s.postRepo.ListByCategory(ctx, category)
		if err != nil {
			return respondRepoError(c, err)
		}
		return c.JSON(posts)
	}

	if c.Query("published") == "true" || currentUserID(c) == "" {
		posts, err := s.postRepo.ListPublished(ctx)
		if err != nil {
			return respondRepoError(c, err)
		}
		return c.JSON(posts)
	}

	posts, err := s.postRepo.GetAll(ctx)
	if err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id := c.Params("id")
	post, err := s.postRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondRepoError(c, err)
	}
	if post == nil || (!post.Published && currentUserID(c) == "") {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post", id))
	}
	return respondPost(c, post)
}

// GetPostBySlug handles GET /api/posts/slug/:slug
func (s *Server) GetPostBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	post, err := s.postRepo.GetBySlug(c.Context(), slug)
	if err != nil {
		return respondRepoError(c, err)
	}
	if post == nil || (!post.Published && currentUserID(c) == "") {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post", slug))
	}
	return respondPost(c, post)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var body postBody
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if errs := validation.PostSchema().Validate(body.formValues()); len(errs) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(errs))
	}

	in := repository.CreatePostInput{
		Slug:       deref(body.Slug),
		Title:      deref(body.Title),
		Category:   deref(body.Category),
		Content:    deref(body.Content),
		Excerpt:    deref(body.Excerpt),
		CoverImage: deref(body.CoverImage),
		ImageHint:  deref(body.ImageHint),
	}
	if body.Published != nil {
		in.Published = *body.Published
	}
	if body.Tags != nil {
		in.Tags = *body.Tags
	}

	post, err := s.postRepo.Create(c.Context(), in)
	if err != nil {
		return respondRepoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/posts/:id. Absent fields keep their
// stored values.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id := c.Params("id")

	var body postBody
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if errs := validation.PostSchema().ValidatePartial(body.formValues()); len(errs) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(errs))
	}

	post, err := s.postRepo.Update(c.Context(), id, repository.UpdatePostInput{
		Slug:       body.Slug,
		Title:      body.Title,
		Category:   body.Category,
		Content:    body.Content,
		Excerpt:    body.Excerpt,
		CoverImage: body.CoverImage,
		ImageHint:  body.ImageHint,
		Published:  body.Published,
		Tags:       body.Tags,
	})
	if err != nil {
		return respondRepoError(c, err)
	}
	if post == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post", id))
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id. Deleting an absent post is
// not an error; the response reports whether anything was removed.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id := c.Params("id")
	deleted, err := s.postRepo.Delete(c.Context(), id)
	if err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}

// ImportPost handles POST /api/posts/import. The body carries a Markdown
// document with optional frontmatter; frontmatter fields seed the post
// and the remaining Markdown becomes its content.
func (s *Server) ImportPost(c *fiber.Ctx) error {
	var req struct {
		Source string `json:"source"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if strings.TrimSpace(req.Source) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A Markdown document is required"))
	}

	doc, err := markdown.ParseDocument(req.Source)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("The frontmatter block is malformed"))
	}

	values := map[string]string{
		"title":       doc.Meta.Title,
		"slug":        doc.Meta.Slug,
		"category":    doc.Meta.Category,
		"content":     doc.Body,
		"excerpt":     doc.Meta.Excerpt,
		"cover_image": doc.Meta.CoverImage,
	}
	if errs := validation.PostSchema().Validate(values); len(errs) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(errs))
	}

	post, err := s.postRepo.Create(c.Context(), repository.CreatePostInput{
		Slug:       doc.Meta.Slug,
		Title:      doc.Meta.Title,
		Category:   doc.Meta.Category,
		Content:    doc.Body,
		Excerpt:    doc.Meta.Excerpt,
		CoverImage: doc.Meta.CoverImage,
		ImageHint:  doc.Meta.ImageHint,
		Published:  doc.Meta.Published,
		Tags:       doc.Meta.Tags,
	})
	if err != nil {
		return respondRepoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}
