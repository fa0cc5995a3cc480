package server

import (
	"studio/internal/models"
	"studio/internal/repository"
	"studio/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// projectBody is the JSON shape the admin project form submits. Tools
// arrives as the raw comma-separated string the form field holds.
type projectBody struct {
	Title       *string   `json:"title"`
	Slug        *string   `json:"slug"`
	Description *string   `json:"description"`
	Problem     *string   `json:"problem"`
	Outcome     *string   `json:"outcome"`
	Tools       *string   `json:"tools"`
	ImageURL    *string   `json:"image_url"`
	ImageHint   *string   `json:"image_hint"`
	LiveLink    *string   `json:"live_link"`
	RepoLink    *string   `json:"repo_link"`
	Published   *bool     `json:"published"`
	Tags        *[]string `json:"tags"`
}

func (b projectBody) formValues() map[string]string {
	values := make(map[string]string)
	set := func(name string, v *string) {
		if v != nil {
			values[name] = *v
		}
	}
	set("title", b.Title)
	set("slug", b.Slug)
	set("description", b.Description)
	set("problem", b.Problem)
	set("outcome", b.Outcome)
	set("tools", b.Tools)
	set("image_url", b.ImageURL)
	set("live_link", b.LiveLink)
	set("repo_link", b.RepoLink)
	return values
}

// GetProjects handles GET /api/projects. ?published=true selects the
// published view, newest first. Visitors always get the published view;
// the full list needs a signed-in admin.
func (s *Server) GetProjects(c *fiber.Ctx) error {
	ctx := c.Context()

	if c.Query("published") == "true" || currentUserID(c) == "" {
		projects, err := s.projectRepo.ListPublished(ctx)
		if err != nil {
			return respondRepoError(c, err)
		}
		return c.JSON(projects)
	}

	projects, err := s.projectRepo.GetAll(ctx)
	if err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(projects)
}

// GetProject handles GET /api/projects/:id
func (s *Server) GetProject(c *fiber.Ctx) error {
	id := c.Params("id")
	project, err := s.projectRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondRepoError(c, err)
	}
	if project == nil || (!project.Published && currentUserID(c) == "") {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Project", id))
	}
	return c.JSON(project)
}

// GetProjectBySlug handles GET /api/projects/slug/:slug
func (s *Server) GetProjectBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	project, err := s.projectRepo.GetBySlug(c.Context(), slug)
	if err != nil {
		return respondRepoError(c, err)
	}
	if project == nil || (!project.Published && currentUserID(c) == "") {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Project", slug))
	}
	return c.JSON(project)
}

// CreateProject handles POST /api/projects
func (s *Server) CreateProject(c *fiber.Ctx) error {
	var body projectBody
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if errs := validation.ProjectSchema().Validate(body.formValues()); len(errs) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(errs))
	}

	in := repository.CreateProjectInput{
		Slug:        deref(body.Slug),
		Title:       deref(body.Title),
		Description: deref(body.Description),
		Problem:     deref(body.Problem),
		Outcome:     deref(body.Outcome),
		Tools:       repository.ParseTools(deref(body.Tools)),
		ImageURL:    deref(body.ImageURL),
		ImageHint:   deref(body.ImageHint),
		LiveLink:    deref(body.LiveLink),
		RepoLink:    deref(body.RepoLink),
	}
	if body.Published != nil {
		in.Published = *body.Published
	}
	if body.Tags != nil {
		in.Tags = *body.Tags
	}

	project, err := s.projectRepo.Create(c.Context(), in)
	if err != nil {
		return respondRepoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// UpdateProject handles PUT /api/projects/:id. Absent fields keep
// their stored values.
func (s *Server) UpdateProject(c *fiber.Ctx) error {
	id := c.Params("id")

	var body projectBody
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if errs := validation.ProjectSchema().ValidatePartial(body.formValues()); len(errs) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(errs))
	}

	in := repository.UpdateProjectInput{
		Slug:        body.Slug,
		Title:       body.Title,
		Description: body.Description,
		Problem:     body.Problem,
		Outcome:     body.Outcome,
		ImageURL:    body.ImageURL,
		ImageHint:   body.ImageHint,
		LiveLink:    body.LiveLink,
		RepoLink:    body.RepoLink,
		Published:   body.Published,
		Tags:        body.Tags,
	}
	if body.Tools != nil {
		tools := repository.ParseTools(*body.Tools)
		in.Tools = &tools
	}

	project, err := s.projectRepo.Update(c.Context(), id, in)
	if err != nil {
		return respondRepoError(c, err)
	}
	if project == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Project", id))
	}
	return c.JSON(project)
}

// DeleteProject handles DELETE /api/projects/:id
func (s *Server) DeleteProject(c *fiber.Ctx) error {
	id := c.Params("id")
	deleted, err := s.projectRepo.Delete(c.Context(), id)
	if err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}
