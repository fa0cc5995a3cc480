package repository

import (
	"context"
	"sort"
	"strings"

	"studio/internal/models"
	"studio/internal/storage"
)

// ProjectRepository defines the interface for portfolio project data operations.
type ProjectRepository interface {
	GetAll(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
	Create(ctx context.Context, in CreateProjectInput) (*models.Project, error)
	Update(ctx context.Context, id string, in UpdateProjectInput) (*models.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListPublished(ctx context.Context) ([]models.Project, error)
}

// CreateProjectInput carries the fields from the admin project form.
type CreateProjectInput struct {
	Slug        string
	Title       string
	Description string
	Problem     string
	Outcome     string
	Tools       []string
	ImageURL    string
	ImageHint   string
	LiveLink    string
	RepoLink    string
	Published   bool
	Tags        []string
}

// UpdateProjectInput is a partial update; nil fields keep their stored value.
type UpdateProjectInput struct {
	Slug        *string
	Title       *string
	Description *string
	Problem     *string
	Outcome     *string
	Tools       *[]string
	ImageURL    *string
	ImageHint   *string
	LiveLink    *string
	RepoLink    *string
	Published   *bool
	Tags        *[]string
}

type projectRepository struct {
	coll   *collection[models.Project]
	author string
}

// NewProjectRepository creates a project repository over the projects slot.
func NewProjectRepository(store storage.SlotStore, seed []models.Project, author string) ProjectRepository {
	return &projectRepository{
		coll:   newCollection(store, storage.ProjectsSlot, seed),
		author: author,
	}
}

func (r *projectRepository) GetAll(ctx context.Context) ([]models.Project, error) {
	return r.coll.getAll(ctx)
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	return r.coll.getByID(ctx, id)
}

func (r *projectRepository) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	return r.coll.getBySlug(ctx, slug)
}

func (r *projectRepository) Create(ctx context.Context, in CreateProjectInput) (*models.Project, error) {
	project := models.Project{
		ID:          newID(),
		Slug:        in.Slug,
		Title:       in.Title,
		Description: in.Description,
		Problem:     in.Problem,
		Outcome:     in.Outcome,
		Tools:       in.Tools,
		ImageURL:    in.ImageURL,
		ImageHint:   in.ImageHint,
		LiveLink:    in.LiveLink,
		RepoLink:    in.RepoLink,
		Published:   in.Published,
		Date:        today(),
		Author:      r.author,
		Tags:        in.Tags,
	}
	if project.Tools == nil {
		project.Tools = []string{}
	}
	if project.Tags == nil {
		project.Tags = []string{}
	}
	if err := r.coll.create(ctx, project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) Update(ctx context.Context, id string, in UpdateProjectInput) (*models.Project, error) {
	return r.coll.update(ctx, id, func(p *models.Project) {
		if in.Slug != nil {
			p.Slug = *in.Slug
		}
		if in.Title != nil {
			p.Title = *in.Title
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.Problem != nil {
			p.Problem = *in.Problem
		}
		if in.Outcome != nil {
			p.Outcome = *in.Outcome
		}
		if in.Tools != nil {
			p.Tools = *in.Tools
		}
		if in.ImageURL != nil {
			p.ImageURL = *in.ImageURL
		}
		if in.ImageHint != nil {
			p.ImageHint = *in.ImageHint
		}
		if in.LiveLink != nil {
			p.LiveLink = *in.LiveLink
		}
		if in.RepoLink != nil {
			p.RepoLink = *in.RepoLink
		}
		if in.Published != nil {
			p.Published = *in.Published
		}
		if in.Tags != nil {
			p.Tags = *in.Tags
		}
	})
}

func (r *projectRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.coll.delete(ctx, id)
}

func (r *projectRepository) ListPublished(ctx context.Context) ([]models.Project, error) {
	projects, err := r.coll.getAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.Published {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out, nil
}

// ParseTools splits a comma-separated tools field into a trimmed list.
// Empty segments are dropped; duplicates are kept as entered.
func ParseTools(raw string) []string {
	parts := strings.Split(raw, ",")
	tools := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tools = append(tools, t)
		}
	}
	return tools
}
