package repository

import (
	"context"
	"sort"

	"studio/internal/models"
	"studio/internal/storage"
)

// PostRepository defines the interface for blog post data operations.
type PostRepository interface {
	GetAll(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	Create(ctx context.Context, in CreatePostInput) (*models.Post, error)
	Update(ctx context.Context, id string, in UpdatePostInput) (*models.Post, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListPublished(ctx context.Context) ([]models.Post, error)
	ListByCategory(ctx context.Context, category string) ([]models.Post, error)
	ListRecent(ctx context.Context, n int) ([]models.Post, error)
}

// CreatePostInput carries the fields an admin form submits. ID, date and
// author are assigned here, never by the caller.
type CreatePostInput struct {
	Slug       string
	Title      string
	Category   string
	Content    string
	Excerpt    string
	CoverImage string
	ImageHint  string
	Published  bool
	Tags       []string
}

// UpdatePostInput is a partial update; nil fields keep their stored
// value. Date and author are fixed at creation and not updatable.
type UpdatePostInput struct {
	Slug       *string
	Title      *string
	Category   *string
	Content    *string
	Excerpt    *string
	CoverImage *string
	ImageHint  *string
	Published  *bool
	Tags       *[]string
}

// postRepository implements PostRepository over the posts slot.
type postRepository struct {
	coll   *collection[models.Post]
	author string
}

// NewPostRepository creates a post repository. The seed collection is
// written on first read of an empty store.
func NewPostRepository(store storage.SlotStore, seed []models.Post, author string) PostRepository {
	return &postRepository{
		coll:   newCollection(store, storage.PostsSlot, seed),
		author: author,
	}
}

func (r *postRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	return r.coll.getAll(ctx)
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return r.coll.getByID(ctx, id)
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return r.coll.getBySlug(ctx, slug)
}

func (r *postRepository) Create(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	post := models.Post{
		ID:         newID(),
		Slug:       in.Slug,
		Title:      in.Title,
		Category:   in.Category,
		Content:    in.Content,
		Excerpt:    in.Excerpt,
		CoverImage: in.CoverImage,
		ImageHint:  in.ImageHint,
		Published:  in.Published,
		Date:       today(),
		Author:     r.author,
		Tags:       in.Tags,
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if err := r.coll.create(ctx, post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, id string, in UpdatePostInput) (*models.Post, error) {
	return r.coll.update(ctx, id, func(p *models.Post) {
		if in.Slug != nil {
			p.Slug = *in.Slug
		}
		if in.Title != nil {
			p.Title = *in.Title
		}
		if in.Category != nil {
			p.Category = *in.Category
		}
		if in.Content != nil {
			p.Content = *in.Content
		}
		if in.Excerpt != nil {
			p.Excerpt = *in.Excerpt
		}
		if in.CoverImage != nil {
			p.CoverImage = *in.CoverImage
		}
		if in.ImageHint != nil {
			p.ImageHint = *in.ImageHint
		}
		if in.Published != nil {
			p.Published = *in.Published
		}
		if in.Tags != nil {
			p.Tags = *in.Tags
		}
	})
}

func (r *postRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.coll.delete(ctx, id)
}

func (r *postRepository) ListPublished(ctx context.Context) ([]models.Post, error) {
	posts, err := r.coll.getAll(ctx)
	if err != nil {
		return nil, err
	}
	return publishedPosts(posts), nil
}

func (r *postRepository) ListByCategory(ctx context.Context, category string) ([]models.Post, error) {
	posts, err := r.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (r *postRepository) ListRecent(ctx context.Context, n int) ([]models.Post, error) {
	posts, err := r.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = 0
	}
	if n > len(posts) {
		n = len(posts)
	}
	return posts[:n], nil
}

// publishedPosts filters to published entries sorted by date descending.
// The stable sort keeps insertion order for equal dates.
func publishedPosts(posts []models.Post) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.Published {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		// ISO dates compare correctly as strings.
		return out[i].Date > out[j].Date
	})
	return out
}
