package wordpress

import (
	"context"
	"encoding/json"
	"fmt"

	"studio/internal/models"
)

// Shared field fragments, interpolated into every query that returns
// the corresponding node type.
const postFields = `
  id
  title
  excerpt
  slug
  date
  content
  featuredImage {
    node {
      sourceUrl(size: LARGE)
      altText
    }
  }
  author {
    node {
      name
    }
  }
  categories {
    edges {
      node {
        name
        slug
      }
    }
  }
  tags {
    edges {
      node {
        name
        slug
      }
    }
  }
`

const projectFields = `
  id
  title
  slug
  date
  content
  featuredImage {
    node {
      sourceUrl(size: LARGE)
      altText
    }
  }
  projectFields {
    problemStatement
    toolsUsed
    outcome
    liveLink
    repositoryLink
    imageAiHint
  }
  author {
    node {
      name
    }
  }
  tags {
    edges {
      node {
        name
        slug
      }
    }
  }
`

type edgesEnvelope[T any] struct {
	Edges []struct {
		Node T `json:"node"`
	} `json:"edges"`
	PageInfo PageInfo `json:"pageInfo"`
}

func nodes[T any](env edgesEnvelope[T]) []T {
	out := make([]T, 0, len(env.Edges))
	for _, e := range env.Edges {
		out = append(out, e.Node)
	}
	return out
}

// AllPosts returns one page of published posts, newest first, with the
// response's cursor block for follow-up pages. Pass after="" for the
// first page.
func (c *Client) AllPosts(ctx context.Context, first int, after string) ([]models.Post, PageInfo, error) {
	query := fmt.Sprintf(`
    query GetAllPosts($first: Int, $after: String) {
      posts(first: $first, after: $after, where: { status: PUBLISH }) {
        edges {
          node {
            %s
          }
        }
        pageInfo {
          endCursor
          hasNextPage
        }
      }
    }
  `, postFields)

	data, err := c.Request(ctx, query, paginationVars(first, after))
	if err != nil {
		return nil, PageInfo{}, err
	}

	var payload struct {
		Posts edgesEnvelope[postNode] `json:"posts"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, PageInfo{}, fmt.Errorf("decode posts payload: %w", err)
	}

	posts := make([]models.Post, 0, len(payload.Posts.Edges))
	for _, n := range nodes(payload.Posts) {
		posts = append(posts, n.toPost())
	}
	return posts, payload.Posts.PageInfo, nil
}

// PostsByCategory returns one page of published posts in the category.
func (c *Client) PostsByCategory(ctx context.Context, categorySlug string, first int, after string) ([]models.Post, PageInfo, error) {
	query := fmt.Sprintf(`
    query GetPostsByCategory($categorySlug: String!, $first: Int, $after: String) {
      posts(first: $first, after: $after, where: { categoryName: $categorySlug, status: PUBLISH }) {
        edges {
          node {
            %s
          }
        }
        pageInfo {
          endCursor
          hasNextPage
        }
      }
    }
  `, postFields)

	vars := paginationVars(first, after)
	vars["categorySlug"] = categorySlug

	data, err := c.Request(ctx, query, vars)
	if err != nil {
		return nil, PageInfo{}, err
	}

	var payload struct {
		Posts edgesEnvelope[postNode] `json:"posts"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, PageInfo{}, fmt.Errorf("decode posts payload: %w", err)
	}

	posts := make([]models.Post, 0, len(payload.Posts.Edges))
	for _, n := range nodes(payload.Posts) {
		posts = append(posts, n.toPost())
	}
	return posts, payload.Posts.PageInfo, nil
}

// PostBySlug returns the post with the slug, or nil when absent.
func (c *Client) PostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	query := fmt.Sprintf(`
    query GetPostBySlug($id: ID!, $idType: PostIdType!) {
      post(id: $id, idType: $idType) {
        %s
      }
    }
  `, postFields)

	data, err := c.Request(ctx, query, map[string]any{"id": slug, "idType": "SLUG"})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Post *postNode `json:"post"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode post payload: %w", err)
	}
	if payload.Post == nil {
		return nil, nil
	}
	post := payload.Post.toPost()
	return &post, nil
}

// AllProjects returns one page of published projects.
func (c *Client) AllProjects(ctx context.Context, first int, after string) ([]models.Project, PageInfo, error) {
	query := fmt.Sprintf(`
    query GetAllProjects($first: Int, $after: String) {
      projects(first: $first, after: $after, where: { status: PUBLISH }) {
        edges {
          node {
            %s
          }
        }
        pageInfo {
          endCursor
          hasNextPage
        }
      }
    }
  `, projectFields)

	data, err := c.Request(ctx, query, paginationVars(first, after))
	if err != nil {
		return nil, PageInfo{}, err
	}

	var payload struct {
		Projects edgesEnvelope[projectNode] `json:"projects"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, PageInfo{}, fmt.Errorf("decode projects payload: %w", err)
	}

	projects := make([]models.Project, 0, len(payload.Projects.Edges))
	for _, n := range nodes(payload.Projects) {
		projects = append(projects, n.toProject())
	}
	return projects, payload.Projects.PageInfo, nil
}

// ProjectBySlug returns the project with the slug, or nil when absent.
func (c *Client) ProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	query := fmt.Sprintf(`
    query GetProjectBySlug($id: ID!, $idType: ProjectIdType!) {
      project(id: $id, idType: $idType) {
        %s
      }
    }
  `, projectFields)

	data, err := c.Request(ctx, query, map[string]any{"id": slug, "idType": "SLUG"})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Project *projectNode `json:"project"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode project payload: %w", err)
	}
	if payload.Project == nil {
		return nil, nil
	}
	project := payload.Project.toProject()
	return &project, nil
}

// Categories returns every post category.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	query := `
    query GetAllCategories {
      categories(first: 100) {
        edges {
          node {
            id
            name
            slug
            description
            count
          }
        }
      }
    }
  `

	data, err := c.Request(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Categories edgesEnvelope[Category] `json:"categories"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode categories payload: %w", err)
	}
	return nodes(payload.Categories), nil
}

// PageBySlug returns the WordPress page with the slug, or nil when absent.
func (c *Client) PageBySlug(ctx context.Context, slug string) (*Page, error) {
	query := `
    query GetPageBySlug($id: ID!, $idType: PageIdType!) {
      page(id: $id, idType: $idType) {
        id
        title
        slug
        content
        date
      }
    }
  `

	data, err := c.Request(ctx, query, map[string]any{"id": slug, "idType": "URI"})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Page *Page `json:"page"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode page payload: %w", err)
	}
	return payload.Page, nil
}

func paginationVars(first int, after string) map[string]any {
	vars := map[string]any{"first": first}
	if after != "" {
		vars["after"] = after
	}
	return vars
}
