package wordpress

import (
	"strings"

	"studio/internal/models"
	"studio/internal/repository"
)

// PageInfo is the cursor pagination block passed straight through from
// the GraphQL response.
type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

// Category is one WordPress category as the categories query returns it.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// Page is a WordPress page record (used for the about page).
type Page struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// Wire shapes below mirror the GraphQL node structure; they exist only
// to be flattened onto the local entity types.

type imageNode struct {
	Node struct {
		SourceURL string `json:"sourceUrl"`
		AltText   string `json:"altText"`
	} `json:"node"`
}

type authorNode struct {
	Node struct {
		Name string `json:"name"`
	} `json:"node"`
}

type termEdges struct {
	Edges []struct {
		Node struct {
			Name string `json:"name"`
			Slug string `json:"slug"`
		} `json:"node"`
	} `json:"edges"`
}

type postNode struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Excerpt       string     `json:"excerpt"`
	Slug          string     `json:"slug"`
	Date          string     `json:"date"`
	Content       string     `json:"content"`
	FeaturedImage *imageNode `json:"featuredImage"`
	Author        authorNode `json:"author"`
	Categories    termEdges  `json:"categories"`
	Tags          termEdges  `json:"tags"`
}

type projectNode struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Date          string     `json:"date"`
	Content       string     `json:"content"`
	FeaturedImage *imageNode `json:"featuredImage"`
	ProjectFields struct {
		ProblemStatement string `json:"problemStatement"`
		ToolsUsed        string `json:"toolsUsed"`
		Outcome          string `json:"outcome"`
		LiveLink         string `json:"liveLink"`
		RepositoryLink   string `json:"repositoryLink"`
		ImageAiHint      string `json:"imageAiHint"`
	} `json:"projectFields"`
	Author authorNode `json:"author"`
	Tags   termEdges  `json:"tags"`
}

// toPost flattens a post node onto the local Post shape. Remote queries
// only return published content, so Published is always true here.
func (n postNode) toPost() models.Post {
	p := models.Post{
		ID:        n.ID,
		Slug:      n.Slug,
		Title:     n.Title,
		Content:   n.Content,
		Excerpt:   n.Excerpt,
		Published: true,
		Date:      isoDate(n.Date),
		Author:    n.Author.Node.Name,
		Tags:      termNames(n.Tags),
	}
	if len(n.Categories.Edges) > 0 {
		p.Category = n.Categories.Edges[0].Node.Slug
	}
	if n.FeaturedImage != nil {
		p.CoverImage = n.FeaturedImage.Node.SourceURL
		p.ImageHint = n.FeaturedImage.Node.AltText
	}
	return p
}

func (n projectNode) toProject() models.Project {
	p := models.Project{
		ID:          n.ID,
		Slug:        n.Slug,
		Title:       n.Title,
		Description: n.Content,
		Problem:     n.ProjectFields.ProblemStatement,
		Outcome:     n.ProjectFields.Outcome,
		Tools:       repository.ParseTools(n.ProjectFields.ToolsUsed),
		LiveLink:    n.ProjectFields.LiveLink,
		RepoLink:    n.ProjectFields.RepositoryLink,
		ImageHint:   n.ProjectFields.ImageAiHint,
		Published:   true,
		Date:        isoDate(n.Date),
		Author:      n.Author.Node.Name,
		Tags:        termNames(n.Tags),
	}
	if n.FeaturedImage != nil {
		p.ImageURL = n.FeaturedImage.Node.SourceURL
		if p.ImageHint == "" {
			p.ImageHint = n.FeaturedImage.Node.AltText
		}
	}
	return p
}

func termNames(t termEdges) []string {
	names := make([]string, 0, len(t.Edges))
	for _, e := range t.Edges {
		names = append(names, e.Node.Name)
	}
	return names
}

// isoDate reduces WordPress's full timestamp to the YYYY-MM-DD form the
// local entities carry.
func isoDate(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i > 0 {
		return ts[:i]
	}
	return ts
}
