package models

// Project represents one portfolio project entry.
//
// Description, Problem and Outcome hold HTML fragments authored in the
// admin UI. Tools is derived from a comma-separated form field and is
// stored trimmed, with empties dropped but without deduplication.
type Project struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Problem     string   `json:"problem"`
	Outcome     string   `json:"outcome"`
	Tools       []string `json:"tools"`
	ImageURL    string   `json:"image_url,omitempty"`
	ImageHint   string   `json:"image_hint,omitempty"`
	LiveLink    string   `json:"live_link,omitempty"`
	RepoLink    string   `json:"repo_link,omitempty"`
	Published   bool     `json:"published"`
	Date        string   `json:"date"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
}

// EntityID returns the project's unique identifier.
func (p Project) EntityID() string { return p.ID }

// EntitySlug returns the project's URL slug.
func (p Project) EntitySlug() string { return p.Slug }
