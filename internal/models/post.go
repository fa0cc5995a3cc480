// Package models contains data structures for the application's domain models.
package models

// Post represents a single blog post in the content store.
//
// IDs are timestamp-derived strings assigned by the repository at create
// time; Date is set once at creation and never touched by updates.
type Post struct {
	ID         string   `json:"id"`
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Category   string   `json:"category"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt"`
	CoverImage string   `json:"cover_image,omitempty"`
	ImageHint  string   `json:"image_hint,omitempty"`
	Published  bool     `json:"published"`
	Date       string   `json:"date"`
	Author     string   `json:"author"`
	Tags       []string `json:"tags"`
}

// EntityID returns the post's unique identifier.
func (p Post) EntityID() string { return p.ID }

// EntitySlug returns the post's URL slug.
func (p Post) EntitySlug() string { return p.Slug }
