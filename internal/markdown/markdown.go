// Package markdown converts authored Markdown into the HTML the content
// store serves, and parses frontmatter-led documents for post import.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var converter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		// Authored content embeds raw HTML (img tags, styled blocks).
		gmhtml.WithUnsafe(),
	),
)

// ToHTML renders GitHub-flavored Markdown to HTML.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := converter.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}

// FrontMatter is the metadata block accepted at the top of an imported
// post document.
type FrontMatter struct {
	Title      string   `yaml:"title"`
	Slug       string   `yaml:"slug"`
	Category   string   `yaml:"category"`
	Excerpt    string   `yaml:"excerpt"`
	CoverImage string   `yaml:"coverImage"`
	ImageHint  string   `yaml:"imageHint"`
	Tags       []string `yaml:"tags"`
	Published  bool     `yaml:"published"`
}

// Document is one parsed import: frontmatter plus the Markdown body.
type Document struct {
	Meta FrontMatter
	Body string
}

// ParseDocument splits a Markdown document into frontmatter and body.
// A document without any frontmatter block is accepted as pure Markdown;
// a document whose block does not parse is an error, so a broken header
// never ends up served as post content.
func ParseDocument(source string) (Document, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(strings.NewReader(source), &meta)
	if err != nil {
		return Document{}, fmt.Errorf("parse frontmatter: %w", err)
	}
	return Document{Meta: meta, Body: string(body)}, nil
}
