package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validPostValues() map[string]string {
	return map[string]string{
		"title":       "Understanding Large Language Models",
		"slug":        "understanding-llms",
		"category":    "ai-news",
		"content":     strings.Repeat("Large language models process text. ", 3),
		"excerpt":     "Short summary about LLMs.",
		"cover_image": "https://picsum.photos/seed/llm/400/200",
	}
}

func TestPostSchema_ValidSubmission(t *testing.T) {
	errs := PostSchema().Validate(validPostValues())
	assert.Empty(t, errs)
}

func TestPostSchema_ShortContentRejected(t *testing.T) {
	values := validPostValues()
	values["content"] = "too short"

	errs := PostSchema().Validate(values)
	assert.Equal(t, "Content must be at least 50 characters.", errs["content"])
}

func TestPostSchema_SlugRules(t *testing.T) {
	tests := []struct {
		name  string
		slug  string
		valid bool
	}{
		{"simple", "my-post", true},
		{"numbers", "post-123", true},
		{"single word", "post", true},
		{"uppercase", "My-Post", false},
		{"spaces", "my post", false},
		{"leading hyphen", "-post", false},
		{"trailing hyphen", "post-", false},
		{"double hyphen", "my--post", false},
		{"too short", "ab", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validPostValues()
			values["slug"] = tt.slug
			errs := PostSchema().Validate(values)
			if tt.valid {
				assert.NotContains(t, errs, "slug")
			} else {
				assert.Contains(t, errs, "slug")
			}
		})
	}
}

func TestPostSchema_OptionalCoverImage(t *testing.T) {
	values := validPostValues()
	values["cover_image"] = ""
	assert.Empty(t, PostSchema().Validate(values), "empty cover image is allowed")

	values["cover_image"] = "not a url"
	errs := PostSchema().Validate(values)
	assert.Contains(t, errs, "cover_image")
}

func TestPostSchema_ExcerptTooLong(t *testing.T) {
	values := validPostValues()
	values["excerpt"] = strings.Repeat("x", 201)
	errs := PostSchema().Validate(values)
	assert.Equal(t, "Excerpt cannot exceed 200 characters.", errs["excerpt"])
}

func TestPostSchema_FirstFailingRuleWins(t *testing.T) {
	values := validPostValues()
	values["slug"] = "AB"

	errs := PostSchema().Validate(values)
	// MinLen(3) runs before the pattern rule.
	assert.Equal(t, "Slug must be at least 3 characters.", errs["slug"])
}

func TestProjectSchema_RequiresToolsAndProse(t *testing.T) {
	errs := ProjectSchema().Validate(map[string]string{
		"title":       "Data Analysis for Allagash",
		"slug":        "allagash-data",
		"description": strings.Repeat("d", 25),
		"problem":     strings.Repeat("p", 25),
		"outcome":     strings.Repeat("o", 25),
		"tools":       "Python, Pandas",
	})
	assert.Empty(t, errs)

	errs = ProjectSchema().Validate(map[string]string{
		"title":       "Data Analysis for Allagash",
		"slug":        "allagash-data",
		"description": "short",
		"problem":     strings.Repeat("p", 25),
		"outcome":     strings.Repeat("o", 25),
		"tools":       "",
	})
	assert.Contains(t, errs, "description")
	assert.Contains(t, errs, "tools")
}

func TestPasswordChangeSchema_CrossFieldEquality(t *testing.T) {
	errs := PasswordChangeSchema().Validate(map[string]string{
		"current_password": "old-password",
		"new_password":     "new-password-1",
		"confirm_password": "new-password-2",
	})
	assert.Equal(t, "New passwords don't match.", errs["confirm_password"])

	errs = PasswordChangeSchema().Validate(map[string]string{
		"current_password": "old-password",
		"new_password":     "new-password-1",
		"confirm_password": "new-password-1",
	})
	assert.Empty(t, errs)
}

func TestLoginSchema(t *testing.T) {
	errs := LoginSchema().Validate(map[string]string{
		"email":    "not-an-email",
		"password": "",
	})
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")

	errs = LoginSchema().Validate(map[string]string{
		"email":    "admin@example.com",
		"password": "hunter2",
	})
	assert.Empty(t, errs)
}
