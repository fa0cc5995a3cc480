package validation

import "regexp"

// slugRegex accepts lowercase alphanumerics joined by single hyphens.
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// PostSchema validates the admin post form.
func PostSchema() Schema {
	return Schema{
		Fields: []Field{
			{Name: "title", Rules: []Rule{
				MinLen(5, "Title must be at least 5 characters."),
			}},
			{Name: "slug", Rules: []Rule{
				MinLen(3, "Slug must be at least 3 characters."),
				Pattern(slugRegex, "Slug can only contain lowercase letters, numbers, and hyphens."),
			}},
			{Name: "category", Rules: []Rule{
				Required("Please select a category."),
			}},
			{Name: "content", Rules: []Rule{
				MinLen(50, "Content must be at least 50 characters."),
			}},
			{Name: "excerpt", Rules: []Rule{
				MaxLen(200, "Excerpt cannot exceed 200 characters."),
			}},
			{Name: "cover_image", Rules: []Rule{
				OptionalURL("Please enter a valid URL for the cover image."),
			}},
		},
	}
}

// ProjectSchema validates the admin project form. The tools field is the
// raw comma-separated string as entered.
func ProjectSchema() Schema {
	return Schema{
		Fields: []Field{
			{Name: "title", Rules: []Rule{
				MinLen(5, "Title must be at least 5 characters."),
			}},
			{Name: "slug", Rules: []Rule{
				MinLen(3, "Slug must be at least 3 characters."),
				Pattern(slugRegex, "Slug can only contain lowercase letters, numbers, and hyphens."),
			}},
			{Name: "description", Rules: []Rule{
				MinLen(20, "Description must be at least 20 characters (HTML supported)."),
			}},
			{Name: "problem", Rules: []Rule{
				MinLen(20, "Problem statement must be at least 20 characters (HTML supported)."),
			}},
			{Name: "outcome", Rules: []Rule{
				MinLen(20, "Outcome must be at least 20 characters (HTML supported)."),
			}},
			{Name: "tools", Rules: []Rule{
				Required("Please list at least one tool, comma-separated."),
			}},
			{Name: "image_url", Rules: []Rule{
				OptionalURL("Please enter a valid URL."),
			}},
			{Name: "live_link", Rules: []Rule{
				OptionalURL("Please enter a valid URL."),
			}},
			{Name: "repo_link", Rules: []Rule{
				OptionalURL("Please enter a valid URL."),
			}},
		},
	}
}

// AchievementSchema validates one about-page achievement entry.
func AchievementSchema() Schema {
	return Schema{
		Fields: []Field{
			{Name: "icon_name", Rules: []Rule{
				Required("Please choose an icon."),
			}},
			{Name: "text", Rules: []Rule{
				MinLen(10, "Achievement text must be at least 10 characters."),
			}},
		},
	}
}

// LoginSchema validates the login form.
func LoginSchema() Schema {
	return Schema{
		Fields: []Field{
			{Name: "email", Rules: []Rule{
				Email("Please enter a valid email."),
			}},
			{Name: "password", Rules: []Rule{
				Required("Password is required."),
			}},
		},
	}
}

// SignupSchema validates the signup form.
func SignupSchema() Schema {
	return Schema{
		Fields: []Field{
			{Name: "email", Rules: []Rule{
				Email("Please enter a valid email."),
			}},
			{Name: "password", Rules: []Rule{
				MinLen(8, "Password must be at least 8 characters."),
			}},
		},
	}
}

// PasswordChangeSchema validates the account password-change form,
// including the new/confirm cross-field check.
func PasswordChangeSchema() Schema {
	return Schema{
		Fields: []Field{
			{Name: "current_password", Rules: []Rule{
				Required("Current password is required."),
			}},
			{Name: "new_password", Rules: []Rule{
				MinLen(8, "New password must be at least 8 characters."),
			}},
			{Name: "confirm_password", Rules: []Rule{
				MinLen(8, "Confirm password must be at least 8 characters."),
			}},
		},
		Cross: []CrossRule{
			FieldsEqual("new_password", "confirm_password", "New passwords don't match."),
		},
	}
}
