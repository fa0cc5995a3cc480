package models

// User is an admin account stored in the credentials slot.
//
// PasswordHash carries the bcrypt hash. Users are persisted through the
// JSON codec, so the hash must survive marshalling; handlers call
// Sanitized before writing a user into a response.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash,omitempty"`
	Created      string `json:"created"`
}

// EntityID returns the user's unique identifier.
func (u User) EntityID() string { return u.ID }

// EntitySlug returns the lookup key for users, which is the email address.
func (u User) EntitySlug() string { return u.Email }

// Sanitized returns a copy safe to include in API responses.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
