package repository

import (
	"context"
	"errors"
	"strings"

	"studio/internal/models"
	"studio/internal/storage"
)

// ErrEmailTaken is returned when a signup reuses an existing email.
var ErrEmailTaken = errors.New("repository: email already registered")

// UserRepository manages the admin credential table.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, email, passwordHash string) (*models.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) (*models.User, error)
}

type userRepository struct {
	coll *collection[models.User]
}

// NewUserRepository creates a user repository over the credentials slot.
func NewUserRepository(store storage.SlotStore) UserRepository {
	return &userRepository{
		coll: newCollection(store, storage.UsersSlot, []models.User{}),
	}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.coll.getByID(ctx, id)
}

// normalizeEmail keeps the credential table case-insensitive. Emails are
// stored and looked up in lowercase so Admin@x.com and admin@x.com are
// the same account.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	// Users key by email; the collection's slug lookup serves it.
	return r.coll.getBySlug(ctx, normalizeEmail(email))
}

func (r *userRepository) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	user := models.User{
		ID:           newID(),
		Email:        normalizeEmail(email),
		PasswordHash: passwordHash,
		Created:      today(),
	}
	if err := r.coll.create(ctx, user); err != nil {
		if errors.Is(err, ErrSlugTaken) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) (*models.User, error) {
	return r.coll.update(ctx, id, func(u *models.User) {
		u.PasswordHash = passwordHash
	})
}
