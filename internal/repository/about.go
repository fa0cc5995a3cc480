package repository

import (
	"context"

	"studio/internal/models"
	"studio/internal/observability"
	"studio/internal/storage"

	"github.com/google/uuid"
)

// AboutRepository manages the singleton about-page record.
type AboutRepository interface {
	Get(ctx context.Context) (models.AboutContent, error)
	Update(ctx context.Context, in UpdateAboutInput) (models.AboutContent, error)
}

// UpdateAboutInput is a partial update of the about record. A non-nil
// Achievements slice replaces the stored list wholesale; entries without
// an id are assigned one.
type UpdateAboutInput struct {
	MainText     *string
	ImageURL     *string
	ImageHint    *string
	Achievements *[]models.Achievement
}

type aboutRepository struct {
	store storage.SlotStore
	seed  models.AboutContent
	log   *observability.RepoLogger
}

// NewAboutRepository creates the about repository. The seed record is
// written on first read of an empty store.
func NewAboutRepository(store storage.SlotStore, seed models.AboutContent) AboutRepository {
	seed.ID = models.AboutContentID
	return &aboutRepository{
		store: store,
		seed:  seed,
		log:   observability.NewRepoLogger(storage.AboutSlot),
	}
}

func (r *aboutRepository) Get(ctx context.Context) (models.AboutContent, error) {
	content, err := storage.LoadOne(ctx, r.store, storage.AboutSlot, r.seed)
	if err != nil {
		r.log.LogError(ctx, err, "load")
		return models.AboutContent{}, err
	}
	// Old stored shapes may predate the sentinel id.
	if content.ID == "" {
		content.ID = models.AboutContentID
	}
	return content, nil
}

func (r *aboutRepository) Update(ctx context.Context, in UpdateAboutInput) (models.AboutContent, error) {
	content, err := r.Get(ctx)
	if err != nil {
		return models.AboutContent{}, err
	}

	if in.MainText != nil {
		content.MainText = *in.MainText
	}
	if in.ImageURL != nil {
		content.ImageURL = *in.ImageURL
	}
	if in.ImageHint != nil {
		content.ImageHint = *in.ImageHint
	}
	if in.Achievements != nil {
		achievements := make([]models.Achievement, 0, len(*in.Achievements))
		for _, a := range *in.Achievements {
			if a.ID == "" {
				a.ID = "ach-" + uuid.NewString()
			}
			achievements = append(achievements, a)
		}
		content.Achievements = achievements
	}
	content.ID = models.AboutContentID

	if err := storage.SaveOne(ctx, r.store, storage.AboutSlot, content); err != nil {
		r.log.LogError(ctx, err, "save")
		return models.AboutContent{}, err
	}
	r.log.LogWrite(ctx, "update", content.ID)
	return content, nil
}
