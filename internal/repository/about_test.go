package repository

import (
	"context"
	"testing"

	"studio/internal/models"
	"studio/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultAboutSeed() models.AboutContent {
	return models.AboutContent{
		MainText:  "<p>Hello!</p>",
		ImageURL:  "https://example.com/me.jpg",
		ImageHint: "person working",
		Achievements: []models.Achievement{
			{ID: "ach-1", IconName: "Award", Text: "Did a thing"},
		},
	}
}

func TestAboutRepository_GetSeedsSingleton(t *testing.T) {
	repo := NewAboutRepository(storage.NewMemoryStore(), defaultAboutSeed())

	content, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.AboutContentID, content.ID, "singleton always carries the sentinel id")
	assert.Equal(t, "<p>Hello!</p>", content.MainText)
	require.Len(t, content.Achievements, 1)
}

func TestAboutRepository_UpdateMerges(t *testing.T) {
	repo := NewAboutRepository(storage.NewMemoryStore(), defaultAboutSeed())
	ctx := context.Background()

	text := "<p>Updated bio</p>"
	updated, err := repo.Update(ctx, UpdateAboutInput{MainText: &text})
	require.NoError(t, err)

	assert.Equal(t, "<p>Updated bio</p>", updated.MainText)
	assert.Equal(t, "https://example.com/me.jpg", updated.ImageURL, "unspecified fields keep stored values")
	assert.Equal(t, models.AboutContentID, updated.ID)

	reloaded, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "<p>Updated bio</p>", reloaded.MainText)
}

func TestAboutRepository_UpdateAssignsAchievementIDs(t *testing.T) {
	repo := NewAboutRepository(storage.NewMemoryStore(), defaultAboutSeed())

	achievements := []models.Achievement{
		{ID: "ach-1", IconName: "Award", Text: "Kept"},
		{IconName: "Brain", Text: "Brand new"},
	}
	updated, err := repo.Update(context.Background(), UpdateAboutInput{Achievements: &achievements})
	require.NoError(t, err)

	require.Len(t, updated.Achievements, 2)
	assert.Equal(t, "ach-1", updated.Achievements[0].ID)
	assert.NotEmpty(t, updated.Achievements[1].ID, "new achievements get generated ids")
	assert.Contains(t, updated.Achievements[1].ID, "ach-")
}
