package server

import (
	"fmt"

	"studio/internal/icons"
	"studio/internal/models"
	"studio/internal/repository"
	"studio/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetAbout handles GET /api/about
func (s *Server) GetAbout(c *fiber.Ctx) error {
	content, err := s.aboutRepo.Get(c.Context())
	if err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(content)
}

// UpdateAbout handles PUT /api/about. A non-nil achievements list
// replaces the stored one wholesale.
func (s *Server) UpdateAbout(c *fiber.Ctx) error {
	var body struct {
		MainText     *string               `json:"main_text"`
		ImageURL     *string               `json:"image_url"`
		ImageHint    *string               `json:"image_hint"`
		Achievements *[]models.Achievement `json:"achievements"`
	}
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if body.MainText != nil && *body.MainText == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(map[string]string{
				"main_text": "About text cannot be empty.",
			}))
	}

	if body.Achievements != nil {
		schema := validation.AchievementSchema()
		for i, a := range *body.Achievements {
			errs := schema.Validate(map[string]string{
				"icon_name": a.IconName,
				"text":      a.Text,
			})
			if len(errs) > 0 {
				prefixed := make(map[string]string, len(errs))
				for field, msg := range errs {
					prefixed[fmt.Sprintf("achievements.%d.%s", i, field)] = msg
				}
				return models.RespondWithError(c, fiber.StatusBadRequest,
					models.NewFieldValidationError(prefixed))
			}
		}
	}

	content, err := s.aboutRepo.Update(c.Context(), repository.UpdateAboutInput{
		MainText:     body.MainText,
		ImageURL:     body.ImageURL,
		ImageHint:    body.ImageHint,
		Achievements: body.Achievements,
	})
	if err != nil {
		return respondRepoError(c, err)
	}
	return c.JSON(content)
}

// GetIcons handles GET /api/icons, listing the achievement icon names
// the admin UI can choose from.
func (s *Server) GetIcons(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"icons":   icons.Names(),
		"default": icons.DefaultIcon,
	})
}
