package server

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"studio/internal/models"
	"studio/internal/repository"
	"studio/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "studio-api"
	tokenAudience = "studio-admin"
)

// generateToken issues a signed JWT for the admin user.
func (s *Server) generateToken(userID, email string) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"iss":   tokenIssuer,
		"aud":   tokenAudience,
		"exp":   now.Add(time.Hour * 24 * 7).Unix(),
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"jti":   s.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func (s *Server) generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}

// currentUserID returns the authenticated user's id set by AuthRequired.
func currentUserID(c *fiber.Ctx) string {
	if uid, ok := c.Locals("userID").(string); ok {
		return uid
	}
	return ""
}

// respondRepoError maps repository failures onto HTTP statuses. Slot
// corruption is surfaced as a distinct 500 so operators can tell a bad
// payload from an unreachable store.
func respondRepoError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, storage.ErrCorruptSlot):
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewStorageCorruptError(err))
	case errors.Is(err, repository.ErrSlugTaken):
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewValidationError("Slug is already in use"))
	case errors.Is(err, repository.ErrEmailTaken):
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewValidationError("User already exists"))
	default:
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
}

// respondGatewayError maps a remote content failure to 502.
func respondGatewayError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, fiber.StatusBadGateway, &models.AppError{
		Code:    "GATEWAY_ERROR",
		Message: "Remote content source failed",
		Err:     err,
	})
}

// parsePageArgs reads ?first and ?after cursor pagination query params,
// clamping the page size to a sane range.
func parsePageArgs(c *fiber.Ctx, defaultFirst int) (int, string) {
	first := defaultFirst
	if raw := c.Query("first"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			first = n
		}
	}
	if first > 100 {
		first = 100
	}
	return first, c.Query("after")
}
