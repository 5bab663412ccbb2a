package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/gemeinde/wegewart-api/internal/application/dto"
	"github.com/gemeinde/wegewart-api/internal/domain"
	"github.com/gemeinde/wegewart-api/internal/domain/entity"
	"github.com/gemeinde/wegewart-api/pkg/jwt"
)

// LocalActor is the Locals key for the resolved Actor.
const LocalActor = "actor"

// AuthMiddleware validates the Bearer token and resolves the caller into a
// domain.Actor in c.Locals. The role string is decoded here, exactly once
// per request.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		userID, ortsteil, roles, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "invalid or expired token"})
		}
		c.Locals(LocalActor, domain.Actor{
			ID:       userID,
			Ortsteil: ortsteil,
			Roles:    entity.ParseRoles(roles),
		})
		return c.Next()
	}
}

// GetActor returns the resolved actor (after AuthMiddleware).
func GetActor(c *fiber.Ctx) domain.Actor {
	v := c.Locals(LocalActor)
	if v == nil {
		return domain.Actor{}
	}
	a, _ := v.(domain.Actor)
	return a
}

// RequireRole guards a route group: the actor must hold at least one of the
// given role tags.
func RequireRole(tags ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := GetActor(c)
		if !actor.Roles.HasAny(tags...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "insufficient role"})
		}
		return c.Next()
	}
}
