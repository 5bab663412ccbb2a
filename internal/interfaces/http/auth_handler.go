package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gemeinde/wegewart-api/internal/application/auth"
	"github.com/gemeinde/wegewart-api/internal/application/dto"
)

// AuthHandler login and own-password change.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := validateStruct(in); err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// ChangePassword godoc
// @Summary      Change own password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "old_password, new_password"
// @Success      204
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := validateStruct(in); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.ChangePassword(c.Context(), GetActor(c).ID, in); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
