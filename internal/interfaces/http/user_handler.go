package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gemeinde/wegewart-api/internal/application/dto"
	"github.com/gemeinde/wegewart-api/internal/application/usecase"
	"github.com/gemeinde/wegewart-api/internal/domain/entity"
)

// UserHandler account administration plus the worker and role listings.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler builds the user handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      List all accounts
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Create an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "account"
// @Success      201  {object}  dto.UserResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := validateStruct(in); err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.uc.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Patch an account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "user id"
// @Param        body  body  dto.UpdateUserRequest  true  "fields to change"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := validateStruct(in); err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Activate godoc
// @Summary      Activate an account
// @Tags         users
// @Param        id  path  string  true  "user id"
// @Success      204
// @Router       /api/users/{id}/activate [post]
func (h *UserHandler) Activate(c *fiber.Ctx) error {
	if err := h.uc.SetActive(c.Context(), GetActor(c), c.Params("id"), true); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Deactivate godoc
// @Summary      Deactivate an account
// @Description  Deactivation replaces deletion; historical entries keep their owner.
// @Tags         users
// @Param        id  path  string  true  "user id"
// @Success      204
// @Router       /api/users/{id}/deactivate [post]
func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.SetActive(c.Context(), GetActor(c), c.Params("id"), false); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Workers godoc
// @Summary      Workers selectable as entry owner
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.WorkerResponse
// @Router       /api/workers [get]
func (h *UserHandler) Workers(c *fiber.Ctx) error {
	out, err := h.uc.VisibleWorkers(c.Context(), GetActor(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Roles godoc
// @Summary      Role vocabulary
// @Tags         users
// @Produce      json
// @Success      200  {array}  entity.RoleInfo
// @Router       /api/roles [get]
func (h *UserHandler) Roles(c *fiber.Ctx) error {
	return c.JSON(entity.KnownRoles)
}
