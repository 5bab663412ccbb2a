package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gemeinde/wegewart-api/internal/application/dto"
	"github.com/gemeinde/wegewart-api/internal/application/usecase"
)

// MachineHandler machine catalogue endpoints.
type MachineHandler struct {
	uc *usecase.MachineUseCase
}

// NewMachineHandler builds the machine handler.
func NewMachineHandler(uc *usecase.MachineUseCase) *MachineHandler {
	return &MachineHandler{uc: uc}
}

// List godoc
// @Summary      List machines
// @Tags         machines
// @Produce      json
// @Param        active    query  string  false  "true restricts to active machines"
// @Param        category  query  string  false  "restrict to one category"
// @Success      200  {object}  dto.MachineListResponse
// @Router       /api/machines [get]
func (h *MachineHandler) List(c *fiber.Ctx) error {
	var q dto.MachineListQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "invalid query")
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Create a machine
// @Tags         machines
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMachineRequest  true  "machine"
// @Success      201  {object}  dto.MachineResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/machines [post]
func (h *MachineHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMachineRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := validateStruct(in); err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Patch a machine
// @Tags         machines
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "machine id"
// @Param        body  body  dto.UpdateMachineRequest  true  "fields to change"
// @Success      200  {object}  dto.MachineResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/machines/{id} [put]
func (h *MachineHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMachineRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete an unreferenced machine
// @Tags         machines
// @Param        id  path  string  true  "machine id"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/machines/{id} [delete]
func (h *MachineHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
