package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gemeinde/wegewart-api/internal/application/dto"
	"github.com/gemeinde/wegewart-api/internal/application/entries"
)

// EntryHandler work-entry CRUD and the batch status transitions.
type EntryHandler struct {
	uc *entries.UseCase
}

// NewEntryHandler builds the entry handler.
func NewEntryHandler(uc *entries.UseCase) *EntryHandler {
	return &EntryHandler{uc: uc}
}

// List godoc
// @Summary      List visible work entries
// @Tags         entries
// @Produce      json
// @Param        from       query  string  false  "inclusive lower bound, YYYY-MM-DD"
// @Param        to         query  string  false  "inclusive upper bound, YYYY-MM-DD"
// @Param        worker_id  query  string  false  "restrict to one worker"
// @Param        ortsteil   query  string  false  "restrict to one district"
// @Param        status     query  string  false  "submitted|approved|billed|rejected"
// @Success      200  {object}  dto.EntryListResponse
// @Router       /api/entries [get]
func (h *EntryHandler) List(c *fiber.Ctx) error {
	var q dto.EntryListQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "invalid query")
	}
	out, err := h.uc.List(c.Context(), GetActor(c), q)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Get one work entry
// @Tags         entries
// @Produce      json
// @Param        id  path  string  true  "entry id"
// @Success      200  {object}  dto.EntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entries/{id} [get]
func (h *EntryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetActor(c), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Record a work entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntryRequest  true  "entry"
// @Success      201  {object}  dto.EntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/entries [post]
func (h *EntryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEntryRequest
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
// @Summary      Patch a work entry
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "entry id"
// @Param        body  body  dto.UpdateEntryRequest  true  "fields to change"
// @Success      200  {object}  dto.EntryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/entries/{id} [put]
func (h *EntryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	out, err := h.uc.Update(c.Context(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a work entry
// @Tags         entries
// @Param        id  path  string  true  "entry id"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/entries/{id} [delete]
func (h *EntryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetActor(c), c.Params("id")); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Approve godoc
// @Summary      Approve submitted entries
// @Description  Ineligible ids are skipped silently; the response carries the applied count.
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchApproveRequest  true  "ids"
// @Success      200  {object}  dto.BatchStatusResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/entries/approve [post]
func (h *EntryHandler) Approve(c *fiber.Ctx) error {
	var in dto.BatchApproveRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := validateStruct(in); err != nil {
		return badRequest(c, err.Error())
	}
	applied, err := h.uc.BatchApprove(c.Context(), GetActor(c), in.IDs)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.BatchStatusResponse{Applied: applied})
}

// Reject godoc
// @Summary      Reject submitted entries
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchRejectRequest  true  "ids plus the mandatory reason"
// @Success      200  {object}  dto.BatchStatusResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/entries/reject [post]
func (h *EntryHandler) Reject(c *fiber.Ctx) error {
	var in dto.BatchRejectRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := validateStruct(in); err != nil {
		return badRequest(c, err.Error())
	}
	applied, err := h.uc.BatchReject(c.Context(), GetActor(c), in.IDs, in.Reason)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.BatchStatusResponse{Applied: applied})
}

// Bill godoc
// @Summary      Mark approved entries as billed
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchApproveRequest  true  "ids"
// @Success      200  {object}  dto.BatchStatusResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/entries/bill [post]
func (h *EntryHandler) Bill(c *fiber.Ctx) error {
	var in dto.BatchApproveRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := validateStruct(in); err != nil {
		return badRequest(c, err.Error())
	}
	applied, err := h.uc.BatchBill(c.Context(), GetActor(c), in.IDs)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(dto.BatchStatusResponse{Applied: applied})
}
