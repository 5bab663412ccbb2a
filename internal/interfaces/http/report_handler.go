package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gemeinde/wegewart-api/internal/application/billing"
)

// ReportHandler serves the billing PDF.
type ReportHandler struct {
	uc *billing.ReportUseCase
}

// NewReportHandler builds the report handler.
func NewReportHandler(uc *billing.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Report godoc
// @Summary      Billing report of billed entries as PDF
// @Tags         entries
// @Produce      application/pdf
// @Param        from      query  string  false  "inclusive lower bound, YYYY-MM-DD"
// @Param        to        query  string  false  "inclusive upper bound, YYYY-MM-DD"
// @Param        ortsteil  query  string  false  "restrict to one district"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/entries/report [get]
func (h *ReportHandler) Report(c *fiber.Ctx) error {
	out, err := h.uc.Generate(c.Context(), GetActor(c),
		c.Query("from"), c.Query("to"), c.Query("ortsteil"))
	if err != nil {
		return errorJSON(c, err)
	}
	filename := fmt.Sprintf("abrechnung_%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(out)
}
