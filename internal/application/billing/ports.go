package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gemeinde/wegewart-api/internal/domain/entity"
)

// ReportData is everything the PDF renderer needs for one billing report.
type ReportData struct {
	Title             string
	Period            string
	Ortsteil          string // empty = all districts
	Entries           []*entity.WorkEntry
	TotalHours        decimal.Decimal
	TotalMachineHours decimal.Decimal
}

// ReportPDFGenerator renders the billing report document.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, data ReportData) ([]byte, error)
}
