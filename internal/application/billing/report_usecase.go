// Package billing produces the printable Abrechnung of billed work entries.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gemeinde/wegewart-api/internal/application/dto"
	"github.com/gemeinde/wegewart-api/internal/domain"
	"github.com/gemeinde/wegewart-api/internal/domain/entity"
	"github.com/gemeinde/wegewart-api/internal/domain/repository"
)

// ReportUseCase builds the PDF of billed entries for a period and optional
// district. Verwaltung/admin only: this is the accounting output.
type ReportUseCase struct {
	entries repository.WorkEntryRepository
	pdf     ReportPDFGenerator
	log     zerolog.Logger
}

// NewReportUseCase builds the use case.
func NewReportUseCase(entries repository.WorkEntryRepository, pdf ReportPDFGenerator, log zerolog.Logger) *ReportUseCase {
	return &ReportUseCase{entries: entries, pdf: pdf, log: log}
}

// Generate renders the billing report for [from, to] (inclusive, optional
// bounds) and the given district ("" = all).
func (uc *ReportUseCase) Generate(ctx context.Context, actor domain.Actor, fromStr, toStr, ortsteil string) ([]byte, error) {
	if actor.Scope() != domain.ScopeAll {
		return nil, domain.ErrPermission
	}

	f := repository.EntryFilter{Status: entity.StatusBilled, Ortsteil: ortsteil}
	if fromStr != "" {
		from, err := time.Parse(dto.DateLayout, fromStr)
		if err != nil {
			return nil, fmt.Errorf("%w: from must be YYYY-MM-DD", domain.ErrValidation)
		}
		f.DateFrom = &from
	}
	if toStr != "" {
		to, err := time.Parse(dto.DateLayout, toStr)
		if err != nil {
			return nil, fmt.Errorf("%w: to must be YYYY-MM-DD", domain.ErrValidation)
		}
		f.DateTo = &to
	}

	list, err := uc.entries.List(ctx, f)
	if err != nil {
		return nil, err
	}

	totalHours := decimal.Zero
	totalMachine := decimal.Zero
	for _, e := range list {
		totalHours = totalHours.Add(e.Hours)
		if e.MachineHours != nil {
			totalMachine = totalMachine.Add(*e.MachineHours)
		}
	}

	data := ReportData{
		Title:             "Wegewart-Abrechnung",
		Period:            periodLabel(fromStr, toStr),
		Ortsteil:          ortsteil,
		Entries:           list,
		TotalHours:        totalHours,
		TotalMachineHours: totalMachine,
	}
	out, err := uc.pdf.GenerateReportPDF(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("billing report: %w", err)
	}

	uc.log.Info().
		Str("actor_id", actor.ID).
		Str("ortsteil", ortsteil).
		Int("entries", len(list)).
		Msg("billing report generated")
	return out, nil
}

func periodLabel(from, to string) string {
	switch {
	case from == "" && to == "":
		return "gesamter Zeitraum"
	case from == "":
		return "bis " + to
	case to == "":
		return "ab " + from
	default:
		return from + " – " + to
	}
}
