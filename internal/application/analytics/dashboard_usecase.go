// Package analytics builds the per-role dashboard counters shown on the
// start page.
package analytics

import (
	"context"
	"fmt"

	"github.com/gemeinde/wegewart-api/internal/application/dto"
	"github.com/gemeinde/wegewart-api/internal/domain"
	"github.com/gemeinde/wegewart-api/internal/domain/entity"
	"github.com/gemeinde/wegewart-api/internal/domain/repository"
)

// DashboardUseCase summarizes entry counts for the actor's broadest role.
// Read-only; delegates everything to the entry repository.
type DashboardUseCase struct {
	entries repository.WorkEntryRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(entries repository.WorkEntryRepository) *DashboardUseCase {
	return &DashboardUseCase{entries: entries}
}

type countResult struct {
	n   int
	err error
}

// GetSummary runs the three counters of the role section in parallel.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, actor domain.Actor) (*dto.DashboardResponse, error) {
	switch actor.Scope() {
	case domain.ScopeAll:
		queue, total, billed, err := uc.count3(ctx,
			repository.EntryFilter{Status: entity.StatusApproved},
			repository.EntryFilter{},
			repository.EntryFilter{Status: entity.StatusBilled},
		)
		if err != nil {
			return nil, fmt.Errorf("dashboard: %w", err)
		}
		return &dto.DashboardResponse{
			Role:    entity.RoleVerwaltung,
			Billing: &dto.BillingStats{AwaitingBilling: queue, Total: total, Billed: billed},
		}, nil

	case domain.ScopeDistrict:
		pending, approved, total, err := uc.count3(ctx,
			repository.EntryFilter{ScopeOrtsteil: actor.Ortsteil, Status: entity.StatusSubmitted},
			repository.EntryFilter{ScopeOrtsteil: actor.Ortsteil, Status: entity.StatusApproved},
			repository.EntryFilter{ScopeOrtsteil: actor.Ortsteil},
		)
		if err != nil {
			return nil, fmt.Errorf("dashboard: %w", err)
		}
		return &dto.DashboardResponse{
			Role:       entity.RoleOrtsvorsteher,
			Supervisor: &dto.SupervisorStats{Pending: pending, Approved: approved, Total: total},
		}, nil

	default:
		total, submitted, rejected, err := uc.count3(ctx,
			repository.EntryFilter{ScopeOwnerID: actor.ID},
			repository.EntryFilter{ScopeOwnerID: actor.ID, Status: entity.StatusSubmitted},
			repository.EntryFilter{ScopeOwnerID: actor.ID, Status: entity.StatusRejected},
		)
		if err != nil {
			return nil, fmt.Errorf("dashboard: %w", err)
		}
		return &dto.DashboardResponse{
			Role:   entity.RoleWegewart,
			Worker: &dto.WorkerStats{Total: total, Submitted: submitted, Rejected: rejected},
		}, nil
	}
}

// count3 issues the three counts concurrently.
func (uc *DashboardUseCase) count3(ctx context.Context, a, b, c repository.EntryFilter) (int, int, int, error) {
	chA := make(chan countResult, 1)
	chB := make(chan countResult, 1)
	chC := make(chan countResult, 1)

	go func() {
		n, err := uc.entries.Count(ctx, a)
		chA <- countResult{n, err}
	}()
	go func() {
		n, err := uc.entries.Count(ctx, b)
		chB <- countResult{n, err}
	}()
	go func() {
		n, err := uc.entries.Count(ctx, c)
		chC <- countResult{n, err}
	}()

	ra, rb, rc := <-chA, <-chB, <-chC
	if ra.err != nil {
		return 0, 0, 0, ra.err
	}
	if rb.err != nil {
		return 0, 0, 0, rb.err
	}
	if rc.err != nil {
		return 0, 0, 0, rc.err
	}
	return ra.n, rb.n, rc.n, nil
}
