package entries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gemeinde/wegewart-api/internal/domain"
	"github.com/gemeinde/wegewart-api/internal/domain/entity"
	"github.com/gemeinde/wegewart-api/internal/domain/repository"
)

// Batch status transitions. Ids that do not exist, lie outside the actor's
// scope or are no longer in the expected status are skipped silently and
// excluded from the applied count: callers get a number, not a per-id error
// list. Each transition is an atomic conditional update, so two racing
// reviews of the same entry can never both count it.

// BatchApprove moves submitted entries forward. A supervisor approval yields
// approved; Verwaltung/admin collapse both checks into one step and the
// entries go straight to billed.
func (uc *UseCase) BatchApprove(ctx context.Context, actor domain.Actor, ids []string) (int, error) {
	if !actor.IsReviewer() {
		return 0, domain.ErrPermission
	}
	target := entity.StatusApproved
	if actor.Scope() == domain.ScopeAll {
		target = entity.StatusBilled
	}
	applied, err := uc.transition(ctx, actor, ids, entity.StatusSubmitted, target, nil)
	if err != nil {
		return 0, err
	}
	uc.log.Info().
		Str("actor_id", actor.ID).
		Str("target", string(target)).
		Int("requested", len(ids)).
		Int("applied", applied).
		Msg("batch approve")
	return applied, nil
}

// BatchReject moves submitted entries to rejected, storing the mandatory
// reason. An empty reason fails with validation and changes nothing.
func (uc *UseCase) BatchReject(ctx context.Context, actor domain.Actor, ids []string, reason string) (int, error) {
	if !actor.IsReviewer() {
		return 0, domain.ErrPermission
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return 0, fmt.Errorf("%w: rejection reason is required", domain.ErrValidation)
	}
	applied, err := uc.transition(ctx, actor, ids, entity.StatusSubmitted, entity.StatusRejected, &reason)
	if err != nil {
		return 0, err
	}
	uc.log.Info().
		Str("actor_id", actor.ID).
		Int("requested", len(ids)).
		Int("applied", applied).
		Msg("batch reject")
	return applied, nil
}

// BatchBill marks supervisor-approved entries as billed, the final
// accounting sign-off. Verwaltung/admin only.
func (uc *UseCase) BatchBill(ctx context.Context, actor domain.Actor, ids []string) (int, error) {
	if actor.Scope() != domain.ScopeAll {
		return 0, domain.ErrPermission
	}
	applied, err := uc.transition(ctx, actor, ids, entity.StatusApproved, entity.StatusBilled, nil)
	if err != nil {
		return 0, err
	}
	uc.log.Info().
		Str("actor_id", actor.ID).
		Int("requested", len(ids)).
		Int("applied", applied).
		Msg("batch bill")
	return applied, nil
}

// transition runs the batch inside one transaction. The per-entry update is
// the conditional SetStatusIf, so each entry either transitions completely
// or stays untouched.
func (uc *UseCase) transition(ctx context.Context, actor domain.Actor, ids []string, from, to entity.EntryStatus, reason *string) (int, error) {
	if !from.CanTransitionTo(to) {
		return 0, domain.ErrConflict
	}
	applied := 0
	err := uc.tx.Run(ctx, func(repo repository.WorkEntryRepository) error {
		now := time.Now()
		for _, id := range ids {
			e, err := repo.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if e == nil || !actor.CanReview(e.WorkerOrtsteil) {
				continue
			}
			ok, err := repo.SetStatusIf(ctx, id, from, to, actor.ID, reason, now)
			if err != nil {
				return err
			}
			if ok {
				applied++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return applied, nil
}
