// Package entries implements the work-entry workflow: role-scoped listing,
// creation, the allow-listed update path and the batch status transitions.
package entries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/gemeinde/wegewart-api/internal/application/dto"
	"github.com/gemeinde/wegewart-api/internal/domain"
	"github.com/gemeinde/wegewart-api/internal/domain/entity"
	"github.com/gemeinde/wegewart-api/internal/domain/repository"
)

// UseCase work-entry operations. All methods take the resolved Actor and
// decide authorization from it; authentication happened upstream.
type UseCase struct {
	entries  repository.WorkEntryRepository
	users    repository.UserRepository
	machines repository.MachineRepository
	tx       TxRunner
	log      zerolog.Logger
}

// NewUseCase builds the use case.
func NewUseCase(
	entries repository.WorkEntryRepository,
	users repository.UserRepository,
	machines repository.MachineRepository,
	tx TxRunner,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{entries: entries, users: users, machines: machines, tx: tx, log: log}
}

// scopedFilter builds the repository filter: the actor's role scope plus the
// request's orthogonal filters. Filters outside the scope simply AND down to
// an empty result; they never escalate and never error.
func scopedFilter(actor domain.Actor, q dto.EntryListQuery) (repository.EntryFilter, error) {
	var f repository.EntryFilter

	switch actor.Scope() {
	case domain.ScopeAll:
		// no scope restriction
	case domain.ScopeDistrict:
		f.ScopeOrtsteil = actor.Ortsteil
	default:
		f.ScopeOwnerID = actor.ID
	}

	f.WorkerID = q.WorkerID
	f.Ortsteil = q.Ortsteil
	f.Status = entity.EntryStatus(q.Status)

	if q.From != "" {
		from, err := time.Parse(dto.DateLayout, q.From)
		if err != nil {
			return f, fmt.Errorf("%w: from must be YYYY-MM-DD", domain.ErrValidation)
		}
		f.DateFrom = &from
	}
	if q.To != "" {
		to, err := time.Parse(dto.DateLayout, q.To)
		if err != nil {
			return f, fmt.Errorf("%w: to must be YYYY-MM-DD", domain.ErrValidation)
		}
		f.DateTo = &to
	}
	return f, nil
}

// List returns the entries visible to the actor, newest first.
func (uc *UseCase) List(ctx context.Context, actor domain.Actor, q dto.EntryListQuery) (*dto.EntryListResponse, error) {
	f, err := scopedFilter(actor, q)
	if err != nil {
		return nil, err
	}
	list, err := uc.entries.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EntryResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEntryResponse(e))
	}
	return &dto.EntryListResponse{Items: items, Total: len(items)}, nil
}

// Get returns a single entry if it lies within the actor's scope.
func (uc *UseCase) Get(ctx context.Context, actor domain.Actor, id string) (*dto.EntryResponse, error) {
	e, err := uc.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil || !uc.canSee(actor, e) {
		// Out-of-scope reads like missing rows: no existence leak.
		return nil, domain.ErrNotFound
	}
	return toEntryResponse(e), nil
}

// Create records a new entry with status submitted. The actor must be the
// owner, or hold a reviewing role to file on behalf of a worker (supervisors
// only within their own district).
func (uc *UseCase) Create(ctx context.Context, actor domain.Actor, in dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	ownerID := in.WorkerID
	if ownerID == "" {
		ownerID = actor.ID
	}
	if ownerID != actor.ID {
		if !actor.IsReviewer() {
			return nil, domain.ErrPermission
		}
		owner, err := uc.users.GetByID(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			return nil, fmt.Errorf("%w: unknown worker", domain.ErrValidation)
		}
		if actor.Scope() == domain.ScopeDistrict && owner.Ortsteil != actor.Ortsteil {
			return nil, domain.ErrPermission
		}
	}

	datum, err := parseDatum(in.Datum)
	if err != nil {
		return nil, err
	}
	if err := validateHours(in.Hours); err != nil {
		return nil, err
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	machineID, machineHours, err := uc.validateMachine(ctx, in.MachineID, in.MachineHours)
	if err != nil {
		return nil, err
	}

	e := &entity.WorkEntry{
		ID:           uuid.New().String(),
		UserID:       ownerID,
		Datum:        datum,
		Hours:        in.Hours,
		Description:  description,
		MachineID:    machineID,
		MachineHours: machineHours,
		Status:       entity.StatusSubmitted,
		CreatedAt:    time.Now(),
	}
	if err := uc.entries.Create(ctx, e); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("entry_id", e.ID).
		Str("worker_id", ownerID).
		Str("actor_id", actor.ID).
		Msg("work entry created")

	created, err := uc.entries.GetByID(ctx, e.ID)
	if err != nil || created == nil {
		return toEntryResponse(e), nil
	}
	return toEntryResponse(created), nil
}

// Update applies an allow-listed patch. Permission depends on the current
// status and the actor's role; the status field itself can never be patched
// here, transitions run through the approve/reject/bill operations.
func (uc *UseCase) Update(ctx context.Context, actor domain.Actor, id string, in dto.UpdateEntryRequest) (*dto.EntryResponse, error) {
	e, err := uc.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.canModify(actor, e); err != nil {
		return nil, err
	}

	if in.WorkerID != nil && *in.WorkerID != e.UserID {
		// Reassigning the owner is a reviewer action.
		if !actor.IsReviewer() {
			return nil, domain.ErrPermission
		}
		owner, err := uc.users.GetByID(ctx, *in.WorkerID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			return nil, fmt.Errorf("%w: unknown worker", domain.ErrValidation)
		}
		if actor.Scope() == domain.ScopeDistrict && owner.Ortsteil != actor.Ortsteil {
			return nil, domain.ErrPermission
		}
		e.UserID = *in.WorkerID
	}
	if in.Datum != nil {
		datum, err := parseDatum(*in.Datum)
		if err != nil {
			return nil, err
		}
		e.Datum = datum
	}
	if in.Hours != nil {
		if err := validateHours(*in.Hours); err != nil {
			return nil, err
		}
		e.Hours = *in.Hours
	}
	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if description == "" {
			return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
		}
		e.Description = description
	}
	if in.MachineID != nil {
		if *in.MachineID == "" {
			// "" clears the machine reference (and its hours).
			e.MachineID = nil
			e.MachineHours = nil
		} else {
			machineID, _, err := uc.validateMachine(ctx, in.MachineID, nil)
			if err != nil {
				return nil, err
			}
			e.MachineID = machineID
		}
	}
	if in.MachineHours != nil {
		if e.MachineID == nil {
			return nil, fmt.Errorf("%w: machine_hours without a machine", domain.ErrValidation)
		}
		if in.MachineHours.IsNegative() {
			return nil, fmt.Errorf("%w: machine_hours must not be negative", domain.ErrValidation)
		}
		e.MachineHours = in.MachineHours
	}

	if err := uc.entries.Update(ctx, e); err != nil {
		return nil, err
	}

	uc.log.Info().Str("entry_id", id).Str("actor_id", actor.ID).Msg("work entry updated")

	updated, err := uc.entries.GetByID(ctx, id)
	if err != nil || updated == nil {
		return toEntryResponse(e), nil
	}
	return toEntryResponse(updated), nil
}

// Delete removes an entry. Same gate as Update, with the worker rule: owners
// may only delete their own entries while still submitted.
func (uc *UseCase) Delete(ctx context.Context, actor domain.Actor, id string) error {
	e, err := uc.entries.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	if err := uc.canModify(actor, e); err != nil {
		return err
	}
	if err := uc.entries.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("entry_id", id).Str("actor_id", actor.ID).Msg("work entry deleted")
	return nil
}

// canSee applies the visibility rule to a single loaded entry.
func (uc *UseCase) canSee(actor domain.Actor, e *entity.WorkEntry) bool {
	switch actor.Scope() {
	case domain.ScopeAll:
		return true
	case domain.ScopeDistrict:
		return e.WorkerOrtsteil == actor.Ortsteil
	default:
		return e.UserID == actor.ID
	}
}

// canModify is the shared update/delete gate. Terminal entries are frozen
// for everyone except admin.
func (uc *UseCase) canModify(actor domain.Actor, e *entity.WorkEntry) error {
	if e.Status.Terminal() {
		if actor.Roles.Has(entity.RoleAdmin) {
			return nil
		}
		return domain.ErrPermission
	}
	if actor.Roles.HasAny(entity.RoleAdmin, entity.RoleVerwaltung) {
		return nil
	}
	if actor.Roles.Has(entity.RoleOrtsvorsteher) && e.WorkerOrtsteil == actor.Ortsteil {
		return nil
	}
	if e.UserID == actor.ID {
		return nil
	}
	return domain.ErrPermission
}

func (uc *UseCase) validateMachine(ctx context.Context, machineID *string, machineHours *decimal.Decimal) (*string, *decimal.Decimal, error) {
	if machineID == nil || *machineID == "" {
		if machineHours != nil {
			return nil, nil, fmt.Errorf("%w: machine_hours without a machine", domain.ErrValidation)
		}
		return nil, nil, nil
	}
	m, err := uc.machines.GetByID(ctx, *machineID)
	if err != nil {
		return nil, nil, err
	}
	if m == nil || !m.Active {
		return nil, nil, fmt.Errorf("%w: machine not available", domain.ErrValidation)
	}
	if machineHours != nil && machineHours.IsNegative() {
		return nil, nil, fmt.Errorf("%w: machine_hours must not be negative", domain.ErrValidation)
	}
	return machineID, machineHours, nil
}

func parseDatum(s string) (time.Time, error) {
	datum, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: datum must be YYYY-MM-DD", domain.ErrValidation)
	}
	return datum, nil
}

func validateHours(h decimal.Decimal) error {
	if h.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: hours must be positive", domain.ErrValidation)
	}
	return nil
}

func toEntryResponse(e *entity.WorkEntry) *dto.EntryResponse {
	if e == nil {
		return nil
	}
	return &dto.EntryResponse{
		ID:              e.ID,
		WorkerID:        e.UserID,
		WorkerName:      e.WorkerName,
		Ortsteil:        e.WorkerOrtsteil,
		Datum:           e.Datum.Format(dto.DateLayout),
		Hours:           e.Hours,
		Description:     e.Description,
		MachineID:       e.MachineID,
		MachineName:     e.MachineName,
		MachineHours:    e.MachineHours,
		Status:          string(e.Status),
		RejectionReason: e.RejectionReason,
		CheckedBy:       e.CheckedBy,
		CheckedAt:       e.CheckedAt,
		CreatedAt:       e.CreatedAt,
	}
}
