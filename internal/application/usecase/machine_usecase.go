package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gemeinde/wegewart-api/internal/application/dto"
	"github.com/gemeinde/wegewart-api/internal/domain"
	"github.com/gemeinde/wegewart-api/internal/domain/entity"
	"github.com/gemeinde/wegewart-api/internal/domain/repository"
)

// MachineUseCase machine administration and listing.
type MachineUseCase struct {
	machines repository.MachineRepository
	entries  repository.WorkEntryRepository
	log      zerolog.Logger
}

// NewMachineUseCase builds the use case.
func NewMachineUseCase(machines repository.MachineRepository, entries repository.WorkEntryRepository, log zerolog.Logger) *MachineUseCase {
	return &MachineUseCase{machines: machines, entries: entries, log: log}
}

// Create adds a machine.
func (uc *MachineUseCase) Create(ctx context.Context, in dto.CreateMachineRequest) (*dto.MachineResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	validFrom, err := parseValidityBound("valid_from", in.ValidFrom)
	if err != nil {
		return nil, err
	}
	validTo, err := parseValidityBound("valid_to", in.ValidTo)
	if err != nil {
		return nil, err
	}
	m := &entity.Machine{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  normalizeCategory(in.Category),
		Active:    active,
		ValidFrom: validFrom,
		ValidTo:   validTo,
		CreatedAt: time.Now(),
	}
	if err := uc.machines.Create(ctx, m); err != nil {
		return nil, err
	}
	uc.log.Info().Str("machine_id", m.ID).Str("name", name).Msg("machine created")
	return toMachineResponse(m), nil
}

// Update applies a partial update.
func (uc *MachineUseCase) Update(ctx context.Context, id string, in dto.UpdateMachineRequest) (*dto.MachineResponse, error) {
	m, err := uc.machines.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
		}
		m.Name = name
	}
	if in.Category != nil {
		m.Category = normalizeCategory(in.Category)
	}
	if in.Active != nil {
		m.Active = *in.Active
	}
	if in.ValidFrom != nil {
		validFrom, err := parseValidityBound("valid_from", in.ValidFrom)
		if err != nil {
			return nil, err
		}
		m.ValidFrom = validFrom
	}
	if in.ValidTo != nil {
		validTo, err := parseValidityBound("valid_to", in.ValidTo)
		if err != nil {
			return nil, err
		}
		m.ValidTo = validTo
	}
	if err := uc.machines.Update(ctx, m); err != nil {
		return nil, err
	}
	return toMachineResponse(m), nil
}

// Delete removes a machine, but only while no work entry references it.
// Referenced machines must be deactivated instead.
func (uc *MachineUseCase) Delete(ctx context.Context, id string) error {
	m, err := uc.machines.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	n, err := uc.entries.CountByMachine(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrMachineInUse
	}
	if err := uc.machines.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("machine_id", id).Msg("machine deleted")
	return nil
}

// List returns machines plus the known categories for the filter dropdown.
func (uc *MachineUseCase) List(ctx context.Context, q dto.MachineListQuery) (*dto.MachineListResponse, error) {
	f := repository.MachineFilter{
		ActiveOnly: q.Active == "true",
		Category:   q.Category,
	}
	list, err := uc.machines.List(ctx, f)
	if err != nil {
		return nil, err
	}
	categories, err := uc.machines.Categories(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MachineResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMachineResponse(m))
	}
	return &dto.MachineListResponse{Items: items, Categories: categories}, nil
}

// parseValidityBound turns a YYYY-MM-DD string into a date. An empty string
// clears the bound, so patches can remove a validity window again.
func parseValidityBound(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", domain.ErrValidation, field)
	}
	return &t, nil
}

func normalizeCategory(c *string) *string {
	if c == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*c)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func toMachineResponse(m *entity.Machine) *dto.MachineResponse {
	if m == nil {
		return nil
	}
	return &dto.MachineResponse{
		ID:        m.ID,
		Name:      m.Name,
		Category:  m.Category,
		Active:    m.Active,
		ValidFrom: m.ValidFrom,
		ValidTo:   m.ValidTo,
		CreatedAt: m.CreatedAt,
	}
}
