package repository

import (
	"context"

	"github.com/gemeinde/wegewart-api/internal/domain/entity"
)

// MachineFilter narrows machine listings. Zero values mean no restriction.
type MachineFilter struct {
	ActiveOnly bool
	Category   string
}

// MachineRepository is the persistence port for Machine.
type MachineRepository interface {
	Create(ctx context.Context, m *entity.Machine) error
	GetByID(ctx context.Context, id string) (*entity.Machine, error)
	Update(ctx context.Context, m *entity.Machine) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f MachineFilter) ([]*entity.Machine, error)
	Categories(ctx context.Context) ([]string, error)
}
