package repository

import (
	"context"

	"github.com/gemeinde/wegewart-api/internal/domain/entity"
)

// UserFilter narrows user listings. Zero values mean no restriction.
type UserFilter struct {
	Ortsteil   string
	ActiveOnly bool
}

// UserRepository is the persistence port for User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetActive(ctx context.Context, id string, active bool) error
	List(ctx context.Context, f UserFilter) ([]*entity.User, error)
	// CountAdmins reports how many active users hold the admin role
	// (used by the bootstrap seed).
	CountAdmins(ctx context.Context) (int, error)
}
