package repository

import (
	"context"
	"time"

	"github.com/gemeinde/wegewart-api/internal/domain/entity"
)

// EntryFilter restricts entry queries. The scope fields carry the caller's
// role-scope boundary; the remaining fields are the orthogonal request
// filters, AND-ed on top. Filters only narrow, they never widen the scope.
type EntryFilter struct {
	// Role scope (set by the use case, at most one populated).
	ScopeOwnerID  string // worker scope: only entries owned by this user
	ScopeOrtsteil string // supervisor scope: only entries of this district

	// Orthogonal filters from the request.
	WorkerID string
	Ortsteil string
	Status   entity.EntryStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

// WorkEntryRepository is the persistence port for WorkEntry.
type WorkEntryRepository interface {
	Create(ctx context.Context, e *entity.WorkEntry) error
	// GetByID returns the entry with the worker's name/district joined,
	// or nil when it does not exist.
	GetByID(ctx context.Context, id string) (*entity.WorkEntry, error)
	Update(ctx context.Context, e *entity.WorkEntry) error
	Delete(ctx context.Context, id string) error
	// List returns entries newest first (datum DESC, created_at DESC).
	List(ctx context.Context, f EntryFilter) ([]*entity.WorkEntry, error)
	Count(ctx context.Context, f EntryFilter) (int, error)
	// SetStatusIf performs the atomic conditional transition
	// (UPDATE ... WHERE id = $1 AND status = $2) and reports whether a row
	// was updated. reason is only stored for rejections.
	SetStatusIf(ctx context.Context, id string, from, to entity.EntryStatus, reviewerID string, reason *string, at time.Time) (bool, error)
	// CountByMachine reports how many entries reference the machine
	// (guards against hard-deleting referenced machines).
	CountByMachine(ctx context.Context, machineID string) (int, error)
}
