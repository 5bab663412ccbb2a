package domain

import "github.com/gemeinde/wegewart-api/internal/domain/entity"

// Actor is the resolved identity of the calling user, derived once per
// request from the authenticated token. The core never authenticates;
// it only makes authorization decisions from this value.
type Actor struct {
	ID       string
	Ortsteil string
	Roles    entity.RoleSet
}

// ScopeLevel is the breadth of records an actor may see.
type ScopeLevel int

const (
	ScopeOwn      ScopeLevel = iota // only records the actor owns
	ScopeDistrict                   // records of the actor's Ortsteil
	ScopeAll                        // everything
)

// Scope returns the actor's visibility, highest privilege winning when the
// actor holds several role tags.
func (a Actor) Scope() ScopeLevel {
	if a.Roles.HasAny(entity.RoleAdmin, entity.RoleVerwaltung) {
		return ScopeAll
	}
	if a.Roles.Has(entity.RoleOrtsvorsteher) {
		return ScopeDistrict
	}
	return ScopeOwn
}

// CanReview reports whether the actor may approve/reject entries of the
// given district.
func (a Actor) CanReview(ortsteil string) bool {
	switch a.Scope() {
	case ScopeAll:
		return true
	case ScopeDistrict:
		return ortsteil == a.Ortsteil
	default:
		return false
	}
}

// IsReviewer reports whether the actor holds any reviewing role at all.
func (a Actor) IsReviewer() bool {
	return a.Roles.HasAny(entity.RoleAdmin, entity.RoleVerwaltung, entity.RoleOrtsvorsteher)
}
