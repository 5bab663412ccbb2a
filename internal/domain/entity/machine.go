package entity

import "time"

// Machine is a piece of equipment whose usage is logged on work entries.
// A machine referenced by any entry is never hard-deleted, only deactivated.
type Machine struct {
	ID        string
	Name      string
	Category  *string
	Active    bool
	ValidFrom *time.Time
	ValidTo   *time.Time
	CreatedAt time.Time
}
