package entity

import "time"

// User represents an account in the system. Roles is the raw comma-separated
// role string; decode it with ParseRoles, never ad hoc.
type User struct {
	ID           string
	Username     string // immutable once set
	PasswordHash string // bcrypt hash, never plaintext after persisting
	Name         string
	Vorname      string
	Ortsteil     string // district scoping supervisor visibility
	Roles        string
	Email        *string
	Active       bool
	CreatedAt    time.Time
	CreatedBy    *string
}

// DisplayName returns "Vorname Name" for presentation.
func (u *User) DisplayName() string {
	return u.Vorname + " " + u.Name
}
