package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus represents the lifecycle state of a work entry.
type EntryStatus string

const (
	StatusSubmitted EntryStatus = "submitted"
	StatusApproved  EntryStatus = "approved"
	StatusBilled    EntryStatus = "billed"
	StatusRejected  EntryStatus = "rejected"
)

// validTransitions defines the allowed state machine transitions.
// submitted -> billed is the central-staff shortcut: when Verwaltung or an
// admin approves, the supervisor step is collapsed and the entry is billed
// in one action. billed and rejected are absorbing.
var validTransitions = map[EntryStatus][]EntryStatus{
	StatusSubmitted: {StatusApproved, StatusBilled, StatusRejected},
	StatusApproved:  {StatusBilled},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s EntryStatus) CanTransitionTo(next EntryStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status admits no regular edits anymore.
func (s EntryStatus) Terminal() bool {
	return s != StatusSubmitted
}

// Valid reports whether s is part of the status vocabulary.
func (s EntryStatus) Valid() bool {
	switch s {
	case StatusSubmitted, StatusApproved, StatusBilled, StatusRejected:
		return true
	}
	return false
}

// WorkEntry is one logged Arbeitseinsatz: labor hours and optional machine
// usage on a given date, owned by the worker who reported it.
type WorkEntry struct {
	ID              string
	UserID          string
	Datum           time.Time // work date, day precision
	Hours           decimal.Decimal
	Description     string
	MachineID       *string
	MachineHours    *decimal.Decimal
	Status          EntryStatus
	RejectionReason *string
	CheckedBy       *string
	CheckedAt       *time.Time
	CreatedAt       time.Time

	// Joined columns, populated by list/get queries only.
	WorkerName     string
	WorkerOrtsteil string
	MachineName    *string
}
