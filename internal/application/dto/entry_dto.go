package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryListQuery orthogonal filters for the entry listing. All optional;
// empty values impose no additional restriction.
type EntryListQuery struct {
	From     string `query:"from"` // inclusive, YYYY-MM-DD
	To       string `query:"to"`   // inclusive, YYYY-MM-DD
	WorkerID string `query:"worker_id"`
	Ortsteil string `query:"ortsteil"`
	Status   string `query:"status"`
}

// CreateEntryRequest new work entry. WorkerID may name another worker when
// the actor holds a reviewing role; empty means the actor themselves.
type CreateEntryRequest struct {
	WorkerID     string           `json:"worker_id,omitempty"`
	Datum        string           `json:"datum" validate:"required"`
	Hours        decimal.Decimal  `json:"hours"`
	Description  string           `json:"description" validate:"required"`
	MachineID    *string          `json:"machine_id,omitempty"`
	MachineHours *decimal.Decimal `json:"machine_hours,omitempty"`
}

// UpdateEntryRequest allow-listed patch: only these fields can ever be
// changed through the update path. The status is deliberately absent;
// transitions run through the approve/reject endpoints only. A MachineID
// of "" clears the machine reference.
type UpdateEntryRequest struct {
	WorkerID     *string          `json:"worker_id,omitempty"`
	Datum        *string          `json:"datum,omitempty"`
	Hours        *decimal.Decimal `json:"hours,omitempty"`
	Description  *string          `json:"description,omitempty"`
	MachineID    *string          `json:"machine_id,omitempty"`
	MachineHours *decimal.Decimal `json:"machine_hours,omitempty"`
}

// BatchApproveRequest ids to approve in one call.
type BatchApproveRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// BatchRejectRequest ids to reject plus the mandatory reason.
type BatchRejectRequest struct {
	IDs    []string `json:"ids" validate:"required,min=1"`
	Reason string   `json:"reason"`
}

// BatchStatusResponse how many entries the batch actually changed.
// Ineligible ids are skipped silently and not counted.
type BatchStatusResponse struct {
	Applied int `json:"applied"`
}

// EntryResponse public view of a work entry with joined display columns.
type EntryResponse struct {
	ID              string           `json:"id"`
	WorkerID        string           `json:"worker_id"`
	WorkerName      string           `json:"worker_name"`
	Ortsteil        string           `json:"ortsteil"`
	Datum           string           `json:"datum"`
	Hours           decimal.Decimal  `json:"hours"`
	Description     string           `json:"description"`
	MachineID       *string          `json:"machine_id,omitempty"`
	MachineName     *string          `json:"machine_name,omitempty"`
	MachineHours    *decimal.Decimal `json:"machine_hours,omitempty"`
	Status          string           `json:"status"`
	RejectionReason *string          `json:"rejection_reason,omitempty"`
	CheckedBy       *string          `json:"checked_by,omitempty"`
	CheckedAt       *time.Time       `json:"checked_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// EntryListResponse listing wrapper.
type EntryListResponse struct {
	Items []EntryResponse `json:"items"`
	Total int             `json:"total"`
}
