package dto

import "time"

// CreateMachineRequest new machine. The validity window bounds are
// YYYY-MM-DD dates.
type CreateMachineRequest struct {
	Name      string  `json:"name" validate:"required"`
	Category  *string `json:"category,omitempty"`
	Active    *bool   `json:"active,omitempty"`
	ValidFrom *string `json:"valid_from,omitempty"`
	ValidTo   *string `json:"valid_to,omitempty"`
}

// UpdateMachineRequest partial update. For the validity window bounds a nil
// pointer means "unchanged" and "" clears the bound.
type UpdateMachineRequest struct {
	Name      *string `json:"name,omitempty"`
	Category  *string `json:"category,omitempty"`
	Active    *bool   `json:"active,omitempty"`
	ValidFrom *string `json:"valid_from,omitempty"`
	ValidTo   *string `json:"valid_to,omitempty"`
}

// MachineListQuery filters for the machine listing.
type MachineListQuery struct {
	Active   string `query:"active"` // "true" restricts to active machines
	Category string `query:"category"`
}

// MachineResponse public view of a machine.
type MachineResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Category  *string    `json:"category,omitempty"`
	Active    bool       `json:"active"`
	ValidFrom *time.Time `json:"valid_from,omitempty"`
	ValidTo   *time.Time `json:"valid_to,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// MachineListResponse listing plus the known categories for filtering.
type MachineListResponse struct {
	Items      []MachineResponse `json:"items"`
	Categories []string          `json:"categories"`
}
