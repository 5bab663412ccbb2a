package dto

import "time"

// CreateUserRequest admin creation of an account.
type CreateUserRequest struct {
	Username string   `json:"username" validate:"required"`
	Password string   `json:"password" validate:"required,min=6"`
	Name     string   `json:"name" validate:"required"`
	Vorname  string   `json:"vorname" validate:"required"`
	Ortsteil string   `json:"ortsteil" validate:"required"`
	Roles    []string `json:"roles" validate:"required,min=1"`
	Email    *string  `json:"email,omitempty"`
	Active   *bool    `json:"active,omitempty"`
}

// UpdateUserRequest partial update; the username is immutable and therefore
// not part of the patch. A new password is optional.
type UpdateUserRequest struct {
	Name        *string  `json:"name,omitempty"`
	Vorname     *string  `json:"vorname,omitempty"`
	Ortsteil    *string  `json:"ortsteil,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Active      *bool    `json:"active,omitempty"`
	NewPassword *string  `json:"new_password,omitempty" validate:"omitempty,min=6"`
}

// UserResponse public view of a user; never includes the password hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Vorname   string    `json:"vorname"`
	Ortsteil  string    `json:"ortsteil"`
	Roles     []string  `json:"roles"`
	Email     *string   `json:"email,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// WorkerResponse a worker selectable as entry owner.
type WorkerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Vorname  string `json:"vorname"`
	Ortsteil string `json:"ortsteil"`
}
