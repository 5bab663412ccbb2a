package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gemeinde/wegewart-api/internal/domain"
	"github.com/gemeinde/wegewart-api/internal/domain/entity"
	"github.com/gemeinde/wegewart-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, username, password_hash, name, vorname, ortsteil, roles, email, active, created_at, created_by`

// UserRepo implements the UserRepository port on PostgreSQL (usable with pool or tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository builds the persistence adapter for users.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persists a new user.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Username, u.PasswordHash, u.Name, u.Vorname, u.Ortsteil,
		u.Roles, u.Email, u.Active, u.CreatedAt, u.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID returns the user with the given ID, or nil when absent.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get user by id")
}

// GetByUsername returns the user with the given username, or nil when absent.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, username), "get user by username")
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Vorname, &u.Ortsteil,
		&u.Roles, &u.Email, &u.Active, &u.CreatedAt, &u.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &u, nil
}

// Update rewrites the mutable profile fields. Username stays as created.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE users SET name = $2, vorname = $3, ortsteil = $4, roles = $5, email = $6, active = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Name, u.Vorname, u.Ortsteil, u.Roles, u.Email, u.Active,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *UserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	_, err := r.q.Exec(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// SetActive toggles the account flag.
func (r *UserRepo) SetActive(ctx context.Context, id string, active bool) error {
	_, err := r.q.Exec(ctx, `UPDATE users SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set user active: %w", err)
	}
	return nil
}

// List returns users matching the filter, ordered by district then name.
func (r *UserRepo) List(ctx context.Context, f repository.UserFilter) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE 1=1`
	args := []any{}
	if f.Ortsteil != "" {
		args = append(args, f.Ortsteil)
		query += fmt.Sprintf(" AND ortsteil = $%d", len(args))
	}
	if f.ActiveOnly {
		query += " AND active"
	}
	query += " ORDER BY ortsteil, name, vorname"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Vorname, &u.Ortsteil,
			&u.Roles, &u.Email, &u.Active, &u.CreatedAt, &u.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// CountAdmins reports how many active accounts carry the admin role. The
// roles column is decoded in Go so the CSV parsing stays in one place.
func (r *UserRepo) CountAdmins(ctx context.Context) (int, error) {
	rows, err := r.q.Query(ctx, `SELECT roles FROM users WHERE active`)
	if err != nil {
		return 0, fmt.Errorf("count admins: %w", err)
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		var roles string
		if err := rows.Scan(&roles); err != nil {
			return 0, fmt.Errorf("scan roles: %w", err)
		}
		if entity.ParseRoles(roles).Has(entity.RoleAdmin) {
			n++
		}
	}
	return n, rows.Err()
}
