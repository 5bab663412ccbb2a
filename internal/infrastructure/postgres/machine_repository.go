package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gemeinde/wegewart-api/internal/domain/entity"
	"github.com/gemeinde/wegewart-api/internal/domain/repository"
)

var _ repository.MachineRepository = (*MachineRepo)(nil)

const machineColumns = `id, name, category, active, valid_from, valid_to, created_at`

// MachineRepo implements the MachineRepository port on PostgreSQL (usable with pool or tx).
type MachineRepo struct {
	q Querier
}

// NewMachineRepository builds the persistence adapter for machines.
func NewMachineRepository(q Querier) *MachineRepo {
	return &MachineRepo{q: q}
}

// Create persists a new machine.
func (r *MachineRepo) Create(ctx context.Context, m *entity.Machine) error {
	query := `
		INSERT INTO machines (` + machineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Name, m.Category, m.Active, m.ValidFrom, m.ValidTo, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert machine: %w", err)
	}
	return nil
}

// GetByID returns the machine with the given ID, or nil when absent.
func (r *MachineRepo) GetByID(ctx context.Context, id string) (*entity.Machine, error) {
	query := `SELECT ` + machineColumns + ` FROM machines WHERE id = $1`
	var m entity.Machine
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Category, &m.Active, &m.ValidFrom, &m.ValidTo, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get machine: %w", err)
	}
	return &m, nil
}

// Update rewrites the machine fields.
func (r *MachineRepo) Update(ctx context.Context, m *entity.Machine) error {
	query := `
		UPDATE machines SET name = $2, category = $3, active = $4, valid_from = $5, valid_to = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query, m.ID, m.Name, m.Category, m.Active, m.ValidFrom, m.ValidTo)
	if err != nil {
		return fmt.Errorf("update machine: %w", err)
	}
	return nil
}

// Delete removes a machine. The use case verifies it is unreferenced first.
func (r *MachineRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM machines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete machine: %w", err)
	}
	return nil
}

// List returns machines matching the filter, ordered by name.
func (r *MachineRepo) List(ctx context.Context, f repository.MachineFilter) ([]*entity.Machine, error) {
	query := `SELECT ` + machineColumns + ` FROM machines WHERE 1=1`
	args := []any{}
	if f.ActiveOnly {
		query += " AND active"
	}
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	query += " ORDER BY name"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list machines: %w", err)
	}
	defer rows.Close()

	var list []*entity.Machine
	for rows.Next() {
		var m entity.Machine
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.Active, &m.ValidFrom, &m.ValidTo, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan machine: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Categories returns the distinct non-empty categories, sorted.
func (r *MachineRepo) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT DISTINCT category FROM machines WHERE category IS NOT NULL ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list machine categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
