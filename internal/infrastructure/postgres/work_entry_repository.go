package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gemeinde/wegewart-api/internal/domain/entity"
	"github.com/gemeinde/wegewart-api/internal/domain/repository"
)

var _ repository.WorkEntryRepository = (*WorkEntryRepo)(nil)

// entrySelect joins the owner and machine so lists carry display names
// without extra round trips.
const entrySelect = `
	SELECT e.id, e.user_id, e.datum, e.hours, e.description, e.machine_id, e.machine_hours,
	       e.status, e.rejection_reason, e.checked_by, e.checked_at, e.created_at,
	       u.vorname || ' ' || u.name AS worker_name, u.ortsteil, m.name
	FROM work_entries e
	JOIN users u ON u.id = e.user_id
	LEFT JOIN machines m ON m.id = e.machine_id`

// WorkEntryRepo implements the WorkEntryRepository port on PostgreSQL (usable with pool or tx).
type WorkEntryRepo struct {
	q Querier
}

// NewWorkEntryRepository builds the persistence adapter for work entries.
func NewWorkEntryRepository(q Querier) *WorkEntryRepo {
	return &WorkEntryRepo{q: q}
}

// Create persists a new entry.
func (r *WorkEntryRepo) Create(ctx context.Context, e *entity.WorkEntry) error {
	query := `
		INSERT INTO work_entries (id, user_id, datum, hours, description, machine_id, machine_hours,
			status, rejection_reason, checked_by, checked_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.UserID, e.Datum, e.Hours, e.Description, e.MachineID, e.MachineHours,
		e.Status, e.RejectionReason, e.CheckedBy, e.CheckedAt, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert work entry: %w", err)
	}
	return nil
}

// GetByID returns the entry with joined names, or nil when absent.
func (r *WorkEntryRepo) GetByID(ctx context.Context, id string) (*entity.WorkEntry, error) {
	row := r.q.QueryRow(ctx, entrySelect+` WHERE e.id = $1`, id)
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get work entry: %w", err)
	}
	return e, nil
}

// Update rewrites the editable fields. Status is never touched here; status
// changes go through SetStatusIf only.
func (r *WorkEntryRepo) Update(ctx context.Context, e *entity.WorkEntry) error {
	query := `
		UPDATE work_entries SET user_id = $2, datum = $3, hours = $4, description = $5,
			machine_id = $6, machine_hours = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.UserID, e.Datum, e.Hours, e.Description, e.MachineID, e.MachineHours,
	)
	if err != nil {
		return fmt.Errorf("update work entry: %w", err)
	}
	return nil
}

// Delete removes an entry.
func (r *WorkEntryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM work_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete work entry: %w", err)
	}
	return nil
}

// List returns entries matching the filter, newest first.
func (r *WorkEntryRepo) List(ctx context.Context, f repository.EntryFilter) ([]*entity.WorkEntry, error) {
	where, args := buildEntryWhere(f)
	query := entrySelect + where + ` ORDER BY e.datum DESC, e.created_at DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list work entries: %w", err)
	}
	defer rows.Close()

	var list []*entity.WorkEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan work entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Count returns the number of entries matching the filter.
func (r *WorkEntryRepo) Count(ctx context.Context, f repository.EntryFilter) (int, error) {
	where, args := buildEntryWhere(f)
	query := `SELECT count(*) FROM work_entries e JOIN users u ON u.id = e.user_id` + where

	var n int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count work entries: %w", err)
	}
	return n, nil
}

// SetStatusIf moves the entry from one status to another in a single
// conditional UPDATE. A concurrent transition that already changed the row
// makes the WHERE clause miss and the call reports false.
func (r *WorkEntryRepo) SetStatusIf(ctx context.Context, id string, from, to entity.EntryStatus, reviewerID string, reason *string, at time.Time) (bool, error) {
	query := `
		UPDATE work_entries
		SET status = $3, checked_by = $4, checked_at = $5, rejection_reason = $6
		WHERE id = $1 AND status = $2`
	cmd, err := r.q.Exec(ctx, query, id, from, to, reviewerID, at, reason)
	if err != nil {
		return false, fmt.Errorf("set work entry status: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// CountByMachine reports how many entries reference the machine.
func (r *WorkEntryRepo) CountByMachine(ctx context.Context, machineID string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM work_entries WHERE machine_id = $1`, machineID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count entries by machine: %w", err)
	}
	return n, nil
}

// buildEntryWhere renders the filter as a WHERE clause over the joined
// aliases (e = entry, u = owner).
func buildEntryWhere(f repository.EntryFilter) (string, []any) {
	where := ` WHERE 1=1`
	args := []any{}
	add := func(cond string, val any) {
		args = append(args, val)
		where += fmt.Sprintf(" AND "+cond, len(args))
	}

	if f.ScopeOwnerID != "" {
		add("e.user_id = $%d", f.ScopeOwnerID)
	}
	if f.ScopeOrtsteil != "" {
		add("u.ortsteil = $%d", f.ScopeOrtsteil)
	}
	if f.WorkerID != "" {
		add("e.user_id = $%d", f.WorkerID)
	}
	if f.Ortsteil != "" {
		add("u.ortsteil = $%d", f.Ortsteil)
	}
	if f.Status != "" {
		add("e.status = $%d", f.Status)
	}
	if f.DateFrom != nil {
		add("e.datum >= $%d", *f.DateFrom)
	}
	if f.DateTo != nil {
		add("e.datum <= $%d", *f.DateTo)
	}
	return where, args
}

func scanEntry(row pgx.Row) (*entity.WorkEntry, error) {
	var e entity.WorkEntry
	err := row.Scan(
		&e.ID, &e.UserID, &e.Datum, &e.Hours, &e.Description, &e.MachineID, &e.MachineHours,
		&e.Status, &e.RejectionReason, &e.CheckedBy, &e.CheckedAt, &e.CreatedAt,
		&e.WorkerName, &e.WorkerOrtsteil, &e.MachineName,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
