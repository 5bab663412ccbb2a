package entries_test

import (
	"context"
	"sort"
	"time"

	"github.com/gemeinde/wegewart-api/internal/application/entries"
	"github.com/gemeinde/wegewart-api/internal/domain/entity"
	"github.com/gemeinde/wegewart-api/internal/domain/repository"
)

// In-memory fakes mirroring the SQL adapters' semantics, including the
// conditional status update and the joined owner columns.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	if u := r.users[id]; u != nil {
		u.PasswordHash = hash
	}
	return nil
}

func (r *fakeUserRepo) SetActive(_ context.Context, id string, active bool) error {
	if u := r.users[id]; u != nil {
		u.Active = active
	}
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, f repository.UserFilter) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if f.Ortsteil != "" && u.Ortsteil != f.Ortsteil {
			continue
		}
		if f.ActiveOnly && !u.Active {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) CountAdmins(_ context.Context) (int, error) {
	n := 0
	for _, u := range r.users {
		if u.Active && entity.ParseRoles(u.Roles).Has(entity.RoleAdmin) {
			n++
		}
	}
	return n, nil
}

type fakeMachineRepo struct {
	machines map[string]*entity.Machine
}

func newFakeMachineRepo(machines ...*entity.Machine) *fakeMachineRepo {
	r := &fakeMachineRepo{machines: map[string]*entity.Machine{}}
	for _, m := range machines {
		r.machines[m.ID] = m
	}
	return r
}

func (r *fakeMachineRepo) Create(_ context.Context, m *entity.Machine) error {
	r.machines[m.ID] = m
	return nil
}

func (r *fakeMachineRepo) GetByID(_ context.Context, id string) (*entity.Machine, error) {
	return r.machines[id], nil
}

func (r *fakeMachineRepo) Update(_ context.Context, m *entity.Machine) error {
	r.machines[m.ID] = m
	return nil
}

func (r *fakeMachineRepo) Delete(_ context.Context, id string) error {
	delete(r.machines, id)
	return nil
}

func (r *fakeMachineRepo) List(_ context.Context, f repository.MachineFilter) ([]*entity.Machine, error) {
	var out []*entity.Machine
	for _, m := range r.machines {
		if f.ActiveOnly && !m.Active {
			continue
		}
		if f.Category != "" && (m.Category == nil || *m.Category != f.Category) {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeMachineRepo) Categories(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, m := range r.machines {
		if m.Category != nil && !seen[*m.Category] {
			seen[*m.Category] = true
			out = append(out, *m.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

type fakeEntryRepo struct {
	users   *fakeUserRepo
	entries map[string]*entity.WorkEntry
}

func newFakeEntryRepo(users *fakeUserRepo, list ...*entity.WorkEntry) *fakeEntryRepo {
	r := &fakeEntryRepo{users: users, entries: map[string]*entity.WorkEntry{}}
	for _, e := range list {
		r.entries[e.ID] = e
	}
	return r
}

// join fills the display columns the SQL adapter gets from the JOIN.
func (r *fakeEntryRepo) join(e *entity.WorkEntry) *entity.WorkEntry {
	if e == nil {
		return nil
	}
	cp := *e
	if u := r.users.users[e.UserID]; u != nil {
		cp.WorkerName = u.DisplayName()
		cp.WorkerOrtsteil = u.Ortsteil
	}
	return &cp
}

func (r *fakeEntryRepo) Create(_ context.Context, e *entity.WorkEntry) error {
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *fakeEntryRepo) GetByID(_ context.Context, id string) (*entity.WorkEntry, error) {
	return r.join(r.entries[id]), nil
}

func (r *fakeEntryRepo) Update(_ context.Context, e *entity.WorkEntry) error {
	stored, ok := r.entries[e.ID]
	if !ok {
		return nil
	}
	stored.UserID = e.UserID
	stored.Datum = e.Datum
	stored.Hours = e.Hours
	stored.Description = e.Description
	stored.MachineID = e.MachineID
	stored.MachineHours = e.MachineHours
	return nil
}

func (r *fakeEntryRepo) Delete(_ context.Context, id string) error {
	delete(r.entries, id)
	return nil
}

func (r *fakeEntryRepo) List(_ context.Context, f repository.EntryFilter) ([]*entity.WorkEntry, error) {
	var out []*entity.WorkEntry
	for _, e := range r.entries {
		j := r.join(e)
		if f.ScopeOwnerID != "" && j.UserID != f.ScopeOwnerID {
			continue
		}
		if f.ScopeOrtsteil != "" && j.WorkerOrtsteil != f.ScopeOrtsteil {
			continue
		}
		if f.WorkerID != "" && j.UserID != f.WorkerID {
			continue
		}
		if f.Ortsteil != "" && j.WorkerOrtsteil != f.Ortsteil {
			continue
		}
		if f.Status != "" && j.Status != f.Status {
			continue
		}
		if f.DateFrom != nil && j.Datum.Before(*f.DateFrom) {
			continue
		}
		if f.DateTo != nil && j.Datum.After(*f.DateTo) {
			continue
		}
		out = append(out, j)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Datum.Equal(out[j].Datum) {
			return out[i].Datum.After(out[j].Datum)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeEntryRepo) Count(ctx context.Context, f repository.EntryFilter) (int, error) {
	list, err := r.List(ctx, f)
	return len(list), err
}

func (r *fakeEntryRepo) SetStatusIf(_ context.Context, id string, from, to entity.EntryStatus, reviewerID string, reason *string, at time.Time) (bool, error) {
	e, ok := r.entries[id]
	if !ok || e.Status != from {
		return false, nil
	}
	e.Status = to
	e.CheckedBy = &reviewerID
	e.CheckedAt = &at
	e.RejectionReason = reason
	return true, nil
}

func (r *fakeEntryRepo) CountByMachine(_ context.Context, machineID string) (int, error) {
	n := 0
	for _, e := range r.entries {
		if e.MachineID != nil && *e.MachineID == machineID {
			n++
		}
	}
	return n, nil
}

type fakeTxRunner struct {
	repo repository.WorkEntryRepository
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.WorkEntryRepository) error) error {
	return fn(r.repo)
}

var _ entries.TxRunner = (*fakeTxRunner)(nil)
