package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/gemeinde/wegewart-api/internal/application/auth"
	"github.com/gemeinde/wegewart-api/internal/application/dto"
	"github.com/gemeinde/wegewart-api/internal/domain"
	"github.com/gemeinde/wegewart-api/internal/domain/entity"
	"github.com/gemeinde/wegewart-api/internal/domain/repository"
)

// usernamePattern lowercase letters, digits, dot and underscore only.
var usernamePattern = regexp.MustCompile(`^[a-z0-9._]+$`)

const minPasswordLen = 6

// UserUseCase account administration plus the role-scoped worker listing.
type UserUseCase struct {
	users repository.UserRepository
	log   zerolog.Logger
}

// NewUserUseCase builds the use case.
func NewUserUseCase(users repository.UserRepository, log zerolog.Logger) *UserUseCase {
	return &UserUseCase{users: users, log: log}
}

// Create registers a new account. Admin/Verwaltung operation.
func (uc *UserUseCase) Create(ctx context.Context, actor domain.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	if !usernamePattern.MatchString(username) {
		return nil, fmt.Errorf("%w: username may contain only lowercase letters, digits, dot and underscore", domain.ErrValidation)
	}
	if len(in.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must have at least %d characters", domain.ErrValidation, minPasswordLen)
	}
	roles := entity.JoinRoles(in.Roles)
	if len(entity.ParseRoles(roles)) == 0 {
		return nil, fmt.Errorf("%w: at least one role is required", domain.ErrValidation)
	}
	existing, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	creator := actor.ID
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(in.Name),
		Vorname:      strings.TrimSpace(in.Vorname),
		Ortsteil:     strings.TrimSpace(in.Ortsteil),
		Roles:        roles,
		Email:        in.Email,
		Active:       active,
		CreatedAt:    time.Now(),
		CreatedBy:    &creator,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", username).Str("created_by", actor.ID).Msg("user created")
	return auth.ToUserResponse(user), nil
}

// Update applies a partial update. The username is immutable.
func (uc *UserUseCase) Update(ctx context.Context, actor domain.Actor, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	// Validate and hash the optional password before touching anything, so a
	// rejected password leaves no partial profile update behind.
	var newHash string
	if in.NewPassword != nil {
		if len(*in.NewPassword) < minPasswordLen {
			return nil, fmt.Errorf("%w: password must have at least %d characters", domain.ErrValidation, minPasswordLen)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		newHash = string(hash)
	}

	if in.Name != nil {
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Vorname != nil {
		user.Vorname = strings.TrimSpace(*in.Vorname)
	}
	if in.Ortsteil != nil {
		user.Ortsteil = strings.TrimSpace(*in.Ortsteil)
	}
	if in.Roles != nil {
		roles := entity.JoinRoles(in.Roles)
		if len(entity.ParseRoles(roles)) == 0 {
			return nil, fmt.Errorf("%w: at least one role is required", domain.ErrValidation)
		}
		user.Roles = roles
	}
	if in.Email != nil {
		user.Email = in.Email
	}
	if in.Active != nil {
		user.Active = *in.Active
	}
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	if newHash != "" {
		if err := uc.users.UpdatePassword(ctx, id, newHash); err != nil {
			return nil, err
		}
	}
	uc.log.Info().Str("user_id", id).Str("actor_id", actor.ID).Msg("user updated")
	return auth.ToUserResponse(user), nil
}

// SetActive activates or deactivates an account. Deactivation replaces
// deletion; historical entries keep their owner.
func (uc *UserUseCase) SetActive(ctx context.Context, actor domain.Actor, id string, active bool) error {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.users.SetActive(ctx, id, active); err != nil {
		return err
	}
	uc.log.Info().Str("user_id", id).Bool("active", active).Str("actor_id", actor.ID).Msg("user active flag changed")
	return nil
}

// List returns all accounts, ordered by district then name.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.users.List(ctx, repository.UserFilter{})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Ortsteil != list[j].Ortsteil {
			return list[i].Ortsteil < list[j].Ortsteil
		}
		return list[i].Name < list[j].Name
	})
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// VisibleWorkers returns the Wegewart accounts the actor may assign entries
// to: all for admin/Verwaltung, the own district for a supervisor, only the
// actor themselves otherwise. Ordered by name with German collation.
func (uc *UserUseCase) VisibleWorkers(ctx context.Context, actor domain.Actor) ([]dto.WorkerResponse, error) {
	var f repository.UserFilter
	switch actor.Scope() {
	case domain.ScopeAll:
		f = repository.UserFilter{ActiveOnly: true}
	case domain.ScopeDistrict:
		f = repository.UserFilter{Ortsteil: actor.Ortsteil, ActiveOnly: true}
	default:
		self, err := uc.users.GetByID(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if self == nil {
			return nil, domain.ErrUserNotFound
		}
		return []dto.WorkerResponse{toWorkerResponse(self)}, nil
	}

	list, err := uc.users.List(ctx, f)
	if err != nil {
		return nil, err
	}
	workers := make([]dto.WorkerResponse, 0, len(list))
	for _, u := range list {
		// Role decoding stays in the resolver; no LIKE '%wegewart%' in SQL.
		if entity.ParseRoles(u.Roles).Has(entity.RoleWegewart) {
			workers = append(workers, toWorkerResponse(u))
		}
	}
	c := collate.New(language.German)
	sort.SliceStable(workers, func(i, j int) bool {
		if r := c.CompareString(workers[i].Name, workers[j].Name); r != 0 {
			return r < 0
		}
		return c.CompareString(workers[i].Vorname, workers[j].Vorname) < 0
	})
	return workers, nil
}

// EnsureAdmin seeds the bootstrap administrator when no active admin exists.
// The password must come from configuration; without one the first start
// fails rather than running without an admin account.
func (uc *UserUseCase) EnsureAdmin(ctx context.Context, username, password, ortsteil string) (created bool, err error) {
	n, err := uc.users.CountAdmins(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if password == "" {
		return false, fmt.Errorf("%w: ADMIN_PASSWORD must be set for first start", domain.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Name:         "Administrator",
		Vorname:      "System",
		Ortsteil:     ortsteil,
		Roles:        entity.RoleAdmin,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return false, err
	}
	uc.log.Warn().Str("username", username).Msg("no admin account found, bootstrap admin created")
	return true, nil
}

func toWorkerResponse(u *entity.User) dto.WorkerResponse {
	return dto.WorkerResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Vorname:  u.Vorname,
		Ortsteil: u.Ortsteil,
	}
}
