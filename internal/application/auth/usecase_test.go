package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gemeinde/wegewart-api/internal/application/auth"
	"github.com/gemeinde/wegewart-api/internal/application/dto"
	"github.com/gemeinde/wegewart-api/internal/domain"
	"github.com/gemeinde/wegewart-api/internal/domain/entity"
	"github.com/gemeinde/wegewart-api/internal/domain/repository"
	pkgjwt "github.com/gemeinde/wegewart-api/pkg/jwt"
)

type stubUserRepo struct {
	byUsername map[string]*entity.User
	byID       map[string]*entity.User
	passwords  map[string]string
}

func newStubUserRepo(users ...*entity.User) *stubUserRepo {
	r := &stubUserRepo{
		byUsername: map[string]*entity.User{},
		byID:       map[string]*entity.User{},
		passwords:  map[string]string{},
	}
	for _, u := range users {
		r.byUsername[u.Username] = u
		r.byID[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	r.byUsername[u.Username] = u
	r.byID[u.ID] = u
	return nil
}
func (r *stubUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.byID[id], nil
}
func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.byUsername[username], nil
}
func (r *stubUserRepo) Update(context.Context, *entity.User) error { return nil }
func (r *stubUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	r.passwords[id] = hash
	return nil
}
func (r *stubUserRepo) SetActive(context.Context, string, bool) error { return nil }
func (r *stubUserRepo) List(context.Context, repository.UserFilter) ([]*entity.User, error) {
	return nil, nil
}
func (r *stubUserRepo) CountAdmins(context.Context) (int, error) { return 0, nil }

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

var testJWT = auth.JWTConfig{Secret: "unit-test-secret", ExpMinutes: 60, Issuer: "wegewart-test"}

func TestLogin_Success(t *testing.T) {
	user := &entity.User{
		ID: "u1", Username: "hmeier", PasswordHash: hashOf(t, "geheim1"),
		Name: "Meier", Vorname: "Hans", Ortsteil: "Nord",
		Roles: "ortsvorsteher,wegewart", Active: true,
	}
	uc := auth.NewUseCase(newStubUserRepo(user), testJWT)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: "hmeier", Password: "geheim1"})
	require.NoError(t, err)
	assert.Equal(t, "hmeier", out.User.Username)
	assert.Equal(t, []string{"ortsvorsteher", "wegewart"}, out.User.Roles)

	userID, ortsteil, roles, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "Nord", ortsteil)
	assert.Equal(t, "ortsvorsteher,wegewart", roles, "the token carries the raw role string")
}

func TestLogin_WrongPassword(t *testing.T) {
	user := &entity.User{ID: "u1", Username: "hmeier", PasswordHash: hashOf(t, "geheim1"), Active: true}
	uc := auth.NewUseCase(newStubUserRepo(user), testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "hmeier", Password: "falsch"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	uc := auth.NewUseCase(newStubUserRepo(), testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "niemand", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"unknown user and wrong password must be indistinguishable")
}

func TestLogin_InactiveAccount(t *testing.T) {
	user := &entity.User{ID: "u1", Username: "hmeier", PasswordHash: hashOf(t, "geheim1"), Active: false}
	uc := auth.NewUseCase(newStubUserRepo(user), testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "hmeier", Password: "geheim1"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestChangePassword(t *testing.T) {
	repo := newStubUserRepo(&entity.User{ID: "u1", Username: "hmeier", PasswordHash: hashOf(t, "alt123"), Active: true})
	uc := auth.NewUseCase(repo, testJWT)
	ctx := context.Background()

	err := uc.ChangePassword(ctx, "u1", dto.ChangePasswordRequest{OldPassword: "falsch", NewPassword: "neu456"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, repo.passwords["u1"])

	err = uc.ChangePassword(ctx, "u1", dto.ChangePasswordRequest{OldPassword: "alt123", NewPassword: "neu456"})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.passwords["u1"]), []byte("neu456")))
}
