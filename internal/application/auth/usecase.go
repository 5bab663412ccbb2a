package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/gemeinde/wegewart-api/internal/application/dto"
	"github.com/gemeinde/wegewart-api/internal/domain"
	"github.com/gemeinde/wegewart-api/internal/domain/entity"
	"github.com/gemeinde/wegewart-api/internal/domain/repository"
	"github.com/gemeinde/wegewart-api/pkg/jwt"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase authentication: login and own-password change.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewUseCase builds the auth use case.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Login verifies username/password against the stored bcrypt hash and
// returns a signed token carrying id, district and the role string.
// Inactive accounts cannot log in.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Ortsteil, user.Roles, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ChangePassword verifies the old password and stores a new bcrypt hash.
func (uc *UseCase) ChangePassword(ctx context.Context, actorID string, in dto.ChangePasswordRequest) error {
	user, err := uc.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.OldPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.users.UpdatePassword(ctx, actorID, string(hash))
}

// ToUserResponse maps a user to its public view, decoding the role string once.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Vorname:   u.Vorname,
		Ortsteil:  u.Ortsteil,
		Roles:     entity.ParseRoles(u.Roles).Tags(),
		Email:     u.Email,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
