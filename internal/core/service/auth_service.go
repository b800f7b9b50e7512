package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/cityhousing/housing-units-api/internal/core/domain"
	"github.com/cityhousing/housing-units-api/internal/core/ports"
)

// AuthService authenticates users and issues bearer tokens. Passwords are
// stored as bcrypt hashes; the observed plaintext scheme of the source
// system is deliberately not reproduced.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login exchanges email and password for an encoded JWT. Unknown, inactive,
// and wrong-password accounts all fail the same way so the response does
// not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" {
		return "", domain.NewInvalidArgumentError("The user email is not provided.")
	}
	if password == "" {
		return "", domain.NewInvalidArgumentError("The user password is not provided.")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil || !user.IsActive {
		return "", domain.NewAuthenticationError("The user does not exist.")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.NewAuthenticationError("The user does not exist.")
	}

	return s.generateToken(user)
}

// generateToken validates the claim body and signs it with HS256.
func (s *AuthService) generateToken(user *domain.User) (string, error) {
	if user.Email == "" {
		return "", domain.NewValidationError("User id is not included in the provided JWT body.")
	}
	if user.UserGroup == "" {
		return "", domain.NewValidationError("User group is not included in the provided JWT body.")
	}
	if !domain.SupportedGroup(user.UserGroup) {
		return "", domain.NewValidationError("User group is not supported")
	}

	claims := jwt.MapClaims{
		"user_id": user.Email,
		"group":   user.UserGroup,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// UserService exposes the read-only user listing.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetActiveUsers returns every active user account.
func (s *UserService) GetActiveUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.GetActiveUsers(ctx)
}
