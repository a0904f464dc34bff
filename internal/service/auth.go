package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"plantcare.app/leafclinic/internal/dto"
	"plantcare.app/leafclinic/internal/model"
	"plantcare.app/leafclinic/internal/repository"
	"plantcare.app/leafclinic/pkg/apperror"
)

type AuthService interface {
	Signup(ctx context.Context, input dto.SignupForm) (*model.User, error)
	// Login verifies credentials and returns a signed session token with its
	// absolute expiry.
	Login(ctx context.Context, input dto.LoginForm) (string, time.Time, error)
	CurrentUser(ctx context.Context, userID string) (*model.User, error)
}

type authService struct {
	users     repository.UserRepository
	secret    string
	tokenTTL  time.Duration
	sanitizer *bluemonday.Policy
}

func NewAuthService(users repository.UserRepository, secret string, tokenTTL time.Duration) AuthService {
	return &authService{
		users:     users,
		secret:    secret,
		tokenTTL:  tokenTTL,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *authService) Signup(ctx context.Context, input dto.SignupForm) (*model.User, error) {
	count, err := s.users.CountByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperror.ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        input.Email,
		Username:     strings.TrimSpace(s.sanitizer.Sanitize(input.Username)),
		PasswordHash: string(hashed),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, input dto.LoginForm) (string, time.Time, error) {
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", time.Time{}, apperror.ErrUnknownEmail
		}
		return "", time.Time{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return "", time.Time{}, apperror.ErrWrongPassword
	}

	return s.generateToken(user)
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// generateToken mints an HS256 session token whose expiry is absolute:
// login time plus the configured TTL, independent of activity.
func (s *authService) generateToken(user *model.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.tokenTTL)

	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}
