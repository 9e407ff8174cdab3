// Package authenticating exchanges provider-asserted profiles for API
// sessions. There is no credential verification here: the upstream
// identity provider already authenticated the person, this service only
// mints and validates session tokens for the profile it is handed.
package authenticating

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/topraklif/deals-api/infrastructure/repository"
	"github.com/topraklif/deals-api/internal/domain"
)

var (
	ErrInvalidToken    = errors.New("invalid session token")
	ErrExpiredToken    = errors.New("expired session token")
	ErrUnknownProvider = errors.New("unknown identity provider")
)

// ProviderProfile is what an identity provider asserts about a person.
type ProviderProfile struct {
	Provider    string `json:"provider" validate:"required,oneof=telegram google facebook email"`
	Subject     string `json:"subject" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`
}

type Authenticator interface {
	Establish(profile ProviderProfile) (string, *domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	GetUser(userID string) (*domain.User, error)
}

type Service struct {
	userRepo repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
	validate *validator.Validate
	now      func() time.Time
}

func NewService(userRepo repository.UserRepository, secret string, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo: userRepo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Establish upserts the profile keyed by provider+subject and signs a
// session token for it.
func (s *Service) Establish(profile ProviderProfile) (string, *domain.User, error) {
	if err := s.validate.Struct(profile); err != nil {
		return "", nil, errors.Wrap(ErrUnknownProvider, err.Error())
	}

	user, err := s.userRepo.UpsertByProvider(domain.User{
		Provider:    profile.Provider,
		Subject:     profile.Subject,
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
		PhotoURL:    profile.PhotoURL,
	})
	if err != nil {
		return "", nil, errors.Wrap(err, "upsert user")
	}

	now := s.now()

	claims := domain.Claims{
		UserID:       user.ID,
		UserEmail:    user.Email,
		UserName:     user.DisplayName,
		UserProvider: user.Provider,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, errors.Wrap(err, "sign session token")
	}

	return token, user, nil
}

// ValidateToken parses and verifies a session token, distinguishing
// expiry from every other failure.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %q", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *Service) GetUser(userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, errors.Wrapf(err, "get user %q", userID)
	}
	return user, nil
}
