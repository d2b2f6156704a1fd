package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"workoutlog/internal/domain"
	"workoutlog/internal/store"
)

// --- Error Definitions ---
var (
	ErrValidationFailed = errors.New("validation failed: required field missing")
	ErrHashingFailed    = errors.New("failed to hash password")
	ErrTokenGeneration  = errors.New("failed to generate authentication token")
)

// AuthService handles registration, login and token issuance.
type AuthService interface {
	Register(ctx context.Context, email, username, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	GetJWTSecret() string
}

type authService struct {
	store         *store.Store
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(st *store.Store, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour * 24
	}
	return &authService{
		store:         st,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Register creates a new account. Email normalization and uniqueness live in
// the store; duplicate email/username errors pass through coded.
func (s *authService) Register(ctx context.Context, email, username, password string) (*domain.User, error) {
	if email == "" || username == "" || password == "" {
		return nil, ErrValidationFailed
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	user, err := s.store.InsertUser(ctx, email, string(hashed), username)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates by email and password and returns a signed JWT. A
// missing user and a wrong password both map to INVALID_CREDENTIALS.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrValidationFailed
	}

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", nil, store.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, store.ErrInvalidCredentials
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}
	return token, user, nil
}

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

func (s *authService) generateJWT(user *domain.User) (string, error) {
	now := time.Now()
	claims := &jwtClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "workoutlog",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// GetJWTSecret returns the JWT secret for middleware authentication.
func (s *authService) GetJWTSecret() string {
	return s.jwtSecret
}
