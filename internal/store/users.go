package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"workoutlog/internal/domain"
)

// NormalizeEmail trims and lowercases an email address. Every email that
// reaches storage or a lookup goes through this first, which is what makes
// email uniqueness case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// InsertUser creates a new user. Fails with EMAIL_ALREADY_EXISTS or
// USERNAME_ALREADY_EXISTS on uniqueness conflicts, disambiguated by the
// violated constraint.
func (s *Store) InsertUser(ctx context.Context, email, passwordHash, username string) (*domain.User, error) {
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		Username:     username,
		CreatedAt:    time.Now().UTC(),
	}

	const query = `
		INSERT INTO users (id, email, password_hash, username, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Username, user.CreatedAt,
	)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// GetUserByEmail looks a user up by normalized email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
		SELECT id, email, password_hash, username, created_at
		FROM users
		WHERE email = ?
	`
	user := &domain.User{}
	err := s.db.QueryRowContext(ctx, query, NormalizeEmail(email)).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Username, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

// GetUserByID retrieves a user by id.
func (s *Store) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	const query = `
		SELECT id, email, password_hash, username, created_at
		FROM users
		WHERE id = ?
	`
	user := &domain.User{}
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Username, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

// DeleteUserByID removes a user and everything the account owns: workouts,
// exercises, the links and sets beneath them, and biometrics.
func (s *Store) DeleteUserByID(ctx context.Context, userID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := assertOwned(ctx, tx, "users", ErrUserNotFound, match{"id", userID}); err != nil {
			return err
		}
		return deleteUserCascade(ctx, tx, userID)
	})
}
