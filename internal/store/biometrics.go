package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"workoutlog/internal/domain"
)

// BiometricsData is the validated input for creating user biometrics.
type BiometricsData struct {
	Weight float64
	Sex    domain.Sex
	Height float64
	Build  domain.Build
}

// BiometricsPatch carries the fields of a partial biometrics update.
type BiometricsPatch struct {
	Weight *float64
	Sex    *domain.Sex
	Height *float64
	Build  *domain.Build
}

// GetUserBiometrics returns the user's biometrics, or nil when none have
// been recorded yet. Absence is not an error here.
func (s *Store) GetUserBiometrics(ctx context.Context, userID string) (*domain.UserBiometrics, error) {
	const query = `
		SELECT user_id, weight, sex, height, build, created_at, updated_at
		FROM user_biometrics
		WHERE user_id = ?
	`
	b := &domain.UserBiometrics{}
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&b.UserID, &b.Weight, &b.Sex, &b.Height, &b.Build, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get biometrics: %w", err)
	}
	return b, nil
}

// CreateUserBiometrics records the user's biometrics. Fails with a
// uniqueness violation if a row already exists, and with USER_NOT_FOUND if
// the user id does not reference a user (foreign key).
func (s *Store) CreateUserBiometrics(ctx context.Context, userID string, data BiometricsData) (*domain.UserBiometrics, error) {
	now := time.Now().UTC()
	b := &domain.UserBiometrics{
		UserID:    userID,
		Weight:    data.Weight,
		Sex:       data.Sex,
		Height:    data.Height,
		Build:     data.Build,
		CreatedAt: now,
		UpdatedAt: now,
	}

	const query = `
		INSERT INTO user_biometrics (user_id, weight, sex, height, build, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		b.UserID, b.Weight, b.Sex, b.Height, b.Build, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("create biometrics: %w", err)
	}
	return b, nil
}

// UpdateUserBiometrics applies a partial update. Unlike the other entities,
// an empty patch is a no-op returning the current row unchanged; a missing
// row fails with USER_BIOMETRICS_NOT_FOUND either way.
func (s *Store) UpdateUserBiometrics(ctx context.Context, userID string, patch BiometricsPatch) (*domain.UserBiometrics, error) {
	fs := &fieldSet{}
	if patch.Weight != nil {
		fs.set("weight", *patch.Weight)
	}
	if patch.Sex != nil {
		fs.set("sex", *patch.Sex)
	}
	if patch.Height != nil {
		fs.set("height", *patch.Height)
	}
	if patch.Build != nil {
		fs.set("build", *patch.Build)
	}

	if fs.empty() {
		current, err := s.GetUserBiometrics(ctx, userID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, ErrBiometricsNotFound
		}
		return current, nil
	}

	fs.set("updated_at", time.Now().UTC())
	query := "UPDATE user_biometrics SET " + fs.assignments() + " WHERE user_id = ?"
	args := append(fs.args, userID)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("update biometrics: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update biometrics: %w", err)
	}
	if affected == 0 {
		return nil, ErrBiometricsNotFound
	}
	return s.GetUserBiometrics(ctx, userID)
}
