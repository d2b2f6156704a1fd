package service

import (
	"context"

	"workoutlog/internal/domain"
	"workoutlog/internal/store"
)

// BiometricsService handles the one-to-one biometrics record.
type BiometricsService interface {
	// GetBiometrics returns nil (no error) when the user has no record yet.
	GetBiometrics(ctx context.Context, userID string) (*domain.UserBiometrics, error)
	CreateBiometrics(ctx context.Context, userID string, data store.BiometricsData) (*domain.UserBiometrics, error)
	UpdateBiometrics(ctx context.Context, userID string, patch store.BiometricsPatch) (*domain.UserBiometrics, error)
}

type biometricsService struct {
	store *store.Store
}

// NewBiometricsService creates a new BiometricsService.
func NewBiometricsService(st *store.Store) BiometricsService {
	return &biometricsService{store: st}
}

func (s *biometricsService) GetBiometrics(ctx context.Context, userID string) (*domain.UserBiometrics, error) {
	return s.store.GetUserBiometrics(ctx, userID)
}

func (s *biometricsService) CreateBiometrics(ctx context.Context, userID string, data store.BiometricsData) (*domain.UserBiometrics, error) {
	if data.Weight <= 0 || data.Height <= 0 || data.Sex == "" || data.Build == "" {
		return nil, ErrValidationFailed
	}
	return s.store.CreateUserBiometrics(ctx, userID, data)
}

func (s *biometricsService) UpdateBiometrics(ctx context.Context, userID string, patch store.BiometricsPatch) (*domain.UserBiometrics, error) {
	return s.store.UpdateUserBiometrics(ctx, userID, patch)
}
