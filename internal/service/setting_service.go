package service

import (
	"context"
	"errors"
	"fmt"

	"lengolf/internal/domain"
	"lengolf/internal/port"
)

// UpdateSettingsInput is the DTO for bulk settings updates.
type UpdateSettingsInput struct {
	Values map[string]string `json:"values" binding:"required"`
}

// SettingService defines the settings management contract.
type SettingService interface {
	All(ctx context.Context) (map[string]string, error)
	Update(ctx context.Context, input UpdateSettingsInput) error
	GetOrDefault(ctx context.Context, key, fallback string) (string, error)
}

type settingService struct {
	repo port.SettingRepository
}

// NewSettingService creates a new SettingService implementation.
func NewSettingService(repo port.SettingRepository) SettingService {
	return &settingService{repo: repo}
}

func (s *settingService) All(ctx context.Context) (map[string]string, error) {
	return s.repo.GetAll(ctx)
}

func (s *settingService) Update(ctx context.Context, input UpdateSettingsInput) error {
	for key, value := range input.Values {
		if err := s.repo.Set(ctx, key, value); err != nil {
			return fmt.Errorf("updating setting %s: %w", key, err)
		}
	}
	return nil
}

func (s *settingService) GetOrDefault(ctx context.Context, key, fallback string) (string, error) {
	value, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fallback, nil
		}
		return "", err
	}
	return value, nil
}
