package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lengolf/internal/domain"
	"lengolf/internal/service"
	"lengolf/mocks"
)

func TestSettingService_All(t *testing.T) {
	repo := new(mocks.MockSettingRepo)
	svc := service.NewSettingService(repo)

	expected := map[string]string{domain.SettingDefaultWHTRate: "3.00"}
	repo.On("GetAll", mock.Anything).Return(expected, nil)

	values, err := svc.All(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, values)
}

func TestSettingService_Update(t *testing.T) {
	repo := new(mocks.MockSettingRepo)
	svc := service.NewSettingService(repo)

	repo.On("Set", mock.Anything, domain.SettingDefaultWHTRate, "5.00").Return(nil)
	repo.On("Set", mock.Anything, domain.SettingBankName, "Kasikorn Bank").Return(nil)

	err := svc.Update(context.Background(), service.UpdateSettingsInput{
		Values: map[string]string{
			domain.SettingDefaultWHTRate: "5.00",
			domain.SettingBankName:       "Kasikorn Bank",
		},
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSettingService_Update_RepoError(t *testing.T) {
	repo := new(mocks.MockSettingRepo)
	svc := service.NewSettingService(repo)

	repoErr := errors.New("connection reset")
	repo.On("Set", mock.Anything, domain.SettingBankName, "Kasikorn Bank").Return(repoErr)

	err := svc.Update(context.Background(), service.UpdateSettingsInput{
		Values: map[string]string{domain.SettingBankName: "Kasikorn Bank"},
	})

	assert.ErrorIs(t, err, repoErr)
}

func TestSettingService_GetOrDefault(t *testing.T) {
	repo := new(mocks.MockSettingRepo)
	svc := service.NewSettingService(repo)

	repo.On("Get", mock.Anything, domain.SettingDefaultWHTRate).Return("5.00", nil)

	value, err := svc.GetOrDefault(context.Background(), domain.SettingDefaultWHTRate, "3.00")

	require.NoError(t, err)
	assert.Equal(t, "5.00", value)
}

func TestSettingService_GetOrDefault_Fallback(t *testing.T) {
	repo := new(mocks.MockSettingRepo)
	svc := service.NewSettingService(repo)

	repo.On("Get", mock.Anything, domain.SettingDefaultWHTRate).Return("", domain.ErrNotFound)

	value, err := svc.GetOrDefault(context.Background(), domain.SettingDefaultWHTRate, "3.00")

	require.NoError(t, err)
	assert.Equal(t, "3.00", value)
}
