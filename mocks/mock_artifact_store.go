package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"lengolf/internal/domain"
)

// MockArtifactStore is a mock implementation of port.ArtifactStore.
type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) Save(ctx context.Context, filename string, data []byte) (string, error) {
	args := m.Called(ctx, filename, data)
	return args.String(0), args.Error(1)
}

func (m *MockArtifactStore) Open(ctx context.Context, filename string) (io.ReadCloser, *domain.Artifact, error) {
	args := m.Called(ctx, filename)
	var rc io.ReadCloser
	if args.Get(0) != nil {
		rc = args.Get(0).(io.ReadCloser)
	}
	var artifact *domain.Artifact
	if args.Get(1) != nil {
		artifact = args.Get(1).(*domain.Artifact)
	}
	return rc, artifact, args.Error(2)
}

func (m *MockArtifactStore) ListRecent(ctx context.Context, limit int) ([]domain.Artifact, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Artifact), args.Error(1)
}
