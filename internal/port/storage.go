package port

import (
	"context"
	"io"

	"lengolf/internal/domain"
)

// ArtifactStore abstracts the directory holding generated invoice PDFs.
// Saving an existing filename overwrites it; last writer wins.
type ArtifactStore interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
	Open(ctx context.Context, filename string) (io.ReadCloser, *domain.Artifact, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Artifact, error)
}
