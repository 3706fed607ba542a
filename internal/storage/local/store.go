package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lengolf/internal/domain"
	"lengolf/internal/port"
)

type localStore struct {
	dir string
}

// NewStore creates an ArtifactStore over the given directory, creating it if
// it does not exist.
func NewStore(dir string) (port.ArtifactStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating artifact directory %s: %w", dir, err)
	}
	return &localStore{dir: dir}, nil
}

func (s *localStore) Save(_ context.Context, filename string, data []byte) (string, error) {
	if !validArtifactName(filename) {
		return "", fmt.Errorf("invalid artifact filename %q", filename)
	}
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing artifact %s: %w", filename, err)
	}
	return path, nil
}

func (s *localStore) Open(_ context.Context, filename string) (io.ReadCloser, *domain.Artifact, error) {
	if !validArtifactName(filename) {
		return nil, nil, domain.ErrArtifactNotFound
	}
	path := filepath.Join(s.dir, filename)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, nil, domain.ErrArtifactNotFound
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening artifact %s: %w", filename, err)
	}
	artifact := &domain.Artifact{Filename: filename, Size: info.Size(), ModifiedAt: info.ModTime()}
	return f, artifact, nil
}

func (s *localStore) ListRecent(_ context.Context, limit int) ([]domain.Artifact, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading artifact directory: %w", err)
	}

	artifacts := make([]domain.Artifact, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".pdf") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		artifacts = append(artifacts, domain.Artifact{
			Filename:   e.Name(),
			Size:       info.Size(),
			ModifiedAt: info.ModTime(),
		})
	}
	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].ModifiedAt.After(artifacts[j].ModifiedAt)
	})
	if limit > 0 && len(artifacts) > limit {
		artifacts = artifacts[:limit]
	}
	return artifacts, nil
}

// validArtifactName rejects anything that could escape the artifact directory.
func validArtifactName(filename string) bool {
	return filename != "" && filename != "." && filename != ".." && filename == filepath.Base(filename)
}
