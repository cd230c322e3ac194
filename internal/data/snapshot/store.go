// Package snapshot persists the job-and-cache snapshot as a single JSON
// document on disk.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/target/phototrack/internal/domain/model"
	apperrors "github.com/target/phototrack/internal/errors"
)

// FileStore reads and writes the snapshot at a fixed path. Writes go through
// a temp file and rename so a crash mid-write cannot corrupt the prior file.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore creates a FileStore for the given path.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{path: path, logger: logger}
}

// Load reads the snapshot from disk. A missing or unreadable file yields an
// empty snapshot, never an error: startup must not fail on first boot or on a
// corrupt file. Corruption is logged so operators can investigate.
func (s *FileStore) Load(ctx context.Context) (model.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.WarnContext(ctx, "snapshot unreadable, starting empty",
				"path", s.path, "error", err)
		}
		return model.NewSnapshot(), nil
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.WarnContext(ctx, "snapshot corrupt, starting empty",
			"path", s.path, "error", err)
		return model.NewSnapshot(), nil
	}
	snap.Normalize()
	return snap, nil
}

// Save writes the snapshot to disk atomically: marshal, write to a temp file
// in the same directory, then rename over the destination.
func (s *FileStore) Save(ctx context.Context, snap model.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodePersistence, "marshal snapshot")
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodePersistence, "create snapshot directory")
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodePersistence, "write snapshot temp file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodePersistence, "replace snapshot file")
	}
	return nil
}
