package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"go.uber.org/zap"

	ioutils "github.com/handiism/audio-studio/internal/io"
	"github.com/handiism/audio-studio/internal/model"
)

// ErrLocked is returned by Open when another process holds the library.
var ErrLocked = errors.New("store: library is in use by another process")

// Store reads and writes the library document at a fixed path.
type Store struct {
	path   string
	lock   *flock.Flock
	logger *zap.Logger
}

// Open locks the document at path and returns a Store for it. The
// directory is created if needed; the document itself may not exist yet.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := ioutils.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("ensure data directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}

	return &Store{path: path, lock: lock, logger: logger.With(zap.String("path", path))}, nil
}

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the library. A missing, unreadable or malformed document
// yields an empty library; the failure is logged, not returned.
func (s *Store) Load() *model.Library {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Info("no library found, starting empty")
		return model.NewLibrary()
	}
	if err != nil {
		s.logger.Warn("failed to read library, starting empty", zap.Error(err))
		return model.NewLibrary()
	}

	lib, err := Decode(data)
	if err != nil {
		s.logger.Warn("failed to parse library, starting empty", zap.Error(err))
		return model.NewLibrary()
	}
	s.logger.Debug("library loaded",
		zap.Int("songs", len(lib.Songs)),
		zap.Int("playlists", len(lib.Playlists)),
		zap.Int("projects", len(lib.Projects)))
	return lib
}

// Save writes the whole library. It implements command.Saver.
func (s *Store) Save(lib *model.Library) error {
	data, err := Encode(lib)
	if err != nil {
		return err
	}
	if err := ioutils.WriteFile(context.Background(), s.path, data); err != nil {
		return fmt.Errorf("write library: %w", err)
	}
	return nil
}

// Close releases the lock.
func (s *Store) Close() error {
	return s.lock.Unlock()
}

// Encode renders a library as the persisted JSON document.
func Encode(lib *model.Library) ([]byte, error) {
	if lib == nil {
		return nil, model.ErrNilEntity
	}
	data, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode library: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses a persisted document and indexes the result.
func Decode(data []byte) (*model.Library, error) {
	lib := model.NewLibrary()
	if err := json.Unmarshal(data, lib); err != nil {
		return nil, fmt.Errorf("decode library: %w", err)
	}
	lib.Reindex()
	return lib, nil
}
