// Package store persists the book catalog as a single JSON document
// on disk. The whole catalog is written in one call; there is no
// partial or streaming persistence.
package store

import (
	"errors"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"bookshelf/internal/library"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNoCatalog signals a first run: no usable catalog file existed.
// Load leaves an empty placeholder file behind so the path is known
// to be writable before the user types an owner name.
var ErrNoCatalog = errors.New("no catalog file")

// DefaultPath is the fixed location of the persisted catalog. There
// is no flag or environment override.
const DefaultPath = "library.json"

// FileStore reads and writes one catalog file.
type FileStore struct {
	path string
	log  *zap.Logger
}

// NewFileStore returns a store bound to path. A nil logger disables
// logging.
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{path: path, log: logger}
}

// Path returns the file the store is bound to.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the catalog from disk. A missing file is not an error:
// Load creates an empty placeholder and returns ErrNoCatalog so the
// caller runs first-run setup. A zero-length file is treated the same
// way, since that is exactly what a placeholder left by an interrupted
// first run looks like. A file with content that does not parse is a
// fatal load error.
func (s *FileStore) Load() (*library.Library, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		f, cerr := os.Create(s.path)
		if cerr != nil {
			return nil, fmt.Errorf("create catalog placeholder %s: %w", s.path, cerr)
		}
		f.Close()
		s.log.Info("no catalog file, created placeholder", zap.String("path", s.path))
		return nil, ErrNoCatalog
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.path, err)
	}
	if len(data) == 0 {
		s.log.Info("catalog file empty, treating as first run", zap.String("path", s.path))
		return nil, ErrNoCatalog
	}

	var lib library.Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", s.path, err)
	}
	s.log.Info("catalog loaded",
		zap.String("path", s.path),
		zap.String("owner", lib.Owner),
		zap.Int("books", len(lib.Books)))
	return &lib, nil
}

// Save writes the whole catalog in one call, replacing the previous
// file contents.
func (s *FileStore) Save(lib *library.Library) error {
	data, err := json.MarshalIndent(lib, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write catalog %s: %w", s.path, err)
	}
	s.log.Info("catalog saved", zap.String("path", s.path), zap.Int("books", len(lib.Books)))
	return nil
}
