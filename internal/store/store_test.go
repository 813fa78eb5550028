package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/library"
)

func TestLoadFirstRunCreatesPlaceholder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	s := NewFileStore(path, nil)

	lib, err := s.Load()
	assert.Nil(t, lib)
	assert.ErrorIs(t, err, ErrNoCatalog)

	// The placeholder must exist and be empty, so the path is known
	// writable before first-run setup starts.
	info, statErr := os.Stat(path)
	require.NoError(t, statErr)
	assert.Zero(t, info.Size())
}

func TestLoadEmptyPlaceholderIsStillFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	_, err := NewFileStore(path, nil).Load()
	assert.ErrorIs(t, err, ErrNoCatalog)
}

func TestLoadCorruptFileIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"books": [}`), 0644))

	_, err := NewFileStore(path, nil).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoCatalog, "a corrupt file is not the missing-file case")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	s := NewFileStore(path, nil)

	lib := library.InitializeDemo("Morgan")
	require.NoError(t, lib.CheckOut("9780061120084"))
	require.NoError(t, s.Save(lib))

	loaded, err := s.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(lib, loaded); diff != "" {
		t.Fatalf("catalog changed across save/load (-saved +loaded):\n%s", diff)
	}
}

func TestSaveWireFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	s := NewFileStore(path, nil)

	lib := library.New("Morgan")
	lib.Add(library.NewBook("1984", "George Orwell", "9780451524935", 1949, library.GenreScienceFiction))
	require.NoError(t, s.Save(lib))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Enum tags serialize as their symbolic variant names.
	assert.Contains(t, string(data), `"genre": "ScienceFiction"`)
	assert.Contains(t, string(data), `"status": "Available"`)
	assert.Contains(t, string(data), `"publication_year": 1949`)
	assert.Contains(t, string(data), `"owner": "Morgan"`)
}

func TestSaveIntoMissingDirectoryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "library.json")
	err := NewFileStore(path, nil).Save(library.New("Morgan"))
	assert.Error(t, err)
}
