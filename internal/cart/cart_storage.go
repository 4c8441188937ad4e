package cart

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// DefaultStorageFile mirrors the browser storage key the web client uses.
const DefaultStorageFile = "simple-place-cart.json"

// Storage is the durable store behind a cart Store: a single keyed value
// holding the serialized line list, overwritten on every mutation.
type Storage interface {
	Load() ([]Line, error)
	Save(lines []Line) error
}

type memoryStorage struct {
	lines []Line
}

func NewMemoryStorage() Storage {
	return &memoryStorage{}
}

func (m *memoryStorage) Load() ([]Line, error) {
	out := make([]Line, len(m.lines))
	copy(out, m.lines)
	return out, nil
}

func (m *memoryStorage) Save(lines []Line) error {
	m.lines = make([]Line, len(lines))
	copy(m.lines, lines)
	return nil
}

type fileStorage struct {
	path string
}

// NewFileStorage persists the line list as JSON at path. An empty path uses
// DefaultStorageFile in the working directory.
func NewFileStorage(path string) Storage {
	if path == "" {
		path = DefaultStorageFile
	}
	return &fileStorage{path: path}
}

func (f *fileStorage) Load() ([]Line, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (f *fileStorage) Save(lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}
