package themes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// DefaultStorageKey is the key the preference is persisted under.
const DefaultStorageKey = "theme-preference"

// MemoryStore keeps the preference in memory.
type MemoryStore struct {
	mu    sync.Mutex
	value string
}

var (
	_ interfaces.PreferenceStore = (*MemoryStore)(nil)
	_ interfaces.PreferenceStore = (*FileStore)(nil)
)

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, nil
}

func (m *MemoryStore) Save(value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	return nil
}

// FileStore persists preferences as a JSON object in a file, one entry per
// key. Other keys in the file are preserved. Save refuses to overwrite a file
// it cannot decode.
type FileStore struct {
	path string
	key  string
	mu   sync.Mutex
}

// NewFileStore returns a store writing key into the file at path.
func NewFileStore(path, key string) *FileStore {
	if strings.TrimSpace(key) == "" {
		key = DefaultStorageKey
	}
	return &FileStore{path: path, key: key}
}

// DefaultPreferencesPath is preferences.json under the user config
// directory.
func DefaultPreferencesPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("themes: resolve config dir: %w", err)
	}
	return filepath.Join(dir, "go-portfolio", "preferences.json"), nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string { return f.path }

func (f *FileStore) Load() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.read()
	if err != nil {
		return "", err
	}
	return values[f.key], nil
}

func (f *FileStore) Save(value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return err
	}
	values[f.key] = value

	encoded, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("themes: create preferences dir: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, append(encoded, '\n'), 0o644); err != nil {
		return fmt.Errorf("themes: write preferences: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("themes: replace preferences: %w", err)
	}
	return nil
}

func (f *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("themes: read preferences: %w", err)
	}
	values := map[string]string{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("themes: decode preferences: %w", err)
	}
	return values, nil
}
