package theme

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	forgeerrors "github.com/uiforge/uiforge/pkg/errors"
)

const recordExt = ".yaml"

// Store validates, persists, and caches themes. One YAML record per theme
// lives under dir; the in-memory index is built eagerly at construction
// and every mutation rewrites the record and the index under the same
// lock, so readers never observe a half-applied mutation.
type Store struct {
	dir    string
	mu     sync.RWMutex
	themes map[string]*Theme
}

// NewStore creates the store directory if needed and loads every
// persisted record before returning.
func NewStore(dir string) (*Store, error) {
	s := &Store{
		dir:    dir,
		themes: make(map[string]*Theme),
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, forgeerrors.NewStorageError(dir, err)
	}

	if err := s.loadAll(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) loadAll() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return forgeerrors.NewStorageError(s.dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recordExt) {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return forgeerrors.NewStorageError(path, err)
		}

		t, err := Parse(data)
		if err != nil {
			return err
		}

		s.themes[t.Name] = t
	}

	return nil
}

// Create parses the raw payload, persists it as the theme's record, and
// inserts the theme into the index. An existing theme of the same name is
// fully replaced.
func (s *Store) Create(raw []byte) (*Theme, error) {
	t, doc, err := parseRaw(raw)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeRecord(t.Name, doc); err != nil {
		return nil, err
	}

	s.themes[t.Name] = t
	return t, nil
}

// Get returns the theme from the in-memory index.
func (s *Store) Get(name string) (*Theme, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.themes[name]
	return t, ok
}

// List returns all themes sorted by name.
func (s *Store) List() []*Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Theme, 0, len(s.themes))
	for _, t := range s.themes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Update re-parses the payload and fully replaces the record and index
// entry for name. The payload replaces the theme wholesale; there is no
// partial merge.
func (s *Store) Update(name string, raw []byte) (*Theme, error) {
	t, doc, err := parseRaw(raw)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.themes[name]; !ok {
		return nil, forgeerrors.NewNotFoundError(name)
	}

	if t.Name != name {
		return nil, forgeerrors.NewValidationError("name",
			"payload name does not match the theme being updated", nil)
	}

	if err := s.writeRecord(name, doc); err != nil {
		return nil, err
	}

	s.themes[name] = t
	return t, nil
}

// Delete removes the persisted record and the index entry.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.themes[name]; !ok {
		return forgeerrors.NewNotFoundError(name)
	}

	path := s.recordPath(name)
	if err := os.Remove(path); err != nil {
		return forgeerrors.NewStorageError(path, err)
	}

	delete(s.themes, name)
	return nil
}

// Export renders the named theme in the requested stylesheet format. It
// reads only the in-memory index and mutates nothing.
func (s *Store) Export(name string, format Format) (string, error) {
	s.mu.RLock()
	t, ok := s.themes[name]
	s.mu.RUnlock()

	if !ok {
		return "", forgeerrors.NewNotFoundError(name)
	}

	return Export(t, format)
}

func (s *Store) recordPath(name string) string {
	return filepath.Join(s.dir, name+recordExt)
}

// writeRecord re-serializes the payload document with stable formatting
// and writes it atomically via a temporary file.
func (s *Store) writeRecord(name string, doc *yaml.Node) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return forgeerrors.NewStorageError(s.recordPath(name), err)
	}

	path := s.recordPath(name)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return forgeerrors.NewStorageError(tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return forgeerrors.NewStorageError(path, err)
	}

	return nil
}
