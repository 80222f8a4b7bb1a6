package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"pokeroster/internal/domain"
	"pokeroster/internal/util/memzero"
)

const (
	rosterFile       = "roster.json"
	sealedRosterFile = "roster.json.enc"
)

// FileStore keeps every key in a single JSON document on disk. Values must be
// JSON. Each Commit rewrites the document through a temp file and a rename, so a
// reader sees either the old document or the new one.
type FileStore struct {
	path string
	env  *envelope // nil for a plain document
	mu   sync.Mutex
}

// NewFileStore returns a plain FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, rosterFile)}
}

// NewSealedFileStore returns a FileStore whose document is encrypted at rest
// under passphrase.
func NewSealedFileStore(dir, passphrase string) *FileStore {
	return &FileStore{
		path: filepath.Join(dir, sealedRosterFile),
		env:  newEnvelope(passphrase, defaultKDFParams()),
	}
}

// Path returns the file backing the store.
func (s *FileStore) Path() string { return s.path }

// Get returns the value stored under key.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, false, err
	}
	v, ok := doc[key]
	if !ok {
		return nil, false, nil
	}
	return cloneBytes(v), true, nil
}

// GetMany returns the present keys from a single read of the document.
func (s *FileStore) GetMany(keys ...string) (map[string][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		if v, ok := doc[k]; ok {
			out[k] = cloneBytes(v)
		}
	}
	return out, nil
}

// Commit merges b into the document and replaces the file in one step.
func (s *FileStore) Commit(b domain.Batch) error {
	for k, v := range b {
		if v != nil && !json.Valid(v) {
			return fmt.Errorf("store: value for %q is not valid JSON", k)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	for k, v := range b {
		if v == nil {
			delete(doc, k)
			continue
		}
		doc[k] = cloneBytes(v)
	}
	return s.save(doc)
}

func (s *FileStore) load() (document, error) {
	raw, err := readFile(s.path)
	if err != nil {
		return nil, err
	}
	doc := document{}
	if raw == nil {
		return doc, nil
	}
	if s.env != nil {
		if raw, err = s.env.open(raw); err != nil {
			return nil, err
		}
	}
	err = json.Unmarshal(raw, &doc)
	if s.env != nil {
		memzero.Zero(raw)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return doc, nil
}

func (s *FileStore) save(doc document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if s.env != nil {
		plain := raw
		raw, err = s.env.seal(plain)
		memzero.Zero(plain)
		if err != nil {
			return err
		}
	}
	return writeFile(s.path, raw, 0o600)
}

// Compile-time assertion that FileStore implements domain.KeyValueStore.
var _ domain.KeyValueStore = (*FileStore)(nil)
