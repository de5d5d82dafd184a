package prefs

import (
	"fmt"
	"sync"

	"github.com/huepick/huepick/filesystem"
	"github.com/huepick/huepick/log"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// FileStore keeps preferences as a flat JSON object on the afero filesystem,
// e.g. {"user_selected_colour":"red"}.
type FileStore struct {
	mu     sync.Mutex
	path   string
	cacher *gache.Cache[map[string]string]
}

// NewFileStore returns a store backed by the JSON file at path.
// gache creates an empty file on the first read or write.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:   path,
		cacher: newCacher(path),
	}
}

func newCacher(path string) *gache.Cache[map[string]string] {
	return gache.New[map[string]string](
		&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
			Encoder:    flatJSON{},
			Decoder:    flatJSON{},
		},
	)
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) load() (map[string]string, error) {
	cached, expired, err := s.cacher.Get()
	if err != nil {
		return nil, fmt.Errorf("read preferences %s: %w", s.path, err)
	}
	if expired || cached == nil {
		return make(map[string]string), nil
	}
	return cached, nil
}

// Get implements Store.
func (s *FileStore) Get(key string) (mo.Option[string], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.load()
	if err != nil {
		return mo.None[string](), err
	}

	value, ok := saved[key]
	if !ok {
		return mo.None[string](), nil
	}
	return mo.Some(value), nil
}

// Set implements Store. A failed write leaves the store reading what is on disk.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved, err := s.load()
	if err != nil {
		return err
	}

	log.WithField("key", key).Debugf("writing %q to %s", value, s.path)

	// gache keeps whatever it was handed even when saving fails
	if err := s.cacher.Set(lo.Assign(saved, map[string]string{key: value})); err != nil {
		s.cacher = newCacher(s.path)
		return fmt.Errorf("write preferences %s: %w", s.path, err)
	}
	return nil
}
