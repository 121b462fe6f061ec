package files

import (
	"io/fs"
	"os"

	"github.com/agentstation/wardrobe/pkg/catalogs"
	"github.com/agentstation/wardrobe/pkg/errors"
	"github.com/agentstation/wardrobe/pkg/save"
)

// Store is a snapshot file at a fixed path.
type Store struct {
	Path string
}

// NewStore returns a store for path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Exists reports whether the snapshot file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

// Load reads the snapshot into a new catalog.
func (s *Store) Load(opts ...catalogs.Option) (*catalogs.Catalog, error) {
	if s.Path == "" {
		return nil, &errors.ConfigError{Component: "store", Message: "no store path configured"}
	}
	return Read(s.Path, opts...)
}

// LoadOrEmpty reads the snapshot, or returns an empty catalog when the file
// does not exist yet. Any other failure is returned.
func (s *Store) LoadOrEmpty(opts ...catalogs.Option) (*catalogs.Catalog, error) {
	c, err := s.Load(opts...)
	if errors.Is(err, fs.ErrNotExist) {
		return catalogs.New(opts...), nil
	}
	return c, err
}

// Save writes the catalog to the store path. Format options still apply, so
// a YAML export to the store path is possible, though Load reads JSON only.
func (s *Store) Save(c *catalogs.Catalog, opts ...save.Option) error {
	if s.Path == "" {
		return &errors.ConfigError{Component: "store", Message: "no store path configured"}
	}
	return Write(c, append([]save.Option{save.WithPath(s.Path)}, opts...)...)
}
