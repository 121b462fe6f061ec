// Package files persists wardrobe catalogs as snapshot documents on disk.
//
// Snapshots are written as indented JSON by default, or YAML when requested.
// Writes to a path go through a temporary file in the same directory followed
// by a rename, so a crashed write never leaves a truncated store behind.
package files

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/wardrobe/pkg/catalogs"
	"github.com/agentstation/wardrobe/pkg/constants"
	"github.com/agentstation/wardrobe/pkg/errors"
	"github.com/agentstation/wardrobe/pkg/save"
)

// encodeFailure reports a snapshot that could not be rendered as a write
// failure against path.
func encodeFailure(path string, err error) error {
	return errors.WrapIO("encode", path, err)
}

// Encode renders the catalog's snapshot in the requested format.
func Encode(c *catalogs.Catalog, opts ...save.Option) ([]byte, error) {
	options := save.Defaults().Apply(opts...)
	snap := c.Snapshot()

	switch options.Format() {
	case save.FormatYAML:
		data, err := yaml.Marshal(snap)
		if err != nil {
			return nil, encodeFailure(options.Path(), err)
		}
		return data, nil
	case save.FormatJSON:
		data, err := json.MarshalIndent(snap, "", options.Indent())
		if err != nil {
			return nil, encodeFailure(options.Path(), err)
		}
		return append(data, '\n'), nil
	default:
		return nil, &errors.ValidationError{
			Field:   "format",
			Value:   options.Format().String(),
			Message: "unsupported snapshot format",
		}
	}
}

// Write saves the catalog to the configured writer, or atomically to the
// configured path. A writer takes precedence over a path.
func Write(c *catalogs.Catalog, opts ...save.Option) error {
	options := save.Defaults().Apply(opts...)

	if options.Writer() == nil && options.Path() == "" {
		return &errors.ConfigError{
			Component: "files",
			Message:   "no path or writer configured for saving",
		}
	}

	data, err := Encode(c, opts...)
	if err != nil {
		return err
	}

	if w := options.Writer(); w != nil {
		if _, err := w.Write(data); err != nil {
			return errors.WrapIO("write", options.Path(), err)
		}
		return nil
	}

	return writeAtomic(options.Path(), data)
}

// writeAtomic replaces path with data via a sibling temp file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, constants.TempFilePattern)
	if err != nil {
		return errors.WrapIO("create", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // already renamed on success

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	if err := os.Chmod(tmpName, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

// Read loads a catalog from a JSON snapshot file. Only the allClothes array
// is consulted. A missing file yields an error matching both
// errors.ErrReadFailure and fs.ErrNotExist.
func Read(path string, opts ...catalogs.Option) (*catalogs.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer f.Close() //nolint:errcheck // read-only

	return Decode(f, path, opts...)
}

// Decode parses a JSON snapshot from r. name labels parse errors.
func Decode(r io.Reader, name string, opts ...catalogs.Option) (*catalogs.Catalog, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, errors.WrapIO("read", name, err)
	}

	c, err := catalogs.Unmarshal(buf.Bytes(), opts...)
	if err != nil {
		var parseErr *errors.ParseError
		if errors.As(err, &parseErr) && parseErr.File == "" {
			parseErr.File = name
		}
		return nil, err
	}
	return c, nil
}
