package files_test

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/wardrobe/pkg/catalogs"
	"github.com/agentstation/wardrobe/pkg/catalogs/files"
	"github.com/agentstation/wardrobe/pkg/errors"
	"github.com/agentstation/wardrobe/pkg/save"
)

func sample() *catalogs.Catalog {
	c := catalogs.New()
	c.Add(catalogs.NewItem("Y2K fairy blouse", "top", "pink", "slim", "playful", "casual"))
	c.Add(catalogs.NewItem("Flared jeans", "bottom", "blue", "loose", "relaxed", "casual"))
	c.Add(catalogs.NewItem("Tweed blazer", "jacket", "brown", "regular", "classic", "smart casual"))
	c.Add(catalogs.NewItem("Pearl earrings", "accessory", "white", "regular", "elegant", "formal"))
	c.Add(catalogs.NewItem("Scarf", "neckwear", "red", "regular", "cosy", "casual"))
	return c
}

func ids(items []*catalogs.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID())
	}
	return out
}

func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wardrobe.json")
	original := sample()

	require.NoError(t, files.Write(original, save.WithPath(path)))

	loaded, err := files.Read(path)
	require.NoError(t, err)
	assert.Equal(t, ids(original.All()), ids(loaded.All()))
	assert.Equal(t, ids(original.Tops()), ids(loaded.Tops()))
	assert.Equal(t, ids(original.Accessories()), ids(loaded.Accessories()))
	assert.Equal(t, ids(original.Uncategorized()), ids(loaded.Uncategorized()))
	assert.Equal(t, original.Snapshot(), loaded.Snapshot())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestWriteUsesFourSpaceIndent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, files.Write(sample(), save.WithWriter(&buf)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{\n    \"allClothes\": ["), out)
	assert.True(t, strings.HasSuffix(out, "}\n"))
	for _, key := range []string{"allClothes", "tops", "bottoms", "jackets", "accessories"} {
		assert.Contains(t, out, `"`+key+`"`)
	}
}

func TestWriteEmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, files.Write(catalogs.New(), save.WithWriter(&buf)))
	assert.Contains(t, buf.String(), `"allClothes": []`)
	assert.NotContains(t, buf.String(), "null")
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, files.Write(sample(), save.WithWriter(&buf), save.WithFormat(save.FormatYAML)))

	var snap catalogs.Snapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &snap))
	assert.Len(t, snap.AllClothes, 5)
	assert.Len(t, snap.Tops, 1)
	assert.Equal(t, "smart casual", snap.Jackets[0].DressCode)
}

func TestWriteReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wardrobe.json")
	require.NoError(t, files.Write(sample(), save.WithPath(path)))
	require.NoError(t, files.Write(catalogs.New(), save.WithPath(path)))

	loaded, err := files.Read(path)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Len())
}

func TestWriteFailures(t *testing.T) {
	t.Run("no destination", func(t *testing.T) {
		err := files.Write(sample())
		var cfgErr *errors.ConfigError
		assert.True(t, errors.As(err, &cfgErr))
	})

	t.Run("unwritable directory", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

		err := files.Write(sample(), save.WithPath(filepath.Join(blocker, "wardrobe.json")))
		require.Error(t, err)
		assert.True(t, errors.IsWriteFailure(err))
	})

	t.Run("invalid format", func(t *testing.T) {
		var buf bytes.Buffer
		err := files.Write(sample(), save.WithWriter(&buf), save.WithFormat(save.Format(7)))
		assert.True(t, errors.IsValidationError(err))
		assert.Zero(t, buf.Len())
	})

	t.Run("encode failure", func(t *testing.T) {
		err := files.EncodeFailure("wardrobe.json", fs.ErrInvalid)
		assert.True(t, errors.IsWriteFailure(err))
		assert.False(t, errors.IsReadFailure(err))
		assert.True(t, errors.Is(err, fs.ErrInvalid))
	})
}

func TestReadFailures(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := files.Read(filepath.Join(dir, "absent.json"))
		require.Error(t, err)
		assert.True(t, errors.IsReadFailure(err))
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	tests := map[string]string{
		"malformed":      `{"allClothes": [`,
		"no allClothes":  `{"tops": []}`,
		"missing field":  `{"allClothes": [{"id": "a", "type": "top", "colour": "red", "fit": "slim", "mood": "bold"}]}`,
		"wrong type":     `{"allClothes": [{"id": 7, "type": "top", "colour": "red", "fit": "slim", "mood": "bold", "dressCode": "casual"}]}`,
		"array document": `[]`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(name, " ", "_")+".json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))

			c, err := files.Read(path)
			assert.Nil(t, c)
			require.Error(t, err)
			assert.True(t, errors.IsReadFailure(err))

			var parseErr *errors.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, path, parseErr.File)
		})
	}
}

func TestReadIgnoresViewArrays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wardrobe.json")
	body := `{
    "allClothes": [
        {"id": "Linen shirt", "type": "Top", "colour": "white", "fit": "loose", "mood": "calm", "dressCode": "casual"}
    ],
    "tops": [],
    "bottoms": [
        {"id": "Ghost", "type": "bottom", "colour": "grey", "fit": "slim", "mood": "sad", "dressCode": "casual"}
    ]
}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	c, err := files.Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Linen shirt"}, ids(c.Tops()))
	assert.Empty(t, c.Bottoms())
}

func TestReadAppliesCatalogOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wardrobe.json")
	require.NoError(t, files.Write(sample(), save.WithPath(path)))

	log := &catalogs.EventLog{}
	_, err := files.Read(path, catalogs.WithEventSink(log))
	require.NoError(t, err)
	assert.Equal(t, 5, log.Len())
}
