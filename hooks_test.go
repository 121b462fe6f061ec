package wardrobe

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/wardrobe/pkg/catalogs"
)

func TestHooks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wardrobe.json")
	w := newTestWardrobe(t, WithStorePath(path))

	var added []string
	var removed []string
	var loaded []int

	w.OnItemAdded(func(item *catalogs.Item) { added = append(added, item.ID()) })
	w.OnItemRemoved(func(id string, count int) {
		removed = append(removed, id)
		assert.Equal(t, 2, count)
	})
	w.OnCatalogLoaded(func(c *catalogs.Catalog) { loaded = append(loaded, c.Len()) })

	require.NoError(t, w.Add(catalogs.NewItem("Mittens", "accessory", "red", "comfy", "cosy", "casual")))
	require.NoError(t, w.Add(catalogs.NewItem("Mittens", "accessory", "blue", "comfy", "cosy", "casual")))
	require.NoError(t, w.Save())

	_, err := w.Remove("Mittens")
	require.NoError(t, err)
	_, err = w.Remove("Mittens")
	require.NoError(t, err)

	require.NoError(t, w.Load())

	assert.Equal(t, []string{"Mittens", "Mittens"}, added)
	assert.Equal(t, []string{"Mittens"}, removed, "no-op removals do not fire hooks")
	assert.Equal(t, []int{2}, loaded)
}

func TestHooksMayReadWardrobe(t *testing.T) {
	w := newTestWardrobe(t)

	var seen int
	w.OnItemAdded(func(*catalogs.Item) {
		seen = len(w.Items())
	})

	require.NoError(t, w.Add(catalogs.NewItem("Belt", "accessory", "black", "tight", "sharp", "formal")))
	assert.Equal(t, 1, seen)
}
