package cart

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistAddIsIdempotent(t *testing.T) {
	w := NewWishlist(nil)

	w.Add(snapshot("p1", 100))
	w.Add(snapshot("p1", 100))
	w.Add(snapshot("p2", 200))

	assert.Equal(t, 2, w.Len())
	assert.True(t, w.Contains("p1"))
	assert.True(t, w.Contains("p2"))
}

func TestWishlistRemove(t *testing.T) {
	w := NewWishlist(nil)
	w.Add(snapshot("p1", 100))
	w.Add(snapshot("p2", 200))

	w.Remove("p1")
	assert.False(t, w.Contains("p1"))
	assert.Equal(t, 1, w.Len())

	// Removing an absent product is a no-op.
	w.Remove("p1")
	assert.Equal(t, 1, w.Len())
}

func TestWishlistKeepsInsertionOrder(t *testing.T) {
	w := NewWishlist(nil)
	w.Add(snapshot("p2", 200))
	w.Add(snapshot("p1", 100))

	items := w.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p2", items[0].ID)
	assert.Equal(t, "p1", items[1].ID)
}

func TestWishlistPersistenceRoundTrip(t *testing.T) {
	storage := NewFileStorage(filepath.Join(t.TempDir(), "wishlist.json"))

	w := NewWishlist(storage)
	w.Add(snapshot("p1", 100))
	w.Add(snapshot("p2", 200))
	w.Remove("p1")

	reloaded := LoadWishlist(storage)
	assert.Equal(t, 1, reloaded.Len())
	assert.False(t, reloaded.Contains("p1"))
	assert.True(t, reloaded.Contains("p2"))
}

func TestLoadWishlistDiscardsCorruptState(t *testing.T) {
	storage := NewFileStorage(filepath.Join(t.TempDir(), "wishlist.json"))
	require.NoError(t, storage.Save([]byte("broken")))

	w := LoadWishlist(storage)
	assert.Equal(t, 0, w.Len())
}
