package wishlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ShopKart/internal/catalog"
	"ShopKart/internal/storage"
	"ShopKart/internal/wishlist"
)

var (
	speaker = catalog.Product{ID: 20, Name: "Bluetooth Speaker", Price: 1499}
	jacket  = catalog.Product{ID: 26, Name: "Winter Jacket", Price: 2499}
)

func TestAdd_SetSemantics(t *testing.T) {
	slots := storage.NewMemSlots()
	s := wishlist.NewStore(slots, zap.NewNop())

	s.Add(speaker)
	s.Add(speaker) // duplicate: first write wins
	s.Add(jacket)

	items := s.List()
	require.Len(t, items, 2)
	assert.Equal(t, speaker.ID, items[0].ID)
	assert.Equal(t, jacket.ID, items[1].ID)

	assert.True(t, s.Contains(speaker.ID))
	assert.False(t, s.Contains(999))
}

func TestRemove(t *testing.T) {
	s := wishlist.NewStore(storage.NewMemSlots(), zap.NewNop())
	s.Add(speaker)
	s.Add(jacket)

	s.Remove(speaker.ID)
	assert.False(t, s.Contains(speaker.ID))
	assert.Len(t, s.List(), 1)

	s.Remove(999) // absent: no-op
	assert.Len(t, s.List(), 1)
}

// Toggle is a composition of the primitives, not a store operation; this is
// how collaborators express it.
func TestToggleComposition(t *testing.T) {
	s := wishlist.NewStore(storage.NewMemSlots(), zap.NewNop())

	toggle := func(p catalog.Product) bool {
		if s.Contains(p.ID) {
			s.Remove(p.ID)
			return false
		}
		s.Add(p)
		return true
	}

	assert.True(t, toggle(speaker))
	assert.True(t, s.Contains(speaker.ID))

	assert.False(t, toggle(speaker))
	assert.False(t, s.Contains(speaker.ID))
}

func TestWishlistSurvivesReload(t *testing.T) {
	slots := storage.NewMemSlots()
	s := wishlist.NewStore(slots, zap.NewNop())
	s.Add(jacket)

	reloaded := wishlist.NewStore(slots, zap.NewNop())
	require.Len(t, reloaded.List(), 1)
	assert.Equal(t, jacket.ID, reloaded.List()[0].ID)
}

func TestCorruptSlotStartsEmpty(t *testing.T) {
	slots := storage.NewMemSlots()
	slots.Put(storage.SlotWishlist, "][")

	s := wishlist.NewStore(slots, zap.NewNop())
	assert.Empty(t, s.List())
}
