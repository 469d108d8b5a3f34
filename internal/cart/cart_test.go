package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ShopKart/internal/cart"
	"ShopKart/internal/catalog"
	"ShopKart/internal/storage"
)

var (
	watch = catalog.Product{ID: 4, Name: "Wrist Watch", Price: 599}
	shoes = catalog.Product{ID: 3, Name: "Casual Shoes", Price: 799}
)

func newCart(t *testing.T) (*cart.Store, *storage.MemSlots) {
	t.Helper()
	slots := storage.NewMemSlots()
	return cart.NewStore(slots, zap.NewNop()), slots
}

func TestAdd_SameProductIncrementsQuantity(t *testing.T) {
	s, _ := newCart(t)

	s.Add(watch)
	s.Add(watch)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, watch.ID, lines[0].ID)
}

func TestAdd_DifferentProductsAppendLines(t *testing.T) {
	s, _ := newCart(t)

	s.Add(watch)
	s.Add(shoes)

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, watch.ID, lines[0].ID)
	assert.Equal(t, shoes.ID, lines[1].ID)
}

func TestUpdateQuantity(t *testing.T) {
	s, _ := newCart(t)
	s.Add(watch)

	s.UpdateQuantity(watch.ID, 5)
	assert.Equal(t, 5, s.Lines()[0].Quantity)

	// Below 1 is rejected: the line keeps its quantity and is never
	// persisted at zero.
	s.UpdateQuantity(watch.ID, 0)
	assert.Equal(t, 5, s.Lines()[0].Quantity)

	s.UpdateQuantity(watch.ID, -3)
	assert.Equal(t, 5, s.Lines()[0].Quantity)

	// Unknown id is a no-op.
	s.UpdateQuantity(999, 2)
	require.Len(t, s.Lines(), 1)
}

func TestZeroQuantityNeverPersisted(t *testing.T) {
	s, slots := newCart(t)
	s.Add(watch)
	s.UpdateQuantity(watch.ID, 0)

	var persisted []cart.Line
	found, err := slots.Load(storage.SlotCart, &persisted)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, persisted, 1)
	assert.Equal(t, 1, persisted[0].Quantity)
}

func TestRemove(t *testing.T) {
	s, _ := newCart(t)
	s.Add(watch)
	s.Add(shoes)

	s.Remove(watch.ID)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, shoes.ID, lines[0].ID)

	s.Remove(999) // absent: no-op
	assert.Len(t, s.Lines(), 1)
}

func TestClear(t *testing.T) {
	s, _ := newCart(t)
	s.Add(watch)
	s.Add(shoes)

	s.Clear()
	assert.Empty(t, s.Lines())
	assert.Zero(t, s.TotalPrice())
	assert.Zero(t, s.TotalItems())
}

func TestTotals(t *testing.T) {
	s, _ := newCart(t)
	s.Add(watch) // 599
	s.Add(watch) // x2
	s.Add(shoes) // 799

	assert.Equal(t, 599.0*2+799, s.TotalPrice())
	assert.Equal(t, 3, s.TotalItems())

	// Derived values track the lines with no stored copy to desync.
	s.UpdateQuantity(shoes.ID, 3)
	assert.Equal(t, 599.0*2+799*3, s.TotalPrice())
	assert.Equal(t, 5, s.TotalItems())
}

func TestCartSurvivesReload(t *testing.T) {
	s, slots := newCart(t)
	s.Add(watch)
	s.UpdateQuantity(watch.ID, 4)

	reloaded := cart.NewStore(slots, zap.NewNop())
	lines := reloaded.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 4, lines[0].Quantity)
	assert.Equal(t, watch.Price, lines[0].Price)
}

func TestCorruptSlotStartsEmpty(t *testing.T) {
	slots := storage.NewMemSlots()
	slots.Put(storage.SlotCart, "not json")

	s := cart.NewStore(slots, zap.NewNop())
	assert.Empty(t, s.Lines())
}
