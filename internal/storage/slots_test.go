package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ShopKart/internal/storage"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileSlots_RoundTrip(t *testing.T) {
	slots, err := storage.NewFileSlots(t.TempDir())
	require.NoError(t, err)

	var missing payload
	found, err := slots.Load("nothing", &missing)
	require.NoError(t, err)
	assert.False(t, found)

	want := payload{Name: "cart", Count: 3}
	require.NoError(t, slots.Save("cart", want))

	var got payload
	found, err = slots.Load("cart", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	require.NoError(t, slots.Clear("cart"))
	found, err = slots.Load("cart", &got)
	require.NoError(t, err)
	assert.False(t, found)

	// Clearing an absent slot is a no-op, not an error.
	require.NoError(t, slots.Clear("cart"))
}

func TestFileSlots_SaveOverwrites(t *testing.T) {
	slots, err := storage.NewFileSlots(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, slots.Save("k", payload{Name: "first", Count: 1}))
	require.NoError(t, slots.Save("k", payload{Name: "second"}))

	var got payload
	found, err := slots.Load("k", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, payload{Name: "second"}, got)
}

func TestFileSlots_CorruptPayload(t *testing.T) {
	dir := t.TempDir()
	slots, err := storage.NewFileSlots(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cart.json"), []byte("{not json"), 0o644))

	var got payload
	found, err := slots.Load("cart", &got)
	assert.False(t, found)
	assert.ErrorIs(t, err, storage.ErrCorrupt)
}

func TestMemSlots_RoundTrip(t *testing.T) {
	slots := storage.NewMemSlots()

	require.NoError(t, slots.Save("wishlist", []int{1, 2, 3}))

	var got []int
	found, err := slots.Load("wishlist", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []int{1, 2, 3}, got)

	require.NoError(t, slots.Clear("wishlist"))
	found, _ = slots.Load("wishlist", &got)
	assert.False(t, found)
}

func TestMemSlots_CorruptPayload(t *testing.T) {
	slots := storage.NewMemSlots()
	slots.Put("orders", "][")

	var got []int
	found, err := slots.Load("orders", &got)
	assert.False(t, found)
	assert.ErrorIs(t, err, storage.ErrCorrupt)
}

func TestPing(t *testing.T) {
	slots, err := storage.NewFileSlots(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, slots.Ping(context.Background()))

	assert.NoError(t, storage.NewMemSlots().Ping(context.Background()))
}
