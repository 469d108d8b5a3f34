package storage

import (
	"context"
	"errors"
)

// Slot keys. Each store owns exactly one slot; no two stores share a key.
const (
	SlotCatalog  = "catalog"
	SlotCart     = "cart"
	SlotWishlist = "wishlist"
	SlotOrders   = "orders"
	SlotSession  = "current-session-user"
	SlotRegistry = "user-registry"
)

// ErrCorrupt reports a slot whose payload is not valid JSON. Callers are
// expected to fall back to their default value instead of failing.
var ErrCorrupt = errors.New("corrupt slot payload")

// Slots is a durable key -> JSON document store. Save is a full overwrite
// of the slot; there is no merge.
type Slots interface {
	// Load decodes the slot into v. It reports false when the slot is
	// absent, and ErrCorrupt when the payload cannot be decoded.
	Load(key string, v any) (bool, error)
	Save(key string, v any) error
	Clear(key string) error
	Ping(ctx context.Context) error
}
