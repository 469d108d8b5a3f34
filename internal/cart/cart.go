package cart

import (
	"sync"

	"go.uber.org/zap"

	"ShopKart/internal/catalog"
	"ShopKart/internal/storage"
)

// Line is a product snapshot plus a quantity. The snapshot is deliberate:
// later catalog edits must not rewrite what is already in the cart. Embedding
// flattens the JSON so the persisted shape is the product document with a
// quantity field appended.
type Line struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Store owns the shopping cart. Lines keep insertion order and are keyed by
// product id; a quantity below 1 is never persisted or returned.
type Store struct {
	log   *zap.Logger
	slots storage.Slots

	mu    sync.RWMutex
	lines []Line
}

func NewStore(slots storage.Slots, log *zap.Logger) *Store {
	s := &Store{log: log, slots: slots}

	var loaded []Line
	found, err := slots.Load(storage.SlotCart, &loaded)
	if err != nil {
		log.Warn("cart slot unreadable, starting empty", zap.Error(err))
	}
	if found && err == nil {
		s.lines = loaded
	}
	return s
}

// Lines returns a copy of the current cart in insertion order.
func (s *Store) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Add increments the quantity of an existing line for the product, or
// appends a new line with quantity 1.
func (s *Store) Add(p catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == p.ID {
			s.lines[i].Quantity++
			s.persist()
			return
		}
	}

	s.lines = append(s.lines, Line{Product: p, Quantity: 1})
	s.persist()
}

// UpdateQuantity sets the quantity of the line for the given product id.
// Quantities below 1 are rejected as a no-op; removal is Remove's job.
// Unknown ids are a no-op as well.
func (s *Store) UpdateQuantity(id, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// Remove deletes the line for the given product id unconditionally.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return
		}
	}
}

// Clear empties the cart; checkout calls this after the order is placed.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist()
}

// TotalPrice is recomputed from the lines on every call; it is never stored,
// so it cannot drift from the cart contents.
func (s *Store) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, l := range s.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// TotalItems is the sum of quantities across lines.
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

func (s *Store) persist() {
	lines := s.lines
	if lines == nil {
		lines = []Line{}
	}
	if err := s.slots.Save(storage.SlotCart, lines); err != nil {
		s.log.Error("persist cart failed", zap.Error(err))
	}
}
