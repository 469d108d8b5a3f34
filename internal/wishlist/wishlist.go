package wishlist

import (
	"sync"

	"go.uber.org/zap"

	"ShopKart/internal/catalog"
	"ShopKart/internal/storage"
)

// Store owns the wishlist: a set of product snapshots keyed by product id,
// kept in insertion order. There is no quantity and no duplicate entries;
// re-adding a saved product is a no-op (first write wins).
//
// "Toggle" is not a store primitive. Collaborators compose it from Contains,
// Add and Remove, so the store needs no extra state machine.
type Store struct {
	log   *zap.Logger
	slots storage.Slots

	mu    sync.RWMutex
	items []catalog.Product
}

func NewStore(slots storage.Slots, log *zap.Logger) *Store {
	s := &Store{log: log, slots: slots}

	var loaded []catalog.Product
	found, err := slots.Load(storage.SlotWishlist, &loaded)
	if err != nil {
		log.Warn("wishlist slot unreadable, starting empty", zap.Error(err))
	}
	if found && err == nil {
		s.items = loaded
	}
	return s
}

func (s *Store) List() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Product, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Contains(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.items {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) Add(p catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items {
		if it.ID == p.ID {
			return
		}
	}

	s.items = append(s.items, p)
	s.persist()
}

func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist()
			return
		}
	}
}

func (s *Store) persist() {
	items := s.items
	if items == nil {
		items = []catalog.Product{}
	}
	if err := s.slots.Save(storage.SlotWishlist, items); err != nil {
		s.log.Error("persist wishlist failed", zap.Error(err))
	}
}
