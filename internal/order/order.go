package order

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"ShopKart/internal/cart"
	"ShopKart/internal/storage"
)

type Status string

const (
	StatusPlaced    Status = "Placed"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

// ErrEmptyOrder reports a checkout attempted with no cart lines. The ledger
// is append-only; writing an empty order would pollute it forever.
var ErrEmptyOrder = errors.New("cannot place an order with no items")

// Order is a checkout snapshot. Everything in it is frozen at Place time:
// the line snapshots, the total and the timestamp never change afterwards.
// Status transitions are fulfilment's business, not this ledger's; orders
// are created Placed and there is no update operation.
type Order struct {
	ID     string      `json:"id"`
	Items  []cart.Line `json:"items"`
	Total  float64     `json:"total"`
	Date   string      `json:"date"` // ISO-8601, UTC
	Status Status      `json:"status"`
}

// Store owns the append-only order ledger.
type Store struct {
	log   *zap.Logger
	slots storage.Slots
	now   func() time.Time

	mu         sync.RWMutex
	orders     []Order
	lastMillis int64
}

func NewStore(slots storage.Slots, log *zap.Logger) *Store {
	return newStore(slots, log, time.Now)
}

func newStore(slots storage.Slots, log *zap.Logger, now func() time.Time) *Store {
	s := &Store{log: log, slots: slots, now: now}

	var loaded []Order
	found, err := slots.Load(storage.SlotOrders, &loaded)
	if err != nil {
		log.Warn("orders slot unreadable, starting empty", zap.Error(err))
	}
	if found && err == nil {
		s.orders = loaded
		for _, o := range s.orders {
			if ms := idMillis(o.ID); ms > s.lastMillis {
				s.lastMillis = ms
			}
		}
	}
	return s
}

// Place freezes the submitted lines and total into a new ledger entry. Ids
// derive from the checkout time; two checkouts in the same millisecond get
// strictly increasing ids anyway.
func (s *Store) Place(lines []cart.Line, total float64) (Order, error) {
	if len(lines) == 0 {
		return Order{}, ErrEmptyOrder
	}

	frozen := make([]cart.Line, len(lines))
	copy(frozen, lines)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	ms := now.UnixMilli()
	if ms <= s.lastMillis {
		ms = s.lastMillis + 1
	}
	s.lastMillis = ms

	o := Order{
		ID:     "o_" + strconv.FormatInt(ms, 10),
		Items:  frozen,
		Total:  total,
		Date:   now.Format(time.RFC3339),
		Status: StatusPlaced,
	}

	s.orders = append(s.orders, o)
	s.persist()
	return o, nil
}

// List returns the ledger in placement order.
func (s *Store) List() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) persist() {
	if err := s.slots.Save(storage.SlotOrders, s.orders); err != nil {
		s.log.Error("persist orders failed", zap.Error(err))
	}
}

func idMillis(id string) int64 {
	ms, err := strconv.ParseInt(strings.TrimPrefix(id, "o_"), 10, 64)
	if err != nil {
		return 0
	}
	return ms
}
