package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"ShopKart/internal/order"
	"ShopKart/pkg/kit"
)

// checkout freezes the current cart into a new ledger entry and clears the
// cart. The cart is only cleared after the order is in the ledger.
func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	lines := s.Cart.Lines()

	o, err := s.Orders.Place(lines, s.Cart.TotalPrice())
	if errors.Is(err, order.ErrEmptyOrder) {
		kit.WriteError(w, r, http.StatusBadRequest, "cart is empty", nil)
		return
	}
	if err != nil {
		if s.Log != nil {
			s.Log.Error("place order failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	s.Cart.Clear()
	kit.WriteJSON(w, http.StatusCreated, o)
}

func (s *Server) listOrders(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Orders.List())
}
