package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ShopKart/internal/cart"
	"ShopKart/pkg/kit"
)

type cartView struct {
	Items      []cart.Line `json:"items"`
	TotalPrice float64     `json:"total_price"`
	TotalItems int         `json:"total_items"`
}

func (s *Server) cartView() cartView {
	return cartView{
		Items:      s.Cart.Lines(),
		TotalPrice: s.Cart.TotalPrice(),
		TotalItems: s.Cart.TotalItems(),
	}
}

func (s *Server) getCart(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.cartView())
}

type cartItemReq struct {
	ProductID int `json:"product_id"`
}

func (s *Server) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req cartItemReq
	if err := kit.DecodeJSON(w, r, maxBodyBytes, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	p, ok := s.Catalog.Get(req.ProductID)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "unknown product", map[string]any{"id": req.ProductID})
		return
	}

	s.Cart.Add(p)
	kit.WriteJSON(w, http.StatusCreated, s.cartView())
}

type quantityReq struct {
	Quantity int `json:"quantity"`
}

func (s *Server) updateCartQuantity(w http.ResponseWriter, r *http.Request) {
	var req quantityReq
	if err := kit.DecodeJSON(w, r, maxBodyBytes, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	if req.Quantity < 1 {
		kit.WriteError(w, r, http.StatusBadRequest, "quantity must be at least 1", nil)
		return
	}

	s.Cart.UpdateQuantity(intParam(chi.URLParam(r, "id")), req.Quantity)
	kit.WriteJSON(w, http.StatusOK, s.cartView())
}

func (s *Server) removeCartItem(w http.ResponseWriter, r *http.Request) {
	s.Cart.Remove(intParam(chi.URLParam(r, "id")))
	kit.WriteJSON(w, http.StatusOK, s.cartView())
}

func (s *Server) clearCart(w http.ResponseWriter, _ *http.Request) {
	s.Cart.Clear()
	w.WriteHeader(http.StatusNoContent)
}
