package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ShopKart/pkg/kit"
)

func (s *Server) getWishlist(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Wishlist.List())
}

func (s *Server) addWishlistItem(w http.ResponseWriter, r *http.Request) {
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

	s.Wishlist.Add(p)
	kit.WriteJSON(w, http.StatusCreated, s.Wishlist.List())
}

func (s *Server) removeWishlistItem(w http.ResponseWriter, r *http.Request) {
	s.Wishlist.Remove(intParam(chi.URLParam(r, "id")))
	kit.WriteJSON(w, http.StatusOK, s.Wishlist.List())
}

// toggleWishlist composes the two store primitives: present -> remove,
// absent -> add. The store itself has no toggle.
func (s *Server) toggleWishlist(w http.ResponseWriter, r *http.Request) {
	var req cartItemReq
	if err := kit.DecodeJSON(w, r, maxBodyBytes, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	if s.Wishlist.Contains(req.ProductID) {
		s.Wishlist.Remove(req.ProductID)
		kit.WriteJSON(w, http.StatusOK, map[string]any{"wishlisted": false})
		return
	}

	p, ok := s.Catalog.Get(req.ProductID)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "unknown product", map[string]any{"id": req.ProductID})
		return
	}

	s.Wishlist.Add(p)
	kit.WriteJSON(w, http.StatusOK, map[string]any{"wishlisted": true})
}
