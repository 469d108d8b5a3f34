package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ShopKart/internal/cart"
	"ShopKart/internal/catalog"
	"ShopKart/internal/identity"
	"ShopKart/internal/order"
	"ShopKart/internal/storage"
	"ShopKart/internal/wishlist"
	"ShopKart/pkg/kit"
)

const maxBodyBytes = 1 << 20

const (
	loginLimitPerMin = 5
	loginLimitWindow = time.Minute
)

// Server is the collaborator facade: every route is a thin adapter from
// HTTP onto one store operation. The stores hold all state; the facade
// holds none.
type Server struct {
	Log      *zap.Logger
	Catalog  *catalog.Store
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Orders   *order.Store
	Identity *identity.Store
	Gate     *identity.Gate
	Slots    storage.Slots

	// PageSize is the catalog page size; zero falls back to the default.
	PageSize int
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := s.Slots.Ping(ctx); err != nil {
			if s.Log != nil {
				s.Log.Warn("readyz failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/products", s.listProducts)
	r.Get("/products/{id}", s.getProduct)

	r.Get("/cart", s.getCart)
	r.Post("/cart/items", s.addCartItem)
	r.Put("/cart/items/{id}", s.updateCartQuantity)
	r.Delete("/cart/items/{id}", s.removeCartItem)
	r.Delete("/cart", s.clearCart)

	r.Get("/wishlist", s.getWishlist)
	r.Post("/wishlist/items", s.addWishlistItem)
	r.Delete("/wishlist/items/{id}", s.removeWishlistItem)
	r.Post("/wishlist/toggle", s.toggleWishlist)

	r.Post("/checkout", s.checkout)
	r.Get("/orders", s.listOrders)

	r.Get("/session", s.getSession)
	r.Post("/session", s.setSession)
	r.Delete("/session", s.clearSession)
	r.Post("/users", s.registerUser)

	loginLimiter := kit.NewIPRateLimiter(loginLimitPerMin, loginLimitWindow)
	r.With(loginLimiter.Middleware).Post("/admin/login", s.adminLogin)

	r.Group(func(pr chi.Router) {
		pr.Use(RequireAdmin(s.Gate))
		pr.Post("/products", s.createProduct)
		pr.Put("/products/{id}", s.updateProduct)
		pr.Delete("/products/{id}", s.deleteProduct)
		pr.Get("/users", s.listUsers)
		pr.Delete("/users/{email}", s.deleteUser)
	})

	return r
}
