package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ShopKart/internal/cart"
	"ShopKart/internal/catalog"
	"ShopKart/internal/config"
	"ShopKart/internal/httpapi"
	"ShopKart/internal/identity"
	"ShopKart/internal/order"
	"ShopKart/internal/storage"
	"ShopKart/internal/wishlist"
	"ShopKart/pkg/kit"
)

func main() {
	service := "storefront"

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := kit.NewLogger(service, cfg.Development)
	defer func() { _ = log.Sync() }()

	slots, err := newSlots(cfg)
	if err != nil {
		log.Fatal("init slot store failed", zap.Error(err))
	}

	ids := identity.NewStore(slots, log)

	gate, err := identity.NewGate(cfg.AdminEmail, cfg.AdminPassword, cfg.JWTSecret, ids)
	if err != nil {
		log.Fatal("init admin gate failed", zap.Error(err))
	}

	s := &httpapi.Server{
		Log:      log,
		Catalog:  catalog.NewStore(slots, log),
		Cart:     cart.NewStore(slots, log),
		Wishlist: wishlist.NewStore(slots, log),
		Orders:   order.NewStore(slots, log),
		Identity: ids,
		Gate:     gate,
		Slots:    slots,
		PageSize: cfg.PageSize,
	}

	reg := prometheus.NewRegistry()
	h := httpapi.NewHandler(s, httpapi.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
	})

	if err := kit.RunHTTPServer(cfg.Addr, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func newSlots(cfg config.Config) (storage.Slots, error) {
	switch cfg.SlotBackend {
	case "sqlite":
		return storage.NewSQLiteSlots(cfg.SQLitePath)
	case "memory":
		return storage.NewMemSlots(), nil
	default:
		return storage.NewFileSlots(cfg.DataDir)
	}
}
