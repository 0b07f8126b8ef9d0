package main

// GET    /phones       – List phones, filterable by brand and maxPrice
// GET    /phones/{id}  – Get a single phone
// POST   /phones       – Create a phone
// PUT    /phones/{id}  – Update a phone
// DELETE /phones/{id}  – Delete a phone
// POST   /cart         – Reserve stock into the cart
// GET    /cart         – List cart lines with totals
// DELETE /cart         – Release a reservation
// POST   /checkout     – Finalize the cart

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"phone-store/config"
	"phone-store/handler"
	models "phone-store/model"
	"phone-store/observability"
	"phone-store/service"
	"phone-store/store"
)

func seedCatalog(catalog *store.Catalog) {
	catalog.Add(models.Phone{ID: 1, Name: "iPhone 14", Brand: "Apple", Price: 1200, Stock: 10})
	catalog.Add(models.Phone{ID: 2, Name: "Galaxy S23", Brand: "Samsung", Price: 900, Stock: 5})
	catalog.Add(models.Phone{ID: 3, Name: "Pixel 7", Brand: "Google", Price: 800, Stock: 8})
}

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.OtelEnabled {
		shutdown, err := observability.SetupTracing(context.Background(), cfg)
		if err != nil {
			logger.Fatal("tracing setup failed", zap.Error(err))
		}
		defer shutdown(context.Background())
	}

	// --- Stores ---
	catalog := store.NewCatalog()
	cart := store.NewCart()
	seedCatalog(catalog)

	// --- Service ---
	svc := service.NewService(catalog, cart, logger)
	var serviceInterface service.ServiceInterface = svc

	// --- Handlers ---
	h := handler.NewHandler(serviceInterface)

	// --- Router ---
	r := mux.NewRouter()
	r.Use(handler.Recovery(logger), handler.Logging(logger))
	h.RegisterRoutes(r)

	// --- Server ---
	logger.Info("server running", zap.String("port", cfg.Port))

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
