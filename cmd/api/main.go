package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/dispatchly/fulfillment-backend/internal/modules/commerce"
	"github.com/dispatchly/fulfillment-backend/internal/modules/fulfillment"
	"github.com/dispatchly/fulfillment-backend/internal/modules/geo"
	"github.com/dispatchly/fulfillment-backend/internal/modules/warehouse"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from process environment")
	}

	// ── Warehouse registry ───────────────────────────────────
	// Built exactly once; immutable for the process lifetime.
	registry := loadRegistry()
	log.Printf("warehouse registry loaded with %d locations", registry.Len())

	// ── External collaborators ──────────────────────────────
	geocoder := geo.NewNominatimGeocoder(os.Getenv("GEOCODER_URL"))
	fetcher := commerce.NewShopifyClient(
		os.Getenv("SHOPIFY_STORE_DOMAIN"),
		os.Getenv("SHOPIFY_ACCESS_TOKEN"),
	)

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	fulfillmentService := fulfillment.NewService(geocoder, fetcher, registry)
	fulfillment.NewHandler(fulfillmentService).RegisterRoutes(router)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"healthy","warehouses":%d}`, registry.Len())
	})

	// ── Start Server ─────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Fulfillment API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

// loadRegistry prefers the Postgres warehouse table when DATABASE_URL
// is set and falls back to the built-in network otherwise. Either way
// the registry never changes after this returns.
func loadRegistry() *warehouse.Registry {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return warehouse.DefaultRegistry()
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Printf("warn: cannot open database, using built-in registry: %v", err)
		return warehouse.DefaultRegistry()
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Printf("warn: database unreachable, using built-in registry: %v", err)
		return warehouse.DefaultRegistry()
	}

	rows, err := warehouse.NewPostgresRepository(db).ListWarehouses(context.Background())
	if err != nil || len(rows) == 0 {
		log.Printf("warn: no warehouses loaded from database, using built-in registry: %v", err)
		return warehouse.DefaultRegistry()
	}
	return warehouse.NewRegistry(rows)
}
