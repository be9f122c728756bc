package fulfillment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct{ quote *Quote }

func (s *stubService) Locate(ctx context.Context, pincode, productID string) *Quote {
	return s.quote
}

func newTestRouter(svc Service) *chi.Mux {
	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
	NewHandler(svc).RegisterRoutes(router)
	return router
}

func doLocate(t *testing.T, svc Service, target string) (*httptest.ResponseRecorder, locateResponse) {
	t.Helper()
	router := newTestRouter(svc)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Origin", "https://shop.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body locateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestLocateMissingParams(t *testing.T) {
	targets := []string{
		"/api/v1/fulfillment/locate",
		"/api/v1/fulfillment/locate?pincode=110001",
		"/api/v1/fulfillment/locate?product_id=42",
	}
	for _, target := range targets {
		rec, body := doLocate(t, &stubService{}, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, OutcomeInvalidInput, body.Status, target)
	}
}

func TestLocateOutcomeStatusMapping(t *testing.T) {
	quoteID := uuid.New()
	tests := []struct {
		name       string
		quote      *Quote
		wantStatus int
		wantBody   locateResponse
	}{
		{
			name: "fulfilled",
			quote: &Quote{
				ID: quoteID, Outcome: OutcomeFulfilled,
				Warehouse: "Delhi Warehouse", Quantity: 4,
				Estimate: "Saturday, March 15",
				Message:  "Ships from Delhi Warehouse (4 in stock). Estimated dispatch by Saturday, March 15.",
			},
			wantStatus: http.StatusOK,
			wantBody: locateResponse{
				Status:            OutcomeFulfilled,
				Message:           "Ships from Delhi Warehouse (4 in stock). Estimated dispatch by Saturday, March 15.",
				Warehouse:         "Delhi Warehouse",
				Quantity:          4,
				EstimatedDispatch: "Saturday, March 15",
				QuoteID:           quoteID.String(),
			},
		},
		{
			name: "fallback",
			quote: &Quote{
				ID: quoteID, Outcome: OutcomeFallback,
				Warehouse: "Mumbai Warehouse", Quantity: 2,
				Estimate: "Saturday, March 15",
				Message:  "Nearest warehouse is out of stock. Ships from Mumbai Warehouse (2 in stock). Estimated dispatch by Saturday, March 15.",
			},
			wantStatus: http.StatusOK,
			wantBody: locateResponse{
				Status:            OutcomeFallback,
				Message:           "Nearest warehouse is out of stock. Ships from Mumbai Warehouse (2 in stock). Estimated dispatch by Saturday, March 15.",
				Warehouse:         "Mumbai Warehouse",
				Quantity:          2,
				EstimatedDispatch: "Saturday, March 15",
				QuoteID:           quoteID.String(),
			},
		},
		{
			name:       "out of stock stays 200 without an error field",
			quote:      &Quote{ID: quoteID, Outcome: OutcomeOutOfStock, Message: "Product is currently out of stock at all warehouses."},
			wantStatus: http.StatusOK,
			wantBody: locateResponse{
				Status:  OutcomeOutOfStock,
				Message: "Product is currently out of stock at all warehouses.",
				QuoteID: quoteID.String(),
			},
		},
		{
			name:       "unresolvable pincode",
			quote:      &Quote{ID: quoteID, Outcome: OutcomeInvalidInput, Message: "Could not locate pincode 000000."},
			wantStatus: http.StatusNotFound,
			wantBody:   locateResponse{Status: OutcomeInvalidInput, Message: "Could not locate pincode 000000."},
		},
		{
			name:       "product not found",
			quote:      &Quote{ID: quoteID, Outcome: OutcomeNotFound, Message: "Product 42 was not found."},
			wantStatus: http.StatusNotFound,
			wantBody:   locateResponse{Status: OutcomeNotFound, Message: "Product 42 was not found."},
		},
		{
			name:       "upstream failure",
			quote:      &Quote{ID: quoteID, Outcome: OutcomeUpstreamError, Message: "Inventory lookup is temporarily unavailable. Please try again later."},
			wantStatus: http.StatusInternalServerError,
			wantBody:   locateResponse{Status: OutcomeUpstreamError, Message: "Inventory lookup is temporarily unavailable. Please try again later."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := doLocate(t, &stubService{quote: tt.quote}, "/api/v1/fulfillment/locate?pincode=110001&product_id=42")
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, body)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"), "every response carries a permissive CORS header")
		})
	}
}

func TestLocatePreflight(t *testing.T) {
	router := newTestRouter(&stubService{})
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/fulfillment/locate", nil)
	req.Header.Set("Origin", "https://shop.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Body.String())
}
