package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dispatchly/fulfillment-backend/internal/modules/commerce"
	"github.com/dispatchly/fulfillment-backend/internal/modules/geo"
	"github.com/dispatchly/fulfillment-backend/internal/modules/warehouse"
)

// Service decides which warehouse should fulfill an order for a pincode.
type Service interface {
	// Locate geocodes the pincode, finds the nearest warehouse, checks
	// the product's per-location stock, and returns a Quote. It never
	// returns an error: every failure mode is an Outcome on the Quote.
	Locate(ctx context.Context, pincode, productID string) *Quote
}

type service struct {
	geocoder geo.Geocoder
	fetcher  commerce.InventoryFetcher
	registry *warehouse.Registry
	now      func() time.Time
}

// NewService creates the fulfillment decision service.
func NewService(geocoder geo.Geocoder, fetcher commerce.InventoryFetcher, registry *warehouse.Registry) Service {
	return &service{
		geocoder: geocoder,
		fetcher:  fetcher,
		registry: registry,
		now:      time.Now,
	}
}

// Locate runs the decision sequence:
//  1. Geocode the pincode; an unresolvable pincode short-circuits
//     before any commerce query is issued.
//  2. Fetch the product's nested inventory and flatten it.
//  3. Find the nearest warehouse.
//  4. Select: first record at the nearest warehouse with stock, else
//     the first record anywhere with stock, else out of stock.
func (s *service) Locate(ctx context.Context, pincode, productID string) *Quote {
	userCoords, err := s.geocoder.Resolve(ctx, pincode)
	if err != nil {
		if errors.Is(err, geo.ErrNoCoordinates) {
			return s.quote(OutcomeInvalidInput, fmt.Sprintf("Could not locate pincode %s.", pincode))
		}
		return s.quote(OutcomeUpstreamError, "Location lookup is temporarily unavailable. Please try again later.")
	}

	product, err := s.fetcher.FetchProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, commerce.ErrProductNotFound) {
			return s.quote(OutcomeNotFound, fmt.Sprintf("Product %s was not found.", productID))
		}
		return s.quote(OutcomeUpstreamError, "Inventory lookup is temporarily unavailable. Please try again later.")
	}
	records := commerce.Flatten(product)

	nearest, ok := s.registry.FindNearest(userCoords)
	if !ok {
		return s.quote(OutcomeNotFound, fmt.Sprintf("No warehouse serves pincode %s.", pincode))
	}

	estimate := s.now().AddDate(0, 0, DispatchLeadDays).Format(dispatchDateLayout)

	// Primary: first record that maps to the nearest warehouse and has stock.
	for _, rec := range records {
		pin, known := s.registry.PincodeFor(rec.Location)
		if known && pin == nearest.Pincode && rec.Available > 0 {
			q := s.quote(OutcomeFulfilled, fmt.Sprintf("Ships from %s (%d in stock). Estimated dispatch by %s.", rec.Location, rec.Available, estimate))
			q.Warehouse, q.Quantity, q.Estimate = rec.Location, rec.Available, estimate
			return q
		}
	}

	// Fallback: first record anywhere with stock.
	for _, rec := range records {
		if rec.Available > 0 {
			q := s.quote(OutcomeFallback, fmt.Sprintf("Nearest warehouse is out of stock. Ships from %s (%d in stock). Estimated dispatch by %s.", rec.Location, rec.Available, estimate))
			q.Warehouse, q.Quantity, q.Estimate = rec.Location, rec.Available, estimate
			return q
		}
	}

	return s.quote(OutcomeOutOfStock, "Product is currently out of stock at all warehouses.")
}

func (s *service) quote(outcome Outcome, message string) *Quote {
	return &Quote{ID: uuid.New(), Outcome: outcome, Message: message}
}
