package fulfillment

import "github.com/google/uuid"

// Outcome is the terminal state of every fulfillment request.
type Outcome string

const (
	OutcomeFulfilled     Outcome = "FULFILLED"      // nearest warehouse has stock
	OutcomeFallback      Outcome = "FALLBACK"       // another warehouse has stock
	OutcomeOutOfStock    Outcome = "OUT_OF_STOCK"   // no warehouse has stock
	OutcomeNotFound      Outcome = "NOT_FOUND"      // product or warehouse absent
	OutcomeInvalidInput  Outcome = "INVALID_INPUT"  // missing or unresolvable inputs
	OutcomeUpstreamError Outcome = "UPSTREAM_ERROR" // geocoder or commerce backend failed
)

// DispatchLeadDays is the fixed business offset between the order date
// and the estimated dispatch date. It is a policy constant, not a
// computed ETA.
const DispatchLeadDays = 5

// dispatchDateLayout renders the estimate as a human-readable
// weekday/month/day string, e.g. "Friday, August 29".
const dispatchDateLayout = "Monday, January 2"

// Quote is the result of one fulfillment decision.
type Quote struct {
	ID        uuid.UUID `json:"id"`
	Outcome   Outcome   `json:"outcome"`
	Warehouse string    `json:"warehouse,omitempty"`
	Quantity  int       `json:"quantity,omitempty"`
	Estimate  string    `json:"estimate,omitempty"`
	Message   string    `json:"message"`
}
