package fulfillment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the fulfillment HTTP endpoint.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/fulfillment", func(r chi.Router) {
		r.Get("/locate", h.locate) // GET /api/v1/fulfillment/locate?pincode=..&product_id=..
	})
}

// locateResponse is the single envelope every response uses, success
// and failure alike.
type locateResponse struct {
	Status            Outcome `json:"status"`
	Message           string  `json:"message"`
	Warehouse         string  `json:"warehouse,omitempty"`
	Quantity          int     `json:"quantity,omitempty"`
	EstimatedDispatch string  `json:"estimated_dispatch,omitempty"`
	QuoteID           string  `json:"quote_id,omitempty"`
}

func (h *Handler) locate(w http.ResponseWriter, r *http.Request) {
	pincode := r.URL.Query().Get("pincode")
	productID := r.URL.Query().Get("product_id")
	if pincode == "" || productID == "" {
		respond(w, http.StatusBadRequest, locateResponse{
			Status:  OutcomeInvalidInput,
			Message: "Both pincode and product_id query parameters are required.",
		})
		return
	}

	quote := h.service.Locate(r.Context(), pincode, productID)

	resp := locateResponse{
		Status:  quote.Outcome,
		Message: quote.Message,
	}
	switch quote.Outcome {
	case OutcomeFulfilled, OutcomeFallback:
		resp.Warehouse = quote.Warehouse
		resp.Quantity = quote.Quantity
		resp.EstimatedDispatch = quote.Estimate
		resp.QuoteID = quote.ID.String()
	case OutcomeOutOfStock:
		resp.QuoteID = quote.ID.String()
	}

	respond(w, statusFor(quote.Outcome), resp)
}

// statusFor maps decision outcomes to HTTP status codes. An
// out-of-stock answer is a successful availability check, so it stays
// 200; an unresolvable pincode is 404 rather than 400 because the
// request was well-formed.
func statusFor(outcome Outcome) int {
	switch outcome {
	case OutcomeFulfilled, OutcomeFallback, OutcomeOutOfStock:
		return http.StatusOK
	case OutcomeInvalidInput, OutcomeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
