package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/matuu/events-manager/internal/app"
)

// TicketSeller is the minimal interface needed to sell tickets.
type TicketSeller interface {
	BuyTickets(ctx context.Context, in app.BuyTicketsInput) error
}

func handleBuyTickets(svc TicketSeller, eventID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		caller := r.Header.Get(callerHeader)
		if caller == "" {
			writeError(w, http.StatusBadRequest, codeCallerRequired, "caller id required")
			return
		}

		var req quantityRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		err := svc.BuyTickets(r.Context(), app.BuyTicketsInput{
			EventID:  eventID,
			Buyer:    caller,
			Quantity: req.Quantity,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
