package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/matuu/events-manager/internal/app"
)

// Sponsor is the minimal interface needed to accept a sponsorship.
type Sponsor interface {
	SponsorEvent(ctx context.Context, in app.SponsorEventInput) error
}

func handleSponsorEvent(svc Sponsor, eventID string) http.HandlerFunc {
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

		err := svc.SponsorEvent(r.Context(), app.SponsorEventInput{
			EventID:  eventID,
			Sponsor:  caller,
			Quantity: req.Quantity,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

type quantityRequest struct {
	Quantity int64 `json:"quantity"`
}
