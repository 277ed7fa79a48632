package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/matuu/events-manager/internal/app"
)

// PayoutHandler is the minimal interface for the withdrawal side: organizer
// capital, closure, and sponsor earnings.
type PayoutHandler interface {
	WithdrawFunds(ctx context.Context, in app.WithdrawFundsInput) error
	CloseEvent(ctx context.Context, in app.CloseEventInput) error
	WithdrawEarnings(ctx context.Context, in app.WithdrawEarningsInput) (int64, error)
}

func handleWithdrawFunds(svc PayoutHandler, eventID string) http.HandlerFunc {
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

		var req withdrawFundsRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		err := svc.WithdrawFunds(r.Context(), app.WithdrawFundsInput{
			EventID: eventID,
			Caller:  caller,
			Amount:  req.Amount,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleCloseEvent(svc PayoutHandler, eventID string) http.HandlerFunc {
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

		err := svc.CloseEvent(r.Context(), app.CloseEventInput{
			EventID: eventID,
			Caller:  caller,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleWithdrawEarnings(svc PayoutHandler, eventID string) http.HandlerFunc {
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

		earned, err := svc.WithdrawEarnings(r.Context(), app.WithdrawEarningsInput{
			EventID: eventID,
			Caller:  caller,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(withdrawEarningsResponse{Earned: earned})
	}
}

type withdrawFundsRequest struct {
	Amount int64 `json:"amount"`
}

type withdrawEarningsResponse struct {
	Earned int64 `json:"earned"`
}
