package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/matuu/events-manager/internal/app"
	"github.com/matuu/events-manager/internal/domain"
)

// callerHeader carries the authenticated caller identity. Signer
// authentication itself belongs to the calling layer; handlers only require
// the header to be present.
const callerHeader = "X-Caller-Id"

// EventCreator is the minimal interface needed to register an event.
type EventCreator interface {
	CreateEvent(ctx context.Context, in app.CreateEventInput) (domain.Event, error)
}

// EventViewer is the minimal interface needed to read an event.
type EventViewer interface {
	GetEvent(ctx context.Context, eventID string) (app.EventView, error)
}

// HandleCreateEvent returns an HTTP handler for POST /events.
func HandleCreateEvent(svc EventCreator) http.HandlerFunc {
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

		var req createEventRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		event, err := svc.CreateEvent(r.Context(), app.CreateEventInput{
			Organizer:     caller,
			Name:          req.Name,
			TicketPrice:   req.TicketPrice,
			AcceptedAsset: req.AcceptedAsset,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(newEventResponse(event))
	}
}

// EventOpsServices groups the services behind the /events/{id} subtree.
type EventOpsServices struct {
	Events       EventViewer
	Sponsorships Sponsor
	Tickets      TicketSeller
	Payouts      PayoutHandler
}

// HandleEventOps routes /events/{id} and /events/{id}/{action}.
func HandleEventOps(svc EventOpsServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(parts) < 2 || parts[0] != "events" || parts[1] == "" {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}
		eventID := parts[1]

		switch {
		case len(parts) == 2:
			handleGetEvent(svc.Events, eventID)(w, r)
		case len(parts) == 3 && parts[2] == "sponsorships":
			handleSponsorEvent(svc.Sponsorships, eventID)(w, r)
		case len(parts) == 3 && parts[2] == "tickets":
			handleBuyTickets(svc.Tickets, eventID)(w, r)
		case len(parts) == 3 && parts[2] == "withdrawals":
			handleWithdrawFunds(svc.Payouts, eventID)(w, r)
		case len(parts) == 3 && parts[2] == "close":
			handleCloseEvent(svc.Payouts, eventID)(w, r)
		case len(parts) == 3 && parts[2] == "earnings":
			handleWithdrawEarnings(svc.Payouts, eventID)(w, r)
		default:
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
		}
	}
}

func handleGetEvent(svc EventViewer, eventID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		view, err := svc.GetEvent(r.Context(), eventID)
		if err != nil {
			writeDomainError(w, err)
			return
		}

		resp := eventViewResponse{
			eventResponse:           newEventResponse(view.Event),
			SponsorshipVaultBalance: view.SponsorshipVaultBalance,
			RevenueVaultBalance:     view.RevenueVaultBalance,
			ClaimSupply:             view.ClaimSupply,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type createEventRequest struct {
	Name          string `json:"name"`
	TicketPrice   int64  `json:"ticket_price"`
	AcceptedAsset string `json:"accepted_asset"`
}

type eventResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Organizer        string    `json:"organizer"`
	AcceptedAsset    string    `json:"accepted_asset"`
	ClaimAsset       string    `json:"claim_asset"`
	TicketPrice      int64     `json:"ticket_price"`
	TotalSponsorship int64     `json:"total_sponsorship"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
}

func newEventResponse(event domain.Event) eventResponse {
	return eventResponse{
		ID:               event.ID,
		Name:             event.Name,
		Organizer:        event.Organizer,
		AcceptedAsset:    event.AcceptedAsset,
		ClaimAsset:       event.ClaimAsset,
		TicketPrice:      event.TicketPrice,
		TotalSponsorship: event.TotalSponsorship,
		Active:           event.Active,
		CreatedAt:        event.CreatedAt,
	}
}

type eventViewResponse struct {
	eventResponse
	SponsorshipVaultBalance int64 `json:"sponsorship_vault_balance"`
	RevenueVaultBalance     int64 `json:"revenue_vault_balance"`
	ClaimSupply             int64 `json:"claim_supply"`
}
