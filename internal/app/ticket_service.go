package app

import (
	"context"

	"github.com/matuu/events-manager/internal/domain"
	"github.com/matuu/events-manager/internal/metrics"
)

type TicketRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetEventForUpdate(ctx context.Context, eventID string) (domain.Event, error)
}

// TicketService sells tickets while the event is open. A ticket is purely a
// debited payment into the revenue vault; no token is issued to the buyer.
type TicketService struct {
	repo   TicketRepository
	ledger Ledger
}

func NewTicketService(repo TicketRepository, ledger Ledger) *TicketService {
	return &TicketService{
		repo:   repo,
		ledger: ledger,
	}
}

type BuyTicketsInput struct {
	EventID  string
	Buyer    string
	Quantity int64
}

func (s *TicketService) BuyTickets(ctx context.Context, in BuyTicketsInput) error {
	if in.EventID == "" {
		return domain.ErrInvalidID
	}
	if in.Buyer == "" {
		return domain.ErrUnauthorized
	}
	if in.Quantity <= 0 {
		return domain.ErrInvalidAmount
	}

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		event, err := s.repo.GetEventForUpdate(txCtx, in.EventID)
		if err != nil {
			return err
		}
		if !event.Active {
			return domain.ErrEventClosed
		}

		cost, err := domain.CheckedMul(in.Quantity, event.TicketPrice)
		if err != nil {
			return err
		}

		return s.ledger.Transfer(txCtx, event.AcceptedAsset, in.Buyer, domain.RevenueVault(event.ID), cost)
	})
	if err != nil {
		return err
	}

	metrics.TicketsSold.Add(float64(in.Quantity))
	return nil
}
