package app

import (
	"context"

	"github.com/matuu/events-manager/internal/clock"
	"github.com/matuu/events-manager/internal/domain"
	"github.com/matuu/events-manager/internal/metrics"
)

type EventRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	CreateEvent(ctx context.Context, event domain.Event) error
	GetEvent(ctx context.Context, eventID string) (domain.Event, error)
}

// EventService is the registry: it creates the Event record, its claim
// asset type, and its two vault accounts in one unit of work.
type EventService struct {
	repo   EventRepository
	ledger Ledger
	clock  clock.Clock
}

func NewEventService(repo EventRepository, ledger Ledger, clk clock.Clock) *EventService {
	return &EventService{
		repo:   repo,
		ledger: ledger,
		clock:  clk,
	}
}

type CreateEventInput struct {
	Organizer     string
	Name          string
	TicketPrice   int64
	AcceptedAsset string
}

func (s *EventService) CreateEvent(ctx context.Context, in CreateEventInput) (domain.Event, error) {
	if in.Organizer == "" {
		return domain.Event{}, domain.ErrUnauthorized
	}
	if in.Name == "" || len(in.Name) > domain.MaxEventNameLen {
		return domain.Event{}, domain.ErrInvalidName
	}
	if in.TicketPrice <= 0 {
		return domain.Event{}, domain.ErrInvalidAmount
	}
	if in.AcceptedAsset == "" {
		return domain.Event{}, domain.ErrAssetNotFound
	}

	now := s.clock.Now()
	var result domain.Event

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		claimAsset, err := s.ledger.CreateAssetType(txCtx)
		if err != nil {
			return err
		}

		event := domain.Event{
			ID:               newUUID(),
			Name:             in.Name,
			Organizer:        in.Organizer,
			AcceptedAsset:    in.AcceptedAsset,
			ClaimAsset:       claimAsset,
			TicketPrice:      in.TicketPrice,
			TotalSponsorship: 0,
			Active:           true,
			CreatedAt:        now,
		}

		// Opening the vaults also verifies the accepted asset exists.
		if err := s.ledger.OpenAccount(txCtx, in.AcceptedAsset, domain.SponsorshipVault(event.ID)); err != nil {
			return err
		}
		if err := s.ledger.OpenAccount(txCtx, in.AcceptedAsset, domain.RevenueVault(event.ID)); err != nil {
			return err
		}

		if err := s.repo.CreateEvent(txCtx, event); err != nil {
			return err
		}

		result = event
		return nil
	})
	if err != nil {
		return domain.Event{}, err
	}

	metrics.EventsCreated.Inc()
	return result, nil
}

// EventView is the read model for a single event: the record plus the live
// vault balances and issued claim supply.
type EventView struct {
	Event                   domain.Event
	SponsorshipVaultBalance int64
	RevenueVaultBalance     int64
	ClaimSupply             int64
}

func (s *EventService) GetEvent(ctx context.Context, eventID string) (EventView, error) {
	if eventID == "" {
		return EventView{}, domain.ErrInvalidID
	}

	var view EventView
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		event, err := s.repo.GetEvent(txCtx, eventID)
		if err != nil {
			return err
		}

		sponsorship, err := s.ledger.BalanceOf(txCtx, event.AcceptedAsset, domain.SponsorshipVault(event.ID))
		if err != nil {
			return err
		}
		revenue, err := s.ledger.BalanceOf(txCtx, event.AcceptedAsset, domain.RevenueVault(event.ID))
		if err != nil {
			return err
		}
		supply, err := s.ledger.TotalSupply(txCtx, event.ClaimAsset)
		if err != nil {
			return err
		}

		view = EventView{
			Event:                   event,
			SponsorshipVaultBalance: sponsorship,
			RevenueVaultBalance:     revenue,
			ClaimSupply:             supply,
		}
		return nil
	})
	if err != nil {
		return EventView{}, err
	}
	return view, nil
}
