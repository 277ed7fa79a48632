package app

import (
	"context"

	"github.com/matuu/events-manager/internal/domain"
	"github.com/matuu/events-manager/internal/metrics"
)

type SponsorshipRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetEventForUpdate(ctx context.Context, eventID string) (domain.Event, error)
	SetTotalSponsorship(ctx context.Context, eventID string, total int64) error
}

// SponsorshipService accepts pre-funding: accepted-asset units move into the
// sponsorship vault and claim tokens are minted 1:1 to the sponsor.
type SponsorshipService struct {
	repo   SponsorshipRepository
	ledger Ledger
}

func NewSponsorshipService(repo SponsorshipRepository, ledger Ledger) *SponsorshipService {
	return &SponsorshipService{
		repo:   repo,
		ledger: ledger,
	}
}

type SponsorEventInput struct {
	EventID  string
	Sponsor  string
	Quantity int64
}

// SponsorEvent is deliberately not gated on the event being active:
// sponsorship and ticket sales are independent revenue phases.
func (s *SponsorshipService) SponsorEvent(ctx context.Context, in SponsorEventInput) error {
	if in.EventID == "" {
		return domain.ErrInvalidID
	}
	if in.Sponsor == "" {
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

		total, err := domain.CheckedAdd(event.TotalSponsorship, in.Quantity)
		if err != nil {
			return err
		}

		if err := s.ledger.Transfer(txCtx, event.AcceptedAsset, in.Sponsor, domain.SponsorshipVault(event.ID), in.Quantity); err != nil {
			return err
		}
		if err := s.ledger.Mint(txCtx, event.ClaimAsset, in.Sponsor, in.Quantity); err != nil {
			return err
		}
		return s.repo.SetTotalSponsorship(txCtx, event.ID, total)
	})
	if err != nil {
		return err
	}

	metrics.SponsorshipUnits.Add(float64(in.Quantity))
	return nil
}
