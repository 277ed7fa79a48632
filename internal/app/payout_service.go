package app

import (
	"context"

	"github.com/matuu/events-manager/internal/domain"
	"github.com/matuu/events-manager/internal/metrics"
)

type PayoutRepository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetEventForUpdate(ctx context.Context, eventID string) (domain.Event, error)
	CloseEvent(ctx context.Context, eventID string) error
}

// PayoutService handles the withdrawal side of the escrow: organizer capital
// out of the sponsorship vault, sponsor earnings out of the revenue vault,
// and the one-way closure transition.
type PayoutService struct {
	repo   PayoutRepository
	ledger Ledger
}

func NewPayoutService(repo PayoutRepository, ledger Ledger) *PayoutService {
	return &PayoutService{
		repo:   repo,
		ledger: ledger,
	}
}

type WithdrawFundsInput struct {
	EventID string
	Caller  string
	Amount  int64
}

// WithdrawFunds moves sponsorship capital to the organizer. It is not gated
// on the event being active: capital may be withdrawn before, during, or
// after closure.
func (s *PayoutService) WithdrawFunds(ctx context.Context, in WithdrawFundsInput) error {
	if in.EventID == "" {
		return domain.ErrInvalidID
	}
	if in.Caller == "" {
		return domain.ErrUnauthorized
	}
	if in.Amount <= 0 {
		return domain.ErrInvalidAmount
	}

	return s.repo.WithTx(ctx, func(txCtx context.Context) error {
		event, err := s.repo.GetEventForUpdate(txCtx, in.EventID)
		if err != nil {
			return err
		}
		if event.Organizer != in.Caller {
			return domain.ErrUnauthorized
		}

		return s.ledger.Transfer(txCtx, event.AcceptedAsset, domain.SponsorshipVault(event.ID), in.Caller, in.Amount)
	})
}

type CloseEventInput struct {
	EventID string
	Caller  string
}

// CloseEvent disables further ticket sales. The transition is irreversible;
// a second close fails with ErrEventClosed.
func (s *PayoutService) CloseEvent(ctx context.Context, in CloseEventInput) error {
	if in.EventID == "" {
		return domain.ErrInvalidID
	}
	if in.Caller == "" {
		return domain.ErrUnauthorized
	}

	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		event, err := s.repo.GetEventForUpdate(txCtx, in.EventID)
		if err != nil {
			return err
		}
		if event.Organizer != in.Caller {
			return domain.ErrUnauthorized
		}
		if !event.Active {
			return domain.ErrEventClosed
		}

		return s.repo.CloseEvent(txCtx, event.ID)
	})
	if err != nil {
		return err
	}

	metrics.EventsClosed.Inc()
	return nil
}

type WithdrawEarningsInput struct {
	EventID string
	Caller  string
}

// WithdrawEarnings pays a sponsor floor(claim * revenue / totalSponsorship)
// out of the revenue vault. Claim tokens are left intact, so the same
// sponsor may redeem again against the shrunken pool; the issued claim
// supply therefore always equals the cumulative sponsorship total.
func (s *PayoutService) WithdrawEarnings(ctx context.Context, in WithdrawEarningsInput) (int64, error) {
	if in.EventID == "" {
		return 0, domain.ErrInvalidID
	}
	if in.Caller == "" {
		return 0, domain.ErrUnauthorized
	}

	var earned int64
	err := s.repo.WithTx(ctx, func(txCtx context.Context) error {
		event, err := s.repo.GetEventForUpdate(txCtx, in.EventID)
		if err != nil {
			return err
		}

		claim, err := s.ledger.BalanceOf(txCtx, event.ClaimAsset, in.Caller)
		if err != nil {
			return err
		}
		if claim <= 0 {
			return domain.ErrNoClaim
		}

		revenue, err := s.ledger.BalanceOf(txCtx, event.AcceptedAsset, domain.RevenueVault(event.ID))
		if err != nil {
			return err
		}

		earned, err = domain.Payout(claim, revenue, event.TotalSponsorship)
		if err != nil {
			return err
		}
		if earned == 0 {
			return nil
		}

		return s.ledger.Transfer(txCtx, event.AcceptedAsset, domain.RevenueVault(event.ID), in.Caller, earned)
	})
	if err != nil {
		return 0, err
	}

	metrics.PayoutAmount.Observe(float64(earned))
	return earned, nil
}
