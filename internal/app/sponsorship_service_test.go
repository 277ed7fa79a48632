package app

import (
	"context"
	"math"
	"testing"

	"github.com/matuu/events-manager/internal/domain"
)

func TestSponsorshipService_SponsorEvent(t *testing.T) {
	t.Parallel()

	makeSvc := func() (*SponsorshipService, *fakeEventStore, *fakeLedger, domain.Event) {
		ledger := newFakeLedger()
		event := seedEvent(ledger, "organizer-1", 2)
		store := newFakeEventStore(event)
		svc := NewSponsorshipService(store, ledger)
		return svc, store, ledger, event
	}

	t.Run("moves funds, mints claims, bumps counter", func(t *testing.T) {
		svc, store, ledger, event := makeSvc()
		ledger.setBalance(testAcceptedAsset, "alice", 500)

		err := svc.SponsorEvent(context.Background(), SponsorEventInput{
			EventID:  event.ID,
			Sponsor:  "alice",
			Quantity: 5,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		ctx := context.Background()
		if balance, _ := ledger.BalanceOf(ctx, testAcceptedAsset, "alice"); balance != 495 {
			t.Fatalf("expected alice balance 495, got %d", balance)
		}
		if balance, _ := ledger.BalanceOf(ctx, testAcceptedAsset, domain.SponsorshipVault(event.ID)); balance != 5 {
			t.Fatalf("expected sponsorship vault 5, got %d", balance)
		}
		if claim, _ := ledger.BalanceOf(ctx, testClaimAsset, "alice"); claim != 5 {
			t.Fatalf("expected claim balance 5, got %d", claim)
		}
		if got := store.events[event.ID].TotalSponsorship; got != 5 {
			t.Fatalf("expected totalSponsorship 5, got %d", got)
		}
	})

	t.Run("claim supply tracks cumulative sponsorship", func(t *testing.T) {
		svc, store, ledger, event := makeSvc()
		ledger.setBalance(testAcceptedAsset, "alice", 500)
		ledger.setBalance(testAcceptedAsset, "bob", 500)

		ctx := context.Background()
		for _, in := range []SponsorEventInput{
			{EventID: event.ID, Sponsor: "alice", Quantity: 5},
			{EventID: event.ID, Sponsor: "bob", Quantity: 48},
		} {
			if err := svc.SponsorEvent(ctx, in); err != nil {
				t.Fatalf("sponsor %s: %v", in.Sponsor, err)
			}
		}

		supply, _ := ledger.TotalSupply(ctx, testClaimAsset)
		if supply != 53 {
			t.Fatalf("expected claim supply 53, got %d", supply)
		}
		if got := store.events[event.ID].TotalSponsorship; got != supply {
			t.Fatalf("claim supply %d != totalSponsorship %d", supply, got)
		}
	})

	t.Run("permitted after closure", func(t *testing.T) {
		svc, store, ledger, event := makeSvc()
		event.Active = false
		store.events[event.ID] = event
		ledger.setBalance(testAcceptedAsset, "alice", 10)

		err := svc.SponsorEvent(context.Background(), SponsorEventInput{
			EventID:  event.ID,
			Sponsor:  "alice",
			Quantity: 10,
		})
		if err != nil {
			t.Fatalf("expected sponsorship after closure to succeed, got %v", err)
		}
	})

	t.Run("zero quantity fails", func(t *testing.T) {
		svc, _, _, event := makeSvc()

		err := svc.SponsorEvent(context.Background(), SponsorEventInput{
			EventID:  event.ID,
			Sponsor:  "alice",
			Quantity: 0,
		})
		if err != domain.ErrInvalidAmount {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("insufficient balance leaves state untouched", func(t *testing.T) {
		svc, store, ledger, event := makeSvc()
		ledger.setBalance(testAcceptedAsset, "alice", 3)

		err := svc.SponsorEvent(context.Background(), SponsorEventInput{
			EventID:  event.ID,
			Sponsor:  "alice",
			Quantity: 5,
		})
		if err != domain.ErrInsufficientFunds {
			t.Fatalf("expected ErrInsufficientFunds, got %v", err)
		}

		ctx := context.Background()
		if balance, _ := ledger.BalanceOf(ctx, testAcceptedAsset, "alice"); balance != 3 {
			t.Fatalf("expected alice balance unchanged, got %d", balance)
		}
		if claim, _ := ledger.BalanceOf(ctx, testClaimAsset, "alice"); claim != 0 {
			t.Fatalf("expected no claims minted, got %d", claim)
		}
		if got := store.events[event.ID].TotalSponsorship; got != 0 {
			t.Fatalf("expected totalSponsorship unchanged, got %d", got)
		}
	})

	t.Run("counter overflow fails before any transfer", func(t *testing.T) {
		svc, store, ledger, event := makeSvc()
		event.TotalSponsorship = math.MaxInt64
		store.events[event.ID] = event
		ledger.setBalance(testAcceptedAsset, "alice", 500)

		err := svc.SponsorEvent(context.Background(), SponsorEventInput{
			EventID:  event.ID,
			Sponsor:  "alice",
			Quantity: 1,
		})
		if err != domain.ErrArithmeticOverflow {
			t.Fatalf("expected ErrArithmeticOverflow, got %v", err)
		}
		if balance, _ := ledger.BalanceOf(context.Background(), testAcceptedAsset, "alice"); balance != 500 {
			t.Fatalf("expected alice balance unchanged, got %d", balance)
		}
	})

	t.Run("unknown event fails", func(t *testing.T) {
		svc, _, _, _ := makeSvc()

		err := svc.SponsorEvent(context.Background(), SponsorEventInput{
			EventID:  "missing",
			Sponsor:  "alice",
			Quantity: 1,
		})
		if err != domain.ErrEventNotFound {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})
}
