package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/matuu/events-manager/internal/domain"
)

// fakeLedger is an in-memory asset registry used by the service tests.
type fakeLedger struct {
	assets   map[string]bool
	balances map[string]int64
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{
		assets:   make(map[string]bool),
		balances: make(map[string]int64),
	}
}

func balanceKey(assetType, owner string) string {
	return assetType + "|" + owner
}

func (f *fakeLedger) CreateAssetType(_ context.Context) (string, error) {
	id := fmt.Sprintf("asset-%d", len(f.assets)+1)
	f.assets[id] = true
	return id, nil
}

func (f *fakeLedger) OpenAccount(_ context.Context, assetType, owner string) error {
	if !f.assets[assetType] {
		return domain.ErrAssetNotFound
	}
	key := balanceKey(assetType, owner)
	if _, ok := f.balances[key]; !ok {
		f.balances[key] = 0
	}
	return nil
}

func (f *fakeLedger) Mint(_ context.Context, assetType, owner string, amount int64) error {
	if !f.assets[assetType] {
		return domain.ErrAssetNotFound
	}
	f.balances[balanceKey(assetType, owner)] += amount
	return nil
}

func (f *fakeLedger) Transfer(_ context.Context, assetType, from, to string, amount int64) error {
	if !f.assets[assetType] {
		return domain.ErrAssetNotFound
	}
	fromKey := balanceKey(assetType, from)
	if f.balances[fromKey] < amount {
		return domain.ErrInsufficientFunds
	}
	f.balances[fromKey] -= amount
	f.balances[balanceKey(assetType, to)] += amount
	return nil
}

func (f *fakeLedger) BalanceOf(_ context.Context, assetType, owner string) (int64, error) {
	return f.balances[balanceKey(assetType, owner)], nil
}

func (f *fakeLedger) TotalSupply(_ context.Context, assetType string) (int64, error) {
	var total int64
	for key, balance := range f.balances {
		if strings.HasPrefix(key, assetType+"|") {
			total += balance
		}
	}
	return total, nil
}

// setBalance seeds an account balance directly, bypassing mint bookkeeping.
func (f *fakeLedger) setBalance(assetType, owner string, balance int64) {
	f.assets[assetType] = true
	f.balances[balanceKey(assetType, owner)] = balance
}

// fakeEventStore is an in-memory event registry implementing the repository
// interfaces of every service.
type fakeEventStore struct {
	events      map[string]domain.Event
	byOrganizer map[string]string
}

func newFakeEventStore(events ...domain.Event) *fakeEventStore {
	s := &fakeEventStore{
		events:      make(map[string]domain.Event),
		byOrganizer: make(map[string]string),
	}
	for _, event := range events {
		s.events[event.ID] = event
		s.byOrganizer[event.Organizer] = event.ID
	}
	return s
}

func (s *fakeEventStore) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *fakeEventStore) CreateEvent(_ context.Context, event domain.Event) error {
	if _, ok := s.byOrganizer[event.Organizer]; ok {
		return domain.ErrAlreadyInitialized
	}
	s.events[event.ID] = event
	s.byOrganizer[event.Organizer] = event.ID
	return nil
}

func (s *fakeEventStore) GetEvent(_ context.Context, eventID string) (domain.Event, error) {
	event, ok := s.events[eventID]
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound
	}
	return event, nil
}

func (s *fakeEventStore) GetEventForUpdate(ctx context.Context, eventID string) (domain.Event, error) {
	return s.GetEvent(ctx, eventID)
}

func (s *fakeEventStore) SetTotalSponsorship(_ context.Context, eventID string, total int64) error {
	event, ok := s.events[eventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	event.TotalSponsorship = total
	s.events[eventID] = event
	return nil
}

func (s *fakeEventStore) CloseEvent(_ context.Context, eventID string) error {
	event, ok := s.events[eventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	event.Active = false
	s.events[eventID] = event
	return nil
}

const (
	testAcceptedAsset = "usd-stable"
	testClaimAsset    = "claim-1"
)

// seedEvent returns an open event with funded vault accounts registered on
// the ledger.
func seedEvent(ledger *fakeLedger, organizer string, price int64) domain.Event {
	event := domain.Event{
		ID:            "event-1",
		Name:          "my_event",
		Organizer:     organizer,
		AcceptedAsset: testAcceptedAsset,
		ClaimAsset:    testClaimAsset,
		TicketPrice:   price,
		Active:        true,
	}
	ledger.setBalance(testAcceptedAsset, domain.SponsorshipVault(event.ID), 0)
	ledger.setBalance(testAcceptedAsset, domain.RevenueVault(event.ID), 0)
	ledger.assets[testClaimAsset] = true
	return event
}
