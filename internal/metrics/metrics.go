package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsCreated counts successful event registrations.
	EventsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "escrow_events_created_total",
		Help: "Total number of events created",
	})

	// EventsClosed counts successful closure transitions.
	EventsClosed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "escrow_events_closed_total",
		Help: "Total number of events closed",
	})

	// SponsorshipUnits counts accepted-asset units contributed by sponsors.
	SponsorshipUnits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "escrow_sponsorship_units_total",
		Help: "Total accepted-asset units contributed by sponsors",
	})

	// TicketsSold counts tickets sold across all events.
	TicketsSold = promauto.NewCounter(prometheus.CounterOpts{
		Name: "escrow_tickets_sold_total",
		Help: "Total number of tickets sold",
	})

	// PayoutAmount tracks sponsor earnings per withdrawal.
	PayoutAmount = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "escrow_payout_amount",
		Help:    "Accepted-asset units paid out per earnings withdrawal",
		Buckets: prometheus.ExponentialBuckets(1, 10, 8),
	})
)
