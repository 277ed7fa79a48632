package domain

import "time"

// MaxEventNameLen bounds the event name, in bytes.
const MaxEventNameLen = 40

// Event is the root record for one funding/ticketing campaign. One event
// exists per organizer identity.
type Event struct {
	ID        string
	Name      string
	Organizer string
	// AcceptedAsset is the fungible asset type used for both sponsorship
	// and ticket payment.
	AcceptedAsset string
	// ClaimAsset is minted 1:1 per unit of sponsorship contribution; its
	// issued supply always equals TotalSponsorship.
	ClaimAsset  string
	TicketPrice int64
	// TotalSponsorship is the cumulative sum of all contributions ever
	// made. It is never decremented: payouts divide against it as a
	// historical denominator, not a live balance.
	TotalSponsorship int64
	Active           bool
	CreatedAt        time.Time
}
