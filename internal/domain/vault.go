package domain

// Vault holding accounts are addressed by a composite key derived from the
// event ID, so no separate directory is needed to find them.

// SponsorshipVault returns the ledger account owner that accumulates
// sponsor contributions for an event. Organizer withdrawals debit it.
func SponsorshipVault(eventID string) string {
	return "event:" + eventID + ":sponsorship_vault"
}

// RevenueVault returns the ledger account owner that accumulates ticket
// proceeds for an event. Sponsor payouts debit it.
func RevenueVault(eventID string) string {
	return "event:" + eventID + ":revenue_vault"
}
