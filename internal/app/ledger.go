package app

import "context"

// Ledger is the fungible-asset registry the engines settle against:
// per-owner, per-asset-type balance entries. Mutations called inside a
// repository WithTx closure join that transaction, so a failing sub-step
// leaves no partial state behind.
type Ledger interface {
	CreateAssetType(ctx context.Context) (string, error)
	OpenAccount(ctx context.Context, assetType, owner string) error
	Mint(ctx context.Context, assetType, owner string, amount int64) error
	Transfer(ctx context.Context, assetType, from, to string, amount int64) error
	BalanceOf(ctx context.Context, assetType, owner string) (int64, error)
	TotalSupply(ctx context.Context, assetType string) (int64, error)
}
