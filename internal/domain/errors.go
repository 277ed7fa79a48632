package domain

import "errors"

var (
	ErrAlreadyInitialized = errors.New("event already exists for organizer")
	ErrUnauthorized       = errors.New("caller is not the event organizer")
	ErrEventClosed        = errors.New("event is closed")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidName        = errors.New("invalid event name")
	ErrNoClaim            = errors.New("caller holds no claim tokens")
	ErrEventNotFound      = errors.New("event not found")
	ErrAssetNotFound      = errors.New("asset type not found")
	ErrAccountNotFound    = errors.New("holding account not found")
	ErrInvalidID          = errors.New("invalid id")
)
