package ledger

import "errors"

var (
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrMissingDescription = errors.New("description is required")
	ErrUnknownCategory    = errors.New("unknown transaction category")
	ErrNotFound           = errors.New("transaction not found")
)
