package ledger

import "errors"

var (
	// ErrNotFound is returned for an unknown account number.
	ErrNotFound = errors.New("account not found")

	// ErrInsufficientFunds is returned when a withdrawal or transfer exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount is returned for zero, negative or sub-cent amounts.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrSelfTransfer is returned when source and destination are the same account.
	ErrSelfTransfer = errors.New("cannot transfer to the same account")

	// ErrNeedsConfirmation is returned when deleting an account that still holds funds
	// without the force flag.
	ErrNeedsConfirmation = errors.New("account has a non-zero balance; deletion needs confirmation")

	// ErrNoChange is returned when an update would not change anything.
	ErrNoChange = errors.New("no change")
)
