package bank

import "errors"

// Domain errors returned by Registry operations. Callers branch on these with
// errors.Is; the HTTP layer maps them to error codes and statuses.
var (
	// ErrDuplicateAccount means an account with the generated ID already exists.
	ErrDuplicateAccount = errors.New("account already exists")
	// ErrAccountNotFound means the referenced account ID has no account.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountClosed means the referenced account exists but is closed.
	ErrAccountClosed = errors.New("account is closed")
	// ErrAlreadyClosed means Close was called on an account that is already closed.
	ErrAlreadyClosed = errors.New("account is already closed")
	// ErrInvalidAmount means the amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds means a debit would drive the balance negative.
	ErrInsufficientFunds = errors.New("insufficient balance")
	// ErrSameAccount means the debit and credit sides of a transfer are the same account.
	ErrSameAccount = errors.New("debit and credit accounts are the same")
)
