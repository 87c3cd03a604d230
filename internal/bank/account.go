package bank

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies a ledger entry.
type EntryType string

const (
	EntryOpen        EntryType = "OPEN"
	EntryDeposit     EntryType = "DEPOSIT"
	EntryWithdrawal  EntryType = "WITHDRAWAL"
	EntryTransferOut EntryType = "TRANSFER_OUT"
	EntryTransferIn  EntryType = "TRANSFER_IN"
)

// LedgerEntry is an immutable record of one balance-affecting event. Balance
// is the account balance immediately after the entry was applied.
type LedgerEntry struct {
	Type         EntryType       `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Balance      decimal.Decimal `json:"balance"`
	Counterparty string          `json:"counterparty,omitempty"` // other account ID for transfer entries
	At           time.Time       `json:"at"`
}

// KYC holds the identity fields that UpdateKYC overwrites in place.
type KYC struct {
	DOB        string `json:"dob"`
	Email      string `json:"email"`
	Mobile     string `json:"mobile"`
	NationalID string `json:"nationalId"`
	TaxID      string `json:"taxId"`
}

// Profile holds the full customer profile captured when an account is opened.
// Name is an ordinary attribute, not a key: common names collide.
type Profile struct {
	Name    string `json:"name"`
	Gender  string `json:"gender"`
	Address string `json:"address"`
	KYC
}

// Statement is a point-in-time snapshot of one account: profile, balance and
// the full ledger in insertion order. Entries is a copy, safe to hold.
type Statement struct {
	AccountID string          `json:"accountId"`
	Profile   Profile         `json:"profile"`
	Balance   decimal.Decimal `json:"balance"`
	Entries   []LedgerEntry   `json:"entries"`
}

// account owns one customer relationship. It is deliberately unexported: the
// Registry is the sole owner and the only code allowed to construct or mutate
// one. mu guards every field below it.
type account struct {
	id string

	mu      sync.Mutex
	profile Profile
	balance decimal.Decimal
	open    bool
	ledger  []LedgerEntry
}

// apply is the only code path that mutates balance. It computes the new
// balance, rejects a debit that would drive it negative, and appends the
// ledger entry recording the result, keeping balance and ledger consistent.
// Callers must hold a.mu and pass a positive amount.
func (a *account) apply(typ EntryType, amount decimal.Decimal, debit bool, counterparty string, at time.Time) error {
	next := a.balance
	if debit {
		next = next.Sub(amount)
		if next.IsNegative() {
			return ErrInsufficientFunds
		}
	} else {
		next = next.Add(amount)
	}
	a.balance = next
	a.ledger = append(a.ledger, LedgerEntry{
		Type:         typ,
		Amount:       amount,
		Balance:      next,
		Counterparty: counterparty,
		At:           at,
	})
	return nil
}

// statement builds a snapshot of the account. Callers must hold a.mu.
func (a *account) statement() Statement {
	entries := make([]LedgerEntry, len(a.ledger))
	copy(entries, a.ledger)
	return Statement{
		AccountID: a.id,
		Profile:   a.profile,
		Balance:   a.balance,
		Entries:   entries,
	}
}
