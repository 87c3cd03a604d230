// Package bank implements the core account registry and transaction ledger:
// opening and closing accounts, KYC updates, deposits, withdrawals, atomic
// two-party transfers and statement snapshots. All state is in-memory. The
// registry holds a read-write lock over the account map and every account
// carries its own mutex, so operations on different accounts proceed
// concurrently while check-then-mutate sequences stay atomic per account.
package bank

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Registry owns the full set of accounts. It enforces existence and
// open-state preconditions and dispatches account-level operations; nothing
// outside this package constructs or mutates an account directly.
type Registry struct {
	mu    sync.RWMutex
	newID func() string
	accts map[string]*account
}

// Option configures a Registry.
type Option func(*Registry)

// WithIDGenerator overrides the account ID generator. Used by tests to force
// deterministic or colliding IDs.
func WithIDGenerator(gen func() string) Option {
	return func(r *Registry) {
		r.newID = gen
	}
}

// NewRegistry builds an empty registry. Account IDs are opaque UUIDs; the
// customer name is profile data and never used as a key.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		newID: uuid.NewString,
		accts: make(map[string]*account),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open creates an account with the given profile and initial balance and
// returns the generated account ID. The opening balance is recorded as the
// first ledger entry. A zero initial balance is allowed; a negative one is
// rejected with ErrInvalidAmount.
func (r *Registry) Open(profile Profile, initialBalance decimal.Decimal) (string, error) {
	if initialBalance.IsNegative() {
		return "", ErrInvalidAmount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.newID()
	if _, exists := r.accts[id]; exists {
		return "", ErrDuplicateAccount
	}

	a := &account{
		id:      id,
		profile: profile,
		balance: initialBalance,
		open:    true,
	}
	a.ledger = append(a.ledger, LedgerEntry{
		Type:    EntryOpen,
		Amount:  initialBalance,
		Balance: initialBalance,
		At:      time.Now(),
	})
	r.accts[id] = a
	return id, nil
}

// UpdateKYC overwrites the account's identity fields in place. Balance and
// ledger are untouched.
func (r *Registry) UpdateKYC(accountID string, kyc KYC) error {
	a, err := r.lookup(accountID)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.open {
		return ErrAccountClosed
	}
	a.profile.KYC = kyc
	return nil
}

// Deposit credits the account and returns the new balance.
func (r *Registry) Deposit(accountID string, amount decimal.Decimal) (decimal.Decimal, error) {
	return r.post(accountID, EntryDeposit, amount)
}

// Withdraw debits the account and returns the new balance. A debit beyond the
// current balance fails with ErrInsufficientFunds and changes nothing.
func (r *Registry) Withdraw(accountID string, amount decimal.Decimal) (decimal.Decimal, error) {
	return r.post(accountID, EntryWithdrawal, amount)
}

// post validates and applies a single-account deposit or withdrawal.
func (r *Registry) post(accountID string, typ EntryType, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	a, err := r.lookup(accountID)
	if err != nil {
		return decimal.Zero, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.open {
		return decimal.Zero, ErrAccountClosed
	}
	if err := a.apply(typ, amount, typ == EntryWithdrawal, "", time.Now()); err != nil {
		return decimal.Zero, err
	}
	return a.balance, nil
}

// Transfer debits the source and credits the destination as one atomic unit:
// both account locks are held for the whole operation, so no reader observes
// the debit without the credit. Locks are taken in sorted ID order to avoid
// deadlock between opposing concurrent transfers.
func (r *Registry) Transfer(fromID, toID string, amount decimal.Decimal) error {
	if fromID == toID {
		return ErrSameAccount
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	r.mu.RLock()
	from, okFrom := r.accts[fromID]
	to, okTo := r.accts[toID]
	r.mu.RUnlock()
	if !okFrom || !okTo {
		return ErrAccountNotFound
	}

	first, second := from, to
	if second.id < first.id {
		first, second = second, first
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	if !from.open || !to.open {
		return ErrAccountClosed
	}

	now := time.Now()
	if err := from.apply(EntryTransferOut, amount, true, toID, now); err != nil {
		return err
	}
	// The credit side cannot fail once the debit passed.
	_ = to.apply(EntryTransferIn, amount, false, fromID, now)
	return nil
}

// Receive is the "I am receiving" call shape: identical semantics to Transfer
// with the arguments reversed, re-dispatched rather than reimplemented.
func (r *Registry) Receive(toID, fromID string, amount decimal.Decimal) error {
	return r.Transfer(fromID, toID, amount)
}

// Statement returns a snapshot of the account's profile, balance and full
// ledger in insertion order. Closed accounts are rejected.
func (r *Registry) Statement(accountID string) (Statement, error) {
	a, err := r.lookup(accountID)
	if err != nil {
		return Statement{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.open {
		return Statement{}, ErrAccountClosed
	}
	return a.statement(), nil
}

// Close flips the account to closed, permanently. The record is retained but
// rejects all further mutation. No ledger entry is written: closing is a state
// transition, not a transaction.
func (r *Registry) Close(accountID string) error {
	a, err := r.lookup(accountID)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.open {
		return ErrAlreadyClosed
	}
	a.open = false
	return nil
}

// lookup resolves an account ID under the registry read lock. Accounts are
// never removed from the map, so the pointer stays valid after unlocking.
func (r *Registry) lookup(accountID string) (*account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accts[accountID]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return a, nil
}
