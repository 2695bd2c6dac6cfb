package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one recorded journal entry. Identifier and category
// are fixed at creation; description, amount and reference may change
// through Edit.
type Transaction struct {
	ID          int64
	Date        time.Time
	Description string
	Category    Category
	Debit       Account
	Credit      Account
	Amount      decimal.Decimal
	Reference   string
	Notes       string
}

// Input carries the user-supplied fields for a new transaction.
type Input struct {
	Category    Category
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Reference   string
	Notes       string
}

// Edit carries the mutable fields of an existing transaction. Nil
// fields are left unchanged.
type Edit struct {
	Description *string
	Amount      *decimal.Decimal
	Reference   *string
}

// View is the read-only access the statement layer gets to ledger
// balances. The Ledger itself is the only implementation that mutates.
type View interface {
	Balance(acc Account) decimal.Decimal
}

// Ledger owns all account balances and the ordered transaction log.
// It is the sole mutator of balance state; statements and the balance
// verifier only ever read through View.
type Ledger struct {
	balances map[Account]decimal.Decimal
	log      []*Transaction
	nextID   int64
}

// New returns a ledger with every account at zero and an empty log.
func New() *Ledger {
	balances := make(map[Account]decimal.Decimal, len(AllAccounts))
	for _, acc := range AllAccounts {
		balances[acc] = decimal.Zero
	}
	return &Ledger{balances: balances, nextID: 1}
}

// Apply validates the input, classifies it through the category table,
// applies the two signed balance deltas and appends the transaction to
// the log. Identifiers are assigned from a counter that only ever
// increases, so an ID is never reused even after Delete.
func (l *Ledger) Apply(in Input) (*Transaction, error) {
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidAmount, in.Amount)
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, ErrMissingDescription
	}

	rule, err := RuleFor(in.Category)
	if err != nil {
		return nil, err
	}

	tx := &Transaction{
		ID:          l.nextID,
		Date:        in.Date,
		Description: in.Description,
		Category:    in.Category,
		Debit:       rule.Debit,
		Credit:      rule.Credit,
		Amount:      in.Amount,
		Reference:   in.Reference,
		Notes:       in.Notes,
	}
	l.nextID++

	l.applyDeltas(rule, in.Amount)
	l.log = append(l.log, tx)

	return tx, nil
}

// Edit updates a transaction in place. An amount change is a full
// reversal of the old amount's effect on both accounts followed by an
// application of the new amount; overwriting the amount directly would
// silently break the accounting identity. Every supplied field is
// validated before any mutation, so a rejected edit leaves the
// transaction untouched.
func (l *Ledger) Edit(id int64, e Edit) (*Transaction, error) {
	tx, err := l.Get(id)
	if err != nil {
		return nil, err
	}

	if e.Description != nil && strings.TrimSpace(*e.Description) == "" {
		return nil, ErrMissingDescription
	}
	if e.Amount != nil && !e.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidAmount, *e.Amount)
	}

	if e.Description != nil {
		tx.Description = *e.Description
	}

	if e.Amount != nil {
		rule, err := RuleFor(tx.Category)
		if err != nil {
			return nil, err
		}
		l.reverseDeltas(rule, tx.Amount)
		l.applyDeltas(rule, *e.Amount)
		tx.Amount = *e.Amount
	}

	if e.Reference != nil {
		tx.Reference = *e.Reference
	}

	return tx, nil
}

// Delete reverses the transaction's balance effect and removes it from
// the log. Its identifier is permanently retired.
func (l *Ledger) Delete(id int64) error {
	for i, tx := range l.log {
		if tx.ID != id {
			continue
		}
		rule, err := RuleFor(tx.Category)
		if err != nil {
			return err
		}
		l.reverseDeltas(rule, tx.Amount)
		l.log = append(l.log[:i], l.log[i+1:]...)
		return nil
	}
	return fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// SetOpeningBalance overwrites an account's balance directly. It is
// not additive and not tied to any transaction, so it cannot be undone
// through Delete; a lopsided write shows up in the balance check
// rather than being rejected here.
func (l *Ledger) SetOpeningBalance(acc Account, value decimal.Decimal) error {
	if !ValidAccount(acc) {
		return fmt.Errorf("unknown account %q", string(acc))
	}
	l.balances[acc] = value
	return nil
}

// Get returns the transaction with the given identifier.
func (l *Ledger) Get(id int64) (*Transaction, error) {
	for _, tx := range l.log {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// List returns the transaction log in insertion order.
func (l *Ledger) List() []*Transaction {
	out := make([]*Transaction, len(l.log))
	copy(out, l.log)
	return out
}

// Balance returns the running balance of one account.
func (l *Ledger) Balance(acc Account) decimal.Decimal {
	return l.balances[acc]
}

func (l *Ledger) applyDeltas(rule Rule, amount decimal.Decimal) {
	l.balances[rule.Debit] = l.balances[rule.Debit].Add(amount.Mul(decimal.NewFromInt(int64(rule.DebitDelta))))
	l.balances[rule.Credit] = l.balances[rule.Credit].Add(amount.Mul(decimal.NewFromInt(int64(rule.CreditDelta))))
}

func (l *Ledger) reverseDeltas(rule Rule, amount decimal.Decimal) {
	l.balances[rule.Debit] = l.balances[rule.Debit].Sub(amount.Mul(decimal.NewFromInt(int64(rule.DebitDelta))))
	l.balances[rule.Credit] = l.balances[rule.Credit].Sub(amount.Mul(decimal.NewFromInt(int64(rule.CreditDelta))))
}
