package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var testDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func mustApply(t *testing.T, l *Ledger, c Category, amount string) *Transaction {
	t.Helper()
	tx, err := l.Apply(Input{
		Category:    c,
		Date:        testDate,
		Description: "test entry",
		Amount:      decimal.RequireFromString(amount),
	})
	if err != nil {
		t.Fatalf("Apply(%s, %s) failed: %v", c, amount, err)
	}
	return tx
}

func assertBalance(t *testing.T, l *Ledger, acc Account, want string) {
	t.Helper()
	if got := l.Balance(acc); !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("Balance(%s) = %s, want %s", acc, got, want)
	}
}

func TestApplyValidation(t *testing.T) {
	tests := []struct {
		name        string
		category    Category
		description string
		amount      string
		wantErr     error
	}{
		{"zero amount", CategoryCashDeposit, "deposit", "0", ErrInvalidAmount},
		{"negative amount", CategoryCashDeposit, "deposit", "-50", ErrInvalidAmount},
		{"empty description", CategoryCashDeposit, "", "100", ErrMissingDescription},
		{"blank description", CategoryCashDeposit, "   ", "100", ErrMissingDescription},
		{"unknown category", Category("Refund"), "refund", "100", ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			_, err := l.Apply(Input{
				Category:    tt.category,
				Date:        testDate,
				Description: tt.description,
				Amount:      decimal.RequireFromString(tt.amount),
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Apply error = %v, want %v", err, tt.wantErr)
			}
			if len(l.List()) != 0 {
				t.Error("failed Apply must not append to the log")
			}
		})
	}
}

func TestApplyBalanceEffects(t *testing.T) {
	tests := []struct {
		category Category
		first    Account
		firstBal string
		second   Account
		secondBal string
	}{
		{CategoryCashDeposit, AccountCash, "250", AccountCapital, "250"},
		{CategoryCashWithdrawal, AccountCash, "-250", AccountCapital, "-250"},
		{CategoryIncomingTransfer, AccountBank, "250", AccountOtherIncome, "250"},
		{CategoryOutgoingTransfer, AccountBank, "-250", AccountOtherExpense, "250"},
		{CategoryBillPayment, AccountPayables, "-250", AccountBank, "-250"},
		{CategoryPurchase, AccountInvestments, "250", AccountBank, "-250"},
		{CategoryInterestIncome, AccountBank, "250", AccountInterestIncome, "250"},
		{CategoryAdminFee, AccountAdminExpense, "250", AccountBank, "-250"},
		{CategoryLoanInflow, AccountBank, "250", AccountLoansPayable, "250"},
		{CategoryLoanRepayment, AccountLoansPayable, "-250", AccountBank, "-250"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			l := New()
			tx := mustApply(t, l, tt.category, "250")
			assertBalance(t, l, tt.first, tt.firstBal)
			assertBalance(t, l, tt.second, tt.secondBal)

			rule, _ := RuleFor(tt.category)
			if tx.Debit != rule.Debit || tx.Credit != rule.Credit {
				t.Errorf("transaction accounts = (%s, %s), want (%s, %s)",
					tx.Debit, tx.Credit, rule.Debit, rule.Credit)
			}
		})
	}
}

func TestSequentialIDsNeverReused(t *testing.T) {
	l := New()
	first := mustApply(t, l, CategoryCashDeposit, "100")
	second := mustApply(t, l, CategoryAdminFee, "5")
	third := mustApply(t, l, CategoryLoanInflow, "1000")

	if first.ID != 1 || second.ID != 2 || third.ID != 3 {
		t.Fatalf("ids = %d, %d, %d, want 1, 2, 3", first.ID, second.ID, third.ID)
	}

	if err := l.Delete(second.ID); err != nil {
		t.Fatalf("Delete(%d) failed: %v", second.ID, err)
	}

	fourth := mustApply(t, l, CategoryInterestIncome, "12")
	if fourth.ID != 4 {
		t.Errorf("id after delete = %d, want 4 (retired ids are never reassigned)", fourth.ID)
	}
}

func TestDeleteReversesBalances(t *testing.T) {
	l := New()
	tx := mustApply(t, l, CategoryLoanInflow, "1000")

	if err := l.Delete(tx.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	assertBalance(t, l, AccountBank, "0")
	assertBalance(t, l, AccountLoansPayable, "0")

	if len(l.List()) != 0 {
		t.Error("deleted transaction still present in the log")
	}
	if err := l.Delete(tx.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestEditAmountIsReversalThenReapply(t *testing.T) {
	edited := New()
	tx := mustApply(t, edited, CategoryPurchase, "300")
	newAmount := decimal.RequireFromString("120")
	if _, err := edited.Edit(tx.ID, Edit{Amount: &newAmount}); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	// Must equal delete-then-reapply with the new amount.
	replayed := New()
	old := mustApply(t, replayed, CategoryPurchase, "300")
	if err := replayed.Delete(old.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	mustApply(t, replayed, CategoryPurchase, "120")

	for _, acc := range AllAccounts {
		if !edited.Balance(acc).Equal(replayed.Balance(acc)) {
			t.Errorf("Balance(%s): edit path %s != replay path %s",
				acc, edited.Balance(acc), replayed.Balance(acc))
		}
	}
}

func TestEditFields(t *testing.T) {
	l := New()
	tx := mustApply(t, l, CategoryIncomingTransfer, "75")

	desc := "wire from customer"
	ref := "TRX-0091"
	updated, err := l.Edit(tx.ID, Edit{Description: &desc, Reference: &ref})
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if updated.Description != desc || updated.Reference != ref {
		t.Errorf("edit did not stick: %q / %q", updated.Description, updated.Reference)
	}
	if updated.ID != tx.ID || updated.Category != tx.Category {
		t.Error("edit must not change identifier or category")
	}
	// Balances untouched when amount is not edited.
	assertBalance(t, l, AccountBank, "75")
	assertBalance(t, l, AccountOtherIncome, "75")
}

func TestEditValidation(t *testing.T) {
	l := New()
	tx := mustApply(t, l, CategoryCashDeposit, "100")

	zero := decimal.Zero
	if _, err := l.Edit(tx.ID, Edit{Amount: &zero}); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Edit with zero amount = %v, want ErrInvalidAmount", err)
	}
	assertBalance(t, l, AccountCash, "100")

	blank := " "
	if _, err := l.Edit(tx.ID, Edit{Description: &blank}); !errors.Is(err, ErrMissingDescription) {
		t.Errorf("Edit with blank description = %v, want ErrMissingDescription", err)
	}

	if _, err := l.Edit(999, Edit{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Edit of missing id = %v, want ErrNotFound", err)
	}
}

// A rejected edit must leave every supplied field untouched, not just
// the one that failed validation.
func TestEditRejectionLeavesNoPartialState(t *testing.T) {
	l := New()
	tx := mustApply(t, l, CategoryCashDeposit, "100")
	original := tx.Description

	desc := "updated description"
	ref := "TRX-7"
	zero := decimal.Zero
	if _, err := l.Edit(tx.ID, Edit{Description: &desc, Amount: &zero, Reference: &ref}); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("Edit = %v, want ErrInvalidAmount", err)
	}

	got, err := l.Get(tx.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Description != original {
		t.Errorf("description mutated on rejected edit: %q", got.Description)
	}
	if got.Reference != "" {
		t.Errorf("reference mutated on rejected edit: %q", got.Reference)
	}
	assertBalance(t, l, AccountCash, "100")
	assertBalance(t, l, AccountCapital, "100")

	blank := " "
	amount := decimal.RequireFromString("40")
	if _, err := l.Edit(tx.ID, Edit{Description: &blank, Amount: &amount}); !errors.Is(err, ErrMissingDescription) {
		t.Fatalf("Edit = %v, want ErrMissingDescription", err)
	}
	assertBalance(t, l, AccountCash, "100")
}

func TestSetOpeningBalance(t *testing.T) {
	l := New()

	if err := l.SetOpeningBalance(AccountCash, decimal.RequireFromString("5000")); err != nil {
		t.Fatalf("SetOpeningBalance failed: %v", err)
	}
	assertBalance(t, l, AccountCash, "5000")

	// Overwrite, not additive.
	if err := l.SetOpeningBalance(AccountCash, decimal.RequireFromString("750")); err != nil {
		t.Fatalf("SetOpeningBalance failed: %v", err)
	}
	assertBalance(t, l, AccountCash, "750")

	if err := l.SetOpeningBalance(Account("Petty Cash"), decimal.Zero); err == nil {
		t.Error("SetOpeningBalance accepted an account outside the chart")
	}
}

func TestListInsertionOrder(t *testing.T) {
	l := New()
	mustApply(t, l, CategoryCashDeposit, "10")
	mustApply(t, l, CategoryAdminFee, "1")
	mustApply(t, l, CategoryLoanInflow, "20")

	list := l.List()
	if len(list) != 3 {
		t.Fatalf("List() returned %d transactions, want 3", len(list))
	}
	for i, tx := range list {
		if tx.ID != int64(i+1) {
			t.Errorf("List()[%d].ID = %d, want %d", i, tx.ID, i+1)
		}
	}
}

func TestGet(t *testing.T) {
	l := New()
	tx := mustApply(t, l, CategoryCashDeposit, "10")

	got, err := l.Get(tx.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != tx.ID {
		t.Errorf("Get returned id %d, want %d", got.ID, tx.ID)
	}
	if _, err := l.Get(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(42) = %v, want ErrNotFound", err)
	}
}
