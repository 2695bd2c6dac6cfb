package ledger

import (
	"errors"
	"testing"
)

func TestRuleForAllCategories(t *testing.T) {
	tests := []struct {
		category    Category
		debit       Account
		credit      Account
		debitDelta  int
		creditDelta int
	}{
		{CategoryCashDeposit, AccountCash, AccountCapital, +1, +1},
		{CategoryCashWithdrawal, AccountCapital, AccountCash, -1, -1},
		{CategoryIncomingTransfer, AccountBank, AccountOtherIncome, +1, +1},
		{CategoryOutgoingTransfer, AccountOtherExpense, AccountBank, +1, -1},
		{CategoryBillPayment, AccountPayables, AccountBank, -1, -1},
		{CategoryPurchase, AccountInvestments, AccountBank, +1, -1},
		{CategoryInterestIncome, AccountBank, AccountInterestIncome, +1, +1},
		{CategoryAdminFee, AccountAdminExpense, AccountBank, +1, -1},
		{CategoryLoanInflow, AccountBank, AccountLoansPayable, +1, +1},
		{CategoryLoanRepayment, AccountLoansPayable, AccountBank, -1, -1},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			rule, err := RuleFor(tt.category)
			if err != nil {
				t.Fatalf("RuleFor(%q) returned error: %v", tt.category, err)
			}
			if rule.Debit != tt.debit || rule.Credit != tt.credit {
				t.Errorf("accounts = (%s, %s), want (%s, %s)", rule.Debit, rule.Credit, tt.debit, tt.credit)
			}
			if rule.DebitDelta != tt.debitDelta || rule.CreditDelta != tt.creditDelta {
				t.Errorf("deltas = (%d, %d), want (%d, %d)", rule.DebitDelta, rule.CreditDelta, tt.debitDelta, tt.creditDelta)
			}
			if !ValidAccount(rule.Debit) || !ValidAccount(rule.Credit) {
				t.Errorf("rule references account outside the chart: %s / %s", rule.Debit, rule.Credit)
			}
		})
	}

	if len(Categories) != 10 {
		t.Errorf("Categories has %d members, want 10", len(Categories))
	}
}

func TestRuleForUnknownCategory(t *testing.T) {
	_, err := RuleFor(Category("Dividend"))
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("RuleFor(unknown) = %v, want ErrUnknownCategory", err)
	}
}
