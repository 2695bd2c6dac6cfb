package ledger

import "fmt"

// Category is one of the ten supported transaction kinds. Every
// category resolves to a fixed double-entry rule: the two accounts it
// touches and the signed delta applied to each.
type Category string

const (
	CategoryCashDeposit      Category = "Cash Deposit"
	CategoryCashWithdrawal   Category = "Cash Withdrawal"
	CategoryIncomingTransfer Category = "Incoming Transfer"
	CategoryOutgoingTransfer Category = "Outgoing Transfer"
	CategoryBillPayment      Category = "Bill Payment"
	CategoryPurchase         Category = "Purchase/Investment"
	CategoryInterestIncome   Category = "Interest Income"
	CategoryAdminFee         Category = "Admin Fee"
	CategoryLoanInflow       Category = "Loan Inflow"
	CategoryLoanRepayment    Category = "Loan Repayment"
)

// Categories lists all categories in menu order.
var Categories = []Category{
	CategoryCashDeposit,
	CategoryCashWithdrawal,
	CategoryIncomingTransfer,
	CategoryOutgoingTransfer,
	CategoryBillPayment,
	CategoryPurchase,
	CategoryInterestIncome,
	CategoryAdminFee,
	CategoryLoanInflow,
	CategoryLoanRepayment,
}

// Rule describes the double-entry effect of a category: which account
// is debited, which is credited, and the sign (+1/-1) the transaction
// amount carries onto each running balance.
type Rule struct {
	Debit       Account
	Credit      Account
	DebitDelta  int
	CreditDelta int
}

var categoryRules = map[Category]Rule{
	CategoryCashDeposit:      {Debit: AccountCash, Credit: AccountCapital, DebitDelta: +1, CreditDelta: +1},
	CategoryCashWithdrawal:   {Debit: AccountCapital, Credit: AccountCash, DebitDelta: -1, CreditDelta: -1},
	CategoryIncomingTransfer: {Debit: AccountBank, Credit: AccountOtherIncome, DebitDelta: +1, CreditDelta: +1},
	CategoryOutgoingTransfer: {Debit: AccountOtherExpense, Credit: AccountBank, DebitDelta: +1, CreditDelta: -1},
	CategoryBillPayment:      {Debit: AccountPayables, Credit: AccountBank, DebitDelta: -1, CreditDelta: -1},
	CategoryPurchase:         {Debit: AccountInvestments, Credit: AccountBank, DebitDelta: +1, CreditDelta: -1},
	CategoryInterestIncome:   {Debit: AccountBank, Credit: AccountInterestIncome, DebitDelta: +1, CreditDelta: +1},
	CategoryAdminFee:         {Debit: AccountAdminExpense, Credit: AccountBank, DebitDelta: +1, CreditDelta: -1},
	CategoryLoanInflow:       {Debit: AccountBank, Credit: AccountLoansPayable, DebitDelta: +1, CreditDelta: +1},
	CategoryLoanRepayment:    {Debit: AccountLoansPayable, Credit: AccountBank, DebitDelta: -1, CreditDelta: -1},
}

// RuleFor resolves a category to its double-entry rule.
func RuleFor(c Category) (Rule, error) {
	rule, ok := categoryRules[c]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
	}
	return rule, nil
}
