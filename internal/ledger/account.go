package ledger

// Account identifies one entry in the fixed chart of accounts.
type Account string

const (
	// Assets
	AccountCash        Account = "Cash"
	AccountBank        Account = "Bank"
	AccountReceivables Account = "Receivables"
	AccountInvestments Account = "Investments"
	AccountOtherAssets Account = "Other Assets"

	// Liabilities
	AccountPayables     Account = "Payables"
	AccountLoansPayable Account = "Loans Payable"

	// Equity
	AccountCapital          Account = "Capital"
	AccountRetainedEarnings Account = "Retained Earnings"

	// Income
	AccountInterestIncome Account = "Interest Income"
	AccountOtherIncome    Account = "Other Income"

	// Expenses
	AccountAdminExpense Account = "Admin Expense"
	AccountOtherExpense Account = "Other Expense"
)

// AssetAccounts lists the accounts summed into total assets, in
// balance-sheet display order.
var AssetAccounts = []Account{
	AccountCash,
	AccountBank,
	AccountReceivables,
	AccountInvestments,
	AccountOtherAssets,
}

// LiabilityAccounts lists the accounts summed into total liabilities.
var LiabilityAccounts = []Account{
	AccountPayables,
	AccountLoansPayable,
}

// EquityAccounts lists the directly held equity accounts. Current-period
// net income is a derived equity component, not an account.
var EquityAccounts = []Account{
	AccountCapital,
	AccountRetainedEarnings,
}

// IncomeAccounts lists the income-statement revenue accounts.
var IncomeAccounts = []Account{
	AccountInterestIncome,
	AccountOtherIncome,
}

// ExpenseAccounts lists the income-statement expense accounts.
var ExpenseAccounts = []Account{
	AccountAdminExpense,
	AccountOtherExpense,
}

// AllAccounts enumerates the full chart in group order.
var AllAccounts = func() []Account {
	var all []Account
	all = append(all, AssetAccounts...)
	all = append(all, LiabilityAccounts...)
	all = append(all, EquityAccounts...)
	all = append(all, IncomeAccounts...)
	all = append(all, ExpenseAccounts...)
	return all
}()

// ValidAccount reports whether name belongs to the chart of accounts.
func ValidAccount(name Account) bool {
	for _, acc := range AllAccounts {
		if acc == name {
			return true
		}
	}
	return false
}
