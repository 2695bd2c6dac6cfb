// Package statement derives the three financial statements from ledger
// balances. Every function is a pure read over a ledger.View: calling
// it any number of times never changes state, and the result always
// reflects the balances at the time of the call.
//
// The cash-flow statement uses a fixed, simplified activity
// classification computed from cumulative account totals rather than
// from per-transaction tagging. With nonzero opening balances it
// describes cumulative positions, not period-over-period movement.
package statement

import (
	"github.com/shopspring/decimal"

	"github.com/prasetya/neraca/internal/ledger"
)

// LineItem is one labelled row of a statement.
type LineItem struct {
	Account ledger.Account
	Amount  decimal.Decimal
}

// Generator aggregates ledger balances into statement figures.
type Generator struct {
	view ledger.View
}

// NewGenerator returns a generator reading from the given balance view.
func NewGenerator(view ledger.View) *Generator {
	return &Generator{view: view}
}

// TotalAssets sums Cash, Bank, Receivables, Investments and Other Assets.
func (g *Generator) TotalAssets() decimal.Decimal {
	return g.sum(ledger.AssetAccounts)
}

// TotalLiabilities sums Payables and Loans Payable.
func (g *Generator) TotalLiabilities() decimal.Decimal {
	return g.sum(ledger.LiabilityAccounts)
}

// TotalIncome sums Interest Income and Other Income.
func (g *Generator) TotalIncome() decimal.Decimal {
	return g.sum(ledger.IncomeAccounts)
}

// TotalExpense sums Admin Expense and Other Expense.
func (g *Generator) TotalExpense() decimal.Decimal {
	return g.sum(ledger.ExpenseAccounts)
}

// NetIncome is total income less total expense.
func (g *Generator) NetIncome() decimal.Decimal {
	return g.TotalIncome().Sub(g.TotalExpense())
}

// TotalEquity is Capital plus Retained Earnings plus current-period
// net income.
func (g *Generator) TotalEquity() decimal.Decimal {
	return g.sum(ledger.EquityAccounts).Add(g.NetIncome())
}

// BalanceSheet is the assets / liabilities / equity statement.
type BalanceSheet struct {
	Assets           []LineItem
	TotalAssets      decimal.Decimal
	Liabilities      []LineItem
	TotalLiabilities decimal.Decimal
	Equity           []LineItem
	NetIncome        decimal.Decimal
	TotalEquity      decimal.Decimal
	// TotalLiabilitiesAndEquity is the right-hand side of the
	// accounting identity, shown against TotalAssets.
	TotalLiabilitiesAndEquity decimal.Decimal
}

// BalanceSheet builds the balance sheet from current balances.
func (g *Generator) BalanceSheet() BalanceSheet {
	totalLiabilities := g.TotalLiabilities()
	totalEquity := g.TotalEquity()

	return BalanceSheet{
		Assets:                    g.lines(ledger.AssetAccounts),
		TotalAssets:               g.TotalAssets(),
		Liabilities:               g.lines(ledger.LiabilityAccounts),
		TotalLiabilities:          totalLiabilities,
		Equity:                    g.lines(ledger.EquityAccounts),
		NetIncome:                 g.NetIncome(),
		TotalEquity:               totalEquity,
		TotalLiabilitiesAndEquity: totalLiabilities.Add(totalEquity),
	}
}

// IncomeStatement is the profit-and-loss statement.
type IncomeStatement struct {
	Income       []LineItem
	TotalIncome  decimal.Decimal
	Expenses     []LineItem
	TotalExpense decimal.Decimal
	NetIncome    decimal.Decimal
	Profit       bool
}

// IncomeStatement builds the income statement from current balances.
func (g *Generator) IncomeStatement() IncomeStatement {
	net := g.NetIncome()
	return IncomeStatement{
		Income:       g.lines(ledger.IncomeAccounts),
		TotalIncome:  g.TotalIncome(),
		Expenses:     g.lines(ledger.ExpenseAccounts),
		TotalExpense: g.TotalExpense(),
		NetIncome:    net,
		Profit:       !net.IsNegative(),
	}
}

// CashFlowStatement holds the three activity sections and their sum.
type CashFlowStatement struct {
	Operating     decimal.Decimal
	Investing     decimal.Decimal
	Financing     decimal.Decimal
	NetCashChange decimal.Decimal
}

// CashFlow builds the simplified cash-flow statement:
//
//	Operating = Other Income - Other Expense - Admin Expense
//	Investing = Interest Income - Investments
//	Financing = Capital + Loans Payable - Payables
func (g *Generator) CashFlow() CashFlowStatement {
	operating := g.view.Balance(ledger.AccountOtherIncome).
		Sub(g.view.Balance(ledger.AccountOtherExpense)).
		Sub(g.view.Balance(ledger.AccountAdminExpense))
	investing := g.view.Balance(ledger.AccountInterestIncome).
		Sub(g.view.Balance(ledger.AccountInvestments))
	financing := g.view.Balance(ledger.AccountCapital).
		Add(g.view.Balance(ledger.AccountLoansPayable)).
		Sub(g.view.Balance(ledger.AccountPayables))

	return CashFlowStatement{
		Operating:     operating,
		Investing:     investing,
		Financing:     financing,
		NetCashChange: operating.Add(investing).Add(financing),
	}
}

func (g *Generator) sum(accounts []ledger.Account) decimal.Decimal {
	total := decimal.Zero
	for _, acc := range accounts {
		total = total.Add(g.view.Balance(acc))
	}
	return total
}

func (g *Generator) lines(accounts []ledger.Account) []LineItem {
	items := make([]LineItem, 0, len(accounts))
	for _, acc := range accounts {
		items = append(items, LineItem{Account: acc, Amount: g.view.Balance(acc)})
	}
	return items
}
