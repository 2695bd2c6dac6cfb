package views

import (
	"github.com/pterm/pterm"

	"github.com/prasetya/neraca/internal/statement"
	"github.com/prasetya/neraca/internal/utils"
)

// RenderBalanceSheet prints the balance sheet with its verification
// verdict.
func RenderBalanceSheet(bs statement.BalanceSheet, check statement.Verification, currency string) {
	pterm.DefaultSection.Println("Balance Sheet")

	tableData := pterm.TableData{{"Account", "Amount"}}
	for _, item := range bs.Assets {
		tableData = append(tableData, []string{string(item.Account), utils.FormatAmount(item.Amount, currency)})
	}
	tableData = append(tableData, []string{"TOTAL ASSETS", utils.FormatAmount(bs.TotalAssets, currency)})

	for _, item := range bs.Liabilities {
		tableData = append(tableData, []string{string(item.Account), utils.FormatAmount(item.Amount, currency)})
	}
	tableData = append(tableData, []string{"TOTAL LIABILITIES", utils.FormatAmount(bs.TotalLiabilities, currency)})

	for _, item := range bs.Equity {
		tableData = append(tableData, []string{string(item.Account), utils.FormatAmount(item.Amount, currency)})
	}
	tableData = append(tableData,
		[]string{"Net Income (current period)", utils.FormatAmount(bs.NetIncome, currency)},
		[]string{"TOTAL EQUITY", utils.FormatAmount(bs.TotalEquity, currency)},
		[]string{"TOTAL LIABILITIES + EQUITY", utils.FormatAmount(bs.TotalLiabilitiesAndEquity, currency)},
	)

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	RenderVerification(check, currency)
}

// RenderIncomeStatement prints the income statement.
func RenderIncomeStatement(is statement.IncomeStatement, currency string) {
	pterm.DefaultSection.Println("Income Statement")

	tableData := pterm.TableData{{"Line", "Amount"}}
	for _, item := range is.Income {
		tableData = append(tableData, []string{string(item.Account), utils.FormatAmount(item.Amount, currency)})
	}
	tableData = append(tableData, []string{"TOTAL INCOME", utils.FormatAmount(is.TotalIncome, currency)})

	for _, item := range is.Expenses {
		tableData = append(tableData, []string{string(item.Account), utils.FormatAmount(item.Amount, currency)})
	}
	tableData = append(tableData,
		[]string{"TOTAL EXPENSES", utils.FormatAmount(is.TotalExpense, currency)},
		[]string{"NET INCOME", utils.FormatAmount(is.NetIncome, currency)},
	)

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()

	if is.Profit {
		pterm.Success.Println("Result: PROFIT")
	} else {
		pterm.Warning.Println("Result: LOSS")
	}
}

// RenderCashFlow prints the simplified cash-flow statement.
func RenderCashFlow(cf statement.CashFlowStatement, currency string) {
	pterm.DefaultSection.Println("Cash Flow Statement")

	tableData := pterm.TableData{
		{"Section", "Amount"},
		{"Net cash from operating activities", utils.FormatAmount(cf.Operating, currency)},
		{"Net cash from investing activities", utils.FormatAmount(cf.Investing, currency)},
		{"Net cash from financing activities", utils.FormatAmount(cf.Financing, currency)},
		{"NET CASH CHANGE", utils.FormatAmount(cf.NetCashChange, currency)},
	}

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// RenderVerification prints the accounting-identity verdict.
func RenderVerification(check statement.Verification, currency string) {
	if check.Balanced {
		pterm.Success.Println("✓ Balanced (Assets = Liabilities + Equity)")
		return
	}
	pterm.Error.Printf("✗ Not balanced, difference: %s\n", utils.FormatAmount(check.Difference, currency))
}
