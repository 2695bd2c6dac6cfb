package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/prasetya/neraca/internal/ledger"
	"github.com/prasetya/neraca/internal/utils"
)

// RenderTransactionDetail prints one transaction with its double-entry
// effect.
func RenderTransactionDetail(tx *ledger.Transaction, currency string) {
	pterm.DefaultSection.Printf("Transaction #%d", tx.ID)

	reference := tx.Reference
	if reference == "" {
		reference = "-"
	}
	notes := tx.Notes
	if notes == "" {
		notes = "-"
	}

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Date", tx.Date.Format("2006-01-02")},
		{"Category", string(tx.Category)},
		{"Description", tx.Description},
		{"Debit", string(tx.Debit)},
		{"Credit", string(tx.Credit)},
		{"Amount", utils.FormatAmount(tx.Amount, currency)},
		{"Reference", reference},
		{"Notes", notes},
	}

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

// RenderApplied confirms a freshly recorded transaction.
func RenderApplied(tx *ledger.Transaction, currency string) {
	pterm.Success.Printf("Transaction #%d recorded\n", tx.ID)
	pterm.Printf("  %s | %s → debit %s, credit %s | %s\n",
		tx.Date.Format("2006-01-02"),
		tx.Category,
		tx.Debit,
		tx.Credit,
		utils.FormatAmount(tx.Amount, currency),
	)
	if tx.Reference != "" {
		pterm.Printf("  Ref: %s\n", tx.Reference)
	}
	fmt.Println()
}
