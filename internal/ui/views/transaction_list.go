package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/prasetya/neraca/internal/ledger"
	"github.com/prasetya/neraca/internal/utils"
)

// RenderTransactionList prints the journal in insertion order.
func RenderTransactionList(transactions []*ledger.Transaction, currency string) {
	if len(transactions) == 0 {
		pterm.Info.Println("No transactions recorded yet")
		return
	}

	pterm.DefaultSection.Println("Transactions")

	tableData := pterm.TableData{
		{"ID", "Date", "Category", "Description", "Amount", "Ref"},
	}

	for _, tx := range transactions {
		tableData = append(tableData, []string{
			fmt.Sprint(tx.ID),
			tx.Date.Format("2006-01-02"),
			string(tx.Category),
			truncate(tx.Description, 30),
			utils.FormatAmount(tx.Amount, currency),
			tx.Reference,
		})
	}

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	pterm.Printf("Total: %d transaction(s)\n", len(transactions))
}

// truncate shortens s to max runes; byte slicing could cut a
// multi-byte rune in half.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
