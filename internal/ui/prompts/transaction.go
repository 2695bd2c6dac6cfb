package prompts

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/prasetya/neraca/internal/ledger"
	"github.com/prasetya/neraca/internal/utils"
)

// PromptCategory prompts for one of the ten transaction categories.
func PromptCategory() (ledger.Category, error) {
	options := make([]string, 0, len(ledger.Categories))
	for _, c := range ledger.Categories {
		options = append(options, string(c))
	}

	selected, err := PromptSelect("Transaction category:", options, "")
	if err != nil {
		return "", err
	}

	return ledger.Category(selected), nil
}

// PromptTransactionDate prompts for the transaction date, defaulting
// to today.
func PromptTransactionDate() (time.Time, error) {
	defaultDate := time.Now().Format("2006-01-02")

	dateStr, err := PromptDate("Date (YYYY-MM-DD):", defaultDate)
	if err != nil {
		return time.Time{}, err
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return date, nil
}

// PromptPositiveAmount prompts for an amount and parses it, rejecting
// non-positive values at the prompt.
func PromptPositiveAmount(message string) (decimal.Decimal, error) {
	amountStr, err := PromptAmount(message, "e.g. 1,500,000 or 150.50", func(s string) error {
		d, err := utils.ParseAmount(s)
		if err != nil {
			return err
		}
		if !d.IsPositive() {
			return fmt.Errorf("amount must be greater than 0")
		}
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	return utils.ParseAmount(amountStr)
}

// PromptTransactionForm collects every field for a new transaction.
func PromptTransactionForm() (ledger.Input, error) {
	category, err := PromptCategory()
	if err != nil {
		return ledger.Input{}, err
	}

	date, err := PromptTransactionDate()
	if err != nil {
		return ledger.Input{}, err
	}

	description, err := PromptRequired("Description:")
	if err != nil {
		return ledger.Input{}, err
	}

	amount, err := PromptPositiveAmount("Amount:")
	if err != nil {
		return ledger.Input{}, err
	}

	reference, err := PromptInput("Reference (optional):", "", nil)
	if err != nil {
		return ledger.Input{}, err
	}

	notes, err := PromptInput("Notes (optional):", "", nil)
	if err != nil {
		return ledger.Input{}, err
	}

	return ledger.Input{
		Category:    category,
		Date:        date,
		Description: description,
		Amount:      amount,
		Reference:   reference,
		Notes:       notes,
	}, nil
}

// PromptAccount prompts for one account out of the chart.
func PromptAccount(message string) (ledger.Account, error) {
	options := make([]string, 0, len(ledger.AllAccounts))
	for _, acc := range ledger.AllAccounts {
		options = append(options, string(acc))
	}

	selected, err := PromptSelect(message, options, "")
	if err != nil {
		return "", err
	}

	return ledger.Account(selected), nil
}
