package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pterm/pterm"

	"github.com/prasetya/neraca/internal/config"
	"github.com/prasetya/neraca/internal/errhandler"
	"github.com/prasetya/neraca/internal/ledger"
	"github.com/prasetya/neraca/internal/report"
	"github.com/prasetya/neraca/internal/statement"
	"github.com/prasetya/neraca/internal/ui"
	"github.com/prasetya/neraca/internal/ui/prompts"
	"github.com/prasetya/neraca/internal/ui/views"
	"github.com/prasetya/neraca/internal/utils"
)

// surveyOpts contains custom options for all survey prompts
var surveyOpts = []survey.AskOpt{
	survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	}),
}

const (
	menuRecord  = "Record transaction"
	menuList    = "View transactions"
	menuEdit    = "Edit transaction"
	menuDelete  = "Delete transaction"
	menuOpening = "Set opening balances"
	menuEntity  = "Entity info"
	menuPreview = "Show financial statements"
	menuVerify  = "Verify balance"
	menuExport  = "Export Excel report"
	menuQuit    = "Quit"
)

// Session holds one sitting's ledger. There is no persistence: the
// ledger starts empty and everything recorded lives until Quit.
type Session struct {
	ledger *ledger.Ledger
	gen    *statement.Generator
	cfg    *config.Config
}

func NewSession(cfg *config.Config) *Session {
	l := ledger.New()
	return &Session{
		ledger: l,
		gen:    statement.NewGenerator(l),
		cfg:    cfg,
	}
}

// Run drives the interactive menu until the user quits.
func (s *Session) Run() error {
	ui.PrintL1Title("neraca - bank financial report")
	pterm.Println("Single-session ledger: data is kept in memory until you quit.")
	ui.Separator()

	actions := map[string]func() error{
		menuRecord:  s.recordTransaction,
		menuList:    s.listTransactions,
		menuEdit:    s.editTransaction,
		menuDelete:  s.deleteTransaction,
		menuOpening: s.setOpeningBalance,
		menuEntity:  s.editEntityInfo,
		menuPreview: s.showStatements,
		menuVerify:  s.verifyBalance,
		menuExport:  s.exportReport,
	}

	options := []string{
		menuRecord, menuList, menuEdit, menuDelete, menuOpening,
		menuEntity, menuPreview, menuVerify, menuExport, menuQuit,
	}

	for {
		choice, err := prompts.PromptSelect("Main menu:", options, menuRecord)
		if err != nil {
			if errhandler.IsInterrupt(err) {
				pterm.Warning.Println("Session ended")
				return nil
			}
			return err
		}

		if choice == menuQuit {
			if len(s.ledger.List()) > 0 {
				pterm.Warning.Println("All recorded transactions will be discarded (no persistence)")
			}
			confirmed, err := prompts.PromptConfirm("Quit and discard session data?", true)
			if err != nil || !confirmed {
				continue
			}
			return nil
		}

		if err := actions[choice](); err != nil {
			if errhandler.IsInterrupt(err) {
				pterm.Warning.Println("Cancelled")
				continue
			}
			pterm.Error.Println(capitalize(err.Error()))
		}
	}
}

func (s *Session) currency() string {
	return s.cfg.Defaults.Currency
}

func (s *Session) recordTransaction() error {
	ui.PrintL2Title("New Transaction")

	input, err := prompts.PromptTransactionForm()
	if err != nil {
		return err
	}

	tx, err := s.ledger.Apply(input)
	if err != nil {
		return err
	}

	views.RenderApplied(tx, s.currency())
	return nil
}

func (s *Session) listTransactions() error {
	views.RenderTransactionList(s.ledger.List(), s.currency())
	return nil
}

func (s *Session) editTransaction() error {
	tx, err := s.pickTransaction("Transaction ID to edit:")
	if err != nil || tx == nil {
		return err
	}

	views.RenderTransactionDetail(tx, s.currency())
	pterm.Info.Println("Press Enter to keep the current value")

	description, err := prompts.PromptInput("Description:", tx.Description, nil)
	if err != nil {
		return err
	}

	amountStr, err := prompts.PromptAmount(
		"Amount:",
		fmt.Sprintf("Current: %s", utils.FormatAmount(tx.Amount, s.currency())),
		func(v string) error {
			if v == "" {
				return nil
			}
			d, err := utils.ParseAmount(v)
			if err != nil {
				return err
			}
			if !d.IsPositive() {
				return fmt.Errorf("amount must be greater than 0")
			}
			return nil
		},
	)
	if err != nil {
		return err
	}

	reference, err := prompts.PromptInput("Reference:", tx.Reference, nil)
	if err != nil {
		return err
	}

	edit := ledger.Edit{}
	if description != tx.Description {
		edit.Description = &description
	}
	if amountStr != "" {
		amount, err := utils.ParseAmount(amountStr)
		if err != nil {
			return err
		}
		edit.Amount = &amount
	}
	if reference != tx.Reference {
		edit.Reference = &reference
	}

	updated, err := s.ledger.Edit(tx.ID, edit)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Transaction #%d updated\n", updated.ID)
	ui.Separator()
	return nil
}

func (s *Session) deleteTransaction() error {
	tx, err := s.pickTransaction("Transaction ID to delete:")
	if err != nil || tx == nil {
		return err
	}

	views.RenderTransactionDetail(tx, s.currency())
	pterm.Warning.Println("Deleting reverses this transaction's effect on both accounts")

	var confirmation bool
	confirmPrompt := &survey.Confirm{
		Message: "Do you want to delete this transaction?",
		Default: false,
	}
	if err := survey.AskOne(confirmPrompt, &confirmation, surveyOpts...); err != nil {
		return err
	}

	if !confirmation {
		pterm.Info.Println("Deletion cancelled")
		return nil
	}

	if err := s.ledger.Delete(tx.ID); err != nil {
		return err
	}

	pterm.Success.Printf("Transaction #%d deleted\n", tx.ID)
	ui.Separator()
	return nil
}

func (s *Session) setOpeningBalance() error {
	ui.PrintL2Title("Opening Balances")

	if len(s.ledger.List()) > 0 {
		pterm.Warning.Println("Transactions already exist: an opening-balance write is not a transaction and may unbalance the books")
	}

	account, err := prompts.PromptAccount("Account:")
	if err != nil {
		return err
	}

	current := s.ledger.Balance(account)
	valueStr, err := prompts.PromptAmount(
		fmt.Sprintf("Opening balance for %s:", account),
		fmt.Sprintf("Current: %s (value overwrites, it does not add)", utils.FormatAmount(current, s.currency())),
		func(v string) error {
			_, err := utils.ParseAmount(v)
			return err
		},
	)
	if err != nil {
		return err
	}

	value, err := utils.ParseAmount(valueStr)
	if err != nil {
		return err
	}

	if err := s.ledger.SetOpeningBalance(account, value); err != nil {
		return err
	}

	pterm.Success.Printf("%s set to %s\n", account, utils.FormatAmount(value, s.currency()))
	views.RenderVerification(statement.Check(s.gen), s.currency())
	return nil
}

func (s *Session) editEntityInfo() error {
	ui.PrintL2Title("Entity Info")

	name, err := prompts.PromptInput("Entity (bank) name:", s.cfg.Entity.Name, nil)
	if err != nil {
		return err
	}
	period, err := prompts.PromptInput("Reporting period:", s.cfg.Entity.Period, nil)
	if err != nil {
		return err
	}

	s.cfg.Entity.Name = name
	s.cfg.Entity.Period = period
	pterm.Success.Println("Entity info updated")
	return nil
}

func (s *Session) showStatements() error {
	views.RenderBalanceSheet(s.gen.BalanceSheet(), statement.Check(s.gen), s.currency())
	views.RenderIncomeStatement(s.gen.IncomeStatement(), s.currency())
	views.RenderCashFlow(s.gen.CashFlow(), s.currency())
	return nil
}

func (s *Session) verifyBalance() error {
	views.RenderVerification(statement.Check(s.gen), s.currency())
	return nil
}

func (s *Session) exportReport() error {
	builder := report.NewBuilder(s.ledger, report.Meta{
		EntityName: s.cfg.Entity.Name,
		Period:     s.cfg.Entity.Period,
		Currency:   s.currency(),
	})

	defaultName := report.DefaultFilename(time.Now())
	filename, err := prompts.PromptInput("Report filename:", defaultName, nil)
	if err != nil {
		return err
	}

	path := filepath.Join(s.cfg.Report.OutputDir, filename)

	spinner, _ := pterm.DefaultSpinner.Start("Writing " + path)
	if err := builder.Save(path); err != nil {
		spinner.Fail(err.Error())
		return err
	}
	spinner.Success("Report written to " + path)

	return nil
}

// pickTransaction lists the journal and resolves a user-entered ID.
// A nil transaction with nil error means there is nothing to pick.
func (s *Session) pickTransaction(message string) (*ledger.Transaction, error) {
	transactions := s.ledger.List()
	if len(transactions) == 0 {
		pterm.Info.Println("No transactions recorded yet")
		return nil, nil
	}

	views.RenderTransactionList(transactions, s.currency())

	idStr, err := prompts.PromptInput(message, "", func(v string) error {
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			return fmt.Errorf("enter a numeric transaction ID")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction ID: %s", idStr)
	}

	return s.ledger.Get(id)
}
