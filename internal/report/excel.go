// Package report renders the session's ledger and statements as a
// styled Excel workbook: a cover sheet, the journal, and the three
// financial statements.
package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/prasetya/neraca/internal/ledger"
	"github.com/prasetya/neraca/internal/statement"
)

const (
	SheetCover           = "Cover"
	SheetJournal         = "Journal"
	SheetBalanceSheet    = "Balance Sheet"
	SheetIncomeStatement = "Income Statement"
	SheetCashFlow        = "Cash Flow"
)

const (
	headerColor    = "1F4E78"
	highlightColor = "D4E6F1"
)

// Meta carries the entity information shown on every sheet.
type Meta struct {
	EntityName string
	Period     string
	Currency   string
}

// Builder assembles the workbook from ledger state.
type Builder struct {
	ledger *ledger.Ledger
	gen    *statement.Generator
	meta   Meta
	now    func() time.Time
}

// NewBuilder returns a workbook builder over the given ledger.
func NewBuilder(l *ledger.Ledger, meta Meta) *Builder {
	return &Builder{
		ledger: l,
		gen:    statement.NewGenerator(l),
		meta:   meta,
		now:    time.Now,
	}
}

// DefaultFilename is the report filename used when the user supplies
// none: financial_report_YYYYMMDD_HHMMSS.xlsx.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("financial_report_%s.xlsx", now.Format("20060102_150405"))
}

type styles struct {
	title     int
	header    int
	currency  int
	total     int
	totalText int
}

// Build assembles the workbook in memory. The caller owns the returned
// file and must Close or SaveAs it.
func (b *Builder) Build() (*excelize.File, error) {
	f := excelize.NewFile()

	st, err := newStyles(f, b.meta.Currency)
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", SheetCover); err != nil {
		return nil, err
	}

	b.buildCover(f, st)
	if err := b.buildJournal(f, st); err != nil {
		return nil, err
	}
	if err := b.buildBalanceSheet(f, st); err != nil {
		return nil, err
	}
	if err := b.buildIncomeStatement(f, st); err != nil {
		return nil, err
	}
	if err := b.buildCashFlow(f, st); err != nil {
		return nil, err
	}

	if idx, err := f.GetSheetIndex(SheetCover); err == nil {
		f.SetActiveSheet(idx)
	}

	return f, nil
}

// Save builds the workbook and writes it to path.
func (b *Builder) Save(path string) error {
	f, err := b.Build()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func newStyles(f *excelize.File, currency string) (styles, error) {
	var st styles
	var err error

	numFmt := "#,##0.00"
	if currency != "" {
		numFmt = fmt.Sprintf("%q #,##0.00", currency)
	}

	st.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16, Color: headerColor},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return st, err
	}

	st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return st, err
	}

	st.currency, err = f.NewStyle(&excelize.Style{
		CustomNumFmt: &numFmt,
		Alignment:    &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return st, err
	}

	st.total, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Fill:         excelize.Fill{Type: "pattern", Color: []string{highlightColor}, Pattern: 1},
		CustomNumFmt: &numFmt,
		Alignment:    &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return st, err
	}

	st.totalText, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{highlightColor}, Pattern: 1},
	})
	if err != nil {
		return st, err
	}

	return st, nil
}

func (b *Builder) period() string {
	if b.meta.Period != "" {
		return b.meta.Period
	}
	return b.now().Format("January 2006")
}

func (b *Builder) entityName() string {
	if b.meta.EntityName != "" {
		return b.meta.EntityName
	}
	return "Financial Report"
}

func (b *Builder) buildCover(f *excelize.File, st styles) {
	sheet := SheetCover

	f.MergeCell(sheet, "B2", "E2")
	f.SetCellValue(sheet, "B2", b.entityName())
	f.SetCellStyle(sheet, "B2", "B2", st.title)

	f.MergeCell(sheet, "B3", "E3")
	f.SetCellValue(sheet, "B3", "Financial Statements")

	f.SetCellValue(sheet, "B5", "Period")
	f.SetCellValue(sheet, "C5", b.period())
	f.SetCellValue(sheet, "B6", "Generated")
	f.SetCellValue(sheet, "C6", b.now().Format("2006-01-02 15:04:05"))
	f.SetCellValue(sheet, "B7", "Transactions")
	f.SetCellValue(sheet, "C7", len(b.ledger.List()))
	f.SetCellValue(sheet, "B8", "Net Income")
	f.SetCellValue(sheet, "C8", cellValue(b.gen.NetIncome()))
	f.SetCellStyle(sheet, "C8", "C8", st.currency)

	check := statement.Check(b.gen)
	f.SetCellValue(sheet, "B9", "Books Balanced")
	if check.Balanced {
		f.SetCellValue(sheet, "C9", "Yes")
	} else {
		f.SetCellValue(sheet, "C9", fmt.Sprintf("No (difference %s)", check.Difference.StringFixed(2)))
	}

	f.SetColWidth(sheet, "B", "B", 18)
	f.SetColWidth(sheet, "C", "E", 24)
}

func (b *Builder) buildJournal(f *excelize.File, st styles) error {
	sheet := SheetJournal
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"ID", "Date", "Category", "Description", "Debit", "Credit", "Amount", "Reference", "Notes"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A1", "I1", st.header)

	row := 2
	for _, tx := range b.ledger.List() {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), tx.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), tx.Date.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), string(tx.Category))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), tx.Description)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), string(tx.Debit))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), string(tx.Credit))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), cellValue(tx.Amount))
		f.SetCellStyle(sheet, fmt.Sprintf("G%d", row), fmt.Sprintf("G%d", row), st.currency)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), tx.Reference)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), tx.Notes)
		row++
	}

	f.SetColWidth(sheet, "A", "A", 6)
	f.SetColWidth(sheet, "B", "C", 14)
	f.SetColWidth(sheet, "D", "D", 32)
	f.SetColWidth(sheet, "E", "F", 16)
	f.SetColWidth(sheet, "G", "G", 18)
	f.SetColWidth(sheet, "H", "I", 14)

	return nil
}

func (b *Builder) buildBalanceSheet(f *excelize.File, st styles) error {
	sheet := SheetBalanceSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	bs := b.gen.BalanceSheet()

	b.sheetTitle(f, sheet, st, "BALANCE SHEET")

	row := 5
	row = writeSection(f, sheet, st, row, "ASSETS", bs.Assets, "Total Assets", bs.TotalAssets)
	row++
	row = writeSection(f, sheet, st, row, "LIABILITIES", bs.Liabilities, "Total Liabilities", bs.TotalLiabilities)
	row++

	row = writeLines(f, sheet, st, row, "EQUITY", bs.Equity)
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Net Income (current period)")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), cellValue(bs.NetIncome))
	f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), st.currency)
	row++
	writeTotal(f, sheet, st, row, "Total Equity", bs.TotalEquity)
	row += 2

	writeTotal(f, sheet, st, row, "TOTAL LIABILITIES + EQUITY", bs.TotalLiabilitiesAndEquity)
	row += 2

	check := statement.Check(b.gen)
	if check.Balanced {
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "✓ Balanced (Assets = Liabilities + Equity)")
	} else {
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row),
			fmt.Sprintf("✗ Not balanced (difference: %s)", check.Difference.StringFixed(2)))
	}

	b.statementColumns(f, sheet)
	return nil
}

func (b *Builder) buildIncomeStatement(f *excelize.File, st styles) error {
	sheet := SheetIncomeStatement
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	is := b.gen.IncomeStatement()

	b.sheetTitle(f, sheet, st, "INCOME STATEMENT")

	row := 5
	row = writeSection(f, sheet, st, row, "INCOME", is.Income, "Total Income", is.TotalIncome)
	row++
	row = writeSection(f, sheet, st, row, "EXPENSES", is.Expenses, "Total Expenses", is.TotalExpense)
	row++

	writeTotal(f, sheet, st, row, "NET INCOME", is.NetIncome)
	row += 2

	if is.Profit {
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Result: PROFIT")
	} else {
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Result: LOSS")
	}

	b.statementColumns(f, sheet)
	return nil
}

func (b *Builder) buildCashFlow(f *excelize.File, st styles) error {
	sheet := SheetCashFlow
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	cf := b.gen.CashFlow()

	b.sheetTitle(f, sheet, st, "CASH FLOW STATEMENT")

	sections := []struct {
		label string
		value decimal.Decimal
	}{
		{"Net cash from operating activities", cf.Operating},
		{"Net cash from investing activities", cf.Investing},
		{"Net cash from financing activities", cf.Financing},
	}

	row := 5
	for _, s := range sections {
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), s.label)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), cellValue(s.value))
		f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), st.currency)
		row++
	}

	row++
	writeTotal(f, sheet, st, row, "NET CASH CHANGE", cf.NetCashChange)

	b.statementColumns(f, sheet)
	return nil
}

func (b *Builder) sheetTitle(f *excelize.File, sheet string, st styles, title string) {
	f.MergeCell(sheet, "B2", "E2")
	f.SetCellValue(sheet, "B2", title)
	f.SetCellStyle(sheet, "B2", "B2", st.title)

	f.MergeCell(sheet, "B3", "E3")
	f.SetCellValue(sheet, "B3", fmt.Sprintf("%s - %s", b.entityName(), b.period()))
}

func (b *Builder) statementColumns(f *excelize.File, sheet string) {
	f.SetColWidth(sheet, "A", "A", 3)
	f.SetColWidth(sheet, "B", "B", 36)
	f.SetColWidth(sheet, "C", "C", 3)
	f.SetColWidth(sheet, "D", "D", 22)
	f.SetColWidth(sheet, "E", "E", 3)
}

func writeLines(f *excelize.File, sheet string, st styles, row int, header string, items []statement.LineItem) int {
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), header)
	f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("D%d", row), st.header)
	row++

	for _, item := range items {
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), string(item.Account))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), cellValue(item.Amount))
		f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), st.currency)
		row++
	}
	return row
}

func writeSection(f *excelize.File, sheet string, st styles, row int, header string, items []statement.LineItem, totalLabel string, total decimal.Decimal) int {
	row = writeLines(f, sheet, st, row, header, items)
	writeTotal(f, sheet, st, row, totalLabel, total)
	return row + 1
}

func writeTotal(f *excelize.File, sheet string, st styles, row int, label string, total decimal.Decimal) {
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), label)
	f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), st.totalText)
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), cellValue(total))
	f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), st.total)
}

// cellValue converts a decimal amount for the spreadsheet cell. The
// xlsx cell holds a float; statement math stays decimal throughout.
func cellValue(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
