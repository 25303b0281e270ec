package models

import (
	"github.com/agenda-pro/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthReport is the printable month summary: every service of the month
// with its earnings, the ledger entries grouped by type, and the per-type
// totals.
type MonthReport struct {
	Month          types.Month
	ServiceRevenue decimal.Decimal // Sum of the earnings of the month's services
	Totals         Totals          // Per-type sums scoped to the month
	Events         []Event
	Income         []Transaction
	Expenses       []Transaction
	Receivable     []Transaction
}

// ReportForMonth assembles the report for a calendar month. It is a pure
// read over both collections.
func ReportForMonth(db *gorm.DB, month types.Month) (MonthReport, error) {
	report := MonthReport{
		Month:          month,
		ServiceRevenue: decimal.Zero,
	}

	err := db.
		Where("date(events.date) >= date(?)", month.FirstDay()).
		Where("date(events.date) <= date(?)", month.LastDay()).
		Order("date(events.date) ASC, events.time ASC").
		Find(&report.Events).Error
	if err != nil {
		return MonthReport{}, err
	}

	for _, event := range report.Events {
		if event.IsReminder {
			continue
		}

		report.ServiceRevenue = report.ServiceRevenue.Add(event.Earnings)
	}

	var transactions []Transaction
	err = db.
		Where("date(transactions.date) >= date(?)", month.FirstDay()).
		Where("date(transactions.date) <= date(?)", month.LastDay()).
		Order("date(transactions.date) ASC").
		Find(&transactions).Error
	if err != nil {
		return MonthReport{}, err
	}

	report.Totals.Income = decimal.Zero
	report.Totals.Expenses = decimal.Zero
	report.Totals.Receivable = decimal.Zero

	for _, transaction := range transactions {
		switch transaction.Type {
		case TransactionTypeIncome:
			report.Income = append(report.Income, transaction)
			report.Totals.Income = report.Totals.Income.Add(transaction.Value)
		case TransactionTypeExpense:
			report.Expenses = append(report.Expenses, transaction)
			report.Totals.Expenses = report.Totals.Expenses.Add(transaction.Value)
		case TransactionTypeReceivable:
			report.Receivable = append(report.Receivable, transaction)
			report.Totals.Receivable = report.Totals.Receivable.Add(transaction.Value)
		}
	}

	report.Totals.Balance = report.Totals.Income.Sub(report.Totals.Expenses)
	return report, nil
}
