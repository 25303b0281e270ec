package models

import (
	"fmt"

	"github.com/agenda-pro/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// sparklineMonths is the number of calendar months in the sparkline series.
const sparklineMonths = 12

// Totals are the unscoped per-type sums over the whole ledger.
type Totals struct {
	Income     decimal.Decimal `json:"entradas" example:"1270.5"` // Sum of all realized income
	Expenses   decimal.Decimal `json:"saidas" example:"420"`      // Sum of all expenses
	Receivable decimal.Decimal `json:"aReceber" example:"500"`    // Sum of all pending income
	Balance    decimal.Decimal `json:"saldo" example:"850.5"`     // Income minus expenses
}

// SparklinePoint is the net balance of a single calendar month.
type SparklinePoint struct {
	Month   types.Month     `json:"month" example:"2024-03"`
	Balance decimal.Decimal `json:"balance" example:"70"`
}

// WeekBounds returns the first and last day of the week containing the
// reference date. Weeks run from Sunday to Saturday, both inclusive.
func WeekBounds(ref types.Date) (start, end types.Date) {
	start = ref.AddDate(0, 0, -int(ref.Weekday()))
	return start, start.AddDate(0, 0, 6)
}

// WeekEarned returns the sum of all realized income in the week containing
// the reference date.
func WeekEarned(db *gorm.DB, ref types.Date) (decimal.Decimal, error) {
	start, end := WeekBounds(ref)
	return sumTransactions(db, TransactionTypeIncome, start, end)
}

// MonthEarned returns the sum of all realized income in the calendar month.
func MonthEarned(db *gorm.DB, month types.Month) (decimal.Decimal, error) {
	return sumTransactions(db, TransactionTypeIncome, month.FirstDay(), month.LastDay())
}

// Sparkline returns the net balance for the last sparklineMonths calendar
// months ending at and including the given month, oldest first. The net
// balance of a month is realized income minus expenses; pending income is
// not counted as realized cash flow.
func Sparkline(db *gorm.DB, until types.Month) ([]SparklinePoint, error) {
	points := make([]SparklinePoint, 0, sparklineMonths)

	for i := sparklineMonths - 1; i >= 0; i-- {
		month := until.AddDate(0, -i)

		income, err := sumTransactions(db, TransactionTypeIncome, month.FirstDay(), month.LastDay())
		if err != nil {
			return nil, err
		}

		expenses, err := sumTransactions(db, TransactionTypeExpense, month.FirstDay(), month.LastDay())
		if err != nil {
			return nil, err
		}

		points = append(points, SparklinePoint{
			Month:   month,
			Balance: income.Sub(expenses),
		})
	}

	return points, nil
}

// LedgerTotals returns the per-type sums over the whole ledger, unscoped by
// date.
func LedgerTotals(db *gorm.DB) (Totals, error) {
	var totals Totals
	var err error

	totals.Income, err = sumTransactions(db, TransactionTypeIncome, types.Date{}, types.Date{})
	if err != nil {
		return Totals{}, err
	}

	totals.Expenses, err = sumTransactions(db, TransactionTypeExpense, types.Date{}, types.Date{})
	if err != nil {
		return Totals{}, err
	}

	totals.Receivable, err = sumTransactions(db, TransactionTypeReceivable, types.Date{}, types.Date{})
	if err != nil {
		return Totals{}, err
	}

	totals.Balance = totals.Income.Sub(totals.Expenses)
	return totals, nil
}

// sumTransactions returns the sum of the values of all transactions of the
// given type dated within [from, until]. Zero bounds are not applied, which
// makes the whole ledger the default window.
func sumTransactions(db *gorm.DB, t TransactionType, from, until types.Date) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	q := db.Model(&Transaction{}).Where("transactions.type = ?", t)

	if !from.IsZero() {
		q = q.Where("date(transactions.date) >= date(?)", from)
	}

	if !until.IsZero() {
		q = q.Where("date(transactions.date) <= date(?)", until)
	}

	err := q.Select("SUM(transactions.value)").Row().Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing %s transactions failed: %w", t, err)
	}

	return sum.Decimal, nil
}
