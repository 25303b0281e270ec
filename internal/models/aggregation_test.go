package models_test

import (
	"github.com/agenda-pro/backend/internal/models"
	"github.com/agenda-pro/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestWeekBounds() {
	tests := []struct {
		name  string
		ref   types.Date
		start types.Date
		end   types.Date
	}{
		{"midweek", types.NewDate(2024, 3, 5), types.NewDate(2024, 3, 3), types.NewDate(2024, 3, 9)},
		{"sunday", types.NewDate(2024, 3, 3), types.NewDate(2024, 3, 3), types.NewDate(2024, 3, 9)},
		{"saturday", types.NewDate(2024, 3, 9), types.NewDate(2024, 3, 3), types.NewDate(2024, 3, 9)},
		{"across months", types.NewDate(2024, 4, 2), types.NewDate(2024, 3, 31), types.NewDate(2024, 4, 6)},
	}

	for _, tt := range tests {
		start, end := models.WeekBounds(tt.ref)
		assert.Equal(suite.T(), tt.start, start, "wrong start for %s", tt.name)
		assert.Equal(suite.T(), tt.end, end, "wrong end for %s", tt.name)
	}
}

func (suite *TestSuiteStandard) TestWeekEarned() {
	// Inside the week of 2024-03-05
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Value: decimal.NewFromInt(100), Date: types.NewDate(2024, 3, 3)})
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Value: decimal.NewFromInt(50), Date: types.NewDate(2024, 3, 9)})

	// Not income
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeExpense, Value: decimal.NewFromInt(30), Date: types.NewDate(2024, 3, 5)})
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeReceivable, Value: decimal.NewFromInt(500), Date: types.NewDate(2024, 3, 5)})

	// Outside of the week
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Value: decimal.NewFromInt(999), Date: types.NewDate(2024, 3, 10)})

	earned, err := models.WeekEarned(suite.db, types.NewDate(2024, 3, 5))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), earned.Equal(decimal.NewFromInt(150)), "earned is %s", earned)
}

func (suite *TestSuiteStandard) TestMonthEarned() {
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Value: decimal.NewFromInt(100), Date: types.NewDate(2024, 3, 1)})
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Value: decimal.NewFromInt(200), Date: types.NewDate(2024, 3, 31)})
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Value: decimal.NewFromInt(999), Date: types.NewDate(2024, 4, 1)})

	earned, err := models.MonthEarned(suite.db, types.NewMonth(2024, 3))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), earned.Equal(decimal.NewFromInt(300)), "earned is %s", earned)
}

func (suite *TestSuiteStandard) TestMonthEarnedEmpty() {
	earned, err := models.MonthEarned(suite.db, types.NewMonth(2024, 3))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), earned.IsZero())
}

func (suite *TestSuiteStandard) TestSparkline() {
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Value: decimal.NewFromInt(100), Date: types.NewDate(2024, 3, 1)})
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeExpense, Value: decimal.NewFromInt(30), Date: types.NewDate(2024, 3, 15)})
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Value: decimal.NewFromInt(50), Date: types.NewDate(2024, 4, 1)})

	points, err := models.Sparkline(suite.db, types.NewMonth(2024, 4))
	require.Nil(suite.T(), err)
	require.Len(suite.T(), points, 12)

	// Oldest month first
	assert.Equal(suite.T(), types.NewMonth(2023, 5), points[0].Month)
	assert.Equal(suite.T(), types.NewMonth(2024, 4), points[11].Month)

	march := points[10]
	assert.Equal(suite.T(), types.NewMonth(2024, 3), march.Month)
	assert.True(suite.T(), march.Balance.Equal(decimal.NewFromInt(70)), "march balance is %s", march.Balance)

	april := points[11]
	assert.True(suite.T(), april.Balance.Equal(decimal.NewFromInt(50)), "april balance is %s", april.Balance)

	// Months without transactions are zero
	assert.True(suite.T(), points[0].Balance.IsZero())
}

func (suite *TestSuiteStandard) TestSparklineIgnoresReceivable() {
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeReceivable, Value: decimal.NewFromInt(500), Date: types.NewDate(2024, 3, 1)})

	points, err := models.Sparkline(suite.db, types.NewMonth(2024, 3))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), points[11].Balance.IsZero(), "pending income must not count as cash flow")
}

func (suite *TestSuiteStandard) TestLedgerTotals() {
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Value: decimal.NewFromInt(100), Date: types.NewDate(2023, 1, 1)})
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeIncome, Value: decimal.NewFromInt(200), Date: types.NewDate(2024, 3, 1)})
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeExpense, Value: decimal.NewFromInt(50), Date: types.NewDate(2024, 3, 2)})
	suite.createTestTransaction(models.Transaction{Type: models.TransactionTypeReceivable, Value: decimal.NewFromInt(500), Date: types.NewDate(2024, 3, 3)})

	totals, err := models.LedgerTotals(suite.db)
	require.Nil(suite.T(), err)

	assert.True(suite.T(), totals.Income.Equal(decimal.NewFromInt(300)))
	assert.True(suite.T(), totals.Expenses.Equal(decimal.NewFromInt(50)))
	assert.True(suite.T(), totals.Receivable.Equal(decimal.NewFromInt(500)))
	assert.True(suite.T(), totals.Balance.Equal(decimal.NewFromInt(250)), "balance must not include pending income")
}

func (suite *TestSuiteStandard) TestLedgerTotalsEmpty() {
	totals, err := models.LedgerTotals(suite.db)
	require.Nil(suite.T(), err)

	assert.True(suite.T(), totals.Income.IsZero())
	assert.True(suite.T(), totals.Expenses.IsZero())
	assert.True(suite.T(), totals.Receivable.IsZero())
	assert.True(suite.T(), totals.Balance.IsZero())
}
