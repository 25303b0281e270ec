package v1_test

import (
	"net/http"

	v1 "github.com/agenda-pro/backend/internal/controllers/v1"
	"github.com/agenda-pro/backend/internal/models"
	"github.com/agenda-pro/backend/internal/types"
	"github.com/agenda-pro/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) getDashboard(date string) v1.Dashboard {
	url := "http://example.com/v1/dashboard"
	if date != "" {
		url += "?date=" + date
	}

	r := test.Request(suite.T(), suite.db, http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	return *response.Data
}

func (suite *TestSuiteStandard) TestOptionsDashboard() {
	r := test.Request(suite.T(), suite.db, http.MethodOptions, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetDashboardEmpty() {
	dashboard := suite.getDashboard("2024-03-05")

	assert.Equal(suite.T(), types.NewDate(2024, 3, 3), dashboard.Week.Start)
	assert.Equal(suite.T(), types.NewDate(2024, 3, 9), dashboard.Week.End)
	assert.True(suite.T(), dashboard.Week.Earned.IsZero())
	assert.True(suite.T(), dashboard.MonthEarned.IsZero())
	assert.True(suite.T(), dashboard.Totals.Balance.IsZero())
	assert.Len(suite.T(), dashboard.Sparkline, 12)
	assert.Empty(suite.T(), dashboard.Upcoming)
	assert.Nil(suite.T(), dashboard.WeekProgress, "progress must be omitted when no goal is set")
	assert.Nil(suite.T(), dashboard.MonthProgress)
}

func (suite *TestSuiteStandard) TestGetDashboardInvalidDate() {
	r := test.Request(suite.T(), suite.db, http.MethodGet, "http://example.com/v1/dashboard?date=banana", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetDashboard() {
	// Earnings in the week of the reference date
	suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeIncome, Value: decimal.NewFromInt(250), Date: types.NewDate(2024, 3, 4)})

	// Earnings in the month, but not in the week
	suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeIncome, Value: decimal.NewFromInt(100), Date: types.NewDate(2024, 3, 15)})

	// Expense and pending income
	suite.createTestTransaction(v1.TransactionEditable{Type: models.TransactionTypeExpense, Value: decimal.NewFromInt(30), Date: types.NewDate(2024, 3, 6)})
	suite.createTestEvent(v1.EventEditable{Title: "Reforma", Earnings: decimal.NewFromInt(800), Date: types.NewDate(2024, 3, 20)})

	suite.setTestGoal(v1.GoalEditable{Period: models.GoalPeriodWeek, Amount: decimal.NewFromInt(500)})

	dashboard := suite.getDashboard("2024-03-05")

	assert.True(suite.T(), dashboard.Week.Earned.Equal(decimal.NewFromInt(250)), "week earned is %s", dashboard.Week.Earned)
	assert.True(suite.T(), dashboard.MonthEarned.Equal(decimal.NewFromInt(350)), "month earned is %s", dashboard.MonthEarned)

	assert.True(suite.T(), dashboard.Totals.Income.Equal(decimal.NewFromInt(350)))
	assert.True(suite.T(), dashboard.Totals.Expenses.Equal(decimal.NewFromInt(30)))
	assert.True(suite.T(), dashboard.Totals.Receivable.Equal(decimal.NewFromInt(800)))
	assert.True(suite.T(), dashboard.Totals.Balance.Equal(decimal.NewFromInt(320)))

	require.Len(suite.T(), dashboard.Sparkline, 12)
	assert.True(suite.T(), dashboard.Sparkline[11].Balance.Equal(decimal.NewFromInt(320)))

	require.Len(suite.T(), dashboard.Upcoming, 1)
	assert.Equal(suite.T(), "Reforma", dashboard.Upcoming[0].Title)

	require.NotNil(suite.T(), dashboard.WeekProgress)
	assert.Equal(suite.T(), int64(50), dashboard.WeekProgress.Percent)
	assert.Equal(suite.T(), models.GoalTierPastHalfway, dashboard.WeekProgress.Tier)
	assert.Nil(suite.T(), dashboard.MonthProgress)
}

func (suite *TestSuiteStandard) TestGetDashboardUpcomingLimit() {
	for i := 0; i < 7; i++ {
		suite.createTestEvent(v1.EventEditable{Date: types.NewDate(2024, 3, 10+i)})
	}

	dashboard := suite.getDashboard("2024-03-05")
	assert.Len(suite.T(), dashboard.Upcoming, 5)
}

// TestDashboardScenario walks through the life of a single service: it is
// scheduled with earnings, shows up as pending income, and becomes realized
// income counting towards the goal once it is completed.
func (suite *TestSuiteStandard) TestDashboardScenario() {
	event := suite.createTestEvent(v1.EventEditable{
		Title:    "Pintura",
		Client:   "Maria Souza",
		Date:     types.NewDate(2024, 3, 5),
		Earnings: decimal.NewFromInt(500),
	})

	suite.setTestGoal(v1.GoalEditable{Period: models.GoalPeriodMonth, Amount: decimal.NewFromInt(1000)})

	// While scheduled, the earnings are pending income
	dashboard := suite.getDashboard("2024-03-05")
	assert.True(suite.T(), dashboard.Totals.Receivable.Equal(decimal.NewFromInt(500)))
	assert.True(suite.T(), dashboard.MonthEarned.IsZero())

	require.NotNil(suite.T(), dashboard.MonthProgress)
	assert.Equal(suite.T(), int64(0), dashboard.MonthProgress.Percent)
	assert.Equal(suite.T(), models.GoalTierStart, dashboard.MonthProgress.Tier)

	// Complete the service
	r := test.Request(suite.T(), suite.db, http.MethodPatch, event.Data.Links.Self, map[string]any{
		"status": models.EventStatusDone,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// The earnings are now realized and count towards the goal
	dashboard = suite.getDashboard("2024-03-05")
	assert.True(suite.T(), dashboard.Totals.Receivable.IsZero())
	assert.True(suite.T(), dashboard.Totals.Income.Equal(decimal.NewFromInt(500)))
	assert.True(suite.T(), dashboard.MonthEarned.Equal(decimal.NewFromInt(500)))

	require.NotNil(suite.T(), dashboard.MonthProgress)
	assert.Equal(suite.T(), int64(50), dashboard.MonthProgress.Percent)
	assert.Equal(suite.T(), models.GoalTierPastHalfway, dashboard.MonthProgress.Tier)
}
