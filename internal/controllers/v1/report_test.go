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

func (suite *TestSuiteStandard) TestOptionsReport() {
	r := test.Request(suite.T(), suite.db, http.MethodOptions, "http://example.com/v1/reports/2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetReport() {
	suite.createTestEvent(v1.EventEditable{
		Title:    "Pintura",
		Client:   "Maria Souza",
		Date:     types.NewDate(2024, 3, 5),
		Earnings: decimal.NewFromInt(500),
		Status:   models.EventStatusDone,
	})

	suite.createTestTransaction(v1.TransactionEditable{
		Type:        models.TransactionTypeExpense,
		Value:       decimal.NewFromInt(120),
		Date:        types.NewDate(2024, 3, 8),
		Description: "Compra de tintas",
	})

	// Outside of the month
	suite.createTestTransaction(v1.TransactionEditable{
		Type:  models.TransactionTypeIncome,
		Value: decimal.NewFromInt(999),
		Date:  types.NewDate(2024, 4, 1),
	})

	r := test.Request(suite.T(), suite.db, http.MethodGet, "http://example.com/v1/reports/2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	report := response.Data
	require.NotNil(suite.T(), report)

	assert.Equal(suite.T(), types.NewMonth(2024, 3), report.Month)
	assert.True(suite.T(), report.ServiceRevenue.Equal(decimal.NewFromInt(500)))

	require.Len(suite.T(), report.Events, 1)
	require.Len(suite.T(), report.Income, 1)
	require.Len(suite.T(), report.Expenses, 1)
	assert.Empty(suite.T(), report.Receivable)

	assert.Equal(suite.T(), "Pintura - Maria Souza (Agenda)", report.Income[0].Description)
	assert.True(suite.T(), report.Totals.Balance.Equal(decimal.NewFromInt(380)))
}

func (suite *TestSuiteStandard) TestGetReportEmpty() {
	r := test.Request(suite.T(), suite.db, http.MethodGet, "http://example.com/v1/reports/2024-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Empty(suite.T(), response.Data.Events)
	assert.True(suite.T(), response.Data.Totals.Balance.IsZero())
}

func (suite *TestSuiteStandard) TestGetReportInvalidMonth() {
	r := test.Request(suite.T(), suite.db, http.MethodGet, "http://example.com/v1/reports/banana", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
