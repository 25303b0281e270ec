package v1

import (
	"net/http"

	"github.com/agenda-pro/backend/internal/httputil"
	"github.com/agenda-pro/backend/internal/models"
	"github.com/agenda-pro/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type MonthReport struct {
	Month          types.Month     `json:"month" example:"2024-03"`       // The month the report covers
	ServiceRevenue decimal.Decimal `json:"serviceRevenue" example:"1500"` // Sum of the earnings of the month's services
	Totals         models.Totals   `json:"totals"`                        // Per-type sums scoped to the month
	Events         []Event         `json:"events"`                        // Services scheduled in the month
	Income         []Transaction   `json:"income"`                        // Realized income of the month
	Expenses       []Transaction   `json:"expenses"`                      // Expenses of the month
	Receivable     []Transaction   `json:"receivable"`                    // Pending income of the month
}

// newMonthReport returns the API v1 representation of the report
func newMonthReport(c *gin.Context, model models.MonthReport) MonthReport {
	report := MonthReport{
		Month:          model.Month,
		ServiceRevenue: model.ServiceRevenue,
		Totals:         model.Totals,
		Events:         make([]Event, 0),
		Income:         make([]Transaction, 0),
		Expenses:       make([]Transaction, 0),
		Receivable:     make([]Transaction, 0),
	}

	for _, event := range model.Events {
		report.Events = append(report.Events, newEvent(c, event))
	}

	for _, transaction := range model.Income {
		report.Income = append(report.Income, newTransaction(c, transaction))
	}

	for _, transaction := range model.Expenses {
		report.Expenses = append(report.Expenses, newTransaction(c, transaction))
	}

	for _, transaction := range model.Receivable {
		report.Receivable = append(report.Receivable, newTransaction(c, transaction))
	}

	return report
}

type MonthReportResponse struct {
	Data  *MonthReport `json:"data"`                                                          // The report
	Error *string      `json:"error" example:"parsing time \"banana\" as \"2006-01\" failed"` // The error, if any occurred
}

// RegisterReportRoutes registers the routes for monthly reports with
// the RouterGroup that is passed.
func (co Controller) RegisterReportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/:month", co.OptionsReport)
		r.GET("/:month", co.GetReport)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Router			/v1/reports/{month} [options]
func (co Controller) OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get monthly report
// @Description	Returns the earnings and ledger summary for a calendar month, with the events and transactions that make it up.
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	MonthReportResponse
// @Failure		400		{object}	MonthReportResponse
// @Failure		500		{object}	MonthReportResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/reports/{month} [get]
func (co Controller) GetReport(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, MonthReportResponse{
			Error: &e,
		})
		return
	}

	report, err := models.ReportForMonth(co.DB, types.MonthOf(uri.Month))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), MonthReportResponse{
			Error: &e,
		})
		return
	}

	data := newMonthReport(c, report)
	c.JSON(http.StatusOK, MonthReportResponse{Data: &data})
}
