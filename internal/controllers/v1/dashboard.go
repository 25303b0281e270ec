package v1

import (
	"errors"
	"net/http"

	"github.com/agenda-pro/backend/internal/httputil"
	"github.com/agenda-pro/backend/internal/models"
	"github.com/agenda-pro/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// upcomingLimit is the number of upcoming events shown on the dashboard.
const upcomingLimit = 5

type DashboardWeek struct {
	Start  types.Date      `json:"start" example:"2024-03-03"` // First day of the week, Sunday
	End    types.Date      `json:"end" example:"2024-03-09"`   // Last day of the week, Saturday
	Earned decimal.Decimal `json:"earned" example:"250"`       // Realized income of the week
}

type Dashboard struct {
	Date          types.Month             `json:"month" example:"2024-03"`    // Month the dashboard is scoped to
	Week          DashboardWeek           `json:"week"`                       // The week containing the reference date
	MonthEarned   decimal.Decimal         `json:"monthEarned" example:"1270"` // Realized income of the month
	Totals        models.Totals           `json:"totals"`                     // Unscoped ledger totals
	Sparkline     []models.SparklinePoint `json:"sparkline"`                  // Net balance of the trailing twelve months
	Upcoming      []Event                 `json:"upcoming"`                   // The next scheduled events
	WeekProgress  *models.GoalProgress    `json:"weekProgress"`               // Progress towards the week goal, null if none is set
	MonthProgress *models.GoalProgress    `json:"monthProgress"`              // Progress towards the month goal, null if none is set
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                             // The dashboard
	Error *string    `json:"error" example:"parsing time \"banana\" as \"2006-01-02\" failed"` // The error, if any occurred
}

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsDashboard)
		r.GET("", co.GetDashboard)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func (co Controller) OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the derived views for the home screen in one call: week and month earnings, ledger totals, the trailing twelve month sparkline, upcoming events and goal progress.
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		400	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Param			date	query	string	false	"Reference date, formatted as YYYY-MM-DD. Defaults to today."
// @Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	ref, err := referenceDate(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{
			Error: &e,
		})
		return
	}

	month := ref.Month()
	start, end := models.WeekBounds(ref)

	weekEarned, err := models.WeekEarned(co.DB, ref)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	monthEarned, err := models.MonthEarned(co.DB, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	totals, err := models.LedgerTotals(co.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	sparkline, err := models.Sparkline(co.DB, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	events, err := models.UpcomingEvents(co.DB, ref)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	upcoming := make([]Event, 0, upcomingLimit)
	for _, event := range events {
		if len(upcoming) == upcomingLimit {
			break
		}

		upcoming = append(upcoming, newEvent(c, event))
	}

	data := Dashboard{
		Date: month,
		Week: DashboardWeek{
			Start:  start,
			End:    end,
			Earned: weekEarned,
		},
		MonthEarned: monthEarned,
		Totals:      totals,
		Sparkline:   sparkline,
		Upcoming:    upcoming,
	}

	// Goal progress is part of the dashboard only when a goal is configured
	for _, period := range []models.GoalPeriod{models.GoalPeriodWeek, models.GoalPeriodMonth} {
		progress, err := models.Progress(co.DB, period, ref)
		if err != nil {
			if errors.Is(err, models.ErrResourceNotFound) {
				continue
			}

			e := err.Error()
			c.JSON(status(err), DashboardResponse{
				Error: &e,
			})
			return
		}

		p := progress
		switch period {
		case models.GoalPeriodWeek:
			data.WeekProgress = &p
		case models.GoalPeriodMonth:
			data.MonthProgress = &p
		}
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}
