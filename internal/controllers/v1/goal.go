package v1

import (
	"net/http"

	"github.com/agenda-pro/backend/internal/httputil"
	"github.com/agenda-pro/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterGoalRoutes registers the routes for goals with
// the RouterGroup that is passed.
func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsGoals)
		r.GET("", co.GetGoals)
		r.POST("", co.SetGoal)
	}

	// Goal per period
	{
		r.OPTIONS("/:period", co.OptionsGoalDetail)
		r.GET("/:period", co.GetGoal)
		r.DELETE("/:period", co.DeleteGoal)
		r.GET("/:period/progress", co.GetGoalProgress)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals [options]
func (co Controller) OptionsGoals(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400		{object}	httpError
// @Param			period	path		string	true	"Goal period, \"week\" or \"month\""
// @Router			/v1/goals/{period} [options]
func (co Controller) OptionsGoalDetail(c *gin.Context) {
	_, err := models.ParseGoalPeriod(c.Param("period"))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Get goals
// @Description	Returns all configured goals
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Failure		500	{object}	GoalListResponse
// @Router			/v1/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	var goals []models.Goal
	err := co.DB.Order("goals.period ASC").Find(&goals).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Goal, 0)
	for _, goal := range goals {
		data = append(data, newGoal(c, goal))
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: data})
}

// @Summary		Set goal
// @Description	Sets the earnings goal for a period. There is one goal per period, setting it again replaces the target.
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals [post]
func (co Controller) SetGoal(c *gin.Context) {
	var editable GoalEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	goal, err := models.SetGoal(co.DB, editable.Period, editable.Amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	data := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &data})
}

// @Summary		Get goal
// @Description	Returns the goal for a period
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			period	path		string	true	"Goal period, \"week\" or \"month\""
// @Router			/v1/goals/{period} [get]
func (co Controller) GetGoal(c *gin.Context) {
	period, err := models.ParseGoalPeriod(c.Param("period"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	goal, err := models.GoalForPeriod(co.DB, period)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &e,
		})
		return
	}

	data := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &data})
}

// @Summary		Get goal progress
// @Description	Returns the progress towards the goal for a period. The period containing the reference date is evaluated.
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	GoalProgressResponse
// @Failure		400		{object}	GoalProgressResponse
// @Failure		404		{object}	GoalProgressResponse
// @Failure		500		{object}	GoalProgressResponse
// @Param			period	path		string	true	"Goal period, \"week\" or \"month\""
// @Param			date	query		string	false	"Reference date, formatted as YYYY-MM-DD. Defaults to today."
// @Router			/v1/goals/{period}/progress [get]
func (co Controller) GetGoalProgress(c *gin.Context) {
	period, err := models.ParseGoalPeriod(c.Param("period"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalProgressResponse{
			Error: &e,
		})
		return
	}

	ref, err := referenceDate(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, GoalProgressResponse{
			Error: &e,
		})
		return
	}

	progress, err := models.Progress(co.DB, period, ref)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalProgressResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, GoalProgressResponse{Data: &progress})
}

// @Summary		Delete goal
// @Description	Deletes the goal for a period
// @Tags			Goals
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			period	path		string	true	"Goal period, \"week\" or \"month\""
// @Router			/v1/goals/{period} [delete]
func (co Controller) DeleteGoal(c *gin.Context) {
	period, err := models.ParseGoalPeriod(c.Param("period"))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	goal, err := models.GoalForPeriod(co.DB, period)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.DB.Delete(&goal).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
