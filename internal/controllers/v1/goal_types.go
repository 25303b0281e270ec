package v1

import (
	"fmt"

	"github.com/agenda-pro/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Period models.GoalPeriod `json:"period" example:"week" enums:"week,month"`                                   // Period the goal covers
	Amount decimal.Decimal   `json:"amount" example:"1000" minimum:"0.00000001" maximum:"999999999999.99999999"` // Earnings target for the period, must be positive
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model() models.Goal {
	return models.Goal{
		Period: editable.Period,
		Amount: editable.Amount,
	}
}

type GoalLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/goals/week"`              // The goal itself
	Progress string `json:"progress" example:"https://example.com/api/v1/goals/week/progress"` // Progress towards the goal
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Links GoalLinks `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.ContextURL))

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Period: model.Period,
			Amount: model.Amount,
		},
		Links: GoalLinks{
			Self:     fmt.Sprintf("%s/v1/goals/%s", url, model.Period),
			Progress: fmt.Sprintf("%s/v1/goals/%s/progress", url, model.Period),
		},
	}
}

type GoalListResponse struct {
	Data  []Goal  `json:"data"`                                                 // List of resources
	Error *string `json:"error" example:"the specified goal period is invalid"` // The error, if any occurred
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified goal period is invalid"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                 // The resource
}

type GoalProgressResponse struct {
	Error *string              `json:"error" example:"the specified goal period is invalid"` // The error, if any occurred
	Data  *models.GoalProgress `json:"data"`                                                 // Progress towards the goal
}
