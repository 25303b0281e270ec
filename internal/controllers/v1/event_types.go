package v1

import (
	"fmt"

	"github.com/agenda-pro/backend/internal/models"
	"github.com/agenda-pro/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type EventEditable struct {
	Title       string             `json:"title" example:"Pintura residencial"`                                                  // Name of the service, required
	Client      string             `json:"client" example:"Maria Souza" default:""`                                              // Client the service is for
	Description string             `json:"description" example:"Pintura completa da sala e dos quartos" default:""`              // Note about the appointment
	Date        types.Date         `json:"date" example:"2024-03-05"`                                                            // Day the service is scheduled on, required
	Time        string             `json:"time" example:"09:00"`                                                                 // Clock time of the appointment, required
	Reminder    string             `json:"reminder" example:"08:30" default:""`                                                  // Optional reminder clock time
	IsReminder  bool               `json:"isReminder" example:"false" default:"false"`                                           // Reminder-only entries carry no earnings
	Earnings    decimal.Decimal    `json:"earnings" example:"500" minimum:"0" maximum:"999999999999.99999999" default:"0"`       // What the service earns, zero means no linked income
	Status      models.EventStatus `json:"status" example:"Agendado" enums:"Agendado,Em andamento,Concluído" default:"Agendado"` // Scheduling state of the service
}

// model returns the database resource for the API representation of the editable fields
func (editable EventEditable) model() models.Event {
	return models.Event{
		Title:       editable.Title,
		Client:      editable.Client,
		Description: editable.Description,
		Date:        editable.Date,
		Time:        editable.Time,
		Reminder:    editable.Reminder,
		IsReminder:  editable.IsReminder,
		Earnings:    editable.Earnings,
		Status:      editable.Status,
	}
}

type EventLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/events/d3c09b38-b6e5-4aa9-9f4b-36ef834cbaff"` // The event itself
}

type Event struct {
	models.DefaultModel
	EventEditable
	Links EventLinks `json:"links"`
}

// newEvent returns the API v1 representation of the resource
func newEvent(c *gin.Context, model models.Event) Event {
	url := c.GetString(string(models.ContextURL))

	return Event{
		DefaultModel: model.DefaultModel,
		EventEditable: EventEditable{
			Title:       model.Title,
			Client:      model.Client,
			Description: model.Description,
			Date:        model.Date,
			Time:        model.Time,
			Reminder:    model.Reminder,
			IsReminder:  model.IsReminder,
			Earnings:    model.Earnings,
			Status:      model.Status,
		},
		Links: EventLinks{
			Self: fmt.Sprintf("%s/v1/events/%s", url, model.ID),
		},
	}
}

type EventListResponse struct {
	Data       []Event     `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type EventCreateResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []EventResponse `json:"data"`                                                          // List of created resources
}

func (r *EventCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, EventResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type EventResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Event  `json:"data"`                                                          // The resource
}

type EventQueryFilter struct {
	Month      string `form:"month" filterField:"false"`     // Events in this calendar month, YYYY-MM
	FromDate   string `form:"fromDate" filterField:"false"`  // Events on or after this date
	UntilDate  string `form:"untilDate" filterField:"false"` // Events on or before this date
	Status     string `form:"status" filterField:"false"`    // By scheduling state
	Client     string `form:"client" filterField:"false"`    // By client name
	IsReminder bool   `form:"isReminder"`                    // Is the event reminder-only?
	Search     string `form:"search" filterField:"false"`    // Search for this text in title, client and description
	Offset     uint   `form:"offset" filterField:"false"`    // The offset of the first event returned. Defaults to 0.
	Limit      int    `form:"limit" filterField:"false"`     // Maximum number of events to return. Defaults to 50.
}

func (f EventQueryFilter) model() models.Event {
	return models.Event{
		IsReminder: f.IsReminder,
	}
}
