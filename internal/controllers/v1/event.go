package v1

import (
	"fmt"
	"net/http"

	"github.com/agenda-pro/backend/internal/httputil"
	"github.com/agenda-pro/backend/internal/models"
	"github.com/agenda-pro/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterEventRoutes registers the routes for events with
// the RouterGroup that is passed.
func (co Controller) RegisterEventRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsEvents)
		r.GET("", co.GetEvents)
		r.POST("", co.CreateEvents)
	}

	// Event with ID
	{
		r.OPTIONS("/:id", co.OptionsEventDetail)
		r.GET("/:id", co.GetEvent)
		r.PATCH("/:id", co.UpdateEvent)
		r.DELETE("/:id", co.DeleteEvent)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Router			/v1/events [options]
func (co Controller) OptionsEvents(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/events/{id} [options]
func (co Controller) OptionsEventDetail(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var event models.Event
	err = co.DB.First(&event, id).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get event
// @Description	Returns a specific event
// @Tags			Events
// @Produce		json
// @Success		200	{object}	EventResponse
// @Failure		400	{object}	EventResponse
// @Failure		404	{object}	EventResponse
// @Failure		500	{object}	EventResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/events/{id} [get]
func (co Controller) GetEvent(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &e,
		})
		return
	}

	var event models.Event
	err = co.DB.First(&event, id).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &e,
		})
		return
	}

	data := newEvent(c, event)
	c.JSON(http.StatusOK, EventResponse{Data: &data})
}

// @Summary		Get events
// @Description	Returns a list of events
// @Tags			Events
// @Produce		json
// @Success		200	{object}	EventListResponse
// @Failure		400	{object}	EventListResponse
// @Failure		500	{object}	EventListResponse
// @Router			/v1/events [get]
// @Param			month		query	string	false	"Events in this calendar month, formatted as YYYY-MM"
// @Param			fromDate	query	string	false	"Events at and after this date, formatted as YYYY-MM-DD"
// @Param			untilDate	query	string	false	"Events before and at this date, formatted as YYYY-MM-DD"
// @Param			status		query	string	false	"Filter by scheduling state"
// @Param			client		query	string	false	"Filter by client name"
// @Param			isReminder	query	bool	false	"Is the event reminder-only?"
// @Param			search		query	string	false	"Search for this text in title, client and description"
// @Param			offset		query	uint	false	"The offset of the first Event returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Events to return. Defaults to 50."
func (co Controller) GetEvents(c *gin.Context) {
	var filter EventQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, EventListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Convert the QueryFilter to a model for the query
	model := filter.model()

	q := co.DB.Order("date(events.date) ASC, events.time ASC").Where(&model, queryFields...)

	if filter.Month != "" {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, EventListResponse{
				Error: &e,
			})
			return
		}

		q = q.Where("date(events.date) >= date(?)", month.FirstDay()).Where("date(events.date) <= date(?)", month.LastDay())
	}

	if filter.FromDate != "" {
		fromDate, err := types.ParseDate(filter.FromDate)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, EventListResponse{
				Error: &e,
			})
			return
		}

		q = q.Where("date(events.date) >= date(?)", fromDate)
	}

	if filter.UntilDate != "" {
		untilDate, err := types.ParseDate(filter.UntilDate)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, EventListResponse{
				Error: &e,
			})
			return
		}

		q = q.Where("date(events.date) <= date(?)", untilDate)
	}

	if filter.Status != "" {
		q = q.Where("events.status = ?", filter.Status)
	}

	if filter.Client != "" {
		q = q.Where("events.client LIKE ?", fmt.Sprintf("%%%s%%", filter.Client))
	} else if slices.Contains(setFields, "Client") {
		q = q.Where("events.client = ''")
	}

	if filter.Search != "" {
		search := fmt.Sprintf("%%%s%%", filter.Search)
		q = q.Where("events.title LIKE ? OR events.client LIKE ? OR events.description LIKE ?", search, search, search)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 events and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var events []models.Event
	err := q.Find(&events).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Event, 0)
	for _, event := range events {
		data = append(data, newEvent(c, event))
	}

	c.JSON(http.StatusOK, EventListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create events
// @Description	Creates events from the list of submitted event data. The response code is the highest response code number that a single event creation would have caused. If it is not equal to 201, at least one event has an error.
// @Tags			Events
// @Produce		json
// @Success		201		{object}	EventCreateResponse
// @Failure		400		{object}	EventCreateResponse
// @Failure		500		{object}	EventCreateResponse
// @Param			events	body		[]EventEditable	true	"Events"
// @Router			/v1/events [post]
func (co Controller) CreateEvents(c *gin.Context) {
	var editables []EventEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := EventCreateResponse{}

	for _, editable := range editables {
		event := editable.model()
		err := co.DB.Create(&event).Error
		// Append the error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newEvent(c, event)
		r.Data = append(r.Data, EventResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update event
// @Description	Updates an existing event. Only values to be updated need to be specified. The linked ledger entry is kept in step with the new earnings and status.
// @Tags			Events
// @Accept			json
// @Produce		json
// @Success		200		{object}	EventResponse
// @Failure		400		{object}	EventResponse
// @Failure		404		{object}	EventResponse
// @Failure		500		{object}	EventResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			event	body		EventEditable	true	"Event"
// @Router			/v1/events/{id} [patch]
func (co Controller) UpdateEvent(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &e,
		})
		return
	}

	var event models.Event
	err = co.DB.First(&event, id).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, EventEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &e,
		})
		return
	}

	// Bind the update for the patch
	var update EventEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &e,
		})
		return
	}

	err = co.DB.Model(&event).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{
			Error: &e,
		})
		return
	}

	data := newEvent(c, event)
	c.JSON(http.StatusOK, EventResponse{Data: &data})
}

// @Summary		Delete event
// @Description	Deletes an event. The ledger entry derived from it is deleted with it.
// @Tags			Events
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/events/{id} [delete]
func (co Controller) DeleteEvent(c *gin.Context) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var event models.Event
	err = co.DB.First(&event, id).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.DB.Delete(&event).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
