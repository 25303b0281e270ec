package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/agenda-pro/backend/internal/controllers/v1"
	"github.com/agenda-pro/backend/internal/models"
	"github.com/agenda-pro/backend/internal/types"
	"github.com/agenda-pro/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestEvent creates an event via the API and returns the response.
func (suite *TestSuiteStandard) createTestEvent(e v1.EventEditable, expectedStatus ...int) v1.EventResponse {
	if e.Title == "" {
		e.Title = "Corte de cabelo"
	}

	if e.Time == "" {
		e.Time = "09:00"
	}

	if e.Date.IsZero() {
		e.Date = types.NewDate(2024, 3, 5)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.EventEditable{e}

	r := test.Request(suite.T(), suite.db, http.MethodPost, "http://example.com/v1/events", body)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var response v1.EventCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.EventResponse{}
}

func (suite *TestSuiteStandard) TestOptionsEvents() {
	r := test.Request(suite.T(), suite.db, http.MethodOptions, "http://example.com/v1/events", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsEventDetail() {
	event := suite.createTestEvent(v1.EventEditable{})

	r := test.Request(suite.T(), suite.db, http.MethodOptions, event.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsEventDetailErrors() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"invalid UUID", "banana", http.StatusBadRequest},
		{"unknown event", uuid.NewString(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.db, http.MethodOptions, fmt.Sprintf("http://example.com/v1/events/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateEvents() {
	event := suite.createTestEvent(v1.EventEditable{
		Title:    "Pintura",
		Client:   "Maria Souza",
		Earnings: decimal.NewFromInt(500),
	})

	require.NotNil(suite.T(), event.Data)
	assert.Equal(suite.T(), "Pintura", event.Data.Title)
	assert.Equal(suite.T(), models.EventStatusScheduled, event.Data.Status)
	assert.NotEqual(suite.T(), uuid.Nil, event.Data.ID)
	assert.Contains(suite.T(), event.Data.Links.Self, "/v1/events/")
}

func (suite *TestSuiteStandard) TestCreateEventsInvalid() {
	tests := []struct {
		name   string
		events []v1.EventEditable
		status int
	}{
		{
			"missing title",
			[]v1.EventEditable{{Time: "09:00", Date: types.NewDate(2024, 3, 5)}},
			http.StatusBadRequest,
		},
		{
			"negative earnings",
			[]v1.EventEditable{{Title: "Pintura", Time: "09:00", Date: types.NewDate(2024, 3, 5), Earnings: decimal.NewFromInt(-10)}},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.db, http.MethodPost, "http://example.com/v1/events", tt.events)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateEventsBodyEmpty() {
	r := test.Request(suite.T(), suite.db, http.MethodPost, "http://example.com/v1/events", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestCreateEventsPartialSuccess verifies that valid events of a batch are
// created even when another event of the batch has an error.
func (suite *TestSuiteStandard) TestCreateEventsPartialSuccess() {
	body := []v1.EventEditable{
		{Title: "Pintura", Time: "09:00", Date: types.NewDate(2024, 3, 5)},
		{Time: "10:00", Date: types.NewDate(2024, 3, 5)},
	}

	r := test.Request(suite.T(), suite.db, http.MethodPost, "http://example.com/v1/events", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.EventCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.NotNil(suite.T(), response.Data[0].Data)
	require.NotNil(suite.T(), response.Data[1].Error)
	assert.Equal(suite.T(), models.ErrEventTitleRequired.Error(), *response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestGetEvent() {
	event := suite.createTestEvent(v1.EventEditable{Title: "Pintura"})

	r := test.Request(suite.T(), suite.db, http.MethodGet, event.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EventResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Pintura", response.Data.Title)
}

func (suite *TestSuiteStandard) TestGetEventErrors() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"invalid UUID", "banana", http.StatusBadRequest},
		{"unknown event", uuid.NewString(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.db, http.MethodGet, fmt.Sprintf("http://example.com/v1/events/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGetEventsOrder() {
	second := suite.createTestEvent(v1.EventEditable{Title: "Segundo", Date: types.NewDate(2024, 3, 10), Time: "14:00"})
	first := suite.createTestEvent(v1.EventEditable{Title: "Primeiro", Date: types.NewDate(2024, 3, 10), Time: "08:00"})

	r := test.Request(suite.T(), suite.db, http.MethodGet, "http://example.com/v1/events", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EventListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), first.Data.ID, response.Data[0].ID)
	assert.Equal(suite.T(), second.Data.ID, response.Data[1].ID)
}

func (suite *TestSuiteStandard) TestGetEventsFilter() {
	_ = suite.createTestEvent(v1.EventEditable{Title: "Pintura da sala", Client: "Maria Souza", Date: types.NewDate(2024, 3, 5)})
	_ = suite.createTestEvent(v1.EventEditable{Title: "Reforma", Client: "João Silva", Date: types.NewDate(2024, 4, 2), Status: models.EventStatusDone})
	_ = suite.createTestEvent(v1.EventEditable{Title: "Comprar material", Date: types.NewDate(2024, 3, 10), IsReminder: true})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"month", "month=2024-03", 2},
		{"from date", "fromDate=2024-04-01", 1},
		{"until date", "untilDate=2024-03-31", 2},
		{"status", fmt.Sprintf("status=%s", models.EventStatusDone), 1},
		{"client", "client=Maria", 1},
		{"reminders only", "isReminder=true", 1},
		{"no reminders", "isReminder=false", 2},
		{"search title", "search=pintura", 1},
		{"search client", "search=Silva", 1},
		{"no match", "search=banana", 0},
		{"limit", "limit=1", 1},
		{"offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.db, http.MethodGet, fmt.Sprintf("http://example.com/v1/events?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.EventListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestGetEventsInvalidQuery() {
	tests := []string{
		"month=banana",
		"fromDate=2024-13-01",
		"untilDate=yesterday",
	}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			r := test.Request(t, suite.db, http.MethodGet, fmt.Sprintf("http://example.com/v1/events?%s", tt), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestGetEventsPagination() {
	for i := 0; i < 3; i++ {
		suite.createTestEvent(v1.EventEditable{Title: fmt.Sprintf("Serviço %d", i)})
	}

	r := test.Request(suite.T(), suite.db, http.MethodGet, "http://example.com/v1/events?limit=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EventListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), 2, response.Pagination.Count)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)
	assert.Equal(suite.T(), 2, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestUpdateEvent() {
	event := suite.createTestEvent(v1.EventEditable{Title: "Pintura"})

	r := test.Request(suite.T(), suite.db, http.MethodPatch, event.Data.Links.Self, map[string]any{
		"status": models.EventStatusDone,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EventResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), models.EventStatusDone, response.Data.Status)
	assert.Equal(suite.T(), "Pintura", response.Data.Title, "unspecified fields must be unchanged")
}

func (suite *TestSuiteStandard) TestUpdateEventInvalid() {
	event := suite.createTestEvent(v1.EventEditable{})

	tests := []struct {
		name  string
		title string
	}{
		{"empty title", ""},
		{"whitespace-only title", "   "},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.db, http.MethodPatch, event.Data.Links.Self, map[string]any{
				"title": tt.title,
			})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateEventBroken() {
	event := suite.createTestEvent(v1.EventEditable{})

	r := test.Request(suite.T(), suite.db, http.MethodPatch, event.Data.Links.Self, `{ "title": 2 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeleteEvent() {
	event := suite.createTestEvent(v1.EventEditable{})

	r := test.Request(suite.T(), suite.db, http.MethodDelete, event.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), suite.db, http.MethodGet, event.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteEventNotFound() {
	r := test.Request(suite.T(), suite.db, http.MethodDelete, fmt.Sprintf("http://example.com/v1/events/%s", uuid.NewString()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
