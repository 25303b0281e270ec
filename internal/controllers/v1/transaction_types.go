package v1

import (
	"fmt"

	"github.com/agenda-pro/backend/internal/models"
	"github.com/agenda-pro/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Type        models.TransactionType `json:"type" example:"entrada" enums:"entrada,saida,a-receber"`                     // Direction of the ledger entry
	Value       decimal.Decimal        `json:"value" example:"180.5" minimum:"0.00000001" maximum:"999999999999.99999999"` // Monetary value, must be positive
	Date        types.Date             `json:"date" example:"2024-03-05"`                                                  // Day the entry refers to, required
	Description string                 `json:"description" example:"Compra de tintas"`                                     // What the entry is about, required
	Category    string                 `json:"category" example:"Material" default:""`                                     // Free-form grouping label
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Type:        editable.Type,
		Value:       editable.Value,
		Date:        editable.Date,
		Description: editable.Description,
		Category:    editable.Category,
	}
}

type TransactionLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
	Event string `json:"event" example:"https://example.com/api/v1/events/d3c09b38-b6e5-4aa9-9f4b-36ef834cbaff"`      // The event the transaction is derived from, if any
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	SourceEventID *uuid.UUID       `json:"sourceEventId" example:"d3c09b38-b6e5-4aa9-9f4b-36ef834cbaff"` // Set if the transaction is derived from a calendar event
	Links         TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.ContextURL))

	t := Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Type:        model.Type,
			Value:       model.Value,
			Date:        model.Date,
			Description: model.Description,
			Category:    model.Category,
		},
		SourceEventID: model.SourceEventID,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}

	if model.SourceEventID != nil {
		t.Links.Event = fmt.Sprintf("%s/v1/events/%s", url, model.SourceEventID)
	}

	return t
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of resources
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created resources
}

func (r *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                          // The resource
}

type TransactionQueryFilter struct {
	Type      string `form:"type" filterField:"false"`      // By direction of the entry
	Category  string `form:"category" filterField:"false"`  // By grouping label
	Month     string `form:"month" filterField:"false"`     // Entries in this calendar month, YYYY-MM
	FromDate  string `form:"fromDate" filterField:"false"`  // Entries at and after this date
	UntilDate string `form:"untilDate" filterField:"false"` // Entries before and at this date
	Derived   bool   `form:"derived" filterField:"false"`   // Is the entry derived from a calendar event?
	Offset    uint   `form:"offset" filterField:"false"`    // The offset of the first entry returned. Defaults to 0.
	Limit     int    `form:"limit" filterField:"false"`     // Maximum number of entries to return. Defaults to 50.
}
