package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Event errors
var (
	ErrEventTitleRequired    = errors.New("event titles must be set")
	ErrEventTimeRequired     = errors.New("the event time must be set")
	ErrEventTimeInvalid      = errors.New("the event time must be a valid HH:MM clock time")
	ErrEventReminderInvalid  = errors.New("the event reminder must be a valid HH:MM clock time")
	ErrEventDateRequired     = errors.New("the event date must be set")
	ErrEventStatusInvalid    = errors.New("the specified event status is invalid")
	ErrEventEarningsNegative = errors.New("event earnings must not be negative")
)

// Transaction errors
var (
	ErrTransactionTypeInvalid         = errors.New("the specified transaction type is invalid")
	ErrTransactionValueNotPositive    = errors.New("transaction values must be larger than zero")
	ErrTransactionDateRequired        = errors.New("the transaction date must be set")
	ErrTransactionDescriptionRequired = errors.New("the transaction description must be set")
	ErrTransactionDerived             = errors.New("this transaction is derived from a calendar event, edit or delete the event instead")
)

// Goal errors
var (
	ErrGoalPeriodInvalid     = errors.New("the specified goal period is invalid")
	ErrGoalAmountNotPositive = errors.New("goal amounts must be larger than zero")
)
