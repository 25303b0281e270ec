package models

import (
	"strings"
	"time"

	"github.com/agenda-pro/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EventStatus is the scheduling state of a calendar event.
type EventStatus string

const (
	EventStatusScheduled  EventStatus = "Agendado"
	EventStatusInProgress EventStatus = "Em andamento"
	EventStatusDone       EventStatus = "Concluído"
)

// Event is an appointment in the professional's calendar. Multiple events can
// be scheduled on the same date.
type Event struct {
	DefaultModel
	Title       string
	Client      string
	Description string
	Date        types.Date
	Time        string          // Clock time of the appointment in HH:MM
	Reminder    string          // Optional reminder clock time in HH:MM
	IsReminder  bool            // Reminder-only entries carry no service or earnings semantics
	Earnings    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Status      EventStatus
}

// BeforeSave trims whitespace from the string fields and defaults the status
// for new events.
func (e *Event) BeforeSave(_ *gorm.DB) error {
	e.Title = strings.TrimSpace(e.Title)
	e.Client = strings.TrimSpace(e.Client)
	e.Description = strings.TrimSpace(e.Description)
	e.Time = strings.TrimSpace(e.Time)
	e.Reminder = strings.TrimSpace(e.Reminder)

	if e.Status == "" {
		e.Status = EventStatusScheduled
	}

	return nil
}

// AfterSave validates the event and then reconciles the ledger with it.
//
// Validation happens here and not in BeforeSave since partial updates only
// carry the changed fields into the earlier hooks. At this point the full,
// merged state of the event is known; an error rolls back the whole save, so
// a rejected event never mutates either collection.
func (e *Event) AfterSave(tx *gorm.DB) error {
	// BeforeSave only sees the changed fields of a partial update, so the
	// merged state is trimmed again before it is validated
	e.Title = strings.TrimSpace(e.Title)
	e.Client = strings.TrimSpace(e.Client)
	e.Description = strings.TrimSpace(e.Description)
	e.Time = strings.TrimSpace(e.Time)
	e.Reminder = strings.TrimSpace(e.Reminder)

	if e.Title == "" {
		return ErrEventTitleRequired
	}

	if e.Time == "" {
		return ErrEventTimeRequired
	}

	if _, err := time.Parse("15:04", e.Time); err != nil {
		return ErrEventTimeInvalid
	}

	if e.Reminder != "" {
		if _, err := time.Parse("15:04", e.Reminder); err != nil {
			return ErrEventReminderInvalid
		}
	}

	if e.Date.IsZero() {
		return ErrEventDateRequired
	}

	if e.Earnings.IsNegative() {
		return ErrEventEarningsNegative
	}

	if e.Status != EventStatusScheduled && e.Status != EventStatusInProgress && e.Status != EventStatusDone {
		return ErrEventStatusInvalid
	}

	return e.syncTransaction(tx)
}

// AfterDelete removes the transaction derived from this event, if any.
func (e *Event) AfterDelete(tx *gorm.DB) error {
	return removeDerivedTransaction(tx, e.ID)
}

// UpcomingEvents returns all events scheduled on or after the given date in
// chronological order.
func UpcomingEvents(db *gorm.DB, from types.Date) ([]Event, error) {
	var events []Event

	err := db.
		Where("date(events.date) >= date(?)", from).
		Order("date(events.date) ASC, events.time ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	return events, nil
}
