package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryService is the fixed ledger category for transactions derived from
// calendar events.
const CategoryService = "Serviço"

// DerivedTransaction builds the ledger entry an event maps to. The type
// mirrors the scheduling state: a completed service is realized income,
// everything else is still receivable.
func (e *Event) DerivedTransaction() Transaction {
	return Transaction{
		SourceEventID: &e.ID,
		Type:          e.transactionType(),
		Value:         e.Earnings,
		Date:          e.Date,
		Description:   e.derivedDescription(),
		Category:      CategoryService,
	}
}

func (e *Event) transactionType() TransactionType {
	if e.Status == EventStatusDone {
		return TransactionTypeIncome
	}

	return TransactionTypeReceivable
}

// derivedDescription composes the ledger description from the event title
// and client, tagged so the entry is recognizable as calendar-derived.
func (e *Event) derivedDescription() string {
	if e.Client != "" {
		return fmt.Sprintf("%s - %s (Agenda)", e.Title, e.Client)
	}

	return fmt.Sprintf("%s (Agenda)", e.Title)
}

// syncTransaction reconciles the ledger with the event after a save. It
// upholds the invariant that at most one transaction exists per source event,
// and that its value and type reflect the event's current state.
//
// Reminder-only events never produce a transaction, regardless of their
// earnings field. Events without positive earnings have their derived
// transaction removed, which also covers earnings being lowered back to zero.
func (e *Event) syncTransaction(tx *gorm.DB) error {
	if e.IsReminder || !e.Earnings.IsPositive() {
		return removeDerivedTransaction(tx, e.ID)
	}

	derived := e.DerivedTransaction()

	var existing Transaction
	err := tx.Where("transactions.source_event_id = ?", e.ID).First(&existing).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&derived).Error
		}

		return err
	}

	// Replace the existing entry wholesale instead of patching single fields
	// so that a status or earnings change never leaves stale fields behind.
	derived.DefaultModel = existing.DefaultModel
	return tx.Save(&derived).Error
}

// removeDerivedTransaction deletes the transaction derived from the event
// with the given ID. It is a no-op when no such transaction exists.
func removeDerivedTransaction(tx *gorm.DB, eventID uuid.UUID) error {
	return tx.Where("transactions.source_event_id = ?", eventID).Delete(&Transaction{}).Error
}
