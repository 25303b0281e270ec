package models

import (
	"strings"

	"github.com/agenda-pro/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TransactionTypeIncome     TransactionType = "entrada"   // Realized income
	TransactionTypeExpense    TransactionType = "saida"     // Expense
	TransactionTypeReceivable TransactionType = "a-receber" // Income expected, but not yet received
)

// Transaction is an entry in the financial ledger. Entries with a
// SourceEventID are derived from a calendar event and maintained exclusively
// by the sync rule, all other entries are manual.
type Transaction struct {
	DefaultModel
	Type          TransactionType
	Value         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date          types.Date
	Description   string
	Category      string
	SourceEventID *uuid.UUID `gorm:"index"`
}

// Derived reports whether the transaction is maintained by the sync rule.
func (t Transaction) Derived() bool {
	return t.SourceEventID != nil
}

// BeforeSave trims whitespace from the string fields.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	t.Category = strings.TrimSpace(t.Category)

	return nil
}

// AfterSave validates the transaction. An error rolls back the save, so a
// rejected transaction never reaches the ledger.
func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if t.Type != TransactionTypeIncome && t.Type != TransactionTypeExpense && t.Type != TransactionTypeReceivable {
		return ErrTransactionTypeInvalid
	}

	if !t.Value.IsPositive() {
		return ErrTransactionValueNotPositive
	}

	if t.Date.IsZero() {
		return ErrTransactionDateRequired
	}

	if t.Description == "" {
		return ErrTransactionDescriptionRequired
	}

	return nil
}
