package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reminder represents the reminders table row.
type Reminder struct {
	ReminderID string
	Title      string
	Kind       string
	Amount     decimal.Decimal
	DueDate    time.Time
	Status     string
	Notes      string
	AuditFields
}
