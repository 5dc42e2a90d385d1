package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReminderKind distinguishes loan installments from bill payments.
type ReminderKind string

const (
	LoanReminder ReminderKind = "loan"
	BillReminder ReminderKind = "bill"
)

// ReminderStatus tracks whether a reminder has been settled.
type ReminderStatus string

const (
	ReminderPending ReminderStatus = "pending"
	ReminderDone    ReminderStatus = "done"
)

// Reminder is a loan/bill payment reminder.
type Reminder struct {
	ReminderID string          `json:"reminderID"` // Primary Key (UUID)
	Title      string          `json:"title"`
	Kind       ReminderKind    `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    time.Time       `json:"dueDate"`
	Status     ReminderStatus  `json:"status"`
	Notes      string          `json:"notes"`
	AuditFields
}
