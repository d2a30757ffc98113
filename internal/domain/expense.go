package domain

import "time"

type ExpenseCategory string

const (
	ExpenseAccommodation ExpenseCategory = "accommodation"
	ExpenseTransport     ExpenseCategory = "transport"
	ExpenseFood          ExpenseCategory = "food"
	ExpenseActivities    ExpenseCategory = "activities"
	ExpenseShopping      ExpenseCategory = "shopping"
	ExpenseOther         ExpenseCategory = "other"
)

// Expense is a user-scoped ledger entry. Booking side effects link it through BookingID.
type Expense struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Category      ExpenseCategory `json:"category"`
	Description   string          `json:"description"`
	Amount        float64         `json:"amount"`
	Currency      string          `json:"currency"`
	Date          time.Time       `json:"date"`
	Destination   string          `json:"destination,omitempty"`
	BookingID     string          `json:"bookingId,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
}
