package models

import (
	"encoding/json"
	"errors"

	"github.com/homecircle/homecircle-go/types"
	"github.com/shopspring/decimal"
)

// ExpenseStatus is the settlement state of an expense.
type ExpenseStatus string

const (
	ExpensePending ExpenseStatus = "pending"
	ExpenseSettled ExpenseStatus = "settled"
)

// Frequency is the recurrence interval of a recurring expense.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyYearly   Frequency = "yearly"
)

// Expense represents a single household expense.
type Expense struct {
	Model
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Date          *types.Date      `json:"date,omitempty"`
	CategoryID    *types.ID        `json:"category_id,omitempty"`
	Category      *ExpenseCategory `json:"category,omitempty"`
	BudgetID      *types.ID        `json:"budget_id,omitempty"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
	IsRecurring   *bool            `json:"is_recurring,omitempty"`
	Frequency     *Frequency       `json:"frequency,omitempty"`
	ReceiptURL    *string          `json:"receipt_url,omitempty"`
	Status        ExpenseStatus    `json:"status,omitempty"`
}

// Equal reports whether two expenses identify the same backend record.
func (e Expense) Equal(other Expense) bool {
	return e.Model.Equal(other.Model)
}

// ExpenseEditable holds the fields a client may set when creating or
// updating an expense.
type ExpenseEditable struct {
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          types.Date      `json:"date"`
	CategoryID    *types.ID       `json:"category_id,omitempty"`
	BudgetID      *types.ID       `json:"budget_id,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	IsRecurring   bool            `json:"is_recurring"`
	Frequency     *Frequency      `json:"frequency,omitempty"`
	Receipt       *FileAttachment `json:"receipt,omitempty"`
	Status        ExpenseStatus   `json:"status,omitempty"`
}

// ExpenseCategory is a label expenses are grouped under. Categories are
// either owned by the household or shared defaults referenced by ID.
type ExpenseCategory struct {
	Model
	Name     *string `json:"name,omitempty"`
	Icon     *string `json:"icon,omitempty"`
	Color    *string `json:"color,omitempty"`
	IsShared *bool   `json:"is_shared,omitempty"`
}

// Equal reports whether two categories identify the same backend record.
func (c ExpenseCategory) Equal(other ExpenseCategory) bool {
	return c.Model.Equal(other.Model)
}

// ErrMissingID is returned when a payload that must reference a stored
// resource carries no identifier.
var ErrMissingID = errors.New("resource has no ID")

// ErrUnknownStatus is returned for a status value the client does not know.
var ErrUnknownStatus = errors.New("unknown status")

// ParseExpense decodes and validates a single expense payload.
//
// Decoding alone is lenient (see the types package), so screens that only
// display data do not fail on malformed references. Parse is for the paths
// that need to act on the record and therefore want malformed data to be
// observable instead of silently defaulted.
func ParseExpense(data []byte) (Expense, error) {
	var expense Expense
	if err := json.Unmarshal(data, &expense); err != nil {
		return Expense{}, err
	}

	if expense.ID.IsNil() {
		return Expense{}, ErrMissingID
	}

	switch expense.Status {
	case ExpensePending, ExpenseSettled, "":
	default:
		return Expense{}, ErrUnknownStatus
	}

	return expense, nil
}

// ExpenseResponse is the response wrapper for a single expense.
type ExpenseResponse struct {
	Expense Expense `json:"expense"`
}

// ExpensesResponse is the response wrapper for an expense list.
type ExpensesResponse struct {
	Expenses   []Expense   `json:"expenses"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ExpenseCategoriesResponse is the response wrapper for a category list.
type ExpenseCategoriesResponse struct {
	Categories []ExpenseCategory `json:"categories"`
}
