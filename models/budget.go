package models

import (
	"github.com/homecircle/homecircle-go/types"
	"github.com/shopspring/decimal"
)

// BudgetType distinguishes envelope budgets, which split an income into
// named category allocations, from traditional running-total budgets.
type BudgetType string

const (
	BudgetEnvelope    BudgetType = "envelope"
	BudgetTraditional BudgetType = "traditional"
)

// BudgetPeriod is the recurring window a budget covers.
type BudgetPeriod string

const (
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodYearly  BudgetPeriod = "yearly"
)

// Budget represents a household budget.
//
// Spent, Remaining and PercentageUsed are computed by the backend from the
// expenses recorded against the budget. The client displays them as-is and
// re-fetches after every mutation instead of recomputing locally.
type Budget struct {
	Model
	Name            *string          `json:"name,omitempty"`
	Type            BudgetType       `json:"budget_type,omitempty"`
	Period          BudgetPeriod     `json:"period,omitempty"`
	TotalAmount     *decimal.Decimal `json:"total_amount,omitempty"`
	AllocatedAmount *decimal.Decimal `json:"allocated_amount,omitempty"`
	Spent           *decimal.Decimal `json:"spent,omitempty"`
	Remaining       *decimal.Decimal `json:"remaining,omitempty"`
	PercentageUsed  *float64         `json:"percentage_used,omitempty"`
	Categories      []BudgetCategory `json:"categories,omitempty"`
}

// Equal reports whether two budgets identify the same backend record.
func (b Budget) Equal(other Budget) bool {
	return b.Model.Equal(other.Model)
}

// BudgetEditable holds the fields a client may set on a budget.
type BudgetEditable struct {
	Name        string                   `json:"name"`
	Type        BudgetType               `json:"budget_type"`
	Period      BudgetPeriod             `json:"period"`
	TotalAmount decimal.Decimal          `json:"total_amount"`
	Categories  []BudgetCategoryEditable `json:"categories,omitempty"`
}

// BudgetCategory is a named allocation ("envelope") owned by a budget.
type BudgetCategory struct {
	Model
	BudgetID  *types.ID        `json:"budget_id,omitempty"`
	Name      *string          `json:"name,omitempty"`
	Icon      *string          `json:"icon,omitempty"`
	Color     *string          `json:"color,omitempty"`
	Allocated *decimal.Decimal `json:"allocated_amount,omitempty"`
	Spent     *decimal.Decimal `json:"spent_amount,omitempty"`
}

// Equal reports whether two allocations identify the same backend record.
func (c BudgetCategory) Equal(other BudgetCategory) bool {
	return c.Model.Equal(other.Model)
}

// BudgetCategoryEditable holds the fields a client may set on an allocation.
type BudgetCategoryEditable struct {
	Name      string          `json:"name"`
	Icon      string          `json:"icon,omitempty"`
	Color     string          `json:"color,omitempty"`
	Allocated decimal.Decimal `json:"allocated_amount"`
}

// BudgetResponse is the response wrapper for a single budget.
type BudgetResponse struct {
	Budget Budget `json:"budget"`
}

// BudgetsResponse is the response wrapper for a budget list.
type BudgetsResponse struct {
	Budgets    []Budget    `json:"budgets"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// BudgetCategoryResponse is the response wrapper for a single allocation.
type BudgetCategoryResponse struct {
	Category BudgetCategory `json:"category"`
}
