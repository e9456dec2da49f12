package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homecircle/homecircle-go/models"
	"github.com/homecircle/homecircle-go/types"
)

func TestExpenseDecodeMinimal(t *testing.T) {
	var expense models.Expense
	err := json.Unmarshal([]byte(`{ "id": 5, "status": "pending" }`), &expense)

	require.Nil(t, err)
	assert.Equal(t, types.ID(5), expense.ID)
	assert.Equal(t, models.ExpensePending, expense.Status)

	// Absent optionals stay nil instead of defaulting.
	assert.Nil(t, expense.Amount)
	assert.Nil(t, expense.Description)
	assert.Nil(t, expense.Date)
	assert.Nil(t, expense.CategoryID)
	assert.Nil(t, expense.Category)
	assert.Nil(t, expense.BudgetID)
	assert.Nil(t, expense.PaymentMethod)
	assert.Nil(t, expense.IsRecurring)
	assert.Nil(t, expense.Frequency)
	assert.Nil(t, expense.ReceiptURL)
	assert.Nil(t, expense.CreatedAt)
	assert.Nil(t, expense.UpdatedAt)
}

func TestExpenseDecodeFull(t *testing.T) {
	payload := []byte(`{
		"id": "42",
		"amount": "19.99",
		"description": "School supplies",
		"date": "2026-08-14",
		"category_id": 3,
		"is_recurring": true,
		"frequency": "monthly",
		"status": "settled"
	}`)

	var expense models.Expense
	err := json.Unmarshal(payload, &expense)

	require.Nil(t, err)
	assert.Equal(t, types.ID(42), expense.ID)
	assert.True(t, expense.Amount.Equal(decimal.NewFromFloat(19.99)))
	assert.Equal(t, "School supplies", *expense.Description)
	assert.Equal(t, types.NewDate(2026, 8, 14), *expense.Date)
	assert.Equal(t, types.ID(3), *expense.CategoryID)
	assert.True(t, *expense.IsRecurring)
	assert.Equal(t, models.FrequencyMonthly, *expense.Frequency)
	assert.Equal(t, models.ExpenseSettled, expense.Status)
}

func TestParseExpense(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr error
	}{
		{"Valid", `{ "id": 5, "status": "pending" }`, nil},
		{"No status", `{ "id": 5 }`, nil},
		{"Missing ID", `{ "status": "pending" }`, models.ErrMissingID},
		{"Null ID", `{ "id": null, "status": "pending" }`, models.ErrMissingID},
		{"Unknown status", `{ "id": 5, "status": "paid" }`, models.ErrUnknownStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expense, err := models.ParseExpense([]byte(tt.json))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.Nil(t, err)
			assert.Equal(t, types.ID(5), expense.ID)
		})
	}
}

func TestParseExpenseMalformed(t *testing.T) {
	_, err := models.ParseExpense([]byte(`{ "id": `))
	assert.NotNil(t, err)
}

func TestEqualIdentity(t *testing.T) {
	now := time.Now()
	a := models.Expense{Model: models.Model{ID: 7}, Description: ptr("Groceries")}
	b := models.Expense{Model: models.Model{ID: 7, UpdatedAt: &now}, Description: ptr("Renamed")}
	c := models.Expense{Model: models.Model{ID: 8}, Description: ptr("Groceries")}

	// Equality is record identity, not field equality.
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestNewFileAttachment(t *testing.T) {
	attachment := models.NewFileAttachment("receipt.png", "image/png", []byte("hello"))

	require.NotNil(t, attachment.FileName)
	assert.Equal(t, "receipt.png", *attachment.FileName)
	require.NotNil(t, attachment.MimeType)
	assert.Equal(t, "image/png", *attachment.MimeType)
	require.NotNil(t, attachment.Data)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", *attachment.Data)
	assert.Nil(t, attachment.URL)
}

func TestBloodTypeDisplayName(t *testing.T) {
	tests := []struct {
		value models.BloodType
		want  string
	}{
		{"A+", "A Positive"},
		{"O-", "O Negative"},
		{"AB+", "AB Positive"},
		{"", "Unknown"},
		{"C+", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.DisplayName())
		})
	}
}

func TestExpensesResponseDecode(t *testing.T) {
	payload := []byte(`{
		"expenses": [ { "id": 1 }, { "id": "2" } ],
		"pagination": { "count": 2, "offset": 0, "total": 2 }
	}`)

	var resp models.ExpensesResponse
	err := json.Unmarshal(payload, &resp)

	require.Nil(t, err)
	require.Len(t, resp.Expenses, 2)
	assert.Equal(t, types.ID(1), resp.Expenses[0].ID)
	assert.Equal(t, types.ID(2), resp.Expenses[1].ID)
	require.NotNil(t, resp.Pagination)
	assert.Equal(t, 2, resp.Pagination.Total)
}

func TestMedicationCourseDaysDecode(t *testing.T) {
	// Some endpoints report the course length as a float.
	var medication models.Medication
	err := json.Unmarshal([]byte(`{ "id": 1, "course_days": 10.0 }`), &medication)

	require.Nil(t, err)
	require.NotNil(t, medication.CourseDays)
	assert.Equal(t, types.Days(10), *medication.CourseDays)
}

func ptr[T any](v T) *T {
	return &v
}
