package viewmodel_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homecircle/homecircle-go/models"
	"github.com/homecircle/homecircle-go/test"
	"github.com/homecircle/homecircle-go/types"
	"github.com/homecircle/homecircle-go/viewmodel"
)

func (suite *TestSuiteStandard) TestExpensesLoad() {
	suite.server.SeedExpense(models.Expense{Description: test.Ptr("Groceries")})
	suite.server.SeedExpense(models.Expense{Description: test.Ptr("School bus pass")})

	vm := viewmodel.NewExpenses(suite.scope, suite.client, suite.log)
	vm.Load()

	state := vm.State()
	assert.Len(suite.T(), state.Items, 2)
	assert.False(suite.T(), state.IsLoading)
	assert.Nil(suite.T(), state.ErrorMessage)
}

func (suite *TestSuiteStandard) TestExpensesLoadFailureKeepsData() {
	suite.server.SeedExpense(models.Expense{Description: test.Ptr("Groceries")})

	vm := viewmodel.NewExpenses(suite.scope, suite.client, suite.log)
	vm.Load()
	require.Len(suite.T(), vm.State().Items, 1)

	suite.server.FailWith(http.StatusForbidden, "You are not a member of this circle")
	vm.Load()

	// The stale list stays visible and the backend message is shown.
	state := vm.State()
	assert.Len(suite.T(), state.Items, 1)
	assert.False(suite.T(), state.IsLoading)
	require.NotNil(suite.T(), state.ErrorMessage)
	assert.Equal(suite.T(), "You are not a member of this circle", *state.ErrorMessage)
}

func (suite *TestSuiteStandard) TestExpensesLoadOpaqueFailureUsesFallback() {
	suite.server.FailOpaque(http.StatusInternalServerError)

	vm := viewmodel.NewExpenses(suite.scope, suite.client, suite.log)
	vm.Load()

	state := vm.State()
	require.NotNil(suite.T(), state.ErrorMessage)
	assert.Equal(suite.T(), "Failed to load expenses", *state.ErrorMessage)
}

func (suite *TestSuiteStandard) TestExpensesRefreshSwallowsFailure() {
	suite.server.SeedExpense(models.Expense{Description: test.Ptr("Groceries")})

	vm := viewmodel.NewExpenses(suite.scope, suite.client, suite.log)
	vm.Load()

	suite.server.FailWith(http.StatusInternalServerError, "boom")
	vm.Refresh()

	// No error surfaces on pull-to-refresh; the old data stays.
	state := vm.State()
	assert.Len(suite.T(), state.Items, 1)
	assert.Nil(suite.T(), state.ErrorMessage)
}

func (suite *TestSuiteStandard) TestExpensesRefreshClearsError() {
	vm := viewmodel.NewExpenses(suite.scope, suite.client, suite.log)

	suite.server.FailWith(http.StatusInternalServerError, "boom")
	vm.Load()
	require.NotNil(suite.T(), vm.State().ErrorMessage)

	suite.server.Recover()
	suite.server.SeedExpense(models.Expense{Description: test.Ptr("Groceries")})
	vm.Refresh()

	state := vm.State()
	assert.Len(suite.T(), state.Items, 1)
	assert.Nil(suite.T(), state.ErrorMessage)
}

func (suite *TestSuiteStandard) TestExpensesCreate() {
	vm := viewmodel.NewExpenses(suite.scope, suite.client, suite.log)

	ok := vm.Create(models.ExpenseEditable{
		Amount:      decimal.NewFromFloat(12.50),
		Description: "Packed lunch",
		Date:        types.NewDate(2026, 8, 20),
	})
	require.True(suite.T(), ok)

	vm.Load()
	state := vm.State()
	require.Len(suite.T(), state.Items, 1)
	assert.Equal(suite.T(), "Packed lunch", *state.Items[0].Description)
	assert.Equal(suite.T(), models.ExpensePending, state.Items[0].Status)
}

func (suite *TestSuiteStandard) TestExpensesCreateFailure() {
	suite.server.FailWith(http.StatusBadRequest, "Amount must be positive")

	vm := viewmodel.NewExpenses(suite.scope, suite.client, suite.log)
	ok := vm.Create(models.ExpenseEditable{Description: "Broken"})

	assert.False(suite.T(), ok)
	require.NotNil(suite.T(), vm.State().ErrorMessage)
	assert.Equal(suite.T(), "Amount must be positive", *vm.State().ErrorMessage)
}

func (suite *TestSuiteStandard) TestExpensesDeleteReloads() {
	keep := suite.server.SeedExpense(models.Expense{Description: test.Ptr("Keep")})
	drop := suite.server.SeedExpense(models.Expense{Description: test.Ptr("Drop")})

	vm := viewmodel.NewExpenses(suite.scope, suite.client, suite.log)
	vm.Load()
	require.Len(suite.T(), vm.State().Items, 2)

	ok := vm.Delete(drop.ID)
	require.True(suite.T(), ok)

	// Delete reloads, so the row is gone without an explicit Load.
	state := vm.State()
	require.Len(suite.T(), state.Items, 1)
	assert.True(suite.T(), keep.Equal(state.Items[0]))
}

func (suite *TestSuiteStandard) TestExpenseCategoriesSwallowFailure() {
	suite.server.SeedExpenseCategory("Groceries")
	suite.server.SeedExpenseCategory("Transport")

	vm := viewmodel.NewExpenses(suite.scope, suite.client, suite.log)
	vm.LoadCategories()
	assert.Len(suite.T(), vm.Categories(), 2)

	suite.server.FailWith(http.StatusInternalServerError, "boom")
	vm.LoadCategories()

	// A broken picker keeps its previous data and never blocks the list.
	assert.Len(suite.T(), vm.Categories(), 2)
	assert.Nil(suite.T(), vm.State().ErrorMessage)
}
