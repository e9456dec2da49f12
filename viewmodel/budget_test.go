package viewmodel_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homecircle/homecircle-go/models"
	"github.com/homecircle/homecircle-go/test"
	"github.com/homecircle/homecircle-go/viewmodel"
)

func (suite *TestSuiteStandard) TestBudgetsCreateResyncsComputedFields() {
	vm := viewmodel.NewBudgets(suite.scope, suite.client, suite.log)
	vm.Load()
	require.Empty(suite.T(), vm.State().Items)

	ok := vm.Create(models.BudgetEditable{
		Name:        "Monthly household",
		Type:        models.BudgetTraditional,
		Period:      models.PeriodMonthly,
		TotalAmount: decimal.NewFromInt(2000),
	})
	require.True(suite.T(), ok)

	// Create reloads the list, so the server-computed fields are
	// populated without an explicit Load.
	state := vm.State()
	require.Len(suite.T(), state.Items, 1)
	budget := state.Items[0]
	require.NotNil(suite.T(), budget.Remaining)
	assert.True(suite.T(), budget.Remaining.Equal(decimal.NewFromInt(2000)))
	require.NotNil(suite.T(), budget.PercentageUsed)
	assert.Equal(suite.T(), float64(0), *budget.PercentageUsed)
}

func (suite *TestSuiteStandard) TestBudgetsDeleteReloads() {
	budget := suite.server.SeedBudget(models.Budget{Name: test.Ptr("Old")})

	vm := viewmodel.NewBudgets(suite.scope, suite.client, suite.log)
	vm.Load()
	require.Len(suite.T(), vm.State().Items, 1)

	ok := vm.Delete(budget.ID)
	require.True(suite.T(), ok)
	assert.Empty(suite.T(), vm.State().Items)
}

func (suite *TestSuiteStandard) TestBudgetDetailLoad() {
	budget := suite.server.SeedBudget(models.Budget{
		Name:        test.Ptr("Envelopes"),
		Type:        models.BudgetEnvelope,
		TotalAmount: test.Ptr(decimal.NewFromInt(1000)),
		Categories: []models.BudgetCategory{
			{Name: test.Ptr("Groceries"), Allocated: test.Ptr(decimal.NewFromInt(400))},
			{Name: test.Ptr("Transport"), Allocated: test.Ptr(decimal.NewFromInt(100))},
		},
	})

	vm := viewmodel.NewBudgetDetail(suite.scope, suite.client, suite.log)
	vm.Load(budget.ID)

	state := vm.State()
	require.NotNil(suite.T(), state.Selected)
	assert.Len(suite.T(), state.Selected.Categories, 2)
	require.NotNil(suite.T(), state.Selected.AllocatedAmount)
	assert.True(suite.T(), state.Selected.AllocatedAmount.Equal(decimal.NewFromInt(500)))
}

func (suite *TestSuiteStandard) TestBudgetDetailAddCategoryResyncs() {
	budget := suite.server.SeedBudget(models.Budget{
		Name:        test.Ptr("Envelopes"),
		TotalAmount: test.Ptr(decimal.NewFromInt(1000)),
	})

	vm := viewmodel.NewBudgetDetail(suite.scope, suite.client, suite.log)
	vm.Load(budget.ID)

	ok := vm.AddCategory(budget.ID, models.BudgetCategoryEditable{
		Name:      "Groceries",
		Allocated: decimal.NewFromInt(400),
	})
	require.True(suite.T(), ok)

	state := vm.State()
	require.NotNil(suite.T(), state.Selected)
	require.Len(suite.T(), state.Selected.Categories, 1)
	require.NotNil(suite.T(), state.Selected.AllocatedAmount)
	assert.True(suite.T(), state.Selected.AllocatedAmount.Equal(decimal.NewFromInt(400)))
}

func (suite *TestSuiteStandard) TestBudgetDetailLoadFailureKeepsSelection() {
	budget := suite.server.SeedBudget(models.Budget{Name: test.Ptr("Envelopes")})

	vm := viewmodel.NewBudgetDetail(suite.scope, suite.client, suite.log)
	vm.Load(budget.ID)
	require.NotNil(suite.T(), vm.State().Selected)

	suite.server.FailWith(http.StatusInternalServerError, "boom")
	vm.Load(budget.ID)

	state := vm.State()
	assert.NotNil(suite.T(), state.Selected)
	require.NotNil(suite.T(), state.ErrorMessage)
	assert.Equal(suite.T(), "boom", *state.ErrorMessage)
}

func (suite *TestSuiteStandard) TestBudgetProgressFraction() {
	vm := viewmodel.NewBudgetDetail(suite.scope, suite.client, suite.log)

	// No budget loaded yet.
	assert.Equal(suite.T(), float64(0), vm.ProgressFraction())

	budget := suite.server.SeedBudget(models.Budget{
		Name:        test.Ptr("Overspent"),
		TotalAmount: test.Ptr(decimal.NewFromInt(100)),
		Spent:       test.Ptr(decimal.NewFromInt(150)),
	})

	vm.Load(budget.ID)

	// 150% used still renders as a full bar.
	assert.Equal(suite.T(), float64(1), vm.ProgressFraction())
}
