package viewmodel_test

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homecircle/homecircle-go/models"
	"github.com/homecircle/homecircle-go/test"
	"github.com/homecircle/homecircle-go/viewmodel"
)

func (suite *TestSuiteStandard) TestInsuranceRoundTrip() {
	vm := viewmodel.NewInsurance(suite.scope, suite.client, suite.log)

	ok := vm.Create(models.InsurancePolicyEditable{
		Provider:     "Acme Mutual",
		PolicyNumber: "HM-1234",
		PolicyType:   "home",
		Premium:      test.Ptr(decimal.NewFromInt(120)),
		AgentName:    "Sam Rowe",
	})
	require.True(suite.T(), ok)

	vm.Load()
	state := vm.State()
	require.Len(suite.T(), state.Items, 1)
	assert.Equal(suite.T(), "Acme Mutual", *state.Items[0].Provider)
	assert.Equal(suite.T(), "Sam Rowe", *state.Items[0].AgentName)

	ok = vm.Delete(state.Items[0].ID)
	require.True(suite.T(), ok)
	assert.Empty(suite.T(), vm.State().Items)
}

func (suite *TestSuiteStandard) TestTaxReturnsRoundTrip() {
	vm := viewmodel.NewTaxReturns(suite.scope, suite.client, suite.log)

	ok := vm.Create(models.TaxReturnEditable{
		Year:       2025,
		FilingType: "joint",
		CPAName:    "Linda Osei",
	})
	require.True(suite.T(), ok)

	vm.Load()
	state := vm.State()
	require.Len(suite.T(), state.Items, 1)
	assert.Equal(suite.T(), 2025, *state.Items[0].Year)
	assert.Equal(suite.T(), "Linda Osei", *state.Items[0].CPAName)

	ok = vm.Update(state.Items[0].ID, models.TaxReturnEditable{
		Year:         2025,
		FilingType:   "joint",
		RefundAmount: test.Ptr(decimal.NewFromInt(1500)),
	})
	require.True(suite.T(), ok)

	vm.Load()
	state = vm.State()
	require.Len(suite.T(), state.Items, 1)
	require.NotNil(suite.T(), state.Items[0].RefundAmount)
	assert.True(suite.T(), state.Items[0].RefundAmount.Equal(decimal.NewFromInt(1500)))
}

func (suite *TestSuiteStandard) TestDashboardRemindersAreSecondary() {
	suite.server.SeedBudget(models.Budget{Name: test.Ptr("Monthly")})
	suite.server.SeedReminder(models.Reminder{Title: test.Ptr("Insurance renews soon"), Urgent: test.Ptr(true)})

	vm := viewmodel.NewDashboard(suite.scope, suite.client, suite.log)
	vm.Load()
	vm.LoadReminders()

	state := vm.State()
	require.Len(suite.T(), state.Items, 1)

	reminders := vm.Reminders()
	require.Len(suite.T(), reminders, 1)
	assert.Equal(suite.T(), "Insurance renews soon", *reminders[0].Title)
}

func (suite *TestSuiteStandard) TestScopeCloseDropsLateCompletions() {
	suite.server.SeedExpense(models.Expense{Description: test.Ptr("Groceries")})

	vm := viewmodel.NewExpenses(suite.scope, suite.client, suite.log)
	vm.Load()
	require.Len(suite.T(), vm.State().Items, 1)

	// After the screen is dismissed nothing mutates its state anymore.
	suite.scope.Close()
	suite.server.SeedExpense(models.Expense{Description: test.Ptr("Late arrival")})
	vm.Load()

	assert.Len(suite.T(), vm.State().Items, 1)
}
