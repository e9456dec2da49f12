package viewmodel

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/homecircle/homecircle-go/api"
	"github.com/homecircle/homecircle-go/models"
	"github.com/homecircle/homecircle-go/types"
)

// ExpensesViewModel backs the expense list and the expense create/edit
// forms. The category picker data is a secondary resource: its load
// failures are swallowed so a broken picker never blocks the expense list.
type ExpensesViewModel struct {
	*ListViewModel[models.Expense]
	client *api.Client

	categories []models.ExpenseCategory
}

// NewExpenses returns the view-model for the expense screens.
func NewExpenses(scope *Scope, client *api.Client, log zerolog.Logger) *ExpensesViewModel {
	vm := &ExpensesViewModel{client: client}
	vm.ListViewModel = newListViewModel(scope, log, "Failed to load expenses",
		func(ctx context.Context) ([]models.Expense, error) {
			resp, err := api.Request[models.ExpensesResponse](ctx, client, api.Expenses(), nil)
			return resp.Expenses, err
		})

	return vm
}

// Categories returns the loaded picker categories. It must not be called
// from a task running on the loop.
func (vm *ExpensesViewModel) Categories() []models.ExpenseCategory {
	var categories []models.ExpenseCategory
	vm.scope.loop.Perform(func() { categories = vm.categories })
	return categories
}

// LoadCategories fetches the category picker data. Failures are logged
// only; the picker simply stays empty.
func (vm *ExpensesViewModel) LoadCategories() {
	resp, err := api.Request[models.ExpenseCategoriesResponse](vm.scope.Context(), vm.client, api.ExpenseCategories(), nil)
	if err != nil {
		vm.log.Warn().Err(err).Msg("loading expense categories failed")
		return
	}

	vm.scope.perform(func() { vm.categories = resp.Categories })
}

// Create submits a new expense and reports success. The caller decides
// whether to dismiss the form.
func (vm *ExpensesViewModel) Create(editable models.ExpenseEditable) bool {
	return vm.mutate("Failed to save expense", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.CreateExpense(), editable, nil)
	})
}

// Update submits changes to an expense and reports success.
func (vm *ExpensesViewModel) Update(id types.ID, editable models.ExpenseEditable) bool {
	return vm.mutate("Failed to save expense", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.UpdateExpense(id), editable, nil)
	})
}

// Delete removes an expense after the user confirmed, then reloads the
// list so the row disappears.
func (vm *ExpensesViewModel) Delete(id types.ID) bool {
	ok := vm.mutate("Failed to delete expense", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.DeleteExpense(id), nil, nil)
	})
	if ok {
		vm.Load()
	}

	return ok
}
