package viewmodel

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/homecircle/homecircle-go/api"
	"github.com/homecircle/homecircle-go/display"
	"github.com/homecircle/homecircle-go/models"
	"github.com/homecircle/homecircle-go/types"
)

// BudgetsViewModel backs the budget overview list.
type BudgetsViewModel struct {
	*ListViewModel[models.Budget]
	client *api.Client
}

// NewBudgets returns the view-model for the budget overview.
func NewBudgets(scope *Scope, client *api.Client, log zerolog.Logger) *BudgetsViewModel {
	vm := &BudgetsViewModel{client: client}
	vm.ListViewModel = newListViewModel(scope, log, "Failed to load budgets",
		func(ctx context.Context) ([]models.Budget, error) {
			resp, err := api.Request[models.BudgetsResponse](ctx, client, api.Budgets(), nil)
			return resp.Budgets, err
		})

	return vm
}

// Create submits a new budget. On success the list is reloaded: spent,
// remaining and percentage are server-computed, so the fresh values have
// to come from a round trip.
func (vm *BudgetsViewModel) Create(editable models.BudgetEditable) bool {
	ok := vm.mutate("Failed to save budget", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.CreateBudget(), editable, nil)
	})
	if ok {
		vm.Load()
	}

	return ok
}

// Delete removes a budget after confirmation, then reloads the list.
func (vm *BudgetsViewModel) Delete(id types.ID) bool {
	ok := vm.mutate("Failed to delete budget", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.DeleteBudget(id), nil, nil)
	})
	if ok {
		vm.Load()
	}

	return ok
}

// BudgetDetailViewModel backs a single budget's screen, including its
// category allocations.
type BudgetDetailViewModel struct {
	*DetailViewModel[models.Budget]
	client *api.Client
}

// NewBudgetDetail returns the view-model for a budget detail screen.
func NewBudgetDetail(scope *Scope, client *api.Client, log zerolog.Logger) *BudgetDetailViewModel {
	vm := &BudgetDetailViewModel{client: client}
	vm.DetailViewModel = newDetailViewModel(scope, log, "Failed to load budget",
		func(ctx context.Context, id types.ID) (models.Budget, error) {
			resp, err := api.Request[models.BudgetResponse](ctx, client, api.Budget(id), nil)
			return resp.Budget, err
		})

	return vm
}

// ProgressFraction returns the width fraction for the budget's progress
// bar, clamped to [0, 1] even when the server reports more than 100%.
func (vm *BudgetDetailViewModel) ProgressFraction() float64 {
	state := vm.State()
	if state.Selected == nil || state.Selected.PercentageUsed == nil {
		return 0
	}

	return display.ClampProgress(*state.Selected.PercentageUsed / 100)
}

// Update submits changes to the budget, then reloads it to pick up the
// recomputed totals.
func (vm *BudgetDetailViewModel) Update(id types.ID, editable models.BudgetEditable) bool {
	ok := vm.mutate("Failed to save budget", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.UpdateBudget(id), editable, nil)
	})
	if ok {
		vm.Load(id)
	}

	return ok
}

// AddCategory creates a new allocation under the budget, then reloads the
// budget for the recomputed totals.
func (vm *BudgetDetailViewModel) AddCategory(budgetID types.ID, editable models.BudgetCategoryEditable) bool {
	ok := vm.mutate("Failed to save category", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.CreateBudgetCategory(budgetID), editable, nil)
	})
	if ok {
		vm.Load(budgetID)
	}

	return ok
}

// UpdateCategory submits changes to an allocation, then reloads the budget.
func (vm *BudgetDetailViewModel) UpdateCategory(budgetID, id types.ID, editable models.BudgetCategoryEditable) bool {
	ok := vm.mutate("Failed to save category", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.UpdateBudgetCategory(budgetID, id), editable, nil)
	})
	if ok {
		vm.Load(budgetID)
	}

	return ok
}

// DeleteCategory removes an allocation after confirmation, then reloads
// the budget.
func (vm *BudgetDetailViewModel) DeleteCategory(budgetID, id types.ID) bool {
	ok := vm.mutate("Failed to delete category", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.DeleteBudgetCategory(budgetID, id), nil, nil)
	})
	if ok {
		vm.Load(budgetID)
	}

	return ok
}
