package viewmodel

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/homecircle/homecircle-go/api"
	"github.com/homecircle/homecircle-go/models"
)

// DashboardViewModel backs the home screen: the budget summary as the
// primary resource, reminders as a supplementary strip. A failed primary
// load surfaces an error with a retry; a failed reminders load just leaves
// the strip empty.
type DashboardViewModel struct {
	*ListViewModel[models.Budget]
	client *api.Client

	reminders []models.Reminder
}

// NewDashboard returns the view-model for the home screen.
func NewDashboard(scope *Scope, client *api.Client, log zerolog.Logger) *DashboardViewModel {
	vm := &DashboardViewModel{client: client}
	vm.ListViewModel = newListViewModel(scope, log, "Failed to load dashboard",
		func(ctx context.Context) ([]models.Budget, error) {
			resp, err := api.Request[models.BudgetsResponse](ctx, client, api.Budgets(), nil)
			return resp.Budgets, err
		})

	return vm
}

// Reminders returns the loaded reminders. It must not be called from a
// task running on the loop.
func (vm *DashboardViewModel) Reminders() []models.Reminder {
	var reminders []models.Reminder
	vm.scope.loop.Perform(func() { reminders = vm.reminders })
	return reminders
}

// LoadReminders fetches the reminder strip. Failures are logged only.
func (vm *DashboardViewModel) LoadReminders() {
	resp, err := api.Request[models.RemindersResponse](vm.scope.Context(), vm.client, api.Reminders(), nil)
	if err != nil {
		vm.log.Warn().Err(err).Msg("loading reminders failed")
		return
	}

	vm.scope.perform(func() { vm.reminders = resp.Reminders })
}
