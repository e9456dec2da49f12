package viewmodel

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/homecircle/homecircle-go/api"
	"github.com/homecircle/homecircle-go/models"
	"github.com/homecircle/homecircle-go/types"
)

// InsuranceViewModel backs the household insurance policy screens.
type InsuranceViewModel struct {
	*ListViewModel[models.InsurancePolicy]
	client *api.Client
}

// NewInsurance returns the view-model for the insurance screens.
func NewInsurance(scope *Scope, client *api.Client, log zerolog.Logger) *InsuranceViewModel {
	vm := &InsuranceViewModel{client: client}
	vm.ListViewModel = newListViewModel(scope, log, "Failed to load insurance policies",
		func(ctx context.Context) ([]models.InsurancePolicy, error) {
			resp, err := api.Request[models.InsurancePoliciesResponse](ctx, client, api.InsurancePolicies(), nil)
			return resp.Policies, err
		})

	return vm
}

// Create files a new policy and reports success.
func (vm *InsuranceViewModel) Create(editable models.InsurancePolicyEditable) bool {
	return vm.mutate("Failed to save insurance policy", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.CreateInsurancePolicy(), editable, nil)
	})
}

// Update submits changes to a policy and reports success.
func (vm *InsuranceViewModel) Update(id types.ID, editable models.InsurancePolicyEditable) bool {
	return vm.mutate("Failed to save insurance policy", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.UpdateInsurancePolicy(id), editable, nil)
	})
}

// Delete removes a policy after confirmation, then reloads the list.
func (vm *InsuranceViewModel) Delete(id types.ID) bool {
	ok := vm.mutate("Failed to delete insurance policy", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.DeleteInsurancePolicy(id), nil, nil)
	})
	if ok {
		vm.Load()
	}

	return ok
}

// TaxReturnsViewModel backs the household tax return screens.
type TaxReturnsViewModel struct {
	*ListViewModel[models.TaxReturn]
	client *api.Client
}

// NewTaxReturns returns the view-model for the tax return screens.
func NewTaxReturns(scope *Scope, client *api.Client, log zerolog.Logger) *TaxReturnsViewModel {
	vm := &TaxReturnsViewModel{client: client}
	vm.ListViewModel = newListViewModel(scope, log, "Failed to load tax returns",
		func(ctx context.Context) ([]models.TaxReturn, error) {
			resp, err := api.Request[models.TaxReturnsResponse](ctx, client, api.TaxReturns(), nil)
			return resp.Returns, err
		})

	return vm
}

// Create files a new return and reports success.
func (vm *TaxReturnsViewModel) Create(editable models.TaxReturnEditable) bool {
	return vm.mutate("Failed to save tax return", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.CreateTaxReturn(), editable, nil)
	})
}

// Update submits changes to a return and reports success.
func (vm *TaxReturnsViewModel) Update(id types.ID, editable models.TaxReturnEditable) bool {
	return vm.mutate("Failed to save tax return", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.UpdateTaxReturn(id), editable, nil)
	})
}

// Delete removes a return after confirmation, then reloads the list.
func (vm *TaxReturnsViewModel) Delete(id types.ID) bool {
	ok := vm.mutate("Failed to delete tax return", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.DeleteTaxReturn(id), nil, nil)
	})
	if ok {
		vm.Load()
	}

	return ok
}
