package viewmodel

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/homecircle/homecircle-go/api"
	"github.com/homecircle/homecircle-go/models"
	"github.com/homecircle/homecircle-go/types"
)

// Health record kinds as the backend names them in paths.
const (
	HealthAllergies    = "allergies"
	HealthConditions   = "conditions"
	HealthProviders    = "providers"
	HealthMedications  = "medications"
	HealthVaccinations = "vaccinations"
)

// HealthViewModel backs a member's health screen: the combined health
// sub-records plus the school records tab.
type HealthViewModel struct {
	scope    *Scope
	client   *api.Client
	log      zerolog.Logger
	memberID types.ID

	records      models.HealthRecordsResponse
	school       []models.SchoolRecord
	isLoading    bool
	errorMessage *string
}

// HealthState is a snapshot of the health screen's observable fields.
type HealthState struct {
	Allergies    []models.Allergy
	Conditions   []models.Condition
	Providers    []models.Provider
	Medications  []models.Medication
	Vaccinations []models.Vaccination
	School       []models.SchoolRecord
	IsLoading    bool
	ErrorMessage *string
}

// NewHealth returns the view-model for a member's health screen.
func NewHealth(scope *Scope, client *api.Client, log zerolog.Logger, memberID types.ID) *HealthViewModel {
	return &HealthViewModel{
		scope:    scope,
		client:   client,
		log:      log,
		memberID: memberID,
	}
}

// State returns a snapshot of the observable fields. It must not be
// called from a task running on the loop.
func (vm *HealthViewModel) State() HealthState {
	var state HealthState
	vm.scope.loop.Perform(func() {
		state = HealthState{
			Allergies:    vm.records.Allergies,
			Conditions:   vm.records.Conditions,
			Providers:    vm.records.Providers,
			Medications:  vm.records.Medications,
			Vaccinations: vm.records.Vaccinations,
			School:       vm.school,
			IsLoading:    vm.isLoading,
			ErrorMessage: vm.errorMessage,
		}
	})

	return state
}

// Load fetches the combined health records. On failure previously loaded
// records stay in place and the error message is set.
func (vm *HealthViewModel) Load() {
	if !vm.scope.perform(func() { vm.isLoading = true }) {
		return
	}

	resp, err := api.Request[models.HealthRecordsResponse](vm.scope.Context(), vm.client, api.MemberHealthRecords(vm.memberID), nil)

	vm.scope.perform(func() {
		vm.isLoading = false
		if err != nil {
			message := displayError(err, "Failed to load health records")
			vm.errorMessage = &message
			return
		}

		vm.records = resp
		vm.errorMessage = nil
	})
}

// Refresh re-fetches the health records without toggling the loading
// flag. Failures are logged only.
func (vm *HealthViewModel) Refresh() {
	resp, err := api.Request[models.HealthRecordsResponse](vm.scope.Context(), vm.client, api.MemberHealthRecords(vm.memberID), nil)
	if err != nil {
		vm.log.Warn().Err(err).Msg("refresh failed")
		return
	}

	vm.scope.perform(func() {
		vm.records = resp
		vm.errorMessage = nil
	})
}

// LoadSchool fetches the school records. The tab is secondary; failures
// are logged only.
func (vm *HealthViewModel) LoadSchool() {
	resp, err := api.Request[models.SchoolRecordsResponse](vm.scope.Context(), vm.client, api.MemberSchoolRecords(vm.memberID), nil)
	if err != nil {
		vm.log.Warn().Err(err).Msg("loading school records failed")
		return
	}

	vm.scope.perform(func() { vm.school = resp.Records })
}

// AddRecord creates a health sub-record of the given kind and reloads the
// combined records on success.
func (vm *HealthViewModel) AddRecord(kind string, record any) bool {
	ok := vm.mutate("Failed to save health record", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.CreateHealthRecord(vm.memberID, kind), record, nil)
	})
	if ok {
		vm.Load()
	}

	return ok
}

// DeleteRecord removes a health sub-record after confirmation and reloads
// the combined records.
func (vm *HealthViewModel) DeleteRecord(kind string, id types.ID) bool {
	ok := vm.mutate("Failed to delete health record", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.DeleteHealthRecord(vm.memberID, kind, id), nil, nil)
	})
	if ok {
		vm.Load()
	}

	return ok
}

// AddSchoolRecord creates a school record and reloads the tab on success.
func (vm *HealthViewModel) AddSchoolRecord(record models.SchoolRecord) bool {
	ok := vm.mutate("Failed to save school record", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.CreateSchoolRecord(vm.memberID), record, nil)
	})
	if ok {
		vm.LoadSchool()
	}

	return ok
}

// DeleteSchoolRecord removes a school record after confirmation and
// reloads the tab.
func (vm *HealthViewModel) DeleteSchoolRecord(id types.ID) bool {
	ok := vm.mutate("Failed to delete school record", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.DeleteSchoolRecord(id), nil, nil)
	})
	if ok {
		vm.LoadSchool()
	}

	return ok
}

// mutate runs a mutating request and reports success, publishing the
// display string on failure.
func (vm *HealthViewModel) mutate(fallback string, op func(ctx context.Context) error) bool {
	err := op(vm.scope.Context())
	if err != nil {
		vm.scope.perform(func() {
			message := displayError(err, fallback)
			vm.errorMessage = &message
		})
		return false
	}

	return true
}
