package viewmodel

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/homecircle/homecircle-go/api"
	"github.com/homecircle/homecircle-go/models"
	"github.com/homecircle/homecircle-go/types"
)

// DocumentsViewModel backs the documents tab view, which shows a circle's
// resources and legal documents side by side. Both lists load together;
// the screen is only done loading once both responses are in.
type DocumentsViewModel struct {
	scope    *Scope
	client   *api.Client
	log      zerolog.Logger
	circleID types.ID

	resources    []models.FamilyResource
	legal        []models.LegalDocument
	isLoading    bool
	errorMessage *string
}

// DocumentsState is a snapshot of the documents screen's observable fields.
type DocumentsState struct {
	Resources    []models.FamilyResource
	Legal        []models.LegalDocument
	IsLoading    bool
	ErrorMessage *string
}

// NewDocuments returns the view-model for a circle's documents tab.
func NewDocuments(scope *Scope, client *api.Client, log zerolog.Logger, circleID types.ID) *DocumentsViewModel {
	return &DocumentsViewModel{
		scope:    scope,
		client:   client,
		log:      log,
		circleID: circleID,
	}
}

// State returns a snapshot of the observable fields. It must not be
// called from a task running on the loop.
func (vm *DocumentsViewModel) State() DocumentsState {
	var state DocumentsState
	vm.scope.loop.Perform(func() {
		state = DocumentsState{
			Resources:    vm.resources,
			Legal:        vm.legal,
			IsLoading:    vm.isLoading,
			ErrorMessage: vm.errorMessage,
		}
	})

	return state
}

// fetchBoth loads the two independent lists concurrently and joins them.
func (vm *DocumentsViewModel) fetchBoth(ctx context.Context) ([]models.FamilyResource, []models.LegalDocument, error) {
	var resources []models.FamilyResource
	var legal []models.LegalDocument

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		resp, err := api.Request[models.FamilyResourcesResponse](ctx, vm.client, api.Resources(vm.circleID), nil)
		resources = resp.Resources
		return err
	})

	group.Go(func() error {
		resp, err := api.Request[models.LegalDocumentsResponse](ctx, vm.client, api.LegalDocuments(vm.circleID), nil)
		legal = resp.Documents
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	return resources, legal, nil
}

// Load fetches both lists and blocks until the results have been applied.
// If either fetch fails the previously loaded lists stay in place.
func (vm *DocumentsViewModel) Load() {
	if !vm.scope.perform(func() { vm.isLoading = true }) {
		return
	}

	resources, legal, err := vm.fetchBoth(vm.scope.Context())

	vm.scope.perform(func() {
		vm.isLoading = false
		if err != nil {
			message := displayError(err, "Failed to load documents")
			vm.errorMessage = &message
			return
		}

		vm.resources = resources
		vm.legal = legal
		vm.errorMessage = nil
	})
}

// Refresh re-fetches both lists without toggling the loading flag.
// Failures are logged only.
func (vm *DocumentsViewModel) Refresh() {
	resources, legal, err := vm.fetchBoth(vm.scope.Context())
	if err != nil {
		vm.log.Warn().Err(err).Msg("refresh failed")
		return
	}

	vm.scope.perform(func() {
		vm.resources = resources
		vm.legal = legal
		vm.errorMessage = nil
	})
}

// CreateResource files a new resource and reloads the tab on success.
func (vm *DocumentsViewModel) CreateResource(editable models.FamilyResourceEditable) bool {
	ok := vm.mutate("Failed to save document", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.CreateResource(vm.circleID), editable, nil)
	})
	if ok {
		vm.Load()
	}

	return ok
}

// UpdateResource submits changes to a resource and reloads the tab on
// success.
func (vm *DocumentsViewModel) UpdateResource(id types.ID, editable models.FamilyResourceEditable) bool {
	ok := vm.mutate("Failed to save document", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.UpdateResource(id), editable, nil)
	})
	if ok {
		vm.Load()
	}

	return ok
}

// DeleteResource removes a resource after confirmation and reloads the tab.
func (vm *DocumentsViewModel) DeleteResource(id types.ID) bool {
	ok := vm.mutate("Failed to delete document", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.DeleteResource(id), nil, nil)
	})
	if ok {
		vm.Load()
	}

	return ok
}

// CreateLegal files a new legal document and reloads the tab on success.
func (vm *DocumentsViewModel) CreateLegal(editable models.LegalDocumentEditable) bool {
	ok := vm.mutate("Failed to save document", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.CreateLegalDocument(vm.circleID), editable, nil)
	})
	if ok {
		vm.Load()
	}

	return ok
}

// UpdateLegal submits changes to a legal document and reloads the tab on
// success.
func (vm *DocumentsViewModel) UpdateLegal(id types.ID, editable models.LegalDocumentEditable) bool {
	ok := vm.mutate("Failed to save document", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.UpdateLegalDocument(id), editable, nil)
	})
	if ok {
		vm.Load()
	}

	return ok
}

// DeleteLegal removes a legal document after confirmation and reloads the
// tab.
func (vm *DocumentsViewModel) DeleteLegal(id types.ID) bool {
	ok := vm.mutate("Failed to delete document", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.DeleteLegalDocument(id), nil, nil)
	})
	if ok {
		vm.Load()
	}

	return ok
}

// mutate runs a mutating request and reports success, publishing the
// display string on failure.
func (vm *DocumentsViewModel) mutate(fallback string, op func(ctx context.Context) error) bool {
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
