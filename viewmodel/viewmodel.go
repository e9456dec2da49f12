package viewmodel

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/homecircle/homecircle-go/api"
	"github.com/homecircle/homecircle-go/types"
)

// displayError maps a failure onto the string a screen shows. A typed
// backend error is shown verbatim; everything else gets the static
// fallback. Timeouts, decode failures and status errors are deliberately
// not differentiated further.
func displayError(err error, fallback string) string {
	if apiErr, ok := api.AsError(err); ok {
		return apiErr.Message
	}
	return fallback
}

// ListState is a snapshot of a list view-model's observable fields.
type ListState[T any] struct {
	Items        []T
	IsLoading    bool
	ErrorMessage *string
}

// ListViewModel is the shared list half of the resource view-model
// pattern: the loaded items, the loading/error pair, and the Load/Refresh
// contract. Resource view-models embed it and add their mutations.
type ListViewModel[T any] struct {
	scope    *Scope
	log      zerolog.Logger
	fetch    func(ctx context.Context) ([]T, error)
	fallback string

	items        []T
	isLoading    bool
	errorMessage *string
}

func newListViewModel[T any](scope *Scope, log zerolog.Logger, fallback string, fetch func(ctx context.Context) ([]T, error)) *ListViewModel[T] {
	return &ListViewModel[T]{
		scope:    scope,
		log:      log,
		fetch:    fetch,
		fallback: fallback,
	}
}

// State returns a snapshot of the observable fields. It must not be called
// from a task running on the loop.
func (vm *ListViewModel[T]) State() ListState[T] {
	var state ListState[T]
	vm.scope.loop.Perform(func() {
		state = ListState[T]{
			Items:        vm.items,
			IsLoading:    vm.isLoading,
			ErrorMessage: vm.errorMessage,
		}
	})

	return state
}

// Load fetches the list and blocks until the result has been applied. On
// failure the previously loaded items stay in place so the screen shows
// stale data instead of going blank.
//
// Overlapping Load calls are not coordinated; whichever response lands
// last wins.
func (vm *ListViewModel[T]) Load() {
	if !vm.scope.perform(func() { vm.isLoading = true }) {
		return
	}

	items, err := vm.fetch(vm.scope.Context())

	vm.scope.perform(func() {
		vm.isLoading = false
		if err != nil {
			message := displayError(err, vm.fallback)
			vm.errorMessage = &message
			return
		}

		vm.items = items
		vm.errorMessage = nil
	})
}

// Refresh re-fetches the list without toggling the loading flag, so
// pull-to-refresh does not replace the screen with a spinner. Failures are
// logged and otherwise swallowed; the previous data stays visible.
func (vm *ListViewModel[T]) Refresh() {
	items, err := vm.fetch(vm.scope.Context())
	if err != nil {
		vm.log.Warn().Err(err).Msg("refresh failed")
		return
	}

	vm.scope.perform(func() {
		vm.items = items
		vm.errorMessage = nil
	})
}

// mutate runs a mutating request and reports success. On failure the
// display string is published to the error field.
func (vm *ListViewModel[T]) mutate(fallback string, op func(ctx context.Context) error) bool {
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

// DetailState is a snapshot of a detail view-model's observable fields.
type DetailState[T any] struct {
	Selected     *T
	IsLoading    bool
	ErrorMessage *string
}

// DetailViewModel is the shared detail half of the pattern: one selected
// resource plus the loading/error pair.
type DetailViewModel[T any] struct {
	scope    *Scope
	log      zerolog.Logger
	fetch    func(ctx context.Context, id types.ID) (T, error)
	fallback string

	selected     *T
	isLoading    bool
	errorMessage *string
}

func newDetailViewModel[T any](scope *Scope, log zerolog.Logger, fallback string, fetch func(ctx context.Context, id types.ID) (T, error)) *DetailViewModel[T] {
	return &DetailViewModel[T]{
		scope:    scope,
		log:      log,
		fetch:    fetch,
		fallback: fallback,
	}
}

// State returns a snapshot of the observable fields. It must not be called
// from a task running on the loop.
func (vm *DetailViewModel[T]) State() DetailState[T] {
	var state DetailState[T]
	vm.scope.loop.Perform(func() {
		state = DetailState[T]{
			Selected:     vm.selected,
			IsLoading:    vm.isLoading,
			ErrorMessage: vm.errorMessage,
		}
	})

	return state
}

// Load fetches the resource and blocks until the result has been applied.
// On failure the previously selected resource stays in place.
func (vm *DetailViewModel[T]) Load(id types.ID) {
	if !vm.scope.perform(func() { vm.isLoading = true }) {
		return
	}

	selected, err := vm.fetch(vm.scope.Context(), id)

	vm.scope.perform(func() {
		vm.isLoading = false
		if err != nil {
			message := displayError(err, vm.fallback)
			vm.errorMessage = &message
			return
		}

		vm.selected = &selected
		vm.errorMessage = nil
	})
}

// Refresh re-fetches the resource without toggling the loading flag.
// Failures are logged and otherwise swallowed.
func (vm *DetailViewModel[T]) Refresh(id types.ID) {
	selected, err := vm.fetch(vm.scope.Context(), id)
	if err != nil {
		vm.log.Warn().Err(err).Msg("refresh failed")
		return
	}

	vm.scope.perform(func() {
		vm.selected = &selected
		vm.errorMessage = nil
	})
}

// mutate runs a mutating request and reports success. On failure the
// display string is published to the error field.
func (vm *DetailViewModel[T]) mutate(fallback string, op func(ctx context.Context) error) bool {
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
