package viewmodel

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/homecircle/homecircle-go/api"
	"github.com/homecircle/homecircle-go/models"
	"github.com/homecircle/homecircle-go/types"
)

// CirclesViewModel backs the family circle list.
type CirclesViewModel struct {
	*ListViewModel[models.FamilyCircle]
	client *api.Client
}

// NewCircles returns the view-model for the circle screens.
func NewCircles(scope *Scope, client *api.Client, log zerolog.Logger) *CirclesViewModel {
	vm := &CirclesViewModel{client: client}
	vm.ListViewModel = newListViewModel(scope, log, "Failed to load family circles",
		func(ctx context.Context) ([]models.FamilyCircle, error) {
			resp, err := api.Request[models.FamilyCirclesResponse](ctx, client, api.Circles(), nil)
			return resp.Circles, err
		})

	return vm
}

// Create submits a new circle and reports success.
func (vm *CirclesViewModel) Create(editable models.FamilyCircleEditable) bool {
	return vm.mutate("Failed to save family circle", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.CreateCircle(), editable, nil)
	})
}

// Update renames a circle and reports success.
func (vm *CirclesViewModel) Update(id types.ID, editable models.FamilyCircleEditable) bool {
	return vm.mutate("Failed to save family circle", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.UpdateCircle(id), editable, nil)
	})
}

// Delete removes a circle after confirmation, then reloads the list.
func (vm *CirclesViewModel) Delete(id types.ID) bool {
	ok := vm.mutate("Failed to delete family circle", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.DeleteCircle(id), nil, nil)
	})
	if ok {
		vm.Load()
	}

	return ok
}

// MembersViewModel backs the member list of one family circle.
type MembersViewModel struct {
	*ListViewModel[models.FamilyMember]
	client   *api.Client
	circleID types.ID
}

// NewMembers returns the view-model for a circle's member list.
func NewMembers(scope *Scope, client *api.Client, log zerolog.Logger, circleID types.ID) *MembersViewModel {
	vm := &MembersViewModel{client: client, circleID: circleID}
	vm.ListViewModel = newListViewModel(scope, log, "Failed to load family members",
		func(ctx context.Context) ([]models.FamilyMember, error) {
			resp, err := api.Request[models.FamilyMembersResponse](ctx, client, api.Members(circleID), nil)
			return resp.Members, err
		})

	return vm
}

// Create adds a member to the circle and reports success.
func (vm *MembersViewModel) Create(editable models.FamilyMemberEditable) bool {
	return vm.mutate("Failed to save family member", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.CreateMember(vm.circleID), editable, nil)
	})
}

// Delete removes a member after confirmation, then reloads the list.
func (vm *MembersViewModel) Delete(id types.ID) bool {
	ok := vm.mutate("Failed to delete family member", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.DeleteMember(id), nil, nil)
	})
	if ok {
		vm.Load()
	}

	return ok
}
