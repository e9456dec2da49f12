package viewmodel

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/homecircle/homecircle-go/api"
	"github.com/homecircle/homecircle-go/models"
	"github.com/homecircle/homecircle-go/types"
)

// MemberDetailViewModel backs a single family member's profile screen:
// the member record itself plus the medical info, contacts and identity
// documents shown on its tabs.
type MemberDetailViewModel struct {
	*DetailViewModel[models.FamilyMember]
	client   *api.Client
	memberID types.ID

	medical   *models.MedicalInfo
	contacts  []models.Contact
	documents []models.IdentityDocument
}

// NewMemberDetail returns the view-model for a member profile screen.
func NewMemberDetail(scope *Scope, client *api.Client, log zerolog.Logger, memberID types.ID) *MemberDetailViewModel {
	vm := &MemberDetailViewModel{client: client, memberID: memberID}
	vm.DetailViewModel = newDetailViewModel(scope, log, "Failed to load family member",
		func(ctx context.Context, id types.ID) (models.FamilyMember, error) {
			resp, err := api.Request[models.FamilyMemberResponse](ctx, client, api.Member(id), nil)
			return resp.Member, err
		})

	return vm
}

// Load fetches the member record for the screen.
func (vm *MemberDetailViewModel) Load() {
	vm.DetailViewModel.Load(vm.memberID)
}

// Refresh re-fetches the member record, swallowing failures.
func (vm *MemberDetailViewModel) Refresh() {
	vm.DetailViewModel.Refresh(vm.memberID)
}

// Update submits changes to the member record and reports success.
func (vm *MemberDetailViewModel) Update(editable models.FamilyMemberEditable) bool {
	ok := vm.mutate("Failed to save family member", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.UpdateMember(vm.memberID), editable, nil)
	})
	if ok {
		vm.Load()
	}

	return ok
}

// Medical returns the loaded medical record, if any. It must not be
// called from a task running on the loop.
func (vm *MemberDetailViewModel) Medical() *models.MedicalInfo {
	var medical *models.MedicalInfo
	vm.scope.loop.Perform(func() { medical = vm.medical })
	return medical
}

// LoadMedical fetches the member's medical record. The medical tab is a
// secondary surface; failures are logged only.
func (vm *MemberDetailViewModel) LoadMedical() {
	resp, err := api.Request[models.MedicalInfoResponse](vm.scope.Context(), vm.client, api.MemberMedical(vm.memberID), nil)
	if err != nil {
		vm.log.Warn().Err(err).Msg("loading medical info failed")
		return
	}

	vm.scope.perform(func() { vm.medical = &resp.Medical })
}

// SaveMedical submits the medical record and reloads it on success.
func (vm *MemberDetailViewModel) SaveMedical(editable models.MedicalInfoEditable) bool {
	ok := vm.mutate("Failed to save medical info", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.UpdateMemberMedical(vm.memberID), editable, nil)
	})
	if ok {
		vm.LoadMedical()
	}

	return ok
}

// Contacts returns the loaded contacts. It must not be called from a task
// running on the loop.
func (vm *MemberDetailViewModel) Contacts() []models.Contact {
	var contacts []models.Contact
	vm.scope.loop.Perform(func() { contacts = vm.contacts })
	return contacts
}

// EmergencyContacts returns only the contacts flagged for emergencies.
func (vm *MemberDetailViewModel) EmergencyContacts() []models.Contact {
	var emergency []models.Contact
	for _, contact := range vm.Contacts() {
		if contact.IsEmergency != nil && *contact.IsEmergency {
			emergency = append(emergency, contact)
		}
	}

	return emergency
}

// LoadContacts fetches the member's contacts. Failures are logged only.
func (vm *MemberDetailViewModel) LoadContacts() {
	resp, err := api.Request[models.ContactsResponse](vm.scope.Context(), vm.client, api.MemberContacts(vm.memberID), nil)
	if err != nil {
		vm.log.Warn().Err(err).Msg("loading contacts failed")
		return
	}

	vm.scope.perform(func() { vm.contacts = resp.Contacts })
}

// AddContact creates a contact and reloads the list on success.
func (vm *MemberDetailViewModel) AddContact(editable models.ContactEditable) bool {
	ok := vm.mutate("Failed to save contact", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.CreateMemberContact(vm.memberID), editable, nil)
	})
	if ok {
		vm.LoadContacts()
	}

	return ok
}

// UpdateContact submits changes to a contact and reloads the list on
// success.
func (vm *MemberDetailViewModel) UpdateContact(id types.ID, editable models.ContactEditable) bool {
	ok := vm.mutate("Failed to save contact", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.UpdateContact(id), editable, nil)
	})
	if ok {
		vm.LoadContacts()
	}

	return ok
}

// DeleteContact removes a contact after confirmation and reloads the list.
func (vm *MemberDetailViewModel) DeleteContact(id types.ID) bool {
	ok := vm.mutate("Failed to delete contact", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.DeleteContact(id), nil, nil)
	})
	if ok {
		vm.LoadContacts()
	}

	return ok
}

// Documents returns the loaded identity documents. It must not be called
// from a task running on the loop.
func (vm *MemberDetailViewModel) Documents() []models.IdentityDocument {
	var documents []models.IdentityDocument
	vm.scope.loop.Perform(func() { documents = vm.documents })
	return documents
}

// LoadDocuments fetches the member's identity documents. Failures are
// logged only.
func (vm *MemberDetailViewModel) LoadDocuments() {
	resp, err := api.Request[models.IdentityDocumentsResponse](vm.scope.Context(), vm.client, api.MemberDocuments(vm.memberID), nil)
	if err != nil {
		vm.log.Warn().Err(err).Msg("loading identity documents failed")
		return
	}

	vm.scope.perform(func() { vm.documents = resp.Documents })
}

// AddDocument stores an identity document and reloads the list on success.
func (vm *MemberDetailViewModel) AddDocument(editable models.IdentityDocumentEditable) bool {
	ok := vm.mutate("Failed to save document", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.CreateMemberDocument(vm.memberID), editable, nil)
	})
	if ok {
		vm.LoadDocuments()
	}

	return ok
}

// DeleteDocument removes an identity document after confirmation and
// reloads the list.
func (vm *MemberDetailViewModel) DeleteDocument(id types.ID) bool {
	ok := vm.mutate("Failed to delete document", func(ctx context.Context) error {
		return vm.client.Do(ctx, api.DeleteDocument(id), nil, nil)
	})
	if ok {
		vm.LoadDocuments()
	}

	return ok
}
