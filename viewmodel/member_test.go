package viewmodel_test

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homecircle/homecircle-go/models"
	"github.com/homecircle/homecircle-go/test"
	"github.com/homecircle/homecircle-go/viewmodel"
)

func (suite *TestSuiteStandard) seedMember() models.FamilyMember {
	circle := suite.server.SeedCircle(models.FamilyCircle{Name: test.Ptr("Ours")})
	return suite.server.SeedMember(circle.ID, models.FamilyMember{
		FirstName: test.Ptr("Ada"),
		LastName:  test.Ptr("Parker"),
	})
}

func (suite *TestSuiteStandard) TestMemberDetailLoad() {
	member := suite.seedMember()

	vm := viewmodel.NewMemberDetail(suite.scope, suite.client, suite.log, member.ID)
	vm.Load()

	state := vm.State()
	require.NotNil(suite.T(), state.Selected)
	assert.Equal(suite.T(), "Ada", *state.Selected.FirstName)
	assert.Nil(suite.T(), state.ErrorMessage)
}

func (suite *TestSuiteStandard) TestMemberDetailUpdateReloads() {
	member := suite.seedMember()

	vm := viewmodel.NewMemberDetail(suite.scope, suite.client, suite.log, member.ID)
	vm.Load()

	ok := vm.Update(models.FamilyMemberEditable{FirstName: "Adeline", LastName: "Parker"})
	require.True(suite.T(), ok)

	state := vm.State()
	require.NotNil(suite.T(), state.Selected)
	assert.Equal(suite.T(), "Adeline", *state.Selected.FirstName)
}

func (suite *TestSuiteStandard) TestMemberMedicalRoundTrip() {
	member := suite.seedMember()

	vm := viewmodel.NewMemberDetail(suite.scope, suite.client, suite.log, member.ID)
	require.Nil(suite.T(), vm.Medical())

	ok := vm.SaveMedical(models.MedicalInfoEditable{
		BloodType:     "O-",
		PrimaryDoctor: "Dr. Wu",
	})
	require.True(suite.T(), ok)

	// SaveMedical reloads on success.
	medical := vm.Medical()
	require.NotNil(suite.T(), medical)
	assert.Equal(suite.T(), models.BloodType("O-"), *medical.BloodType)
	assert.Equal(suite.T(), "Dr. Wu", *medical.PrimaryDoctor)
}

func (suite *TestSuiteStandard) TestMemberMedicalLoadSwallowsFailure() {
	member := suite.seedMember()

	vm := viewmodel.NewMemberDetail(suite.scope, suite.client, suite.log, member.ID)
	suite.server.FailWith(http.StatusInternalServerError, "boom")
	vm.LoadMedical()

	assert.Nil(suite.T(), vm.Medical())
	assert.Nil(suite.T(), vm.State().ErrorMessage)
}

func (suite *TestSuiteStandard) TestMemberContacts() {
	member := suite.seedMember()
	suite.server.SeedContact(member.ID, models.Contact{
		Name:        test.Ptr("Grandma"),
		IsEmergency: test.Ptr(true),
	})
	suite.server.SeedContact(member.ID, models.Contact{
		Name: test.Ptr("Soccer coach"),
	})

	vm := viewmodel.NewMemberDetail(suite.scope, suite.client, suite.log, member.ID)
	vm.LoadContacts()

	assert.Len(suite.T(), vm.Contacts(), 2)

	emergency := vm.EmergencyContacts()
	require.Len(suite.T(), emergency, 1)
	assert.Equal(suite.T(), "Grandma", *emergency[0].Name)
}

func (suite *TestSuiteStandard) TestMemberContactsAddAndDelete() {
	member := suite.seedMember()

	vm := viewmodel.NewMemberDetail(suite.scope, suite.client, suite.log, member.ID)
	ok := vm.AddContact(models.ContactEditable{Name: "Grandma", IsEmergency: true})
	require.True(suite.T(), ok)
	require.Len(suite.T(), vm.Contacts(), 1)

	ok = vm.DeleteContact(vm.Contacts()[0].ID)
	require.True(suite.T(), ok)
	assert.Empty(suite.T(), vm.Contacts())
}

func (suite *TestSuiteStandard) TestMemberDocumentsOnePerKind() {
	member := suite.seedMember()

	vm := viewmodel.NewMemberDetail(suite.scope, suite.client, suite.log, member.ID)
	ok := vm.AddDocument(models.IdentityDocumentEditable{
		Kind:   models.DocumentPassport,
		Number: "X1234567",
	})
	require.True(suite.T(), ok)
	require.Len(suite.T(), vm.Documents(), 1)

	// A second document of the same kind is rejected by the backend.
	ok = vm.AddDocument(models.IdentityDocumentEditable{
		Kind:   models.DocumentPassport,
		Number: "X7654321",
	})
	assert.False(suite.T(), ok)
	assert.NotNil(suite.T(), vm.State().ErrorMessage)
	assert.Len(suite.T(), vm.Documents(), 1)
}
