package viewmodel_test

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homecircle/homecircle-go/models"
	"github.com/homecircle/homecircle-go/test"
	"github.com/homecircle/homecircle-go/viewmodel"
)

func (suite *TestSuiteStandard) TestHealthLoadCombinedRecords() {
	member := suite.seedMember()
	suite.server.SeedAllergy(member.ID, models.Allergy{Name: test.Ptr("Peanuts"), Severity: test.Ptr("severe")})
	suite.server.SeedMedication(member.ID, models.Medication{Name: test.Ptr("Antihistamine")})

	vm := viewmodel.NewHealth(suite.scope, suite.client, suite.log, member.ID)
	vm.Load()

	state := vm.State()
	require.Len(suite.T(), state.Allergies, 1)
	assert.Equal(suite.T(), "Peanuts", *state.Allergies[0].Name)
	require.Len(suite.T(), state.Medications, 1)
	assert.Empty(suite.T(), state.Conditions)
	assert.False(suite.T(), state.IsLoading)
	assert.Nil(suite.T(), state.ErrorMessage)
}

func (suite *TestSuiteStandard) TestHealthLoadFailureKeepsRecords() {
	member := suite.seedMember()
	suite.server.SeedAllergy(member.ID, models.Allergy{Name: test.Ptr("Peanuts")})

	vm := viewmodel.NewHealth(suite.scope, suite.client, suite.log, member.ID)
	vm.Load()
	require.Len(suite.T(), vm.State().Allergies, 1)

	suite.server.FailWith(http.StatusInternalServerError, "boom")
	vm.Load()

	state := vm.State()
	assert.Len(suite.T(), state.Allergies, 1)
	require.NotNil(suite.T(), state.ErrorMessage)
	assert.Equal(suite.T(), "boom", *state.ErrorMessage)
}

func (suite *TestSuiteStandard) TestHealthAddRecordReloads() {
	member := suite.seedMember()

	vm := viewmodel.NewHealth(suite.scope, suite.client, suite.log, member.ID)
	ok := vm.AddRecord(viewmodel.HealthAllergies, models.Allergy{Name: test.Ptr("Pollen")})
	require.True(suite.T(), ok)

	state := vm.State()
	require.Len(suite.T(), state.Allergies, 1)
	assert.Equal(suite.T(), "Pollen", *state.Allergies[0].Name)
}

func (suite *TestSuiteStandard) TestHealthDeleteRecordReloads() {
	member := suite.seedMember()
	allergy := suite.server.SeedAllergy(member.ID, models.Allergy{Name: test.Ptr("Pollen")})

	vm := viewmodel.NewHealth(suite.scope, suite.client, suite.log, member.ID)
	vm.Load()
	require.Len(suite.T(), vm.State().Allergies, 1)

	ok := vm.DeleteRecord(viewmodel.HealthAllergies, allergy.ID)
	require.True(suite.T(), ok)
	assert.Empty(suite.T(), vm.State().Allergies)
}

func (suite *TestSuiteStandard) TestHealthSchoolRecords() {
	member := suite.seedMember()

	vm := viewmodel.NewHealth(suite.scope, suite.client, suite.log, member.ID)
	ok := vm.AddSchoolRecord(models.SchoolRecord{
		SchoolName: test.Ptr("Lincoln Elementary"),
		Grade:      test.Ptr("3rd"),
	})
	require.True(suite.T(), ok)

	state := vm.State()
	require.Len(suite.T(), state.School, 1)
	assert.Equal(suite.T(), "Lincoln Elementary", *state.School[0].SchoolName)

	ok = vm.DeleteSchoolRecord(state.School[0].ID)
	require.True(suite.T(), ok)
	assert.Empty(suite.T(), vm.State().School)
}

func (suite *TestSuiteStandard) TestHealthSchoolLoadSwallowsFailure() {
	member := suite.seedMember()
	suite.server.SeedSchoolRecord(member.ID, models.SchoolRecord{SchoolName: test.Ptr("Lincoln Elementary")})

	vm := viewmodel.NewHealth(suite.scope, suite.client, suite.log, member.ID)
	vm.LoadSchool()
	require.Len(suite.T(), vm.State().School, 1)

	suite.server.FailWith(http.StatusInternalServerError, "boom")
	vm.LoadSchool()

	state := vm.State()
	assert.Len(suite.T(), state.School, 1)
	assert.Nil(suite.T(), state.ErrorMessage)
}
