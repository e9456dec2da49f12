package viewmodel_test

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homecircle/homecircle-go/models"
	"github.com/homecircle/homecircle-go/test"
	"github.com/homecircle/homecircle-go/viewmodel"
)

func (suite *TestSuiteStandard) TestDocumentsLoadBothLists() {
	circle := suite.server.SeedCircle(models.FamilyCircle{Name: test.Ptr("Ours")})
	suite.server.SeedResource(circle.ID, models.FamilyResource{
		Title: test.Ptr("House deed"),
		Type:  models.ResourceDeed,
	})
	suite.server.SeedLegal(circle.ID, models.LegalDocument{
		Title: test.Ptr("Will"),
		Type:  models.ResourceWill,
	})

	vm := viewmodel.NewDocuments(suite.scope, suite.client, suite.log, circle.ID)
	vm.Load()

	state := vm.State()
	require.Len(suite.T(), state.Resources, 1)
	assert.Equal(suite.T(), "House deed", *state.Resources[0].Title)
	require.Len(suite.T(), state.Legal, 1)
	assert.Equal(suite.T(), "Will", *state.Legal[0].Title)
	assert.False(suite.T(), state.IsLoading)
	assert.Nil(suite.T(), state.ErrorMessage)
}

func (suite *TestSuiteStandard) TestDocumentsLoadFailureKeepsBothLists() {
	circle := suite.server.SeedCircle(models.FamilyCircle{Name: test.Ptr("Ours")})
	suite.server.SeedResource(circle.ID, models.FamilyResource{Title: test.Ptr("House deed")})

	vm := viewmodel.NewDocuments(suite.scope, suite.client, suite.log, circle.ID)
	vm.Load()
	require.Len(suite.T(), vm.State().Resources, 1)

	// One failing fetch fails the whole load; neither list is replaced.
	suite.server.FailWith(http.StatusInternalServerError, "boom")
	vm.Load()

	state := vm.State()
	assert.Len(suite.T(), state.Resources, 1)
	require.NotNil(suite.T(), state.ErrorMessage)
}

func (suite *TestSuiteStandard) TestDocumentsCreateResourceReloads() {
	circle := suite.server.SeedCircle(models.FamilyCircle{Name: test.Ptr("Ours")})

	vm := viewmodel.NewDocuments(suite.scope, suite.client, suite.log, circle.ID)
	ok := vm.CreateResource(models.FamilyResourceEditable{
		Title: "Rental contract",
		Type:  models.ResourceContract,
	})
	require.True(suite.T(), ok)

	state := vm.State()
	require.Len(suite.T(), state.Resources, 1)
	assert.Equal(suite.T(), "Rental contract", *state.Resources[0].Title)
	assert.Equal(suite.T(), models.StatusActive, state.Resources[0].Status)
}

func (suite *TestSuiteStandard) TestDocumentsLegalRoundTrip() {
	circle := suite.server.SeedCircle(models.FamilyCircle{Name: test.Ptr("Ours")})

	vm := viewmodel.NewDocuments(suite.scope, suite.client, suite.log, circle.ID)
	ok := vm.CreateLegal(models.LegalDocumentEditable{
		Title: "Power of attorney",
		Type:  models.ResourcePowerOfAttorney,
	})
	require.True(suite.T(), ok)
	require.Len(suite.T(), vm.State().Legal, 1)

	legal := vm.State().Legal[0]
	ok = vm.UpdateLegal(legal.ID, models.LegalDocumentEditable{
		Title:  "Power of attorney",
		Type:   models.ResourcePowerOfAttorney,
		Status: models.StatusExpired,
	})
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), models.StatusExpired, vm.State().Legal[0].Status)

	ok = vm.DeleteLegal(legal.ID)
	require.True(suite.T(), ok)
	assert.Empty(suite.T(), vm.State().Legal)
}
