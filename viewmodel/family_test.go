package viewmodel_test

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homecircle/homecircle-go/models"
	"github.com/homecircle/homecircle-go/test"
	"github.com/homecircle/homecircle-go/viewmodel"
)

func (suite *TestSuiteStandard) TestCirclesLoadAndCreate() {
	vm := viewmodel.NewCircles(suite.scope, suite.client, suite.log)
	vm.Load()
	require.Empty(suite.T(), vm.State().Items)

	ok := vm.Create(models.FamilyCircleEditable{Name: "The Parkers"})
	require.True(suite.T(), ok)

	vm.Load()
	state := vm.State()
	require.Len(suite.T(), state.Items, 1)
	assert.Equal(suite.T(), "The Parkers", *state.Items[0].Name)
}

func (suite *TestSuiteStandard) TestCirclesDeleteReloads() {
	circle := suite.server.SeedCircle(models.FamilyCircle{Name: test.Ptr("The Parkers")})

	vm := viewmodel.NewCircles(suite.scope, suite.client, suite.log)
	vm.Load()
	require.Len(suite.T(), vm.State().Items, 1)

	ok := vm.Delete(circle.ID)
	require.True(suite.T(), ok)
	assert.Empty(suite.T(), vm.State().Items)
}

func (suite *TestSuiteStandard) TestMembersScopedToCircle() {
	ours := suite.server.SeedCircle(models.FamilyCircle{Name: test.Ptr("Ours")})
	other := suite.server.SeedCircle(models.FamilyCircle{Name: test.Ptr("Other")})
	suite.server.SeedMember(ours.ID, models.FamilyMember{FirstName: test.Ptr("Ada")})
	suite.server.SeedMember(other.ID, models.FamilyMember{FirstName: test.Ptr("Grace")})

	vm := viewmodel.NewMembers(suite.scope, suite.client, suite.log, ours.ID)
	vm.Load()

	state := vm.State()
	require.Len(suite.T(), state.Items, 1)
	assert.Equal(suite.T(), "Ada", *state.Items[0].FirstName)
}

func (suite *TestSuiteStandard) TestMembersCreateAndDelete() {
	circle := suite.server.SeedCircle(models.FamilyCircle{Name: test.Ptr("Ours")})

	vm := viewmodel.NewMembers(suite.scope, suite.client, suite.log, circle.ID)
	ok := vm.Create(models.FamilyMemberEditable{FirstName: "Ada", LastName: "Parker"})
	require.True(suite.T(), ok)

	vm.Load()
	require.Len(suite.T(), vm.State().Items, 1)

	ok = vm.Delete(vm.State().Items[0].ID)
	require.True(suite.T(), ok)
	assert.Empty(suite.T(), vm.State().Items)
}

func (suite *TestSuiteStandard) TestMembersLoadFailureShowsBackendMessage() {
	circle := suite.server.SeedCircle(models.FamilyCircle{Name: test.Ptr("Ours")})

	vm := viewmodel.NewMembers(suite.scope, suite.client, suite.log, circle.ID)
	suite.server.FailWith(http.StatusForbidden, "You left this circle")
	vm.Load()

	state := vm.State()
	require.NotNil(suite.T(), state.ErrorMessage)
	assert.Equal(suite.T(), "You left this circle", *state.ErrorMessage)
}
