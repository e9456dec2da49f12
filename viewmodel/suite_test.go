package viewmodel_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/homecircle/homecircle-go/api"
	"github.com/homecircle/homecircle-go/test"
	"github.com/homecircle/homecircle-go/viewmodel"
)

// Environment for the test suite. Every test gets a fresh fake backend,
// run loop and screen scope.
type TestSuiteStandard struct {
	suite.Suite

	server *test.Server
	client *api.Client
	loop   *viewmodel.Loop
	scope  *viewmodel.Scope
	log    zerolog.Logger
}

// Pseudo-Test run by go test that runs the test suite.
func TestStandard(t *testing.T) {
	suite.Run(t, new(TestSuiteStandard))
}

// SetupTest is called before each test in the suite.
func (suite *TestSuiteStandard) SetupTest() {
	suite.server = test.NewServer(suite.T())
	suite.client = test.NewClient(suite.T(), suite.server)
	suite.loop = viewmodel.NewLoop()
	suite.scope = suite.loop.NewScope()
	suite.log = zerolog.Nop()
}

// TearDownTest is called after each test in the suite.
func (suite *TestSuiteStandard) TearDownTest() {
	suite.scope.Close()
	suite.loop.Stop()
}
