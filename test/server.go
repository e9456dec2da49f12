// Package test provides an in-memory fake of the Homecircle backend plus
// request helpers for view-model and client tests.
package test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/homecircle/homecircle-go/api"
	"github.com/homecircle/homecircle-go/models"
	"github.com/homecircle/homecircle-go/types"
)

// Server is an in-memory fake backend. It implements every endpoint the
// client knows, stores resources in maps, and can be switched into a
// failure mode to exercise error paths.
type Server struct {
	*httptest.Server

	mu     sync.Mutex
	nextID types.ID

	expenses          map[types.ID]models.Expense
	expenseCategories []models.ExpenseCategory
	budgets           map[types.ID]models.Budget
	circles           map[types.ID]models.FamilyCircle
	members           map[types.ID]models.FamilyMember
	medical           map[types.ID]models.MedicalInfo // keyed by member ID
	contacts          map[types.ID]models.Contact
	documents         map[types.ID]models.IdentityDocument
	allergies         map[types.ID]models.Allergy
	conditions        map[types.ID]models.Condition
	providers         map[types.ID]models.Provider
	medications       map[types.ID]models.Medication
	vaccinations      map[types.ID]models.Vaccination
	school            map[types.ID]models.SchoolRecord
	resources         map[types.ID]models.FamilyResource
	legal             map[types.ID]models.LegalDocument
	policies          map[types.ID]models.InsurancePolicy
	taxReturns        map[types.ID]models.TaxReturn
	reminders         []models.Reminder

	failStatus  int
	failMessage string
	failOpaque  bool
}

// NewServer starts a fake backend. It is shut down when the test finishes.
func NewServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		expenses:     make(map[types.ID]models.Expense),
		budgets:      make(map[types.ID]models.Budget),
		circles:      make(map[types.ID]models.FamilyCircle),
		members:      make(map[types.ID]models.FamilyMember),
		medical:      make(map[types.ID]models.MedicalInfo),
		contacts:     make(map[types.ID]models.Contact),
		documents:    make(map[types.ID]models.IdentityDocument),
		allergies:    make(map[types.ID]models.Allergy),
		conditions:   make(map[types.ID]models.Condition),
		providers:    make(map[types.ID]models.Provider),
		medications:  make(map[types.ID]models.Medication),
		vaccinations: make(map[types.ID]models.Vaccination),
		school:       make(map[types.ID]models.SchoolRecord),
		resources:    make(map[types.ID]models.FamilyResource),
		legal:        make(map[types.ID]models.LegalDocument),
		policies:     make(map[types.ID]models.InsurancePolicy),
		taxReturns:   make(map[types.ID]models.TaxReturn),
	}

	s.Server = httptest.NewServer(s.router())
	t.Cleanup(s.Close)

	return s
}

// NewClient returns an API client pointed at the fake backend.
func NewClient(t *testing.T, s *Server) *api.Client {
	t.Helper()

	client, err := api.New(s.URL, api.WithToken("test-token"))
	if err != nil {
		t.Fatalf("building client for fake backend: %v", err)
	}

	return client
}

// FailWith puts the server into failure mode: every request is answered
// with the given status and the backend error shape.
func (s *Server) FailWith(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
	s.failMessage = message
	s.failOpaque = false
}

// FailOpaque puts the server into failure mode with a non-JSON body, so
// the client cannot extract a typed error.
func (s *Server) FailOpaque(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
	s.failOpaque = true
}

// Recover leaves failure mode.
func (s *Server) Recover() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = 0
	s.failMessage = ""
	s.failOpaque = false
}

// failing is the middleware implementing failure mode.
func (s *Server) failing(c *gin.Context) {
	s.mu.Lock()
	status, message, opaque := s.failStatus, s.failMessage, s.failOpaque
	s.mu.Unlock()

	if status == 0 {
		c.Next()
		return
	}

	if opaque {
		c.String(status, "internal error")
	} else {
		c.JSON(status, gin.H{"error": message})
	}
	c.Abort()
}

func (s *Server) id() types.ID {
	s.nextID++
	return s.nextID
}

func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(s.failing)

	v1 := r.Group("/v1")
	{
		v1.GET("/expenses", s.listExpenses)
		v1.POST("/expenses", s.createExpense)
		v1.GET("/expenses/:id", s.getExpense)
		v1.PUT("/expenses/:id", s.updateExpense)
		v1.DELETE("/expenses/:id", s.deleteExpense)
		v1.GET("/expense-categories", s.listExpenseCategories)

		v1.GET("/budgets", s.listBudgets)
		v1.POST("/budgets", s.createBudget)
		v1.GET("/budgets/:id", s.getBudget)
		v1.PUT("/budgets/:id", s.updateBudget)
		v1.DELETE("/budgets/:id", s.deleteBudget)
		v1.POST("/budgets/:id/categories", s.createBudgetCategory)
		v1.PUT("/budgets/:id/categories/:categoryID", s.updateBudgetCategory)
		v1.DELETE("/budgets/:id/categories/:categoryID", s.deleteBudgetCategory)

		v1.GET("/circles", s.listCircles)
		v1.POST("/circles", s.createCircle)
		v1.GET("/circles/:id", s.getCircle)
		v1.PUT("/circles/:id", s.updateCircle)
		v1.DELETE("/circles/:id", s.deleteCircle)
		v1.GET("/circles/:id/members", s.listMembers)
		v1.POST("/circles/:id/members", s.createMember)
		v1.GET("/circles/:id/resources", s.listResources)
		v1.POST("/circles/:id/resources", s.createResource)
		v1.GET("/circles/:id/legal", s.listLegal)
		v1.POST("/circles/:id/legal", s.createLegal)

		v1.GET("/members/:id", s.getMember)
		v1.PUT("/members/:id", s.updateMember)
		v1.DELETE("/members/:id", s.deleteMember)
		v1.GET("/members/:id/medical", s.getMedical)
		v1.PUT("/members/:id/medical", s.updateMedical)
		v1.GET("/members/:id/contacts", s.listContacts)
		v1.POST("/members/:id/contacts", s.createContact)
		v1.GET("/members/:id/documents", s.listDocuments)
		v1.POST("/members/:id/documents", s.createDocument)
		v1.GET("/members/:id/health", s.listHealth)
		v1.POST("/members/:id/health/:kind", s.createHealthRecord)
		v1.DELETE("/members/:id/health/:kind/:recordID", s.deleteHealthRecord)
		v1.GET("/members/:id/school", s.listSchool)
		v1.POST("/members/:id/school", s.createSchoolRecord)

		v1.PUT("/contacts/:id", s.updateContact)
		v1.DELETE("/contacts/:id", s.deleteContact)
		v1.PUT("/documents/:id", s.updateDocument)
		v1.DELETE("/documents/:id", s.deleteDocument)
		v1.PUT("/school-records/:id", s.updateSchoolRecord)
		v1.DELETE("/school-records/:id", s.deleteSchoolRecord)
		v1.PUT("/resources/:id", s.updateResource)
		v1.DELETE("/resources/:id", s.deleteResource)
		v1.PUT("/legal/:id", s.updateLegal)
		v1.DELETE("/legal/:id", s.deleteLegal)

		v1.GET("/insurance-policies", s.listPolicies)
		v1.POST("/insurance-policies", s.createPolicy)
		v1.PUT("/insurance-policies/:id", s.updatePolicy)
		v1.DELETE("/insurance-policies/:id", s.deletePolicy)

		v1.GET("/tax-returns", s.listTaxReturns)
		v1.POST("/tax-returns", s.createTaxReturn)
		v1.PUT("/tax-returns/:id", s.updateTaxReturn)
		v1.DELETE("/tax-returns/:id", s.deleteTaxReturn)

		v1.GET("/reminders", s.listReminders)
	}

	return r
}

// pathID parses the named path parameter as a resource ID. On failure it
// writes the backend's error shape and reports false.
func pathID(c *gin.Context, name string) (types.ID, bool) {
	var id types.ID
	if err := id.UnmarshalJSON([]byte(c.Param(name))); err != nil || id.IsNil() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "the resource ID is not valid"})
		return types.Nil, false
	}

	return id, true
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, gin.H{"error": "there is no " + what + " with this ID"})
}
