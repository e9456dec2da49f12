package api

import (
	"fmt"
	"net/http"

	"github.com/homecircle/homecircle-go/types"
)

// Endpoint is one operation of the backend API: an HTTP verb plus the path
// relative to the API base URL. The full route table lives here so that
// view-models never build paths themselves.
type Endpoint struct {
	Method string
	Path   string
}

func get(format string, args ...any) Endpoint {
	return Endpoint{http.MethodGet, fmt.Sprintf(format, args...)}
}

func post(format string, args ...any) Endpoint {
	return Endpoint{http.MethodPost, fmt.Sprintf(format, args...)}
}

func put(format string, args ...any) Endpoint {
	return Endpoint{http.MethodPut, fmt.Sprintf(format, args...)}
}

func del(format string, args ...any) Endpoint {
	return Endpoint{http.MethodDelete, fmt.Sprintf(format, args...)}
}

// Expenses

func Expenses() Endpoint                 { return get("/v1/expenses") }
func Expense(id types.ID) Endpoint       { return get("/v1/expenses/%s", id) }
func CreateExpense() Endpoint            { return post("/v1/expenses") }
func UpdateExpense(id types.ID) Endpoint { return put("/v1/expenses/%s", id) }
func DeleteExpense(id types.ID) Endpoint { return del("/v1/expenses/%s", id) }
func ExpenseCategories() Endpoint        { return get("/v1/expense-categories") }

// Budgets

func Budgets() Endpoint                 { return get("/v1/budgets") }
func Budget(id types.ID) Endpoint       { return get("/v1/budgets/%s", id) }
func CreateBudget() Endpoint            { return post("/v1/budgets") }
func UpdateBudget(id types.ID) Endpoint { return put("/v1/budgets/%s", id) }
func DeleteBudget(id types.ID) Endpoint { return del("/v1/budgets/%s", id) }

func CreateBudgetCategory(budgetID types.ID) Endpoint {
	return post("/v1/budgets/%s/categories", budgetID)
}

func UpdateBudgetCategory(budgetID, id types.ID) Endpoint {
	return put("/v1/budgets/%s/categories/%s", budgetID, id)
}

func DeleteBudgetCategory(budgetID, id types.ID) Endpoint {
	return del("/v1/budgets/%s/categories/%s", budgetID, id)
}

// Family circles and members

func Circles() Endpoint                 { return get("/v1/circles") }
func Circle(id types.ID) Endpoint       { return get("/v1/circles/%s", id) }
func CreateCircle() Endpoint            { return post("/v1/circles") }
func UpdateCircle(id types.ID) Endpoint { return put("/v1/circles/%s", id) }
func DeleteCircle(id types.ID) Endpoint { return del("/v1/circles/%s", id) }

func Members(circleID types.ID) Endpoint      { return get("/v1/circles/%s/members", circleID) }
func CreateMember(circleID types.ID) Endpoint { return post("/v1/circles/%s/members", circleID) }
func Member(id types.ID) Endpoint             { return get("/v1/members/%s", id) }
func UpdateMember(id types.ID) Endpoint       { return put("/v1/members/%s", id) }
func DeleteMember(id types.ID) Endpoint       { return del("/v1/members/%s", id) }

// Member sub-records

func MemberMedical(memberID types.ID) Endpoint       { return get("/v1/members/%s/medical", memberID) }
func UpdateMemberMedical(memberID types.ID) Endpoint { return put("/v1/members/%s/medical", memberID) }

func MemberContacts(memberID types.ID) Endpoint      { return get("/v1/members/%s/contacts", memberID) }
func CreateMemberContact(memberID types.ID) Endpoint { return post("/v1/members/%s/contacts", memberID) }
func UpdateContact(id types.ID) Endpoint             { return put("/v1/contacts/%s", id) }
func DeleteContact(id types.ID) Endpoint             { return del("/v1/contacts/%s", id) }

func MemberDocuments(memberID types.ID) Endpoint { return get("/v1/members/%s/documents", memberID) }
func CreateMemberDocument(memberID types.ID) Endpoint {
	return post("/v1/members/%s/documents", memberID)
}
func UpdateDocument(id types.ID) Endpoint { return put("/v1/documents/%s", id) }
func DeleteDocument(id types.ID) Endpoint { return del("/v1/documents/%s", id) }

func MemberHealthRecords(memberID types.ID) Endpoint { return get("/v1/members/%s/health", memberID) }

func CreateHealthRecord(memberID types.ID, kind string) Endpoint {
	return post("/v1/members/%s/health/%s", memberID, kind)
}

func DeleteHealthRecord(memberID types.ID, kind string, id types.ID) Endpoint {
	return del("/v1/members/%s/health/%s/%s", memberID, kind, id)
}

func MemberSchoolRecords(memberID types.ID) Endpoint { return get("/v1/members/%s/school", memberID) }
func CreateSchoolRecord(memberID types.ID) Endpoint  { return post("/v1/members/%s/school", memberID) }
func UpdateSchoolRecord(id types.ID) Endpoint        { return put("/v1/school-records/%s", id) }
func DeleteSchoolRecord(id types.ID) Endpoint        { return del("/v1/school-records/%s", id) }

// Circle documents

func Resources(circleID types.ID) Endpoint      { return get("/v1/circles/%s/resources", circleID) }
func CreateResource(circleID types.ID) Endpoint { return post("/v1/circles/%s/resources", circleID) }
func UpdateResource(id types.ID) Endpoint       { return put("/v1/resources/%s", id) }
func DeleteResource(id types.ID) Endpoint       { return del("/v1/resources/%s", id) }

func LegalDocuments(circleID types.ID) Endpoint { return get("/v1/circles/%s/legal", circleID) }
func CreateLegalDocument(circleID types.ID) Endpoint {
	return post("/v1/circles/%s/legal", circleID)
}
func UpdateLegalDocument(id types.ID) Endpoint { return put("/v1/legal/%s", id) }
func DeleteLegalDocument(id types.ID) Endpoint { return del("/v1/legal/%s", id) }

// Household finance documents

func InsurancePolicies() Endpoint                { return get("/v1/insurance-policies") }
func CreateInsurancePolicy() Endpoint            { return post("/v1/insurance-policies") }
func UpdateInsurancePolicy(id types.ID) Endpoint { return put("/v1/insurance-policies/%s", id) }
func DeleteInsurancePolicy(id types.ID) Endpoint { return del("/v1/insurance-policies/%s", id) }

func TaxReturns() Endpoint                 { return get("/v1/tax-returns") }
func CreateTaxReturn() Endpoint            { return post("/v1/tax-returns") }
func UpdateTaxReturn(id types.ID) Endpoint { return put("/v1/tax-returns/%s", id) }
func DeleteTaxReturn(id types.ID) Endpoint { return del("/v1/tax-returns/%s", id) }

// Dashboard

func Reminders() Endpoint { return get("/v1/reminders") }
