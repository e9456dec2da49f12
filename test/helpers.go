package test

import (
	"github.com/homecircle/homecircle-go/models"
	"github.com/homecircle/homecircle-go/types"
)

// Ptr returns a pointer to v. Most model fields are optional pointers, so
// tests build fixtures with Ptr("...") instead of intermediate variables.
func Ptr[T any](v T) *T {
	return &v
}

// Seed methods insert records directly into the fake backend's stores,
// bypassing the HTTP layer. Each assigns a fresh ID and returns the
// stored record.

func (s *Server) SeedExpense(expense models.Expense) models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	expense.ID = s.id()
	if expense.Status == "" {
		expense.Status = models.ExpensePending
	}
	s.expenses[expense.ID] = expense

	return expense
}

func (s *Server) SeedExpenseCategory(name string) models.ExpenseCategory {
	s.mu.Lock()
	defer s.mu.Unlock()

	category := models.ExpenseCategory{Name: &name}
	category.ID = s.id()
	s.expenseCategories = append(s.expenseCategories, category)

	return category
}

func (s *Server) SeedBudget(budget models.Budget) models.Budget {
	s.mu.Lock()
	defer s.mu.Unlock()

	budget.ID = s.id()
	for i := range budget.Categories {
		budget.Categories[i].ID = s.id()
		budget.Categories[i].BudgetID = &budget.ID
	}
	recomputeBudget(&budget)
	s.budgets[budget.ID] = budget

	return budget
}

func (s *Server) SeedCircle(circle models.FamilyCircle) models.FamilyCircle {
	s.mu.Lock()
	defer s.mu.Unlock()

	circle.ID = s.id()
	s.circles[circle.ID] = circle

	return circle
}

func (s *Server) SeedMember(circleID types.ID, member models.FamilyMember) models.FamilyMember {
	s.mu.Lock()
	defer s.mu.Unlock()

	member.ID = s.id()
	member.CircleID = &circleID
	s.members[member.ID] = member

	return member
}

func (s *Server) SeedMedical(memberID types.ID, medical models.MedicalInfo) models.MedicalInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	medical.ID = s.id()
	medical.MemberID = &memberID
	s.medical[memberID] = medical

	return medical
}

func (s *Server) SeedContact(memberID types.ID, contact models.Contact) models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	contact.ID = s.id()
	contact.MemberID = &memberID
	s.contacts[contact.ID] = contact

	return contact
}

func (s *Server) SeedDocument(memberID types.ID, document models.IdentityDocument) models.IdentityDocument {
	s.mu.Lock()
	defer s.mu.Unlock()

	document.ID = s.id()
	document.MemberID = &memberID
	s.documents[document.ID] = document

	return document
}

func (s *Server) SeedAllergy(memberID types.ID, allergy models.Allergy) models.Allergy {
	s.mu.Lock()
	defer s.mu.Unlock()

	allergy.ID = s.id()
	allergy.MemberID = &memberID
	s.allergies[allergy.ID] = allergy

	return allergy
}

func (s *Server) SeedMedication(memberID types.ID, medication models.Medication) models.Medication {
	s.mu.Lock()
	defer s.mu.Unlock()

	medication.ID = s.id()
	medication.MemberID = &memberID
	s.medications[medication.ID] = medication

	return medication
}

func (s *Server) SeedSchoolRecord(memberID types.ID, record models.SchoolRecord) models.SchoolRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = s.id()
	record.MemberID = &memberID
	s.school[record.ID] = record

	return record
}

func (s *Server) SeedResource(circleID types.ID, resource models.FamilyResource) models.FamilyResource {
	s.mu.Lock()
	defer s.mu.Unlock()

	resource.ID = s.id()
	resource.CircleID = &circleID
	if resource.Status == "" {
		resource.Status = models.StatusActive
	}
	s.resources[resource.ID] = resource

	return resource
}

func (s *Server) SeedLegal(circleID types.ID, document models.LegalDocument) models.LegalDocument {
	s.mu.Lock()
	defer s.mu.Unlock()

	document.ID = s.id()
	document.CircleID = &circleID
	if document.Status == "" {
		document.Status = models.StatusActive
	}
	s.legal[document.ID] = document

	return document
}

func (s *Server) SeedPolicy(policy models.InsurancePolicy) models.InsurancePolicy {
	s.mu.Lock()
	defer s.mu.Unlock()

	policy.ID = s.id()
	s.policies[policy.ID] = policy

	return policy
}

func (s *Server) SeedTaxReturn(taxReturn models.TaxReturn) models.TaxReturn {
	s.mu.Lock()
	defer s.mu.Unlock()

	taxReturn.ID = s.id()
	s.taxReturns[taxReturn.ID] = taxReturn

	return taxReturn
}

func (s *Server) SeedReminder(reminder models.Reminder) models.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	reminder.ID = s.id()
	s.reminders = append(s.reminders, reminder)

	return reminder
}
