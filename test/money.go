package test

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/homecircle/homecircle-go/models"
	"github.com/homecircle/homecircle-go/types"
)

// sorted returns the values of a resource map ordered by ID, the order the
// real backend lists in.
func sorted[T any](m map[types.ID]T, id func(T) types.ID) []T {
	items := make([]T, 0, len(m))
	for _, item := range m {
		items = append(items, item)
	}

	slices.SortFunc(items, func(a, b T) int {
		return int(id(a) - id(b))
	})

	return items
}

func pagination(count int) *models.Pagination {
	return &models.Pagination{Count: count, Total: count}
}

// Expenses

func (s *Server) listExpenses(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expenses := sorted(s.expenses, func(e models.Expense) types.ID { return e.ID })
	c.JSON(http.StatusOK, models.ExpensesResponse{Expenses: expenses, Pagination: pagination(len(expenses))})
}

func (s *Server) getExpense(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expense, ok := s.expenses[id]
	if !ok {
		notFound(c, "expense")
		return
	}

	c.JSON(http.StatusOK, models.ExpenseResponse{Expense: expense})
}

func (s *Server) createExpense(c *gin.Context) {
	var editable models.ExpenseEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	expense := expenseFromEditable(editable)
	expense.ID = s.id()
	s.expenses[expense.ID] = expense

	c.JSON(http.StatusCreated, models.ExpenseResponse{Expense: expense})
}

func (s *Server) updateExpense(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var editable models.ExpenseEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.expenses[id]; !ok {
		notFound(c, "expense")
		return
	}

	expense := expenseFromEditable(editable)
	expense.ID = id
	s.expenses[id] = expense

	c.JSON(http.StatusOK, models.ExpenseResponse{Expense: expense})
}

func (s *Server) deleteExpense(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.expenses[id]; !ok {
		notFound(c, "expense")
		return
	}

	delete(s.expenses, id)
	c.Status(http.StatusNoContent)
}

func expenseFromEditable(editable models.ExpenseEditable) models.Expense {
	expense := models.Expense{
		Amount:      &editable.Amount,
		Description: &editable.Description,
		Date:        &editable.Date,
		CategoryID:  editable.CategoryID,
		BudgetID:    editable.BudgetID,
		IsRecurring: &editable.IsRecurring,
		Frequency:   editable.Frequency,
		Status:      editable.Status,
	}
	if expense.Status == "" {
		expense.Status = models.ExpensePending
	}
	if editable.PaymentMethod != "" {
		expense.PaymentMethod = &editable.PaymentMethod
	}

	return expense
}

func (s *Server) listExpenseCategories(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.JSON(http.StatusOK, models.ExpenseCategoriesResponse{Categories: s.expenseCategories})
}

// Budgets

func (s *Server) listBudgets(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	budgets := sorted(s.budgets, func(b models.Budget) types.ID { return b.ID })
	c.JSON(http.StatusOK, models.BudgetsResponse{Budgets: budgets, Pagination: pagination(len(budgets))})
}

func (s *Server) getBudget(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	budget, ok := s.budgets[id]
	if !ok {
		notFound(c, "budget")
		return
	}

	c.JSON(http.StatusOK, models.BudgetResponse{Budget: budget})
}

func (s *Server) createBudget(c *gin.Context) {
	var editable models.BudgetEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	budget := models.Budget{
		Name:        &editable.Name,
		Type:        editable.Type,
		Period:      editable.Period,
		TotalAmount: &editable.TotalAmount,
	}
	budget.ID = s.id()
	for _, categoryEditable := range editable.Categories {
		category := budgetCategoryFromEditable(categoryEditable)
		category.ID = s.id()
		category.BudgetID = &budget.ID
		budget.Categories = append(budget.Categories, category)
	}
	recomputeBudget(&budget)
	s.budgets[budget.ID] = budget

	c.JSON(http.StatusCreated, models.BudgetResponse{Budget: budget})
}

func (s *Server) updateBudget(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var editable models.BudgetEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	budget, ok := s.budgets[id]
	if !ok {
		notFound(c, "budget")
		return
	}

	budget.Name = &editable.Name
	budget.Type = editable.Type
	budget.Period = editable.Period
	budget.TotalAmount = &editable.TotalAmount
	recomputeBudget(&budget)
	s.budgets[id] = budget

	c.JSON(http.StatusOK, models.BudgetResponse{Budget: budget})
}

func (s *Server) deleteBudget(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.budgets[id]; !ok {
		notFound(c, "budget")
		return
	}

	delete(s.budgets, id)
	c.Status(http.StatusNoContent)
}

func (s *Server) createBudgetCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var editable models.BudgetCategoryEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	budget, ok := s.budgets[id]
	if !ok {
		notFound(c, "budget")
		return
	}

	category := budgetCategoryFromEditable(editable)
	category.ID = s.id()
	category.BudgetID = &budget.ID
	budget.Categories = append(budget.Categories, category)
	recomputeBudget(&budget)
	s.budgets[id] = budget

	c.JSON(http.StatusCreated, models.BudgetCategoryResponse{Category: category})
}

func (s *Server) updateBudgetCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	categoryID, ok := pathID(c, "categoryID")
	if !ok {
		return
	}

	var editable models.BudgetCategoryEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	budget, ok := s.budgets[id]
	if !ok {
		notFound(c, "budget")
		return
	}

	for i, category := range budget.Categories {
		if category.ID == categoryID {
			updated := budgetCategoryFromEditable(editable)
			updated.Model = category.Model
			updated.BudgetID = category.BudgetID
			updated.Spent = category.Spent
			budget.Categories[i] = updated
			recomputeBudget(&budget)
			s.budgets[id] = budget

			c.JSON(http.StatusOK, models.BudgetCategoryResponse{Category: updated})
			return
		}
	}

	notFound(c, "category")
}

func (s *Server) deleteBudgetCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	categoryID, ok := pathID(c, "categoryID")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	budget, ok := s.budgets[id]
	if !ok {
		notFound(c, "budget")
		return
	}

	for i, category := range budget.Categories {
		if category.ID == categoryID {
			budget.Categories = append(budget.Categories[:i], budget.Categories[i+1:]...)
			recomputeBudget(&budget)
			s.budgets[id] = budget

			c.Status(http.StatusNoContent)
			return
		}
	}

	notFound(c, "category")
}

func budgetCategoryFromEditable(editable models.BudgetCategoryEditable) models.BudgetCategory {
	category := models.BudgetCategory{Name: &editable.Name, Allocated: &editable.Allocated}
	if editable.Icon != "" {
		category.Icon = &editable.Icon
	}
	if editable.Color != "" {
		category.Color = &editable.Color
	}

	return category
}

// recomputeBudget derives the server-computed fields the way the real
// backend does: allocated from the category allocations, remaining and
// percentage from spent versus total.
func recomputeBudget(budget *models.Budget) {
	allocated := decimal.Zero
	for _, category := range budget.Categories {
		if category.Allocated != nil {
			allocated = allocated.Add(*category.Allocated)
		}
	}
	budget.AllocatedAmount = &allocated

	spent := decimal.Zero
	if budget.Spent != nil {
		spent = *budget.Spent
	} else {
		budget.Spent = &spent
	}

	if budget.TotalAmount == nil || budget.TotalAmount.IsZero() {
		return
	}

	remaining := budget.TotalAmount.Sub(spent)
	budget.Remaining = &remaining

	percentage, _ := spent.Div(*budget.TotalAmount).Mul(decimal.NewFromInt(100)).Float64()
	budget.PercentageUsed = &percentage
}

// Household finance documents

func (s *Server) listPolicies(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	policies := sorted(s.policies, func(p models.InsurancePolicy) types.ID { return p.ID })
	c.JSON(http.StatusOK, models.InsurancePoliciesResponse{Policies: policies, Pagination: pagination(len(policies))})
}

func (s *Server) createPolicy(c *gin.Context) {
	var editable models.InsurancePolicyEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	policy := policyFromEditable(editable)
	policy.ID = s.id()
	s.policies[policy.ID] = policy

	c.JSON(http.StatusCreated, models.InsurancePolicyResponse{Policy: policy})
}

func (s *Server) updatePolicy(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var editable models.InsurancePolicyEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.policies[id]; !ok {
		notFound(c, "insurance policy")
		return
	}

	policy := policyFromEditable(editable)
	policy.ID = id
	s.policies[id] = policy

	c.JSON(http.StatusOK, models.InsurancePolicyResponse{Policy: policy})
}

func (s *Server) deletePolicy(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.policies[id]; !ok {
		notFound(c, "insurance policy")
		return
	}

	delete(s.policies, id)
	c.Status(http.StatusNoContent)
}

func policyFromEditable(editable models.InsurancePolicyEditable) models.InsurancePolicy {
	policy := models.InsurancePolicy{
		Provider:     &editable.Provider,
		PolicyNumber: &editable.PolicyNumber,
		Premium:      editable.Premium,
		RenewsOn:     editable.RenewsOn,
		Attachments:  editable.Attachments,
	}
	if editable.PolicyType != "" {
		policy.PolicyType = &editable.PolicyType
	}
	if editable.AgentName != "" {
		policy.AgentName = &editable.AgentName
	}
	if editable.AgentPhone != "" {
		policy.AgentPhone = &editable.AgentPhone
	}
	if editable.AgentEmail != "" {
		policy.AgentEmail = &editable.AgentEmail
	}

	return policy
}

func (s *Server) listTaxReturns(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	returns := sorted(s.taxReturns, func(r models.TaxReturn) types.ID { return r.ID })
	c.JSON(http.StatusOK, models.TaxReturnsResponse{Returns: returns, Pagination: pagination(len(returns))})
}

func (s *Server) createTaxReturn(c *gin.Context) {
	var editable models.TaxReturnEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	taxReturn := taxReturnFromEditable(editable)
	taxReturn.ID = s.id()
	s.taxReturns[taxReturn.ID] = taxReturn

	c.JSON(http.StatusCreated, models.TaxReturnResponse{Return: taxReturn})
}

func (s *Server) updateTaxReturn(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var editable models.TaxReturnEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.taxReturns[id]; !ok {
		notFound(c, "tax return")
		return
	}

	taxReturn := taxReturnFromEditable(editable)
	taxReturn.ID = id
	s.taxReturns[id] = taxReturn

	c.JSON(http.StatusOK, models.TaxReturnResponse{Return: taxReturn})
}

func (s *Server) deleteTaxReturn(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.taxReturns[id]; !ok {
		notFound(c, "tax return")
		return
	}

	delete(s.taxReturns, id)
	c.Status(http.StatusNoContent)
}

func taxReturnFromEditable(editable models.TaxReturnEditable) models.TaxReturn {
	taxReturn := models.TaxReturn{
		Year:         &editable.Year,
		Status:       editable.Status,
		RefundAmount: editable.RefundAmount,
		Attachments:  editable.Attachments,
	}
	if editable.FilingType != "" {
		taxReturn.FilingType = &editable.FilingType
	}
	if editable.CPAName != "" {
		taxReturn.CPAName = &editable.CPAName
	}
	if editable.CPAPhone != "" {
		taxReturn.CPAPhone = &editable.CPAPhone
	}
	if editable.CPAEmail != "" {
		taxReturn.CPAEmail = &editable.CPAEmail
	}

	return taxReturn
}

func (s *Server) listReminders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.JSON(http.StatusOK, models.RemindersResponse{Reminders: s.reminders})
}
