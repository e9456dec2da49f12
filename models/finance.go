package models

import (
	"github.com/homecircle/homecircle-go/types"
	"github.com/shopspring/decimal"
)

// InsurancePolicy is a household insurance policy with its agent contact.
type InsurancePolicy struct {
	Model
	CircleID     *types.ID        `json:"circle_id,omitempty"`
	Provider     *string          `json:"provider,omitempty"`
	PolicyNumber *string          `json:"policy_number,omitempty"`
	PolicyType   *string          `json:"policy_type,omitempty"`
	Premium      *decimal.Decimal `json:"premium,omitempty"`
	RenewsOn     *types.Date      `json:"renews_on,omitempty"`
	TermDays     *types.Days      `json:"term_days,omitempty"`
	AgentName    *string          `json:"agent_name,omitempty"`
	AgentPhone   *string          `json:"agent_phone,omitempty"`
	AgentEmail   *string          `json:"agent_email,omitempty"`
	Attachments  []FileAttachment `json:"attachments,omitempty"`
}

// Equal reports whether two policies identify the same backend record.
func (p InsurancePolicy) Equal(other InsurancePolicy) bool {
	return p.Model.Equal(other.Model)
}

// InsurancePolicyEditable holds the fields a client may set on a policy.
type InsurancePolicyEditable struct {
	Provider     string           `json:"provider"`
	PolicyNumber string           `json:"policy_number"`
	PolicyType   string           `json:"policy_type,omitempty"`
	Premium      *decimal.Decimal `json:"premium,omitempty"`
	RenewsOn     *types.Date      `json:"renews_on,omitempty"`
	AgentName    string           `json:"agent_name,omitempty"`
	AgentPhone   string           `json:"agent_phone,omitempty"`
	AgentEmail   string           `json:"agent_email,omitempty"`
	Attachments  []FileAttachment `json:"attachments,omitempty"`
}

// TaxReturn is a filed household tax return with its preparer contact.
type TaxReturn struct {
	Model
	CircleID     *types.ID        `json:"circle_id,omitempty"`
	Year         *int             `json:"year,omitempty"`
	FilingType   *string          `json:"filing_type,omitempty"`
	Status       RecordStatus     `json:"status,omitempty"`
	RefundAmount *decimal.Decimal `json:"refund_amount,omitempty"`
	CPAName      *string          `json:"cpa_name,omitempty"`
	CPAPhone     *string          `json:"cpa_phone,omitempty"`
	CPAEmail     *string          `json:"cpa_email,omitempty"`
	Attachments  []FileAttachment `json:"attachments,omitempty"`
}

// Equal reports whether two returns identify the same backend record.
func (t TaxReturn) Equal(other TaxReturn) bool {
	return t.Model.Equal(other.Model)
}

// TaxReturnEditable holds the fields a client may set on a tax return.
type TaxReturnEditable struct {
	Year         int              `json:"year"`
	FilingType   string           `json:"filing_type,omitempty"`
	Status       RecordStatus     `json:"status,omitempty"`
	RefundAmount *decimal.Decimal `json:"refund_amount,omitempty"`
	CPAName      string           `json:"cpa_name,omitempty"`
	CPAPhone     string           `json:"cpa_phone,omitempty"`
	CPAEmail     string           `json:"cpa_email,omitempty"`
	Attachments  []FileAttachment `json:"attachments,omitempty"`
}

// Reminder is a dashboard reminder, e.g. an upcoming renewal or a shared
// expense awaiting settlement. Reminders are read-only on the client.
type Reminder struct {
	Model
	Title  *string     `json:"title,omitempty"`
	DueOn  *types.Date `json:"due_on,omitempty"`
	Kind   *string     `json:"kind,omitempty"`
	Urgent *bool       `json:"urgent,omitempty"`
}

// Equal reports whether two reminders identify the same backend record.
func (r Reminder) Equal(other Reminder) bool {
	return r.Model.Equal(other.Model)
}

// InsurancePolicyResponse is the response wrapper for a single policy.
type InsurancePolicyResponse struct {
	Policy InsurancePolicy `json:"policy"`
}

// InsurancePoliciesResponse is the response wrapper for a policy list.
type InsurancePoliciesResponse struct {
	Policies   []InsurancePolicy `json:"policies"`
	Pagination *Pagination       `json:"pagination,omitempty"`
}

// TaxReturnResponse is the response wrapper for a single tax return.
type TaxReturnResponse struct {
	Return TaxReturn `json:"tax_return"`
}

// TaxReturnsResponse is the response wrapper for a tax return list.
type TaxReturnsResponse struct {
	Returns    []TaxReturn `json:"tax_returns"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// RemindersResponse is the response wrapper for a reminder list.
type RemindersResponse struct {
	Reminders []Reminder `json:"reminders"`
}
