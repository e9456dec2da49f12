package models

import (
	"github.com/homecircle/homecircle-go/types"
)

// BloodType is a blood group in the short notation the backend stores
// ("A+", "O-", ...).
type BloodType string

// bloodTypeNames maps stored blood group codes to their display names.
var bloodTypeNames = map[BloodType]string{
	"A+":  "A Positive",
	"A-":  "A Negative",
	"B+":  "B Positive",
	"B-":  "B Negative",
	"AB+": "AB Positive",
	"AB-": "AB Negative",
	"O+":  "O Positive",
	"O-":  "O Negative",
}

// DisplayName returns the long form of the blood group, or "Unknown" for a
// value not in the lookup table.
func (b BloodType) DisplayName() string {
	if name, ok := bloodTypeNames[b]; ok {
		return name
	}
	return "Unknown"
}

// MedicalInfo is the top-level medical record for a family member.
type MedicalInfo struct {
	Model
	MemberID      *types.ID  `json:"member_id,omitempty"`
	BloodType     *BloodType `json:"blood_type,omitempty"`
	HeightCm      *float64   `json:"height_cm,omitempty"`
	WeightKg      *float64   `json:"weight_kg,omitempty"`
	PrimaryDoctor *string    `json:"primary_doctor,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}

// Equal reports whether two records identify the same backend record.
func (m MedicalInfo) Equal(other MedicalInfo) bool {
	return m.Model.Equal(other.Model)
}

// MedicalInfoEditable holds the fields a client may set on a medical record.
type MedicalInfoEditable struct {
	BloodType     BloodType `json:"blood_type,omitempty"`
	HeightCm      *float64  `json:"height_cm,omitempty"`
	WeightKg      *float64  `json:"weight_kg,omitempty"`
	PrimaryDoctor string    `json:"primary_doctor,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}

// Allergy is a recorded allergy of a family member.
type Allergy struct {
	Model
	MemberID *types.ID `json:"member_id,omitempty"`
	Name     *string   `json:"name,omitempty"`
	Severity *string   `json:"severity,omitempty"`
	Reaction *string   `json:"reaction,omitempty"`
}

// Equal reports whether two allergies identify the same backend record.
func (a Allergy) Equal(other Allergy) bool {
	return a.Model.Equal(other.Model)
}

// Condition is a diagnosed medical condition of a family member.
type Condition struct {
	Model
	MemberID    *types.ID   `json:"member_id,omitempty"`
	Name        *string     `json:"name,omitempty"`
	DiagnosedOn *types.Date `json:"diagnosed_on,omitempty"`
	Status      *string     `json:"status,omitempty"`
	Notes       *string     `json:"notes,omitempty"`
}

// Equal reports whether two conditions identify the same backend record.
func (c Condition) Equal(other Condition) bool {
	return c.Model.Equal(other.Model)
}

// Provider is a healthcare provider attached to a family member.
type Provider struct {
	Model
	MemberID  *types.ID `json:"member_id,omitempty"`
	Name      *string   `json:"name,omitempty"`
	Specialty *string   `json:"specialty,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
}

// Equal reports whether two providers identify the same backend record.
func (p Provider) Equal(other Provider) bool {
	return p.Model.Equal(other.Model)
}

// Medication is a medication a family member takes. CourseDays uses the
// lenient Days type because some endpoints report it as a float.
type Medication struct {
	Model
	MemberID   *types.ID   `json:"member_id,omitempty"`
	Name       *string     `json:"name,omitempty"`
	Dosage     *string     `json:"dosage,omitempty"`
	Schedule   *string     `json:"schedule,omitempty"`
	CourseDays *types.Days `json:"course_days,omitempty"`
	Prescriber *string     `json:"prescriber,omitempty"`
}

// Equal reports whether two medications identify the same backend record.
func (m Medication) Equal(other Medication) bool {
	return m.Model.Equal(other.Model)
}

// Vaccination is a vaccination record of a family member.
type Vaccination struct {
	Model
	MemberID *types.ID   `json:"member_id,omitempty"`
	Name     *string     `json:"name,omitempty"`
	GivenOn  *types.Date `json:"given_on,omitempty"`
	DueOn    *types.Date `json:"due_on,omitempty"`
	Provider *string     `json:"provider,omitempty"`
}

// Equal reports whether two vaccinations identify the same backend record.
func (v Vaccination) Equal(other Vaccination) bool {
	return v.Model.Equal(other.Model)
}

// SchoolRecord is a school or education record of a family member.
type SchoolRecord struct {
	Model
	MemberID   *types.ID   `json:"member_id,omitempty"`
	SchoolName *string     `json:"school_name,omitempty"`
	Grade      *string     `json:"grade,omitempty"`
	Teacher    *string     `json:"teacher,omitempty"`
	StartDate  *types.Date `json:"start_date,omitempty"`
	EndDate    *types.Date `json:"end_date,omitempty"`
	Notes      *string     `json:"notes,omitempty"`
}

// Equal reports whether two school records identify the same backend record.
func (s SchoolRecord) Equal(other SchoolRecord) bool {
	return s.Model.Equal(other.Model)
}

// MedicalInfoResponse is the response wrapper for a medical record.
type MedicalInfoResponse struct {
	Medical MedicalInfo `json:"medical_info"`
}

// HealthRecordsResponse is the response wrapper for the combined health
// sub-records of a member.
type HealthRecordsResponse struct {
	Allergies    []Allergy     `json:"allergies"`
	Conditions   []Condition   `json:"conditions"`
	Providers    []Provider    `json:"providers"`
	Medications  []Medication  `json:"medications"`
	Vaccinations []Vaccination `json:"vaccinations"`
}

// SchoolRecordsResponse is the response wrapper for a school record list.
type SchoolRecordsResponse struct {
	Records []SchoolRecord `json:"school_records"`
}
