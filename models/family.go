package models

import "github.com/homecircle/homecircle-go/types"

// FamilyCircle is the household grouping that owns members and their
// records. All member-level resources are scoped to a circle.
type FamilyCircle struct {
	Model
	Name        *string        `json:"name,omitempty"`
	InviteCode  *string        `json:"invite_code,omitempty"`
	MemberCount *int           `json:"member_count,omitempty"`
	Members     []FamilyMember `json:"members,omitempty"`
}

// Equal reports whether two circles identify the same backend record.
func (c FamilyCircle) Equal(other FamilyCircle) bool {
	return c.Model.Equal(other.Model)
}

// FamilyCircleEditable holds the fields a client may set on a circle.
type FamilyCircleEditable struct {
	Name string `json:"name"`
}

// FamilyMember is a person in a family circle.
type FamilyMember struct {
	Model
	CircleID    *types.ID          `json:"circle_id,omitempty"`
	FirstName   *string            `json:"first_name,omitempty"`
	LastName    *string            `json:"last_name,omitempty"`
	Role        *string            `json:"role,omitempty"`
	DateOfBirth *types.Date        `json:"date_of_birth,omitempty"`
	AvatarURL   *string            `json:"avatar_url,omitempty"`
	Medical     *MedicalInfo       `json:"medical_info,omitempty"`
	Contacts    []Contact          `json:"contacts,omitempty"`
	Documents   []IdentityDocument `json:"documents,omitempty"`
}

// Equal reports whether two members identify the same backend record.
func (m FamilyMember) Equal(other FamilyMember) bool {
	return m.Model.Equal(other.Model)
}

// FamilyMemberEditable holds the fields a client may set on a member.
type FamilyMemberEditable struct {
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Role        string          `json:"role,omitempty"`
	DateOfBirth *types.Date     `json:"date_of_birth,omitempty"`
	Avatar      *FileAttachment `json:"avatar,omitempty"`
}

// Contact is a person attached to a family member, flagged when they serve
// as an emergency contact.
type Contact struct {
	Model
	MemberID     *types.ID `json:"member_id,omitempty"`
	Name         *string   `json:"name,omitempty"`
	Relationship *string   `json:"relationship,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	Email        *string   `json:"email,omitempty"`
	IsEmergency  *bool     `json:"is_emergency,omitempty"`
}

// Equal reports whether two contacts identify the same backend record.
func (c Contact) Equal(other Contact) bool {
	return c.Model.Equal(other.Model)
}

// ContactEditable holds the fields a client may set on a contact.
type ContactEditable struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	IsEmergency  bool   `json:"is_emergency"`
}

// FamilyCircleResponse is the response wrapper for a single circle.
type FamilyCircleResponse struct {
	Circle FamilyCircle `json:"circle"`
}

// FamilyCirclesResponse is the response wrapper for a circle list.
type FamilyCirclesResponse struct {
	Circles    []FamilyCircle `json:"circles"`
	Pagination *Pagination    `json:"pagination,omitempty"`
}

// FamilyMemberResponse is the response wrapper for a single member.
type FamilyMemberResponse struct {
	Member FamilyMember `json:"member"`
}

// FamilyMembersResponse is the response wrapper for a member list.
type FamilyMembersResponse struct {
	Members    []FamilyMember `json:"members"`
	Pagination *Pagination    `json:"pagination,omitempty"`
}

// ContactResponse is the response wrapper for a single contact.
type ContactResponse struct {
	Contact Contact `json:"contact"`
}

// ContactsResponse is the response wrapper for a contact list.
type ContactsResponse struct {
	Contacts []Contact `json:"contacts"`
}
