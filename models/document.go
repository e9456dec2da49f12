package models

import (
	"encoding/base64"
	"fmt"

	"github.com/homecircle/homecircle-go/types"
)

// FileAttachment references a file belonging to a record. Existing files
// come back from the server with a URL; new uploads are embedded in the
// JSON body as a base64 data URI. There is no multipart upload.
type FileAttachment struct {
	Model
	FileName *string `json:"file_name,omitempty"`
	MimeType *string `json:"mime_type,omitempty"`
	URL      *string `json:"url,omitempty"`
	Data     *string `json:"data,omitempty"`
}

// NewFileAttachment builds an attachment for upload, embedding the file
// contents as a data URI.
func NewFileAttachment(name, mimeType string, contents []byte) FileAttachment {
	uri := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(contents))
	return FileAttachment{
		FileName: &name,
		MimeType: &mimeType,
		Data:     &uri,
	}
}

// IdentityDocumentKind enumerates the four identity documents a family
// member can store.
type IdentityDocumentKind string

const (
	DocumentDriversLicense   IdentityDocumentKind = "drivers_license"
	DocumentPassport         IdentityDocumentKind = "passport"
	DocumentSSN              IdentityDocumentKind = "ssn"
	DocumentBirthCertificate IdentityDocumentKind = "birth_certificate"
)

// IdentityDocument is one of a member's identity documents.
type IdentityDocument struct {
	Model
	MemberID   *types.ID            `json:"member_id,omitempty"`
	Kind       IdentityDocumentKind `json:"document_type,omitempty"`
	Number     *string              `json:"number,omitempty"`
	IssuedOn   *types.Date          `json:"issued_on,omitempty"`
	ExpiresOn  *types.Date          `json:"expires_on,omitempty"`
	Attachment *FileAttachment      `json:"attachment,omitempty"`
}

// Equal reports whether two documents identify the same backend record.
func (d IdentityDocument) Equal(other IdentityDocument) bool {
	return d.Model.Equal(other.Model)
}

// IdentityDocumentEditable holds the fields a client may set on an
// identity document.
type IdentityDocumentEditable struct {
	Kind       IdentityDocumentKind `json:"document_type"`
	Number     string               `json:"number"`
	IssuedOn   *types.Date          `json:"issued_on,omitempty"`
	ExpiresOn  *types.Date          `json:"expires_on,omitempty"`
	Attachment *FileAttachment      `json:"attachment,omitempty"`
}

// RecordStatus is the lifecycle state of a stored document record.
type RecordStatus string

const (
	StatusActive         RecordStatus = "active"
	StatusExpired        RecordStatus = "expired"
	StatusPendingRenewal RecordStatus = "pending_renewal"
)

// FamilyResourceType enumerates the document types a circle can file.
type FamilyResourceType string

const (
	ResourceWill            FamilyResourceType = "will"
	ResourceTrust           FamilyResourceType = "trust"
	ResourcePowerOfAttorney FamilyResourceType = "power_of_attorney"
	ResourceDeed            FamilyResourceType = "deed"
	ResourceContract        FamilyResourceType = "contract"
	ResourceOther           FamilyResourceType = "other"
)

// FamilyResource is a circle-owned document record.
//
// Notes may carry HTML from the backend's rich-text editor; use
// display.StripHTML before rendering them as plain text.
type FamilyResource struct {
	Model
	CircleID    *types.ID          `json:"circle_id,omitempty"`
	Title       *string            `json:"title,omitempty"`
	Type        FamilyResourceType `json:"document_type,omitempty"`
	Status      RecordStatus       `json:"status,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
	Attachments []FileAttachment   `json:"attachments,omitempty"`
}

// Equal reports whether two resources identify the same backend record.
func (r FamilyResource) Equal(other FamilyResource) bool {
	return r.Model.Equal(other.Model)
}

// FamilyResourceEditable holds the fields a client may set on a resource.
type FamilyResourceEditable struct {
	Title       string             `json:"title"`
	Type        FamilyResourceType `json:"document_type"`
	Status      RecordStatus       `json:"status,omitempty"`
	Notes       string             `json:"notes,omitempty"`
	Attachments []FileAttachment   `json:"attachments,omitempty"`
}

// LegalDocument is a circle-owned legal record, structurally a sibling of
// FamilyResource but kept on its own endpoint by the backend.
type LegalDocument struct {
	Model
	CircleID    *types.ID          `json:"circle_id,omitempty"`
	Title       *string            `json:"title,omitempty"`
	Type        FamilyResourceType `json:"document_type,omitempty"`
	Status      RecordStatus       `json:"status,omitempty"`
	Notes       *string            `json:"notes,omitempty"`
	Attachments []FileAttachment   `json:"attachments,omitempty"`
}

// Equal reports whether two documents identify the same backend record.
func (d LegalDocument) Equal(other LegalDocument) bool {
	return d.Model.Equal(other.Model)
}

// LegalDocumentEditable holds the fields a client may set on a legal
// document.
type LegalDocumentEditable = FamilyResourceEditable

// IdentityDocumentResponse is the response wrapper for a single document.
type IdentityDocumentResponse struct {
	Document IdentityDocument `json:"document"`
}

// IdentityDocumentsResponse is the response wrapper for a document list.
type IdentityDocumentsResponse struct {
	Documents []IdentityDocument `json:"documents"`
}

// FamilyResourceResponse is the response wrapper for a single resource.
type FamilyResourceResponse struct {
	Resource FamilyResource `json:"resource"`
}

// FamilyResourcesResponse is the response wrapper for a resource list.
type FamilyResourcesResponse struct {
	Resources  []FamilyResource `json:"resources"`
	Pagination *Pagination      `json:"pagination,omitempty"`
}

// LegalDocumentResponse is the response wrapper for a single legal document.
type LegalDocumentResponse struct {
	Document LegalDocument `json:"legal_document"`
}

// LegalDocumentsResponse is the response wrapper for a legal document list.
type LegalDocumentsResponse struct {
	Documents  []LegalDocument `json:"legal_documents"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}
