package test

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homecircle/homecircle-go/models"
	"github.com/homecircle/homecircle-go/types"
)

// Circles

func (s *Server) listCircles(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	circles := sorted(s.circles, func(fc models.FamilyCircle) types.ID { return fc.ID })
	c.JSON(http.StatusOK, models.FamilyCirclesResponse{Circles: circles, Pagination: pagination(len(circles))})
}

func (s *Server) getCircle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	circle, ok := s.circles[id]
	if !ok {
		notFound(c, "family circle")
		return
	}

	c.JSON(http.StatusOK, models.FamilyCircleResponse{Circle: circle})
}

func (s *Server) createCircle(c *gin.Context) {
	var editable models.FamilyCircleEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	circle := models.FamilyCircle{Name: &editable.Name}
	circle.ID = s.id()
	s.circles[circle.ID] = circle

	c.JSON(http.StatusCreated, models.FamilyCircleResponse{Circle: circle})
}

func (s *Server) updateCircle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var editable models.FamilyCircleEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	circle, ok := s.circles[id]
	if !ok {
		notFound(c, "family circle")
		return
	}

	circle.Name = &editable.Name
	s.circles[id] = circle

	c.JSON(http.StatusOK, models.FamilyCircleResponse{Circle: circle})
}

func (s *Server) deleteCircle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.circles[id]; !ok {
		notFound(c, "family circle")
		return
	}

	delete(s.circles, id)
	c.Status(http.StatusNoContent)
}

// Members

func (s *Server) listMembers(c *gin.Context) {
	circleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	members := make([]models.FamilyMember, 0)
	for _, member := range sorted(s.members, func(m models.FamilyMember) types.ID { return m.ID }) {
		if member.CircleID != nil && *member.CircleID == circleID {
			members = append(members, member)
		}
	}

	c.JSON(http.StatusOK, models.FamilyMembersResponse{Members: members, Pagination: pagination(len(members))})
}

func (s *Server) getMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	member, ok := s.members[id]
	if !ok {
		notFound(c, "family member")
		return
	}

	c.JSON(http.StatusOK, models.FamilyMemberResponse{Member: member})
}

func (s *Server) createMember(c *gin.Context) {
	circleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var editable models.FamilyMemberEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.circles[circleID]; !ok {
		notFound(c, "family circle")
		return
	}

	member := memberFromEditable(editable)
	member.ID = s.id()
	member.CircleID = &circleID
	s.members[member.ID] = member

	c.JSON(http.StatusCreated, models.FamilyMemberResponse{Member: member})
}

func (s *Server) updateMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var editable models.FamilyMemberEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.members[id]
	if !ok {
		notFound(c, "family member")
		return
	}

	member := memberFromEditable(editable)
	member.Model = existing.Model
	member.CircleID = existing.CircleID
	s.members[id] = member

	c.JSON(http.StatusOK, models.FamilyMemberResponse{Member: member})
}

func (s *Server) deleteMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[id]; !ok {
		notFound(c, "family member")
		return
	}

	delete(s.members, id)
	c.Status(http.StatusNoContent)
}

func memberFromEditable(editable models.FamilyMemberEditable) models.FamilyMember {
	member := models.FamilyMember{
		FirstName:   &editable.FirstName,
		LastName:    &editable.LastName,
		DateOfBirth: editable.DateOfBirth,
	}
	if editable.Role != "" {
		member.Role = &editable.Role
	}

	return member
}

// Medical info

func (s *Server) getMedical(c *gin.Context) {
	memberID, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	medical, ok := s.medical[memberID]
	if !ok {
		notFound(c, "medical record")
		return
	}

	c.JSON(http.StatusOK, models.MedicalInfoResponse{Medical: medical})
}

func (s *Server) updateMedical(c *gin.Context) {
	memberID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var editable models.MedicalInfoEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	medical, ok := s.medical[memberID]
	if !ok {
		medical = models.MedicalInfo{MemberID: &memberID}
		medical.ID = s.id()
	}

	if editable.BloodType != "" {
		medical.BloodType = &editable.BloodType
	}
	medical.HeightCm = editable.HeightCm
	medical.WeightKg = editable.WeightKg
	if editable.PrimaryDoctor != "" {
		medical.PrimaryDoctor = &editable.PrimaryDoctor
	}
	if editable.Notes != "" {
		medical.Notes = &editable.Notes
	}
	s.medical[memberID] = medical

	c.JSON(http.StatusOK, models.MedicalInfoResponse{Medical: medical})
}

// Contacts

func (s *Server) listContacts(c *gin.Context) {
	memberID, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	contacts := make([]models.Contact, 0)
	for _, contact := range sorted(s.contacts, func(ct models.Contact) types.ID { return ct.ID }) {
		if contact.MemberID != nil && *contact.MemberID == memberID {
			contacts = append(contacts, contact)
		}
	}

	c.JSON(http.StatusOK, models.ContactsResponse{Contacts: contacts})
}

func (s *Server) createContact(c *gin.Context) {
	memberID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var editable models.ContactEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[memberID]; !ok {
		notFound(c, "family member")
		return
	}

	contact := contactFromEditable(editable)
	contact.ID = s.id()
	contact.MemberID = &memberID
	s.contacts[contact.ID] = contact

	c.JSON(http.StatusCreated, models.ContactResponse{Contact: contact})
}

func (s *Server) updateContact(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var editable models.ContactEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.contacts[id]
	if !ok {
		notFound(c, "contact")
		return
	}

	contact := contactFromEditable(editable)
	contact.Model = existing.Model
	contact.MemberID = existing.MemberID
	s.contacts[id] = contact

	c.JSON(http.StatusOK, models.ContactResponse{Contact: contact})
}

func (s *Server) deleteContact(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contacts[id]; !ok {
		notFound(c, "contact")
		return
	}

	delete(s.contacts, id)
	c.Status(http.StatusNoContent)
}

func contactFromEditable(editable models.ContactEditable) models.Contact {
	contact := models.Contact{
		Name:        &editable.Name,
		IsEmergency: &editable.IsEmergency,
	}
	if editable.Relationship != "" {
		contact.Relationship = &editable.Relationship
	}
	if editable.Phone != "" {
		contact.Phone = &editable.Phone
	}
	if editable.Email != "" {
		contact.Email = &editable.Email
	}

	return contact
}

// Identity documents

func (s *Server) listDocuments(c *gin.Context) {
	memberID, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	documents := make([]models.IdentityDocument, 0)
	for _, document := range sorted(s.documents, func(d models.IdentityDocument) types.ID { return d.ID }) {
		if document.MemberID != nil && *document.MemberID == memberID {
			documents = append(documents, document)
		}
	}

	c.JSON(http.StatusOK, models.IdentityDocumentsResponse{Documents: documents})
}

func (s *Server) createDocument(c *gin.Context) {
	memberID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var editable models.IdentityDocumentEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[memberID]; !ok {
		notFound(c, "family member")
		return
	}

	// One document per kind and member, like the real backend.
	for _, existing := range s.documents {
		if existing.MemberID != nil && *existing.MemberID == memberID && existing.Kind == editable.Kind {
			c.JSON(http.StatusConflict, gin.H{"error": "a document of this type already exists"})
			return
		}
	}

	document := documentFromEditable(editable)
	document.ID = s.id()
	document.MemberID = &memberID
	s.documents[document.ID] = document

	c.JSON(http.StatusCreated, models.IdentityDocumentResponse{Document: document})
}

func (s *Server) updateDocument(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var editable models.IdentityDocumentEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.documents[id]
	if !ok {
		notFound(c, "document")
		return
	}

	document := documentFromEditable(editable)
	document.Model = existing.Model
	document.MemberID = existing.MemberID
	s.documents[id] = document

	c.JSON(http.StatusOK, models.IdentityDocumentResponse{Document: document})
}

func (s *Server) deleteDocument(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[id]; !ok {
		notFound(c, "document")
		return
	}

	delete(s.documents, id)
	c.Status(http.StatusNoContent)
}

func documentFromEditable(editable models.IdentityDocumentEditable) models.IdentityDocument {
	return models.IdentityDocument{
		Kind:       editable.Kind,
		Number:     &editable.Number,
		IssuedOn:   editable.IssuedOn,
		ExpiresOn:  editable.ExpiresOn,
		Attachment: editable.Attachment,
	}
}
