package test

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/homecircle/homecircle-go/models"
	"github.com/homecircle/homecircle-go/types"
)

// Health sub-records

func (s *Server) listHealth(c *gin.Context) {
	memberID, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	resp := models.HealthRecordsResponse{
		Allergies:    make([]models.Allergy, 0),
		Conditions:   make([]models.Condition, 0),
		Providers:    make([]models.Provider, 0),
		Medications:  make([]models.Medication, 0),
		Vaccinations: make([]models.Vaccination, 0),
	}

	for _, record := range sorted(s.allergies, func(a models.Allergy) types.ID { return a.ID }) {
		if record.MemberID != nil && *record.MemberID == memberID {
			resp.Allergies = append(resp.Allergies, record)
		}
	}
	for _, record := range sorted(s.conditions, func(co models.Condition) types.ID { return co.ID }) {
		if record.MemberID != nil && *record.MemberID == memberID {
			resp.Conditions = append(resp.Conditions, record)
		}
	}
	for _, record := range sorted(s.providers, func(p models.Provider) types.ID { return p.ID }) {
		if record.MemberID != nil && *record.MemberID == memberID {
			resp.Providers = append(resp.Providers, record)
		}
	}
	for _, record := range sorted(s.medications, func(m models.Medication) types.ID { return m.ID }) {
		if record.MemberID != nil && *record.MemberID == memberID {
			resp.Medications = append(resp.Medications, record)
		}
	}
	for _, record := range sorted(s.vaccinations, func(v models.Vaccination) types.ID { return v.ID }) {
		if record.MemberID != nil && *record.MemberID == memberID {
			resp.Vaccinations = append(resp.Vaccinations, record)
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) createHealthRecord(c *gin.Context) {
	memberID, ok := pathID(c, "id")
	if !ok {
		return
	}
	kind := c.Param("kind")

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[memberID]; !ok {
		notFound(c, "family member")
		return
	}

	switch kind {
	case "allergies":
		var record models.Allergy
		if err := c.ShouldBindJSON(&record); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		record.ID = s.id()
		record.MemberID = &memberID
		s.allergies[record.ID] = record
		c.JSON(http.StatusCreated, record)
	case "conditions":
		var record models.Condition
		if err := c.ShouldBindJSON(&record); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		record.ID = s.id()
		record.MemberID = &memberID
		s.conditions[record.ID] = record
		c.JSON(http.StatusCreated, record)
	case "providers":
		var record models.Provider
		if err := c.ShouldBindJSON(&record); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		record.ID = s.id()
		record.MemberID = &memberID
		s.providers[record.ID] = record
		c.JSON(http.StatusCreated, record)
	case "medications":
		var record models.Medication
		if err := c.ShouldBindJSON(&record); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		record.ID = s.id()
		record.MemberID = &memberID
		s.medications[record.ID] = record
		c.JSON(http.StatusCreated, record)
	case "vaccinations":
		var record models.Vaccination
		if err := c.ShouldBindJSON(&record); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		record.ID = s.id()
		record.MemberID = &memberID
		s.vaccinations[record.ID] = record
		c.JSON(http.StatusCreated, record)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown health record kind " + kind})
	}
}

func (s *Server) deleteHealthRecord(c *gin.Context) {
	if _, ok := pathID(c, "id"); !ok {
		return
	}
	recordID, ok := pathID(c, "recordID")
	if !ok {
		return
	}
	kind := c.Param("kind")

	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := false
	switch kind {
	case "allergies":
		_, deleted = s.allergies[recordID]
		delete(s.allergies, recordID)
	case "conditions":
		_, deleted = s.conditions[recordID]
		delete(s.conditions, recordID)
	case "providers":
		_, deleted = s.providers[recordID]
		delete(s.providers, recordID)
	case "medications":
		_, deleted = s.medications[recordID]
		delete(s.medications, recordID)
	case "vaccinations":
		_, deleted = s.vaccinations[recordID]
		delete(s.vaccinations, recordID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown health record kind " + kind})
		return
	}

	if !deleted {
		notFound(c, "health record")
		return
	}

	c.Status(http.StatusNoContent)
}

// School records

func (s *Server) listSchool(c *gin.Context) {
	memberID, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]models.SchoolRecord, 0)
	for _, record := range sorted(s.school, func(r models.SchoolRecord) types.ID { return r.ID }) {
		if record.MemberID != nil && *record.MemberID == memberID {
			records = append(records, record)
		}
	}

	c.JSON(http.StatusOK, models.SchoolRecordsResponse{Records: records})
}

func (s *Server) createSchoolRecord(c *gin.Context) {
	memberID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var record models.SchoolRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[memberID]; !ok {
		notFound(c, "family member")
		return
	}

	record.ID = s.id()
	record.MemberID = &memberID
	s.school[record.ID] = record

	c.JSON(http.StatusCreated, record)
}

func (s *Server) updateSchoolRecord(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var record models.SchoolRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.school[id]
	if !ok {
		notFound(c, "school record")
		return
	}

	record.Model = existing.Model
	record.MemberID = existing.MemberID
	s.school[id] = record

	c.JSON(http.StatusOK, record)
}

func (s *Server) deleteSchoolRecord(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.school[id]; !ok {
		notFound(c, "school record")
		return
	}

	delete(s.school, id)
	c.Status(http.StatusNoContent)
}

// Circle resources

func (s *Server) listResources(c *gin.Context) {
	circleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	resources := make([]models.FamilyResource, 0)
	for _, resource := range sorted(s.resources, func(r models.FamilyResource) types.ID { return r.ID }) {
		if resource.CircleID != nil && *resource.CircleID == circleID {
			resources = append(resources, resource)
		}
	}

	c.JSON(http.StatusOK, models.FamilyResourcesResponse{Resources: resources, Pagination: pagination(len(resources))})
}

func (s *Server) createResource(c *gin.Context) {
	circleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var editable models.FamilyResourceEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	resource := resourceFromEditable(editable)
	resource.ID = s.id()
	resource.CircleID = &circleID
	s.resources[resource.ID] = resource

	c.JSON(http.StatusCreated, models.FamilyResourceResponse{Resource: resource})
}

func (s *Server) updateResource(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var editable models.FamilyResourceEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.resources[id]
	if !ok {
		notFound(c, "resource")
		return
	}

	resource := resourceFromEditable(editable)
	resource.Model = existing.Model
	resource.CircleID = existing.CircleID
	s.resources[id] = resource

	c.JSON(http.StatusOK, models.FamilyResourceResponse{Resource: resource})
}

func (s *Server) deleteResource(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.resources[id]; !ok {
		notFound(c, "resource")
		return
	}

	delete(s.resources, id)
	c.Status(http.StatusNoContent)
}

func resourceFromEditable(editable models.FamilyResourceEditable) models.FamilyResource {
	resource := models.FamilyResource{
		Title:       &editable.Title,
		Type:        editable.Type,
		Status:      editable.Status,
		Attachments: editable.Attachments,
	}
	if resource.Status == "" {
		resource.Status = models.StatusActive
	}
	if editable.Notes != "" {
		resource.Notes = &editable.Notes
	}

	return resource
}

// Legal documents

func (s *Server) listLegal(c *gin.Context) {
	circleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	documents := make([]models.LegalDocument, 0)
	for _, document := range sorted(s.legal, func(d models.LegalDocument) types.ID { return d.ID }) {
		if document.CircleID != nil && *document.CircleID == circleID {
			documents = append(documents, document)
		}
	}

	c.JSON(http.StatusOK, models.LegalDocumentsResponse{Documents: documents, Pagination: pagination(len(documents))})
}

func (s *Server) createLegal(c *gin.Context) {
	circleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var editable models.LegalDocumentEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	document := legalFromEditable(editable)
	document.ID = s.id()
	document.CircleID = &circleID
	s.legal[document.ID] = document

	c.JSON(http.StatusCreated, models.LegalDocumentResponse{Document: document})
}

func (s *Server) updateLegal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var editable models.LegalDocumentEditable
	if err := c.ShouldBindJSON(&editable); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.legal[id]
	if !ok {
		notFound(c, "legal document")
		return
	}

	document := legalFromEditable(editable)
	document.Model = existing.Model
	document.CircleID = existing.CircleID
	s.legal[id] = document

	c.JSON(http.StatusOK, models.LegalDocumentResponse{Document: document})
}

func (s *Server) deleteLegal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.legal[id]; !ok {
		notFound(c, "legal document")
		return
	}

	delete(s.legal, id)
	c.Status(http.StatusNoContent)
}

func legalFromEditable(editable models.LegalDocumentEditable) models.LegalDocument {
	document := models.LegalDocument{
		Title:       &editable.Title,
		Type:        editable.Type,
		Status:      editable.Status,
		Attachments: editable.Attachments,
	}
	if document.Status == "" {
		document.Status = models.StatusActive
	}
	if editable.Notes != "" {
		document.Notes = &editable.Notes
	}

	return document
}
