package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// PatientDocumentToResponse converts a PatientDocument entity to its DTO
func PatientDocumentToResponse(document *entity.PatientDocument) *dto.PatientDocumentResponse {
	if document == nil {
		return nil
	}
	return &dto.PatientDocumentResponse{
		DocumentID:        document.DocumentID,
		PatientID:         document.PatientID,
		DocumentName:      document.DocumentName,
		DocumentType:      document.DocumentType,
		StorageKey:        document.StorageKey,
		Notes:             document.Notes,
		UploadedByStaffID: document.UploadedByStaffID,
		UploadDate:        document.UploadDate,
		CreatedAt:         document.CreatedAt,
		UpdatedAt:         document.UpdatedAt,
	}
}

// PatientDocumentsToResponses converts a slice of PatientDocument entities to response DTOs
func PatientDocumentsToResponses(documents []entity.PatientDocument) []dto.PatientDocumentResponse {
	responses := make([]dto.PatientDocumentResponse, len(documents))
	for i, document := range documents {
		resp := PatientDocumentToResponse(&document)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
