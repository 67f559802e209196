package dto

import "time"

// Request DTOs

type CreatePatientDocumentRequest struct {
	PatientID         uint   `json:"patient_id" validate:"required,min=1"`
	DocumentName      string `json:"document_name" validate:"required,max=255"`
	DocumentType      string `json:"document_type" validate:"max=100"`
	Notes             string `json:"notes"`
	UploadedByStaffID *uint  `json:"uploaded_by_staff_id"`
}

type UpdatePatientDocumentRequest struct {
	DocumentName *string `json:"document_name" validate:"omitempty,max=255"`
	DocumentType *string `json:"document_type" validate:"omitempty,max=100"`
	Notes        *string `json:"notes"`
}

// Response DTOs

type PatientDocumentResponse struct {
	DocumentID        uint       `json:"document_id"`
	PatientID         uint       `json:"patient_id"`
	DocumentName      string     `json:"document_name"`
	DocumentType      string     `json:"document_type,omitempty"`
	StorageKey        string     `json:"storage_key"`
	Notes             string     `json:"notes,omitempty"`
	UploadedByStaffID *uint      `json:"uploaded_by_staff_id,omitempty"`
	UploadDate        time.Time  `json:"upload_date"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

type PatientDocumentListResponse struct {
	Documents []PatientDocumentResponse `json:"documents"`
	Total     int                       `json:"total"`
}
