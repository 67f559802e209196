package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/validator"
)

type PatientDocumentHandler struct {
	documentUsecase usecase.PatientDocumentUsecase
	validator       *validator.CustomValidator
}

func NewPatientDocumentHandler(documentUsecase usecase.PatientDocumentUsecase, validator *validator.CustomValidator) *PatientDocumentHandler {
	return &PatientDocumentHandler{
		documentUsecase: documentUsecase,
		validator:       validator,
	}
}

func (h *PatientDocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	document, err := h.documentUsecase.CreateDocument(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to create document")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Document created successfully", document)
}

func (h *PatientDocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	document, err := h.documentUsecase.GetDocument(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDocumentNotFound):
			response.NotFound(w, "Document not found")
		default:
			response.InternalServerError(w, "Failed to get document")
		}
		return
	}

	response.Success(w, http.StatusOK, "Document retrieved successfully", document)
}

func (h *PatientDocumentHandler) GetDocumentsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parseIDVar(w, r, "patientId")
	if !ok {
		return
	}

	documents, err := h.documentUsecase.GetDocumentsByPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get documents")
		return
	}

	response.Success(w, http.StatusOK, "Documents retrieved successfully", documents)
}

func (h *PatientDocumentHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdatePatientDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	document, err := h.documentUsecase.UpdateDocument(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDocumentNotFound):
			response.NotFound(w, "Document not found")
		default:
			response.InternalServerError(w, "Failed to update document")
		}
		return
	}

	response.Success(w, http.StatusOK, "Document updated successfully", document)
}

func (h *PatientDocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	if err := h.documentUsecase.DeleteDocument(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrDocumentNotFound):
			response.NotFound(w, "Document not found")
		default:
			response.InternalServerError(w, "Failed to delete document")
		}
		return
	}

	response.Success(w, http.StatusOK, "Document deleted successfully", nil)
}
