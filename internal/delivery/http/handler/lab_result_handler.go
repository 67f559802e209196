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

type LabResultHandler struct {
	labResultUsecase usecase.LabResultUsecase
	validator        *validator.CustomValidator
}

func NewLabResultHandler(labResultUsecase usecase.LabResultUsecase, validator *validator.CustomValidator) *LabResultHandler {
	return &LabResultHandler{
		labResultUsecase: labResultUsecase,
		validator:        validator,
	}
}

func (h *LabResultHandler) CreateLabResult(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLabResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.labResultUsecase.CreateLabResult(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to create lab result")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Lab result created successfully", result)
}

func (h *LabResultHandler) GetLabResult(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	result, err := h.labResultUsecase.GetLabResult(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrLabResultNotFound):
			response.NotFound(w, "Lab result not found")
		default:
			response.InternalServerError(w, "Failed to get lab result")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab result retrieved successfully", result)
}

func (h *LabResultHandler) GetAllLabResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.labResultUsecase.GetAllLabResults(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get lab results")
		return
	}

	response.Success(w, http.StatusOK, "Lab results retrieved successfully", results)
}

func (h *LabResultHandler) GetLabResultsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parseIDVar(w, r, "patientId")
	if !ok {
		return
	}

	results, err := h.labResultUsecase.GetLabResultsByPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get lab results")
		return
	}

	response.Success(w, http.StatusOK, "Lab results retrieved successfully", results)
}

func (h *LabResultHandler) UpdateLabResult(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateLabResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.labResultUsecase.UpdateLabResult(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrLabResultNotFound):
			response.NotFound(w, "Lab result not found")
		default:
			response.InternalServerError(w, "Failed to update lab result")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab result updated successfully", result)
}

func (h *LabResultHandler) DeleteLabResult(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	if err := h.labResultUsecase.DeleteLabResult(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrLabResultNotFound):
			response.NotFound(w, "Lab result not found")
		default:
			response.InternalServerError(w, "Failed to delete lab result")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab result deleted successfully", nil)
}
