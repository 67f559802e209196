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

type TriageRecordHandler struct {
	triageUsecase usecase.TriageRecordUsecase
	validator     *validator.CustomValidator
}

func NewTriageRecordHandler(triageUsecase usecase.TriageRecordUsecase, validator *validator.CustomValidator) *TriageRecordHandler {
	return &TriageRecordHandler{
		triageUsecase: triageUsecase,
		validator:     validator,
	}
}

func (h *TriageRecordHandler) CreateTriageRecord(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTriageRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.triageUsecase.CreateTriageRecord(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to create triage record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Triage record created successfully", record)
}

func (h *TriageRecordHandler) GetTriageRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	record, err := h.triageUsecase.GetTriageRecord(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTriageRecordNotFound):
			response.NotFound(w, "Triage record not found")
		default:
			response.InternalServerError(w, "Failed to get triage record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Triage record retrieved successfully", record)
}

func (h *TriageRecordHandler) GetAllTriageRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.triageUsecase.GetAllTriageRecords(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get triage records")
		return
	}

	response.Success(w, http.StatusOK, "Triage records retrieved successfully", records)
}

func (h *TriageRecordHandler) GetTriageRecordsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := parseIDVar(w, r, "patientId")
	if !ok {
		return
	}

	records, err := h.triageUsecase.GetTriageRecordsByPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get triage records")
		return
	}

	response.Success(w, http.StatusOK, "Triage records retrieved successfully", records)
}

func (h *TriageRecordHandler) UpdateTriageRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateTriageRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.triageUsecase.UpdateTriageRecord(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTriageRecordNotFound):
			response.NotFound(w, "Triage record not found")
		default:
			response.InternalServerError(w, "Failed to update triage record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Triage record updated successfully", record)
}

func (h *TriageRecordHandler) DeleteTriageRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	if err := h.triageUsecase.DeleteTriageRecord(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrTriageRecordNotFound):
			response.NotFound(w, "Triage record not found")
		default:
			response.InternalServerError(w, "Failed to delete triage record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Triage record deleted successfully", nil)
}
