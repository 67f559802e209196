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

type ClinicSettingHandler struct {
	settingUsecase usecase.ClinicSettingUsecase
	validator      *validator.CustomValidator
}

func NewClinicSettingHandler(settingUsecase usecase.ClinicSettingUsecase, validator *validator.CustomValidator) *ClinicSettingHandler {
	return &ClinicSettingHandler{
		settingUsecase: settingUsecase,
		validator:      validator,
	}
}

func (h *ClinicSettingHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	settings, err := h.settingUsecase.GetSettings(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrClinicSettingsNotFound):
			response.NotFound(w, "Clinic settings not found")
		default:
			response.InternalServerError(w, "Failed to get clinic settings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Clinic settings retrieved successfully", settings)
}

func (h *ClinicSettingHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDVar(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateClinicSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.settingUsecase.UpdateSettings(r.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTimeFormat):
			response.Error(w, http.StatusBadRequest, "Times must use the HH:mm format", nil)
		case errors.Is(err, usecase.ErrInvalidOperatingHours):
			response.Error(w, http.StatusBadRequest, "Operating hours are inconsistent", nil)
		case errors.Is(err, usecase.ErrClinicSettingsNotFound):
			response.NotFound(w, "Clinic settings not found")
		case errors.Is(err, usecase.ErrConcurrentModification):
			response.Conflict(w, "Clinic settings were modified by another request, reload and retry")
		default:
			response.InternalServerError(w, "Failed to update clinic settings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Clinic settings updated successfully", nil)
}
