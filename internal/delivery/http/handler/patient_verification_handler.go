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

type PatientVerificationHandler struct {
	verificationUsecase usecase.PatientVerificationUsecase
	validator           *validator.CustomValidator
}

func NewPatientVerificationHandler(verificationUsecase usecase.PatientVerificationUsecase, validator *validator.CustomValidator) *PatientVerificationHandler {
	return &PatientVerificationHandler{
		verificationUsecase: verificationUsecase,
		validator:           validator,
	}
}

func (h *PatientVerificationHandler) RequestCode(w http.ResponseWriter, r *http.Request) {
	var req dto.RequestVerificationCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.verificationUsecase.RequestCode(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to process verification request")
		return
	}

	response.Success(w, http.StatusOK, result.Message, nil)
}

func (h *PatientVerificationHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.verificationUsecase.VerifyCode(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrVerificationFailed):
			response.Error(w, http.StatusBadRequest, "Invalid or expired verification code", nil)
		default:
			response.InternalServerError(w, "Failed to verify code")
		}
		return
	}

	response.Success(w, http.StatusOK, result.Message, result)
}
