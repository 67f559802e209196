package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// LabResultToResponse converts a LabResult entity to LabResultResponse DTO
func LabResultToResponse(result *entity.LabResult) *dto.LabResultResponse {
	if result == nil {
		return nil
	}

	response := &dto.LabResultResponse{
		LabResultID:      result.LabResultID,
		PatientID:        result.PatientID,
		AppointmentID:    result.AppointmentID,
		TestName:         result.TestName,
		ResultValue:      result.ResultValue,
		Unit:             result.Unit,
		ReferenceRange:   result.ReferenceRange,
		Interpretation:   result.Interpretation,
		ResultDate:       result.ResultDate,
		OrderedByStaffID: result.OrderedByStaffID,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}

	if result.Patient.PatientID != 0 {
		response.Patient = PatientToResponse(&result.Patient)
	}

	return response
}

// LabResultsToResponses converts a slice of LabResult entities to response DTOs
func LabResultsToResponses(results []entity.LabResult) []dto.LabResultResponse {
	responses := make([]dto.LabResultResponse, len(results))
	for i, result := range results {
		resp := LabResultToResponse(&result)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
