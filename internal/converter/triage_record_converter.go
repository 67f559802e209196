package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// TriageRecordToResponse converts a TriageRecord entity to TriageRecordResponse DTO
func TriageRecordToResponse(record *entity.TriageRecord) *dto.TriageRecordResponse {
	if record == nil {
		return nil
	}

	response := &dto.TriageRecordResponse{
		TriageRecordID:         record.TriageRecordID,
		PatientID:              record.PatientID,
		AppointmentID:          record.AppointmentID,
		ChiefComplaint:         record.ChiefComplaint,
		Temperature:            record.Temperature,
		BloodPressureSystolic:  record.BloodPressureSystolic,
		BloodPressureDiastolic: record.BloodPressureDiastolic,
		PulseRate:              record.PulseRate,
		RespiratoryRate:        record.RespiratoryRate,
		Weight:                 record.Weight,
		Height:                 record.Height,
		Notes:                  record.Notes,
		CreatedAt:              record.CreatedAt,
		UpdatedAt:              record.UpdatedAt,
	}

	if record.Patient.PatientID != 0 {
		response.Patient = PatientToResponse(&record.Patient)
	}

	return response
}

// TriageRecordsToResponses converts a slice of TriageRecord entities to response DTOs
func TriageRecordsToResponses(records []entity.TriageRecord) []dto.TriageRecordResponse {
	responses := make([]dto.TriageRecordResponse, len(records))
	for i, record := range records {
		resp := TriageRecordToResponse(&record)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
