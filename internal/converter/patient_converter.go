package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		PatientID:              patient.PatientID,
		FirstName:              patient.FirstName,
		MiddleName:             patient.MiddleName,
		LastName:               patient.LastName,
		Gender:                 patient.Gender,
		Address:                patient.Address,
		ContactNumber:          patient.ContactNumber,
		Email:                  patient.Email,
		BloodType:              patient.BloodType,
		EmergencyContactName:   patient.EmergencyContactName,
		EmergencyContactNumber: patient.EmergencyContactNumber,
		PhotoURL:               patient.PhotoURL,
		CreatedAt:              patient.CreatedAt,
		UpdatedAt:              patient.UpdatedAt,
	}

	if patient.DateOfBirth != nil {
		response.DateOfBirth = patient.DateOfBirth.Format("2006-01-02")
	}

	return response
}

// PatientsToResponses converts a slice of Patient entities to response DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i, patient := range patients {
		resp := PatientToResponse(&patient)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
