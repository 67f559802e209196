package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		AppointmentID:       appointment.AppointmentID,
		PatientID:           appointment.PatientID,
		DoctorID:            appointment.DoctorID,
		ServiceID:           appointment.ServiceID,
		AppointmentDateTime: appointment.AppointmentDateTime,
		Status:              string(appointment.Status),
		Notes:               appointment.Notes,
		CreatedAt:           appointment.CreatedAt,
		UpdatedAt:           appointment.UpdatedAt,
	}

	if appointment.Patient != nil {
		response.Patient = PatientToResponse(appointment.Patient)
	}
	if appointment.Doctor.StaffID != 0 {
		response.Doctor = DoctorToResponse(&appointment.Doctor)
	}
	if appointment.Service.ServiceID != 0 {
		response.Service = ServiceToResponse(&appointment.Service)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to response DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// DoctorToResponse converts a StaffDetail entity to the booking-facing DoctorResponse DTO
func DoctorToResponse(staff *entity.StaffDetail) *dto.DoctorResponse {
	if staff == nil {
		return nil
	}
	return &dto.DoctorResponse{
		StaffID:        staff.StaffID,
		FirstName:      staff.FirstName,
		LastName:       staff.LastName,
		JobTitle:       staff.JobTitle,
		Specialization: staff.Specialization,
	}
}

// ServiceToResponse converts a Service entity to ServiceResponse DTO
func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	if service == nil {
		return nil
	}
	return &dto.ServiceResponse{
		ServiceID:   service.ServiceID,
		ServiceName: service.ServiceName,
		Description: service.Description,
		Price:       service.Price,
	}
}
