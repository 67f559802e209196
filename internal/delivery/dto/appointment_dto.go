package dto

import "time"

// Request DTOs

// CreateAppointmentRequest books an appointment. When PatientID is absent
// the contact fields are used to look up or create the patient; when
// DoctorID is absent a doctor is assigned automatically.
type CreateAppointmentRequest struct {
	PatientID           *uint     `json:"patient_id"`
	DoctorID            *uint     `json:"doctor_id"`
	ServiceID           uint      `json:"service_id" validate:"required,min=1"`
	AppointmentDateTime time.Time `json:"appointment_date_time" validate:"required"`
	Status              string    `json:"status"`
	Notes               string    `json:"notes"`

	// Fallback patient contact fields, used only when PatientID is absent.
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email" validate:"omitempty,email"`
	ContactNumber string `json:"contact_number"`
}

// UpdateAppointmentRequest carries a full update. Nil fields keep their
// stored value.
type UpdateAppointmentRequest struct {
	AppointmentID       uint       `json:"appointment_id" validate:"required,min=1"`
	PatientID           *uint      `json:"patient_id"`
	DoctorID            *uint      `json:"doctor_id"`
	ServiceID           *uint      `json:"service_id"`
	AppointmentDateTime *time.Time `json:"appointment_date_time"`
	Status              string     `json:"status" validate:"required"`
	Notes               *string    `json:"notes"`
}

// Response DTOs

type AppointmentResponse struct {
	AppointmentID       uint              `json:"appointment_id"`
	PatientID           *uint             `json:"patient_id"`
	DoctorID            uint              `json:"doctor_id"`
	ServiceID           uint              `json:"service_id"`
	AppointmentDateTime time.Time         `json:"appointment_date_time"`
	Status              string            `json:"status"`
	Notes               string            `json:"notes,omitempty"`
	Patient             *PatientResponse  `json:"patient,omitempty"`
	Doctor              *DoctorResponse   `json:"doctor,omitempty"`
	Service             *ServiceResponse  `json:"service,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           *time.Time        `json:"updated_at,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type AvailableSlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}
