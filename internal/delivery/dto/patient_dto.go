package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	FirstName              string `json:"first_name" validate:"required,max=100"`
	MiddleName             string `json:"middle_name" validate:"max=100"`
	LastName               string `json:"last_name" validate:"required,max=100"`
	Gender                 string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	DateOfBirth            string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Address                string `json:"address"`
	ContactNumber          string `json:"contact_number" validate:"omitempty,max=20"`
	Email                  string `json:"email" validate:"omitempty,email"`
	BloodType              string `json:"blood_type" validate:"omitempty,max=5"`
	EmergencyContactName   string `json:"emergency_contact_name"`
	EmergencyContactNumber string `json:"emergency_contact_number" validate:"omitempty,max=20"`
}

type UpdatePatientRequest struct {
	FirstName              *string `json:"first_name" validate:"omitempty,max=100"`
	MiddleName             *string `json:"middle_name" validate:"omitempty,max=100"`
	LastName               *string `json:"last_name" validate:"omitempty,max=100"`
	Gender                 *string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	DateOfBirth            *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Address                *string `json:"address"`
	ContactNumber          *string `json:"contact_number" validate:"omitempty,max=20"`
	Email                  *string `json:"email" validate:"omitempty,email"`
	BloodType              *string `json:"blood_type" validate:"omitempty,max=5"`
	EmergencyContactName   *string `json:"emergency_contact_name"`
	EmergencyContactNumber *string `json:"emergency_contact_number" validate:"omitempty,max=20"`
}

// Response DTOs

type PatientResponse struct {
	PatientID              uint       `json:"patient_id"`
	FirstName              string     `json:"first_name"`
	MiddleName             string     `json:"middle_name,omitempty"`
	LastName               string     `json:"last_name"`
	Gender                 string     `json:"gender,omitempty"`
	DateOfBirth            string     `json:"date_of_birth,omitempty"`
	Address                string     `json:"address,omitempty"`
	ContactNumber          string     `json:"contact_number,omitempty"`
	Email                  string     `json:"email,omitempty"`
	BloodType              string     `json:"blood_type,omitempty"`
	EmergencyContactName   string     `json:"emergency_contact_name,omitempty"`
	EmergencyContactNumber string     `json:"emergency_contact_number,omitempty"`
	PhotoURL               string     `json:"photo_url,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              *time.Time `json:"updated_at,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
