package dto

import "time"

// Request DTOs

type CreateLabResultRequest struct {
	PatientID        uint      `json:"patient_id" validate:"required,min=1"`
	AppointmentID    *uint     `json:"appointment_id"`
	TestName         string    `json:"test_name" validate:"required,max=200"`
	ResultValue      string    `json:"result_value" validate:"required,max=200"`
	Unit             string    `json:"unit" validate:"max=50"`
	ReferenceRange   string    `json:"reference_range" validate:"max=100"`
	Interpretation   string    `json:"interpretation"`
	ResultDate       time.Time `json:"result_date" validate:"required"`
	OrderedByStaffID *uint     `json:"ordered_by_staff_id"`
}

type UpdateLabResultRequest struct {
	TestName       *string    `json:"test_name" validate:"omitempty,max=200"`
	ResultValue    *string    `json:"result_value" validate:"omitempty,max=200"`
	Unit           *string    `json:"unit" validate:"omitempty,max=50"`
	ReferenceRange *string    `json:"reference_range" validate:"omitempty,max=100"`
	Interpretation *string    `json:"interpretation"`
	ResultDate     *time.Time `json:"result_date"`
}

// Response DTOs

type LabResultResponse struct {
	LabResultID      uint             `json:"lab_result_id"`
	PatientID        uint             `json:"patient_id"`
	AppointmentID    *uint            `json:"appointment_id,omitempty"`
	TestName         string           `json:"test_name"`
	ResultValue      string           `json:"result_value"`
	Unit             string           `json:"unit,omitempty"`
	ReferenceRange   string           `json:"reference_range,omitempty"`
	Interpretation   string           `json:"interpretation,omitempty"`
	ResultDate       time.Time        `json:"result_date"`
	OrderedByStaffID *uint            `json:"ordered_by_staff_id,omitempty"`
	Patient          *PatientResponse `json:"patient,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        *time.Time       `json:"updated_at,omitempty"`
}

type LabResultListResponse struct {
	LabResults []LabResultResponse `json:"lab_results"`
	Total      int                 `json:"total"`
}
