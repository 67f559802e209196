package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateTriageRecordRequest struct {
	PatientID              uint             `json:"patient_id" validate:"required,min=1"`
	AppointmentID          *uint            `json:"appointment_id"`
	ChiefComplaint         string           `json:"chief_complaint" validate:"required"`
	Temperature            *decimal.Decimal `json:"temperature"`
	BloodPressureSystolic  *int             `json:"blood_pressure_systolic" validate:"omitempty,gte=0"`
	BloodPressureDiastolic *int             `json:"blood_pressure_diastolic" validate:"omitempty,gte=0"`
	PulseRate              *int             `json:"pulse_rate" validate:"omitempty,gte=0"`
	RespiratoryRate        *int             `json:"respiratory_rate" validate:"omitempty,gte=0"`
	Weight                 *decimal.Decimal `json:"weight"`
	Height                 *decimal.Decimal `json:"height"`
	Notes                  string           `json:"notes"`
}

type UpdateTriageRecordRequest struct {
	ChiefComplaint         *string          `json:"chief_complaint"`
	Temperature            *decimal.Decimal `json:"temperature"`
	BloodPressureSystolic  *int             `json:"blood_pressure_systolic" validate:"omitempty,gte=0"`
	BloodPressureDiastolic *int             `json:"blood_pressure_diastolic" validate:"omitempty,gte=0"`
	PulseRate              *int             `json:"pulse_rate" validate:"omitempty,gte=0"`
	RespiratoryRate        *int             `json:"respiratory_rate" validate:"omitempty,gte=0"`
	Weight                 *decimal.Decimal `json:"weight"`
	Height                 *decimal.Decimal `json:"height"`
	Notes                  *string          `json:"notes"`
}

// Response DTOs

type TriageRecordResponse struct {
	TriageRecordID         uint             `json:"triage_record_id"`
	PatientID              uint             `json:"patient_id"`
	AppointmentID          *uint            `json:"appointment_id,omitempty"`
	ChiefComplaint         string           `json:"chief_complaint"`
	Temperature            *decimal.Decimal `json:"temperature,omitempty"`
	BloodPressureSystolic  *int             `json:"blood_pressure_systolic,omitempty"`
	BloodPressureDiastolic *int             `json:"blood_pressure_diastolic,omitempty"`
	PulseRate              *int             `json:"pulse_rate,omitempty"`
	RespiratoryRate        *int             `json:"respiratory_rate,omitempty"`
	Weight                 *decimal.Decimal `json:"weight,omitempty"`
	Height                 *decimal.Decimal `json:"height,omitempty"`
	Notes                  string           `json:"notes,omitempty"`
	Patient                *PatientResponse `json:"patient,omitempty"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              *time.Time       `json:"updated_at,omitempty"`
}

type TriageRecordListResponse struct {
	TriageRecords []TriageRecordResponse `json:"triage_records"`
	Total         int                    `json:"total"`
}
