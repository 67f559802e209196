package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TriageRecord captures vitals taken at intake. Temperature is Celsius,
// weight kilograms, height centimeters.
type TriageRecord struct {
	TriageRecordID         uint             `gorm:"primaryKey;autoIncrement" json:"triage_record_id"`
	PatientID              uint             `gorm:"not null;index" json:"patient_id"`
	AppointmentID          *uint            `gorm:"index" json:"appointment_id,omitempty"`
	ChiefComplaint         string           `gorm:"type:text;not null" json:"chief_complaint"`
	Temperature            *decimal.Decimal `gorm:"type:numeric(4,1)" json:"temperature,omitempty"`
	BloodPressureSystolic  *int             `json:"blood_pressure_systolic,omitempty"`
	BloodPressureDiastolic *int             `json:"blood_pressure_diastolic,omitempty"`
	PulseRate              *int             `json:"pulse_rate,omitempty"`
	RespiratoryRate        *int             `json:"respiratory_rate,omitempty"`
	Weight                 *decimal.Decimal `gorm:"type:numeric(5,1)" json:"weight,omitempty"`
	Height                 *decimal.Decimal `gorm:"type:numeric(5,1)" json:"height,omitempty"`
	Notes                  string           `gorm:"type:text" json:"notes,omitempty"`
	IsDeleted              bool             `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt              time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              *time.Time       `json:"updated_at,omitempty"`

	// Relationships
	Patient     Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (TriageRecord) TableName() string {
	return "triage_records"
}
