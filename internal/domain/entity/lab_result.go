package entity

import "time"

// LabResult represents a laboratory test result linked to a patient and,
// optionally, the appointment it was ordered during.
type LabResult struct {
	LabResultID      uint       `gorm:"primaryKey;autoIncrement" json:"lab_result_id"`
	PatientID        uint       `gorm:"not null;index" json:"patient_id"`
	AppointmentID    *uint      `gorm:"index" json:"appointment_id,omitempty"`
	TestName         string     `gorm:"type:varchar(200);not null" json:"test_name"`
	ResultValue      string     `gorm:"type:varchar(200);not null" json:"result_value"`
	Unit             string     `gorm:"type:varchar(50)" json:"unit,omitempty"`
	ReferenceRange   string     `gorm:"type:varchar(100)" json:"reference_range,omitempty"`
	Interpretation   string     `gorm:"type:text" json:"interpretation,omitempty"`
	ResultDate       time.Time  `gorm:"not null" json:"result_date"`
	OrderedByStaffID *uint      `gorm:"index" json:"ordered_by_staff_id,omitempty"`
	IsDeleted        bool       `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`

	// Relationships
	Patient        Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Appointment    *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	OrderedByStaff *StaffDetail `gorm:"foreignKey:OrderedByStaffID" json:"ordered_by_staff,omitempty"`
}

func (LabResult) TableName() string {
	return "lab_results"
}
