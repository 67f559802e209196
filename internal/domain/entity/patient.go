package entity

import "time"

// Patient represents a clinic patient. Rows are soft-deleted via IsDeleted.
type Patient struct {
	PatientID              uint       `gorm:"primaryKey;autoIncrement" json:"patient_id"`
	FirstName              string     `gorm:"type:varchar(100);not null" json:"first_name"`
	MiddleName             string     `gorm:"type:varchar(100)" json:"middle_name,omitempty"`
	LastName               string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Gender                 string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	DateOfBirth            *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Address                string     `gorm:"type:text" json:"address,omitempty"`
	ContactNumber          string     `gorm:"type:varchar(20);index" json:"contact_number,omitempty"`
	Email                  string     `gorm:"type:varchar(255);index" json:"email,omitempty"`
	BloodType              string     `gorm:"type:varchar(5)" json:"blood_type,omitempty"`
	EmergencyContactName   string     `gorm:"type:varchar(200)" json:"emergency_contact_name,omitempty"`
	EmergencyContactNumber string     `gorm:"type:varchar(20)" json:"emergency_contact_number,omitempty"`
	PhotoURL               string     `gorm:"type:text" json:"photo_url,omitempty"`
	UserID                 *uint      `gorm:"index" json:"user_id,omitempty"`
	IsDeleted              bool       `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt              time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              *time.Time `json:"updated_at,omitempty"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
