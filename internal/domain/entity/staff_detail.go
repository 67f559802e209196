package entity

import "time"

// StaffDetail represents a clinic staff member. A staff member with a
// non-empty specialization and not soft-deleted qualifies as a bookable doctor.
type StaffDetail struct {
	StaffID        uint       `gorm:"primaryKey;autoIncrement" json:"staff_id"`
	FirstName      string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName       string     `gorm:"type:varchar(100);not null" json:"last_name"`
	JobTitle       string     `gorm:"type:varchar(100)" json:"job_title,omitempty"`
	Specialization string     `gorm:"type:varchar(100);index" json:"specialization,omitempty"`
	ContactNumber  string     `gorm:"type:varchar(20)" json:"contact_number,omitempty"`
	Email          string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	UserID         *uint      `gorm:"index" json:"user_id,omitempty"`
	IsDeleted      bool       `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (StaffDetail) TableName() string {
	return "staff_details"
}

// IsQualifiedDoctor reports whether this staff member can be booked
// for an appointment.
func (s *StaffDetail) IsQualifiedDoctor() bool {
	return s.Specialization != "" && !s.IsDeleted
}
