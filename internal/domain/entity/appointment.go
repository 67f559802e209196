package entity

import (
	"strings"
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled   AppointmentStatus = "Scheduled"
	AppointmentStatusConfirmed   AppointmentStatus = "Confirmed"
	AppointmentStatusCompleted   AppointmentStatus = "Completed"
	AppointmentStatusCancelled   AppointmentStatus = "Cancelled"
	AppointmentStatusNoShow      AppointmentStatus = "NoShow"
	AppointmentStatusRescheduled AppointmentStatus = "Rescheduled"
)

// appointmentStatuses is the full set of recognized statuses.
// Any status may transition to any other; there is no transition graph.
var appointmentStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusConfirmed,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
	AppointmentStatusNoShow,
	AppointmentStatusRescheduled,
}

// ParseAppointmentStatus matches a string against the status set,
// ignoring case. The second return is false for unrecognized values.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	for _, status := range appointmentStatuses {
		if strings.EqualFold(s, string(status)) {
			return status, true
		}
	}
	return "", false
}

// Appointment represents a booked 30-minute visit. Appointments are
// hard-deleted, unlike most other records in the system.
type Appointment struct {
	AppointmentID       uint              `gorm:"primaryKey;autoIncrement" json:"appointment_id"`
	PatientID           *uint             `gorm:"index" json:"patient_id"`
	DoctorID            uint              `gorm:"not null;index" json:"doctor_id"`
	ServiceID           uint              `gorm:"not null;index" json:"service_id"`
	AppointmentDateTime time.Time         `gorm:"not null;index" json:"appointment_date_time"`
	Status              AppointmentStatus `gorm:"type:varchar(20);not null;default:'Scheduled';index" json:"status"`
	Notes               string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt           time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           *time.Time        `json:"updated_at,omitempty"`

	// Relationships
	Patient *Patient    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  StaffDetail `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Service Service     `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
