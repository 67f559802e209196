package dto

// DoctorResponse is the booking-facing view of a staff member.
type DoctorResponse struct {
	StaffID        uint   `json:"staff_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	JobTitle       string `json:"job_title,omitempty"`
	Specialization string `json:"specialization,omitempty"`
}
