package dto

// Request DTOs

type RequestVerificationCodeRequest struct {
	Method            string `json:"method" validate:"required,oneof=email sms"`
	ContactIdentifier string `json:"contact_identifier" validate:"required"`
	LastName          string `json:"last_name"`
}

type VerifyCodeRequest struct {
	ContactIdentifier string `json:"contact_identifier" validate:"required"`
	Code              string `json:"code" validate:"required,len=6,numeric"`
}

// Response DTOs

type RequestVerificationCodeResponse struct {
	Message string `json:"message"`
}

type VerifyCodeResultResponse struct {
	Message      string                `json:"message"`
	Patient      *PatientResponse      `json:"patient,omitempty"`
	Appointments []AppointmentResponse `json:"appointments,omitempty"`
}
