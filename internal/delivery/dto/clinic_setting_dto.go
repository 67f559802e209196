package dto

// Request DTOs

type UpdateClinicSettingsRequest struct {
	OpenTime       string `json:"open_time" validate:"required"`
	CloseTime      string `json:"close_time" validate:"required"`
	LunchStartTime string `json:"lunch_start_time" validate:"required"`
	LunchEndTime   string `json:"lunch_end_time" validate:"required"`
}

// Response DTOs

type ClinicSettingsResponse struct {
	ID             uint   `json:"id"`
	OpenTime       string `json:"open_time"`
	CloseTime      string `json:"close_time"`
	LunchStartTime string `json:"lunch_start_time"`
	LunchEndTime   string `json:"lunch_end_time"`
}
