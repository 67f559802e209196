package converter

import (
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

// ClinicSettingToResponse converts a ClinicSetting entity to its DTO.
// Stored times may carry seconds (time column read-back); the response is
// normalized to HH:mm.
func ClinicSettingToResponse(setting *entity.ClinicSetting) *dto.ClinicSettingsResponse {
	if setting == nil {
		return nil
	}
	return &dto.ClinicSettingsResponse{
		ID:             setting.ID,
		OpenTime:       trimToHHMM(setting.OpenTime),
		CloseTime:      trimToHHMM(setting.CloseTime),
		LunchStartTime: trimToHHMM(setting.LunchStartTime),
		LunchEndTime:   trimToHHMM(setting.LunchEndTime),
	}
}

func trimToHHMM(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
