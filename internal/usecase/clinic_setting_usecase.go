package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/scheduling"

	"github.com/sirupsen/logrus"
)

var (
	ErrClinicSettingsNotFound = errors.New("clinic settings not found")
	ErrInvalidTimeFormat      = errors.New("invalid time format, use HH:mm")
	ErrInvalidOperatingHours  = errors.New("operating hours must satisfy open < close with the lunch break inside")
)

type ClinicSettingUsecase interface {
	GetSettings(ctx context.Context, id uint) (*dto.ClinicSettingsResponse, error)
	UpdateSettings(ctx context.Context, id uint, req *dto.UpdateClinicSettingsRequest) error
}

type clinicSettingUsecase struct {
	log         *logrus.Logger
	settingRepo repository.ClinicSettingRepository
	now         func() time.Time
}

func NewClinicSettingUsecase(log *logrus.Logger, settingRepo repository.ClinicSettingRepository) ClinicSettingUsecase {
	return &clinicSettingUsecase{log: log, settingRepo: settingRepo, now: time.Now}
}

func (u *clinicSettingUsecase) GetSettings(ctx context.Context, id uint) (*dto.ClinicSettingsResponse, error) {
	setting, err := u.settingRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to load clinic settings %d: %+v", id, err)
		return nil, err
	}
	if setting == nil {
		return nil, ErrClinicSettingsNotFound
	}
	return converter.ClinicSettingToResponse(setting), nil
}

// UpdateSettings replaces the operating hours. The window must be
// well-formed: open < close, lunchStart < lunchEnd, and the lunch break
// fully inside the open window.
func (u *clinicSettingUsecase) UpdateSettings(ctx context.Context, id uint, req *dto.UpdateClinicSettingsRequest) error {
	open, err := scheduling.ParseTimeOfDay(req.OpenTime)
	if err != nil {
		return ErrInvalidTimeFormat
	}
	closeTime, err := scheduling.ParseTimeOfDay(req.CloseTime)
	if err != nil {
		return ErrInvalidTimeFormat
	}
	lunchStart, err := scheduling.ParseTimeOfDay(req.LunchStartTime)
	if err != nil {
		return ErrInvalidTimeFormat
	}
	lunchEnd, err := scheduling.ParseTimeOfDay(req.LunchEndTime)
	if err != nil {
		return ErrInvalidTimeFormat
	}

	if open >= closeTime || lunchStart >= lunchEnd || lunchStart < open || lunchEnd > closeTime {
		return ErrInvalidOperatingHours
	}

	setting, err := u.settingRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to load clinic settings %d: %+v", id, err)
		return err
	}
	if setting == nil {
		return ErrClinicSettingsNotFound
	}

	prevUpdatedAt := setting.UpdatedAt
	now := u.now().UTC()
	setting.OpenTime = req.OpenTime
	setting.CloseTime = req.CloseTime
	setting.LunchStartTime = req.LunchStartTime
	setting.LunchEndTime = req.LunchEndTime
	setting.UpdatedAt = &now

	affected, err := u.settingRepo.UpdateChecked(ctx, setting, prevUpdatedAt)
	if err != nil {
		u.log.Warnf("Failed to update clinic settings %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		current, err := u.settingRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrClinicSettingsNotFound
		}
		return ErrConcurrentModification
	}
	return nil
}
