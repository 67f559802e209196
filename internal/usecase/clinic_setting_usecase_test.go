package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

func newClinicSettingUsecase(settings *fakeSettingRepo) *clinicSettingUsecase {
	return &clinicSettingUsecase{
		log:         testLogger(),
		settingRepo: settings,
		now:         func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestUpdateSettingsValidation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.UpdateClinicSettingsRequest
		want error
	}{
		{
			name: "valid window",
			req:  dto.UpdateClinicSettingsRequest{OpenTime: "08:00", CloseTime: "18:00", LunchStartTime: "12:30", LunchEndTime: "13:30"},
			want: nil,
		},
		{
			name: "open after close",
			req:  dto.UpdateClinicSettingsRequest{OpenTime: "18:00", CloseTime: "08:00", LunchStartTime: "12:00", LunchEndTime: "13:00"},
			want: ErrInvalidOperatingHours,
		},
		{
			name: "lunch outside window",
			req:  dto.UpdateClinicSettingsRequest{OpenTime: "09:00", CloseTime: "17:00", LunchStartTime: "08:00", LunchEndTime: "09:30"},
			want: ErrInvalidOperatingHours,
		},
		{
			name: "inverted lunch",
			req:  dto.UpdateClinicSettingsRequest{OpenTime: "09:00", CloseTime: "17:00", LunchStartTime: "13:00", LunchEndTime: "12:00"},
			want: ErrInvalidOperatingHours,
		},
		{
			name: "garbage time",
			req:  dto.UpdateClinicSettingsRequest{OpenTime: "9am", CloseTime: "17:00", LunchStartTime: "12:00", LunchEndTime: "13:00"},
			want: ErrInvalidTimeFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := &fakeSettingRepo{
				findByIDFn: func(context.Context, uint) (*entity.ClinicSetting, error) { return standardSetting(), nil },
			}
			u := newClinicSettingUsecase(settings)

			err := u.UpdateSettings(context.Background(), 1, &tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestUpdateSettingsConcurrentModification(t *testing.T) {
	settings := &fakeSettingRepo{
		findByIDFn: func(context.Context, uint) (*entity.ClinicSetting, error) { return standardSetting(), nil },
		updateCheckedFn: func(context.Context, *entity.ClinicSetting, *time.Time) (int64, error) {
			return 0, nil
		},
	}
	u := newClinicSettingUsecase(settings)

	err := u.UpdateSettings(context.Background(), 1, &dto.UpdateClinicSettingsRequest{
		OpenTime: "08:00", CloseTime: "18:00", LunchStartTime: "12:00", LunchEndTime: "13:00",
	})
	if !errors.Is(err, ErrConcurrentModification) {
		t.Fatalf("expected ErrConcurrentModification, got %v", err)
	}
}

func TestGetSettingsNotFound(t *testing.T) {
	u := newClinicSettingUsecase(&fakeSettingRepo{})

	if _, err := u.GetSettings(context.Background(), 1); !errors.Is(err, ErrClinicSettingsNotFound) {
		t.Fatalf("expected ErrClinicSettingsNotFound, got %v", err)
	}
}
