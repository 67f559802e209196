package repository

import (
	"context"
	"time"

	"clinic-management-api/internal/domain/entity"
)

type ClinicSettingRepository interface {
	// Get returns the singleton settings row, or nil when never seeded.
	Get(ctx context.Context) (*entity.ClinicSetting, error)
	FindByID(ctx context.Context, id uint) (*entity.ClinicSetting, error)
	// UpdateChecked applies the update only when the stored row still
	// carries prevUpdatedAt, returning affected rows.
	UpdateChecked(ctx context.Context, setting *entity.ClinicSetting, prevUpdatedAt *time.Time) (int64, error)
}
