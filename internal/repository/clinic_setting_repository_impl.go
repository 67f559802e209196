package repository

import (
	"context"
	"errors"
	"time"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type clinicSettingRepository struct {
	db *gorm.DB
}

func NewClinicSettingRepository(db *gorm.DB) domainRepo.ClinicSettingRepository {
	return &clinicSettingRepository{db: db}
}

func (r *clinicSettingRepository) Get(ctx context.Context) (*entity.ClinicSetting, error) {
	var setting entity.ClinicSetting
	err := r.db.WithContext(ctx).
		Order("id ASC").
		First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *clinicSettingRepository) FindByID(ctx context.Context, id uint) (*entity.ClinicSetting, error) {
	var setting entity.ClinicSetting
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *clinicSettingRepository) UpdateChecked(ctx context.Context, setting *entity.ClinicSetting, prevUpdatedAt *time.Time) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&entity.ClinicSetting{}).
		Where("id = ?", setting.ID)

	if prevUpdatedAt == nil {
		query = query.Where("updated_at IS NULL")
	} else {
		query = query.Where("updated_at = ?", *prevUpdatedAt)
	}

	result := query.Updates(map[string]interface{}{
		"open_time":        setting.OpenTime,
		"close_time":       setting.CloseTime,
		"lunch_start_time": setting.LunchStartTime,
		"lunch_end_time":   setting.LunchEndTime,
		"updated_at":       setting.UpdatedAt,
	})
	return result.RowsAffected, result.Error
}
