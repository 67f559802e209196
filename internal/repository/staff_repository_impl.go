package repository

import (
	"context"
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type staffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) domainRepo.StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) FindByID(ctx context.Context, id uint) (*entity.StaffDetail, error) {
	var staff entity.StaffDetail
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", id).
		First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) FindActiveByID(ctx context.Context, id uint) (*entity.StaffDetail, error) {
	var staff entity.StaffDetail
	err := r.db.WithContext(ctx).
		Where("staff_id = ? AND is_deleted = ?", id, false).
		First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) FindQualifiedDoctors(ctx context.Context) ([]entity.StaffDetail, error) {
	var doctors []entity.StaffDetail
	err := r.db.WithContext(ctx).
		Where("specialization IS NOT NULL AND specialization != ''").
		Where("is_deleted = ?", false).
		Order("staff_id ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}
