package repository

import (
	"context"
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type labResultRepository struct {
	db *gorm.DB
}

func NewLabResultRepository(db *gorm.DB) domainRepo.LabResultRepository {
	return &labResultRepository{db: db}
}

func (r *labResultRepository) Create(ctx context.Context, result *entity.LabResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *labResultRepository) FindActiveByID(ctx context.Context, id uint) (*entity.LabResult, error) {
	var result entity.LabResult
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("OrderedByStaff").
		Where("lab_result_id = ? AND is_deleted = ?", id, false).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *labResultRepository) FindAllActive(ctx context.Context) ([]entity.LabResult, error) {
	var results []entity.LabResult
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("is_deleted = ?", false).
		Order("result_date DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *labResultRepository) FindActiveByPatientID(ctx context.Context, patientID uint) ([]entity.LabResult, error) {
	var results []entity.LabResult
	err := r.db.WithContext(ctx).
		Where("patient_id = ? AND is_deleted = ?", patientID, false).
		Order("result_date DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *labResultRepository) Update(ctx context.Context, result *entity.LabResult) error {
	return r.db.WithContext(ctx).
		Omit("Patient", "Appointment", "OrderedByStaff").
		Save(result).Error
}

func (r *labResultRepository) SoftDelete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.LabResult{}).
		Where("lab_result_id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	return result.RowsAffected, result.Error
}
