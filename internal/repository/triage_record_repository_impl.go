package repository

import (
	"context"
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type triageRecordRepository struct {
	db *gorm.DB
}

func NewTriageRecordRepository(db *gorm.DB) domainRepo.TriageRecordRepository {
	return &triageRecordRepository{db: db}
}

func (r *triageRecordRepository) Create(ctx context.Context, record *entity.TriageRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *triageRecordRepository) FindActiveByID(ctx context.Context, id uint) (*entity.TriageRecord, error) {
	var record entity.TriageRecord
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("triage_record_id = ? AND is_deleted = ?", id, false).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *triageRecordRepository) FindAllActive(ctx context.Context) ([]entity.TriageRecord, error) {
	var records []entity.TriageRecord
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *triageRecordRepository) FindActiveByPatientID(ctx context.Context, patientID uint) ([]entity.TriageRecord, error) {
	var records []entity.TriageRecord
	err := r.db.WithContext(ctx).
		Where("patient_id = ? AND is_deleted = ?", patientID, false).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *triageRecordRepository) Update(ctx context.Context, record *entity.TriageRecord) error {
	return r.db.WithContext(ctx).
		Omit("Patient", "Appointment").
		Save(record).Error
}

func (r *triageRecordRepository) SoftDelete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.TriageRecord{}).
		Where("triage_record_id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	return result.RowsAffected, result.Error
}
