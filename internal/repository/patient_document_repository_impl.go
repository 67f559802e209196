package repository

import (
	"context"
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type patientDocumentRepository struct {
	db *gorm.DB
}

func NewPatientDocumentRepository(db *gorm.DB) domainRepo.PatientDocumentRepository {
	return &patientDocumentRepository{db: db}
}

func (r *patientDocumentRepository) Create(ctx context.Context, document *entity.PatientDocument) error {
	return r.db.WithContext(ctx).Create(document).Error
}

func (r *patientDocumentRepository) FindActiveByID(ctx context.Context, id uint) (*entity.PatientDocument, error) {
	var document entity.PatientDocument
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("UploadedByStaff").
		Where("document_id = ? AND is_deleted = ?", id, false).
		First(&document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &document, nil
}

func (r *patientDocumentRepository) FindActiveByPatientID(ctx context.Context, patientID uint) ([]entity.PatientDocument, error) {
	var documents []entity.PatientDocument
	err := r.db.WithContext(ctx).
		Where("patient_id = ? AND is_deleted = ?", patientID, false).
		Order("upload_date DESC").
		Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *patientDocumentRepository) Update(ctx context.Context, document *entity.PatientDocument) error {
	return r.db.WithContext(ctx).
		Omit("Patient", "UploadedByStaff").
		Save(document).Error
}

func (r *patientDocumentRepository) SoftDelete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.PatientDocument{}).
		Where("document_id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	return result.RowsAffected, result.Error
}
