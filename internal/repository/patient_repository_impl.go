package repository

import (
	"context"
	"errors"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindActiveByID(ctx context.Context, id uint) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).
		Where("patient_id = ? AND is_deleted = ?", id, false).
		First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByContact(ctx context.Context, email, contactNumber string) (*entity.Patient, error) {
	query := r.db.WithContext(ctx).Where("is_deleted = ?", false)

	switch {
	case email != "" && contactNumber != "":
		query = query.Where("email = ? OR contact_number = ?", email, contactNumber)
	case email != "":
		query = query.Where("email = ?", email)
	case contactNumber != "":
		query = query.Where("contact_number = ?", contactNumber)
	default:
		return nil, nil
	}

	var patient entity.Patient
	err := query.First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindActiveByIdentifier(ctx context.Context, method, identifier, lastName string) ([]entity.Patient, error) {
	query := r.db.WithContext(ctx).Where("is_deleted = ?", false)

	switch method {
	case "email":
		query = query.Where("email = ?", identifier)
	case "sms":
		query = query.Where("contact_number = ?", identifier)
	default:
		return nil, nil
	}

	if lastName != "" {
		query = query.Where("last_name = ?", lastName)
	}

	var patients []entity.Patient
	if err := query.Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindAllActive(ctx context.Context) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("last_name ASC, first_name ASC").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).
		Omit("Appointments").
		Save(patient).Error
}

func (r *patientRepository) SoftDelete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&entity.Patient{}).
		Where("patient_id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	return result.RowsAffected, result.Error
}
