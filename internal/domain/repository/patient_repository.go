package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	// FindActiveByID returns the patient when it exists and is not
	// soft-deleted, nil otherwise.
	FindActiveByID(ctx context.Context, id uint) (*entity.Patient, error)
	// FindByContact matches on email OR contact number; empty arguments
	// never match. Soft-deleted rows are not considered.
	FindByContact(ctx context.Context, email, contactNumber string) (*entity.Patient, error)
	// FindActiveByIdentifier looks a patient up by the verification contact
	// method ("email" or "sms") plus an optional last-name narrowing.
	FindActiveByIdentifier(ctx context.Context, method, identifier, lastName string) ([]entity.Patient, error)
	FindAllActive(ctx context.Context) ([]entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
	// SoftDelete flags the row and returns affected rows.
	SoftDelete(ctx context.Context, id uint) (int64, error)
}
