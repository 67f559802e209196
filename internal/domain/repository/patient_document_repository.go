package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"
)

type PatientDocumentRepository interface {
	Create(ctx context.Context, document *entity.PatientDocument) error
	FindActiveByID(ctx context.Context, id uint) (*entity.PatientDocument, error)
	FindActiveByPatientID(ctx context.Context, patientID uint) ([]entity.PatientDocument, error)
	Update(ctx context.Context, document *entity.PatientDocument) error
	SoftDelete(ctx context.Context, id uint) (int64, error)
}
