package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"
)

type LabResultRepository interface {
	Create(ctx context.Context, result *entity.LabResult) error
	FindActiveByID(ctx context.Context, id uint) (*entity.LabResult, error)
	FindAllActive(ctx context.Context) ([]entity.LabResult, error)
	FindActiveByPatientID(ctx context.Context, patientID uint) ([]entity.LabResult, error)
	Update(ctx context.Context, result *entity.LabResult) error
	SoftDelete(ctx context.Context, id uint) (int64, error)
}
