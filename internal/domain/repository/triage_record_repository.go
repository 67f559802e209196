package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"
)

type TriageRecordRepository interface {
	Create(ctx context.Context, record *entity.TriageRecord) error
	FindActiveByID(ctx context.Context, id uint) (*entity.TriageRecord, error)
	FindAllActive(ctx context.Context) ([]entity.TriageRecord, error)
	FindActiveByPatientID(ctx context.Context, patientID uint) ([]entity.TriageRecord, error)
	Update(ctx context.Context, record *entity.TriageRecord) error
	SoftDelete(ctx context.Context, id uint) (int64, error)
}
