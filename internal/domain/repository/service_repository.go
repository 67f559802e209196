package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"
)

type ServiceRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Service, error)
	FindAll(ctx context.Context) ([]entity.Service, error)
}
