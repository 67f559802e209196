package repository

import (
	"context"

	"clinic-management-api/internal/domain/entity"
)

type StaffRepository interface {
	// FindByID returns the staff member or nil, soft-deleted included so
	// callers can distinguish "gone" from "never existed".
	FindByID(ctx context.Context, id uint) (*entity.StaffDetail, error)
	// FindActiveByID returns the staff member only when not soft-deleted.
	FindActiveByID(ctx context.Context, id uint) (*entity.StaffDetail, error)
	// FindQualifiedDoctors returns staff with a non-empty specialization
	// and not soft-deleted, in stable primary-key order.
	FindQualifiedDoctors(ctx context.Context) ([]entity.StaffDetail, error)
}
