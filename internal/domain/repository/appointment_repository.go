package repository

import (
	"context"
	"time"

	"clinic-management-api/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	// FindByID returns the appointment with patient, doctor and service
	// preloaded, or nil when it does not exist.
	FindByID(ctx context.Context, id uint) (*entity.Appointment, error)
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	FindByPatientID(ctx context.Context, patientID uint) ([]entity.Appointment, error)
	// FindActiveByDate returns non-cancelled appointments starting on the
	// given calendar day, optionally filtered to one doctor.
	FindActiveByDate(ctx context.Context, date time.Time, doctorID *uint) ([]entity.Appointment, error)
	// FindActiveInWindow returns non-cancelled appointments whose start
	// lies strictly inside (from, to), any date.
	FindActiveInWindow(ctx context.Context, from, to time.Time) ([]entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	// UpdateChecked applies the update only when the stored row still
	// carries prevUpdatedAt, returning affected rows (0 on a lost race).
	UpdateChecked(ctx context.Context, appointment *entity.Appointment, prevUpdatedAt *time.Time) (int64, error)
	// Delete hard-deletes and returns affected rows.
	Delete(ctx context.Context, id uint) (int64, error)
}
