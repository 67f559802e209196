package repository

import (
	"context"
	"errors"
	"time"

	"clinic-management-api/internal/domain/entity"
	domainRepo "clinic-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Service").
		Where("appointment_id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Service").
		Order("appointment_date_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID uint) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Service").
		Where("patient_id = ?", patientID).
		Order("appointment_date_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindActiveByDate(ctx context.Context, date time.Time, doctorID *uint) ([]entity.Appointment, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := r.db.WithContext(ctx).
		Where("appointment_date_time >= ? AND appointment_date_time < ?", dayStart, dayEnd).
		Where("status != ?", entity.AppointmentStatusCancelled)

	if doctorID != nil {
		query = query.Where("doctor_id = ?", *doctorID)
	}

	var appointments []entity.Appointment
	if err := query.Order("appointment_date_time ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindActiveInWindow(ctx context.Context, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Where("status != ?", entity.AppointmentStatusCancelled).
		Where("appointment_date_time < ? AND appointment_date_time > ?", to, from).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).
		Omit("Patient", "Doctor", "Service").
		Save(appointment).Error
}

// UpdateChecked guards the write with the row version carried in updated_at.
// Zero affected rows means the row vanished or was modified concurrently.
func (r *appointmentRepository) UpdateChecked(ctx context.Context, appointment *entity.Appointment, prevUpdatedAt *time.Time) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&entity.Appointment{}).
		Where("appointment_id = ?", appointment.AppointmentID)

	if prevUpdatedAt == nil {
		query = query.Where("updated_at IS NULL")
	} else {
		query = query.Where("updated_at = ?", *prevUpdatedAt)
	}

	result := query.Updates(map[string]interface{}{
		"patient_id":            appointment.PatientID,
		"doctor_id":             appointment.DoctorID,
		"service_id":            appointment.ServiceID,
		"appointment_date_time": appointment.AppointmentDateTime,
		"status":                appointment.Status,
		"notes":                 appointment.Notes,
		"updated_at":            appointment.UpdatedAt,
	})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("appointment_id = ?", id).
		Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
