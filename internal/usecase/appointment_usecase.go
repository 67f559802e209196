package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/internal/scheduling"

	"github.com/sirupsen/logrus"
)

var (
	ErrClinicSettingsNotConfigured = errors.New("clinic operating hours not configured")
	ErrAppointmentNotFound         = errors.New("appointment not found")
	ErrNoAppointmentsForPatient    = errors.New("no appointments found for patient")
	ErrPatientNotFound             = errors.New("provided patient id does not exist or is deleted")
	ErrDoctorNotFound              = errors.New("doctor (staff) does not exist or is deleted")
	ErrServiceNotFound             = errors.New("service does not exist")
	ErrInvalidStatus               = errors.New("invalid appointment status")
	ErrInvalidDate                 = errors.New("invalid date format, use YYYY-MM-DD")
	ErrAppointmentIDMismatch       = errors.New("mismatched appointment id in route and body")
	ErrNoDoctorsRegistered         = errors.New("no doctors are available to be assigned")
	ErrConcurrentModification      = errors.New("appointment was modified concurrently")

	// ErrNoDoctorAvailable is surfaced unchanged from the assignment engine.
	ErrNoDoctorAvailable = scheduling.ErrNoDoctorAvailable
)

type AppointmentUsecase interface {
	GetAvailableSlots(ctx context.Context, serviceID uint, date string, doctorID *uint) (*dto.AvailableSlotsResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetAppointmentsByPatient(ctx context.Context, patientID uint) (*dto.AppointmentListResponse, error)
	UpdateAppointmentStatus(ctx context.Context, id uint, status string) error
	UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) error
	DeleteAppointment(ctx context.Context, id uint) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	staffRepo       repository.StaffRepository
	serviceRepo     repository.ServiceRepository
	settingRepo     repository.ClinicSettingRepository
	now             func() time.Time
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	staffRepo repository.StaffRepository,
	serviceRepo repository.ServiceRepository,
	settingRepo repository.ClinicSettingRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		staffRepo:       staffRepo,
		serviceRepo:     serviceRepo,
		settingRepo:     settingRepo,
		now:             time.Now,
	}
}

// GetAvailableSlots lists open 30-minute slots for a date. The service id
// is accepted for API symmetry; every service shares the fixed duration.
// A doctor filter that does not resolve to a qualified doctor yields an
// empty list rather than an error.
func (u *appointmentUsecase) GetAvailableSlots(ctx context.Context, serviceID uint, date string, doctorID *uint) (*dto.AvailableSlotsResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}

	setting, err := u.settingRepo.Get(ctx)
	if err != nil {
		u.log.Warnf("Failed to load clinic settings: %+v", err)
		return nil, err
	}
	if setting == nil {
		return nil, ErrClinicSettingsNotConfigured
	}

	cal, err := calendarFromSetting(setting)
	if err != nil {
		u.log.Errorf("Clinic settings are malformed: %+v", err)
		return nil, err
	}

	if doctorID != nil {
		doctor, err := u.staffRepo.FindByID(ctx, *doctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor %d: %+v", *doctorID, err)
			return nil, err
		}
		if doctor == nil || doctor.Specialization == "" {
			return &dto.AvailableSlotsResponse{Date: date, Slots: []string{}}, nil
		}
	}

	appointments, err := u.appointmentRepo.FindActiveByDate(ctx, day, doctorID)
	if err != nil {
		u.log.Warnf("Failed to load appointments for %s: %+v", date, err)
		return nil, err
	}

	slots := scheduling.AvailableSlots(cal, day, bookingsFromAppointments(appointments), u.now())
	return &dto.AvailableSlotsResponse{Date: date, Slots: slots}, nil
}

// CreateAppointment resolves the patient, assigns a doctor when none was
// chosen, and persists the appointment.
//
// Patient resolution and appointment creation are two sequential writes
// with no enclosing transaction: when the appointment step fails, a newly
// created patient row remains. Concurrent creates for the same slot are
// not serialized either; the store's row versioning only protects updates.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	patient, err := u.resolvePatient(ctx, req)
	if err != nil {
		return nil, err
	}

	doctorID := req.DoctorID
	if doctorID == nil {
		assigned, err := u.assignDoctor(ctx, req.AppointmentDateTime)
		if err != nil {
			return nil, err
		}
		doctorID = &assigned
	}

	status := entity.AppointmentStatusScheduled
	if req.Status != "" {
		parsed, ok := entity.ParseAppointmentStatus(req.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		status = parsed
	}

	appointment := &entity.Appointment{
		PatientID:           &patient.PatientID,
		DoctorID:            *doctorID,
		ServiceID:           req.ServiceID,
		AppointmentDateTime: req.AppointmentDateTime,
		Status:              status,
		Notes:               req.Notes,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Errorf("Failed to create appointment: %+v", err)
		return nil, err
	}

	// Reload with patient, doctor and service attached for the response.
	full, err := u.appointmentRepo.FindByID(ctx, appointment.AppointmentID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %d: %+v", appointment.AppointmentID, err)
		appointment.Patient = patient
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment created: id=%d, patient=%d, doctor=%d, at=%s",
		full.AppointmentID, patient.PatientID, full.DoctorID, full.AppointmentDateTime.Format(time.RFC3339))
	return converter.AppointmentToResponse(full), nil
}

// resolvePatient returns the persisted patient the appointment should link
// to: an explicit id must exist and not be soft-deleted; otherwise an
// existing patient matching the contact fields is reused, or a new record
// is created and saved so its id is known before the appointment row.
func (u *appointmentUsecase) resolvePatient(ctx context.Context, req *dto.CreateAppointmentRequest) (*entity.Patient, error) {
	if req.PatientID != nil {
		patient, err := u.patientRepo.FindActiveByID(ctx, *req.PatientID)
		if err != nil {
			u.log.Warnf("Failed to find patient %d: %+v", *req.PatientID, err)
			return nil, err
		}
		if patient == nil {
			return nil, ErrPatientNotFound
		}
		return patient, nil
	}

	patient, err := u.patientRepo.FindByContact(ctx, req.Email, req.ContactNumber)
	if err != nil {
		u.log.Warnf("Failed to find patient by contact: %+v", err)
		return nil, err
	}
	if patient != nil {
		return patient, nil
	}

	patient = &entity.Patient{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
	}
	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Errorf("Failed to create patient: %+v", err)
		return nil, err
	}
	return patient, nil
}

// assignDoctor picks a doctor with no booking conflicting with the
// requested 30-minute window, scanning the qualified roster in stable
// order.
func (u *appointmentUsecase) assignDoctor(ctx context.Context, start time.Time) (uint, error) {
	doctors, err := u.staffRepo.FindQualifiedDoctors(ctx)
	if err != nil {
		u.log.Warnf("Failed to load doctor roster: %+v", err)
		return 0, err
	}
	if len(doctors) == 0 {
		return 0, ErrNoDoctorsRegistered
	}

	existing, err := u.appointmentRepo.FindActiveInWindow(ctx,
		start.Add(-scheduling.SlotDuration), start.Add(scheduling.SlotDuration))
	if err != nil {
		u.log.Warnf("Failed to load appointments around %s: %+v", start.Format(time.RFC3339), err)
		return 0, err
	}

	roster := make([]scheduling.Doctor, len(doctors))
	for i, d := range doctors {
		roster[i] = scheduling.Doctor{StaffID: d.StaffID, Specialization: d.Specialization, IsDeleted: d.IsDeleted}
	}

	return scheduling.AssignDoctor(start, roster, bookingsFromAppointments(existing))
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID uint) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for patient %d: %+v", patientID, err)
		return nil, err
	}
	if len(appointments) == 0 {
		return nil, ErrNoAppointmentsForPatient
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateAppointmentStatus moves the status to any recognized value; there
// is no transition graph.
func (u *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, id uint, status string) error {
	parsed, ok := entity.ParseAppointmentStatus(status)
	if !ok {
		return ErrInvalidStatus
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	appointment.Status = parsed
	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %d status: %+v", id, err)
		return err
	}
	return nil
}

// UpdateAppointment applies a full update with coalescing semantics: nil
// request fields keep the stored value. Changed references must resolve
// to live rows. The write is guarded by the loaded row version; on a lost
// race the row is re-checked so a vanished appointment reads as not found
// rather than a conflict.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) error {
	if id != req.AppointmentID {
		return ErrAppointmentIDMismatch
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if err := u.validateUpdateReferences(ctx, appointment, req); err != nil {
		return err
	}

	status, ok := entity.ParseAppointmentStatus(req.Status)
	if !ok {
		return ErrInvalidStatus
	}

	appointment.PatientID = req.PatientID
	if req.DoctorID != nil {
		appointment.DoctorID = *req.DoctorID
	}
	if req.ServiceID != nil {
		appointment.ServiceID = *req.ServiceID
	}
	if req.AppointmentDateTime != nil {
		appointment.AppointmentDateTime = *req.AppointmentDateTime
	}
	appointment.Status = status
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	prevUpdatedAt := appointment.UpdatedAt
	now := u.now().UTC()
	appointment.UpdatedAt = &now

	affected, err := u.appointmentRepo.UpdateChecked(ctx, appointment, prevUpdatedAt)
	if err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		current, err := u.appointmentRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrAppointmentNotFound
		}
		return ErrConcurrentModification
	}
	return nil
}

func (u *appointmentUsecase) validateUpdateReferences(ctx context.Context, appointment *entity.Appointment, req *dto.UpdateAppointmentRequest) error {
	if req.PatientID != nil && (appointment.PatientID == nil || *req.PatientID != *appointment.PatientID) {
		patient, err := u.patientRepo.FindActiveByID(ctx, *req.PatientID)
		if err != nil {
			return err
		}
		if patient == nil {
			return ErrPatientNotFound
		}
	}
	if req.DoctorID != nil && *req.DoctorID != appointment.DoctorID {
		doctor, err := u.staffRepo.FindActiveByID(ctx, *req.DoctorID)
		if err != nil {
			return err
		}
		if doctor == nil {
			return ErrDoctorNotFound
		}
	}
	if req.ServiceID != nil && *req.ServiceID != appointment.ServiceID {
		service, err := u.serviceRepo.FindByID(ctx, *req.ServiceID)
		if err != nil {
			return err
		}
		if service == nil {
			return ErrServiceNotFound
		}
	}
	return nil
}

// DeleteAppointment hard-deletes; appointments carry no soft-delete flag.
func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id uint) error {
	affected, err := u.appointmentRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func calendarFromSetting(setting *entity.ClinicSetting) (scheduling.Calendar, error) {
	var cal scheduling.Calendar
	var err error
	if cal.Open, err = scheduling.ParseTimeOfDay(setting.OpenTime); err != nil {
		return cal, err
	}
	if cal.Close, err = scheduling.ParseTimeOfDay(setting.CloseTime); err != nil {
		return cal, err
	}
	if cal.LunchStart, err = scheduling.ParseTimeOfDay(setting.LunchStartTime); err != nil {
		return cal, err
	}
	if cal.LunchEnd, err = scheduling.ParseTimeOfDay(setting.LunchEndTime); err != nil {
		return cal, err
	}
	return cal, nil
}

func bookingsFromAppointments(appointments []entity.Appointment) []scheduling.Booking {
	bookings := make([]scheduling.Booking, len(appointments))
	for i, a := range appointments {
		bookings[i] = scheduling.Booking{DoctorID: a.DoctorID, Start: a.AppointmentDateTime}
	}
	return bookings
}
