package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
)

func newAppointmentUsecase(
	appointments *fakeAppointmentRepo,
	patients *fakePatientRepo,
	staff *fakeStaffRepo,
	services *fakeServiceRepo,
	settings *fakeSettingRepo,
	now time.Time,
) *appointmentUsecase {
	return &appointmentUsecase{
		log:             testLogger(),
		appointmentRepo: appointments,
		patientRepo:     patients,
		staffRepo:       staff,
		serviceRepo:     services,
		settingRepo:     settings,
		now:             func() time.Time { return now },
	}
}

func TestGetAvailableSlotsEmptyDay(t *testing.T) {
	settings := &fakeSettingRepo{
		getFn: func(context.Context) (*entity.ClinicSetting, error) { return standardSetting(), nil },
	}
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.Local)
	u := newAppointmentUsecase(&fakeAppointmentRepo{}, &fakePatientRepo{}, &fakeStaffRepo{}, &fakeServiceRepo{}, settings, now)

	resp, err := u.GetAvailableSlots(context.Background(), 1, "2026-03-02", nil)
	if err != nil {
		t.Fatalf("GetAvailableSlots: %v", err)
	}
	if len(resp.Slots) != 14 {
		t.Fatalf("expected 14 slots, got %d: %v", len(resp.Slots), resp.Slots)
	}
	if resp.Slots[0] != "09:00" || resp.Slots[len(resp.Slots)-1] != "16:30" {
		t.Errorf("unexpected slot range: %v", resp.Slots)
	}
	if resp.Date != "2026-03-02" {
		t.Errorf("expected date echoed back, got %q", resp.Date)
	}
}

func TestGetAvailableSlotsInvalidDate(t *testing.T) {
	u := newAppointmentUsecase(&fakeAppointmentRepo{}, &fakePatientRepo{}, &fakeStaffRepo{}, &fakeServiceRepo{}, &fakeSettingRepo{}, time.Now())

	if _, err := u.GetAvailableSlots(context.Background(), 1, "03/02/2026", nil); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestGetAvailableSlotsMissingSettings(t *testing.T) {
	u := newAppointmentUsecase(&fakeAppointmentRepo{}, &fakePatientRepo{}, &fakeStaffRepo{}, &fakeServiceRepo{}, &fakeSettingRepo{}, time.Now())

	if _, err := u.GetAvailableSlots(context.Background(), 1, "2026-03-02", nil); !errors.Is(err, ErrClinicSettingsNotConfigured) {
		t.Fatalf("expected ErrClinicSettingsNotConfigured, got %v", err)
	}
}

func TestGetAvailableSlotsUnqualifiedDoctorFilter(t *testing.T) {
	settings := &fakeSettingRepo{
		getFn: func(context.Context) (*entity.ClinicSetting, error) { return standardSetting(), nil },
	}
	staff := &fakeStaffRepo{
		findByIDFn: func(_ context.Context, id uint) (*entity.StaffDetail, error) {
			return &entity.StaffDetail{StaffID: id, JobTitle: "Radiographer"}, nil
		},
	}
	queried := false
	appointments := &fakeAppointmentRepo{
		findActiveByDateFn: func(context.Context, time.Time, *uint) ([]entity.Appointment, error) {
			queried = true
			return nil, nil
		},
	}
	u := newAppointmentUsecase(appointments, &fakePatientRepo{}, staff, &fakeServiceRepo{}, settings, time.Now())

	resp, err := u.GetAvailableSlots(context.Background(), 1, "2026-03-02", uintPtr(8))
	if err != nil {
		t.Fatalf("GetAvailableSlots: %v", err)
	}
	if resp.Slots == nil || len(resp.Slots) != 0 {
		t.Errorf("expected empty non-nil slot list, got %v", resp.Slots)
	}
	if queried {
		t.Error("appointments should not be queried for an unqualified doctor")
	}
}

func TestGetAvailableSlotsBookedSlotRemoved(t *testing.T) {
	booked := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)
	settings := &fakeSettingRepo{
		getFn: func(context.Context) (*entity.ClinicSetting, error) { return standardSetting(), nil },
	}
	appointments := &fakeAppointmentRepo{
		findActiveByDateFn: func(context.Context, time.Time, *uint) ([]entity.Appointment, error) {
			return []entity.Appointment{{AppointmentID: 1, DoctorID: 5, AppointmentDateTime: booked}}, nil
		},
	}
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.Local)
	u := newAppointmentUsecase(appointments, &fakePatientRepo{}, &fakeStaffRepo{}, &fakeServiceRepo{}, settings, now)

	resp, err := u.GetAvailableSlots(context.Background(), 1, "2026-03-02", nil)
	if err != nil {
		t.Fatalf("GetAvailableSlots: %v", err)
	}
	if len(resp.Slots) != 13 {
		t.Fatalf("expected 13 slots, got %d", len(resp.Slots))
	}
	for _, s := range resp.Slots {
		if s == "10:00" {
			t.Error("booked slot 10:00 still offered")
		}
	}
}

func TestCreateAppointmentNewPatient(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)
	var createdPatient *entity.Patient
	patients := &fakePatientRepo{
		createFn: func(_ context.Context, p *entity.Patient) error {
			p.PatientID = 42
			createdPatient = p
			return nil
		},
	}
	var createdAppointment *entity.Appointment
	appointments := &fakeAppointmentRepo{
		createFn: func(_ context.Context, a *entity.Appointment) error {
			a.AppointmentID = 7
			createdAppointment = a
			return nil
		},
		findByIDFn: func(_ context.Context, id uint) (*entity.Appointment, error) {
			a := *createdAppointment
			a.Patient = createdPatient
			return &a, nil
		},
	}
	u := newAppointmentUsecase(appointments, patients, &fakeStaffRepo{}, &fakeServiceRepo{}, &fakeSettingRepo{}, time.Now())

	resp, err := u.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		DoctorID:            uintPtr(5),
		ServiceID:           2,
		AppointmentDateTime: start,
		FirstName:           "Ada",
		LastName:            "Lovelace",
		Email:               "ada@example.com",
	})
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if createdPatient == nil || createdPatient.Email != "ada@example.com" {
		t.Fatalf("patient not created from contact fields: %+v", createdPatient)
	}
	if createdAppointment.PatientID == nil || *createdAppointment.PatientID != 42 {
		t.Errorf("appointment not linked to new patient: %+v", createdAppointment.PatientID)
	}
	if createdAppointment.Status != entity.AppointmentStatusScheduled {
		t.Errorf("expected default status Scheduled, got %s", createdAppointment.Status)
	}
	if resp.AppointmentID != 7 || resp.Patient == nil || resp.Patient.PatientID != 42 {
		t.Errorf("response not hydrated: %+v", resp)
	}
}

func TestCreateAppointmentReusesPatientByContact(t *testing.T) {
	existing := &entity.Patient{PatientID: 11, Email: "ada@example.com"}
	patients := &fakePatientRepo{
		findByContactFn: func(_ context.Context, email, _ string) (*entity.Patient, error) {
			if email == existing.Email {
				return existing, nil
			}
			return nil, nil
		},
		createFn: func(context.Context, *entity.Patient) error {
			t.Fatal("no new patient should be created")
			return nil
		},
	}
	var created *entity.Appointment
	appointments := &fakeAppointmentRepo{
		createFn: func(_ context.Context, a *entity.Appointment) error {
			a.AppointmentID = 3
			created = a
			return nil
		},
	}
	u := newAppointmentUsecase(appointments, patients, &fakeStaffRepo{}, &fakeServiceRepo{}, &fakeSettingRepo{}, time.Now())

	if _, err := u.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		DoctorID:            uintPtr(5),
		ServiceID:           1,
		AppointmentDateTime: time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local),
		Email:               "ada@example.com",
	}); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if created.PatientID == nil || *created.PatientID != 11 {
		t.Errorf("expected existing patient 11 reused, got %v", created.PatientID)
	}
}

func TestCreateAppointmentUnknownPatientID(t *testing.T) {
	u := newAppointmentUsecase(&fakeAppointmentRepo{}, &fakePatientRepo{}, &fakeStaffRepo{}, &fakeServiceRepo{}, &fakeSettingRepo{}, time.Now())

	_, err := u.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:           uintPtr(99),
		DoctorID:            uintPtr(5),
		ServiceID:           1,
		AppointmentDateTime: time.Now(),
	})
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestCreateAppointmentAssignsFreeDoctor(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)
	staff := &fakeStaffRepo{
		findQualifiedDoctorsFn: func(context.Context) ([]entity.StaffDetail, error) {
			return []entity.StaffDetail{
				{StaffID: 5, Specialization: "General"},
				{StaffID: 9, Specialization: "Pediatrics"},
			}, nil
		},
	}
	var created *entity.Appointment
	appointments := &fakeAppointmentRepo{
		findActiveInWindowFn: func(context.Context, time.Time, time.Time) ([]entity.Appointment, error) {
			return []entity.Appointment{{AppointmentID: 1, DoctorID: 5, AppointmentDateTime: start}}, nil
		},
		createFn: func(_ context.Context, a *entity.Appointment) error {
			a.AppointmentID = 2
			created = a
			return nil
		},
	}
	patients := &fakePatientRepo{
		findActiveByIDFn: func(_ context.Context, id uint) (*entity.Patient, error) {
			return &entity.Patient{PatientID: id}, nil
		},
	}
	u := newAppointmentUsecase(appointments, patients, staff, &fakeServiceRepo{}, &fakeSettingRepo{}, time.Now())

	if _, err := u.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:           uintPtr(1),
		ServiceID:           1,
		AppointmentDateTime: start,
	}); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if created.DoctorID != 9 {
		t.Errorf("expected doctor 9 assigned, got %d", created.DoctorID)
	}
}

func TestCreateAppointmentNoDoctorFree(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)
	staff := &fakeStaffRepo{
		findQualifiedDoctorsFn: func(context.Context) ([]entity.StaffDetail, error) {
			return []entity.StaffDetail{{StaffID: 5, Specialization: "General"}}, nil
		},
	}
	appointments := &fakeAppointmentRepo{
		findActiveInWindowFn: func(context.Context, time.Time, time.Time) ([]entity.Appointment, error) {
			return []entity.Appointment{{AppointmentID: 1, DoctorID: 5, AppointmentDateTime: start}}, nil
		},
	}
	patients := &fakePatientRepo{
		findActiveByIDFn: func(_ context.Context, id uint) (*entity.Patient, error) {
			return &entity.Patient{PatientID: id}, nil
		},
	}
	u := newAppointmentUsecase(appointments, patients, staff, &fakeServiceRepo{}, &fakeSettingRepo{}, time.Now())

	_, err := u.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:           uintPtr(1),
		ServiceID:           1,
		AppointmentDateTime: start,
	})
	if !errors.Is(err, ErrNoDoctorAvailable) {
		t.Fatalf("expected ErrNoDoctorAvailable, got %v", err)
	}
}

func TestCreateAppointmentNoDoctorsRegistered(t *testing.T) {
	patients := &fakePatientRepo{
		findActiveByIDFn: func(_ context.Context, id uint) (*entity.Patient, error) {
			return &entity.Patient{PatientID: id}, nil
		},
	}
	u := newAppointmentUsecase(&fakeAppointmentRepo{}, patients, &fakeStaffRepo{}, &fakeServiceRepo{}, &fakeSettingRepo{}, time.Now())

	_, err := u.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:           uintPtr(1),
		ServiceID:           1,
		AppointmentDateTime: time.Now(),
	})
	if !errors.Is(err, ErrNoDoctorsRegistered) {
		t.Fatalf("expected ErrNoDoctorsRegistered, got %v", err)
	}
}

func TestCreateAppointmentInvalidStatus(t *testing.T) {
	patients := &fakePatientRepo{
		findActiveByIDFn: func(_ context.Context, id uint) (*entity.Patient, error) {
			return &entity.Patient{PatientID: id}, nil
		},
	}
	appointments := &fakeAppointmentRepo{
		createFn: func(context.Context, *entity.Appointment) error {
			t.Fatal("appointment should not be persisted with an invalid status")
			return nil
		},
	}
	u := newAppointmentUsecase(appointments, patients, &fakeStaffRepo{}, &fakeServiceRepo{}, &fakeSettingRepo{}, time.Now())

	_, err := u.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:           uintPtr(1),
		DoctorID:            uintPtr(5),
		ServiceID:           1,
		AppointmentDateTime: time.Now(),
		Status:              "Banana",
	})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateAppointmentStatusCaseInsensitive(t *testing.T) {
	stored := &entity.Appointment{AppointmentID: 3, DoctorID: 5, Status: entity.AppointmentStatusScheduled}
	var updated *entity.Appointment
	appointments := &fakeAppointmentRepo{
		findByIDFn: func(context.Context, uint) (*entity.Appointment, error) { return stored, nil },
		updateFn: func(_ context.Context, a *entity.Appointment) error {
			updated = a
			return nil
		},
	}
	u := newAppointmentUsecase(appointments, &fakePatientRepo{}, &fakeStaffRepo{}, &fakeServiceRepo{}, &fakeSettingRepo{}, time.Now())

	if err := u.UpdateAppointmentStatus(context.Background(), 3, "noshow"); err != nil {
		t.Fatalf("UpdateAppointmentStatus: %v", err)
	}
	if updated.Status != entity.AppointmentStatusNoShow {
		t.Errorf("expected canonical NoShow, got %s", updated.Status)
	}
}

func TestUpdateAppointmentStatusInvalid(t *testing.T) {
	appointments := &fakeAppointmentRepo{
		findByIDFn: func(context.Context, uint) (*entity.Appointment, error) {
			t.Fatal("store should not be read for an invalid status")
			return nil, nil
		},
	}
	u := newAppointmentUsecase(appointments, &fakePatientRepo{}, &fakeStaffRepo{}, &fakeServiceRepo{}, &fakeSettingRepo{}, time.Now())

	if err := u.UpdateAppointmentStatus(context.Background(), 3, "Banana"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateAppointmentIDMismatch(t *testing.T) {
	u := newAppointmentUsecase(&fakeAppointmentRepo{}, &fakePatientRepo{}, &fakeStaffRepo{}, &fakeServiceRepo{}, &fakeSettingRepo{}, time.Now())

	err := u.UpdateAppointment(context.Background(), 3, &dto.UpdateAppointmentRequest{AppointmentID: 4, Status: "Scheduled"})
	if !errors.Is(err, ErrAppointmentIDMismatch) {
		t.Fatalf("expected ErrAppointmentIDMismatch, got %v", err)
	}
}

func TestUpdateAppointmentConcurrentModification(t *testing.T) {
	prev := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	stored := &entity.Appointment{AppointmentID: 3, DoctorID: 5, Status: entity.AppointmentStatusScheduled, UpdatedAt: &prev}
	appointments := &fakeAppointmentRepo{
		findByIDFn: func(context.Context, uint) (*entity.Appointment, error) {
			a := *stored
			return &a, nil
		},
		updateCheckedFn: func(_ context.Context, _ *entity.Appointment, prevArg *time.Time) (int64, error) {
			if prevArg == nil || !prevArg.Equal(prev) {
				t.Errorf("expected loaded row version passed through, got %v", prevArg)
			}
			return 0, nil
		},
	}
	u := newAppointmentUsecase(appointments, &fakePatientRepo{}, &fakeStaffRepo{}, &fakeServiceRepo{}, &fakeSettingRepo{}, time.Now())

	err := u.UpdateAppointment(context.Background(), 3, &dto.UpdateAppointmentRequest{AppointmentID: 3, Status: "Confirmed"})
	if !errors.Is(err, ErrConcurrentModification) {
		t.Fatalf("expected ErrConcurrentModification, got %v", err)
	}
}

func TestUpdateAppointmentGoneAfterRace(t *testing.T) {
	calls := 0
	appointments := &fakeAppointmentRepo{
		findByIDFn: func(context.Context, uint) (*entity.Appointment, error) {
			calls++
			if calls == 1 {
				return &entity.Appointment{AppointmentID: 3, DoctorID: 5, Status: entity.AppointmentStatusScheduled}, nil
			}
			return nil, nil
		},
		updateCheckedFn: func(context.Context, *entity.Appointment, *time.Time) (int64, error) {
			return 0, nil
		},
	}
	u := newAppointmentUsecase(appointments, &fakePatientRepo{}, &fakeStaffRepo{}, &fakeServiceRepo{}, &fakeSettingRepo{}, time.Now())

	err := u.UpdateAppointment(context.Background(), 3, &dto.UpdateAppointmentRequest{AppointmentID: 3, Status: "Confirmed"})
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestUpdateAppointmentRejectsDeadReferences(t *testing.T) {
	appointments := &fakeAppointmentRepo{
		findByIDFn: func(context.Context, uint) (*entity.Appointment, error) {
			return &entity.Appointment{AppointmentID: 3, DoctorID: 5, ServiceID: 1, Status: entity.AppointmentStatusScheduled}, nil
		},
	}
	u := newAppointmentUsecase(appointments, &fakePatientRepo{}, &fakeStaffRepo{}, &fakeServiceRepo{}, &fakeSettingRepo{}, time.Now())

	err := u.UpdateAppointment(context.Background(), 3, &dto.UpdateAppointmentRequest{
		AppointmentID: 3,
		DoctorID:      uintPtr(77),
		Status:        "Scheduled",
	})
	if !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestDeleteAppointmentNotFound(t *testing.T) {
	appointments := &fakeAppointmentRepo{
		deleteFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
	u := newAppointmentUsecase(appointments, &fakePatientRepo{}, &fakeStaffRepo{}, &fakeServiceRepo{}, &fakeSettingRepo{}, time.Now())

	if err := u.DeleteAppointment(context.Background(), 3); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
}

func TestGetAppointmentsByPatientEmpty(t *testing.T) {
	u := newAppointmentUsecase(&fakeAppointmentRepo{}, &fakePatientRepo{}, &fakeStaffRepo{}, &fakeServiceRepo{}, &fakeSettingRepo{}, time.Now())

	if _, err := u.GetAppointmentsByPatient(context.Background(), 1); !errors.Is(err, ErrNoAppointmentsForPatient) {
		t.Fatalf("expected ErrNoAppointmentsForPatient, got %v", err)
	}
}
