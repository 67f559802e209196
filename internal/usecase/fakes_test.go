package usecase

import (
	"context"
	"io"
	"time"

	"clinic-management-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Fakes with function fields, one per repository. A nil field means the
// test does not expect that call; the zero returns keep it explicit.

type fakeAppointmentRepo struct {
	createFn             func(ctx context.Context, a *entity.Appointment) error
	findByIDFn           func(ctx context.Context, id uint) (*entity.Appointment, error)
	findAllFn            func(ctx context.Context) ([]entity.Appointment, error)
	findByPatientIDFn    func(ctx context.Context, patientID uint) ([]entity.Appointment, error)
	findActiveByDateFn   func(ctx context.Context, date time.Time, doctorID *uint) ([]entity.Appointment, error)
	findActiveInWindowFn func(ctx context.Context, from, to time.Time) ([]entity.Appointment, error)
	updateFn             func(ctx context.Context, a *entity.Appointment) error
	updateCheckedFn      func(ctx context.Context, a *entity.Appointment, prev *time.Time) (int64, error)
	deleteFn             func(ctx context.Context, id uint) (int64, error)
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, a *entity.Appointment) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, a)
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, id uint) (*entity.Appointment, error) {
	if f.findByIDFn == nil {
		return nil, nil
	}
	return f.findByIDFn(ctx, id)
}

func (f *fakeAppointmentRepo) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	if f.findAllFn == nil {
		return nil, nil
	}
	return f.findAllFn(ctx)
}

func (f *fakeAppointmentRepo) FindByPatientID(ctx context.Context, patientID uint) ([]entity.Appointment, error) {
	if f.findByPatientIDFn == nil {
		return nil, nil
	}
	return f.findByPatientIDFn(ctx, patientID)
}

func (f *fakeAppointmentRepo) FindActiveByDate(ctx context.Context, date time.Time, doctorID *uint) ([]entity.Appointment, error) {
	if f.findActiveByDateFn == nil {
		return nil, nil
	}
	return f.findActiveByDateFn(ctx, date, doctorID)
}

func (f *fakeAppointmentRepo) FindActiveInWindow(ctx context.Context, from, to time.Time) ([]entity.Appointment, error) {
	if f.findActiveInWindowFn == nil {
		return nil, nil
	}
	return f.findActiveInWindowFn(ctx, from, to)
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, a *entity.Appointment) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, a)
}

func (f *fakeAppointmentRepo) UpdateChecked(ctx context.Context, a *entity.Appointment, prev *time.Time) (int64, error) {
	if f.updateCheckedFn == nil {
		return 1, nil
	}
	return f.updateCheckedFn(ctx, a, prev)
}

func (f *fakeAppointmentRepo) Delete(ctx context.Context, id uint) (int64, error) {
	if f.deleteFn == nil {
		return 1, nil
	}
	return f.deleteFn(ctx, id)
}

type fakePatientRepo struct {
	createFn                 func(ctx context.Context, p *entity.Patient) error
	findActiveByIDFn         func(ctx context.Context, id uint) (*entity.Patient, error)
	findByContactFn          func(ctx context.Context, email, contactNumber string) (*entity.Patient, error)
	findActiveByIdentifierFn func(ctx context.Context, method, identifier, lastName string) ([]entity.Patient, error)
	findAllActiveFn          func(ctx context.Context) ([]entity.Patient, error)
	updateFn                 func(ctx context.Context, p *entity.Patient) error
	softDeleteFn             func(ctx context.Context, id uint) (int64, error)
}

func (f *fakePatientRepo) Create(ctx context.Context, p *entity.Patient) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, p)
}

func (f *fakePatientRepo) FindActiveByID(ctx context.Context, id uint) (*entity.Patient, error) {
	if f.findActiveByIDFn == nil {
		return nil, nil
	}
	return f.findActiveByIDFn(ctx, id)
}

func (f *fakePatientRepo) FindByContact(ctx context.Context, email, contactNumber string) (*entity.Patient, error) {
	if f.findByContactFn == nil {
		return nil, nil
	}
	return f.findByContactFn(ctx, email, contactNumber)
}

func (f *fakePatientRepo) FindActiveByIdentifier(ctx context.Context, method, identifier, lastName string) ([]entity.Patient, error) {
	if f.findActiveByIdentifierFn == nil {
		return nil, nil
	}
	return f.findActiveByIdentifierFn(ctx, method, identifier, lastName)
}

func (f *fakePatientRepo) FindAllActive(ctx context.Context) ([]entity.Patient, error) {
	if f.findAllActiveFn == nil {
		return nil, nil
	}
	return f.findAllActiveFn(ctx)
}

func (f *fakePatientRepo) Update(ctx context.Context, p *entity.Patient) error {
	if f.updateFn == nil {
		return nil
	}
	return f.updateFn(ctx, p)
}

func (f *fakePatientRepo) SoftDelete(ctx context.Context, id uint) (int64, error) {
	if f.softDeleteFn == nil {
		return 1, nil
	}
	return f.softDeleteFn(ctx, id)
}

type fakeStaffRepo struct {
	findByIDFn             func(ctx context.Context, id uint) (*entity.StaffDetail, error)
	findActiveByIDFn       func(ctx context.Context, id uint) (*entity.StaffDetail, error)
	findQualifiedDoctorsFn func(ctx context.Context) ([]entity.StaffDetail, error)
}

func (f *fakeStaffRepo) FindByID(ctx context.Context, id uint) (*entity.StaffDetail, error) {
	if f.findByIDFn == nil {
		return nil, nil
	}
	return f.findByIDFn(ctx, id)
}

func (f *fakeStaffRepo) FindActiveByID(ctx context.Context, id uint) (*entity.StaffDetail, error) {
	if f.findActiveByIDFn == nil {
		return nil, nil
	}
	return f.findActiveByIDFn(ctx, id)
}

func (f *fakeStaffRepo) FindQualifiedDoctors(ctx context.Context) ([]entity.StaffDetail, error) {
	if f.findQualifiedDoctorsFn == nil {
		return nil, nil
	}
	return f.findQualifiedDoctorsFn(ctx)
}

type fakeServiceRepo struct {
	findByIDFn func(ctx context.Context, id uint) (*entity.Service, error)
	findAllFn  func(ctx context.Context) ([]entity.Service, error)
}

func (f *fakeServiceRepo) FindByID(ctx context.Context, id uint) (*entity.Service, error) {
	if f.findByIDFn == nil {
		return nil, nil
	}
	return f.findByIDFn(ctx, id)
}

func (f *fakeServiceRepo) FindAll(ctx context.Context) ([]entity.Service, error) {
	if f.findAllFn == nil {
		return nil, nil
	}
	return f.findAllFn(ctx)
}

type fakeSettingRepo struct {
	getFn           func(ctx context.Context) (*entity.ClinicSetting, error)
	findByIDFn      func(ctx context.Context, id uint) (*entity.ClinicSetting, error)
	updateCheckedFn func(ctx context.Context, s *entity.ClinicSetting, prev *time.Time) (int64, error)
}

func (f *fakeSettingRepo) Get(ctx context.Context) (*entity.ClinicSetting, error) {
	if f.getFn == nil {
		return nil, nil
	}
	return f.getFn(ctx)
}

func (f *fakeSettingRepo) FindByID(ctx context.Context, id uint) (*entity.ClinicSetting, error) {
	if f.findByIDFn == nil {
		return nil, nil
	}
	return f.findByIDFn(ctx, id)
}

func (f *fakeSettingRepo) UpdateChecked(ctx context.Context, s *entity.ClinicSetting, prev *time.Time) (int64, error) {
	if f.updateCheckedFn == nil {
		return 1, nil
	}
	return f.updateCheckedFn(ctx, s, prev)
}

type fakeCodeStore struct {
	generateFn func() (string, error)
	storeFn    func(ctx context.Context, patientID uint, code string) error
	consumeFn  func(ctx context.Context, patientID uint, code string) (bool, error)
}

func (f *fakeCodeStore) GenerateCode() (string, error) {
	if f.generateFn == nil {
		return "123456", nil
	}
	return f.generateFn()
}

func (f *fakeCodeStore) Store(ctx context.Context, patientID uint, code string) error {
	if f.storeFn == nil {
		return nil
	}
	return f.storeFn(ctx, patientID, code)
}

func (f *fakeCodeStore) Consume(ctx context.Context, patientID uint, code string) (bool, error) {
	if f.consumeFn == nil {
		return false, nil
	}
	return f.consumeFn(ctx, patientID, code)
}

func standardSetting() *entity.ClinicSetting {
	return &entity.ClinicSetting{
		ID:             1,
		OpenTime:       "09:00",
		CloseTime:      "17:00",
		LunchStartTime: "12:00",
		LunchEndTime:   "13:00",
	}
}

func uintPtr(v uint) *uint { return &v }
