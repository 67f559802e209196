package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrTriageRecordNotFound = errors.New("triage record not found")

type TriageRecordUsecase interface {
	CreateTriageRecord(ctx context.Context, req *dto.CreateTriageRecordRequest) (*dto.TriageRecordResponse, error)
	GetTriageRecord(ctx context.Context, id uint) (*dto.TriageRecordResponse, error)
	GetAllTriageRecords(ctx context.Context) (*dto.TriageRecordListResponse, error)
	GetTriageRecordsByPatient(ctx context.Context, patientID uint) (*dto.TriageRecordListResponse, error)
	UpdateTriageRecord(ctx context.Context, id uint, req *dto.UpdateTriageRecordRequest) (*dto.TriageRecordResponse, error)
	DeleteTriageRecord(ctx context.Context, id uint) error
}

type triageRecordUsecase struct {
	log         *logrus.Logger
	triageRepo  repository.TriageRecordRepository
	patientRepo repository.PatientRepository
	now         func() time.Time
}

func NewTriageRecordUsecase(log *logrus.Logger, triageRepo repository.TriageRecordRepository, patientRepo repository.PatientRepository) TriageRecordUsecase {
	return &triageRecordUsecase{log: log, triageRepo: triageRepo, patientRepo: patientRepo, now: time.Now}
}

func (u *triageRecordUsecase) CreateTriageRecord(ctx context.Context, req *dto.CreateTriageRecordRequest) (*dto.TriageRecordResponse, error) {
	patient, err := u.patientRepo.FindActiveByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	record := &entity.TriageRecord{
		PatientID:              req.PatientID,
		AppointmentID:          req.AppointmentID,
		ChiefComplaint:         req.ChiefComplaint,
		Temperature:            req.Temperature,
		BloodPressureSystolic:  req.BloodPressureSystolic,
		BloodPressureDiastolic: req.BloodPressureDiastolic,
		PulseRate:              req.PulseRate,
		RespiratoryRate:        req.RespiratoryRate,
		Weight:                 req.Weight,
		Height:                 req.Height,
		Notes:                  req.Notes,
	}
	if err := u.triageRepo.Create(ctx, record); err != nil {
		u.log.Errorf("Failed to create triage record: %+v", err)
		return nil, err
	}
	return converter.TriageRecordToResponse(record), nil
}

func (u *triageRecordUsecase) GetTriageRecord(ctx context.Context, id uint) (*dto.TriageRecordResponse, error) {
	record, err := u.triageRepo.FindActiveByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find triage record %d: %+v", id, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrTriageRecordNotFound
	}
	return converter.TriageRecordToResponse(record), nil
}

func (u *triageRecordUsecase) GetAllTriageRecords(ctx context.Context) (*dto.TriageRecordListResponse, error) {
	records, err := u.triageRepo.FindAllActive(ctx)
	if err != nil {
		u.log.Warnf("Failed to list triage records: %+v", err)
		return nil, err
	}
	return &dto.TriageRecordListResponse{
		TriageRecords: converter.TriageRecordsToResponses(records),
		Total:         len(records),
	}, nil
}

func (u *triageRecordUsecase) GetTriageRecordsByPatient(ctx context.Context, patientID uint) (*dto.TriageRecordListResponse, error) {
	records, err := u.triageRepo.FindActiveByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to list triage records for patient %d: %+v", patientID, err)
		return nil, err
	}
	return &dto.TriageRecordListResponse{
		TriageRecords: converter.TriageRecordsToResponses(records),
		Total:         len(records),
	}, nil
}

func (u *triageRecordUsecase) UpdateTriageRecord(ctx context.Context, id uint, req *dto.UpdateTriageRecordRequest) (*dto.TriageRecordResponse, error) {
	record, err := u.triageRepo.FindActiveByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find triage record %d: %+v", id, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrTriageRecordNotFound
	}

	if req.ChiefComplaint != nil {
		record.ChiefComplaint = *req.ChiefComplaint
	}
	if req.Temperature != nil {
		record.Temperature = req.Temperature
	}
	if req.BloodPressureSystolic != nil {
		record.BloodPressureSystolic = req.BloodPressureSystolic
	}
	if req.BloodPressureDiastolic != nil {
		record.BloodPressureDiastolic = req.BloodPressureDiastolic
	}
	if req.PulseRate != nil {
		record.PulseRate = req.PulseRate
	}
	if req.RespiratoryRate != nil {
		record.RespiratoryRate = req.RespiratoryRate
	}
	if req.Weight != nil {
		record.Weight = req.Weight
	}
	if req.Height != nil {
		record.Height = req.Height
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}

	now := u.now().UTC()
	record.UpdatedAt = &now
	if err := u.triageRepo.Update(ctx, record); err != nil {
		u.log.Errorf("Failed to update triage record %d: %+v", id, err)
		return nil, err
	}
	return converter.TriageRecordToResponse(record), nil
}

func (u *triageRecordUsecase) DeleteTriageRecord(ctx context.Context, id uint) error {
	affected, err := u.triageRepo.SoftDelete(ctx, id)
	if err != nil {
		u.log.Errorf("Failed to delete triage record %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrTriageRecordNotFound
	}
	return nil
}
