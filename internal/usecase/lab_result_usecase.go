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

var ErrLabResultNotFound = errors.New("lab result not found")

type LabResultUsecase interface {
	CreateLabResult(ctx context.Context, req *dto.CreateLabResultRequest) (*dto.LabResultResponse, error)
	GetLabResult(ctx context.Context, id uint) (*dto.LabResultResponse, error)
	GetAllLabResults(ctx context.Context) (*dto.LabResultListResponse, error)
	GetLabResultsByPatient(ctx context.Context, patientID uint) (*dto.LabResultListResponse, error)
	UpdateLabResult(ctx context.Context, id uint, req *dto.UpdateLabResultRequest) (*dto.LabResultResponse, error)
	DeleteLabResult(ctx context.Context, id uint) error
}

type labResultUsecase struct {
	log         *logrus.Logger
	labRepo     repository.LabResultRepository
	patientRepo repository.PatientRepository
	now         func() time.Time
}

func NewLabResultUsecase(log *logrus.Logger, labRepo repository.LabResultRepository, patientRepo repository.PatientRepository) LabResultUsecase {
	return &labResultUsecase{log: log, labRepo: labRepo, patientRepo: patientRepo, now: time.Now}
}

func (u *labResultUsecase) CreateLabResult(ctx context.Context, req *dto.CreateLabResultRequest) (*dto.LabResultResponse, error) {
	patient, err := u.patientRepo.FindActiveByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	result := &entity.LabResult{
		PatientID:        req.PatientID,
		AppointmentID:    req.AppointmentID,
		TestName:         req.TestName,
		ResultValue:      req.ResultValue,
		Unit:             req.Unit,
		ReferenceRange:   req.ReferenceRange,
		Interpretation:   req.Interpretation,
		ResultDate:       req.ResultDate,
		OrderedByStaffID: req.OrderedByStaffID,
	}
	if err := u.labRepo.Create(ctx, result); err != nil {
		u.log.Errorf("Failed to create lab result: %+v", err)
		return nil, err
	}
	return converter.LabResultToResponse(result), nil
}

func (u *labResultUsecase) GetLabResult(ctx context.Context, id uint) (*dto.LabResultResponse, error) {
	result, err := u.labRepo.FindActiveByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find lab result %d: %+v", id, err)
		return nil, err
	}
	if result == nil {
		return nil, ErrLabResultNotFound
	}
	return converter.LabResultToResponse(result), nil
}

func (u *labResultUsecase) GetAllLabResults(ctx context.Context) (*dto.LabResultListResponse, error) {
	results, err := u.labRepo.FindAllActive(ctx)
	if err != nil {
		u.log.Warnf("Failed to list lab results: %+v", err)
		return nil, err
	}
	return &dto.LabResultListResponse{
		LabResults: converter.LabResultsToResponses(results),
		Total:      len(results),
	}, nil
}

func (u *labResultUsecase) GetLabResultsByPatient(ctx context.Context, patientID uint) (*dto.LabResultListResponse, error) {
	results, err := u.labRepo.FindActiveByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to list lab results for patient %d: %+v", patientID, err)
		return nil, err
	}
	return &dto.LabResultListResponse{
		LabResults: converter.LabResultsToResponses(results),
		Total:      len(results),
	}, nil
}

func (u *labResultUsecase) UpdateLabResult(ctx context.Context, id uint, req *dto.UpdateLabResultRequest) (*dto.LabResultResponse, error) {
	result, err := u.labRepo.FindActiveByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find lab result %d: %+v", id, err)
		return nil, err
	}
	if result == nil {
		return nil, ErrLabResultNotFound
	}

	if req.TestName != nil {
		result.TestName = *req.TestName
	}
	if req.ResultValue != nil {
		result.ResultValue = *req.ResultValue
	}
	if req.Unit != nil {
		result.Unit = *req.Unit
	}
	if req.ReferenceRange != nil {
		result.ReferenceRange = *req.ReferenceRange
	}
	if req.Interpretation != nil {
		result.Interpretation = *req.Interpretation
	}
	if req.ResultDate != nil {
		result.ResultDate = *req.ResultDate
	}

	now := u.now().UTC()
	result.UpdatedAt = &now
	if err := u.labRepo.Update(ctx, result); err != nil {
		u.log.Errorf("Failed to update lab result %d: %+v", id, err)
		return nil, err
	}
	return converter.LabResultToResponse(result), nil
}

func (u *labResultUsecase) DeleteLabResult(ctx context.Context, id uint) error {
	affected, err := u.labRepo.SoftDelete(ctx, id)
	if err != nil {
		u.log.Errorf("Failed to delete lab result %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrLabResultNotFound
	}
	return nil
}
