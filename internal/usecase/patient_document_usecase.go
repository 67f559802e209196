package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrDocumentNotFound = errors.New("document not found")

type PatientDocumentUsecase interface {
	CreateDocument(ctx context.Context, req *dto.CreatePatientDocumentRequest) (*dto.PatientDocumentResponse, error)
	GetDocument(ctx context.Context, id uint) (*dto.PatientDocumentResponse, error)
	GetDocumentsByPatient(ctx context.Context, patientID uint) (*dto.PatientDocumentListResponse, error)
	UpdateDocument(ctx context.Context, id uint, req *dto.UpdatePatientDocumentRequest) (*dto.PatientDocumentResponse, error)
	DeleteDocument(ctx context.Context, id uint) error
}

type patientDocumentUsecase struct {
	log          *logrus.Logger
	documentRepo repository.PatientDocumentRepository
	patientRepo  repository.PatientRepository
	now          func() time.Time
}

func NewPatientDocumentUsecase(log *logrus.Logger, documentRepo repository.PatientDocumentRepository, patientRepo repository.PatientRepository) PatientDocumentUsecase {
	return &patientDocumentUsecase{log: log, documentRepo: documentRepo, patientRepo: patientRepo, now: time.Now}
}

// CreateDocument registers document metadata. The storage key is minted
// here so the external store never sees caller-chosen names.
func (u *patientDocumentUsecase) CreateDocument(ctx context.Context, req *dto.CreatePatientDocumentRequest) (*dto.PatientDocumentResponse, error) {
	patient, err := u.patientRepo.FindActiveByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	document := &entity.PatientDocument{
		PatientID:         req.PatientID,
		DocumentName:      req.DocumentName,
		DocumentType:      req.DocumentType,
		StorageKey:        fmt.Sprintf("patients/%d/%s", req.PatientID, uuid.NewString()),
		Notes:             req.Notes,
		UploadedByStaffID: req.UploadedByStaffID,
		UploadDate:        u.now().UTC(),
	}
	if err := u.documentRepo.Create(ctx, document); err != nil {
		u.log.Errorf("Failed to create patient document: %+v", err)
		return nil, err
	}
	return converter.PatientDocumentToResponse(document), nil
}

func (u *patientDocumentUsecase) GetDocument(ctx context.Context, id uint) (*dto.PatientDocumentResponse, error) {
	document, err := u.documentRepo.FindActiveByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find document %d: %+v", id, err)
		return nil, err
	}
	if document == nil {
		return nil, ErrDocumentNotFound
	}
	return converter.PatientDocumentToResponse(document), nil
}

func (u *patientDocumentUsecase) GetDocumentsByPatient(ctx context.Context, patientID uint) (*dto.PatientDocumentListResponse, error) {
	documents, err := u.documentRepo.FindActiveByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to list documents for patient %d: %+v", patientID, err)
		return nil, err
	}
	return &dto.PatientDocumentListResponse{
		Documents: converter.PatientDocumentsToResponses(documents),
		Total:     len(documents),
	}, nil
}

func (u *patientDocumentUsecase) UpdateDocument(ctx context.Context, id uint, req *dto.UpdatePatientDocumentRequest) (*dto.PatientDocumentResponse, error) {
	document, err := u.documentRepo.FindActiveByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find document %d: %+v", id, err)
		return nil, err
	}
	if document == nil {
		return nil, ErrDocumentNotFound
	}

	if req.DocumentName != nil {
		document.DocumentName = *req.DocumentName
	}
	if req.DocumentType != nil {
		document.DocumentType = *req.DocumentType
	}
	if req.Notes != nil {
		document.Notes = *req.Notes
	}

	now := u.now().UTC()
	document.UpdatedAt = &now
	if err := u.documentRepo.Update(ctx, document); err != nil {
		u.log.Errorf("Failed to update document %d: %+v", id, err)
		return nil, err
	}
	return converter.PatientDocumentToResponse(document), nil
}

func (u *patientDocumentUsecase) DeleteDocument(ctx context.Context, id uint) error {
	affected, err := u.documentRepo.SoftDelete(ctx, id)
	if err != nil {
		u.log.Errorf("Failed to delete document %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}
