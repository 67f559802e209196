package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-management-api/internal/converter"
	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrVerificationFailed = errors.New("verification failed")

// codeRequestedMessage is returned whether or not a patient matched, so
// the endpoint cannot be used to probe which contacts are on file.
const codeRequestedMessage = "If a matching record exists, a verification code has been sent."

// CodeStore issues and redeems short-lived verification codes.
type CodeStore interface {
	GenerateCode() (string, error)
	Store(ctx context.Context, patientID uint, code string) error
	Consume(ctx context.Context, patientID uint, code string) (bool, error)
}

type PatientVerificationUsecase interface {
	RequestCode(ctx context.Context, req *dto.RequestVerificationCodeRequest) (*dto.RequestVerificationCodeResponse, error)
	VerifyCode(ctx context.Context, req *dto.VerifyCodeRequest) (*dto.VerifyCodeResultResponse, error)
}

type patientVerificationUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	codes           CodeStore
}

func NewPatientVerificationUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	codes CodeStore,
) PatientVerificationUsecase {
	return &patientVerificationUsecase{
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		codes:           codes,
	}
}

// RequestCode issues a code when the identifier resolves to exactly one
// active patient. The response is the same in every case.
func (u *patientVerificationUsecase) RequestCode(ctx context.Context, req *dto.RequestVerificationCodeRequest) (*dto.RequestVerificationCodeResponse, error) {
	response := &dto.RequestVerificationCodeResponse{Message: codeRequestedMessage}

	patients, err := u.patientRepo.FindActiveByIdentifier(ctx, req.Method, req.ContactIdentifier, req.LastName)
	if err != nil {
		u.log.Warnf("Failed to look up patient by %s identifier: %+v", req.Method, err)
		return nil, err
	}
	if len(patients) != 1 {
		if len(patients) > 1 {
			u.log.Warnf("Verification identifier matched %d patients, no code issued", len(patients))
		}
		return response, nil
	}

	patient := patients[0]
	code, err := u.codes.GenerateCode()
	if err != nil {
		u.log.Errorf("Failed to generate verification code: %+v", err)
		return nil, err
	}
	if err := u.codes.Store(ctx, patient.PatientID, code); err != nil {
		return nil, err
	}

	// Delivery over email/SMS is handled out of band; record the intent.
	u.log.Infof("Verification code issued for patient %d via %s", patient.PatientID, req.Method)
	return response, nil
}

// VerifyCode redeems a code and, on success, returns the patient record
// with their appointment history.
func (u *patientVerificationUsecase) VerifyCode(ctx context.Context, req *dto.VerifyCodeRequest) (*dto.VerifyCodeResultResponse, error) {
	method := "sms"
	if strings.Contains(req.ContactIdentifier, "@") {
		method = "email"
	}

	patients, err := u.patientRepo.FindActiveByIdentifier(ctx, method, req.ContactIdentifier, "")
	if err != nil {
		u.log.Warnf("Failed to look up patient by %s identifier: %+v", method, err)
		return nil, err
	}

	for i := range patients {
		ok, err := u.codes.Consume(ctx, patients[i].PatientID, req.Code)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		appointments, err := u.appointmentRepo.FindByPatientID(ctx, patients[i].PatientID)
		if err != nil {
			u.log.Warnf("Failed to load appointments for patient %d: %+v", patients[i].PatientID, err)
			return nil, err
		}
		return &dto.VerifyCodeResultResponse{
			Message:      "Identity verified.",
			Patient:      converter.PatientToResponse(&patients[i]),
			Appointments: converter.AppointmentsToResponses(appointments),
		}, nil
	}

	return nil, ErrVerificationFailed
}
