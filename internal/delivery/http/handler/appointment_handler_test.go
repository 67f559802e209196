package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/validator"

	"github.com/gorilla/mux"
)

type fakeAppointmentUsecase struct {
	getAvailableSlotsFn        func(ctx context.Context, serviceID uint, date string, doctorID *uint) (*dto.AvailableSlotsResponse, error)
	createAppointmentFn        func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	getAppointmentFn           func(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	getAllAppointmentsFn       func(ctx context.Context) (*dto.AppointmentListResponse, error)
	getAppointmentsByPatientFn func(ctx context.Context, patientID uint) (*dto.AppointmentListResponse, error)
	updateAppointmentStatusFn  func(ctx context.Context, id uint, status string) error
	updateAppointmentFn        func(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) error
	deleteAppointmentFn        func(ctx context.Context, id uint) error
}

func (f *fakeAppointmentUsecase) GetAvailableSlots(ctx context.Context, serviceID uint, date string, doctorID *uint) (*dto.AvailableSlotsResponse, error) {
	return f.getAvailableSlotsFn(ctx, serviceID, date, doctorID)
}

func (f *fakeAppointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return f.createAppointmentFn(ctx, req)
}

func (f *fakeAppointmentUsecase) GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	return f.getAppointmentFn(ctx, id)
}

func (f *fakeAppointmentUsecase) GetAllAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	return f.getAllAppointmentsFn(ctx)
}

func (f *fakeAppointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID uint) (*dto.AppointmentListResponse, error) {
	return f.getAppointmentsByPatientFn(ctx, patientID)
}

func (f *fakeAppointmentUsecase) UpdateAppointmentStatus(ctx context.Context, id uint, status string) error {
	return f.updateAppointmentStatusFn(ctx, id, status)
}

func (f *fakeAppointmentUsecase) UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) error {
	return f.updateAppointmentFn(ctx, id, req)
}

func (f *fakeAppointmentUsecase) DeleteAppointment(ctx context.Context, id uint) error {
	return f.deleteAppointmentFn(ctx, id)
}

func newTestRouter(u usecase.AppointmentUsecase) *mux.Router {
	h := NewAppointmentHandler(u, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/appointments/available-slots", h.GetAvailableSlots).Methods(http.MethodGet)
	r.HandleFunc("/appointments", h.CreateAppointment).Methods(http.MethodPost)
	r.HandleFunc("/appointments/{id}/status", h.UpdateAppointmentStatus).Methods(http.MethodPut)
	r.HandleFunc("/appointments/{id}", h.GetAppointment).Methods(http.MethodGet)
	return r
}

func TestGetAvailableSlotsEndpoint(t *testing.T) {
	u := &fakeAppointmentUsecase{
		getAvailableSlotsFn: func(_ context.Context, serviceID uint, date string, doctorID *uint) (*dto.AvailableSlotsResponse, error) {
			if serviceID != 2 || date != "2026-03-02" || doctorID != nil {
				t.Errorf("unexpected arguments: %d %s %v", serviceID, date, doctorID)
			}
			return &dto.AvailableSlotsResponse{Date: date, Slots: []string{"09:00", "09:30"}}, nil
		},
	}
	router := newTestRouter(u)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/appointments/available-slots?service_id=2&date=2026-03-02", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Slots []string `json:"slots"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !body.Success || len(body.Data.Slots) != 2 {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetAvailableSlotsEndpointMissingDate(t *testing.T) {
	router := newTestRouter(&fakeAppointmentUsecase{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/appointments/available-slots?service_id=2", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateAppointmentEndpointNoDoctorFree(t *testing.T) {
	u := &fakeAppointmentUsecase{
		createAppointmentFn: func(context.Context, *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrNoDoctorAvailable
		},
	}
	router := newTestRouter(u)

	body := `{"service_id": 1, "appointment_date_time": "2026-03-02T10:00:00Z", "first_name": "Ada", "last_name": "Lovelace"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateAppointmentEndpointValidation(t *testing.T) {
	router := newTestRouter(&fakeAppointmentUsecase{
		createAppointmentFn: func(context.Context, *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			t.Fatal("usecase should not be reached on validation failure")
			return nil, nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(`{"notes": "no service"}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateAppointmentStatusEndpointInvalid(t *testing.T) {
	u := &fakeAppointmentUsecase{
		updateAppointmentStatusFn: func(_ context.Context, _ uint, status string) error {
			if status != "Banana" {
				t.Errorf("expected raw status passed through, got %q", status)
			}
			return usecase.ErrInvalidStatus
		},
	}
	router := newTestRouter(u)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/appointments/3/status?status=Banana", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetAppointmentEndpointNotFound(t *testing.T) {
	u := &fakeAppointmentUsecase{
		getAppointmentFn: func(context.Context, uint) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrAppointmentNotFound
		},
	}
	router := newTestRouter(u)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/appointments/99", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetAppointmentEndpointBadID(t *testing.T) {
	router := newTestRouter(&fakeAppointmentUsecase{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/appointments/abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
