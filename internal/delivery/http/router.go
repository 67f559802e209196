package http

import (
	"net/http"

	"clinic-management-api/internal/delivery/http/handler"
	"clinic-management-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	appointmentHandler  *handler.AppointmentHandler
	clinicHandler       *handler.ClinicSettingHandler
	patientHandler      *handler.PatientHandler
	labResultHandler    *handler.LabResultHandler
	triageHandler       *handler.TriageRecordHandler
	documentHandler     *handler.PatientDocumentHandler
	verificationHandler *handler.PatientVerificationHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
}

func NewRouter(
	appointmentHandler *handler.AppointmentHandler,
	clinicHandler *handler.ClinicSettingHandler,
	patientHandler *handler.PatientHandler,
	labResultHandler *handler.LabResultHandler,
	triageHandler *handler.TriageRecordHandler,
	documentHandler *handler.PatientDocumentHandler,
	verificationHandler *handler.PatientVerificationHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		appointmentHandler:  appointmentHandler,
		clinicHandler:       clinicHandler,
		patientHandler:      patientHandler,
		labResultHandler:    labResultHandler,
		triageHandler:       triageHandler,
		documentHandler:     documentHandler,
		verificationHandler: verificationHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public booking routes: patients book and look up appointments
	// without an account.
	api.HandleFunc("/appointments/available-slots", r.appointmentHandler.GetAvailableSlots).Methods(http.MethodGet)
	api.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/patients/{patientId}/appointments", r.appointmentHandler.GetAppointmentsByPatient).Methods(http.MethodGet)

	// Public verification routes
	verification := api.PathPrefix("/verification").Subrouter()
	verification.HandleFunc("/request-code", r.verificationHandler.RequestCode).Methods(http.MethodPost)
	verification.HandleFunc("/verify-code", r.verificationHandler.VerifyCode).Methods(http.MethodPost)

	// Staff routes (protected)
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)

	// Appointment management
	staff.Handle("/appointments", middleware.RequireFrontOffice(
		http.HandlerFunc(r.appointmentHandler.GetAllAppointments))).Methods(http.MethodGet)
	staff.Handle("/appointments/{id}/status", middleware.RequireClinicalStaff(
		http.HandlerFunc(r.appointmentHandler.UpdateAppointmentStatus))).Methods(http.MethodPut)
	staff.Handle("/appointments/{id}", middleware.RequireFrontOffice(
		http.HandlerFunc(r.appointmentHandler.UpdateAppointment))).Methods(http.MethodPut)
	staff.Handle("/appointments/{id}", middleware.RequireManagement(
		http.HandlerFunc(r.appointmentHandler.DeleteAppointment))).Methods(http.MethodDelete)

	// Clinic settings
	staff.Handle("/clinic-settings/{id}", middleware.RequireSettingsAccess(
		http.HandlerFunc(r.clinicHandler.GetSettings))).Methods(http.MethodGet)
	staff.Handle("/clinic-settings/{id}", middleware.RequireSettingsAccess(
		http.HandlerFunc(r.clinicHandler.UpdateSettings))).Methods(http.MethodPut)

	// Patient records
	staff.Handle("/patients", middleware.RequireFrontOffice(
		http.HandlerFunc(r.patientHandler.CreatePatient))).Methods(http.MethodPost)
	staff.Handle("/patients", middleware.RequireFrontOffice(
		http.HandlerFunc(r.patientHandler.GetAllPatients))).Methods(http.MethodGet)
	staff.Handle("/patients/{id}", middleware.RequireFrontOffice(
		http.HandlerFunc(r.patientHandler.GetPatient))).Methods(http.MethodGet)
	staff.Handle("/patients/{id}", middleware.RequireFrontOffice(
		http.HandlerFunc(r.patientHandler.UpdatePatient))).Methods(http.MethodPut)
	staff.Handle("/patients/{id}", middleware.RequireManagement(
		http.HandlerFunc(r.patientHandler.DeletePatient))).Methods(http.MethodDelete)

	// Lab results
	staff.Handle("/lab-results", middleware.RequireClinicalStaff(
		http.HandlerFunc(r.labResultHandler.CreateLabResult))).Methods(http.MethodPost)
	staff.Handle("/lab-results", middleware.RequireClinicalStaff(
		http.HandlerFunc(r.labResultHandler.GetAllLabResults))).Methods(http.MethodGet)
	staff.Handle("/lab-results/{id}", middleware.RequireClinicalStaff(
		http.HandlerFunc(r.labResultHandler.GetLabResult))).Methods(http.MethodGet)
	staff.Handle("/lab-results/{id}", middleware.RequireClinicalStaff(
		http.HandlerFunc(r.labResultHandler.UpdateLabResult))).Methods(http.MethodPut)
	staff.Handle("/lab-results/{id}", middleware.RequireManagement(
		http.HandlerFunc(r.labResultHandler.DeleteLabResult))).Methods(http.MethodDelete)
	staff.Handle("/patients/{patientId}/lab-results", middleware.RequireClinicalStaff(
		http.HandlerFunc(r.labResultHandler.GetLabResultsByPatient))).Methods(http.MethodGet)

	// Triage records
	staff.Handle("/triage-records", middleware.RequireClinicalStaff(
		http.HandlerFunc(r.triageHandler.CreateTriageRecord))).Methods(http.MethodPost)
	staff.Handle("/triage-records", middleware.RequireClinicalStaff(
		http.HandlerFunc(r.triageHandler.GetAllTriageRecords))).Methods(http.MethodGet)
	staff.Handle("/triage-records/{id}", middleware.RequireClinicalStaff(
		http.HandlerFunc(r.triageHandler.GetTriageRecord))).Methods(http.MethodGet)
	staff.Handle("/triage-records/{id}", middleware.RequireClinicalStaff(
		http.HandlerFunc(r.triageHandler.UpdateTriageRecord))).Methods(http.MethodPut)
	staff.Handle("/triage-records/{id}", middleware.RequireManagement(
		http.HandlerFunc(r.triageHandler.DeleteTriageRecord))).Methods(http.MethodDelete)
	staff.Handle("/patients/{patientId}/triage-records", middleware.RequireClinicalStaff(
		http.HandlerFunc(r.triageHandler.GetTriageRecordsByPatient))).Methods(http.MethodGet)

	// Patient documents
	staff.Handle("/documents", middleware.RequireFrontOffice(
		http.HandlerFunc(r.documentHandler.CreateDocument))).Methods(http.MethodPost)
	staff.Handle("/documents/{id}", middleware.RequireFrontOffice(
		http.HandlerFunc(r.documentHandler.GetDocument))).Methods(http.MethodGet)
	staff.Handle("/documents/{id}", middleware.RequireFrontOffice(
		http.HandlerFunc(r.documentHandler.UpdateDocument))).Methods(http.MethodPut)
	staff.Handle("/documents/{id}", middleware.RequireManagement(
		http.HandlerFunc(r.documentHandler.DeleteDocument))).Methods(http.MethodDelete)
	staff.Handle("/patients/{patientId}/documents", middleware.RequireFrontOffice(
		http.HandlerFunc(r.documentHandler.GetDocumentsByPatient))).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
