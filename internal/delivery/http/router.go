package http

import (
	"net/http"

	"github.com/issamkebdani780/Doctor-BackEnd/internal/delivery/http/handler"
	"github.com/issamkebdani780/Doctor-BackEnd/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	settingHandler     *handler.SettingHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
	metricsMiddleware  *middleware.MetricsMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	settingHandler *handler.SettingHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		settingHandler:     settingHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
		metricsMiddleware:  metricsMiddleware,
	}
}

// Setup registers every route. CORS and request logging wrap the router itself
// so they also see preflight and unmatched requests.
func (r *Router) Setup() http.Handler {
	r.router.Use(r.metricsMiddleware.Handle)

	// Public routes
	r.router.Handle("/", r.authMiddleware.OptionalAuthenticate(http.HandlerFunc(r.authHandler.Home))).Methods(http.MethodGet)
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", r.metricsMiddleware.Handler()).Methods(http.MethodGet)

	// Auth routes (public)
	auth := r.router.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/sign-up", r.authHandler.SignUp).Methods(http.MethodPost)
	auth.HandleFunc("/sign-in", r.authHandler.SignIn).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := r.router.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/sign-out", r.authHandler.SignOut).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Patients
	patient := r.router.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.HandleFunc("/add", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	patient.HandleFunc("/{doctorId}", r.patientHandler.ListPatients).Methods(http.MethodGet)
	patient.HandleFunc("/{patientId}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	patient.HandleFunc("/{patientId}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Appointments
	appointments := r.router.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	appointments.HandleFunc("/doctor/{doctorId}", r.appointmentHandler.ListByDoctor).Methods(http.MethodGet)
	appointments.HandleFunc("/patient/{patientId}", r.appointmentHandler.ListByPatient).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPut)
	appointments.HandleFunc("/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	appointments.HandleFunc("/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Settings
	setting := r.router.PathPrefix("/setting").Subrouter()
	setting.Use(r.authMiddleware.Authenticate)
	setting.HandleFunc("/handleSendProfilSetting", r.settingHandler.UpdateProfile).Methods(http.MethodPut)
	setting.HandleFunc("/handleCabinetSetting", r.settingHandler.UpdateCabinet).Methods(http.MethodPut)

	return r.loggingMiddleware.Handle(r.corsMiddleware.Handle(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
