package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-PublicBooker/internal/api/middleware"
)

// Routes обработчики публичного API
type Routes struct {
	GetCalendar   http.HandlerFunc
	GetMonth      http.HandlerFunc
	GetDaySlots   http.HandlerFunc
	GetWeek       http.HandlerFunc
	SubmitBooking http.HandlerFunc

	CreateSession http.HandlerFunc
	GetSession    http.HandlerFunc
	ApplyAction   http.HandlerFunc
	SubmitSession http.HandlerFunc
	DeleteSession http.HandlerFunc
}

// Options инфраструктура роутера, nil отключает соответствующую часть
type Options struct {
	Metrics       middleware.HTTPMetrics
	MetricsPath   string
	SubmitLimiter *middleware.RateLimiter
}

// NewRouter собирает роутер /api/v1
func NewRouter(routes Routes, opts Options) *mux.Router {
	r := mux.NewRouter()

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		if opts.MetricsPath != "" {
			r.Handle(opts.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
		}
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// STATELESS ROUTES
	// ============================================================

	api.HandleFunc("/calendars/{token}", routes.GetCalendar).Methods(http.MethodGet)
	api.HandleFunc("/calendars/{token}/months/{year:[0-9]{4}}/{month:[0-9]{1,2}}", routes.GetMonth).Methods(http.MethodGet)
	api.HandleFunc("/calendars/{token}/days/{date}", routes.GetDaySlots).Methods(http.MethodGet)
	api.HandleFunc("/calendars/{token}/week", routes.GetWeek).Methods(http.MethodGet)

	// ============================================================
	// SESSION ROUTES
	// ============================================================

	api.HandleFunc("/sessions", routes.CreateSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", routes.GetSession).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}", routes.DeleteSession).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{sessionId}/actions", routes.ApplyAction).Methods(http.MethodPost)

	// ============================================================
	// SUBMISSION ROUTES (ограничены по IP)
	// ============================================================

	submit := api.PathPrefix("").Subrouter()
	if opts.SubmitLimiter != nil {
		submit.Use(opts.SubmitLimiter.Middleware)
	}
	submit.HandleFunc("/calendars/{token}/bookings", routes.SubmitBooking).Methods(http.MethodPost)
	submit.HandleFunc("/sessions/{sessionId}/submit", routes.SubmitSession).Methods(http.MethodPost)

	return r
}
