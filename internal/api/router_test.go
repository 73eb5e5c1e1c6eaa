package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PublicBooker/internal/api/handlers"
	applyActionHandler "github.com/m04kA/SMC-PublicBooker/internal/api/handlers/apply_action"
	createSessionHandler "github.com/m04kA/SMC-PublicBooker/internal/api/handlers/create_session"
	deleteSessionHandler "github.com/m04kA/SMC-PublicBooker/internal/api/handlers/delete_session"
	getCalendarHandler "github.com/m04kA/SMC-PublicBooker/internal/api/handlers/get_calendar"
	getDaySlotsHandler "github.com/m04kA/SMC-PublicBooker/internal/api/handlers/get_day_slots"
	getMonthHandler "github.com/m04kA/SMC-PublicBooker/internal/api/handlers/get_month"
	getSessionHandler "github.com/m04kA/SMC-PublicBooker/internal/api/handlers/get_session"
	getWeekHandler "github.com/m04kA/SMC-PublicBooker/internal/api/handlers/get_week"
	submitBookingHandler "github.com/m04kA/SMC-PublicBooker/internal/api/handlers/submit_booking"
	submitSessionHandler "github.com/m04kA/SMC-PublicBooker/internal/api/handlers/submit_session"
	"github.com/m04kA/SMC-PublicBooker/internal/api/middleware"
	"github.com/m04kA/SMC-PublicBooker/internal/integrations/publiccalendar"
	"github.com/m04kA/SMC-PublicBooker/internal/service/sessions"
	"github.com/m04kA/SMC-PublicBooker/internal/service/sessions/models"
	getDaySlotsUC "github.com/m04kA/SMC-PublicBooker/internal/usecase/get_day_slots"
	getMonthUC "github.com/m04kA/SMC-PublicBooker/internal/usecase/get_month"
	getWeekSlotsUC "github.com/m04kA/SMC-PublicBooker/internal/usecase/get_week_slots"
	loadCalendarUC "github.com/m04kA/SMC-PublicBooker/internal/usecase/load_calendar"
	submitBookingUC "github.com/m04kA/SMC-PublicBooker/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-PublicBooker/pkg/logger"
)

const calendarJSON = `{
	"calendar": {
		"id": 7,
		"name": "Studio",
		"owner": {"name": "Anna"},
		"booking_mode": "time_slots",
		"slot_duration_minutes": 60,
		"timezone": "UTC",
		"allow_range_selection": false
	},
	"current_month": {
		"year": 2024,
		"month": 6,
		"days": [
			{"date": "2024-06-03", "status": "available", "slot_count": 2},
			{"date": "2024-06-04", "status": "available", "slot_count": 2},
			{"date": "2024-06-05", "status": "booked"}
		]
	}
}`

const slotsJSON = `{"slots": [
	{"id": 10, "start_time": "09:00", "end_time": "10:00", "status": "available"},
	{"id": 11, "start_time": "10:00", "end_time": "12:00", "status": "available"},
	{"id": 12, "start_time": "13:00", "end_time": "14:00", "status": "booked"}
]}`

type upstream struct {
	mu       sync.Mutex
	payloads []publiccalendar.BookingPayload
}

func (u *upstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch {
	case !strings.HasPrefix(path, "/calendars/tok"):
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error": "Calendar not found"}`)

	case path == "/calendars/tok":
		_, _ = io.WriteString(w, calendarJSON)

	case strings.HasPrefix(path, "/calendars/tok/months/"):
		_, _ = io.WriteString(w, `{"month": {"year": 2024, "month": 7, "days": []}}`)

	case strings.HasPrefix(path, "/calendars/tok/days/"):
		_, _ = io.WriteString(w, slotsJSON)

	case path == "/calendars/tok/bookings":
		var payload publiccalendar.BookingPayload
		_ = json.NewDecoder(r.Body).Decode(&payload)

		u.mu.Lock()
		u.payloads = append(u.payloads, payload)
		u.mu.Unlock()

		if payload.Date == "2024-06-04" {
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, `{"error": "Time slot is already booked"}`)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"message": "Booking request submitted", "booking": {"id": 501, "status": "pending"}}`)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestRouter(t *testing.T, limiter *middleware.RateLimiter) (http.Handler, *upstream) {
	t.Helper()

	up := &upstream{}
	srv := httptest.NewServer(up)
	t.Cleanup(srv.Close)

	log := logger.NewNop()
	client := publiccalendar.NewClient(srv.URL, 2*time.Second, log)

	loadCalendar := loadCalendarUC.NewUseCase(client, log)
	getMonth := getMonthUC.NewUseCase(client, nil, log)
	getDaySlots := getDaySlotsUC.NewUseCase(client, nil, log)
	getWeekSlots := getWeekSlotsUC.NewUseCase(client, nil, log)
	submitBooking := submitBookingUC.NewUseCase(client, nil, log)

	svc := sessions.NewService(loadCalendar, getMonth, getDaySlots, getWeekSlots, submitBooking, nil, log, sessions.Config{})

	router := NewRouter(Routes{
		GetCalendar:   getCalendarHandler.NewHandler(loadCalendar, log).Handle,
		GetMonth:      getMonthHandler.NewHandler(getMonth, log).Handle,
		GetDaySlots:   getDaySlotsHandler.NewHandler(getDaySlots, log).Handle,
		GetWeek:       getWeekHandler.NewHandler(getWeekSlots, 7, log).Handle,
		SubmitBooking: submitBookingHandler.NewHandler(submitBooking, log).Handle,
		CreateSession: createSessionHandler.NewHandler(svc, log).Handle,
		GetSession:    getSessionHandler.NewHandler(svc, log).Handle,
		ApplyAction:   applyActionHandler.NewHandler(svc, log).Handle,
		SubmitSession: submitSessionHandler.NewHandler(svc, log).Handle,
		DeleteSession: deleteSessionHandler.NewHandler(svc, log).Handle,
	}, Options{SubmitLimiter: limiter})

	return router, up
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "203.0.113.7:5000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func TestRouter_GetCalendar(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := do(t, router, http.MethodGet, "/api/v1/calendars/tok", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body getCalendarHandler.CalendarResponse
	decode(t, rec, &body)
	assert.Equal(t, "Studio", body.Calendar.Name)
	assert.Equal(t, "time_slots", body.Calendar.BookingMode)
	assert.Equal(t, "June 2024", body.Month.Title)
	// 1 июня 2024 - суббота
	assert.Len(t, body.Month.Cells, 30+6)

	rec = do(t, router, http.MethodGet, "/api/v1/calendars/gone", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var errBody handlers.ErrorResponse
	decode(t, rec, &errBody)
	assert.Equal(t, http.StatusNotFound, errBody.Code)
	assert.NotEmpty(t, errBody.Message)

	rec = do(t, router, http.MethodGet, "/api/v1/calendars/bad%20token", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_StatelessViews(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := do(t, router, http.MethodGet, "/api/v1/calendars/tok/months/2024/7", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"July 2024"`)

	rec = do(t, router, http.MethodGet, "/api/v1/calendars/tok/months/2024/13", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/calendars/tok/days/2024-06-03?timeFormat=12h", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var slots struct {
		Slots []struct {
			Label string `json:"label"`
		} `json:"slots"`
	}
	decode(t, rec, &slots)
	require.Len(t, slots.Slots, 2)
	assert.Equal(t, "9:00am", slots.Slots[0].Label)

	rec = do(t, router, http.MethodGet, "/api/v1/calendars/tok/days/03-06-2024", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/calendars/tok/week?start=2024-06-03&layout=column", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var grid getWeekHandler.GridResponse
	decode(t, rec, &grid)
	require.NotNil(t, grid.Columns)
	assert.Nil(t, grid.Week)
	assert.Len(t, grid.Columns.Columns, 7)
	assert.Equal(t, "Jun 3 - 9, 2024", grid.Columns.Header)

	rec = do(t, router, http.MethodGet, "/api/v1/calendars/tok/week?start=2024-06-03", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	grid = getWeekHandler.GridResponse{}
	decode(t, rec, &grid)
	require.NotNil(t, grid.Week)
	assert.Len(t, grid.Week.Days, 7)
	assert.Equal(t, "Jun 3 - 9, 2024", grid.Week.Header)

	rec = do(t, router, http.MethodGet, "/api/v1/calendars/tok/week?layout=month", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_SubmitBooking(t *testing.T) {
	router, up := newTestRouter(t, nil)

	rec := do(t, router, http.MethodPost, "/api/v1/calendars/tok/bookings", map[string]interface{}{
		"date":      "2024-06-03",
		"slotId":    10,
		"startTime": "09:00",
		"endTime":   "10:00",
		"name":      "Ann",
		"email":     "ann@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body submitBookingHandler.SubmitBookingResponse
	decode(t, rec, &body)
	assert.Equal(t, "Monday, June 3, 2024 at 09:00 - 10:00", body.Summary)
	require.NotNil(t, body.BookingID)
	assert.Equal(t, int64(501), *body.BookingID)

	require.Len(t, up.payloads, 1)
	assert.Equal(t, int64(10), *up.payloads[0].TimeSlotID)
	assert.Empty(t, up.payloads[0].RequestedDate)

	rec = do(t, router, http.MethodPost, "/api/v1/calendars/tok/bookings", map[string]interface{}{
		"date":      "2024-06-04",
		"startTime": "09:00",
		"endTime":   "10:00",
		"name":      "Ann",
		"email":     "ann@example.com",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Time slot is already booked")

	rec = do(t, router, http.MethodPost, "/api/v1/calendars/tok/bookings", map[string]interface{}{
		"date":  "2024-06-03",
		"name":  "Ann",
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, up.payloads, 2)
}

func TestRouter_SessionFlow(t *testing.T) {
	router, up := newTestRouter(t, nil)

	rec := do(t, router, http.MethodPost, "/api/v1/sessions", models.CreateSessionRequest{Token: "tok"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var session models.SessionResponse
	decode(t, rec, &session)
	require.NotEmpty(t, session.ID)
	base := "/api/v1/sessions/" + session.ID

	rec = do(t, router, http.MethodPost, base+"/actions", models.Action{Type: models.ActionSelectDate, Date: "2024-06-05"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, router, http.MethodPost, base+"/actions", models.Action{Type: models.ActionSelectDate, Date: "2024-06-03"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	session = models.SessionResponse{}
	decode(t, rec, &session)
	require.NotNil(t, session.Slots)
	assert.Len(t, session.Slots.Slots, 2)

	rec = do(t, router, http.MethodPost, base+"/actions", models.Action{Type: models.ActionSelectSlot, StartTime: "10:00"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, router, http.MethodPost, base+"/submit", models.ContactRequest{Name: "Ann", Email: "ann@example.com"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	session = models.SessionResponse{}
	decode(t, rec, &session)
	require.NotNil(t, session.Submission)
	assert.Equal(t, "Monday, June 3, 2024 at 10:00 - 12:00", session.Submission.Summary)
	require.Len(t, up.payloads, 1)
	assert.Equal(t, "10:00", up.payloads[0].StartTime)

	rec = do(t, router, http.MethodPost, base+"/actions", models.Action{Type: models.ActionCancel})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/v1/sessions", map[string]string{"token": "tok", "unknown": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_SubmitRateLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(1, 1, logger.NewNop())
	router, _ := newTestRouter(t, limiter)

	body := map[string]interface{}{"date": "2024-06-03", "name": "Ann", "email": "ann@example.com"}

	rec := do(t, router, http.MethodPost, "/api/v1/calendars/tok/bookings", body)
	assert.NotEqual(t, http.StatusTooManyRequests, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/v1/calendars/tok/bookings", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Просмотр не ограничивается
	rec = do(t, router, http.MethodGet, "/api/v1/calendars/tok", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
