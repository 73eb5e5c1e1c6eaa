package publiccalendar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-PublicBooker/internal/domain"
)

const maxResponseBytes = 1 << 20

// Client клиент публичного API календаря
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    Metrics
	log        Logger
}

// Option дополнительная настройка клиента
type Option func(*Client)

// WithRateLimit ограничивает исходящие запросы (rps <= 0 отключает ограничение)
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithMetrics включает учет запросов в Prometheus
func WithMetrics(m Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithHTTPClient подменяет HTTP клиент
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient создает новый экземпляр клиента публичного календаря
func NewClient(baseURL string, timeout time.Duration, log Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetCalendar получает публичный календарь и доступность текущего месяца
// Если текущий месяц отсутствует или поврежден, календарь возвращается с nil вместо месяца
func (c *Client) GetCalendar(ctx context.Context, token string) (*domain.CalendarInfo, *domain.MonthAvailability, error) {
	path := fmt.Sprintf("/calendars/%s", url.PathEscape(token))

	var envelope CalendarEnvelope
	if err := c.getJSON(ctx, "get_calendar", path, &envelope); err != nil {
		return nil, nil, err
	}

	info, err := toCalendarInfo(envelope.Calendar)
	if err != nil {
		return nil, nil, err
	}

	if envelope.CurrentMonth == nil {
		c.log.Warn("GetCalendar: calendar id=%d has no current_month", info.ID)
		return info, nil, nil
	}

	month, err := c.toMonth(*envelope.CurrentMonth)
	if err != nil {
		c.log.Warn("GetCalendar: calendar id=%d has invalid current_month: %v", info.ID, err)
		return info, nil, nil
	}

	return info, month, nil
}

// GetMonth получает доступность дней месяца
func (c *Client) GetMonth(ctx context.Context, token string, year int, month time.Month) (*domain.MonthAvailability, error) {
	path := fmt.Sprintf("/calendars/%s/months/%d/%d", url.PathEscape(token), year, int(month))

	var envelope MonthEnvelope
	if err := c.getJSON(ctx, "get_month", path, &envelope); err != nil {
		return nil, err
	}

	// Сервер может не повторять год и месяц в теле ответа
	if envelope.Month.Year == 0 {
		envelope.Month.Year = year
	}
	if envelope.Month.Month == 0 {
		envelope.Month.Month = int(month)
	}

	return c.toMonth(envelope.Month)
}

// GetDay получает временные слоты дня
func (c *Client) GetDay(ctx context.Context, token string, date time.Time) ([]domain.TimeSlot, error) {
	path := fmt.Sprintf("/calendars/%s/days/%s", url.PathEscape(token), date.Format(domain.DateFormat))

	var envelope DayEnvelope
	if err := c.getJSON(ctx, "get_day", path, &envelope); err != nil {
		return nil, err
	}

	return toTimeSlots(envelope.Slots), nil
}

// GetDayWithGracefulDegradation получает слоты дня с graceful degradation
// При недоступности API возвращает ErrServiceDegraded, вызывающая сторона показывает пустой день
func (c *Client) GetDayWithGracefulDegradation(ctx context.Context, token string, date time.Time) ([]domain.TimeSlot, error) {
	day := date.Format(domain.DateFormat)

	slots, err := c.GetDay(ctx, token, date)
	if err != nil {
		// Отсутствие календаря - терминальная ошибка, деградация не применяется
		if errors.Is(err, ErrCalendarNotFound) {
			c.log.Info("GetDay: calendar not found, date=%s", day)
			return nil, err
		}

		c.log.Error("PublicCalendar unavailable, applying graceful degradation for date=%s: %v", day, err)
		return nil, fmt.Errorf("%w: date=%s, error=%v", ErrServiceDegraded, day, err)
	}

	return slots, nil
}

// SubmitBooking отправляет заявку на бронирование
func (c *Client) SubmitBooking(ctx context.Context, token string, payload BookingPayload) (*SubmitResult, error) {
	path := fmt.Sprintf("/calendars/%s/bookings", url.PathEscape(token))

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	status, respBody, err := c.do(ctx, "submit_booking", http.MethodPost, path, body)
	if err != nil {
		return nil, err
	}

	// Обработка статус-кодов
	switch status {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		// Продолжаем обработку
	case http.StatusNotFound, http.StatusGone:
		return nil, ErrCalendarNotFound
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		return nil, &RejectedError{Status: status, Message: extractMessage(respBody)}
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, status, string(respBody))
	}

	var result SubmitResult
	if len(bytes.TrimSpace(respBody)) == 0 {
		return &result, nil
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, out interface{}) error {
	status, body, err := c.do(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	switch status {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound, http.StatusGone:
		return ErrCalendarNotFound
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, status, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// do выполняет запрос и возвращает статус и тело ответа
func (c *Client) do(ctx context.Context, op, method, path string, body []byte) (int, []byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, nil, fmt.Errorf("%w: rate limiter: %v", ErrInternal, err)
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(op, 0, time.Since(started))
		return 0, nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	c.observe(op, resp.StatusCode, time.Since(started))
	if err != nil {
		return 0, nil, fmt.Errorf("%w: failed to read response: %v", ErrInternal, err)
	}

	c.log.Debug("PublicCalendar: %s %s status=%d", method, path, resp.StatusCode)
	return resp.StatusCode, respBody, nil
}

func (c *Client) observe(op string, status int, d time.Duration) {
	if c.metrics != nil {
		c.metrics.ObserveUpstreamRequest(op, status, d)
	}
}

// extractMessage достает человекочитаемое сообщение из тела ошибки
func extractMessage(body []byte) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Error != "" {
			return errResp.Error
		}
		if errResp.Message != "" {
			return errResp.Message
		}
		for _, messages := range errResp.Errors {
			if len(messages) > 0 {
				return messages[0]
			}
		}
	}
	return "booking request was rejected"
}
