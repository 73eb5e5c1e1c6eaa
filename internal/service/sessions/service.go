package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PublicBooker/internal/booker"
	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	"github.com/m04kA/SMC-PublicBooker/internal/service/sessions/models"
	"github.com/m04kA/SMC-PublicBooker/internal/usecase/load_calendar"
	"github.com/m04kA/SMC-PublicBooker/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-PublicBooker/internal/views"
)

// Config параметры сервиса сессий
type Config struct {
	TTL               time.Duration
	CleanupInterval   time.Duration
	MaxSessions       int
	DefaultLayout     booker.Layout
	DefaultTimeFormat views.TimeFormat
	WeekDays          int
}

// Service сервис серверных сессий букера
type Service struct {
	store        *store
	loader       CalendarLoader
	months       MonthFetcher
	days         DayFetcher
	weeks        WeekFetcher
	submitter    BookingSubmitter
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
	cfg          Config
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	loader CalendarLoader,
	months MonthFetcher,
	days DayFetcher,
	weeks WeekFetcher,
	submitter BookingSubmitter,
	metrics Metrics,
	logger Logger,
	cfg Config,
) *Service {
	if cfg.DefaultLayout == "" {
		cfg.DefaultLayout = booker.LayoutMonth
	}
	if cfg.DefaultTimeFormat == "" {
		cfg.DefaultTimeFormat = views.TimeFormat24h
	}
	if cfg.WeekDays <= 0 {
		cfg.WeekDays = domain.DefaultWeekDays
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Minute
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = time.Minute
	}

	return &Service{
		store:        newStore(cfg.TTL, cfg.MaxSessions),
		loader:       loader,
		months:       months,
		days:         days,
		weeks:        weeks,
		submitter:    submitter,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		cfg:          cfg,
	}
}

// Run удаляет истекшие сессии до отмены контекста
func (s *Service) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := s.store.evictExpired(s.timeProvider.Now()); evicted > 0 {
				s.logger.Info("Sessions: evicted %d expired sessions", evicted)
			}
			s.reportActive()
		}
	}
}

// Create загружает календарь и создает сессию
func (s *Service) Create(ctx context.Context, req *models.CreateSessionRequest) (*models.SessionResponse, error) {
	s.logger.Info("CreateSession: token=%s, layout=%s", req.Token, req.Layout)

	// 1. Разбираем параметры отображения
	layout := s.cfg.DefaultLayout
	if req.Layout != "" {
		parsed, err := booker.ParseLayout(req.Layout)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		layout = parsed
	}

	timeFormat := s.cfg.DefaultTimeFormat
	if req.TimeFormat != "" {
		parsed, err := views.ParseTimeFormat(req.TimeFormat)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		timeFormat = parsed
	}

	display, err := parseTimezone(req.Timezone)
	if err != nil {
		return nil, err
	}

	// 2. Загружаем календарь
	loaded, err := s.loader.Execute(ctx, &load_calendar.Request{Token: req.Token})
	if err != nil {
		switch {
		case errors.Is(err, load_calendar.ErrCalendarNotFound):
			return nil, ErrCalendarNotFound
		case errors.Is(err, load_calendar.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			return nil, fmt.Errorf("%w: failed to load calendar: %v", ErrInternal, err)
		}
	}

	// 3. Начальное состояние: месяц берется из ответа сервера
	state := booker.New(loaded.Calendar, layout, s.today(loaded.Calendar))
	state.Month = booker.MonthRef{Year: loaded.Month.Year, Month: loaded.Month.Month}

	sess := &session{
		id:            uuid.NewString(),
		token:         req.Token,
		calendar:      loaded.Calendar,
		state:         state,
		month:         loaded.Month,
		monthDegraded: loaded.Degraded,
		timeFormat:    timeFormat,
		display:       display,
		seq:           booker.NewSequencer(),
	}

	// 4. Для сеток сразу загружаем окно дней
	sess.mu.Lock()
	plan := s.plan(sess)
	sess.mu.Unlock()
	if err := s.runFetches(ctx, sess, plan); err != nil {
		return nil, err
	}

	// 5. Сохраняем сессию
	if err := s.store.add(sess, s.timeProvider.Now()); err != nil {
		s.logger.Warn("CreateSession: %v", err)
		return nil, err
	}
	s.reportActive()

	s.logger.Info("CreateSession: created session id=%s for calendar id=%d", sess.id, sess.calendar.ID)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.render(sess), nil
}

// Get возвращает текущее представление сессии
func (s *Service) Get(_ context.Context, id string) (*models.SessionResponse, error) {
	sess, ok := s.store.get(id, s.timeProvider.Now())
	if !ok {
		return nil, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.render(sess), nil
}

// Delete удаляет сессию
func (s *Service) Delete(_ context.Context, id string) error {
	if !s.store.remove(id) {
		return ErrSessionNotFound
	}
	s.reportActive()
	s.logger.Info("DeleteSession: id=%s", id)
	return nil
}

// Apply применяет действие посетителя и подгружает нужные данные
// Ответы загрузок, устаревшие к моменту получения, отбрасываются
func (s *Service) Apply(ctx context.Context, id string, action *models.Action) (*models.SessionResponse, error) {
	sess, ok := s.store.get(id, s.timeProvider.Now())
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.logger.Info("ApplyAction: session=%s, type=%s", id, action.Type)

	// 0. Дата из сетки может лежать вне загруженного месяца
	if err := s.loadMonthFor(ctx, sess, action); err != nil {
		return nil, err
	}

	// 1. Переводим действие в событие и применяем его
	sess.mu.Lock()
	if sess.submitting {
		sess.mu.Unlock()
		return nil, ErrSubmitInProgress
	}

	event, err := s.toEvent(sess, action)
	if err != nil {
		sess.mu.Unlock()
		s.logger.Warn("ApplyAction: session=%s rejected action %s: %v", id, action.Type, err)
		return nil, err
	}

	if event != nil {
		next, err := booker.Reduce(sess.state, event)
		if err != nil {
			sess.mu.Unlock()
			s.logger.Warn("ApplyAction: session=%s reducer rejected %s: %v", id, action.Type, err)
			return nil, mapReducerError(err)
		}
		sess.state = next
	}

	// 2. Планируем загрузки под новое состояние
	plan := s.plan(sess)
	sess.mu.Unlock()

	// 3. Загружаем данные без блокировки сессии
	if err := s.runFetches(ctx, sess, plan); err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.render(sess), nil
}

// Submit отправляет бронирование из текущего выбора
// Одновременно выполняется не более одной отправки на сессию. При ошибке выбор сохраняется для повтора
func (s *Service) Submit(ctx context.Context, id string, contact *models.ContactRequest) (*models.SessionResponse, error) {
	sess, ok := s.store.get(id, s.timeProvider.Now())
	if !ok {
		return nil, ErrSessionNotFound
	}

	// 1. Проверяем состояние и собираем запрос
	sess.mu.Lock()
	if sess.state.IsConfirmed() {
		sess.mu.Unlock()
		return nil, ErrAlreadyConfirmed
	}
	if sess.submitting {
		sess.mu.Unlock()
		return nil, ErrSubmitInProgress
	}

	request, err := sess.state.Request(domain.Contact{
		Name:    contact.Name,
		Email:   contact.Email,
		Phone:   contact.Phone,
		Message: contact.Message,
	})
	if err != nil {
		sess.mu.Unlock()
		return nil, mapReducerError(err)
	}
	sess.submitting = true
	sess.mu.Unlock()

	s.logger.Info("SubmitSession: session=%s, mode=%s", id, request.Mode)

	// 2. Отправляем заявку
	result, submitErr := s.submitter.Execute(ctx, &submit_booking.Request{Token: sess.token, Booking: request})

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.submitting = false

	if submitErr != nil {
		s.logger.Warn("SubmitSession: session=%s submission failed: %v", id, submitErr)
		return nil, mapSubmitError(submitErr)
	}

	// 3. Фиксируем подтверждение
	next, err := booker.Reduce(sess.state, booker.Confirm{Summary: result.Confirmation.Summary})
	if err != nil {
		s.logger.Error("SubmitSession: session=%s cannot confirm: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	sess.state = next
	sess.submission = &models.SubmissionResponse{
		Summary:   result.Confirmation.Summary,
		BookingID: result.BookingID,
		Message:   result.Message,
	}

	s.logger.Info("SubmitSession: session=%s confirmed", id)
	return s.render(sess), nil
}

// ActiveSessions возвращает количество активных сессий
func (s *Service) ActiveSessions() int {
	return s.store.len()
}

func (s *Service) reportActive() {
	if s.metrics != nil {
		s.metrics.SetActiveSessions(s.store.len())
	}
}

// today возвращает текущую дату в часовом поясе календаря
func (s *Service) today(calendar *domain.CalendarInfo) time.Time {
	now := s.timeProvider.Now().In(calendar.Location())
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func parseTimezone(name string) (*time.Location, error) {
	if name == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, name)
	}
	return loc, nil
}

func mapSubmitError(err error) error {
	var rejected *submit_booking.RejectedError
	switch {
	case errors.As(err, &rejected):
		return &RejectedError{Message: rejected.Message}
	case errors.Is(err, submit_booking.ErrBookingRejected):
		return ErrBookingRejected
	case errors.Is(err, submit_booking.ErrCalendarNotFound):
		return ErrCalendarNotFound
	case errors.Is(err, submit_booking.ErrInvalidInput):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, submit_booking.ErrIncompleteSelection):
		return fmt.Errorf("%w: %v", ErrIncompleteSelection, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func mapReducerError(err error) error {
	switch {
	case errors.Is(err, booker.ErrConfirmed):
		return ErrAlreadyConfirmed
	case errors.Is(err, booker.ErrIncompleteRange), errors.Is(err, booker.ErrNothingToConfirm):
		return fmt.Errorf("%w: %v", ErrIncompleteSelection, err)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidAction, err)
	}
}
