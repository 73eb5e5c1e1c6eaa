package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-PublicBooker/internal/booker"
	"github.com/m04kA/SMC-PublicBooker/internal/service/sessions/models"
	"github.com/m04kA/SMC-PublicBooker/internal/usecase/get_day_slots"
	"github.com/m04kA/SMC-PublicBooker/internal/usecase/get_month"
	"github.com/m04kA/SMC-PublicBooker/internal/usecase/get_week_slots"
)

type monthFetch struct {
	ticket booker.Ticket
	ref    booker.MonthRef
	grid   bool // статусы месяца для выбора даты в сетке
}

type dayFetch struct {
	ticket booker.Ticket
	date   time.Time
}

type weekFetch struct {
	ticket booker.Ticket
	start  time.Time
	days   int
}

// fetchPlan загрузки, нужные текущему состоянию сессии
type fetchPlan struct {
	month *monthFetch
	day   *dayFetch
	week  *weekFetch
}

func (p fetchPlan) empty() bool {
	return p.month == nil && p.day == nil && p.week == nil
}

// plan определяет загрузки и выдает им билеты
// Вызывается под sess.mu
func (s *Service) plan(sess *session) fetchPlan {
	var p fetchPlan
	state := sess.state

	if !state.Layout.IsGrid() {
		if ref := loadedMonth(sess); ref != state.Month {
			p.month = &monthFetch{ticket: sess.seq.Next(booker.ChannelMonth), ref: state.Month}
		}

		if state.Mode.IsTimeSlots() {
			if date := state.SelectedDate(); date != nil && (sess.day == nil || !sameDate(sess.day.Date, *date)) {
				p.day = &dayFetch{ticket: sess.seq.Next(booker.ChannelDay), date: *date}
			}
		}
		return p
	}

	days := s.cfg.WeekDays
	if len(sess.week) != days || !sameDate(sess.weekStart, state.Anchor) {
		p.week = &weekFetch{ticket: sess.seq.Next(booker.ChannelWeek), start: state.Anchor, days: days}
	}
	return p
}

// loadMonthFor подгружает статусы месяца, в который попадает дата, выбранная в сетке
// Сетки показывают дни нескольких месяцев, а проверка выбора идет по загруженному месяцу
func (s *Service) loadMonthFor(ctx context.Context, sess *session, action *models.Action) error {
	if action.Type != models.ActionSelectDate {
		return nil
	}
	date, err := parseDate(action.Date)
	if err != nil {
		return nil // формат даты проверит toEvent
	}

	sess.mu.Lock()
	if !sess.state.Layout.IsGrid() || sess.submitting || sess.state.IsConfirmed() {
		sess.mu.Unlock()
		return nil
	}
	if _, ok := sess.month.Day(date); ok {
		sess.mu.Unlock()
		return nil
	}
	p := fetchPlan{month: &monthFetch{
		ticket: sess.seq.Next(booker.ChannelMonth),
		ref:    booker.MonthRef{Year: date.Year(), Month: date.Month()},
		grid:   true,
	}}
	sess.mu.Unlock()

	return s.runFetches(ctx, sess, p)
}

// runFetches выполняет загрузки без блокировки сессии и применяет актуальные ответы
func (s *Service) runFetches(ctx context.Context, sess *session, p fetchPlan) error {
	if p.empty() {
		return nil
	}

	var g errgroup.Group

	if p.month != nil {
		f := p.month
		g.Go(func() error {
			resp, err := s.months.Execute(ctx, &get_month.Request{Token: sess.token, Year: f.ref.Year, Month: int(f.ref.Month)})
			if err != nil {
				return fetchError("month", err)
			}
			s.applyIfCurrent(sess, f.ticket, func() bool {
				if f.grid != sess.state.Layout.IsGrid() || (!f.grid && sess.state.Month != f.ref) {
					return false
				}
				sess.month = resp.Month
				sess.monthDegraded = resp.Degraded
				return true
			})
			return nil
		})
	}

	if p.day != nil {
		f := p.day
		g.Go(func() error {
			resp, err := s.days.Execute(ctx, &get_day_slots.Request{Token: sess.token, Date: f.date})
			if err != nil {
				return fetchError("day", err)
			}
			s.applyIfCurrent(sess, f.ticket, func() bool {
				date := sess.state.SelectedDate()
				if date == nil || !sameDate(*date, f.date) {
					return false
				}
				day := resp.Day
				sess.day = &day
				return true
			})
			return nil
		})
	}

	if p.week != nil {
		f := p.week
		g.Go(func() error {
			resp, err := s.weeks.Execute(ctx, &get_week_slots.Request{Token: sess.token, Start: f.start, Days: f.days})
			if err != nil {
				return fetchError("week", err)
			}
			s.applyIfCurrent(sess, f.ticket, func() bool {
				if !sess.state.Layout.IsGrid() || !sameDate(sess.state.Anchor, f.start) {
					return false
				}
				sess.week = resp.Days
				sess.weekStart = f.start
				return true
			})
			return nil
		})
	}

	return g.Wait()
}

// applyIfCurrent применяет ответ, если его билет последний в канале и состояние все еще ждет эти данные
func (s *Service) applyIfCurrent(sess *session, ticket booker.Ticket, apply func() bool) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.seq.IsCurrent(ticket) && apply() {
		return
	}

	s.logger.Info("Sessions: session=%s discarded stale %s response seq=%d", sess.id, ticket.Channel, ticket.Seq)
	if s.metrics != nil {
		s.metrics.IncStaleResponse(string(ticket.Channel))
	}
}

func loadedMonth(sess *session) booker.MonthRef {
	return booker.MonthRef{Year: sess.month.Year, Month: sess.month.Month}
}

func fetchError(kind string, err error) error {
	if errors.Is(err, get_month.ErrCalendarNotFound) ||
		errors.Is(err, get_day_slots.ErrCalendarNotFound) ||
		errors.Is(err, get_week_slots.ErrCalendarNotFound) {
		return ErrCalendarNotFound
	}
	return fmt.Errorf("%w: failed to load %s: %v", ErrInternal, kind, err)
}
