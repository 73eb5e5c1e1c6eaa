package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-PublicBooker/internal/booker"
	"github.com/m04kA/SMC-PublicBooker/internal/domain"
	"github.com/m04kA/SMC-PublicBooker/internal/usecase/get_day_slots"
	"github.com/m04kA/SMC-PublicBooker/internal/usecase/get_month"
	"github.com/m04kA/SMC-PublicBooker/internal/usecase/get_week_slots"
	"github.com/m04kA/SMC-PublicBooker/internal/usecase/load_calendar"
	"github.com/m04kA/SMC-PublicBooker/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-PublicBooker/internal/views"
	"github.com/m04kA/SMC-PublicBooker/pkg/types"
)

// labeler строит подписи времени; часовой пояс владельца нужен только при сдвиге в --timezone
func (a *app) labeler(ctx context.Context, token string) (views.Labeler, error) {
	labels := views.Labeler{Format: a.timeFormat}
	if a.display == nil {
		return labels, nil
	}

	loaded, err := a.loadCalendar.Execute(ctx, &load_calendar.Request{Token: token})
	if err != nil {
		return labels, err
	}
	labels.Owner = loaded.Calendar.Location()
	labels.Display = a.display
	return labels, nil
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func newCalendarCmd(deps func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar <token>",
		Short: "Show calendar details and the current month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := deps().loadCalendar.Execute(cmd.Context(), &load_calendar.Request{Token: args[0]})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderCalendar(out, views.BuildCalendar(resp.Calendar))
			fmt.Fprintln(out)
			month := views.BuildMonth(resp.Month, today(), views.DateSelection{})
			month.Degraded = resp.Degraded
			renderMonth(out, month)
			return nil
		},
	}
}

func newMonthCmd(deps func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "month <token> <year> <month>",
		Short: "Show availability for a month",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid year %q", args[1])
			}
			month, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid month %q", args[2])
			}

			resp, err := deps().getMonth.Execute(cmd.Context(), &get_month.Request{Token: args[0], Year: year, Month: month})
			if err != nil {
				return err
			}

			view := views.BuildMonth(resp.Month, today(), views.DateSelection{})
			view.Degraded = resp.Degraded
			renderMonth(cmd.OutOrStdout(), view)
			return nil
		},
	}
}

func newDayCmd(deps func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "day <token> <date>",
		Short: "List available time slots for a date (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := deps()
			date, err := time.Parse(domain.DateFormat, args[1])
			if err != nil {
				return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", args[1])
			}

			labels, err := a.labeler(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			resp, err := a.getDaySlots.Execute(cmd.Context(), &get_day_slots.Request{Token: args[0], Date: date})
			if err != nil {
				return err
			}

			renderSlots(cmd.OutOrStdout(), views.BuildSlotList(resp.Day, labels, nil))
			return nil
		},
	}
}

func newWeekCmd(deps func() *app) *cobra.Command {
	var (
		start  string
		layout string
	)

	c := &cobra.Command{
		Use:   "week <token>",
		Short: "Show the week or column grid starting at a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := deps()

			from := today()
			if start != "" {
				parsed, err := time.Parse(domain.DateFormat, start)
				if err != nil {
					return fmt.Errorf("invalid --start (want YYYY-MM-DD)")
				}
				from = parsed
			}

			grid, err := booker.ParseLayout(layout)
			if err != nil || !grid.IsGrid() {
				return fmt.Errorf("invalid --layout %q (want week or column)", layout)
			}

			days := a.weekDays
			labels, err := a.labeler(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			resp, err := a.getWeekSlots.Execute(cmd.Context(), &get_week_slots.Request{Token: args[0], Start: from, Days: days})
			if err != nil {
				return err
			}

			opts := views.GridOptions{Labels: labels, Today: today()}
			if grid == booker.LayoutColumn {
				renderColumns(cmd.OutOrStdout(), views.BuildColumns(resp.Days, opts))
				return nil
			}
			renderWeek(cmd.OutOrStdout(), views.BuildWeek(resp.Days, opts))
			return nil
		},
	}

	c.Flags().StringVar(&start, "start", "", "first day of the window (YYYY-MM-DD), defaults to today")
	c.Flags().StringVar(&layout, "layout", "week", "grid layout: week or column")
	return c
}

func newBookCmd(deps func() *app) *cobra.Command {
	var (
		date      string
		endDate   string
		startTime string
		endTime   string
		slotID    int64
		name      string
		email     string
		phone     string
		message   string
	)

	c := &cobra.Command{
		Use:   "book <token>",
		Short: "Send a booking request for whole days or a time slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse(domain.DateFormat, date)
			if err != nil {
				return fmt.Errorf("invalid --date (want YYYY-MM-DD)")
			}

			booking := domain.BookingRequest{
				Mode: domain.BookingModeFullDay,
				Contact: domain.Contact{
					Name:    name,
					Email:   email,
					Phone:   optional(phone),
					Message: optional(message),
				},
				Date: start,
			}

			if endDate != "" {
				end, err := time.Parse(domain.DateFormat, endDate)
				if err != nil {
					return fmt.Errorf("invalid --end-date (want YYYY-MM-DD)")
				}
				booking.EndDate = &end
			}

			if startTime != "" {
				from, err := types.NewTimeStringFromString(startTime)
				if err != nil {
					return fmt.Errorf("invalid --start-time: %w", err)
				}
				to, err := types.NewTimeStringFromString(endTime)
				if err != nil {
					return fmt.Errorf("invalid --end-time: %w", err)
				}
				booking.Mode = domain.BookingModeTimeSlots
				booking.Slot = &domain.TimeSlot{StartTime: from, EndTime: to, Status: domain.SlotAvailable}
				if slotID > 0 {
					id := slotID
					booking.Slot.ID = &id
				}
			}

			resp, err := deps().submitBooking.Execute(cmd.Context(), &submit_booking.Request{Token: args[0], Booking: booking})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Booking request sent: %s\n", resp.Confirmation.Summary)
			if resp.BookingID != nil {
				fmt.Fprintf(out, "Request ID: %d (pending owner confirmation)\n", *resp.BookingID)
			}
			if resp.Message != "" {
				fmt.Fprintln(out, resp.Message)
			}
			return nil
		},
	}

	c.Flags().StringVar(&date, "date", "", "booking date (YYYY-MM-DD)")
	c.Flags().StringVar(&endDate, "end-date", "", "last day of a full day range (YYYY-MM-DD)")
	c.Flags().StringVar(&startTime, "start-time", "", "slot start (HH:MM), switches to time slot booking")
	c.Flags().StringVar(&endTime, "end-time", "", "slot end (HH:MM)")
	c.Flags().Int64Var(&slotID, "slot-id", 0, "time slot ID, omit for a custom hour")
	c.Flags().StringVar(&name, "name", "", "your name")
	c.Flags().StringVar(&email, "email", "", "your email")
	c.Flags().StringVar(&phone, "phone", "", "your phone")
	c.Flags().StringVar(&message, "message", "", "message for the calendar owner")
	_ = c.MarkFlagRequired("date")
	_ = c.MarkFlagRequired("name")
	_ = c.MarkFlagRequired("email")
	return c
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
