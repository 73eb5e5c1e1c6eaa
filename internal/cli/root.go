package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-PublicBooker/internal/config"
	"github.com/m04kA/SMC-PublicBooker/internal/integrations/publiccalendar"
	"github.com/m04kA/SMC-PublicBooker/internal/usecase/get_day_slots"
	"github.com/m04kA/SMC-PublicBooker/internal/usecase/get_month"
	"github.com/m04kA/SMC-PublicBooker/internal/usecase/get_week_slots"
	"github.com/m04kA/SMC-PublicBooker/internal/usecase/load_calendar"
	"github.com/m04kA/SMC-PublicBooker/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-PublicBooker/internal/views"
	"github.com/m04kA/SMC-PublicBooker/pkg/logger"
)

var (
	Version   = "dev"
	CommitSHA = "none"
)

// globalFlags флаги, общие для всех команд
type globalFlags struct {
	configPath string
	apiURL     string
	timeFormat string
	timezone   string
	logFile    string
}

// app зависимости команд, создаются перед выполнением команды
type app struct {
	loadCalendar  *load_calendar.UseCase
	getMonth      *get_month.UseCase
	getDaySlots   *get_day_slots.UseCase
	getWeekSlots  *get_week_slots.UseCase
	submitBooking *submit_booking.UseCase

	weekDays   int
	timeFormat views.TimeFormat
	display    *time.Location
	log        *logger.Logger
}

func newApp(flags *globalFlags) (*app, error) {
	cfg, err := config.LoadOrDefault(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.apiURL != "" {
		cfg.PublicCalendar.URL = flags.apiURL
	}

	formatName := cfg.Booker.DefaultTimeFormat
	if flags.timeFormat != "" {
		formatName = flags.timeFormat
	}
	format, err := views.ParseTimeFormat(formatName)
	if err != nil {
		return nil, fmt.Errorf("invalid --time-format: %w", err)
	}

	var display *time.Location
	if flags.timezone != "" {
		display, err = time.LoadLocation(flags.timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid --timezone: %w", err)
		}
	}

	log := logger.NewNop()
	if flags.logFile != "" {
		log, err = logger.New(flags.logFile, cfg.Logs.Level)
		if err != nil {
			return nil, err
		}
	}

	client := publiccalendar.NewClient(
		cfg.PublicCalendar.URL,
		time.Duration(cfg.PublicCalendar.Timeout)*time.Second,
		log,
		publiccalendar.WithRateLimit(cfg.PublicCalendar.RequestsPerSecond, cfg.PublicCalendar.Burst),
	)

	return &app{
		loadCalendar:  load_calendar.NewUseCase(client, log),
		getMonth:      get_month.NewUseCase(client, nil, log),
		getDaySlots:   get_day_slots.NewUseCase(client, nil, log),
		getWeekSlots:  get_week_slots.NewUseCase(client, nil, log),
		submitBooking: submit_booking.NewUseCase(client, nil, log),
		weekDays:      cfg.Booker.WeekDays,
		timeFormat:    format,
		display:       display,
		log:           log,
	}, nil
}

// NewRootCmd создает корневую команду bookerctl
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}
	var a *app

	root := &cobra.Command{
		Use:           "bookerctl",
		Short:         "Browse public calendar availability and send booking requests",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (%s)", Version, CommitSHA),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp(flags)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a != nil {
				return a.log.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "config.toml", "path to config file")
	root.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "public calendar API base URL (overrides config)")
	root.PersistentFlags().StringVar(&flags.timeFormat, "time-format", "", "time labels: 12h or 24h")
	root.PersistentFlags().StringVar(&flags.timezone, "timezone", "", "display timezone, e.g. Europe/Rome")
	root.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "write logs to file")

	deps := func() *app { return a }

	root.AddCommand(newCalendarCmd(deps))
	root.AddCommand(newMonthCmd(deps))
	root.AddCommand(newDayCmd(deps))
	root.AddCommand(newWeekCmd(deps))
	root.AddCommand(newBookCmd(deps))

	return root
}

// Execute запускает bookerctl
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
