package publiccalendar

import "time"

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics учет запросов к API
type Metrics interface {
	ObserveUpstreamRequest(operation string, status int, duration time.Duration)
}
