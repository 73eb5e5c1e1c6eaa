package load_calendar

import "github.com/m04kA/SMC-PublicBooker/internal/domain"

// Request модель запроса на загрузку календаря
type Request struct {
	Token string // Публичный токен ссылки на календарь
}

// Response модель ответа
type Response struct {
	Calendar *domain.CalendarInfo
	Month    domain.MonthAvailability // Текущий месяц (нормализованный)
	Degraded bool                     // Текущий месяц не получен и показан полностью недоступным
}
