package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Значения по умолчанию для представлений букера
const (
	DefaultWeekDays   = 7
	HoursPerDay       = 24
	DaysPerWeek       = 7
	WeekNavigateDays  = 7 // шаг навигации в недельной сетке
	ColumnNavigateDay = 3 // шаг навигации в колоночной сетке
)

// MaxTokenLength максимальная длина публичного токена
// Лимиты контактных полей заданы тегами validate в Contact
const MaxTokenLength = 128
