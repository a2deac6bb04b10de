package domain

// Значения по умолчанию
const (
	DefaultSlotStepMinutes        = 60
	DefaultDailyReservationLimit  = 2
	DefaultCancellationWindowDays = 2
	DefaultOperatingHoursID       = 1
)

// Форматы даты и времени
const (
	TimeFormat        = "15:04"      // HH:MM
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	DisplayDateFormat = "02/01/2006" // DD/MM/YYYY
)
