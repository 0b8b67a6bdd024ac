package domain

// Default scheduling values
const (
	DefaultSlotGranularityMinutes = 30
	DefaultLeadTimeMinutes        = 0

	DefaultWorkDayStart = "09:00"
	DefaultWorkDayEnd   = "17:00"
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MinSlotGranularityMinutes = 5
	MaxSlotGranularityMinutes = 120
	MaxLeadTimeMinutes        = 10080 // 1 week
	MaxCommentLength          = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, при которых запись не занимает время мастера
// Используется при подсчёте занятых интервалов
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses список статусов активных записей
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusArrived,
	StatusCompleted,
}
