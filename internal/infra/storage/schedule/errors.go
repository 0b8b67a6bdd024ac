package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда у мастера нет сохраненного расписания
	// Вызывающая сторона применяет расписание по умолчанию
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")

	// ErrIncompleteSchedule возвращается, когда в БД не ровно 7 дней недели
	ErrIncompleteSchedule = errors.New("schedule.repository: schedule must contain exactly 7 days")
)
