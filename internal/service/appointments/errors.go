package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrEmployeeNotFound возвращается, когда мастер не найден
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrCannotCancel возвращается, когда запись нельзя отменить в текущем статусе
	ErrCannotCancel = errors.New("appointment cannot be cancelled in its current status")

	// ErrAppointmentFinished возвращается при попытке изменить статус завершенной записи
	ErrAppointmentFinished = errors.New("appointment already reached a terminal status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("internal service error")
)
