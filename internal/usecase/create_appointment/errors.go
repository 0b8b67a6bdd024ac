package create_appointment

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда мастер не найден или уволен
	ErrEmployeeNotFound = errors.New("create_appointment: employee not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или снята с продажи
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrInvalidServiceDuration возвращается, когда услуга в каталоге имеет
	// неположительную длительность
	ErrInvalidServiceDuration = errors.New("create_appointment: service has invalid duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
