package get_available_slots

import "errors"

var (
	// ErrEmployeeNotFound возвращается, когда мастер не найден или уволен
	ErrEmployeeNotFound = errors.New("get_available_slots: employee not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или снята с продажи
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidServiceDuration возвращается, когда услуга в каталоге имеет
	// неположительную длительность - это ошибка данных, а не пустой результат
	ErrInvalidServiceDuration = errors.New("get_available_slots: service has invalid duration")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
