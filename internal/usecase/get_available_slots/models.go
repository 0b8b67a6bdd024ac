package get_available_slots

import (
	"time"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	EmployeeID int64     // ID мастера
	ServiceID  int64     // ID услуги (определяет длительность слота)
	Date       time.Time // Дата (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	EmployeeID      int64              // ID мастера
	ServiceID       int64              // ID услуги
	Date            time.Time          // Дата
	DurationMinutes int                // Длительность услуги в минутах
	Slots           []types.TimeString // Времена начала доступных слотов по возрастанию
}
