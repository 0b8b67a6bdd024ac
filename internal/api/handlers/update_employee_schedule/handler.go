package update_employee_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	"github.com/m04kA/Salon-BookingService/internal/service/schedules"
	"github.com/m04kA/Salon-BookingService/internal/service/schedules/models"
)

const (
	msgInvalidEmployeeID  = "некорректный ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmployeeNotFound   = "мастер не найден"
	msgInvalidSchedule    = "некорректное расписание"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/employees/{employeeId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	employeeIDStr := vars["employeeId"]

	employeeID, err := strconv.ParseInt(employeeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /employees/{id}/schedule - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /employees/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /employees/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.UpdateScheduleRequest{
		UserID: userID,
		Days:   req.Days,
	}

	schedule, err := h.service.Update(r.Context(), employeeID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrEmployeeNotFound):
			h.logger.Warn("PUT /employees/{id}/schedule - Employee not found: employee_id=%d", employeeID)
			handlers.RespondNotFound(w, msgEmployeeNotFound)

		case errors.Is(err, schedules.ErrInvalidInput), errors.Is(err, schedules.ErrInvalidSchedule):
			h.logger.Warn("PUT /employees/{id}/schedule - Invalid schedule: employee_id=%d, error=%v", employeeID, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /employees/{id}/schedule - Failed to update schedule: employee_id=%d, error=%v",
				employeeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /employees/{id}/schedule - Schedule updated: employee_id=%d, user_id=%d", employeeID, userID)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
