package list_employees

import (
	"net/http"
	"strconv"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
)

const msgInvalidFilter = "некорректные параметры фильтрации"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/employees
// Query params: includeInactive (опционально, по умолчанию false)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activeOnly := true

	if includeStr := r.URL.Query().Get("includeInactive"); includeStr != "" {
		include, err := strconv.ParseBool(includeStr)
		if err != nil {
			h.logger.Warn("GET /employees - Invalid includeInactive: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		activeOnly = !include
	}

	result, err := h.service.ListEmployees(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /employees - Failed to list employees: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /employees - Employees retrieved: count=%d", len(result.Employees))
	handlers.RespondJSON(w, http.StatusOK, result)
}
