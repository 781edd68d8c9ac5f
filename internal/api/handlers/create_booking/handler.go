package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/VisitBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/VisitBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "запрос не прошел валидацию"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSlotFull           = "выбранный слот полностью занят"
	msgWeeklyLimit        = "на этой неделе уже есть бронирование"
	msgDailyLimit         = "дневной лимит бронирований исчерпан"
)

// Коды причин отказа допуска для машинной обработки клиентом
const (
	codeSlotFull    = "SLOT_FULL"
	codeWeeklyLimit = "WEEKLY_LIMIT_EXCEEDED"
	codeDailyLimit  = "DAILY_LIMIT_REACHED"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date %q: %v", req.Date, err)
		handlers.RespondValidationErrors(w, msgValidationFailed, []handlers.FieldError{
			{Field: "date", Message: msgInvalidDate},
		})
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var vErr *createBooking.ValidationError

		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /bookings - Validation failed: phone=%s, violations=%d", req.Phone, len(vErr.Violations))
			handlers.RespondValidationErrors(w, msgValidationFailed, toFieldErrors(vErr))

		case errors.Is(err, createBooking.ErrSlotFull):
			h.logger.Warn("POST /bookings - Slot full: date=%s, slot=%s", req.Date, req.TimeSlot)
			handlers.RespondErrorCode(w, http.StatusConflict, codeSlotFull, msgSlotFull)

		case errors.Is(err, createBooking.ErrWeeklyLimitExceeded):
			h.logger.Warn("POST /bookings - Weekly limit exceeded: phone=%s, date=%s", req.Phone, req.Date)
			handlers.RespondErrorCode(w, http.StatusConflict, codeWeeklyLimit, msgWeeklyLimit)

		case errors.Is(err, createBooking.ErrDailyLimitReached):
			h.logger.Warn("POST /bookings - Daily limit reached: date=%s", req.Date)
			handlers.RespondErrorCode(w, http.StatusConflict, codeDailyLimit, msgDailyLimit)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: phone=%s, error=%v", req.Phone, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, date=%s, slot=%s",
		result.ID, req.Date, req.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// toFieldErrors конвертирует нарушения валидации в формат ответа API
func toFieldErrors(vErr *createBooking.ValidationError) []handlers.FieldError {
	fields := make([]handlers.FieldError, len(vErr.Violations))
	for i, v := range vErr.Violations {
		fields[i] = handlers.FieldError{Field: v.Field, Message: v.Message}
	}
	return fields
}
