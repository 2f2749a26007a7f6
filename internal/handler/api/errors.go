package api

import (
	"net/http"

	"petsitter-booking/internal/domain/appointment"
	"petsitter-booking/internal/domain/draft"
	"petsitter-booking/internal/domain/pricing"
	"petsitter-booking/internal/domain/view"
	"petsitter-booking/internal/handler/httperr"
	"petsitter-booking/internal/pkg/errs"
)

var pricingErrRules = []httperr.Rule{
	{Target: pricing.ErrUnknownServiceType, Status: http.StatusBadRequest, Message: "Unknown service type"},
}

var sessionErrRules = []httperr.Rule{
	{Target: errs.ErrSessionNotFound, Status: http.StatusNotFound, Message: "Session not found"},
	{Target: errs.ErrInvalidInput, Status: http.StatusBadRequest, Message: "Invalid request"},
	{Target: pricing.ErrUnknownServiceType, Status: http.StatusBadRequest, Message: "Unknown service type"},
	{Target: appointment.ErrInvalidTimeCategory, Status: http.StatusBadRequest, Message: "Invalid time category"},
	{Target: draft.ErrTimeSlotService, Status: http.StatusBadRequest, Message: "Selected service is booked by the full day"},
	{Target: draft.ErrFullDayService, Status: http.StatusBadRequest, Message: "Selected service is booked by time slot"},
	{Target: view.ErrInvalidTab, Status: http.StatusBadRequest, Message: "Invalid tab"},
	{Target: view.ErrInvalidState, Status: http.StatusConflict, Message: "Session is not on the booking form"},
}

var adminErrRules = []httperr.Rule{
	{Target: errs.ErrRequestNotFound, Status: http.StatusNotFound, Message: "Request not found"},
	{Target: errs.ErrSlotNotFound, Status: http.StatusNotFound, Message: "Slot not found"},
	{Target: appointment.ErrInvalidStatus, Status: http.StatusBadRequest, Message: "Invalid status"},
}
