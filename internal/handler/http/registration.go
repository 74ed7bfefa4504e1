package http

import (
	"encoding/json"
	"net/http"

	"github.com/trijoshh/attendance-backend-go/internal/domain/employee"
	"github.com/trijoshh/attendance-backend-go/internal/domain/registration"
	"github.com/trijoshh/attendance-backend-go/internal/handler/http/response"
)

type RegistrationHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
}

type registrationHandlerImpl struct {
	registrationService registration.Service
}

func NewRegistrationHandler(registrationService registration.Service) RegistrationHandler {
	return &registrationHandlerImpl{
		registrationService: registrationService,
	}
}

func (h *registrationHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.registrationService.Start(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Verification code sent", resp)
}

func (h *registrationHandlerImpl) Verify(w http.ResponseWriter, r *http.Request) {
	var req registration.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.registrationService.Verify(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Registration verified", resp)
}
