package http

import (
	"encoding/json"
	"net/http"

	"github.com/trijoshh/attendance-backend-go/internal/domain/employee"
	"github.com/trijoshh/attendance-backend-go/internal/domain/location"
	"github.com/trijoshh/attendance-backend-go/internal/handler/http/response"
	locationsvc "github.com/trijoshh/attendance-backend-go/internal/service/location"
)

type LocationHandler interface {
	Report(w http.ResponseWriter, r *http.Request)
	Acquire(w http.ResponseWriter, r *http.Request)
	Check(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	LastKnown(w http.ResponseWriter, r *http.Request)
	State(w http.ResponseWriter, r *http.Request)
}

type locationHandlerImpl struct {
	acquirer  location.Acquirer
	provider  *locationsvc.ReportedProvider
	validator location.Validator
	employees employee.Repository
}

func NewLocationHandler(acquirer location.Acquirer, provider *locationsvc.ReportedProvider, validator location.Validator, employees employee.Repository) LocationHandler {
	return &locationHandlerImpl{
		acquirer:  acquirer,
		provider:  provider,
		validator: validator,
		employees: employees,
	}
}

// Report accepts a device-reported position and feeds it to the acquisition
// pipeline.
func (h *locationHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	var fix location.Fix
	if err := json.NewDecoder(r.Body).Decode(&fix); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if fix.Latitude < -90 || fix.Latitude > 90 || fix.Longitude < -180 || fix.Longitude > 180 {
		response.BadRequest(w, "Coordinates are out of range", nil)
		return
	}

	h.provider.Publish(fix)
	response.SuccessWithMessage(w, "Position reported", nil)
}

func (h *locationHandlerImpl) Acquire(w http.ResponseWriter, r *http.Request) {
	opts := location.DefaultAcquireOptions()
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	fix, err := h.acquirer.Acquire(r.Context(), opts)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, fix)
}

type checkRequest struct {
	EmployeeID string       `json:"employee_id"`
	Fix        location.Fix `json:"fix"`
}

// Check runs the geofence validation an attempt would face, without touching
// attendance.
func (h *locationHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	emp, err := h.employees.GetByID(r.Context(), req.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	decision := h.validator.Validate(req.Fix, emp.AuthorizedLocations, location.DefaultAccuracyThreshold)
	response.Success(w, decision)
}

func (h *locationHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.acquirer.History())
}

func (h *locationHandlerImpl) LastKnown(w http.ResponseWriter, r *http.Request) {
	fix, err := h.acquirer.LastKnown(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, fix)
}

func (h *locationHandlerImpl) State(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.acquirer.State())
}
