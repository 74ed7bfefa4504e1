package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trijoshh/attendance-backend-go/internal/domain/worklog"
	"github.com/trijoshh/attendance-backend-go/internal/handler/http/response"
)

type WorklogHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type worklogHandlerImpl struct {
	worklogService worklog.Service
}

func NewWorklogHandler(worklogService worklog.Service) WorklogHandler {
	return &worklogHandlerImpl{
		worklogService: worklogService,
	}
}

func (h *worklogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req worklog.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.worklogService.LogWork(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work logged", resp)
}

func (h *worklogHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.worklogService.GetEntry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *worklogHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req worklog.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.worklogService.UpdateEntry(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work log entry updated", resp)
}

func (h *worklogHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.worklogService.DeleteEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Work log entry deleted", nil)
}

func (h *worklogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := worklog.Filter{
		EmployeeID: q.Get("employee_id"),
		Date:       q.Get("date"),
		DateFrom:   q.Get("date_from"),
		DateTo:     q.Get("date_to"),
		Project:    q.Get("project"),
	}
	if v := q.Get("completed"); v != "" {
		completed := v == "true"
		filter.Completed = &completed
	}

	resp, err := h.worklogService.ListEntries(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
