package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prakura/hrms-backend-go/internal/domain/faculty"
	"github.com/prakura/hrms-backend-go/internal/handler/http/response"
)

type FacultyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	ToggleStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type facultyHandlerImpl struct {
	facultyService faculty.FacultyService
}

func NewFacultyHandler(facultyService faculty.FacultyService) FacultyHandler {
	return &facultyHandlerImpl{facultyService: facultyService}
}

// List implements FacultyHandler.
func (h *facultyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := faculty.FacultyFilter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("q"),
	}
	faculties, err := h.facultyService.ListFaculties(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, faculties)
}

// Get implements FacultyHandler.
func (h *facultyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	f, err := h.facultyService.GetFaculty(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, f)
}

// Create implements FacultyHandler.
func (h *facultyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req faculty.CreateFacultyRequest
	if !decodeJSON(w, r, &req, "CreateFaculty") {
		return
	}

	created, err := h.facultyService.CreateFaculty(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Faculty added successfully", created)
}

// Update implements FacultyHandler.
func (h *facultyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req faculty.UpdateFacultyRequest
	if !decodeJSON(w, r, &req, "UpdateFaculty") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.facultyService.UpdateFaculty(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Faculty updated successfully", updated)
}

// ToggleStatus implements FacultyHandler.
func (h *facultyHandlerImpl) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	f, err := h.facultyService.ToggleFacultyStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Faculty status changed", f)
}

// Delete implements FacultyHandler.
func (h *facultyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.facultyService.DeleteFaculty(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Faculty deleted successfully", nil)
}
