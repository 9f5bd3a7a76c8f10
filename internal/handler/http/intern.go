package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prakura/hrms-backend-go/internal/domain/intern"
	"github.com/prakura/hrms-backend-go/internal/handler/http/response"
)

type InternHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type internHandlerImpl struct {
	internService intern.InternService
}

func NewInternHandler(internService intern.InternService) InternHandler {
	return &internHandlerImpl{internService: internService}
}

// List implements InternHandler.
func (h *internHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	interns, err := h.internService.ListInterns(r.Context(), intern.InternFilter{BatchID: r.URL.Query().Get("batchId")})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, interns)
}

// Get implements InternHandler.
func (h *internHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	in, err := h.internService.GetIntern(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, in)
}

// Create implements InternHandler.
func (h *internHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req intern.CreateInternRequest
	if !decodeJSON(w, r, &req, "CreateIntern") {
		return
	}

	created, err := h.internService.CreateIntern(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Intern enrolled successfully", created)
}

// Update implements InternHandler.
func (h *internHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req intern.UpdateInternRequest
	if !decodeJSON(w, r, &req, "UpdateIntern") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.internService.UpdateIntern(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Intern updated successfully", updated)
}

// Delete implements InternHandler.
func (h *internHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.internService.DeleteIntern(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Intern removed successfully", nil)
}
