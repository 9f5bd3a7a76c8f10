package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prakura/hrms-backend-go/internal/domain/batch"
	"github.com/prakura/hrms-backend-go/internal/handler/http/response"
)

type BatchHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type batchHandlerImpl struct {
	batchService batch.BatchService
}

func NewBatchHandler(batchService batch.BatchService) BatchHandler {
	return &batchHandlerImpl{batchService: batchService}
}

// List implements BatchHandler.
func (h *batchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := batch.BatchFilter{
		TrainerID: r.URL.Query().Get("trainerId"),
		Status:    r.URL.Query().Get("status"),
	}
	batches, err := h.batchService.ListBatches(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, batches)
}

// Get implements BatchHandler.
func (h *batchHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.batchService.GetBatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, b)
}

// Create implements BatchHandler.
func (h *batchHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req batch.CreateBatchRequest
	if !decodeJSON(w, r, &req, "CreateBatch") {
		return
	}

	created, err := h.batchService.CreateBatch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Batch created successfully", created)
}

// Update implements BatchHandler.
func (h *batchHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req batch.UpdateBatchRequest
	if !decodeJSON(w, r, &req, "UpdateBatch") {
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.batchService.UpdateBatch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Batch updated successfully", updated)
}

// Delete implements BatchHandler.
func (h *batchHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.batchService.DeleteBatch(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Batch deleted successfully", nil)
}
