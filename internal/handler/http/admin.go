package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prakura/hrms-backend-go/internal/handler/http/response"
	"github.com/prakura/hrms-backend-go/internal/repository/snapshot"
)

// SnapshotStore is the part of the snapshot database the admin routes use.
type SnapshotStore interface {
	Load(ctx context.Context) (snapshot.Snapshot, error)
	Reset(ctx context.Context) (snapshot.Snapshot, error)
}

type AdminHandler interface {
	ExportSnapshot(w http.ResponseWriter, r *http.Request)
	ResetSnapshot(w http.ResponseWriter, r *http.Request)
}

type adminHandlerImpl struct {
	store SnapshotStore
}

func NewAdminHandler(store SnapshotStore) AdminHandler {
	return &adminHandlerImpl{store: store}
}

// ExportSnapshot implements AdminHandler.
func (h *adminHandlerImpl) ExportSnapshot(w http.ResponseWriter, r *http.Request) {
	s, err := h.store.Load(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, s)
}

// ResetSnapshot implements AdminHandler. The stored snapshot is replaced by
// the seed data.
func (h *adminHandlerImpl) ResetSnapshot(w http.ResponseWriter, r *http.Request) {
	s, err := h.store.Reset(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	slog.Warn("Snapshot reset to seed data", "user_id", claimString(r, "user_id"))
	response.SuccessWithMessage(w, "Data reset to demo seed", s)
}
