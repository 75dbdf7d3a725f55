package handlers

import (
	"errors"
	"net/http"

	"github.com/wonny/euroquote/internal/snapshot"
	"github.com/wonny/euroquote/pkg/logger"
)

// SnapshotHandler serves quotes previously stored by the watcher
type SnapshotHandler struct {
	store  snapshot.Store
	logger *logger.Logger
}

// NewSnapshotHandler creates a new snapshot handler
func NewSnapshotHandler(store snapshot.Store, log *logger.Logger) *SnapshotHandler {
	return &SnapshotHandler{
		store:  store,
		logger: log,
	}
}

// GetLatest returns the most recent snapshot for an instrument
// GET /api/snapshots/{isin}/{market}?kind=detailed|full
func (h *SnapshotHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	ref, ok := instrumentFromPath(w, r)
	if !ok {
		return
	}

	kind, err := snapshot.ParseKind(r.URL.Query().Get("kind"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := h.store.Latest(r.Context(), ref, kind)
	if errors.Is(err, snapshot.ErrNotFound) {
		respondError(w, http.StatusNotFound, "no snapshot for "+ref.String())
		return
	}
	if err != nil {
		h.logger.WithError(err).WithFields(map[string]interface{}{
			"instrument": ref.String(),
			"kind":       string(kind),
		}).Error("Failed to load snapshot")
		respondError(w, http.StatusInternalServerError, "Failed to retrieve snapshot")
		return
	}

	respondJSON(w, http.StatusOK, snap)
}
