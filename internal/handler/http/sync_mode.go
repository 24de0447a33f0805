package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/snapback/internal/logger"
	"github.com/MKhiriev/snapback/internal/utils"
	"github.com/MKhiriev/snapback/models"
)

// computeSyncMode serves POST /api/sync-mode for a pair whose observations
// the caller already collected.
func (h *Handler) computeSyncMode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SyncModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.computeSyncMode").Msg("Invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	if req.Legacy {
		mode := h.services.SyncModeService.ComputeLegacySyncMode(req.PrimaryClock, req.SecondaryClock)
		utils.WriteJSON(w, models.SyncModeResponse{SyncMode: mode}, http.StatusOK)
		return
	}

	mode, err := h.services.SyncModeService.ComputeSyncMode(ctx, req.Input())
	if err != nil {
		log.Err(err).Str("func", "*Handler.computeSyncMode").Str("wallet", req.Wallet).Msg("error computing sync mode")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.SyncModeResponse{SyncMode: mode}, http.StatusOK)
}

// computeReplicaSyncMode serves POST /api/sync-mode/replica. This node is the
// primary of the pair.
func (h *Handler) computeReplicaSyncMode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ReplicaSyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.computeReplicaSyncMode").Msg("Invalid JSON was passed")
		http.Error(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.services.ReplicaSyncService.ComputeSyncModeForReplica(ctx, req.Wallet, req.Secondary)
	if err != nil {
		log.Err(err).Str("func", "*Handler.computeReplicaSyncMode").
			Str("wallet", req.Wallet).
			Str("secondary", req.Secondary).
			Msg("error computing sync mode for replica")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
