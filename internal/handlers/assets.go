package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/maxdeal/storefront/internal/dashboard"
)

type assetsResponse struct {
	Running bool        `json:"running"`
	Records interface{} `json:"records"`
}

// HandleAssets serves the dashboard record list
func (h *Handler) HandleAssets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		h.writeJSON(w, assetsResponse{
			Running: h.dashboard.Running(),
			Records: h.dashboard.Records(),
		})
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleAssetScan re-runs the catalog scan
func (h *Handler) HandleAssetScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.dashboard.Scan(h.catalog.Items); err != nil {
		if errors.Is(err, dashboard.ErrBusy) {
			h.writeError(w, err.Error(), http.StatusConflict)
			return
		}
		h.writeError(w, "Scan failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, h.dashboard.Records())
}

// HandleAssetUpgradeAll starts a batch upgrade in the background
func (h *Handler) HandleAssetUpgradeAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.dashboard.Running() {
		h.writeError(w, dashboard.ErrBusy.Error(), http.StatusConflict)
		return
	}

	// The batch outlives the request; progress is observed by polling
	// the record list and the activity log.
	go func() {
		if err := h.dashboard.UpgradeAll(context.Background()); err != nil {
			slog.Warn("Batch upgrade not started", "error", err)
		}
	}()

	w.WriteHeader(http.StatusAccepted)
	h.writeJSON(w, map[string]string{"status": "started"})
}

// HandleAssetLog serves the pipeline activity log, newest line first
func (h *Handler) HandleAssetLog(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		h.writeJSON(w, h.dashboard.LogLines())
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleAssetDetail serves one record (GET /api/assets/{id}) and single
// upgrades (POST /api/assets/{id}/upgrade)
func (h *Handler) HandleAssetDetail(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/assets/")

	if id, ok := strings.CutSuffix(rest, "/upgrade"); ok {
		if r.Method != "POST" {
			h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		rec, err := h.dashboard.Upgrade(r.Context(), id)
		switch {
		case errors.Is(err, dashboard.ErrNotFound):
			h.writeError(w, "Asset record not found", http.StatusNotFound)
		case errors.Is(err, dashboard.ErrBusy):
			h.writeError(w, err.Error(), http.StatusConflict)
		case err != nil:
			h.writeError(w, "Upgrade failed: "+err.Error(), http.StatusInternalServerError)
		default:
			h.writeJSON(w, rec)
		}
		return
	}

	if r.Method != "GET" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rec, ok := h.dashboard.Record(rest)
	if !ok {
		h.writeError(w, "Asset record not found", http.StatusNotFound)
		return
	}
	h.writeJSON(w, rec)
}
