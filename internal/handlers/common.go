package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/maxdeal/storefront/internal/catalog"
	"github.com/maxdeal/storefront/internal/chat"
	"github.com/maxdeal/storefront/internal/dashboard"
	"github.com/maxdeal/storefront/internal/storage"
)

type Handler struct {
	catalog      *catalog.Catalog
	dashboard    *dashboard.Service
	chatManager  *chat.Manager
	sessionStore *storage.SessionStore
}

func New(cat *catalog.Catalog, dash *dashboard.Service, manager *chat.Manager) *Handler {
	return &Handler{
		catalog:      cat,
		dashboard:    dash,
		chatManager:  manager,
		sessionStore: storage.NewSessionStore(),
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

// Session helpers
func (h *Handler) getSessionOrError(w http.ResponseWriter, sessionID string) (*chat.Session, bool) {
	session, exists := h.sessionStore.Get(sessionID)
	if !exists {
		h.writeError(w, "Session not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}
