package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/maxdeal/storefront/internal/chat"
)

type sessionResponse struct {
	ID       string         `json:"id"`
	Language chat.Language  `json:"language"`
	Messages []chat.Message `json:"messages"`
}

func sessionJSON(s *chat.Session) sessionResponse {
	return sessionResponse{
		ID:       s.ID,
		Language: s.Language,
		Messages: s.Messages(),
	}
}

// HandleChatSessions opens a new persona-bound chat session
func (h *Handler) HandleChatSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Language string `json:"language"`
	}
	if r.Body != nil {
		// An empty or absent body selects English.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	session, err := h.chatManager.Open(r.Context(), chat.ParseLanguage(req.Language))
	if err != nil {
		h.writeError(w, "Failed to open chat session: "+err.Error(), http.StatusBadGateway)
		return
	}

	h.sessionStore.Set(session.ID, session)
	h.writeJSON(w, sessionJSON(session))
}

// HandleChatSessionDetail serves the transcript, accepts new turns, and
// tears sessions down
func (h *Handler) HandleChatSessionDetail(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/chat/sessions/")

	if id, ok := strings.CutSuffix(rest, "/messages"); ok {
		h.handleChatMessage(w, r, id)
		return
	}

	session, ok := h.getSessionOrError(w, rest)
	if !ok {
		return
	}

	switch r.Method {
	case "GET":
		h.writeJSON(w, sessionJSON(session))
	case "DELETE":
		if err := session.Close(); err != nil {
			h.writeError(w, "Failed to close session: "+err.Error(), http.StatusInternalServerError)
			return
		}
		h.sessionStore.Delete(session.ID)
		w.WriteHeader(http.StatusNoContent)
	default:
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleChatMessage(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != "POST" {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, ok := h.getSessionOrError(w, sessionID)
	if !ok {
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	// Empty input and concurrent sends are silent no-ops inside Send;
	// either way the caller gets the current transcript back.
	session.Send(r.Context(), req.Text)

	h.writeJSON(w, sessionJSON(session))
}
