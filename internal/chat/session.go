package chat

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Transport is the external conversational capability. The handle it
// returns maintains the session context (persona plus transcript so far)
// on the remote side.
type Transport interface {
	Open(ctx context.Context, persona string) (Conn, error)
}

// Conn is one live conversational session with the external capability
type Conn interface {
	// SendStream sends one user turn and returns the streamed response
	SendStream(ctx context.Context, text string) (Stream, error)
	Close() error
}

// Stream yields incremental response text. Next returns io.EOF once the
// stream completes.
type Stream interface {
	Next() (string, error)
}

// Session owns one persona-bound conversation: its transcript and the
// live connection. At most one send is in flight at a time.
type Session struct {
	ID       string   `json:"id"`
	Language Language `json:"language"`

	persona string
	conn    Conn

	mu       sync.Mutex
	messages []Message
	inFlight bool
}

// Manager opens persona-bound chat sessions over a transport
type Manager struct {
	transport Transport
}

// NewManager creates a chat session manager
func NewManager(transport Transport) *Manager {
	return &Manager{transport: transport}
}

// Open builds the persona for the requested language, opens a connection,
// and seeds the language-selected greeting into the transcript. The
// greeting is local only; nothing is sent to the external model here.
func (m *Manager) Open(ctx context.Context, lang Language) (*Session, error) {
	persona := BuildPersona(lang)

	conn, err := m.transport.Open(ctx, persona)
	if err != nil {
		return nil, fmt.Errorf("failed to open chat session: %w", err)
	}

	s := &Session{
		ID:       uuid.NewString(),
		Language: lang,
		persona:  persona,
		conn:     conn,
		messages: []Message{{Role: RoleAssistant, Text: Greeting(lang)}},
	}

	slog.Info("Chat session opened", "session_id", s.ID, "language", lang)
	return s, nil
}

// Messages returns a copy of the transcript in append order
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Close drops the live connection. In-flight work is abandoned, not
// awaited.
func (s *Session) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// Send delivers one user turn and streams the assistant's reply into the
// transcript. Empty input, or a call while another send is in flight, is
// a silent no-op. A stream failure surfaces as a fixed apology message;
// the session remains usable afterwards.
func (s *Session) Send(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	// The user's turn is appended before any network activity so the
	// surface reflects it instantly; an empty assistant placeholder
	// follows it and accumulates the streamed reply.
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return
	}
	s.inFlight = true
	s.messages = append(s.messages, Message{Role: RoleUser, Text: text})
	s.messages = append(s.messages, Message{Role: RoleAssistant})
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	stream, err := s.conn.SendStream(ctx, text)
	if err != nil {
		slog.Warn("Chat send failed", "session_id", s.ID, "error", err)
		s.replaceTail(Apology(s.Language))
		return
	}

	var full strings.Builder
	for {
		chunk, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Warn("Chat stream failed", "session_id", s.ID, "error", err)
			s.replaceTail(Apology(s.Language))
			return
		}
		if chunk == "" {
			continue
		}
		full.WriteString(chunk)
		s.replaceTail(full.String())
	}
}

// replaceTail overwrites the tail assistant message with the cumulative
// text so far, keeping the displayed reply prefix-consistent.
func (s *Session) replaceTail(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.messages); n > 0 && s.messages[n-1].Role == RoleAssistant {
		s.messages[n-1].Text = text
	}
}
