package storage

import (
	"sync"

	"github.com/maxdeal/storefront/internal/assets"
	"github.com/maxdeal/storefront/internal/chat"
)

// SessionStore holds open chat sessions keyed by session ID
type SessionStore struct {
	sessions map[string]*chat.Session
	mu       sync.RWMutex
}

// NewSessionStore creates an empty chat session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*chat.Session),
	}
}

func (s *SessionStore) Get(sessionID string) (*chat.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, exists := s.sessions[sessionID]
	return session, exists
}

func (s *SessionStore) Set(sessionID string, session *chat.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = session
}

func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// AssetStore holds published snapshots of asset records, in scan order.
// The pipeline publishes a fresh clone after every transition so readers
// never observe a record mid-mutation.
type AssetStore struct {
	mu      sync.RWMutex
	order   []string
	records map[string]*assets.Record
}

// NewAssetStore creates an empty asset snapshot store
func NewAssetStore() *AssetStore {
	return &AssetStore{
		records: make(map[string]*assets.Record),
	}
}

// Publish stores a snapshot of the record, appending to the scan order
// on first sight of its ID
func (s *AssetStore) Publish(rec *assets.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, seen := s.records[rec.ID]; !seen {
		s.order = append(s.order, rec.ID)
	}
	s.records[rec.ID] = rec.Clone()
}

// Reset replaces the store contents with snapshots of the given records
func (s *AssetStore) Reset(recs []*assets.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = s.order[:0]
	s.records = make(map[string]*assets.Record, len(recs))
	for _, rec := range recs {
		s.order = append(s.order, rec.ID)
		s.records[rec.ID] = rec.Clone()
	}
}

// Get returns a snapshot of one record
func (s *AssetStore) Get(id string) (*assets.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, false
	}
	return rec.Clone(), true
}

// All returns snapshots of every record in scan order
func (s *AssetStore) All() []*assets.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*assets.Record, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id].Clone())
	}
	return out
}
