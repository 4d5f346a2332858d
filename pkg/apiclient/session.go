package apiclient

import (
	"sync"
	"time"
)

// Session is the authenticated state a client carries between requests.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	UserID       string
	Role         string
}

// Expired reports whether the access token's lifetime has passed.
func (s Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// SessionStore abstracts where the session lives so callers can back it with
// whatever storage their platform has (and tests with a fake). Subscribers
// are notified on every Set and Clear, which is how a badge or navbar
// component learns about logins and forced logouts.
type SessionStore interface {
	Get() (Session, bool)
	Set(Session)
	Clear()
	Subscribe(fn func(s Session, ok bool)) (cancel func())
}

// MemoryStore is the default in-process SessionStore.
type MemoryStore struct {
	mu      sync.Mutex
	session Session
	ok      bool
	subs    map[int]func(Session, bool)
	nextID  int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{subs: make(map[int]func(Session, bool))}
}

func (m *MemoryStore) Get() (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session, m.ok
}

func (m *MemoryStore) Set(s Session) {
	m.mu.Lock()
	m.session = s
	m.ok = true
	subs := m.snapshot()
	m.mu.Unlock()

	for _, fn := range subs {
		fn(s, true)
	}
}

func (m *MemoryStore) Clear() {
	m.mu.Lock()
	m.session = Session{}
	m.ok = false
	subs := m.snapshot()
	m.mu.Unlock()

	for _, fn := range subs {
		fn(Session{}, false)
	}
}

func (m *MemoryStore) Subscribe(fn func(Session, bool)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}

// snapshot must be called with the lock held.
func (m *MemoryStore) snapshot() []func(Session, bool) {
	out := make([]func(Session, bool), 0, len(m.subs))
	for _, fn := range m.subs {
		out = append(out, fn)
	}
	return out
}
