package session

import (
	"crypto/rand"
	"math/big"
	"sync"
)

// Info is returned by the API for the session list.
type Info struct {
	Code     string `json:"code"`
	Attached bool   `json:"attached"`
}

// Manager holds sessions by join code. Sessions are created on first join
// or via Create, and removed when their client detaches.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate returns the session for the given code, creating it if needed.
func (m *Manager) GetOrCreate(code string) *Session {
	if code == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[code]; ok {
		return s
	}
	return m.startLocked(code)
}

// Create generates a unique 6-char code, starts the session, and returns
// the code.
func (m *Manager) Create() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		code := generateCode(6)
		if _, exists := m.sessions[code]; exists {
			continue
		}
		m.startLocked(code)
		return code
	}
}

func (m *Manager) startLocked(code string) *Session {
	s := New()
	s.Code = code
	s.OnEmpty = func(c string) {
		m.remove(c)
	}
	m.sessions[code] = s
	go s.Run()
	return s
}

func (m *Manager) remove(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[code]; ok {
		s.Stop()
		delete(m.sessions, code)
	}
}

// List returns all active sessions.
func (m *Manager) List() []Info {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Info, 0, len(m.sessions))
	for code, s := range m.sessions {
		out = append(out, Info{Code: code, Attached: s.Attached()})
	}
	return out
}

const codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func generateCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeChars)))
	for i := range b {
		idx, _ := rand.Int(rand.Reader, max)
		b[i] = codeChars[idx.Int64()]
	}
	return string(b)
}
