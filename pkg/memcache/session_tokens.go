package memcache

import "sync"

// SessionTokens holds the access/refresh pair for the planning API.
// Process-lifetime only; every outbound call reads it and only the
// refresh flow writes it, so a plain RWMutex is enough.
type SessionTokens struct {
	mu      sync.RWMutex
	access  string
	refresh string
}

func NewSessionTokens() *SessionTokens {
	return &SessionTokens{}
}

// Seed installs an initial pair, typically from the environment at
// startup.
func (s *SessionTokens) Seed(access, refresh string) {
	s.Replace(access, refresh)
}

func (s *SessionTokens) Access() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

func (s *SessionTokens) Refresh() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

// Replace swaps in a new pair atomically so a reader never sees a new
// access token alongside an old refresh token.
func (s *SessionTokens) Replace(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
	s.refresh = refresh
}

func (s *SessionTokens) Clear() {
	s.Replace("", "")
}
