package client

import "sync"

// Session is the reactive auth store. The browser app broadcast sign-in state
// between tabs through storage events; here every interested component
// subscribes explicitly instead of listening on a side channel.
type Session struct {
	mu    sync.RWMutex
	email string
	token string
	subs  []chan bool
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SignedIn reports whether a token is held; route gating keys off this.
func (s *Session) SignedIn() bool {
	return s.Token() != ""
}

// Restore seeds the session from persisted state (the CLI's config file).
func (s *Session) Restore(email, token string) {
	s.mu.Lock()
	s.email = email
	s.token = token
	s.mu.Unlock()
	s.notify(token != "")
}

func (s *Session) SignIn(email, token string) {
	s.mu.Lock()
	s.email = email
	s.token = token
	s.mu.Unlock()
	s.notify(true)
}

func (s *Session) SignOut() {
	s.mu.Lock()
	s.email = ""
	s.token = ""
	s.mu.Unlock()
	s.notify(false)
}

// Subscribe returns a channel receiving the signed-in flag on every change.
// The channel is buffered; slow subscribers drop intermediate updates.
func (s *Session) Subscribe() <-chan bool {
	ch := make(chan bool, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func (s *Session) notify(signedIn bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- signedIn:
		default:
		}
	}
}
