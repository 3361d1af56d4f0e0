package session

import (
	"sync"

	"github.com/eliseodavidv/proyectocompleto/model"
)

// Store persists the bearer token between app launches. The mobile app keeps
// it in the device key-value store; tests use the in-memory variant.
type Store interface {
	Load() (string, error)
	Save(token string) error
	Delete() error
}

// Service is the single owner of the auth token. Components read the token
// through it instead of an ambient global, and subscribe to expiry so they
// can redirect to login when the token is cleared.
type Service struct {
	mu        sync.Mutex
	token     string
	user      *model.User
	listeners []func(token string)
	store     Store
}

func NewService(store Store) (*Service, error) {
	s := &Service{store: store}
	token, err := store.Load()
	if err != nil {
		return nil, err
	}
	s.token = token
	return s, nil
}

func (s *Service) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Service) SetToken(token string) error {
	s.mu.Lock()
	s.token = token
	listeners := append([]func(string){}, s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(token)
	}
	return s.store.Save(token)
}

// Clear drops the token, removes it from the store and notifies listeners
// with an empty token. Listeners treat that as "session ended, go to login".
func (s *Service) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	listeners := append([]func(string){}, s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l("")
	}
	return s.store.Delete()
}

func (s *Service) OnTokenChange(listener func(token string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

func (s *Service) Authenticated() bool {
	return len(s.Token()) > 0
}

// CurrentUser is the profile of the logged-in user, set after login. Screens
// use it for membership checks and own-post exclusion.
func (s *Service) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Service) SetCurrentUser(u *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}
