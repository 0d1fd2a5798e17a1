package store

import (
	"log/slog"
	"sync"

	"blog-service/internal/logger"
)

// TokenStorage persists the auth token between client sessions.
//
//go:generate mockery --name TokenStorage --dir . --output ../../../mocks/store --outpkg mocks --filename TokenStorage.go
type TokenStorage interface {
	Load() (string, error)
	Save(token string) error
	Remove() error
}

type Listener func(State)

// Store is the client state container. All changes go through Dispatch.
type Store struct {
	mu           sync.RWMutex
	state        State
	persistMu    sync.Mutex
	tokens       TokenStorage
	log          *logger.Logger
	listeners    map[int]Listener
	nextListener int
}

func New(tokens TokenStorage, log *logger.Logger) *Store {
	token, err := tokens.Load()
	if err != nil {
		log.Warn("Failed to load persisted token", slog.String("error", err.Error()))
		token = ""
	}

	return &Store{
		state:     InitialState(token),
		tokens:    tokens,
		log:       log,
		listeners: make(map[int]Listener),
	}
}

func (s *Store) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch reduces action into the current state, persists token changes and
// then notifies listeners with the new state.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	next := Reduce(s.state, action)
	s.state = next
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	// persistMu is taken before mu is released so storage writes happen in
	// the same order as the state transitions.
	s.persistMu.Lock()
	s.mu.Unlock()

	s.persist(action, next)
	s.persistMu.Unlock()

	s.log.Debug("Action dispatched",
		slog.String("type", string(action.Type)),
		slog.String("auth_status", string(next.Auth.Status)),
		slog.String("post_status", string(next.Post.Status)))

	for _, l := range listeners {
		l(next)
	}
	return next
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextListener
	s.nextListener++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// RequireAuth reports what a protected operation has to do before it may run.
func (s *Store) RequireAuth() Guard {
	return RequireAuth(s.GetState().Auth)
}

func (s *Store) persist(action Action, next State) {
	var err error
	switch action.Type {
	case LoginFulfilled, SignupFulfilled:
		if next.Auth.Token != "" {
			err = s.tokens.Save(next.Auth.Token)
		}
	case GetCurrentUserRejected, Logout:
		err = s.tokens.Remove()
	default:
		return
	}
	if err != nil {
		s.log.Error("Failed to persist token",
			slog.String("action", string(action.Type)),
			slog.String("error", err.Error()))
	}
}
