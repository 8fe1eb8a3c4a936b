package session

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/dshills/keyhold/internal/config"
	"github.com/dshills/keyhold/internal/logging"
)

// Manager tracks named sessions. Sessions whose process exits are
// removed automatically.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	nextName int

	defaults Options
	start    func(Options) (*Session, error)
	logger   *logging.Logger

	closed atomic.Bool
}

// ManagerConfig configures a session manager.
type ManagerConfig struct {
	// Session supplies the default shell, arguments, environment and TERM.
	Session config.SessionConfig

	// Cols and Rows are the default PTY size.
	Cols int
	Rows int

	// Logger receives lifecycle messages.
	Logger *logging.Logger
}

// NewManager creates a session manager.
func NewManager(cfg ManagerConfig) *Manager {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Null()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		defaults: Options{
			Shell:  cfg.Session.Shell,
			Args:   cfg.Session.Args,
			Env:    cfg.Session.Env,
			Term:   cfg.Session.Term,
			Cols:   cfg.Cols,
			Rows:   cfg.Rows,
			Logger: logger,
		},
		start:  Start,
		logger: logger.WithComponent("manager"),
	}
}

// Create starts a session. Unset options take the manager's defaults.
// An empty name is replaced by the lowest unused number.
func (m *Manager) Create(opts Options) (*Session, error) {
	if m.closed.Load() {
		return nil, ErrManagerClosed
	}

	if opts.Shell == "" {
		opts.Shell = m.defaults.Shell
		if len(opts.Args) == 0 {
			opts.Args = m.defaults.Args
		}
	}
	if opts.Term == "" {
		opts.Term = m.defaults.Term
	}
	if opts.Cols <= 0 {
		opts.Cols = m.defaults.Cols
	}
	if opts.Rows <= 0 {
		opts.Rows = m.defaults.Rows
	}
	if opts.Logger == nil {
		opts.Logger = m.defaults.Logger
	}
	opts.Env = append(append([]string(nil), m.defaults.Env...), opts.Env...)

	m.mu.Lock()
	if opts.Name == "" {
		opts.Name = m.freeNameLocked()
	}
	if _, ok := m.sessions[opts.Name]; ok {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrSessionExists, opts.Name)
	}
	// Reserve the name while the process starts.
	m.sessions[opts.Name] = nil
	m.mu.Unlock()

	s, err := m.start(opts)

	m.mu.Lock()
	if err != nil {
		delete(m.sessions, opts.Name)
		m.mu.Unlock()
		return nil, err
	}
	m.sessions[opts.Name] = s
	m.mu.Unlock()

	m.logger.Info("created session %s", opts.Name)

	go func() {
		<-s.Done()
		m.forget(s)
	}()

	return s, nil
}

func (m *Manager) freeNameLocked() string {
	for {
		name := strconv.Itoa(m.nextName)
		m.nextName++
		if _, ok := m.sessions[name]; !ok {
			return name
		}
	}
}

// forget drops s if it is still registered under its name.
func (m *Manager) forget(s *Session) {
	m.mu.Lock()
	if m.sessions[s.Name()] == s {
		delete(m.sessions, s.Name())
	}
	m.mu.Unlock()

	_ = s.Close()
	m.logger.Info("session %s exited with code %d", s.Name(), s.ExitCode())
}

// Get returns a session by name.
func (m *Manager) Get(name string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[name]
	if !ok || s == nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, name)
	}
	return s, nil
}

// List returns the running sessions, oldest first.
func (m *Manager) List() []*Session {
	m.mu.RLock()
	result := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		if s != nil {
			result = append(result, s)
		}
	}
	m.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt().Equal(result[j].CreatedAt()) {
			return result[i].Name() < result[j].Name()
		}
		return result[i].CreatedAt().Before(result[j].CreatedAt())
	})
	return result
}

// Count returns the number of running sessions.
func (m *Manager) Count() int {
	return len(m.List())
}

// Remove closes a session and forgets it.
func (m *Manager) Remove(name string) error {
	m.mu.Lock()
	s, ok := m.sessions[name]
	if !ok || s == nil {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrSessionNotFound, name)
	}
	delete(m.sessions, name)
	m.mu.Unlock()

	return s.Close()
}

// CloseAll closes every session and refuses further Create calls.
func (m *Manager) CloseAll() error {
	m.closed.Store(true)

	var firstErr error
	for _, s := range m.List() {
		// A session may exit on its own between List and Remove.
		err := m.Remove(s.Name())
		if err != nil && !errors.Is(err, ErrSessionNotFound) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
