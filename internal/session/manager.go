package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// API is the slice of the backend the manager needs. Implemented by the
// careerbooster client.
type API interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Register(ctx context.Context, name, email, password string) (*Session, error)
}

// Manager owns the active session. It is handed to every component that
// needs authentication state instead of being reachable as a global.
// Session writes go through here only; reads are token lookups.
type Manager struct {
	mu     sync.RWMutex
	store  *FileStore
	api    API
	logger *zap.Logger

	current *Session
}

func NewManager(store *FileStore, api API, logger *zap.Logger) *Manager {
	return &Manager{
		store:  store,
		api:    api,
		logger: logger,
	}
}

// SetAPI wires the backend client in after construction. The manager acts as
// the client's token source, so the two reference each other.
func (m *Manager) SetAPI(api API) {
	m.api = api
}

// Restore reads the persisted session, if any. A corrupt or missing file
// fails safe to the logged-out state and is never an error for the caller.
func (m *Manager) Restore() {
	sess, err := m.store.Load()
	if err != nil {
		if !errors.Is(err, ErrNoSession) {
			m.logger.Debug("ignoring unusable persisted session", zap.Error(err))
		}
		return
	}

	m.mu.Lock()
	m.current = sess
	m.mu.Unlock()

	m.logger.Debug("restored session", zap.String("email", sess.Email))
}

// Login exchanges credentials for a session, persists it and makes it the
// active one. On failure the previous session, if any, stays untouched.
func (m *Manager) Login(ctx context.Context, email, password string) (*Session, error) {
	sess, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return sess, m.activate(sess)
}

// Register has the same contract as Login against the register endpoint.
func (m *Manager) Register(ctx context.Context, name, email, password string) (*Session, error) {
	sess, err := m.api.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}

	return sess, m.activate(sess)
}

// Logout drops the persisted file and the in-memory session unconditionally.
func (m *Manager) Logout() {
	if err := m.store.Clear(); err != nil {
		// the in-memory session is gone regardless
		m.logger.Warn("clearing persisted session", zap.Error(err))
	}

	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
}

// Current returns the active session or nil.
func (m *Manager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.current
}

// Token implements careerbooster.TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return ""
	}

	return m.current.Token
}

// activate persists sess and swaps it in. Every success overwrites whatever
// identity was stored before, there is no multi-account support.
func (m *Manager) activate(sess *Session) error {
	if err := m.store.Save(sess); err != nil {
		return err
	}

	m.mu.Lock()
	m.current = sess
	m.mu.Unlock()

	return nil
}
