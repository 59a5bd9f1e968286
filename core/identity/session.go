package identity

import (
	"sync"
	"time"

	"github.com/cardlect/cardlect/core"
)

// Session is the single currently-authenticated identity for a running
// process. It does not own the domain stores; it only supplies the tenant
// filter used to query them.
type Session struct {
	Identity      Identity  `json:"identity"`
	EstablishedAt time.Time `json:"established_at"`
}

// Store is an opaque durable slot for the current session. Load must be
// all-or-nothing: a torn write may never surface as a partial session.
type Store interface {
	Save(sess Session) error
	Load() (Session, bool, error)
	Clear() error
}

// Manager holds at most one live session and persists every change through
// its Store. Persistence is fire-and-forget: a failed write is logged and
// never fails the operation. Sessions are not shared across processes; each
// Manager owns its own Store.
type Manager struct {
	mu       sync.RWMutex
	provider Provider
	store    Store
	logger   core.Logger
	current  *Session
}

func NewManager(provider Provider, store Store, logger core.Logger) *Manager {
	m := &Manager{provider: provider, store: store, logger: logger}

	// restore the persisted session, if any, so a restart does not silently
	// log the user out
	if sess, ok, err := store.Load(); err != nil {
		m.logger.Warn("loading persisted session", err)
	} else if ok {
		m.current = &sess
	}
	return m
}

// Login authenticates against the Provider and establishes a session.
func (m *Manager) Login(email, password string) (Identity, error) {
	ident, err := m.provider.Authenticate(email, password)
	if err != nil {
		return Identity{}, err
	}
	m.establish(ident)
	return ident, nil
}

// SetAuthUser establishes a session directly from the supplied identity,
// without credential verification. Any existing session is overwritten.
// Demo/test entry point only.
func (m *Manager) SetAuthUser(ident Identity) {
	m.establish(ident)
}

// Logout destroys the current session and clears persisted state. Calling it
// with no active session is a no-op.
func (m *Manager) Logout() {
	m.mu.Lock()
	if m.current == nil {
		m.mu.Unlock()
		return
	}
	m.current = nil
	m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		m.logger.Warn("clearing persisted session", err)
	}
}

// CurrentUser returns the identity of the live session, or nil.
func (m *Manager) CurrentUser() *Identity {
	if sess := m.Current(); sess != nil {
		ident := sess.Identity
		return &ident
	}
	return nil
}

// Current returns a copy of the live session, or nil.
func (m *Manager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil
	}
	sess := *m.current
	return &sess
}

func (m *Manager) establish(ident Identity) {
	sess := Session{Identity: ident, EstablishedAt: time.Now().UTC()}

	m.mu.Lock()
	m.current = &sess
	m.mu.Unlock()

	if err := m.store.Save(sess); err != nil {
		m.logger.Warn("saving session", err)
	}
}
