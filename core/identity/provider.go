package identity

import (
	"sync"

	"github.com/cardlect/cardlect/core"
)

var (
	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike; callers cannot tell the two apart.
	ErrInvalidCredentials = core.NewAuthError("invalid email or password")

	ErrNotFound = core.NewNotFoundError("identity not found")
)

// Provider is any identity backend the session Manager can authenticate
// against. The seed-backed implementation below is the demo default; a real
// backend can replace it without touching the Manager.
type Provider interface {
	Authenticate(email, password string) (Identity, error)
	GetByEmail(email string) (Identity, error)
}

type SeedProvider struct {
	mu      sync.RWMutex
	byEmail map[string]Identity
}

var _ Provider = (*SeedProvider)(nil)

func NewSeedProvider(ids ...Identity) *SeedProvider {
	p := &SeedProvider{byEmail: make(map[string]Identity, len(ids))}
	for _, ident := range ids {
		p.byEmail[core.CleanString(ident.Email, true /* lower */)] = ident
	}
	return p
}

func (p *SeedProvider) Authenticate(email, password string) (Identity, error) {
	ident, err := p.GetByEmail(email)
	if err != nil {
		return Identity{}, ErrInvalidCredentials
	}
	if err := ident.CheckPassword(password); err != nil {
		return Identity{}, ErrInvalidCredentials
	}
	return ident, nil
}

func (p *SeedProvider) GetByEmail(email string) (Identity, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if ident, ok := p.byEmail[core.CleanString(email, true /* lower */)]; ok {
		return ident, nil
	}
	return Identity{}, ErrNotFound
}

// Register adds or replaces an identity; used by the admin CLI.
func (p *SeedProvider) Register(ident Identity) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byEmail[core.CleanString(ident.Email, true /* lower */)] = ident
}
