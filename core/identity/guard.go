package identity

// LoginPath is the redirect target for unauthenticated visitors.
const LoginPath = "/login"

// Decision is the outcome of a route-guard check: either render the page or
// redirect elsewhere. A role mismatch is never surfaced as an error.
type Decision struct {
	Authorized bool
	Redirect   string // target path when not authorized
}

// Check gates a protected page. No session redirects to the login entry
// point; a session whose role is not among the required ones redirects to
// that role's own landing page.
func Check(sess *Session, required ...Role) Decision {
	if sess == nil {
		return Decision{Redirect: LoginPath}
	}
	for _, role := range required {
		if sess.Identity.Role == role {
			return Decision{Authorized: true}
		}
	}
	return Decision{Redirect: sess.Identity.Role.LandingPath()}
}

// Guard re-reads the session Manager on every call; decisions are never
// cached since the session can change between navigations.
type Guard struct {
	mgr *Manager
}

func NewGuard(mgr *Manager) *Guard {
	return &Guard{mgr: mgr}
}

func (g *Guard) Check(required ...Role) Decision {
	return Check(g.mgr.Current(), required...)
}
