// Package routes gates reachability of commands based on session state.
package routes

// Access classifies a navigation target.
type Access int

const (
	// AccessOpen targets have no session constraint (help, version).
	AccessOpen Access = iota

	// AccessProtected targets require an authenticated session.
	AccessProtected

	// AccessPublicOnly targets require no session (login, register).
	AccessPublicOnly
)

const (
	// LoginRoute is the redirect target for unauthenticated access.
	LoginRoute = "login"

	// HomeRoute is the default authenticated landing target.
	HomeRoute = "list"
)

// Decision is the outcome of a guard check. When Allow is false,
// RedirectTo names where to go instead and Target preserves the
// originally attempted destination for post-login return.
type Decision struct {
	Allow      bool
	RedirectTo string
	Target     string
}

// SessionState answers whether a session is currently established.
type SessionState interface {
	IsAuthenticated() bool
}

// Guard decides whether a target is reachable. Session state is
// re-evaluated on every Decide call, never cached across checks.
type Guard struct {
	session SessionState
}

// NewGuard creates a Guard over the given session state.
func NewGuard(session SessionState) *Guard {
	return &Guard{session: session}
}

// Decide applies the transition rules: a protected target without a
// session redirects to login (preserving the target); a public-only
// target with a session redirects to the authenticated landing.
// Everything else passes through unchanged.
func (g *Guard) Decide(target string, access Access) Decision {
	authenticated := g.session.IsAuthenticated()

	switch access {
	case AccessProtected:
		if !authenticated {
			return Decision{RedirectTo: LoginRoute, Target: target}
		}
	case AccessPublicOnly:
		if authenticated {
			return Decision{RedirectTo: HomeRoute, Target: target}
		}
	}
	return Decision{Allow: true, Target: target}
}
