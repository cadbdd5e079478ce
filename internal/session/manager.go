package session

import (
	"context"
	"strings"

	"github.com/SyedZohaibTech/hackathon-todo/internal/remote"
)

// AuthAPI is the subset of the remote API the manager needs.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, reg remote.Registration) error
}

// RegisterCause classifies why a registration was declined.
type RegisterCause int

const (
	// CauseNone means the registration was not declined.
	CauseNone RegisterCause = iota

	// CauseUsernameTaken means the username is already registered.
	CauseUsernameTaken

	// CauseEmailTaken means the email is already registered.
	CauseEmailTaken

	// CauseInvalid means some other validation failure.
	CauseInvalid
)

// LoginResult reports the outcome of a login attempt.
// Declined means the server rejected the credentials; it is not an
// error so callers can render "invalid credentials" rather than crash.
type LoginResult struct {
	Declined bool
}

// RegisterResult reports the outcome of a registration attempt.
type RegisterResult struct {
	Declined bool
	Cause    RegisterCause
	Message  string
}

// Manager owns the credential lifecycle. It is the only component that
// touches the credential store; everything else asks it.
type Manager struct {
	store *Store
	api   AuthAPI
}

// NewManager creates a Manager over the given store and auth API.
func NewManager(store *Store, api AuthAPI) *Manager {
	return &Manager{store: store, api: api}
}

// Login authenticates and persists the returned credential.
// Bad credentials resolve to a declined result; transport and server
// failures are returned as errors so callers can distinguish
// "invalid credentials" from "service unreachable".
func (m *Manager) Login(ctx context.Context, username, password string) (LoginResult, error) {
	credential, err := m.api.Login(ctx, username, password)
	if err != nil {
		if remote.IsAuth(err) {
			return LoginResult{Declined: true}, nil
		}
		return LoginResult{}, err
	}
	if err := m.store.Save(credential); err != nil {
		return LoginResult{}, err
	}
	return LoginResult{}, nil
}

// Register creates a new account. Validation failures resolve to a
// declined result whose cause distinguishes duplicate username from
// duplicate email from generic rejection.
func (m *Manager) Register(ctx context.Context, reg remote.Registration) (RegisterResult, error) {
	err := m.api.Register(ctx, reg)
	if err == nil {
		return RegisterResult{}, nil
	}
	if remote.IsValidation(err) {
		return RegisterResult{
			Declined: true,
			Cause:    classifyRegisterDetail(err.Error()),
			Message:  err.Error(),
		}, nil
	}
	return RegisterResult{}, err
}

// Logout clears the persisted credential. Idempotent.
func (m *Manager) Logout() error {
	return m.store.Clear()
}

// IsAuthenticated reports whether a credential is present. A pure
// local read; staleness is only discovered when the next API call
// fails with an authorization error.
func (m *Manager) IsAuthenticated() bool {
	return m.store.Present()
}

// Expire clears the session if err is an authorization failure and
// reports whether it did so. This is the single interceptor for the
// cross-cutting "any AuthError clears the session" rule.
func (m *Manager) Expire(err error) bool {
	if err == nil || !remote.IsAuth(err) {
		return false
	}
	// A failed removal leaves nothing worse than an already-invalid
	// credential on disk; the next use fails the same way.
	_ = m.store.Clear()
	return true
}

// classifyRegisterDetail maps the server's detail message to a cause.
// The backend distinguishes "Username already registered" from
// "Email already registered".
func classifyRegisterDetail(detail string) RegisterCause {
	lower := strings.ToLower(detail)
	switch {
	case strings.Contains(lower, "username already"):
		return CauseUsernameTaken
	case strings.Contains(lower, "email already"):
		return CauseEmailTaken
	default:
		return CauseInvalid
	}
}
