package auth

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Roles returned by Authenticate.
const (
	RoleAdmin     = "admin"
	RoleOperator  = "operator"
	RolePassenger = "passenger"
)

// Credential is one entry in the demo login table.
type Credential struct {
	Email    string
	Password string
	Role     string
}

// DefaultCredentials is the built-in three-account table used when the
// configuration provides none.
func DefaultCredentials() []Credential {
	return []Credential{
		{Email: "admin@transit.demo", Password: "admin123", Role: RoleAdmin},
		{Email: "operator@transit.demo", Password: "operator123", Role: RoleOperator},
		{Email: "user@transit.demo", Password: "user123", Role: RolePassenger},
	}
}

// Session is an ephemeral login record. Sessions are never persisted and
// vanish with the process.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Authenticator checks credentials and tracks live sessions. Unlike the
// data store it is written after startup, so session access is guarded.
type Authenticator struct {
	credentials []Credential

	mu       sync.RWMutex
	sessions map[string]Session
}

// New creates an authenticator over the given table. An empty table
// falls back to DefaultCredentials.
func New(credentials []Credential) *Authenticator {
	if len(credentials) == 0 {
		credentials = DefaultCredentials()
	}
	return &Authenticator{
		credentials: credentials,
		sessions:    map[string]Session{},
	}
}

// Authenticate checks email/password against the table and returns the
// matching role. Emails compare case-insensitively, passwords exactly.
func (a *Authenticator) Authenticate(email, password string) (string, bool) {
	for _, c := range a.credentials {
		if strings.EqualFold(c.Email, email) && c.Password == password {
			return c.Role, true
		}
	}
	return "", false
}

// Login authenticates and, on success, mints a session token.
func (a *Authenticator) Login(email, password string) (Session, bool) {
	role, ok := a.Authenticate(email, password)
	if !ok {
		return Session{}, false
	}
	s := Session{
		Token:     uuid.NewString(),
		Email:     strings.ToLower(email),
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	a.mu.Lock()
	a.sessions[s.Token] = s
	a.mu.Unlock()
	return s, true
}

// SessionFor returns the live session for a token, if any.
func (a *Authenticator) SessionFor(token string) (Session, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	s, ok := a.sessions[token]
	return s, ok
}

// Logout deletes the session for a token. Unknown tokens are a no-op.
func (a *Authenticator) Logout(token string) {
	a.mu.Lock()
	delete(a.sessions, token)
	a.mu.Unlock()
}
