package sdk

import (
	"context"
	"sync"
)

type resolveOutcome int

const (
	resolveOK resolveOutcome = iota
	resolveNeedsRefresh
	resolveFatal
)

type resolveStep struct {
	session *Session
	outcome resolveOutcome
}

// SessionManager owns the session lifecycle: boot-time resolution, login,
// logout and the route-gate cookie mirror. Create exactly one per
// application and pass it down; it is not a package singleton.
type SessionManager struct {
	client *Client
	store  TokenStore

	mu       sync.Mutex
	session  *Session
	resolved bool
	// generation is bumped by every logout. Resolution steps snapshot it on
	// entry and refuse to write state once it has moved on, so a response
	// that arrives after a logout cannot re-populate the session.
	generation uint64

	loginRoute   string
	currentRoute func() string
	navigate     func(route string)
}

type SessionOption func(*SessionManager)

// WithNavigation wires the manager to the application shell's router.
// currentRoute reports where the user is; navigate moves them.
func WithNavigation(currentRoute func() string, navigate func(string)) SessionOption {
	return func(sm *SessionManager) {
		sm.currentRoute = currentRoute
		sm.navigate = navigate
	}
}

// WithLoginRoute overrides the default /login route used for redirects and
// loop avoidance.
func WithLoginRoute(route string) SessionOption {
	return func(sm *SessionManager) {
		sm.loginRoute = route
	}
}

func NewSessionManager(client *Client, store TokenStore, opts ...SessionOption) *SessionManager {
	sm := &SessionManager{
		client:     client,
		store:      store,
		loginRoute: "/login",
	}
	for _, opt := range opts {
		opt(sm)
	}
	return sm
}

// Session returns the resolved session, or nil when signed out.
func (sm *SessionManager) Session() *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.session
}

// Resolved reports whether boot-time resolution has completed.
func (sm *SessionManager) Resolved() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.resolved
}

func (sm *SessionManager) Authenticated() bool {
	return sm.Session() != nil
}

// Resolve runs the boot sequence: load tokens, try the identity endpoint,
// and on failure make exactly one refresh-then-retry attempt before giving
// up. A second refresh is never attempted in one cycle, so a dead backend
// cannot trap the client in a refresh loop. Errors never escape; failure
// becomes a logged-out session.
func (sm *SessionManager) Resolve(ctx context.Context) {
	sm.mu.Lock()
	gen := sm.generation
	sm.mu.Unlock()

	tokens, ok := sm.store.TokenSet()
	if !ok || tokens.AccessToken == "" {
		// nothing stored: complete without touching the network
		sm.completeAbsent(gen)
		return
	}

	// mirror before the first request that could bounce us off a gated page
	sm.client.mirrorRouteGateCookie(tokens.AccessToken)

	step := sm.resolveIdentity(ctx, tokens.IDToken)
	switch step.outcome {
	case resolveOK:
		sm.adoptSession(gen, step.session)
		return
	case resolveFatal:
		sm.Logout(ctx)
		return
	case resolveNeedsRefresh:
	}

	if tokens.RefreshToken == "" {
		sm.Logout(ctx)
		return
	}

	newTokens, err := sm.client.refresh(ctx, tokens.RefreshToken)
	if err != nil {
		sm.Logout(ctx)
		return
	}
	if !sm.replaceTokens(gen, *newTokens) {
		// a logout won the race; drop the late tokens
		return
	}
	sm.client.mirrorRouteGateCookie(newTokens.AccessToken)

	step = sm.resolveIdentity(ctx, newTokens.IDToken)
	if step.outcome == resolveOK {
		sm.adoptSession(gen, step.session)
		return
	}
	sm.Logout(ctx)
}

// resolveIdentity is one identity attempt. Every failure maps to
// NeedsRefresh - the driver decides whether a refresh is still available.
func (sm *SessionManager) resolveIdentity(ctx context.Context, idToken string) resolveStep {
	session, err := sm.client.fetchIdentity(ctx, idToken)
	if err != nil {
		return resolveStep{outcome: resolveNeedsRefresh}
	}
	return resolveStep{session: session, outcome: resolveOK}
}

// Login exchanges credentials for a token set and resolves the identity it
// grants. On failure nothing is written - the store, cookie and session all
// keep their prior values - and the normalized error is returned for inline
// display.
func (sm *SessionManager) Login(ctx context.Context, email string, password string) error {
	if email == "" || password == "" {
		return &APIError{Message: "email and password are required"}
	}

	tokens, err := sm.client.login(ctx, email, password)
	if err != nil {
		return err
	}

	sm.mu.Lock()
	gen := sm.generation
	sm.mu.Unlock()

	if !sm.replaceTokens(gen, *tokens) {
		return &APIError{Message: "session was closed during login"}
	}
	sm.client.mirrorRouteGateCookie(tokens.AccessToken)

	session, err := sm.client.fetchIdentity(ctx, tokens.IDToken)
	if err != nil {
		return err
	}
	sm.adoptSession(gen, session)
	return nil
}

// Logout clears every piece of session state. It is idempotent, never
// returns an error, and skips navigation when the user is already on the
// login route.
func (sm *SessionManager) Logout(ctx context.Context) {
	sm.mu.Lock()
	sm.generation++
	hadSession := sm.session != nil
	sm.session = nil
	sm.resolved = true
	sm.mu.Unlock()

	if tokens, ok := sm.store.TokenSet(); ok && hadSession {
		// best effort server side revocation; a failure here changes nothing
		sm.client.revoke(ctx, tokens.AccessToken)
	}
	sm.store.Clear()
	sm.client.expireRouteGateCookie()

	if sm.navigate != nil {
		if sm.currentRoute == nil || sm.currentRoute() != sm.loginRoute {
			sm.navigate(sm.loginRoute)
		}
	}
}

// RequireSession is the application-shell half of the route guard: once
// resolution has completed, an absent session off the login route redirects
// there. The edge gate makes the same decision from cookie presence alone;
// this check reflects live state and is the authoritative one.
func (sm *SessionManager) RequireSession() {
	sm.mu.Lock()
	resolved := sm.resolved
	absent := sm.session == nil
	sm.mu.Unlock()

	if !resolved || !absent {
		return
	}
	if sm.navigate != nil {
		if sm.currentRoute == nil || sm.currentRoute() != sm.loginRoute {
			sm.navigate(sm.loginRoute)
		}
	}
}

func (sm *SessionManager) completeAbsent(gen uint64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.generation != gen {
		return
	}
	sm.session = nil
	sm.resolved = true
}

func (sm *SessionManager) adoptSession(gen uint64, session *Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.generation != gen {
		// stale response from before a logout
		return
	}
	sm.session = session
	sm.resolved = true
}

func (sm *SessionManager) replaceTokens(gen uint64, tokens TokenSet) bool {
	sm.mu.Lock()
	if sm.generation != gen {
		sm.mu.Unlock()
		return false
	}
	sm.mu.Unlock()
	return sm.store.SetTokenSet(tokens) == nil
}
