package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type fakeBackend struct {
	mu            sync.Mutex
	identityCalls int
	refreshCalls  int
	loginCalls    int
	revokeCalls   int

	validIDToken     string
	refreshAccepted  bool
	rotatedTokens    TokenSet
	session          Session
	loginTokens      *TokenSet
	loginFailStatus  int
	loginFailMessage string
}

func respond(w http.ResponseWriter, status int, message string, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	raw, _ := json.Marshal(body)
	json.NewEncoder(w).Encode(map[string]any{
		"message": message,
		"body":    json.RawMessage(raw),
	})
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.identityCalls++
		valid := r.Header.Get("Authorization") == "Bearer "+f.validIDToken
		f.mu.Unlock()
		if !valid {
			respond(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}
		respond(w, http.StatusOK, "success", f.session)
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.refreshCalls++
		accepted := f.refreshAccepted
		f.mu.Unlock()
		if !accepted {
			respond(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}
		respond(w, http.StatusOK, "success", f.rotatedTokens)
	})
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.loginCalls++
		f.mu.Unlock()
		if f.loginTokens == nil {
			respond(w, f.loginFailStatus, f.loginFailMessage, nil)
			return
		}
		respond(w, http.StatusOK, "success", *f.loginTokens)
	})
	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.revokeCalls++
		f.mu.Unlock()
		respond(w, http.StatusOK, "success", nil)
	})
	return mux
}

func (f *fakeBackend) counts() (identity, refresh, login, revoke int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.identityCalls, f.refreshCalls, f.loginCalls, f.revokeCalls
}

type navRecorder struct {
	route   string
	targets []string
}

func (n *navRecorder) current() string { return n.route }
func (n *navRecorder) goTo(target string) {
	n.targets = append(n.targets, target)
	n.route = target
}

func newTestManager(t *testing.T, backend *fakeBackend) (*SessionManager, *MemoryTokenStore, *navRecorder, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	store := NewMemoryTokenStore()
	nav := &navRecorder{route: "/"}
	manager := NewSessionManager(client, store, WithNavigation(nav.current, nav.goTo))
	return manager, store, nav, server
}

func TestResolveWithNoStoredTokens(t *testing.T) {
	backend := &fakeBackend{}
	manager, _, _, _ := newTestManager(t, backend)

	manager.Resolve(context.Background())

	if manager.Session() != nil {
		t.Fatal("expected no session")
	}
	if !manager.Resolved() {
		t.Fatal("expected resolution to complete")
	}
	identity, refresh, _, _ := backend.counts()
	if identity != 0 || refresh != 0 {
		t.Fatalf("expected zero network calls, got identity=%d refresh=%d", identity, refresh)
	}
}

func TestResolveWithValidTokens(t *testing.T) {
	backend := &fakeBackend{
		validIDToken: "id-1",
		session:      Session{UserID: "u1", Email: "jo@stockroom.test", Name: "Jo"},
	}
	manager, store, _, _ := newTestManager(t, backend)
	store.SetTokenSet(TokenSet{AccessToken: "acc-1", IDToken: "id-1", RefreshToken: "ref-1", TokenType: "Bearer", ExpiresIn: 3600})

	manager.Resolve(context.Background())

	session := manager.Session()
	if session == nil || session.UserID != "u1" {
		t.Fatalf("expected session for u1, got %+v", session)
	}
	identity, refresh, _, _ := backend.counts()
	if identity != 1 || refresh != 0 {
		t.Fatalf("expected 1 identity call and no refresh, got identity=%d refresh=%d", identity, refresh)
	}
	if cookie, ok := manager.client.RouteGateCookie(); !ok || cookie != "acc-1" {
		t.Fatalf("expected mirrored cookie acc-1, got %q ok=%v", cookie, ok)
	}
}

func TestResolveRefreshesExpiredTokensOnce(t *testing.T) {
	backend := &fakeBackend{
		validIDToken:    "id-2",
		refreshAccepted: true,
		rotatedTokens:   TokenSet{AccessToken: "acc-2", IDToken: "id-2", RefreshToken: "ref-2", TokenType: "Bearer", ExpiresIn: 3600},
		session:         Session{UserID: "u1", Email: "jo@stockroom.test"},
	}
	manager, store, _, _ := newTestManager(t, backend)
	store.SetTokenSet(TokenSet{AccessToken: "acc-1", IDToken: "stale", RefreshToken: "ref-1", TokenType: "Bearer", ExpiresIn: 3600})

	manager.Resolve(context.Background())

	if manager.Session() == nil {
		t.Fatal("expected a session after refresh")
	}
	identity, refresh, _, _ := backend.counts()
	if identity != 2 {
		t.Fatalf("expected exactly 2 identity calls, got %d", identity)
	}
	if refresh != 1 {
		t.Fatalf("expected exactly 1 refresh call, got %d", refresh)
	}
	tokens, ok := store.TokenSet()
	if !ok {
		t.Fatal("expected rotated tokens in store")
	}
	if tokens.AccessToken != "acc-2" || tokens.IDToken != "id-2" || tokens.RefreshToken != "ref-2" {
		t.Fatalf("expected whole token set replaced, got %+v", tokens)
	}
	if cookie, _ := manager.client.RouteGateCookie(); cookie != "acc-2" {
		t.Fatalf("expected cookie re-mirrored to acc-2, got %q", cookie)
	}
}

func TestResolveLogsOutWhenRefreshFails(t *testing.T) {
	backend := &fakeBackend{
		validIDToken:    "id-live",
		refreshAccepted: false,
	}
	manager, store, nav, _ := newTestManager(t, backend)
	store.SetTokenSet(TokenSet{AccessToken: "acc-1", IDToken: "stale", RefreshToken: "ref-1", TokenType: "Bearer", ExpiresIn: 3600})

	manager.Resolve(context.Background())

	if manager.Session() != nil {
		t.Fatal("expected no session")
	}
	if _, ok := store.TokenSet(); ok {
		t.Fatal("expected store cleared")
	}
	if _, ok := manager.client.RouteGateCookie(); ok {
		t.Fatal("expected route gate cookie expired")
	}
	identity, refresh, _, _ := backend.counts()
	if identity != 1 || refresh != 1 {
		t.Fatalf("expected 1 identity and 1 refresh call, got identity=%d refresh=%d", identity, refresh)
	}
	if len(nav.targets) != 1 || nav.targets[0] != "/login" {
		t.Fatalf("expected one redirect to /login, got %v", nav.targets)
	}
}

func TestLoginSuccessReplacesAllState(t *testing.T) {
	backend := &fakeBackend{
		validIDToken: "id-3",
		loginTokens:  &TokenSet{AccessToken: "acc-3", IDToken: "id-3", RefreshToken: "ref-3", TokenType: "Bearer", ExpiresIn: 3600},
		session:      Session{UserID: "u1", Email: "jo@stockroom.test", Groups: []string{"admin"}},
	}
	manager, store, _, _ := newTestManager(t, backend)

	if err := manager.Login(context.Background(), "jo@stockroom.test", "hunter22!"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	session := manager.Session()
	if session == nil || session.UserID != "u1" {
		t.Fatalf("expected session, got %+v", session)
	}
	tokens, ok := store.TokenSet()
	if !ok || tokens.AccessToken != "acc-3" {
		t.Fatalf("expected stored token set, got %+v ok=%v", tokens, ok)
	}
	if cookie, _ := manager.client.RouteGateCookie(); cookie != "acc-3" {
		t.Fatalf("expected mirrored cookie, got %q", cookie)
	}
}

func TestLoginFailureLeavesNoState(t *testing.T) {
	backend := &fakeBackend{
		loginFailStatus:  http.StatusUnauthorized,
		loginFailMessage: "invalid email or password",
	}
	manager, store, nav, _ := newTestManager(t, backend)

	err := manager.Login(context.Background(), "jo@stockroom.test", "wrong")
	if err == nil {
		t.Fatal("expected login error")
	}
	apiErr, ok := err.(*APIError)
	if !ok || apiErr.Message != "invalid email or password" {
		t.Fatalf("expected server message surfaced, got %v", err)
	}
	if _, ok := store.TokenSet(); ok {
		t.Fatal("expected empty store after failed login")
	}
	if _, ok := manager.client.RouteGateCookie(); ok {
		t.Fatal("expected no cookie after failed login")
	}
	if manager.Session() != nil {
		t.Fatal("expected no session after failed login")
	}
	if len(nav.targets) != 0 {
		t.Fatalf("expected no navigation, got %v", nav.targets)
	}
}

func TestLoginRejectsEmptyCredentialsWithoutNetwork(t *testing.T) {
	backend := &fakeBackend{}
	manager, _, _, _ := newTestManager(t, backend)

	for _, tc := range []struct{ email, password string }{
		{"", "secret"},
		{"jo@stockroom.test", ""},
		{"", ""},
	} {
		if err := manager.Login(context.Background(), tc.email, tc.password); err == nil {
			t.Fatalf("expected error for %q/%q", tc.email, tc.password)
		}
	}
	_, _, login, _ := backend.counts()
	if login != 0 {
		t.Fatalf("expected no login requests, got %d", login)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	backend := &fakeBackend{
		validIDToken: "id-4",
		session:      Session{UserID: "u1"},
	}
	manager, store, nav, _ := newTestManager(t, backend)
	store.SetTokenSet(TokenSet{AccessToken: "acc-4", IDToken: "id-4", RefreshToken: "ref-4", TokenType: "Bearer", ExpiresIn: 3600})
	manager.Resolve(context.Background())

	manager.Logout(context.Background())
	manager.Logout(context.Background())
	manager.Logout(context.Background())

	if manager.Session() != nil {
		t.Fatal("expected no session")
	}
	if _, ok := store.TokenSet(); ok {
		t.Fatal("expected store cleared")
	}
	if len(nav.targets) != 1 {
		t.Fatalf("expected a single redirect, got %v", nav.targets)
	}
	_, _, _, revoke := backend.counts()
	if revoke != 1 {
		t.Fatalf("expected revocation only on the first logout, got %d", revoke)
	}
}

func TestLogoutSkipsRedirectOnLoginRoute(t *testing.T) {
	backend := &fakeBackend{}
	manager, _, nav, _ := newTestManager(t, backend)
	nav.route = "/login"

	manager.Logout(context.Background())

	if len(nav.targets) != 0 {
		t.Fatalf("expected no redirect from /login, got %v", nav.targets)
	}
}

func TestRequireSessionRedirectsWhenSignedOut(t *testing.T) {
	backend := &fakeBackend{}
	manager, _, nav, _ := newTestManager(t, backend)

	// before resolution completes the guard must stay quiet
	manager.RequireSession()
	if len(nav.targets) != 0 {
		t.Fatalf("expected no redirect before resolution, got %v", nav.targets)
	}

	manager.Resolve(context.Background())
	manager.RequireSession()
	if len(nav.targets) != 1 || nav.targets[0] != "/login" {
		t.Fatalf("expected redirect to /login, got %v", nav.targets)
	}
}

func TestStaleResolveCannotRevivePostLogoutState(t *testing.T) {
	backend := &fakeBackend{
		validIDToken: "id-5",
		session:      Session{UserID: "u1"},
	}
	manager, store, _, _ := newTestManager(t, backend)
	store.SetTokenSet(TokenSet{AccessToken: "acc-5", IDToken: "id-5", RefreshToken: "ref-5", TokenType: "Bearer", ExpiresIn: 3600})

	sm := manager
	sm.mu.Lock()
	staleGen := sm.generation
	sm.mu.Unlock()

	manager.Logout(context.Background())

	// a resolution step carrying a pre-logout generation must be discarded
	sm.adoptSession(staleGen, &Session{UserID: "ghost"})
	if manager.Session() != nil {
		t.Fatal("stale adoption should not restore a session after logout")
	}
}
