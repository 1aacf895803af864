package sdk

import (
	"path/filepath"
	"testing"
)

func TestMemoryTokenStoreReplacesWholeSet(t *testing.T) {
	store := NewMemoryTokenStore()
	first := TokenSet{AccessToken: "a1", IDToken: "i1", RefreshToken: "r1", TokenType: "Bearer", ExpiresIn: 3600}
	second := TokenSet{AccessToken: "a2", IDToken: "i2", RefreshToken: "r2", TokenType: "Bearer", ExpiresIn: 7200}

	if err := store.SetTokenSet(first); err != nil {
		t.Fatalf("SetTokenSet: %v", err)
	}
	if err := store.SetTokenSet(second); err != nil {
		t.Fatalf("SetTokenSet: %v", err)
	}
	got, ok := store.TokenSet()
	if !ok {
		t.Fatal("expected stored tokens")
	}
	if got != second {
		t.Fatalf("got %+v, want %+v", got, second)
	}
}

func TestMemoryTokenStoreClearIsIdempotent(t *testing.T) {
	store := NewMemoryTokenStore()
	store.SetTokenSet(TokenSet{AccessToken: "a"})
	for i := 0; i < 3; i++ {
		if err := store.Clear(); err != nil {
			t.Fatalf("Clear: %v", err)
		}
	}
	if _, ok := store.TokenSet(); ok {
		t.Fatal("expected empty store")
	}
}

func TestFileTokenStoreCreatesParentDirectory(t *testing.T) {
	// DefaultTokenPath points inside a config subdirectory that may not
	// exist yet on a fresh machine
	path := filepath.Join(t.TempDir(), "stockroom", "tokens.json")
	store := NewFileTokenStore(path)

	tokens := TokenSet{AccessToken: "a1", IDToken: "i1", RefreshToken: "r1", TokenType: "Bearer", ExpiresIn: 3600}
	if err := store.SetTokenSet(tokens); err != nil {
		t.Fatalf("SetTokenSet: %v", err)
	}
	got, ok := store.TokenSet()
	if !ok || got != tokens {
		t.Fatalf("got %+v ok=%v, want %+v", got, ok, tokens)
	}
}

func TestFileTokenStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	store := NewFileTokenStore(path)

	if _, ok := store.TokenSet(); ok {
		t.Fatal("expected empty store before first write")
	}

	tokens := TokenSet{AccessToken: "a1", IDToken: "i1", RefreshToken: "r1", TokenType: "Bearer", ExpiresIn: 3600}
	if err := store.SetTokenSet(tokens); err != nil {
		t.Fatalf("SetTokenSet: %v", err)
	}

	reopened := NewFileTokenStore(path)
	got, ok := reopened.TokenSet()
	if !ok || got != tokens {
		t.Fatalf("got %+v ok=%v, want %+v", got, ok, tokens)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear twice: %v", err)
	}
	if _, ok := store.TokenSet(); ok {
		t.Fatal("expected empty store after clear")
	}
}
