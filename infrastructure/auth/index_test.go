package auth

import (
	"testing"

	"stockroom.io/entities"
	"stockroom.io/infrastructure/logger"
)

func setTestKeys(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_ISSUER", "stockroom-test")
	t.Setenv("JWT_SIGNING_KEY", "test-signing-key")
	logger.InitializeLogger()
}

func testUser() *entities.User {
	return &entities.User{
		ID:       "01HXAMPLEULID0000000000000",
		Email:    "jo@stockroom.test",
		Name:     "Jo Warehouse",
		Groups:   []string{"admin"},
		UserType: "staff",
	}
}

func TestGenerateTokenSetMintsAllThreeTokens(t *testing.T) {
	setTestKeys(t)

	tokens, err := GenerateTokenSet(testUser())
	if err != nil {
		t.Fatalf("GenerateTokenSet: %v", err)
	}
	if tokens.AccessToken == "" || tokens.IDToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("expected all three tokens, got %+v", tokens)
	}
	if tokens.TokenType != "Bearer" {
		t.Errorf("token type = %q, want Bearer", tokens.TokenType)
	}
	if tokens.ExpiresIn <= 0 {
		t.Errorf("expires_in = %d, want positive", tokens.ExpiresIn)
	}
}

func TestDecodeAuthTokenRoundTrip(t *testing.T) {
	setTestKeys(t)

	tokens, err := GenerateTokenSet(testUser())
	if err != nil {
		t.Fatalf("GenerateTokenSet: %v", err)
	}

	claims, err := DecodeAuthToken(tokens.IDToken, IDToken)
	if err != nil {
		t.Fatalf("DecodeAuthToken: %v", err)
	}
	if claims["userID"] != "01HXAMPLEULID0000000000000" {
		t.Errorf("userID = %v", claims["userID"])
	}
	if claims["email"] != "jo@stockroom.test" {
		t.Errorf("email = %v", claims["email"])
	}
	if claims["tokenType"] != string(IDToken) {
		t.Errorf("tokenType = %v", claims["tokenType"])
	}
}

func TestDecodeAuthTokenRejectsWrongTokenType(t *testing.T) {
	setTestKeys(t)

	tokens, err := GenerateTokenSet(testUser())
	if err != nil {
		t.Fatalf("GenerateTokenSet: %v", err)
	}
	if _, err := DecodeAuthToken(tokens.RefreshToken, AccessToken); err == nil {
		t.Fatal("expected refresh token to be rejected where an access token is required")
	}
	if _, err := DecodeAuthToken(tokens.AccessToken, IDToken); err == nil {
		t.Fatal("expected access token to be rejected where an id token is required")
	}
}

func TestDecodeAuthTokenRejectsForeignSignature(t *testing.T) {
	setTestKeys(t)

	tokens, err := GenerateTokenSet(testUser())
	if err != nil {
		t.Fatalf("GenerateTokenSet: %v", err)
	}

	t.Setenv("JWT_SIGNING_KEY", "a-different-key")
	if _, err := DecodeAuthToken(tokens.AccessToken, AccessToken); err == nil {
		t.Fatal("expected token signed with another key to be rejected")
	}
}
