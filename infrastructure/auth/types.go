package auth

type TokenType string

const (
	AccessToken  TokenType = "access_token"
	IDToken      TokenType = "id_token"
	RefreshToken TokenType = "refresh_token"
)

type ClaimsData struct {
	UserID    string
	Email     string
	Name      string
	Groups    []string
	UserType  string
	TokenType TokenType
	IssuedAt  int64
	ExpiresAt int64
}

// TokenSet is minted as a unit. The three tokens are always issued together
// and replace each other together.
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}
