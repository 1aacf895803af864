package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// RouteGateCookieName is the cookie the edge gate reads. The client mirrors
// the access token into it after every token set update.
const RouteGateCookieName = "auth-token"

const requestTimeout = 30 * time.Second

// TokenSet is the unit of credential issuance. All four fields are always
// replaced together; a partially updated set is never a valid state.
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Session is the resolved identity of the signed in user, distinct from the
// raw tokens it was derived from.
type Session struct {
	UserID   string   `json:"user_id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Groups   []string `json:"groups"`
	UserType string   `json:"user_type"`
}

// Client talks to the Stockroom REST API. Cookies are carried on every
// request so the edge gate sees the mirrored access token.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// NewClient builds a client rooted at the API base, including the version
// prefix, e.g. https://stockroom.io/api/v1.
func NewClient(baseURL string) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: parsed,
		httpClient: &http.Client{
			Timeout: requestTimeout,
			Jar:     jar,
		},
	}, nil
}

type responseEnvelope struct {
	Message string          `json:"message"`
	Body    json.RawMessage `json:"body"`
	Errors  []string        `json:"errors"`
}

// do runs one request and folds every possible failure into *APIError.
// A nil return means out (when non-nil) holds the decoded response body.
func (c *Client) do(ctx context.Context, method string, path string, bearer string, payload any, out any) error {
	var bodyReader *bytes.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return &APIError{Message: err.Error()}
		}
		bodyReader = bytes.NewReader(encoded)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	endpoint := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), bodyReader)
	if err != nil {
		return &APIError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: noResponseMessage}
	}
	defer resp.Body.Close()

	var envelope responseEnvelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&envelope)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return normalizeError(resp.StatusCode, envelope.Message, envelope.Errors)
	}
	if out == nil {
		return nil
	}
	if decodeErr != nil {
		return &APIError{Message: "malformed response from server", Status: resp.StatusCode}
	}
	if err := json.Unmarshal(envelope.Body, out); err != nil {
		return &APIError{Message: "malformed response from server", Status: resp.StatusCode}
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (c *Client) login(ctx context.Context, email string, password string) (*TokenSet, error) {
	var tokens TokenSet
	err := c.do(ctx, http.MethodPost, "/auth/login", "", loginRequest{Email: email, Password: password}, &tokens)
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

func (c *Client) fetchIdentity(ctx context.Context, idToken string) (*Session, error) {
	var session Session
	err := c.do(ctx, http.MethodGet, "/auth/me", idToken, nil, &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) refresh(ctx context.Context, refreshToken string) (*TokenSet, error) {
	var tokens TokenSet
	err := c.do(ctx, http.MethodPost, "/auth/refresh", "", refreshRequest{RefreshToken: refreshToken}, &tokens)
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

func (c *Client) revoke(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", accessToken, nil, nil)
}

// mirrorRouteGateCookie writes the access token where the edge gate can see
// it. Callers must do this before any request that could trigger a redirect.
func (c *Client) mirrorRouteGateCookie(accessToken string) {
	c.httpClient.Jar.SetCookies(c.baseURL, []*http.Cookie{{
		Name:  RouteGateCookieName,
		Value: accessToken,
		Path:  "/",
	}})
}

// expireRouteGateCookie clears the cookie by overwriting it with an already
// expired one.
func (c *Client) expireRouteGateCookie() {
	c.httpClient.Jar.SetCookies(c.baseURL, []*http.Cookie{{
		Name:    RouteGateCookieName,
		Value:   "",
		Path:    "/",
		MaxAge:  -1,
		Expires: time.Unix(0, 0),
	}})
}

// RouteGateCookie reports the current mirrored cookie value, if any.
func (c *Client) RouteGateCookie() (string, bool) {
	for _, cookie := range c.httpClient.Jar.Cookies(c.baseURL) {
		if cookie.Name == RouteGateCookieName {
			return cookie.Value, true
		}
	}
	return "", false
}
