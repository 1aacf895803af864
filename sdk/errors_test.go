package sdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNormalizeError(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		serverMessage string
		serverErrors  []string
		want          string
	}{
		{"bad request uses fixed message", 400, "bind failed on field x", nil, "the request could not be understood by the server"},
		{"not found uses fixed message", 404, "", nil, "the requested resource was not found"},
		{"validation uses fixed message", 422, "payload validation failed", []string{"sku is required"}, "the submitted data failed validation"},
		{"server error uses fixed message", 500, "panic in handler", nil, "the server encountered an internal error"},
		{"other status passes server message through", 401, "invalid email or password", nil, "invalid email or password"},
		{"other status without message gets generic text", 418, "", nil, "an unexpected error occurred"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeError(tt.status, tt.serverMessage, tt.serverErrors)
			if got.Message != tt.want {
				t.Errorf("message = %q, want %q", got.Message, tt.want)
			}
			if got.Status != tt.status {
				t.Errorf("status = %d, want %d", got.Status, tt.status)
			}
			if len(got.Errors) != len(tt.serverErrors) {
				t.Errorf("errors = %v, want %v", got.Errors, tt.serverErrors)
			}
		})
	}
}

func TestTransportFailureProducesNoResponseError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	err = client.do(context.Background(), http.MethodGet, "/vendors", "", nil, nil)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != noResponseMessage {
		t.Errorf("message = %q, want %q", apiErr.Message, noResponseMessage)
	}
	if apiErr.Status != 0 {
		t.Errorf("status = %d, want 0", apiErr.Status)
	}
}

func TestServerRejectionUsesFixedValidationMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusUnprocessableEntity, "validation failed", nil)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	err = client.do(context.Background(), http.MethodPost, "/vendors", "", map[string]string{}, nil)
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", apiErr.Status)
	}
	if apiErr.Message != "the submitted data failed validation" {
		t.Errorf("message = %q", apiErr.Message)
	}
}
