package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newGatedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RouteGateMiddleware("/login"))
	router.NoRoute(func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	return router
}

func TestRouteGateRedirectsWithoutCookie(t *testing.T) {
	router := newGatedRouter()

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"dashboard root is gated", "/", http.StatusFound},
		{"app page is gated", "/vendors", http.StatusFound},
		{"nested app page is gated", "/products/P-001/edit", http.StatusFound},
		{"login page is exempt", "/login", http.StatusOK},
		{"api routes are exempt", "/api/v1/auth/login", http.StatusOK},
		{"assets are exempt", "/assets/app.css", http.StatusOK},
		{"favicon is exempt", "/favicon.ico", http.StatusOK},
		{"health check is exempt", "/ping", http.StatusOK},
		{"login prefix without boundary is gated", "/loginish", http.StatusFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(recorder, request)
			if recorder.Code != tt.wantStatus {
				t.Errorf("GET %s = %d, want %d", tt.path, recorder.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusFound {
				if location := recorder.Header().Get("Location"); location != "/login" {
					t.Errorf("Location = %q, want /login", location)
				}
			}
		})
	}
}

func TestRouteGatePassesWithCookie(t *testing.T) {
	router := newGatedRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/vendors", nil)
	request.AddCookie(&http.Cookie{Name: RouteGateCookieName, Value: "any-value"})
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected pass-through with cookie, got %d", recorder.Code)
	}
}

func TestRouteGateRejectsEmptyCookieValue(t *testing.T) {
	router := newGatedRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/vendors", nil)
	request.AddCookie(&http.Cookie{Name: RouteGateCookieName, Value: ""})
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusFound {
		t.Fatalf("expected redirect for empty cookie, got %d", recorder.Code)
	}
}
