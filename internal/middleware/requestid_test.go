package middleware

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestID_GeneratesUniqueIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	hexPattern := regexp.MustCompile(`^[0-9a-f]{32}$`)
	seen := make(map[string]bool)

	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get("X-Request-ID")
		if !hexPattern.MatchString(id) {
			t.Fatalf("id %q is not 32 hex chars", id)
		}
		if w.Body.String() != id {
			t.Errorf("context id %q differs from header %q", w.Body.String(), id)
		}
		if seen[id] {
			t.Fatalf("duplicate request id %q", id)
		}
		seen[id] = true
	}
}

func TestRequestID_UpstreamIgnoredByDefault(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-id-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "upstream-id-123" {
		t.Error("untrusted upstream id must not be reused")
	}
}

func TestRequestID_TrustUpstream(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDWithConfig(RequestIDConfig{TrustUpstream: true}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Valid upstream id is reused.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-id-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "upstream-id-123" {
		t.Errorf("trusted upstream id not reused, got %q", got)
	}

	// Invalid upstream id is replaced.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "bad id with spaces!")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got == "bad id with spaces!" || got == "" {
		t.Errorf("invalid upstream id must be replaced, got %q", got)
	}
}

func TestGetRequestID_Unset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if id := GetRequestID(c); id != "" {
		t.Errorf("expected empty id, got %q", id)
	}
}
