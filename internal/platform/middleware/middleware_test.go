package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newContext(e *echo.Echo) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequestID_Generated(t *testing.T) {
	e := echo.New()
	c, rec := newContext(e)

	h := RequestID()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rid, _ := c.Get("request_id").(string)
	if rid == "" {
		t.Error("expected request_id to be set on context")
	}
	if got := rec.Header().Get(HeaderRequestID); got != rid {
		t.Errorf("expected response header %q, got %q", rid, got)
	}
}

func TestRequestID_HonorsIncomingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-abc-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := RequestID()(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rid, _ := c.Get("request_id").(string); rid != "req-abc-123" {
		t.Errorf("expected incoming request id to be kept, got %q", rid)
	}
}

func TestRecovery_PanicBecomes500(t *testing.T) {
	e := echo.New()
	c, _ := newContext(e)

	h := Recovery(zerolog.Nop())(func(c echo.Context) error { panic("boom") })
	err := h(c)
	if err == nil {
		t.Fatal("expected error from recovered panic")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusInternalServerError {
		t.Errorf("expected HTTP 500 error, got %v", err)
	}
}

func TestRecovery_PassesThroughErrors(t *testing.T) {
	e := echo.New()
	c, _ := newContext(e)

	want := errors.New("handler failed")
	h := Recovery(zerolog.Nop())(func(c echo.Context) error { return want })
	if err := h(c); !errors.Is(err, want) {
		t.Errorf("expected original error, got %v", err)
	}
}

func TestRequestIDFrom_Unset(t *testing.T) {
	e := echo.New()
	c, _ := newContext(e)
	if rid := RequestIDFrom(c); rid != "" {
		t.Errorf("expected empty id without middleware, got %q", rid)
	}
}

func TestRecovery_LogsPanicWithStack(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	e := echo.New()
	c, _ := newContext(e)
	c.Set("request_id", "req-panic-1")

	h := Recovery(logger)(func(c echo.Context) error { panic("boom") })
	if err := h(c); err == nil {
		t.Fatal("expected error from recovered panic")
	}

	out := buf.String()
	if !strings.Contains(out, "req-panic-1") {
		t.Errorf("expected request id in log, got %s", out)
	}
	if !strings.Contains(out, "boom") || !strings.Contains(out, "stack") {
		t.Errorf("expected panic value and stack in log, got %s", out)
	}
}

func TestLogger_SeverityFollowsStatus(t *testing.T) {
	cases := []struct {
		name    string
		handler echo.HandlerFunc
		level   string
	}{
		{"ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, `"level":"info"`},
		{"client error", func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusNotFound, "missing")
		}, `"level":"warn"`},
		{"server error", func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusInternalServerError, "broken")
		}, `"level":"error"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)

			e := echo.New()
			c, _ := newContext(e)
			_ = Logger(logger)(tc.handler)(c)

			if out := buf.String(); !strings.Contains(out, tc.level) {
				t.Errorf("expected %s, got %s", tc.level, out)
			}
		})
	}
}

func TestLogger_PropagatesError(t *testing.T) {
	e := echo.New()
	c, _ := newContext(e)

	want := errors.New("downstream")
	h := Logger(zerolog.Nop())(func(c echo.Context) error { return want })
	if err := h(c); !errors.Is(err, want) {
		t.Errorf("expected original error, got %v", err)
	}
}

func TestRateLimit_AllowsWithinBurst(t *testing.T) {
	e := echo.New()
	cfg := RateLimitConfig{RequestsPerSecond: 1, BurstSize: 3}
	h := RateLimit(cfg)(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for i := 0; i < 3; i++ {
		c, _ := newContext(e)
		if err := h(c); err != nil {
			t.Fatalf("request %d: unexpected error: %v", i, err)
		}
	}
}

func TestRateLimit_RejectsBeyondBurst(t *testing.T) {
	e := echo.New()
	cfg := RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1}
	h := RateLimit(cfg)(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	c, _ := newContext(e)
	if err := h(c); err != nil {
		t.Fatalf("first request should pass: %v", err)
	}

	c2, rec2 := newContext(e)
	err := h(c2)
	if err == nil {
		t.Fatal("expected rate limit error")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusTooManyRequests {
		t.Errorf("expected HTTP 429, got %v", err)
	}
	if rec2.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
}

func TestDefaultRateLimitConfig(t *testing.T) {
	cfg := DefaultRateLimitConfig()
	if cfg.RequestsPerSecond != 100 || cfg.BurstSize != 200 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
