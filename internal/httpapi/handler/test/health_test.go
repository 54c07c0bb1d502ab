package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kenfang/zero2prod/internal/httpapi/handler"
)

func TestHealthCheck(t *testing.T) {
	cases := []struct {
		name   string
		target string
		header map[string]string
	}{
		{name: "plain", target: "/health_check"},
		{name: "with query string", target: "/health_check?verbose=1"},
		{name: "with headers", target: "/health_check", header: map[string]string{"Accept": "application/json"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			handler.HealthCheck(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("expected 200, got %d", w.Code)
			}
			if w.Body.Len() != 0 {
				t.Errorf("expected empty body, got %q", w.Body.String())
			}
		})
	}
}
