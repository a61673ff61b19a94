package keepalive

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProbeRoutes(t *testing.T) {
	srv := New(nil)

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/", "Result: [OK]"},
		{http.MethodHead, "/", ""},
		{http.MethodGet, "/healthz", "ok"},
	}

	for _, tc := range tests {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		srv.Engine().ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s %s: status %d", tc.method, tc.path, rec.Code)
		}
		if tc.body != "" && rec.Body.String() != tc.body {
			t.Errorf("%s %s: body %q, want %q", tc.method, tc.path, rec.Body.String(), tc.body)
		}
	}
}
