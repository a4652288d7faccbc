package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestID(t *testing.T) {
	long := strings.Repeat("x", maxRequestIDLen+1)
	cases := []struct {
		name    string
		inbound string
		reuse   bool
	}{
		{name: "generated", inbound: "", reuse: false},
		{name: "inbound reused", inbound: "abc-123", reuse: true},
		{name: "oversized inbound replaced", inbound: long, reuse: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(RequestID())
			var seen string
			r.GET("/", func(c *gin.Context) {
				seen = c.GetString(RequestIDKey)
				c.String(200, "ok")
			})
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.inbound != "" {
				req.Header.Set(RequestIDHeader, tc.inbound)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if got == "" {
				t.Fatalf("missing request id header")
			}
			if got != seen {
				t.Fatalf("context id %q != header id %q", seen, got)
			}
			if tc.reuse != (got == tc.inbound) {
				t.Fatalf("reuse=%v but got %q", tc.reuse, got)
			}
		})
	}
}
