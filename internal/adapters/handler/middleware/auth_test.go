package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func authTestRouter(expected string) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)

	calls := 0
	r := gin.New()
	r.Use(Auth(expected))
	r.POST("/chat", func(c *gin.Context) {
		calls++
		c.String(http.StatusOK, "reached")
	})

	return r, &calls
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
		wantCalls  int
	}{
		{
			name:       "valid token",
			header:     "Bearer secret",
			wantStatus: http.StatusOK,
			wantBody:   "reached",
			wantCalls:  1,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "No Bearer Header",
		},
		{
			name:       "not a bearer scheme",
			header:     "Basic c2VjcmV0",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "No Bearer Header",
		},
		{
			name:       "empty token",
			header:     "Bearer ",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "No Bearer Header",
		},
		{
			name:       "wrong token",
			header:     "Bearer nope",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Authentication Error",
		},
		{
			name:       "case sensitive comparison",
			header:     "Bearer SECRET",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Authentication Error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, calls := authTestRouter("secret")

			req := httptest.NewRequest(http.MethodPost, "/chat", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, tc.wantBody, w.Body.String())
			assert.Equal(t, tc.wantCalls, *calls)
		})
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("generated when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	})

	t.Run("propagated when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})
}
