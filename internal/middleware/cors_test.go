package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorsMiddleware(t *testing.T) {
	allowed := []string{"https://fitstats.example.com", "http://localhost:5173/"}

	testCases := []struct {
		name           string
		origin         string
		method         string
		expectCors     bool
		expectNext     bool
		expectedStatus int
	}{
		{
			name:           "AllowedOrigin",
			origin:         "https://fitstats.example.com",
			method:         http.MethodPost,
			expectCors:     true,
			expectNext:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "AllowedOriginTrailingSlashInConfig",
			origin:         "http://localhost:5173",
			method:         http.MethodGet,
			expectCors:     true,
			expectNext:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Preflight",
			origin:         "https://fitstats.example.com",
			method:         http.MethodOptions,
			expectCors:     true,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "NotAllowedOrigin",
			origin:         "https://www.notallowed.com",
			method:         http.MethodPost,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "NoOrigin",
			method:         http.MethodGet,
			expectNext:     true,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req, err := http.NewRequest(tc.method, "/analytics/weight", nil)
			require.NoError(t, err)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})
			Cors(allowed)(nextHandler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Equal(t, tc.expectNext, nextCalled)
			if tc.expectCors {
				assert.Equal(t, tc.origin, rr.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestCorsMiddleware_Wildcard(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/onerm", nil)
	req.Header.Set("Origin", "https://anywhere.example.org")

	Cors([]string{"*"})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "https://anywhere.example.org", rr.Header().Get("Access-Control-Allow-Origin"))
}
