package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		method        string
		path          string
		status        int
		providedReqID string
		wantLogFields []string
	}{
		{
			name:   "logs GET request with generated ID",
			method: http.MethodGet,
			path:   "/api/v1/search/realestate-homes",
			status: http.StatusOK,
			wantLogFields: []string{
				"method=GET",
				"path=/api/v1/search/realestate-homes",
				"status=200",
				"duration_ms=",
				"request_id=",
			},
		},
		{
			name:   "logs upstream failure",
			method: http.MethodGet,
			path:   "/api/v1/ad/realestate-homes/1",
			status: http.StatusBadGateway,
			wantLogFields: []string{
				"path=/api/v1/ad/realestate-homes/1",
				"status=502",
			},
		},
		{
			name:          "uses provided request ID",
			method:        http.MethodGet,
			path:          "/test",
			status:        http.StatusOK,
			providedReqID: "custom-req-id-123",
			wantLogFields: []string{
				"request_id=custom-req-id-123",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			if tt.providedReqID != "" {
				req.Header.Set(requestIDHeader, tt.providedReqID)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := RequestLog(logger)(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			err := handler(c)
			require.NoError(t, err)

			logOutput := buf.String()
			for _, field := range tt.wantLogFields {
				assert.Contains(t, logOutput, field)
			}

			// Response should have the request ID header.
			respID := rec.Header().Get(requestIDHeader)
			assert.NotEmpty(t, respID)

			if tt.providedReqID != "" {
				assert.Equal(t, tt.providedReqID, respID)
			}

			// Context should have request_id.
			assert.NotEmpty(t, c.Get("request_id"))
		})
	}
}

func TestRequestLog_Sequence(t *testing.T) {
	t.Parallel()

	// Each step is one request; logged says whether it must add output.
	type step struct {
		status int
		logged bool
	}

	tests := []struct {
		name  string
		path  string
		steps []step
		warn  bool
	}{
		{
			name:  "healthz success logged once",
			path:  "/healthz",
			steps: []step{{200, true}, {200, false}, {200, false}},
		},
		{
			name:  "healthz failures always logged",
			path:  "/healthz",
			steps: []step{{503, true}, {503, true}},
			warn:  true,
		},
		{
			name:  "healthz failure after suppressed success",
			path:  "/healthz",
			steps: []step{{200, true}, {200, false}, {503, true}},
			warn:  true,
		},
		{
			name:  "api path always logged",
			path:  "/api/v1/search/realestate-homes",
			steps: []step{{200, true}, {200, true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			e := echo.New()

			call := 0
			handler := RequestLog(slog.New(slog.NewTextHandler(&buf, nil)))(func(c echo.Context) error {
				status := tt.steps[call].status
				call++
				return c.NoContent(status)
			})

			for i, st := range tt.steps {
				before := buf.Len()

				req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
				require.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))

				if st.logged {
					assert.Greater(t, buf.Len(), before, "step %d should be logged", i)
				} else {
					assert.Equal(t, before, buf.Len(), "step %d should be suppressed", i)
				}
			}

			assert.Equal(t, tt.warn, strings.Contains(buf.String(), "level=WARN"))
		})
	}
}
