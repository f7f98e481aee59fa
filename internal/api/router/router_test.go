package router

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidbrief/backend/internal/api/handler"
)

type fakeHealthChecker struct {
	err error
}

func (f *fakeHealthChecker) HealthCheck(ctx context.Context) error {
	return f.err
}

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		db         handler.HealthChecker
		wantStatus int
		wantBody   string
	}{
		{
			name:       "healthy with database probe",
			db:         &fakeHealthChecker{},
			wantStatus: http.StatusOK,
			wantBody:   "healthy",
		},
		{
			name:       "no database configured skips probe",
			db:         nil,
			wantStatus: http.StatusOK,
			wantBody:   "healthy",
		},
		{
			name:       "database unreachable",
			db:         &fakeHealthChecker{err: errors.New("connection refused")},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := SetupRouter(&handler.Dependencies{
				Logger: slog.New(slog.DiscardHandler),
				DB:     tt.db,
			})

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantBody, resp["status"])
			assert.Equal(t, "vidbrief-api", resp["service"])
		})
	}
}
