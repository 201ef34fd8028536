package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubPinger struct {
	err error
}

func (p stubPinger) PingContext(_ context.Context) error {
	return p.err
}

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		db         Pinger
		method     string
		wantStatus int
		wantHealth string
	}{
		{
			name:       "healthy",
			db:         stubPinger{},
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
			wantHealth: "healthy",
		},
		{
			name:       "database down",
			db:         stubPinger{err: errors.New("database is closed")},
			method:     http.MethodGet,
			wantStatus: http.StatusServiceUnavailable,
			wantHealth: "unhealthy",
		},
		{
			name:       "no database",
			db:         nil,
			method:     http.MethodGet,
			wantStatus: http.StatusServiceUnavailable,
			wantHealth: "unhealthy",
		},
		{
			name:       "method not allowed",
			db:         stubPinger{},
			method:     http.MethodPost,
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(tt.db)
			req := httptest.NewRequest(tt.method, "/api/health", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.wantHealth == "" {
				return
			}

			var got HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if got.Status != tt.wantHealth {
				t.Errorf("ServeHTTP() status = %q, want %q", got.Status, tt.wantHealth)
			}
			if tt.wantHealth == "unhealthy" && len(got.Issues) == 0 {
				t.Error("ServeHTTP() unhealthy response should list issues")
			}
		})
	}
}
