package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hirassa/screening-api/assessment"
	"github.com/hirassa/screening-api/config"
	"github.com/hirassa/screening-api/data"
	"github.com/hirassa/screening-api/handlers"
	"github.com/hirassa/screening-api/health"
	"github.com/hirassa/screening-api/logging"
	"github.com/hirassa/screening-api/pharmacies"
)

type stubDirectory struct{}

func (stubDirectory) ListPharmacies(ctx context.Context, cityCode string) ([]pharmacies.Pharmacy, error) {
	return []pharmacies.Pharmacy{}, nil
}

func (stubDirectory) HasCredential() bool {
	return true
}

func (stubDirectory) Ping(ctx context.Context) error {
	return nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	logging.Init("error", "test")

	cfg := &config.Config{
		Port:            "8000",
		Address:         "127.0.0.1",
		Env:             "test",
		LogLevel:        "error",
		MaxRequestBody:  65536,
		MaxHeaderSize:   1048576,
		UpstreamTimeout: 5 * time.Second,
	}

	catalog, err := assessment.Default()
	if err != nil {
		t.Fatalf("failed to load default catalog: %v", err)
	}

	store := data.NewStatusContainer()
	store.SetServerStartTime(time.Now())
	store.SetUpstreamStatus(true, time.Now())

	checker := health.NewChecker(store, catalog)
	handler := handlers.New(catalog, stubDirectory{}, checker)
	return NewServer(cfg, handler)
}

func TestServerRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		url        string
		wantStatus int
	}{
		{name: "pharmacies", method: "GET", url: "/pharmacies?city=RABAT", wantStatus: http.StatusOK},
		{name: "pharmacies missing city", method: "GET", url: "/pharmacies", wantStatus: http.StatusBadRequest},
		{name: "cities", method: "GET", url: "/cities", wantStatus: http.StatusOK},
		{name: "city", method: "GET", url: "/cities/RABAT", wantStatus: http.StatusOK},
		{name: "assessments", method: "GET", url: "/assessments", wantStatus: http.StatusOK},
		{name: "assessment", method: "GET", url: "/assessments/diabetes-risk", wantStatus: http.StatusOK},
		{name: "health", method: "GET", url: "/health", wantStatus: http.StatusOK},
		{name: "metrics", method: "GET", url: "/metrics", wantStatus: http.StatusOK},
		{name: "unknown route", method: "GET", url: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			req.RemoteAddr = "127.0.0.1:9999"
			rec := httptest.NewRecorder()

			srv.Router().ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("%s %s status = %d, want %d", tt.method, tt.url, rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestServerHealthPayload(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/health", nil)
	req.RemoteAddr = "127.0.0.1:9999"
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode health payload: %v", err)
	}
	if payload["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", payload["status"])
	}
}
