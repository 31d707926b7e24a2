package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hirassa/screening-api/data"
	"github.com/hirassa/screening-api/pharmacies"
)

type mockDirectory struct {
	pingErr   error
	pingCalls int
}

func (m *mockDirectory) ListPharmacies(ctx context.Context, cityCode string) ([]pharmacies.Pharmacy, error) {
	return nil, nil
}

func (m *mockDirectory) HasCredential() bool {
	return true
}

func (m *mockDirectory) Ping(ctx context.Context) error {
	m.pingCalls++
	return m.pingErr
}

func TestMonitorStartRunsInitialProbe(t *testing.T) {
	store := data.NewStatusContainer()
	directory := &mockDirectory{}

	monitor := NewMonitor(store, directory)
	if err := monitor.Start(); err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}
	defer monitor.Stop()

	if directory.pingCalls == 0 {
		t.Error("expected an initial probe on Start")
	}

	reachable, checkedAt := store.UpstreamStatus()
	if !reachable {
		t.Error("expected upstream reported reachable")
	}
	if checkedAt.IsZero() {
		t.Error("expected probe time recorded")
	}
}

func TestMonitorRecordsFailedProbe(t *testing.T) {
	store := data.NewStatusContainer()
	directory := &mockDirectory{pingErr: errors.New("connection refused")}

	monitor := NewMonitor(store, directory)
	monitor.probe()

	reachable, checkedAt := store.UpstreamStatus()
	if reachable {
		t.Error("expected upstream reported unreachable")
	}
	if time.Since(checkedAt) > time.Minute {
		t.Error("expected a recent probe time")
	}
}
