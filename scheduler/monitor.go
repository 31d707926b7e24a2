// Package scheduler runs the background upstream reachability monitor. The
// monitor only probes for network reachability; pharmacy data itself is
// never cached, every proxy call still hits the upstream directly.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/hirassa/screening-api/interfaces"
	"github.com/hirassa/screening-api/logging"
)

const (
	probeInterval = 5 * time.Minute
	probeTimeout  = 10 * time.Second
)

// Monitor periodically probes the upstream pharmacy API and records the
// result in the status store for health reporting.
type Monitor struct {
	store     interfaces.StatusStore
	directory interfaces.PharmacyDirectory
	scheduler *gocron.Scheduler
}

// NewMonitor creates a monitor with injected dependencies.
func NewMonitor(store interfaces.StatusStore, directory interfaces.PharmacyDirectory) *Monitor {
	return &Monitor{
		store:     store,
		directory: directory,
		scheduler: gocron.NewScheduler(time.UTC),
	}
}

// Start runs an initial probe and schedules periodic ones. The initial probe
// runs synchronously so /health reports a real upstream state from the first
// request onward.
func (m *Monitor) Start() error {
	m.probe()

	_, err := m.scheduler.Every(probeInterval).Do(m.probe)
	if err != nil {
		return fmt.Errorf("failed to schedule upstream probes: %w", err)
	}

	m.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler.
func (m *Monitor) Stop() {
	m.scheduler.Stop()
}

func (m *Monitor) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	err := m.directory.Ping(ctx)
	m.store.SetUpstreamStatus(err == nil, time.Now())

	if err != nil {
		logging.Warn("Upstream probe failed", "error", err)
	}
}
