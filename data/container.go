// Package data provides thread-safe status storage for the screening API.
// The StatusContainer uses atomic values so concurrent readers never block
// the background monitor that writes to it.
package data

import (
	"sync/atomic"
	"time"

	"github.com/hirassa/screening-api/interfaces"
)

// Compile-time check to ensure StatusContainer implements StatusStore
var _ interfaces.StatusStore = (*StatusContainer)(nil)

type upstreamStatus struct {
	reachable bool
	checkedAt time.Time
}

// StatusContainer holds service status with atomic values, no locking.
type StatusContainer struct {
	upstream  atomic.Value // upstreamStatus
	startTime atomic.Value // time.Time
}

// NewStatusContainer creates a container with zero-value status.
func NewStatusContainer() *StatusContainer {
	sc := &StatusContainer{}
	sc.upstream.Store(upstreamStatus{})
	sc.startTime.Store(time.Time{})
	return sc
}

// SetUpstreamStatus records the result of an upstream reachability probe.
func (sc *StatusContainer) SetUpstreamStatus(reachable bool, checkedAt time.Time) {
	sc.upstream.Store(upstreamStatus{reachable: reachable, checkedAt: checkedAt})
}

// UpstreamStatus returns the latest probe result. A zero checkedAt means no
// probe has completed yet.
func (sc *StatusContainer) UpstreamStatus() (bool, time.Time) {
	if v := sc.upstream.Load(); v != nil {
		if s, ok := v.(upstreamStatus); ok {
			return s.reachable, s.checkedAt
		}
	}
	return false, time.Time{}
}

// SetServerStartTime records when the server started serving.
func (sc *StatusContainer) SetServerStartTime(t time.Time) {
	sc.startTime.Store(t)
}

// ServerStartTime returns the recorded server start time.
func (sc *StatusContainer) ServerStartTime() time.Time {
	if v := sc.startTime.Load(); v != nil {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}
