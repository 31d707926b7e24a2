package data

import (
	"sync"
	"testing"
	"time"
)

func TestStatusContainerZeroValues(t *testing.T) {
	sc := NewStatusContainer()

	reachable, checkedAt := sc.UpstreamStatus()
	if reachable {
		t.Error("new container should not report upstream reachable")
	}
	if !checkedAt.IsZero() {
		t.Error("new container should have zero probe time")
	}
	if !sc.ServerStartTime().IsZero() {
		t.Error("new container should have zero start time")
	}
}

func TestStatusContainerRoundTrip(t *testing.T) {
	sc := NewStatusContainer()

	probeTime := time.Now()
	sc.SetUpstreamStatus(true, probeTime)

	reachable, checkedAt := sc.UpstreamStatus()
	if !reachable {
		t.Error("expected upstream reachable")
	}
	if !checkedAt.Equal(probeTime) {
		t.Errorf("checkedAt = %v, want %v", checkedAt, probeTime)
	}

	start := time.Now()
	sc.SetServerStartTime(start)
	if !sc.ServerStartTime().Equal(start) {
		t.Errorf("ServerStartTime = %v, want %v", sc.ServerStartTime(), start)
	}
}

func TestStatusContainerConcurrentAccess(t *testing.T) {
	sc := NewStatusContainer()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			sc.SetUpstreamStatus(i%2 == 0, time.Now())
		}(i)
		go func() {
			defer wg.Done()
			sc.UpstreamStatus()
		}()
	}
	wg.Wait()

	// Writers finished, a read must return a consistent pair
	_, checkedAt := sc.UpstreamStatus()
	if checkedAt.IsZero() {
		t.Error("expected a probe time after concurrent writes")
	}
}
