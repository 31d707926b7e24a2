// Package interfaces defines the contracts between the HTTP layer, the
// upstream pharmacy client and the status store, so handlers and the
// background monitor can be tested against mocks.
package interfaces

import (
	"context"
	"time"

	"github.com/hirassa/screening-api/pharmacies"
)

// PharmacyDirectory is the upstream client contract used by the proxy
// handler and the reachability monitor.
type PharmacyDirectory interface {
	// ListPharmacies fetches the pharmacies for a city code, in upstream order.
	ListPharmacies(ctx context.Context, cityCode string) ([]pharmacies.Pharmacy, error)

	// HasCredential reports whether the upstream API key is configured.
	HasCredential() bool

	// Ping checks network-level reachability of the upstream host.
	Ping(ctx context.Context) error
}

// StatusStore provides thread-safe access to service status for health
// reporting. Implementations must be safe for concurrent use.
type StatusStore interface {
	SetUpstreamStatus(reachable bool, checkedAt time.Time)
	UpstreamStatus() (reachable bool, checkedAt time.Time)

	SetServerStartTime(t time.Time)
	ServerStartTime() time.Time
}
