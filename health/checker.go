// Package health provides health reporting for the screening API.
package health

import (
	"math"
	"net/http"
	"time"

	"github.com/hirassa/screening-api/assessment"
	"github.com/hirassa/screening-api/cities"
	"github.com/hirassa/screening-api/interfaces"
)

// Checker reports service health from the status store and the loaded
// catalogs.
type Checker struct {
	store   interfaces.StatusStore
	catalog *assessment.Catalog
}

// NewChecker creates a health checker with injected dependencies.
func NewChecker(store interfaces.StatusStore, catalog *assessment.Catalog) *Checker {
	return &Checker{
		store:   store,
		catalog: catalog,
	}
}

// HealthCheck returns the service status, the response payload and the HTTP
// status to serve it with. An unreachable upstream degrades the service but
// does not fail it: catalog and scoring endpoints keep working.
func (c *Checker) HealthCheck() (status string, data map[string]any, httpStatus int) {
	reachable, checkedAt := c.store.UpstreamStatus()
	uptime := time.Since(c.store.ServerStartTime())

	switch {
	case checkedAt.IsZero():
		// No probe has completed yet
		status = "starting"
		httpStatus = http.StatusOK

	case !reachable:
		status = "degraded"
		httpStatus = http.StatusOK

	default:
		status = "healthy"
		httpStatus = http.StatusOK
	}

	data = map[string]any{
		"status":             status,
		"upstream_reachable": reachable,
		"upstream_last_probe": func() string {
			if checkedAt.IsZero() {
				return ""
			}
			return checkedAt.Format(time.RFC3339)
		}(),
		"assessments":    c.catalog.Len(),
		"cities":         cities.Count(),
		"uptime_seconds": math.Round(uptime.Seconds()*10) / 10,
	}

	return status, data, httpStatus
}
