package model

import "net/http"

// HealthStatus is the state of one component or of the whole application
type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// ComponentHealthStatus is the health of a single dependency
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse aggregates the database and cache health checks
type HealthResponse struct {
	Status   HealthStatus          `json:"status"`
	Database ComponentHealthStatus `json:"database"`
	Cache    ComponentHealthStatus `json:"cache"`
}

// NewHealthResponse derives the overall status. A DOWN component pulls it down, UNKNOWN does not.
func NewHealthResponse(database, cache ComponentHealthStatus) HealthResponse {
	status := StatusUp
	if database.Status == StatusDown || cache.Status == StatusDown {
		status = StatusDown
	}
	return HealthResponse{
		Status:   status,
		Database: database,
		Cache:    cache,
	}
}

// HTTPStatus is 503 while the application is DOWN so load balancers can drain the instance
func (h HealthResponse) HTTPStatus() int {
	if h.Status == StatusDown {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

// DisabledComponent reports a component that is switched off by configuration
func DisabledComponent() ComponentHealthStatus {
	return ComponentHealthStatus{
		Status:  StatusUnknown,
		Details: map[string]string{"message": "disabled"},
	}
}
