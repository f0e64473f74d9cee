package entity

// HealthState represents the classified outcome of an API health probe
type HealthState string

const (
	HealthStateHealthy         HealthState = "healthy"
	HealthStateUnhealthy       HealthState = "unhealthy"
	HealthStateTimeout         HealthState = "timeout"
	HealthStateConnectionError HealthState = "connection_error"
	HealthStateError           HealthState = "error"
)

// HealthStatus represents the result of probing the sentiment API.
// Every probe produces a HealthStatus; probing never fails outright.
type HealthStatus struct {
	Status     HealthState    `json:"status"`
	APIURL     string         `json:"api_url"`
	Error      string         `json:"error,omitempty"`
	TestResult map[string]any `json:"test_result,omitempty"`
}

// IsHealthy returns true if the probe reached the API and got a valid prediction
func (h *HealthStatus) IsHealthy() bool {
	return h.Status == HealthStateHealthy
}
