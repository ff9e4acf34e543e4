package dto

// HealthResponse represents the response structure for health checks
type HealthResponse struct {
	Status  string `json:"status"`
	TS      string `json:"ts,omitempty"`
	Details any    `json:"details,omitempty"`
}
