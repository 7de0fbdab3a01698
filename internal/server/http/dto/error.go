package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// HealthResponse reports service health.
type HealthResponse struct {
	Status string `json:"status"`
}
