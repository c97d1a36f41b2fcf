package responses

// ErrorResponse JSON error body
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path,omitempty"`
	Timestamp string `json:"timestamp"`
}

// HealthCheckResponse asset host health. Dataset holds the file name, its
// status and, when present, size and modification time.
type HealthCheckResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Uptime    string            `json:"uptime"`
	Version   string            `json:"version"`
	Dataset   map[string]string `json:"dataset"`
}
