package models

type HealthResponse struct {
	Status  string `json:"status"`
	Device  string `json:"device"`
	Version string `json:"version"`
}

// IndexResponse describes the API at the root path.
type IndexResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}
