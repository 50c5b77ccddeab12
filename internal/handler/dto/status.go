package dto

import "time"

// DatabaseStatus reports store connectivity and row counts.
type DatabaseStatus struct {
	Connected bool  `json:"connected"`
	Users     int64 `json:"users"`
	Resources int64 `json:"resources"`
}

// StatusResponse is the /status health envelope.
type StatusResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Database  DatabaseStatus    `json:"database"`
	Services  map[string]string `json:"services"`
}
