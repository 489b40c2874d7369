package model

// RateLimitRecord is the in-memory fixed window for one client identifier.
// WindowStart is in milliseconds since epoch.
type RateLimitRecord struct {
	Identifier  string `json:"identifier"`
	Count       int    `json:"count"`
	WindowStart int64  `json:"window_start"`
}
