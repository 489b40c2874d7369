package shared

const (
	ClientID = "client_id"

	MaxNameLength    = 100
	MaxMessageLength = 500
)
