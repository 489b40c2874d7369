package dto

type RateLimitDecision struct {
	Allowed     bool  `json:"allowed"`
	RemainingMs int64 `json:"remaining_ms"`
}
