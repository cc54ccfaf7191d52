package analytics

// Usage pairs a consumed count with its plan ceiling. Limit is -1 for
// unbounded plans.
type Usage struct {
	Used  int64 `json:"used"`
	Limit int64 `json:"limit"`
}

// DailySeries is the dashboard chart shape: parallel arrays keyed by day
// label, ascending. Sparse: days with no activity are omitted.
type DailySeries struct {
	Labels    []string `json:"labels"`
	FaqCounts []int64  `json:"faq_counts"`
	AiCounts  []int64  `json:"ai_counts"`
}

// Snapshot is the full dashboard payload for one client, derived from a
// single consistent read of the event log.
type Snapshot struct {
	TotalInteractions int64       `json:"total_interactions"`
	ActiveUsers       int64       `json:"active_users"`
	FaqUsage          Usage       `json:"faq_usage"`
	AiUsage           Usage       `json:"remaining_ai_requests"`
	NewLeads          int64       `json:"new_leads"`
	Daily             DailySeries `json:"daily"`
}