package models

// SearchLimitResponse is a read-only snapshot of the caller's quota.
type SearchLimitResponse struct {
	CanSearch         bool   `json:"can_search"`
	Tier              string `json:"tier"`
	SearchesRemaining int    `json:"searches_remaining"`
	Message           string `json:"message"`
}

// TrackSearchRequest reports one executed search. Collection is omitted from
// the wire when empty; ResultCount is always sent and defaults to zero,
// matching the backend schema's default.
type TrackSearchRequest struct {
	Query       string `json:"query"`
	Collection  string `json:"collection,omitempty"`
	ResultCount int    `json:"result_count"`
}

// TrackSearchResponse acknowledges a tracked search with updated counters.
type TrackSearchResponse struct {
	Message           string `json:"message"`
	SearchCount       int    `json:"search_count"`
	SearchesRemaining int    `json:"searches_remaining"`
}

// PlatformStats is the admin-only aggregate view of the user base.
type PlatformStats struct {
	TotalUsers            int `json:"total_users"`
	FreeUsers             int `json:"free_users"`
	ProUsers              int `json:"pro_users"`
	TotalSearches         int `json:"total_searches"`
	UsersAtLimit          int `json:"users_at_limit"`
	ConversionOpportunity int `json:"conversion_opportunity"`
}
