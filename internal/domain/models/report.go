package models

import "time"

// Report aggregates the statuses requested by one viewer at one instant.
type Report struct {
	Timezone    string         `json:"timezone"`
	GeneratedAt time.Time      `json:"generated_at"`
	ViewerName  string         `json:"viewer_name,omitempty"`
	Statuses    []MarketStatus `json:"statuses"`
	OpenCount   int            `json:"open_count"`
	TotalCount  int            `json:"total_count"`
	Text        string         `json:"-"`
	HTML        string         `json:"-"`
}
