package domain

import "time"

type ViewResult struct {
	Counted    bool  `json:"counted" yaml:"counted"`
	TotalViews int64 `json:"total_views" yaml:"total_views"`
}

// ViewMarker records that a session has been counted for a content item
// until ExpiresAt. SessionHash is a digest of the session token; raw tokens
// are never stored.
type ViewMarker struct {
	Content     ContentRef
	SessionHash string
	SeenAt      time.Time
	ExpiresAt   time.Time
}
