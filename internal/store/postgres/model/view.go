package model

import "time"

type ContentView struct {
	ContentType string `gorm:"primaryKey"`
	ContentID   string `gorm:"primaryKey"`
	Views       int64
	UpdatedAt   time.Time
}

func (ContentView) TableName() string {
	return "content_views"
}

type ViewMarker struct {
	SessionHash string `gorm:"primaryKey"`
	ContentType string `gorm:"primaryKey"`
	ContentID   string `gorm:"primaryKey"`
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

func (ViewMarker) TableName() string {
	return "view_markers"
}
