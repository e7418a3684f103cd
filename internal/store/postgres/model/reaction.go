package model

import (
	"time"

	"github.com/Dafi-web/events-sub000/domain"
)

type Reaction struct {
	TargetType string `gorm:"primaryKey"`
	TargetID   string `gorm:"primaryKey"`
	UserID     string `gorm:"primaryKey"`
	Kind       string
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Reaction) TableName() string {
	return "reactions"
}

func (m *Reaction) Target() domain.ReactionTarget {
	return domain.ReactionTarget{Type: domain.TargetType(m.TargetType), ID: m.TargetID}
}
