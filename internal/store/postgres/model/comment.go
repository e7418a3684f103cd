package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Dafi-web/events-sub000/domain"
)

type Comment struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ContentType string
	ContentID   string
	ParentID    *uuid.UUID `gorm:"type:uuid"`
	CreatedBy   string
	Body        string
	Status      string
	Moderation  datatypes.JSON
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	FlagCount int           `gorm:"->;-:migration"`
	Flags     []CommentFlag `gorm:"foreignKey:CommentID"`
}

func (Comment) TableName() string {
	return "comments"
}

func (m *Comment) FromDomain(c *domain.Comment) error {
	if c.ID != "" {
		id, err := uuid.Parse(c.ID)
		if err != nil {
			return fmt.Errorf("parsing comment id %q: %w", c.ID, err)
		}
		m.ID = id
	}

	if c.ParentID != "" {
		parentID, err := uuid.Parse(c.ParentID)
		if err != nil {
			return fmt.Errorf("parsing parent comment id %q: %w", c.ParentID, err)
		}
		m.ParentID = &parentID
	}

	if c.Moderation != nil {
		moderation, err := json.Marshal(c.Moderation)
		if err != nil {
			return fmt.Errorf("marshalling moderation: %w", err)
		}
		m.Moderation = datatypes.JSON(moderation)
	}

	m.ContentType = string(c.ContentType)
	m.ContentID = c.ContentID
	m.CreatedBy = c.CreatedBy
	m.Body = c.Body
	m.Status = string(c.Status)
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt

	return nil
}

func (m *Comment) ToDomain() (*domain.Comment, error) {
	c := &domain.Comment{
		ID:          m.ID.String(),
		ContentType: domain.ContentType(m.ContentType),
		ContentID:   m.ContentID,
		CreatedBy:   m.CreatedBy,
		Body:        m.Body,
		Status:      domain.CommentStatus(m.Status),
		FlagCount:   m.FlagCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.ParentID != nil {
		c.ParentID = m.ParentID.String()
	}

	if len(m.Moderation) > 0 && string(m.Moderation) != "null" {
		var moderation domain.Moderation
		if err := json.Unmarshal(m.Moderation, &moderation); err != nil {
			return nil, fmt.Errorf("parsing moderation of comment %q: %w", c.ID, err)
		}
		c.Moderation = &moderation
	}

	for _, f := range m.Flags {
		c.Flags = append(c.Flags, *f.ToDomain())
	}

	return c, nil
}
