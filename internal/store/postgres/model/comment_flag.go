package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Dafi-web/events-sub000/domain"
)

type CommentFlag struct {
	CommentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    string    `gorm:"primaryKey"`
	Reason    string
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (CommentFlag) TableName() string {
	return "comment_flags"
}

func (m *CommentFlag) FromDomain(f *domain.CommentFlag) error {
	commentID, err := uuid.Parse(f.CommentID)
	if err != nil {
		return fmt.Errorf("parsing comment id %q: %w", f.CommentID, err)
	}

	m.CommentID = commentID
	m.UserID = f.User
	m.Reason = f.Reason
	m.CreatedAt = f.CreatedAt

	return nil
}

func (m *CommentFlag) ToDomain() *domain.CommentFlag {
	return &domain.CommentFlag{
		CommentID: m.CommentID.String(),
		User:      m.UserID,
		Reason:    m.Reason,
		CreatedAt: m.CreatedAt,
	}
}
