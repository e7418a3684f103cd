package comment

import (
	"fmt"

	"github.com/Dafi-web/events-sub000/domain"
)

var (
	ErrEmptyCommentCreator   = fmt.Errorf("%w: comment creator (\"created_by\") can't be empty", domain.ErrUnauthorized)
	ErrEmptyCommentBody      = fmt.Errorf("%w: comment can't be empty", domain.ErrValidation)
	ErrCommentBodyTooLong    = fmt.Errorf("%w: comment is too long", domain.ErrValidation)
	ErrCommentNotFound       = fmt.Errorf("%w: comment not found", domain.ErrNotFound)
	ErrParentNotFound        = fmt.Errorf("%w: parent comment not found", domain.ErrNotFound)
	ErrReplyToReply          = fmt.Errorf("%w: replies can only be posted to top-level comments", domain.ErrConflict)
	ErrParentNotActive       = fmt.Errorf("%w: parent comment is not active", domain.ErrConflict)
	ErrParentContentMismatch = fmt.Errorf("%w: parent comment belongs to another content item", domain.ErrConflict)
	ErrParentUnavailable     = fmt.Errorf("%w: parent comment can no longer receive replies", domain.ErrConflict)
	ErrNotTopLevel           = fmt.Errorf("%w: comment is a reply and has no replies", domain.ErrConflict)
	ErrCommentDeleted        = fmt.Errorf("%w: comment is deleted", domain.ErrConflict)
	ErrInvalidTransition     = fmt.Errorf("%w: invalid comment status transition", domain.ErrConflict)

	ErrEmptyActor              = fmt.Errorf("%w: authenticated user is required", domain.ErrUnauthorized)
	ErrModerationNotAllowed    = fmt.Errorf("%w: only moderators can moderate comments", domain.ErrForbidden)
	ErrInvalidModerationAction = fmt.Errorf("%w: moderation action must be one of hide, delete, restore", domain.ErrValidation)
	ErrEmptyFlagReason         = fmt.Errorf("%w: flag reason can't be empty", domain.ErrValidation)
	ErrFlagReasonTooLong       = fmt.Errorf("%w: flag reason is too long", domain.ErrValidation)
)
