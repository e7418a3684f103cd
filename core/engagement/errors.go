package engagement

import (
	"fmt"

	"github.com/Dafi-web/events-sub000/domain"
)

var (
	ErrAuthenticationRequired = fmt.Errorf("%w: authenticated user is required", domain.ErrUnauthorized)
	ErrModeratorRequired      = fmt.Errorf("%w: moderator privilege is required", domain.ErrForbidden)
	ErrInvalidTargetKind      = fmt.Errorf("%w: target kind must be either content or comment", domain.ErrValidation)
)
