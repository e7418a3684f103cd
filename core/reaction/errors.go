package reaction

import (
	"fmt"

	"github.com/Dafi-web/events-sub000/domain"
)

var (
	ErrUnauthenticated     = fmt.Errorf("%w: reacting requires an authenticated user", domain.ErrUnauthorized)
	ErrInvalidTarget       = fmt.Errorf("%w: invalid reaction target", domain.ErrValidation)
	ErrInvalidReactionKind = fmt.Errorf("%w: reaction must be either like or dislike", domain.ErrValidation)
)
