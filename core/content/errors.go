package content

import (
	"fmt"

	"github.com/Dafi-web/events-sub000/domain"
)

var (
	ErrInvalidContentType = fmt.Errorf("%w: content type must be one of %v", domain.ErrValidation, domain.ContentTypes)
	ErrEmptyContentID     = fmt.Errorf("%w: content id can't be empty", domain.ErrValidation)
	ErrContentNotFound    = fmt.Errorf("%w: content not found", domain.ErrNotFound)
)
