package view

import (
	"fmt"

	"github.com/Dafi-web/events-sub000/domain"
)

var ErrEmptySessionToken = fmt.Errorf("%w: session token can't be empty", domain.ErrValidation)
