// internal/domain/homework/errors.go
package homework

import (
	"errors"
	"fmt"
)

// Failure kinds surfaced by the polling loop. Callers match them with errors.Is.
var (
	ErrFetch         = errors.New("failed to fetch homework statuses")
	ErrSchema        = errors.New("invalid api response")
	ErrUnknownStatus = errors.New("unknown homework status")
	ErrDelivery      = errors.New("failed to deliver notification")
	ErrConfiguration = errors.New("invalid configuration")
)

// Distinct schema failures. Each one is also an ErrSchema.
var (
	ErrResponseNotMapping  = fmt.Errorf("%w: not a mapping", ErrSchema)
	ErrMissingHomeworks    = fmt.Errorf("%w: missing homeworks key", ErrSchema)
	ErrHomeworksNotList    = fmt.Errorf("%w: homeworks not a list", ErrSchema)
	ErrHomeworkNotMapping  = fmt.Errorf("%w: homework is not a mapping", ErrSchema)
	ErrMissingHomeworkName = fmt.Errorf("%w: missing homework_name", ErrSchema)
	ErrMissingStatus       = fmt.Errorf("%w: missing status", ErrSchema)
)
