package indicator

import "github.com/pkg/errors"

var (
	// ErrEmptySeries is returned when an indicator receives a price series
	// with no bars.
	ErrEmptySeries = errors.New("price series is empty")

	// ErrInvalidParameters is returned when indicator parameters violate
	// their constraints, e.g. a non-positive window or fast >= slow.
	ErrInvalidParameters = errors.New("invalid indicator parameters")
)
