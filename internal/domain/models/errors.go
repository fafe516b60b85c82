package models

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIdentifier is returned for symbols, currencies or country codes no fallback can cover.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrUnavailable means no live, cached or fallback value could be produced.
	ErrUnavailable = errors.New("upstream unavailable")
	// ErrThrottled is an ErrUnavailable caused by the provider rate limiting us.
	ErrThrottled = fmt.Errorf("%w: throttled", ErrUnavailable)
	// ErrDomain rejects numeric inputs outside the valid domain (negative years, non-positive target).
	ErrDomain = errors.New("numeric domain error")
)

// ErrNoData marks a response that arrived but carried nothing usable.
var ErrNoData = fmt.Errorf("%w: no usable data", ErrUnavailable)
