package discovery

import "errors"

var (
	// ErrInvalidWindow is returned when a signature window below 1 is requested.
	ErrInvalidWindow = errors.New("signature window must be at least 1")
	// ErrInvalidToken is returned by Discover for a malformed token address.
	ErrInvalidToken = errors.New("invalid token address")
	// ErrInvalidPolicy is returned by RetryPolicy.Validate.
	ErrInvalidPolicy = errors.New("invalid retry policy")
)
