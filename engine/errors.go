package engine

import "errors"

// ErrInvalidInput marks a client-correctable input problem (non-positive body
// metrics, negative amounts, unknown enum values). Handlers map it to 400.
var ErrInvalidInput = errors.New("invalid input")

// ErrNotFound marks a lookup miss (no MET entry for the requested key, unknown
// nutrient). Kept distinct from ErrInvalidInput so callers can decide between
// falling back to a default and rejecting the request. Handlers map it to 404.
var ErrNotFound = errors.New("not found")
