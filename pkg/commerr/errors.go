// Package commerr holds the two error categories shared by every generator.
//
// Packages define their own sentinels wrapping one of these, so callers can
// match either the specific failure or the whole category with errors.Is.
package commerr

import "errors"

var (
	// ErrConfiguration marks an unknown scheme, kind or identifier.
	ErrConfiguration = errors.New("configuration error")

	// ErrDomain marks a mathematically undefined input.
	ErrDomain = errors.New("domain error")
)
