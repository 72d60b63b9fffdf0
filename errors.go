package trackplate

import (
	"errors"
)

var (
	// ErrInvalidArgument reports missing, conflicting, or out-of-range
	// generator parameters: non-positive gauge, length, or radius, a zero
	// [Sweep], or a negative segment count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDegenerate reports an input combination that would force a division
	// by zero while resolving the swept angle or the clothoid curvature
	// scale.
	ErrDegenerate = errors.New("numerically degenerate input")
)
