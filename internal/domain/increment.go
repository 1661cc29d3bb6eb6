package domain

import "fmt"

// Increment selects which component of a version is bumped. Lower-order
// components reset to zero.
type Increment int

const (
	IncrementMajor Increment = iota
	IncrementMinor
	IncrementPatch
)

// incrementTokens is the closed set of accepted command-line tokens.
var incrementTokens = map[string]Increment{
	"major": IncrementMajor,
	"minor": IncrementMinor,
	"patch": IncrementPatch,
}

// ParseIncrement maps a command-line token to an Increment.
func ParseIncrement(s string) (Increment, error) {
	inc, ok := incrementTokens[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q (expected one of: major, minor, patch)", ErrInvalidIncrement, s)
	}
	return inc, nil
}

// String returns the command-line token for the increment.
func (i Increment) String() string {
	switch i {
	case IncrementMajor:
		return "major"
	case IncrementMinor:
		return "minor"
	case IncrementPatch:
		return "patch"
	}
	return fmt.Sprintf("Increment(%d)", int(i))
}
