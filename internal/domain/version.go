package domain

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version wraps semver.Version for additional methods.
type Version struct {
	*semver.Version
}

// NewVersion creates a new Version from a string.
func NewVersion(s string) (*Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, err
	}
	return &Version{v}, nil
}

// ParseTagLenient parses a tag string into a Version without ever failing.
// An optional leading "v" is stripped, the remainder is split on dots, and
// any missing or non-numeric component reads as zero. An empty tag yields
// v0.0.0.
func ParseTagLenient(tag string) *Version {
	var parts [3]uint64
	trimmed := strings.TrimPrefix(strings.TrimSpace(tag), "v")
	if trimmed != "" {
		for i, field := range strings.SplitN(trimmed, ".", 3) {
			if n, err := strconv.ParseUint(field, 10, 64); err == nil {
				parts[i] = n
			}
		}
	}
	return &Version{semver.New(parts[0], parts[1], parts[2], "", "")}
}

// NextVersion computes the version following latestTag for the given
// increment. An empty latestTag means no prior release exists, so the
// result is the increment applied to v0.0.0. Pure: no process or network
// dependency.
func NextVersion(latestTag string, inc Increment) *Version {
	return ParseTagLenient(latestTag).Bump(inc)
}

// Bump returns a new Version with the component named by inc incremented
// and all lower-order components reset to zero.
func (v *Version) Bump(inc Increment) *Version {
	var next semver.Version
	switch inc {
	case IncrementMajor:
		next = v.IncMajor()
	case IncrementMinor:
		next = v.IncMinor()
	default:
		next = v.IncPatch()
	}
	return &Version{&next}
}

// Compare compares two versions.
func (v *Version) Compare(other *Version) int {
	return v.Version.Compare(other.Version)
}

// String returns the version string with v prefix.
func (v *Version) String() string {
	return "v" + v.Version.String()
}
