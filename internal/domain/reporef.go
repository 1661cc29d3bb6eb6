package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// RefGuidance names the two accepted repository reference shapes. It is
// appended to every ErrUnparsableReference so users see what would parse.
const RefGuidance = "expected https://host/owner/repo or git@host:owner/repo"

// OwnerSegment extracts the organization or user name from a repository
// reference: the path segment immediately preceding the final one. Both web
// URLs and SSH-style locators are accepted; for the latter the ":" after
// the host is normalized to a path separator first.
func OwnerSegment(ref string) (string, error) {
	ref = strings.TrimSuffix(strings.TrimSpace(ref), "/")
	if ref == "" {
		return "", unparsable(ref)
	}
	var segments []string
	if strings.Contains(ref, "://") {
		u, err := url.Parse(ref)
		if err != nil {
			return "", unparsable(ref)
		}
		segments = splitPath(u.Path)
	} else {
		// git@host:owner/repo form: the first ":" separates host and path.
		if idx := strings.Index(ref, ":"); idx >= 0 {
			ref = ref[:idx] + "/" + ref[idx+1:]
		}
		segments = splitPath(ref)
	}
	if len(segments) < 2 {
		return "", unparsable(ref)
	}
	owner := segments[len(segments)-2]
	// Host or scheme leakage means extraction degenerated; a user@host token
	// or an http-prefixed string is never a valid owner.
	if owner == "" || strings.HasPrefix(owner, "http") || strings.ContainsAny(owner, "@:") {
		return "", unparsable(ref)
	}
	return owner, nil
}

func splitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

func unparsable(ref string) error {
	return fmt.Errorf("%w: %q (%s)", ErrUnparsableReference, ref, RefGuidance)
}
