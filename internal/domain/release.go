package domain

// Release holds everything the hosting platform needs to publish a release.
// Instances are built fresh per workflow invocation and never persisted.
type Release struct {
	Version      *Version
	Title        string
	Notes        string
	TargetBranch string
}
