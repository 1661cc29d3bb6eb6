package repository

import "time"

// Timeout constants for external client calls
const (
	// DefaultQueryTimeout bounds read-only hosting platform queries
	DefaultQueryTimeout = 30 * time.Second
	// DefaultRemoteTimeout bounds remote enumeration through the wrapped tool
	DefaultRemoteTimeout = 60 * time.Second
	// DefaultPublishTimeout bounds release creation
	DefaultPublishTimeout = 2 * time.Minute
)
