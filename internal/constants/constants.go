package constants

import "time"

const (
	// Context keys set by the auth middleware
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"

	MinPasswordLength = 8

	// Sliding expiration window for the priority reference cache
	DefaultPriorityCacheTTL = 2 * time.Hour

	DefaultTokenTTL = 24 * time.Hour
)
