package constants

// ContextKeyUserID is the key under which the authenticated user ID is
// stored in the session and the gin context.
const ContextKeyUserID = "user_id"

// SessionCookieName is the name of the session cookie.
const SessionCookieName = "workreward_session"

// MinPasswordLength is the minimum accepted password length at signup.
const MinPasswordLength = 8

// Pagination limits
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Difficulty bounds for tasks.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)
