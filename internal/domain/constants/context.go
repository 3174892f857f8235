// Package constants holds identifiers shared between layers.
package constants

// Keys set on the echo context by the auth middleware.
const (
	ContextKeyUserID = "userID"
)
