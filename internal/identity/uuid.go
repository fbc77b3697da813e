// Package identity issues ids for lists, entries and catalog templates.
package identity

import "github.com/google/uuid"

// UUID generates random RFC 4122 version 4 ids. No registry of issued ids is
// kept; 122 random bits make collisions negligible.
type UUID struct{}

func New() *UUID { return &UUID{} }

// NewID returns a new random UUID string. It is safe for concurrent use.
func (*UUID) NewID() string {
	return uuid.NewString()
}
