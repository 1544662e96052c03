// Package ident generates opaque identifiers for enemies, items and quests.
package ident

import "github.com/google/uuid"

// New returns a random (v4) UUID string.
func New() string {
	return uuid.NewString()
}
