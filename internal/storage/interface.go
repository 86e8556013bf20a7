package storage

import "github.com/mcoot/hackerclub/internal/model"

// HandleRegistry is the set of hacker handles already in use
type HandleRegistry interface {
	model.HandleClaimer

	// HasHandle reports whether handle is registered
	HasHandle(handle string) bool
	// Handles returns the registered handles in sorted order
	Handles() []string
	// Len returns the number of registered handles
	Len() int
}
