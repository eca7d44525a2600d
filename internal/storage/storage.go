// Package storage is durable client-side key/value storage for the
// logged in session.
package storage

import "errors"

var ErrNotFound = errors.New("key not found")

// Storage mirrors the small API the controller needs from durable storage.
type Storage interface {
	// GetItem returns ErrNotFound when key is absent.
	GetItem(key string) (string, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}
