// Package session persists the logged-in identity as two string entries,
// "token" and "user" (a JSON blob). It is the only durable state in the
// storefront; cart, wishlist, and orders live and die with the process.
package session

import (
	"context"
	"errors"
)

const (
	KeyToken = "token"
	KeyUser  = "user"
)

// ErrNotFound is returned when a key has no value.
var ErrNotFound = errors.New("session key not found")

// Store is a tiny string key-value contract.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
