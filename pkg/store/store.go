package store

import "errors"

// Keys used by the session layer. RememberMe is stored as "true" or not at
// all, never "false".
const (
	KeyToken      = "token"
	KeyRememberMe = "rememberMe"
)

var ErrNotFound = errors.New("key not found")

// Store is origin-scoped key/value persistence that survives a process
// restart. Access is synchronous and local.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
