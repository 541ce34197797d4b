// Package storage provides the key-value persistence backing the stores.
// Values are JSON-encoded blobs under fixed keys; there is no versioning or
// migration, so schema changes require clearing the affected keys.
package storage

import "errors"

// Keys under which the application persists its state.
const (
	KeyProducts    = "mayatech_products"
	KeyCourses     = "mayatech_courses"
	KeyUsers       = "mayatech_users"
	KeyCart        = "mayatech_cart"
	KeyCurrentUser = "mayatech_current_user"
	KeyAuthToken   = "mayatech_auth_token"
)

var ErrKeyNotFound = errors.New("storage: key not found")

// Store is the persistence backend. Every write replaces the full value of
// the key; concurrent writers follow last-writer-wins.
type Store interface {
	Get(key string, dest any) error
	Set(key string, val any) error
	Delete(key string) error
}
