// Package service declares the infrastructure capabilities the use cases depend on.
package service

// PasswordHasher turns account passwords into stored digests and verifies logins against them.
type PasswordHasher interface {
	// Hash returns the digest persisted on the user row.
	Hash(password string) (string, error)

	// Check reports whether password produces hash. A malformed hash is a mismatch.
	Check(password, hash string) bool
}
