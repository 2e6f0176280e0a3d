// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password. Every call uses a
	// fresh salt, so two hashes of the same password differ. The output is
	// self-describing: algorithm, cost and salt are embedded in the digest.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash in constant time.
	// A mismatch is (false, nil). A non-nil error means the stored hash itself
	// is structurally invalid (corrupted or foreign format); callers must treat
	// that as "verification failed", never as a crash.
	Check(password, hash string) (bool, error)
}
