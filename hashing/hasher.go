package hashing

import "strings"

// DriverName identifies a hashing algorithm driver.
// Using a named string type prevents accidental confusion with plain strings.
type DriverName string

const (
	// DriverPBKDF2SHA256 selects the PBKDF2-HMAC-SHA256 driver, the only
	// driver shipped with this package.
	DriverPBKDF2SHA256 DriverName = "pbkdf2_sha256"
)

// Hasher is the core interface satisfied by password-hashing drivers.
//
// All implementations must be safe for concurrent use by multiple
// goroutines, and every implementation of Check must compare derived keys
// in constant time.
//
// This package ships [PBKDF2Hasher]; additional drivers can be registered
// on a [Manager] by implementing this interface.
type Hasher interface {
	// Make hashes a plaintext password and returns the encoded record
	// string. A fresh cryptographic salt is generated for every call, so
	// two calls with the same password produce different records.
	Make(password string) (string, error)

	// Check verifies that password matches the previously encoded record.
	// Returns (true, nil) on match, (false, nil) on mismatch, or
	// (false, err) if the record is structurally invalid.
	Check(password, record string) (bool, error)

	// NeedsRehash returns true when the record was produced with parameters
	// that differ from the hasher's current configuration. Callers should
	// re-hash the password on next successful login when this returns true.
	NeedsRehash(record string) (bool, error)

	// Info extracts metadata from an encoded record without verifying it.
	// Useful for auditing and migration tooling.
	Info(record string) (HashInfo, error)

	// Driver returns the DriverName implemented by this hasher.
	Driver() DriverName
}

// HashInfo carries metadata parsed from an encoded record string.
type HashInfo struct {
	// Driver is the hashing algorithm that produced the record.
	Driver DriverName

	// Params holds algorithm-specific parameters extracted from the record.
	//
	// For pbkdf2_sha256:
	//   "iterations" → int (PBKDF2 iteration count)
	//   "salt_len"   → int (decoded salt length in bytes)
	//   "key_len"    → int (decoded derived-key length in bytes)
	Params map[string]any
}

// DetectDriver inspects a record string and returns the [DriverName] that
// produced it. It is a best-effort heuristic based on the record prefix and
// does not verify the record itself.
//
// The second return value is false when the record format is not recognised.
func DetectDriver(record string) (DriverName, bool) {
	if strings.HasPrefix(record, recordTag+"$") {
		return DriverPBKDF2SHA256, true
	}
	return "", false
}
