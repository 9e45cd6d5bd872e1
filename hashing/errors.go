package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := hasher.Check(password, record)
//	if errors.Is(err, hashing.ErrInvalidHash) {
//	    // record string is malformed
//	}
var (
	// ErrInvalidHash is returned when a record string cannot be parsed
	// because it has an unrecognised format, the wrong number of fields,
	// a non-numeric or non-positive iteration count, or invalid base64.
	ErrInvalidHash = errors.New("hashing: invalid or unrecognised hash record")

	// ErrInvalidOption is returned when a constructor is called with a
	// parameter value that falls outside the allowed range (e.g., a
	// non-positive iteration count, salt length, or key length).
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrEmptySecret is returned by Make when the password is empty or
	// consists solely of whitespace. Blank secrets are rejected at hash
	// time; Verify treats them as an ordinary mismatch.
	ErrEmptySecret = errors.New("hashing: secret must not be empty or blank")

	// ErrKeyDerivation is returned when the key-derivation backend cannot
	// produce output — the system's entropy source failed or the requested
	// key length exceeds what PBKDF2-HMAC-SHA256 can emit. Retrying with
	// identical inputs cannot succeed.
	ErrKeyDerivation = errors.New("hashing: key derivation failed")

	// ErrDriverNotFound is returned by [Manager.Driver] or indirectly by
	// [Manager.Make] / [Manager.Check] when the requested driver has not
	// been registered.
	ErrDriverNotFound = errors.New("hashing: driver not found")

	// ErrEmptyDriverName is returned by [Manager.RegisterDriver] when the
	// supplied driver name is an empty string.
	ErrEmptyDriverName = errors.New("hashing: driver name must not be empty")

	// ErrNilHasher is returned by [Manager.RegisterDriver] when a nil
	// [Hasher] is supplied.
	ErrNilHasher = errors.New("hashing: hasher must not be nil")

	// ErrAlgorithmMismatch is returned by a [Hasher]'s Check or NeedsRehash
	// method when the record was produced by a different algorithm than the
	// one implemented by that hasher.
	ErrAlgorithmMismatch = errors.New("hashing: record was produced by a different algorithm")
)
