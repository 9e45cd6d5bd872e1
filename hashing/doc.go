// Package hashing produces and verifies PBKDF2-HMAC-SHA256 password
// records in a portable text format.
//
// # Record format
//
// Records are self-describing strings in the Django-style convention:
//
//	pbkdf2_sha256$<iterations>$<base64-salt>$<base64-hash>
//
// Both binary fields use padded standard base64. Because the iteration
// count, salt, and derived-key length are all embedded, a record remains
// verifiable after the producing configuration changes — no external
// metadata is needed, and records hashed at different historical iteration
// counts coexist freely.
//
// # Quick start
//
//	record, err := hashing.Hash("my-secret-password")
//	if err != nil { log.Fatal(err) }
//
//	ok := hashing.Verify("my-secret-password", record) // true
//
// [Verify] is total: malformed records and wrong passwords both yield
// false, so a verification endpoint never leaks whether a probed record
// was well-formed. For typed parse errors use [PBKDF2Hasher.Check].
//
// # Architecture
//
// The central abstraction is the [Hasher] interface, with [PBKDF2Hasher]
// as the shipped driver. The [Manager] is a named driver registry and
// dispatcher for applications that register additional [Hasher]
// implementations of their own.
//
// # Security properties
//
//   - A fresh salt from crypto/rand is generated per call (16 bytes by
//     default), so identical passwords produce distinct records.
//   - Derived keys are compared with crypto/subtle in constant time.
//   - Every intermediate buffer holding password bytes or key material is
//     zeroed before the operation returns, on error paths included.
//   - The default cost is 300,000 iterations, roughly tens of milliseconds
//     of dedicated CPU per call. Budget verification onto worker pools in
//     request-handling servers; the cost of verifying a record is set by
//     the record, not by this package's defaults.
package hashing
