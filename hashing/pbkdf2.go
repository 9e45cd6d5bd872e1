package hashing

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/hasbyte1/go-pbkdf2-utils/secmem"
)

const (
	// DefaultIterations is the default PBKDF2 iteration count.
	// At 300,000 iterations, derivation takes tens of milliseconds on a
	// modern server CPU; OWASP recommends ≥ 600,000 for new deployments,
	// so raise this to match your performance budget where possible.
	DefaultIterations = 300_000

	// DefaultSaltLen is the default random salt length in bytes.
	DefaultSaltLen = 16

	// DefaultKeyLen is the default derived-key length in bytes.
	DefaultKeyLen = 32
)

// maxPBKDF2KeyLen is the mathematical output ceiling of PBKDF2 with a
// 32-byte PRF: (2³²−1) blocks of sha256.Size bytes (RFC 8018 §5.2).
const maxPBKDF2KeyLen int64 = (1<<32 - 1) * sha256.Size

// PBKDF2Options configures a [PBKDF2Hasher].
//
// All parameters except KeyLen are directly encoded into the output record,
// and KeyLen is recoverable from the decoded hash length, so changing
// options only affects newly produced records; existing records remain
// verifiable because verification reads its parameters from the record
// itself.
type PBKDF2Options struct {
	// Iterations is the PBKDF2 iteration count.
	// Minimum: 1.  Default: [DefaultIterations] (300,000).
	Iterations int

	// SaltLen is the length of the random salt in bytes.
	// Minimum: 1.  Default: [DefaultSaltLen] (16).
	SaltLen int

	// KeyLen is the length of the derived key in bytes.
	// Minimum: 1.  Default: [DefaultKeyLen] (32).
	KeyLen int
}

// DefaultPBKDF2Options returns PBKDF2Options with the recommended defaults.
func DefaultPBKDF2Options() PBKDF2Options {
	return PBKDF2Options{
		Iterations: DefaultIterations,
		SaltLen:    DefaultSaltLen,
		KeyLen:     DefaultKeyLen,
	}
}

func validatePBKDF2Options(opts PBKDF2Options) error {
	if opts.Iterations < 1 {
		return fmt.Errorf("%w: pbkdf2 iterations must be ≥ 1, got %d", ErrInvalidOption, opts.Iterations)
	}
	if int64(opts.Iterations) > maxRecordIterations {
		// The record's iteration field carries at most ten decimal digits.
		return fmt.Errorf("%w: pbkdf2 iterations %d exceeds the %d-digit record field",
			ErrInvalidOption, opts.Iterations, maxIterationDigits)
	}
	if opts.SaltLen < 1 {
		return fmt.Errorf("%w: pbkdf2 salt_len must be ≥ 1, got %d", ErrInvalidOption, opts.SaltLen)
	}
	if opts.KeyLen < 1 {
		return fmt.Errorf("%w: pbkdf2 key_len must be ≥ 1, got %d", ErrInvalidOption, opts.KeyLen)
	}
	return nil
}

// PBKDF2Hasher hashes passwords using PBKDF2 with HMAC-SHA256 (RFC 8018).
//
// Output format:
//
//	pbkdf2_sha256$<iterations>$<salt_base64>$<hash_base64>
//
// with padded standard base64 in both binary fields. The format is
// self-describing: iteration count, salt, and derived-key length are all
// recovered from the record at verification time, so records hashed under
// older iteration counts keep verifying after the configuration changes.
//
// Every intermediate buffer that holds the password bytes or derived key
// material is zeroed before the call returns, on success and error paths
// alike.
//
// # Thread safety
//
// PBKDF2Hasher is immutable after construction and safe for concurrent use.
type PBKDF2Hasher struct {
	opts PBKDF2Options
}

// NewPBKDF2Hasher constructs a PBKDF2Hasher with the given options.
// Use [DefaultPBKDF2Options] for recommended defaults.
func NewPBKDF2Hasher(opts PBKDF2Options) (*PBKDF2Hasher, error) {
	if err := validatePBKDF2Options(opts); err != nil {
		return nil, err
	}
	return &PBKDF2Hasher{opts: opts}, nil
}

// Driver returns [DriverPBKDF2SHA256].
func (h *PBKDF2Hasher) Driver() DriverName { return DriverPBKDF2SHA256 }

// Options returns the current PBKDF2 parameter set.
func (h *PBKDF2Hasher) Options() PBKDF2Options { return h.opts }

// Make hashes password with PBKDF2-HMAC-SHA256 and returns an encoded
// record. A fresh random salt of the configured length is generated for
// each call, so two calls with the same password produce distinct records.
//
// Returns [ErrEmptySecret] if password is empty or whitespace-only, and
// [ErrKeyDerivation] if the entropy source fails or the configured key
// length exceeds what the primitive can produce.
func (h *PBKDF2Hasher) Make(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptySecret
	}
	salt, err := randomSalt(h.opts.SaltLen)
	if err != nil {
		return "", err
	}
	key, err := deriveKey(password, salt, h.opts.Iterations, h.opts.KeyLen)
	if err != nil {
		return "", err
	}
	defer secmem.Wipe(key)
	return encodeRecord(h.opts.Iterations, salt, key), nil
}

// Check verifies that password matches the encoded record.
//
// The iteration count, salt, and key length are read from the record
// itself, so verification works for records produced under any historical
// parameter set. The derived candidate is compared against the stored key
// with [subtle.ConstantTimeCompare]; the decoded key length is not secret,
// so a length mismatch short-circuits to false without weakening the
// constant-time guarantee on key content.
//
// Returns (false, nil) for a wrong password and a typed error
// ([ErrInvalidHash], [ErrAlgorithmMismatch]) for a record that cannot be
// parsed. Callers exposed to untrusted records should prefer [Verify],
// which folds both outcomes into a single false.
func (h *PBKDF2Hasher) Check(password, encoded string) (bool, error) {
	if d, ok := DetectDriver(encoded); !ok || d != DriverPBKDF2SHA256 {
		return false, fmt.Errorf("%w: record does not appear to be pbkdf2_sha256", ErrAlgorithmMismatch)
	}
	rec, err := decodeRecord(encoded)
	if err != nil {
		return false, err
	}
	defer secmem.WipeAll(rec.salt, rec.hash)

	candidate, err := deriveKey(password, rec.salt, rec.iterations, len(rec.hash))
	if err != nil {
		return false, err
	}
	defer secmem.Wipe(candidate)

	return subtle.ConstantTimeCompare(candidate, rec.hash) == 1, nil
}

// NeedsRehash returns true if any parameter stored in the record differs
// from the hasher's current configuration. It reports drift only; deciding
// when to re-hash and persisting the replacement record stay with the
// caller.
func (h *PBKDF2Hasher) NeedsRehash(encoded string) (bool, error) {
	if d, ok := DetectDriver(encoded); !ok || d != DriverPBKDF2SHA256 {
		return false, fmt.Errorf("%w: record does not appear to be pbkdf2_sha256", ErrAlgorithmMismatch)
	}
	rec, err := decodeRecord(encoded)
	if err != nil {
		return false, err
	}
	defer secmem.WipeAll(rec.salt, rec.hash)
	return rec.iterations != h.opts.Iterations ||
		len(rec.salt) != h.opts.SaltLen ||
		len(rec.hash) != h.opts.KeyLen, nil
}

// Info parses the record and returns the encoded parameters.
//
// Returned [HashInfo].Params:
//   - "iterations" → int
//   - "salt_len"   → int (bytes)
//   - "key_len"    → int (bytes)
func (h *PBKDF2Hasher) Info(encoded string) (HashInfo, error) {
	if d, ok := DetectDriver(encoded); !ok || d != DriverPBKDF2SHA256 {
		return HashInfo{}, fmt.Errorf("%w: record does not appear to be pbkdf2_sha256", ErrAlgorithmMismatch)
	}
	rec, err := decodeRecord(encoded)
	if err != nil {
		return HashInfo{}, err
	}
	defer secmem.WipeAll(rec.salt, rec.hash)
	return HashInfo{
		Driver: DriverPBKDF2SHA256,
		Params: map[string]any{
			"iterations": rec.iterations,
			"salt_len":   len(rec.salt),
			"key_len":    len(rec.hash),
		},
	}, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Package-level convenience API
// ──────────────────────────────────────────────────────────────────────────────

// defaultHasher backs the package-level Hash and Verify functions. It is
// immutable, so sharing it across goroutines needs no locking. Check reads
// all verification parameters from the record, so this instance verifies
// records hashed under any option set.
var defaultHasher = &PBKDF2Hasher{opts: DefaultPBKDF2Options()}

// Hash hashes secret with [DefaultPBKDF2Options] and returns an encoded
// record. Construct a [PBKDF2Hasher] to control iterations, salt length,
// or key length.
func Hash(secret string) (string, error) {
	return defaultHasher.Make(secret)
}

// Verify reports whether secret matches the encoded record.
//
// Verify is total: a blank secret, a blank or malformed record, and a
// genuinely wrong password all yield false, and nothing is ever raised.
// Collapsing every failure into the same result keeps a verification
// endpoint from acting as an oracle that tells an attacker whether a
// probed record was well-formed.
func Verify(secret, record string) bool {
	if strings.TrimSpace(secret) == "" || strings.TrimSpace(record) == "" {
		return false
	}
	ok, err := defaultHasher.Check(secret, record)
	return err == nil && ok
}

// ──────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ──────────────────────────────────────────────────────────────────────────────

// randomSalt returns n cryptographically random bytes.
func randomSalt(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("%w: cannot generate salt: %v", ErrKeyDerivation, err)
	}
	return b, nil
}

// deriveKey runs PBKDF2-HMAC-SHA256 over password and salt. The UTF-8 copy
// of the password is zeroed before returning on every path; the returned
// key is owned by the caller, who must wipe it.
func deriveKey(password string, salt []byte, iterations, keyLen int) ([]byte, error) {
	if int64(keyLen) > maxPBKDF2KeyLen {
		return nil, fmt.Errorf("%w: key_len %d exceeds the PBKDF2-HMAC-SHA256 output limit",
			ErrKeyDerivation, keyLen)
	}
	pw := []byte(password)
	defer secmem.Wipe(pw)
	return pbkdf2.Key(pw, salt, iterations, keyLen, sha256.New), nil
}
