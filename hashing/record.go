package hashing

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const (
	// recordTag is the algorithm identifier leading every record.
	recordTag = "pbkdf2_sha256"

	// maxIterationDigits bounds the decimal width of the iteration field.
	// Ten digits cover every count up to 9,999,999,999; anything wider is
	// rejected rather than parsed.
	maxIterationDigits = 10

	// maxRecordIterations is the largest count the iteration field can carry.
	maxRecordIterations int64 = 9_999_999_999
)

// record holds the components decoded from an encoded record string.
type record struct {
	iterations int
	salt       []byte
	hash       []byte
}

// encodeRecord serialises a PBKDF2-HMAC-SHA256 record:
//
//	pbkdf2_sha256$<iterations>$<salt_base64>$<hash_base64>
//
// The base64 fields use the standard alphabet with "=" padding (RFC 4648
// §4). This matches the Django-style pbkdf2_sha256 convention, so records
// are portable to any framework that reads that format.
func encodeRecord(iterations int, salt, key []byte) string {
	return fmt.Sprintf("%s$%d$%s$%s",
		recordTag,
		iterations,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
	)
}

// decodeRecord parses an encoded record string and returns its components.
//
// Parsing is strict: splitting on "$" must yield exactly the algorithm tag
// plus three non-empty fields. Records with missing, empty, or extra fields
// are rejected, as are iteration fields that are not plain positive decimal
// integers and base64 fields with an invalid alphabet or bad padding.
func decodeRecord(encoded string) (*record, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: expected 4 dollar-delimited fields, got %d",
			ErrInvalidHash, len(parts))
	}
	if parts[0] != recordTag {
		return nil, fmt.Errorf("%w: unknown algorithm tag %q", ErrInvalidHash, parts[0])
	}
	for i, p := range parts[1:] {
		if p == "" {
			return nil, fmt.Errorf("%w: empty field at position %d", ErrInvalidHash, i+1)
		}
	}

	iterations, err := parseIterations(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}

	salt, err := decodeBase64Field(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid salt base64: %v", ErrInvalidHash, err)
	}
	hash, err := decodeBase64Field(parts[3])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hash base64: %v", ErrInvalidHash, err)
	}
	if len(salt) == 0 || len(hash) == 0 {
		return nil, fmt.Errorf("%w: salt and hash must decode to at least one byte", ErrInvalidHash)
	}

	return &record{
		iterations: iterations,
		salt:       salt,
		hash:       hash,
	}, nil
}

// decodeBase64Field decodes a padded standard-base64 field and insists on
// the canonical encoding. Go's decoder tolerates embedded newlines and
// non-zero trailing padding bits, which would let textually distinct
// records decode to identical bytes; re-encoding and comparing closes that
// hole, so each byte sequence has exactly one accepted spelling.
func decodeBase64Field(s string) ([]byte, error) {
	b, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, err
	}
	if base64.StdEncoding.EncodeToString(b) != s {
		return nil, fmt.Errorf("non-canonical base64 %q", s)
	}
	return b, nil
}

// parseIterations parses the iteration field as a positive decimal integer.
// Only plain ASCII digits are accepted — no sign, no grouping separators,
// no surrounding whitespace — so locale-dependent numeric forms and values
// like "+3" or "1_000" are rejected.
func parseIterations(s string) (int, error) {
	if len(s) == 0 || len(s) > maxIterationDigits {
		return 0, fmt.Errorf("iteration field %q must be 1–%d digits", s, maxIterationDigits)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("non-digit %q in iteration field %q", s[i], s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Out of range for the platform's int width.
		return 0, fmt.Errorf("iteration field %q: %v", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("iteration count must be positive, got %d", n)
	}
	return n, nil
}
