// Package secmem provides helpers for clearing sensitive byte buffers.
//
// Password bytes, derived keys, and decoded hash material must not linger
// in memory after the operation that needed them returns. Go's garbage
// collector gives no timing guarantee, so every buffer that held
// secret-derived bytes is overwritten explicitly before it goes out of
// scope:
//
//	pw := []byte(password)
//	defer secmem.Wipe(pw)
//
// Wiping is defence in depth: it bounds the window in which a heap dump or
// swapped page exposes the secret, but it cannot reach copies the runtime
// or compiler may have made (string backing arrays, registers, stack
// spills). Callers therefore still own the lifetime of any string form of
// the secret.
package secmem

import "runtime"

// Wipe overwrites b with zeros. The runtime.KeepAlive call prevents the
// compiler from eliding the store loop when b is dead after the call.
//
// Wipe on a nil or empty slice is a no-op.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// WipeAll wipes each of the given buffers. Nil entries are skipped.
//
// Typical use is a single deferred cleanup covering every sensitive buffer
// a function acquired:
//
//	defer secmem.WipeAll(pw, key, expected)
func WipeAll(bufs ...[]byte) {
	for _, b := range bufs {
		Wipe(b)
	}
}
