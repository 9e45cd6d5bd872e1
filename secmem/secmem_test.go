package secmem_test

import (
	"bytes"
	"testing"

	"github.com/hasbyte1/go-pbkdf2-utils/secmem"
)

func TestWipe_ZeroesBuffer(t *testing.T) {
	b := []byte("sensitive-material")
	secmem.Wipe(b)
	if !bytes.Equal(b, make([]byte, len(b))) {
		t.Errorf("buffer not zeroed: %v", b)
	}
}

func TestWipe_NilAndEmpty(t *testing.T) {
	// Must not panic.
	secmem.Wipe(nil)
	secmem.Wipe([]byte{})
}

func TestWipe_SharedBacking(t *testing.T) {
	// Wiping a sub-slice must clear the shared backing array region.
	full := []byte("prefix-secret-suffix")
	secret := full[7:13]
	secmem.Wipe(secret)
	if !bytes.Equal(full[7:13], make([]byte, 6)) {
		t.Errorf("shared region not zeroed: %q", full)
	}
	if string(full[:7]) != "prefix-" || string(full[13:]) != "-suffix" {
		t.Errorf("bytes outside the sub-slice were modified: %q", full)
	}
}

func TestWipeAll_MultipleBuffers(t *testing.T) {
	a := []byte{1, 2, 3}
	b := []byte{4, 5}
	secmem.WipeAll(a, nil, b)
	for _, buf := range [][]byte{a, b} {
		if !bytes.Equal(buf, make([]byte, len(buf))) {
			t.Errorf("buffer not zeroed: %v", buf)
		}
	}
}
