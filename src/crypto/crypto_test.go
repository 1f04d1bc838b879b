package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestSHA256(t *testing.T) {
	expected, _ := hex.DecodeString("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")

	if got := SHA256([]byte("abc")); !bytes.Equal(got, expected) {
		t.Fatalf("SHA256(abc) = %x", got)
	}
}

func TestDoubleSHA256(t *testing.T) {
	data := []byte("block header")

	if !bytes.Equal(DoubleSHA256(data), SHA256(SHA256(data))) {
		t.Fatalf("DoubleSHA256 should be SHA256 applied twice")
	}
}

func TestKeyHash(t *testing.T) {
	// RIPEMD160(SHA256("")) is a well-known constant.
	expected, _ := hex.DecodeString("b472a266d0bd89c13706a4132ccfb16f7c3b9fcb")

	got := KeyHash([]byte{})

	if len(got) != 20 {
		t.Fatalf("key hash should be 20 bytes, got %d", len(got))
	}

	if !bytes.Equal(got, expected) {
		t.Fatalf("KeyHash(\"\") = %x", got)
	}
}
