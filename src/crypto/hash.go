// Package crypto provides the hashing primitives used by the client library:
// SHA256 for digests, double SHA256 for block and transaction identifiers,
// and the RIPEMD160-over-SHA256 key hash that turns a public key into a
// deposit address.
package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// SHA256 returns the SHA256 hash of the data.
func SHA256(data []byte) []byte {
	hasher := sha256.New()
	hasher.Write(data)
	hash := hasher.Sum(nil)
	return hash
}

// DoubleSHA256 returns SHA256(SHA256(data)), the digest used to identify
// blocks and transactions.
func DoubleSHA256(data []byte) []byte {
	return SHA256(SHA256(data))
}

// KeyHash returns the RIPEMD160 hash of the SHA256 hash of data. Applied to
// a public key encoding it yields the 20 byte address of the key pair.
func KeyHash(data []byte) []byte {
	hasher := ripemd160.New()
	hasher.Write(SHA256(data))
	return hasher.Sum(nil)
}
