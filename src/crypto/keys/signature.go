package keys

import (
	"crypto/ecdsa"
	"crypto/rand"
	"encoding/asn1"
	"fmt"
	"math/big"
)

// ecdsaSignature is the DER layout of a signature: a sequence of the two
// signed integers r and s.
type ecdsaSignature struct {
	R, S *big.Int
}

// Sign produces a DER-encoded ECDSA signature of digest with a fresh nonce
// drawn from the built-in pseudo-random generator rand.Reader. Signing the
// same digest twice yields two different, equally valid signatures. A zero r
// or s is not a valid signature; signing is retried with a new nonce until
// both are non-zero.
func Sign(priv *ecdsa.PrivateKey, digest []byte) ([]byte, error) {
	for {
		r, s, err := ecdsa.Sign(rand.Reader, priv, digest)
		if err != nil {
			return nil, err
		}

		if r.Sign() == 0 || s.Sign() == 0 {
			continue
		}

		return EncodeSignature(r, s)
	}
}

// Verify verifies that a signature represented by r and s values is a valid
// signature of the digest by an owner of the private key associated with the
// provided public key.
func Verify(pub *ecdsa.PublicKey, digest []byte, r, s *big.Int) bool {
	return ecdsa.Verify(pub, digest, r, s)
}

// EncodeSignature returns the DER representation of a signature.
func EncodeSignature(r, s *big.Int) ([]byte, error) {
	der, err := asn1.Marshal(ecdsaSignature{R: r, S: s})
	if err != nil {
		return nil, CodecError{Op: "encode signature", Err: err}
	}
	return der, nil
}

// DecodeSignature parses the DER representation of a signature as produced
// by EncodeSignature.
func DecodeSignature(sig []byte) (r, s *big.Int, err error) {
	var parsed ecdsaSignature

	rest, err := asn1.Unmarshal(sig, &parsed)
	if err != nil {
		return nil, nil, CodecError{Op: "decode signature", Err: err}
	}
	if len(rest) > 0 {
		return nil, nil, CodecError{Op: "decode signature", Err: fmt.Errorf("%d trailing bytes", len(rest))}
	}

	return parsed.R, parsed.S, nil
}
