package keys

import (
	"crypto/elliptic"
	"encoding/asn1"
	"fmt"
	"math/big"
)

// keyPairVersion is the version integer leading every encoded key pair.
const keyPairVersion = 1

// BadKeyVersionError is returned when decoding a key pair whose version
// field is not supported.
type BadKeyVersionError struct {
	Version int
}

// Error ...
func (e BadKeyVersionError) Error() string {
	return fmt.Sprintf("wrong key version: got %d, want %d", e.Version, keyPairVersion)
}

// CodecError is returned when a key pair or signature cannot be encoded or
// decoded. It wraps the underlying ASN.1 fault.
type CodecError struct {
	Op  string
	Err error
}

// Error ...
func (e CodecError) Error() string {
	return fmt.Sprintf("key codec: %s: %v", e.Op, e.Err)
}

// Unwrap ...
func (e CodecError) Unwrap() error {
	return e.Err
}

// oidPrimeField identifies a prime field in the X9.62 FieldID structure.
var oidPrimeField = asn1.ObjectIdentifier{1, 2, 840, 10045, 1, 1}

/*
The stored form of a key pair is the DER structure

  SEQUENCE {
    INTEGER 1                          -- key format version
    OCTET STRING                       -- private scalar, signed big-endian
    [0] EXPLICIT ECParameters          -- X9.62 curve definition, explicit form
    [1] EXPLICIT BIT STRING            -- uncompressed public point
  }

The layout must match byte-for-byte what other wallets and nodes read and
write; field order and tag numbers are not negotiable.
*/

type fieldID struct {
	FieldType asn1.ObjectIdentifier
	Prime     *big.Int
}

type curveCoefficients struct {
	A    []byte
	B    []byte
	Seed asn1.BitString `asn1:"optional"`
}

type ecParameters struct {
	Version  int
	FieldID  fieldID
	Curve    curveCoefficients
	Base     []byte
	Order    *big.Int
	Cofactor *big.Int `asn1:"optional"`
}

type keyPairBlob struct {
	Version    int
	PrivateKey []byte
	Params     ecParameters   `asn1:"optional,explicit,tag:0"`
	PublicKey  asn1.BitString `asn1:"optional,explicit,tag:1"`
}

// secp256k1Parameters builds the explicit X9.62 definition of the curve as
// it appears in the stored key format.
func secp256k1Parameters() ecParameters {
	params := Curve().Params()
	byteLen := (params.BitSize + 7) / 8

	return ecParameters{
		Version: 1,
		FieldID: fieldID{
			FieldType: oidPrimeField,
			Prime:     params.P,
		},
		Curve: curveCoefficients{
			A: make([]byte, byteLen),
			B: paddedBigBytes(params.B, byteLen),
		},
		Base:     elliptic.Marshal(Curve(), params.Gx, params.Gy),
		Order:    params.N,
		Cofactor: big.NewInt(1),
	}
}

// Encode serializes the key pair to the stored DER form. It fails with
// ErrMissingPrivateKey on a public-only pair, since the format embeds the
// private scalar.
func (k *KeyPair) Encode() ([]byte, error) {
	if k.priv == nil {
		return nil, ErrMissingPrivateKey
	}

	blob := keyPairBlob{
		Version:    keyPairVersion,
		PrivateKey: signedBigBytes(k.priv.D),
		Params:     secp256k1Parameters(),
		PublicKey: asn1.BitString{
			Bytes:     k.Public(),
			BitLength: len(k.pub) * 8,
		},
	}

	der, err := asn1.Marshal(blob)
	if err != nil {
		return nil, CodecError{Op: "encode key pair", Err: err}
	}

	return der, nil
}

// DecodeKeyPair restores a key pair from its stored DER form. The public
// point is always recomputed from the decoded private scalar; an embedded
// public key is not trusted over the recomputed one. A version other than 1
// fails with BadKeyVersionError, any malformed input fails with CodecError,
// and no partially constructed pair is ever returned.
func DecodeKeyPair(der []byte) (*KeyPair, error) {
	var blob keyPairBlob

	rest, err := asn1.Unmarshal(der, &blob)
	if err != nil {
		return nil, CodecError{Op: "decode key pair", Err: err}
	}
	if len(rest) > 0 {
		return nil, CodecError{Op: "decode key pair", Err: fmt.Errorf("%d trailing bytes", len(rest))}
	}

	if blob.Version != keyPairVersion {
		return nil, BadKeyVersionError{Version: blob.Version}
	}

	kp, err := NewKeyPairFromScalar(new(big.Int).SetBytes(blob.PrivateKey))
	if err != nil {
		return nil, CodecError{Op: "decode key pair", Err: err}
	}

	return kp, nil
}

// signedBigBytes encodes a positive big integer the way the stored key
// format expects: big-endian with a leading zero byte when the top bit is
// set, so the value reads back as positive in a signed interpretation.
func signedBigBytes(i *big.Int) []byte {
	b := i.Bytes()
	if len(b) == 0 || b[0]&0x80 != 0 {
		b = append([]byte{0x00}, b...)
	}
	return b
}

const (
	// number of bits in a big.Word
	wordBits = 32 << (uint64(^big.Word(0)) >> 63)
	// number of bytes in a big.Word
	wordBytes = wordBits / 8
)

//paddedBigBytes encodes a big integer as a big-endian byte slice. The length
//of the slice is at least n bytes.
func paddedBigBytes(bigint *big.Int, n int) []byte {
	if bigint.BitLen()/8 >= n {
		return bigint.Bytes()
	}
	ret := make([]byte, n)
	readBits(bigint, ret)
	return ret
}

//readBits encodes the absolute value of bigint as big-endian bytes. Callers
//must ensure that buf has enough space. If buf is too short the result will
//be incomplete.
func readBits(bigint *big.Int, buf []byte) {
	i := len(buf)
	for _, d := range bigint.Bits() {
		for j := 0; j < wordBytes && i > 0; j++ {
			i--
			buf[i] = byte(d)
			d >>= 8
		}
	}
}
