package keys

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec"

	"github.com/mosaicnetworks/supernode/src/crypto"
)

// ErrMissingPrivateKey is returned when a signing operation is attempted on
// a key pair that only carries the public part.
var ErrMissingPrivateKey = errors.New("need private key to sign")

// KeyPair associates a secp256k1 private scalar with the uncompressed
// encoding of its public point. The private part is absent on pairs built
// from a bare public key. A KeyPair is immutable after construction and safe
// for concurrent use.
type KeyPair struct {
	priv *ecdsa.PrivateKey
	pub  []byte
}

// GenerateKeyPair creates a new key pair from the crypto/rand entropy
// source. Every call draws fresh entropy; an error from the entropy source
// means no usable key could be produced.
func GenerateKeyPair() (*KeyPair, error) {
	priv, err := ecdsa.GenerateKey(Curve(), rand.Reader)
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		priv: priv,
		pub:  elliptic.Marshal(Curve(), priv.PublicKey.X, priv.PublicKey.Y),
	}, nil
}

// NewKeyPairFromScalar creates a key pair with the given private scalar and
// computes the matching public point. The scalar must be in [1, N-1].
func NewKeyPairFromScalar(d *big.Int) (*KeyPair, error) {
	if d == nil || d.Sign() <= 0 {
		return nil, fmt.Errorf("invalid private scalar, zero or negative")
	}

	if d.Cmp(secp256k1N) >= 0 {
		return nil, fmt.Errorf("invalid private scalar, >=N")
	}

	priv := new(ecdsa.PrivateKey)
	priv.PublicKey.Curve = Curve()
	priv.D = new(big.Int).Set(d)
	priv.PublicKey.X, priv.PublicKey.Y = Curve().ScalarBaseMult(d.Bytes())

	return &KeyPair{
		priv: priv,
		pub:  elliptic.Marshal(Curve(), priv.PublicKey.X, priv.PublicKey.Y),
	}, nil
}

// NewPublicOnlyKeyPair creates a key pair without a private part from a
// public point encoding. The point must be on the curve; compressed and
// uncompressed encodings are accepted, the pair is normalized to the
// uncompressed form. Such a pair can derive an address but not sign.
func NewPublicOnlyKeyPair(pub []byte) (*KeyPair, error) {
	pubKey, err := btcec.ParsePubKey(pub, btcec.S256())
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		pub: pubKey.SerializeUncompressed(),
	}, nil
}

// Public returns a copy of the uncompressed public point encoding. The
// returned slice is the caller's to keep; mutating it does not affect the
// key pair.
func (k *KeyPair) Public() []byte {
	p := make([]byte, len(k.pub))
	copy(p, k.pub)
	return p
}

// Address returns the 20 byte deposit address derived from the public point
// encoding. The address is recomputed on demand, it is not stored on the
// pair.
func (k *KeyPair) Address() []byte {
	return crypto.KeyHash(k.pub)
}

// Sign produces a DER-encoded ECDSA signature of digest. It returns
// ErrMissingPrivateKey on a public-only pair. The digest is expected to be
// the hash of the message; this package does not hash messages itself.
func (k *KeyPair) Sign(digest []byte) ([]byte, error) {
	if k.priv == nil {
		return nil, ErrMissingPrivateKey
	}
	return Sign(k.priv, digest)
}
