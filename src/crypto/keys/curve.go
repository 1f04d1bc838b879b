package keys

import (
	"crypto/elliptic"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
)

/*
All keys and signatures in this package are defined over the secp256k1 curve,
the curve used by Bitcoin. The curve is fixed at process start and shared by
every key pair and every signing or verification operation; there is no
per-key curve selection.
*/

//Parameters of the secp256k1 curve. They are used by the constructors to
//verify that a private scalar is valid.
var (
	secp256k1N, _  = new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)
	secp256k1halfN = new(big.Int).Div(secp256k1N, big.NewInt(2))
)

//Curve returns an elliptic.Curve. We use btcsuite's golang implementation of
//secp256k1.
func Curve() elliptic.Curve {
	return btcec.S256() //secp256k1
}
