// Package supernode ties the client library together: a configuration, a
// key pair, a signature verifier, and a connection to the block chain.
// Embedders construct a Supernode, Init it, and use the components directly.
package supernode

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mosaicnetworks/supernode/src/api"
	"github.com/mosaicnetworks/supernode/src/common"
	"github.com/mosaicnetworks/supernode/src/config"
	"github.com/mosaicnetworks/supernode/src/crypto/keys"
)

// Supernode is a client of the block chain: it owns a key pair, verifies
// signatures through a dedicated cache, and queries the chain for the
// balance and history of its own deposit address.
type Supernode struct {
	Config   *config.Config
	Key      *keys.KeyPair
	Verifier *keys.Verifier
	Chain    api.BCSAPI

	logger *logrus.Entry
}

// NewSupernode creates a Supernode with the given configuration and chain
// connection. Call Init before using it.
func NewSupernode(config *config.Config, chain api.BCSAPI) *Supernode {
	return &Supernode{
		Config: config,
		Chain:  chain,
	}
}

// Init builds the logger, the key pair and the verifier. A key pair set on
// the Supernode before Init is kept; otherwise a fresh one is generated.
func (s *Supernode) Init() error {
	if s.Chain == nil {
		return fmt.Errorf("no chain connection")
	}

	s.logger = s.Config.Logger()

	if err := s.initKey(); err != nil {
		return err
	}

	s.initVerifier()

	return nil
}

func (s *Supernode) initKey() error {
	if s.Key == nil {
		key, err := keys.GenerateKeyPair()
		if err != nil {
			s.logger.WithError(err).Error("Cannot generate a new key pair")
			return err
		}

		s.Key = key

		s.logger.WithField("address", s.Address()).Info("Created a new key pair")
	}

	return nil
}

func (s *Supernode) initVerifier() {
	s.Verifier = keys.NewVerifier(keys.NewSigCache(s.Config.CacheSize), s.logger)
}

// Address returns the client's deposit address in the string form accepted
// by the chain queries.
func (s *Supernode) Address() string {
	return common.EncodeToString(s.Key.Address())
}

// Balance sums the value of the outputs currently spendable by the client's
// address.
func (s *Supernode) Balance() (int64, error) {
	outputs, err := s.Chain.GetBalance([]string{s.Address()})
	if err != nil {
		return 0, err
	}

	var total int64
	for _, out := range outputs {
		total += out.Value
	}

	return total, nil
}

// Statement returns the account statement of the client's address since the
// given unix time point.
func (s *Supernode) Statement(from int64) (*api.AccountStatement, error) {
	return s.Chain.GetAccountStatement([]string{s.Address()}, from)
}
