package supernode

import (
	"testing"

	"github.com/mosaicnetworks/supernode/src/api"
	"github.com/mosaicnetworks/supernode/src/common"
	"github.com/mosaicnetworks/supernode/src/config"
	"github.com/mosaicnetworks/supernode/src/crypto"
	"github.com/mosaicnetworks/supernode/src/crypto/keys"
)

func initedSupernode(t *testing.T) *Supernode {
	chain := api.NewInmemClient(common.NewTestEntry(t))

	node := NewSupernode(config.NewTestConfig(t), chain)

	if err := node.Init(); err != nil {
		t.Fatalf("err: %v", err)
	}

	return node
}

func TestInitWithoutChain(t *testing.T) {
	node := NewSupernode(config.NewTestConfig(t), nil)

	if err := node.Init(); err == nil {
		t.Fatalf("Init should fail without a chain connection")
	}
}

func TestInitKeepsProvidedKey(t *testing.T) {
	key, _ := keys.GenerateKeyPair()

	chain := api.NewInmemClient(common.NewTestEntry(t))
	node := NewSupernode(config.NewTestConfig(t), chain)
	node.Key = key

	if err := node.Init(); err != nil {
		t.Fatalf("err: %v", err)
	}

	if node.Key != key {
		t.Fatalf("Init should keep a key pair that was set beforehand")
	}
}

func TestEndToEnd(t *testing.T) {
	chain := api.NewInmemClient(common.NewTestEntry(t))

	node := NewSupernode(config.NewTestConfig(t), chain)
	if err := node.Init(); err != nil {
		t.Fatalf("err: %v", err)
	}

	// Fund the node's address with a block.
	genesis := &api.Block{
		Hash:       "block0",
		CreateTime: 1000,
		Transactions: []*api.Transaction{
			{
				Hash: "tx0",
				Outputs: []*api.TransactionOutput{
					{TransactionHash: "tx0", Ix: 0, Value: 100, Addresses: []string{node.Address()}},
				},
			},
		},
	}
	if err := chain.AddBlock(genesis); err != nil {
		t.Fatalf("err: %v", err)
	}

	balance, err := node.Balance()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if balance != 100 {
		t.Fatalf("balance should be 100, got %d", balance)
	}

	statement, err := node.Statement(500)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(statement.Postings) != 1 {
		t.Fatalf("the funding output should appear as a posting")
	}

	// Sign a digest and verify it through the node's verifier.
	digest := crypto.SHA256([]byte{0x00, 0x01})

	sig, err := node.Key.Sign(digest)
	if err != nil {
		t.Fatalf("err: %v", err)
	}

	if !node.Verifier.Verify(digest, sig, node.Key.Public()) {
		t.Fatalf("own signature should verify")
	}

	other, _ := keys.GenerateKeyPair()
	if node.Verifier.Verify(digest, sig, other.Public()) {
		t.Fatalf("signature should not verify against another pair's key")
	}
}
