package api

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// InmemClient implements BCSAPI against an in-memory chain. It is used in
// tests and by applications that embed the client library without a real
// node behind it. Blocks are fed in with AddBlock; the client maintains the
// trunk, a transaction index, and the set of unspent outputs per address.
type InmemClient struct {
	mu       sync.Mutex
	blocks   map[string]*Block
	txs      map[string]*Transaction
	trunk    []string
	utxo     map[string]*TransactionOutput
	received map[string]int64
	postings []*AccountPosting
	logger   *logrus.Entry
}

// NewInmemClient creates an InmemClient with an empty chain.
func NewInmemClient(logger *logrus.Entry) *InmemClient {
	if logger == nil {
		log := logrus.New()
		log.Level = logrus.DebugLevel
		logger = logrus.NewEntry(log)
	}

	return &InmemClient{
		blocks:   make(map[string]*Block),
		txs:      make(map[string]*Transaction),
		utxo:     make(map[string]*TransactionOutput),
		received: make(map[string]int64),
		logger:   logger,
	}
}

// outpoint is the key of an output in the utxo set.
func outpoint(hash string, ix int) string {
	return fmt.Sprintf("%s:%d", hash, ix)
}

// AddBlock appends a block to the trunk, indexes its transactions, spends
// the outputs referenced by their inputs and records the new outputs as
// unspent. The block must extend the current trunk head.
func (c *InmemClient) AddBlock(block *Block) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.blocks[block.Hash]; ok {
		return fmt.Errorf("block %s already known", block.Hash)
	}

	if len(c.trunk) > 0 && block.PreviousHash != c.trunk[len(c.trunk)-1] {
		return fmt.Errorf("block %s does not extend the trunk", block.Hash)
	}

	// Validate every spend before touching any state, so a bad block leaves
	// the chain untouched.
	spent := make(map[string]bool)
	for _, tx := range block.Transactions {
		for _, in := range tx.Inputs {
			op := outpoint(in.SourceHash, in.SourceIx)
			if _, ok := c.utxo[op]; !ok || spent[op] {
				return fmt.Errorf("transaction %s spends unknown output %s", tx.Hash, op)
			}
			spent[op] = true
		}
	}

	for _, tx := range block.Transactions {
		tx.BlockHash = block.Hash
		c.txs[tx.Hash] = tx

		for _, in := range tx.Inputs {
			op := outpoint(in.SourceHash, in.SourceIx)
			out := c.utxo[op]

			delete(c.utxo, op)

			c.postings = append(c.postings, &AccountPosting{
				Timestamp: block.CreateTime,
				Spent:     out,
			})
		}

		for _, out := range tx.Outputs {
			op := outpoint(out.TransactionHash, out.Ix)
			c.utxo[op] = out
			c.received[op] = block.CreateTime

			c.postings = append(c.postings, &AccountPosting{
				Timestamp: block.CreateTime,
				Received:  out,
			})
		}
	}

	c.blocks[block.Hash] = block
	c.trunk = append(c.trunk, block.Hash)

	c.logger.WithFields(logrus.Fields{
		"hash":   block.Hash,
		"height": len(c.trunk) - 1,
		"txs":    len(block.Transactions),
	}).Debug("Added block")

	return nil
}

// GetHeartbeat implements BCSAPI. The in-memory chain is always alive, so it
// just echoes the token.
func (c *InmemClient) GetHeartbeat(mine int64) (int64, error) {
	return mine, nil
}

// GetBlock implements BCSAPI.
func (c *InmemClient) GetBlock(hash string) (*Block, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.blocks[hash], nil
}

// GetTransaction implements BCSAPI.
func (c *InmemClient) GetTransaction(hash string) (*Transaction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.txs[hash], nil
}

// GetTrunk implements BCSAPI.
func (c *InmemClient) GetTrunk() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.trunk) == 0 {
		return "", nil
	}

	return c.trunk[len(c.trunk)-1], nil
}

// GetBalance implements BCSAPI.
func (c *InmemClient) GetBalance(addresses []string) ([]*TransactionOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	outputs := []*TransactionOutput{}
	for _, out := range c.utxo {
		for _, addr := range addresses {
			if out.PaysTo(addr) {
				outputs = append(outputs, out)
				break
			}
		}
	}

	return outputs, nil
}

// GetAccountStatement implements BCSAPI. The opening balance is the set of
// outputs received at or before the time point and still unspent; the
// postings are the movements recorded after it.
func (c *InmemClient) GetAccountStatement(addresses []string, from int64) (*AccountStatement, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	statement := &AccountStatement{
		Timestamp: from,
		Opening:   []*TransactionOutput{},
		Postings:  []*AccountPosting{},
	}

	if len(c.trunk) > 0 {
		statement.LastBlock = c.trunk[len(c.trunk)-1]
	}

	for op, out := range c.utxo {
		if c.received[op] > from {
			continue
		}
		for _, addr := range addresses {
			if out.PaysTo(addr) {
				statement.Opening = append(statement.Opening, out)
				break
			}
		}
	}

	for _, posting := range c.postings {
		if posting.Timestamp <= from {
			continue
		}

		moved := posting.Received
		if moved == nil {
			moved = posting.Spent
		}

		for _, addr := range addresses {
			if moved.PaysTo(addr) {
				statement.Postings = append(statement.Postings, posting)
				break
			}
		}
	}

	return statement, nil
}
