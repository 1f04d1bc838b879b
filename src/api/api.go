// Package api defines the boundary between the key-management core and the
// block chain it talks to. The core derives deposit addresses and produces
// signatures; it queries balances and statements for those addresses through
// the BCSAPI interface, which a transport layer or a test double implements.
package api

// BCSAPI is the query interface to a node's block chain. Implementations
// answer "unknown hash" and "unknown address" with empty results, not with
// errors; errors are reserved for the implementation's own faults, such as a
// lost connection.
type BCSAPI interface {
	// GetHeartbeat echoes the given token, proving the far end is alive.
	GetHeartbeat(mine int64) (int64, error)

	// GetBlock returns the block with the given hash, or nil if the hash is
	// unknown.
	GetBlock(hash string) (*Block, error)

	// GetTransaction returns the transaction identified by the hash on the
	// trunk, or nil if no such transaction is on the trunk.
	GetTransaction(hash string) (*Transaction, error)

	// GetTrunk returns the hash of the highest block on the trunk.
	GetTrunk() (string, error)

	// GetBalance returns the transaction outputs spendable by the addresses,
	// eventually empty.
	GetBalance(addresses []string) ([]*TransactionOutput, error)

	// GetAccountStatement compiles, for the addresses, the outputs confirmed
	// before the given unix time point and the postings recorded after it.
	GetAccountStatement(addresses []string, from int64) (*AccountStatement, error)
}
