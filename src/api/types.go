package api

// Block is a block on the chain, identified by its hash.
type Block struct {
	Hash         string
	PreviousHash string
	CreateTime   int64
	Height       int
	Transactions []*Transaction
}

// Transaction moves value from the outputs it spends to the outputs it
// creates. BlockHash is set once the transaction is confirmed on the trunk.
type Transaction struct {
	Hash      string
	BlockHash string
	Inputs    []*TransactionInput
	Outputs   []*TransactionOutput
}

// TransactionInput spends the output at index SourceIx of the transaction
// with hash SourceHash.
type TransactionInput struct {
	SourceHash string
	SourceIx   int
	Script     []byte
}

// TransactionOutput holds value spendable by the listed addresses.
type TransactionOutput struct {
	TransactionHash string
	Ix              int
	Value           int64
	Addresses       []string
	Script          []byte
}

// AccountPosting records a single movement on an account: an output received
// or an output spent, at a point in time.
type AccountPosting struct {
	Timestamp int64
	Spent     *TransactionOutput
	Received  *TransactionOutput
}

// AccountStatement is the answer to GetAccountStatement: the outputs the
// addresses held at the start of the period, followed by the postings since.
type AccountStatement struct {
	Timestamp int64
	LastBlock string
	Opening   []*TransactionOutput
	Postings  []*AccountPosting
}

// PaysTo reports whether the output is spendable by the given address.
func (o *TransactionOutput) PaysTo(address string) bool {
	for _, a := range o.Addresses {
		if a == address {
			return true
		}
	}
	return false
}
