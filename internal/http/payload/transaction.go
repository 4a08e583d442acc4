package payload

import (
	"math/big"
	"strings"

	"chainsentry/internal/detect"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/jellydator/validation"
)

// Transaction is the JSON-RPC style encoding of a transaction: integers are 0x-prefixed hex.
type Transaction struct {
	Hash             string          `json:"hash"`
	From             string          `json:"from"`
	To               *string         `json:"to"`
	Value            *hexutil.Big    `json:"value"`
	GasPrice         *hexutil.Big    `json:"gasPrice"`
	GasUsed          hexutil.Uint64  `json:"gasUsed"`
	Gas              hexutil.Uint64  `json:"gas"`
	BlockNumber      *hexutil.Uint64 `json:"blockNumber"`
	TransactionIndex *hexutil.Uint64 `json:"transactionIndex"`
	Input            hexutil.Bytes   `json:"input"`
}

func (t Transaction) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Hash, validation.Required, validation.Match(txHashRegex)),
		validation.Field(&t.From, validation.Required, hexAddress),
		validation.Field(&t.To, hexAddress),
	)
}

// ToTransaction converts the payload; a missing index falls back to position.
func (t Transaction) ToTransaction(blockNumber uint64, position int) detect.Transaction {
	tx := detect.Transaction{
		Hash:            strings.ToLower(t.Hash),
		From:            detect.NormalizeAddress(t.From),
		ValueWei:        bigOrNil(t.Value),
		GasPriceWei:     bigOrNil(t.GasPrice),
		GasUsed:         uint64(t.GasUsed),
		GasLimit:        uint64(t.Gas),
		BlockNumber:     blockNumber,
		PositionInBlock: uint64(position),
		Input:           []byte(t.Input),
	}
	if t.To != nil && *t.To != "" {
		to := detect.NormalizeAddress(*t.To)
		tx.To = &to
	}
	if t.BlockNumber != nil {
		tx.BlockNumber = uint64(*t.BlockNumber)
	}
	if t.TransactionIndex != nil {
		tx.PositionInBlock = uint64(*t.TransactionIndex)
	}
	return tx
}

type Block struct {
	Number       hexutil.Uint64 `json:"number"`
	Transactions []Transaction  `json:"transactions"`
}

func (b Block) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Transactions),
	)
}

func (b Block) ToBlock() detect.Block {
	number := uint64(b.Number)
	txs := make([]detect.Transaction, 0, len(b.Transactions))
	for i, t := range b.Transactions {
		txs = append(txs, t.ToTransaction(number, i))
	}
	return detect.Block{
		Number:       number,
		Transactions: txs,
	}
}

type AnalyzeBlocksRequest struct {
	Blocks []Block `json:"blocks"`
}

func (a AnalyzeBlocksRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Blocks, validation.Required, validation.Length(1, 64)),
	)
}

func (a AnalyzeBlocksRequest) ToBlocks() []detect.Block {
	blocks := make([]detect.Block, 0, len(a.Blocks))
	for _, b := range a.Blocks {
		blocks = append(blocks, b.ToBlock())
	}
	return blocks
}

func bigOrNil(v *hexutil.Big) *big.Int {
	if v == nil {
		return nil
	}
	return v.ToInt()
}
